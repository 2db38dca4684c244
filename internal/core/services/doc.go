// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go; the index, alias store and configuration
// they use are injected as driven ports.
package services
