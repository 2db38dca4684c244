// Package domain defines the core business entities for runepick.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Association: a character name paired with its code point
//   - AliasSet: the user's saved alias → character mapping
//   - The error taxonomy shared by every layer
//
// It also owns the numeric code point conversions used by the lookup
// and encode commands.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
