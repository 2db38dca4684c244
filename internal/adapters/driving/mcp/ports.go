package mcp

import (
	"github.com/custodia-labs/runepick/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search finds characters by name.
	Search driving.SearchService

	// Codepoint converts between characters and code points.
	Codepoint driving.CodepointService

	// Aliases reads saved aliases. Optional: without it the alias tool
	// and resources are not registered.
	Aliases driving.AliasService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Codepoint == nil {
		return ErrMissingCodepointService
	}
	return nil
}
