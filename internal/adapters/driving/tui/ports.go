// Package tui hosts the interactive character picker in a bubbletea
// program. Key presses become session events; the session package owns
// every state transition.
package tui

import (
	"github.com/custodia-labs/runepick/internal/core/ports/driving"
)

// Ports aggregates the driving ports the picker needs.
type Ports struct {
	// Search runs the query on every edit.
	Search driving.SearchService

	// Aliases saves the chosen character.
	Aliases driving.AliasService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(search driving.SearchService, aliases driving.AliasService) *Ports {
	return &Ports{
		Search:  search,
		Aliases: aliases,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Aliases == nil {
		return ErrMissingAliasService
	}
	return nil
}
