package tui

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")

// ErrMissingAliasService is returned when the alias service is not provided.
var ErrMissingAliasService = errors.New("tui: alias service is required")

// errNotATerminal is wrapped in a TerminalInitError when stdin or stdout
// is redirected.
var errNotATerminal = errors.New("standard input and output must be a terminal")
