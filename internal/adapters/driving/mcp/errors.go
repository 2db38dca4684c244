// Package mcp provides an MCP (Model Context Protocol) server adapter for
// runepick. It lets AI assistants search character names, convert code
// points and read saved aliases.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingCodepointService is returned when the codepoint service is not provided.
var ErrMissingCodepointService = errors.New("mcp: codepoint service is required")
