package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// defaultSearchLimit caps search_characters when the caller gives no limit.
const defaultSearchLimit = 50

// SearchInput is the input schema for the search_characters tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"case-insensitive regular expression matched anywhere in the character name"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 50)"`
}

// SearchOutput is the output schema for the search_characters tool.
type SearchOutput struct {
	Results []CharacterOutput `json:"results"`
	Count   int               `json:"count"`
}

// CharacterOutput describes one character.
type CharacterOutput struct {
	Char      string `json:"char"`
	CodePoint string `json:"code_point"`
	Name      string `json:"name,omitempty"`
}

// LookupInput is the input schema for the lookup_code tool.
type LookupInput struct {
	Code string `json:"code" jsonschema:"hexadecimal code point, optionally prefixed with U+ or 0x"`
}

// EncodeInput is the input schema for the encode_character tool.
type EncodeInput struct {
	Character string `json:"character" jsonschema:"the character to encode; only the first is used"`
}

// AliasInput is the input schema for the get_alias tool.
type AliasInput struct {
	Alias string `json:"alias" jsonschema:"name of a saved alias"`
}

// AliasOutput is the output schema for the get_alias tool.
type AliasOutput struct {
	Alias     string `json:"alias"`
	Char      string `json:"char"`
	CodePoint string `json:"code_point"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_characters",
		Description: "Find Unicode characters whose name matches a query, in name order",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "lookup_code",
		Description: "Return the character with a hexadecimal code point",
	}, s.handleLookup)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "encode_character",
		Description: "Return the hexadecimal code point of a character",
	}, s.handleEncode)

	if s.ports.Aliases != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "get_alias",
			Description: "Return the character saved under an alias",
		}, s.handleGetAlias)
	}
}

// handleSearch handles the search_characters tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	results, err := s.ports.Search.Search(ctx, input.Query, domain.SearchOptions{Limit: limit})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]CharacterOutput, 0, len(results)),
		Count:   len(results),
	}
	for _, a := range results {
		r, err := a.Rune()
		if err != nil {
			continue
		}
		output.Results = append(output.Results, character(r, a.Name))
	}
	output.Count = len(output.Results)

	return nil, output, nil
}

// handleLookup handles the lookup_code tool invocation.
func (s *Server) handleLookup(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input LookupInput,
) (*mcp.CallToolResult, CharacterOutput, error) {
	r, err := s.ports.Codepoint.Lookup(input.Code)
	if err != nil {
		return nil, CharacterOutput{}, err
	}
	return nil, character(r, ""), nil
}

// handleEncode handles the encode_character tool invocation.
func (s *Server) handleEncode(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input EncodeInput,
) (*mcp.CallToolResult, CharacterOutput, error) {
	code, err := s.ports.Codepoint.Encode(input.Character)
	if err != nil {
		return nil, CharacterOutput{}, err
	}
	r := []rune(input.Character)[0]
	return nil, CharacterOutput{Char: string(r), CodePoint: code}, nil
}

// handleGetAlias handles the get_alias tool invocation.
func (s *Server) handleGetAlias(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AliasInput,
) (*mcp.CallToolResult, AliasOutput, error) {
	r, err := s.ports.Aliases.Get(ctx, input.Alias)
	if err != nil {
		return nil, AliasOutput{}, err
	}
	return nil, AliasOutput{
		Alias:     domain.NormaliseAlias(input.Alias),
		Char:      string(r),
		CodePoint: domain.FormatCode(r),
	}, nil
}

func character(r rune, name string) CharacterOutput {
	return CharacterOutput{Char: string(r), CodePoint: domain.FormatCode(r), Name: name}
}
