package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for runepick resources.
	uriScheme = "runepick://"

	aliasesURI = uriScheme + "aliases"
)

// registerResources registers the alias resources with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         aliasesURI,
		Name:        "aliases",
		Description: "Every saved alias with its character and code point",
		MIMEType:    "application/json",
	}, s.handleAliasesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: aliasesURI + "/{alias}",
		Name:        "alias",
		Description: "The character saved under one alias",
		MIMEType:    "text/plain",
	}, s.handleAliasResource)
}

// handleAliasesResource returns every saved alias.
func (s *Server) handleAliasesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	aliases, err := s.ports.Aliases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing aliases: %w", err)
	}

	infos := make([]AliasOutput, len(aliases))
	for i, a := range aliases {
		infos[i] = AliasOutput{
			Alias:     a.Name,
			Char:      string(a.Char),
			CodePoint: domain.FormatCode(a.Char),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling aliases: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleAliasResource returns the character saved under one alias.
func (s *Server) handleAliasResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractAlias(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	r, err := s.ports.Aliases.Get(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading alias: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     string(r),
		}},
	}, nil
}

// extractAlias extracts the alias from a URI like runepick://aliases/{alias}.
// The alias is path-unescaped.
func extractAlias(uri string) string {
	const prefix = aliasesURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return name
}
