package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/runepick/internal/logger"
)

// Version is reported to clients during initialization.
const Version = "0.1.0"

// shutdownTimeout bounds how long in-flight HTTP requests may take to
// finish once the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Server answers character questions for MCP clients: which characters
// match a name, what a code point decodes to, how a character is encoded,
// and which character a saved alias stands for.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer registers the character tools, plus the alias tool and
// resources when ports carries an alias service.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "runepick", Version: Version},
			&mcp.ServerOptions{Instructions: instructions(ports)},
		),
	}

	s.registerTools()
	if ports.Aliases != nil {
		s.registerResources()
	}
	return s, nil
}

// instructions tells the client how the tools fit together.
func instructions(ports *Ports) string {
	var b strings.Builder
	b.WriteString("Look up Unicode characters by name. ")
	b.WriteString("search_characters treats its query as a case-insensitive regular expression ")
	b.WriteString("matched anywhere in the character name, so escape metacharacters to match them literally. ")
	b.WriteString("lookup_code turns a hex code point into its character and encode_character does the reverse.")
	if ports.Aliases != nil {
		b.WriteString(" get_alias and the runepick://aliases resources read characters the user saved under short names.")
	}
	return b.String()
}

// Run serves a single client over stdin and stdout until ctx is cancelled
// or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP endpoint for the server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves Handler on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("MCP server shutdown: %v", err)
		}
	})
	defer stop()

	logger.Info("MCP server listening on %s", addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
