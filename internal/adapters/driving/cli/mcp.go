package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/runepick/internal/adapters/driving/mcp"
	"github.com/custodia-labs/runepick/internal/core/domain"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Expose character lookup to MCP clients",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the character tools over the Model Context Protocol",
	Long: `Serve runepick's character lookups to an MCP client such as an editor
or chat assistant.

Tools:
  search_characters  characters whose name matches a query (same syntax as search)
  lookup_code        the character for a hex code point
  encode_character   the code point of a character
  get_alias          the character saved under an alias

Resources:
  runepick://aliases          every saved alias as JSON
  runepick://aliases/{alias}  one saved character as text

The client normally starts the server itself and talks to it over stdin and
stdout. With --port the server listens for streamable HTTP on the given
port instead, bound to --host.

Examples:
  runepick mcp serve
  runepick mcp serve --port 8080
  runepick mcp serve --port 8080 --host 0.0.0.0`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "serve HTTP on this port instead of stdio")
	mcpServeCmd.Flags().String("host", "localhost", "interface to bind when --port is set")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return err
	}
	host, err := cmd.Flags().GetString("host")
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search:    searchService,
		Codepoint: codepointService,
		Aliases:   aliasService,
	})
	if err != nil {
		return err
	}

	if port == 0 {
		return server.Run(cmd.Context())
	}

	addr, err := listenAddr(host, port)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Serving MCP on http://%s\n", addr)
	return server.RunHTTP(cmd.Context(), addr)
}

// listenAddr joins host and port, rejecting ports outside 1-65535.
func listenAddr(host string, port int) (string, error) {
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("port %d out of range: %w", port, domain.ErrInvalidInput)
	}
	return net.JoinHostPort(host, strconv.Itoa(port)), nil
}
