package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

func TestListenAddr(t *testing.T) {
	addr, err := listenAddr("localhost", 8080)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", addr)

	addr, err = listenAddr("::1", 9000)
	require.NoError(t, err)
	assert.Equal(t, "[::1]:9000", addr)
}

func TestListenAddr_OutOfRange(t *testing.T) {
	for _, port := range []int{-1, 65536} {
		_, err := listenAddr("localhost", port)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "port %d", port)
	}
}

func TestMCPServe_Help(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "mcp", "serve", "--help")
	require.NoError(t, err)
	for _, tool := range []string{"search_characters", "lookup_code", "encode_character", "get_alias", "runepick://aliases"} {
		assert.Contains(t, out, tool)
	}
}

func TestMCPServe_RejectsBadPort(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "mcp", "serve", "--port=-5")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
