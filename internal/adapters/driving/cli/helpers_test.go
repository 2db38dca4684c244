package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/runepick/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/runepick/internal/adapters/driving/tui"
	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/core/services"
	"github.com/custodia-labs/runepick/internal/index"
)

var testTable = []domain.Association{
	{Name: "LATIN SMALL LETTER A", CodePoint: 0x61},
	{Name: "GRINNING FACE", CodePoint: 0x1F600},
	{Name: "LATIN CAPITAL LETTER A", CodePoint: 0x41},
	{Name: "SMILING FACE", CodePoint: 0x263A},
	{Name: "BROKEN ENTRY", CodePoint: 0xD800},
}

// testEnv holds the services wired in by setupTestServices.
type testEnv struct {
	aliases  *services.AliasService
	settings *services.SettingsService
	config   *memory.ConfigStore
}

// setupTestServices wires real services over an in-memory index, alias
// store and config store, and restores the command tree when t ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	data, err := index.BuildFrom(testTable)
	require.NoError(t, err)
	ix, err := index.Load(data)
	require.NoError(t, err)

	env := &testEnv{
		aliases: services.NewAliasService(memory.NewAliasStore()),
		config:  memory.NewConfigStore(nil),
	}
	env.settings = services.NewSettingsService(env.config)

	SetServices(Services{
		Search:    services.NewSearchService(ix),
		Codepoint: services.NewCodepointService(),
		Aliases:   env.aliases,
		Settings:  env.settings,
	})

	t.Cleanup(func() {
		SetServices(Services{})
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return env
}

// resetFlags restores every flag in the tree to its default so one test's
// flags do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// stubPicker replaces the interactive picker for one test.
func stubPicker(t *testing.T, fn func(ctx context.Context, ports *tui.Ports, opts tui.Options) (tui.Result, error)) {
	t.Helper()
	orig := runPicker
	runPicker = fn
	t.Cleanup(func() { runPicker = orig })
}
