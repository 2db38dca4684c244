// Package cli provides the cobra command tree for runepick.
// Commands reach the core through driving ports set with SetServices.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/runepick/internal/adapters/driving/tui"
	"github.com/custodia-labs/runepick/internal/core/ports/driving"
	"github.com/custodia-labs/runepick/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Services are the driving ports the commands call.
type Services struct {
	Search    driving.SearchService
	Codepoint driving.CodepointService
	Aliases   driving.AliasService
	Settings  driving.SettingsService
}

var (
	searchService    driving.SearchService
	codepointService driving.CodepointService
	aliasService     driving.AliasService
	settingsService  driving.SettingsService
)

// runPicker starts the interactive picker. Tests replace it.
var runPicker = tui.Run

var (
	verbose bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "runepick",
	Short: "Find Unicode characters by name",
	Long: `runepick searches the names of every Unicode character.

Queries match anywhere in a name, ignoring case, and are regular
expressions: "face", "small letter (a|b)" and "arrow.*double" all work.
Metacharacters are not escaped, so search for "a+b" literally with "a\+b".

Saved aliases give a short name to a character you use often:
  runepick set smile "smiling face"
  runepick get smile`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic output to stderr")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"append diagnostic output to this file while the picker is open")
}

// SetServices sets the driving ports used by the commands.
func SetServices(s Services) {
	searchService = s.Search
	codepointService = s.Codepoint
	aliasService = s.Aliases
	settingsService = s.Settings
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
