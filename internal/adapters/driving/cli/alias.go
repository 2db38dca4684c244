package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/runepick/internal/adapters/driving/tui"
	"github.com/custodia-labs/runepick/internal/adapters/driving/tui/session"
	"github.com/custodia-labs/runepick/internal/core/domain"
)

var getCmd = &cobra.Command{
	Use:   "get VAR",
	Short: "Print a saved character",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var setCmd = &cobra.Command{
	Use:   "set VAR [QUERY]",
	Short: "Pick a character interactively and save it as VAR",
	Long: `Opens the picker with the results for QUERY. Choose a character with
the arrow keys and enter, confirm the alias (pre-filled with VAR) and
press enter again to save it.

Controls:
  ↑/k, ↓/j  Move
  g, G      First / last result
  /         Edit the query
  enter     Select / save
  esc       Back
  q         Quit without saving`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSet,
}

var unsetCmd = &cobra.Command{
	Use:   "unset VAR",
	Short: "Delete a saved character",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnset,
}

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved characters",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output aliases as JSON")
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unsetCmd)
	rootCmd.AddCommand(listCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	if aliasService == nil {
		return errors.New("alias service not configured")
	}

	r, err := aliasService.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%c\n", r)
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	if searchService == nil || aliasService == nil {
		return errors.New("search and alias services not configured")
	}

	opts := tui.Options{
		DefaultAlias: args[0],
		LogFile:      logFile,
	}
	if len(args) == 2 {
		opts.Query = args[1]
	}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		opts.Inline = settings.UI.Inline
	}

	result, err := runPicker(cmd.Context(), tui.NewPorts(searchService, aliasService), opts)
	if err != nil {
		return err
	}
	if result.Outcome == session.OutcomeSaved {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %c (%s) as %q\n",
			result.Char, domain.FormatCode(result.Char), result.Alias)
	}
	return nil
}

func runUnset(cmd *cobra.Command, args []string) error {
	if aliasService == nil {
		return errors.New("alias service not configured")
	}

	if err := aliasService.Remove(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
	return nil
}

// aliasJSON is the JSON form of a saved alias.
type aliasJSON struct {
	Alias     string `json:"alias"`
	Char      string `json:"char"`
	CodePoint string `json:"code_point"`
}

func runList(cmd *cobra.Command, _ []string) error {
	if aliasService == nil {
		return errors.New("alias service not configured")
	}

	aliases, err := aliasService.List(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listJSON {
		items := make([]aliasJSON, 0, len(aliases))
		for _, a := range aliases {
			items = append(items, aliasJSON{Alias: a.Name, Char: string(a.Char), CodePoint: domain.FormatCode(a.Char)})
		}
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal aliases: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(aliases) == 0 {
		fmt.Fprintln(out, "No saved aliases.")
		return nil
	}
	for _, a := range aliases {
		fmt.Fprintf(out, "%s = %c (%s)\n", a.Name, a.Char, domain.FormatCode(a.Char))
	}
	return nil
}
