package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change settings stored in config.toml.

Use subcommands to change a setting.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLimitCmd = &cobra.Command{
	Use:   "limit N",
	Short: "Set the default result limit of search (0 = all)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsLimit,
}

var settingsInlineCmd = &cobra.Command{
	Use:   "inline true|false",
	Short: "Run the picker without the alternate screen",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsInline,
}

var settingsStoreCmd = &cobra.Command{
	Use:   "store [PATH]",
	Short: "Set the alias store file (no PATH restores the default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsStore,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLimitCmd)
	settingsCmd.AddCommand(settingsInlineCmd)
	settingsCmd.AddCommand(settingsStoreCmd)
	rootCmd.AddCommand(settingsCmd)
}

var errSettingsNotConfigured = errors.New("settings service not configured")

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	defaults := settingsService.GetDefaults()

	limit := "all"
	if settings.Search.Limit > 0 {
		limit = strconv.Itoa(settings.Search.Limit)
	}
	store := settings.Store.Path
	if store == defaults.Store.Path {
		store = "(default)"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Search")
	fmt.Fprintf(out, "  Limit:   %s\n", markDefault(limit, settings.Search.Limit == defaults.Search.Limit))
	fmt.Fprintln(out, "Picker")
	fmt.Fprintf(out, "  Inline:  %s\n", markDefault(strconv.FormatBool(settings.UI.Inline), settings.UI.Inline == defaults.UI.Inline))
	fmt.Fprintln(out, "Aliases")
	fmt.Fprintf(out, "  Store:   %s\n", store)
	return nil
}

func markDefault(value string, isDefault bool) string {
	if isDefault {
		return value + " (default)"
	}
	return value
}

func runSettingsLimit(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", args[0], err)
	}
	if err := settingsService.SetSearchLimit(n); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Search limit set to %d\n", n)
	return nil
}

func runSettingsInline(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	inline, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}
	if err := settingsService.SetInline(inline); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Inline picker set to %t\n", inline)
	return nil
}

func runSettingsStore(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	if err := settingsService.SetStorePath(path); err != nil {
		return err
	}
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Alias store reset to the default location")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Alias store set to %s\n", path)
	return nil
}
