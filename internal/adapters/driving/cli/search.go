package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search character names",
	Long: `Lists every character whose name contains QUERY, ignoring case,
in alphabetical order of name. QUERY is a regular expression.

Each line shows the character, its code point and its name:
  😀 = 1F600, GRINNING FACE`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0,
		"maximum number of results (default from search.limit setting, 0 = all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchResultJSON is the JSON form of a result.
type searchResultJSON struct {
	Char      string `json:"char"`
	CodePoint string `json:"code_point"`
	Name      string `json:"name"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	limit, err := resolveLimit(cmd)
	if err != nil {
		return err
	}

	results, err := searchService.Search(cmd.Context(), args[0], domain.SearchOptions{Limit: limit})
	if err != nil {
		return err
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	outputSearchLines(cmd, results)
	return nil
}

// resolveLimit prefers the flag, then the search.limit setting.
func resolveLimit(cmd *cobra.Command) (int, error) {
	if cmd.Flags().Changed("limit") {
		if searchLimit < 0 {
			return 0, fmt.Errorf("limit must not be negative: %w", domain.ErrInvalidInput)
		}
		return searchLimit, nil
	}
	if settingsService == nil {
		return 0, nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings.Search.Limit, nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.Association) error {
	out := make([]searchResultJSON, 0, len(results))
	for _, a := range results {
		r, _ := a.Rune()
		out = append(out, searchResultJSON{
			Char:      string(r),
			CodePoint: domain.FormatCode(r),
			Name:      a.Name,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSearchLines(cmd *cobra.Command, results []domain.Association) {
	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No results found.")
		return
	}
	for _, a := range results {
		r, _ := a.Rune()
		fmt.Fprintf(out, "%c = %s, %s\n", r, domain.FormatCode(r), a.Name)
	}
}
