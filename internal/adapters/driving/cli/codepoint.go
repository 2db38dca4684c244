package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup CODE",
	Short: "Print the character with a hexadecimal code point",
	Long: `Prints the character whose code point is CODE. CODE is hexadecimal
and may start with U+ or 0x:
  runepick lookup 1F600
  runepick lookup U+00E9`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

var encodeCmd = &cobra.Command{
	Use:   "encode CHARACTER",
	Short: "Print the hexadecimal code point of a character",
	Long: `Prints the code point of CHARACTER as uppercase hexadecimal, at least
four digits wide. Only the first character of the argument is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(encodeCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if codepointService == nil {
		return errors.New("codepoint service not configured")
	}

	r, err := codepointService.Lookup(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%c\n", r)
	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	if codepointService == nil {
		return errors.New("codepoint service not configured")
	}

	code, err := codepointService.Encode(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}
