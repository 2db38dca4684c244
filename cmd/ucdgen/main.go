// Command ucdgen builds the character name index from Unicode Character
// Database sources.
//
// It is run by `go generate ./internal/unidata` and can also be pointed at
// a fresh UCD download:
//
//	ucdgen --out names.fst UnicodeData.txt NameAliases.txt
//	ucdgen --out names.fst --aliases ucd.all.flat.zip
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/fsutil"
	"github.com/custodia-labs/runepick/internal/index"
	"github.com/custodia-labs/runepick/internal/logger"
	"github.com/custodia-labs/runepick/internal/ucd"
)

type options struct {
	out     string
	aliases bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "ucdgen [flags] SOURCE...",
		Short: "Build the character name index",
		Long: `Parses UnicodeData.txt, NameAliases.txt or ucd.all.flat.xml sources
(optionally .gz, .zst or .zip compressed) and writes the sorted,
deduplicated name index. Earlier sources win when names collide.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.SetVerbose(opts.verbose)
			return generate(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "names.fst", "output file")
	cmd.Flags().BoolVar(&opts.aliases, "aliases", false, "include <name-alias> entries from flat XML sources")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	return cmd
}

func generate(ctx context.Context, out io.Writer, sources []string, opts options) error {
	logger.Section("Parse")
	raw, err := ucd.LoadAll(ctx, sources, ucd.XMLOptions{Aliases: opts.aliases})
	if err != nil {
		return err
	}

	table := index.SortDedup(raw)
	logger.Info("%d names, %d after dedup", len(raw), len(table))

	logger.Section("Build")
	err = fsutil.WriteAtomic(opts.out, 0644, func(w io.Writer) error {
		return index.Build(w, table)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}

	logger.Section("Verify")
	if err := verify(opts.out, table); err != nil {
		return err
	}

	fmt.Fprintf(out, "wrote %d names to %s\n", len(table), opts.out)
	return nil
}

// verify reloads the artifact at path and checks that it holds exactly table,
// in order.
func verify(path string, table []domain.Association) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	ix, err := index.Load(data)
	if err != nil {
		return err
	}
	defer ix.Close()

	i := 0
	var mismatch error
	err = ix.Walk(func(a domain.Association) bool {
		if i >= len(table) || a != table[i] {
			mismatch = fmt.Errorf("%s: entry %d is %q=%04X, want %v", path, i, a.Name, a.CodePoint, entryAt(table, i))
			return false
		}
		i++
		return true
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", path, err)
	}
	if mismatch != nil {
		return mismatch
	}
	if i != len(table) {
		return fmt.Errorf("%s: holds %d names, want %d", path, i, len(table))
	}
	logger.Info("verified %d names", i)
	return nil
}

func entryAt(table []domain.Association, i int) string {
	if i >= len(table) {
		return "end of table"
	}
	return fmt.Sprintf("%q=%04X", table[i].Name, table[i].CodePoint)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "ucdgen: %v\n", err)
		os.Exit(1)
	}
}
