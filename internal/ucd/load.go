package ucd

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/logger"
)

// ParseSource reads every association from src, choosing the parser by
// src.Name.
func ParseSource(src *Source, opts XMLOptions) ([]domain.Association, error) {
	switch DetectFormat(src.Name) {
	case FormatFlatXML:
		return ParseFlatXML(src, opts)
	case FormatNameAliases:
		return ParseNameAliases(src)
	default:
		return ParseUnicodeData(src)
	}
}

// ParseFile opens and parses a single source file.
func ParseFile(path string, opts XMLOptions) ([]domain.Association, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	table, err := ParseSource(src, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("parsed %d names from %s (%s)", len(table), path, DetectFormat(src.Name))
	return table, nil
}

// LoadAll parses paths concurrently and concatenates the results in the
// order the paths were given, so earlier files win on duplicate names
// once the table is deduplicated.
func LoadAll(ctx context.Context, paths []string, opts XMLOptions) ([]domain.Association, error) {
	parts := make([][]domain.Association, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			table, err := ParseFile(path, opts)
			if err != nil {
				return err
			}
			parts[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]domain.Association, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}
