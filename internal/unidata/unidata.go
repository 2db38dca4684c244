// Package unidata embeds the character name data shipped with runepick.
//
// The index artifact (data/names.fst) is generated from the committed
// name table by `go generate` and committed alongside it. Open loads it
// in place. When the artifact is missing, as in a tree where it was
// deleted for regeneration, Open builds the index from the table instead.
package unidata

//go:generate go run ../../cmd/ucdgen --out data/names.fst data/UnicodeNames.txt.gz

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/klauspost/compress/gzip"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/index"
	"github.com/custodia-labs/runepick/internal/logger"
	"github.com/custodia-labs/runepick/internal/ucd"
)

const (
	artifactPath = "data/names.fst"
	tablePath    = "data/UnicodeNames.txt.gz"
)

//go:embed data
var files embed.FS

// Open returns the index handle over the embedded data. Callers construct
// it once and pass it to every consumer.
func Open() (*index.Index, error) {
	data, err := Artifact()
	if err != nil {
		return nil, err
	}
	return index.Load(data)
}

// Artifact returns the serialized index. It prefers the generated artifact
// and builds one from the embedded name table when it is absent.
func Artifact() ([]byte, error) {
	data, err := files.ReadFile(artifactPath)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", artifactPath, err)
	}

	logger.Warn("%s not generated, building index from %s", artifactPath, tablePath)
	table, err := Table()
	if err != nil {
		return nil, err
	}
	return index.BuildFrom(table)
}

// Table returns the raw associations of the embedded name table.
func Table() ([]domain.Association, error) {
	raw, err := files.ReadFile(tablePath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", tablePath, err)
	}
	return parseTable(bytes.NewReader(raw))
}

func parseTable(r io.Reader) ([]domain.Association, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", tablePath, err)
	}
	defer zr.Close()

	table, err := ucd.ParseUnicodeData(zr)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", tablePath, err)
	}
	return table, nil
}
