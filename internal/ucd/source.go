package ucd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Format identifies the layout of a source file.
type Format int

// Supported source formats.
const (
	FormatUnicodeData Format = iota
	FormatNameAliases
	FormatFlatXML
)

func (f Format) String() string {
	switch f {
	case FormatNameAliases:
		return "NameAliases"
	case FormatFlatXML:
		return "flat XML"
	default:
		return "UnicodeData"
	}
}

// DetectFormat guesses a source's format from its (decompressed) file name.
func DetectFormat(name string) Format {
	base := strings.ToLower(filepath.Base(name))
	switch {
	case strings.HasSuffix(base, ".xml"):
		return FormatFlatXML
	case strings.Contains(base, "namealiases"):
		return FormatNameAliases
	default:
		return FormatUnicodeData
	}
}

// Source is an opened, decompressed UCD file.
type Source struct {
	io.Reader

	// Name is the file name of the decompressed content, used for
	// format detection. For zip archives it is the member name.
	Name string

	closers []func() error
}

// Close releases the decompressor and the underlying file.
func (s *Source) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open opens path, transparently decompressing .gz, .zst and .zip files.
// For a zip archive the first .xml or .txt member is used.
func Open(path string) (*Source, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".zip" {
		return openZip(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	inner := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch ext {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		return &Source{Reader: zr, Name: inner, closers: []func() error{f.Close, zr.Close}}, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open zstd %s: %w", path, err)
		}
		closeDecoder := func() error {
			zr.Close()
			return nil
		}
		return &Source{Reader: zr, Name: inner, closers: []func() error{f.Close, closeDecoder}}, nil
	default:
		return &Source{Reader: f, Name: filepath.Base(path), closers: []func() error{f.Close}}, nil
	}
}

func openZip(path string) (*Source, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open zip %s: %w", path, err)
	}

	for _, member := range zr.File {
		ext := strings.ToLower(filepath.Ext(member.Name))
		if member.FileInfo().IsDir() || (ext != ".xml" && ext != ".txt") {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			_ = zr.Close()
			return nil, fmt.Errorf("open %s in %s: %w", member.Name, path, err)
		}
		return &Source{Reader: rc, Name: member.Name, closers: []func() error{zr.Close, rc.Close}}, nil
	}

	_ = zr.Close()
	return nil, fmt.Errorf("%s: no .xml or .txt member", path)
}
