package ucd

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// rangeNamer derives names for the code points of a <..., First>/<..., Last>
// block. ok is false for blocks that have no character names.
type rangeNamer func(label string, cp uint32) (name string, ok bool)

func defaultRangeName(label string, cp uint32) (string, bool) {
	switch {
	case strings.HasPrefix(label, "CJK Ideograph"):
		return fmt.Sprintf("CJK UNIFIED IDEOGRAPH-%04X", cp), true
	case strings.HasPrefix(label, "Tangut Ideograph"):
		return fmt.Sprintf("TANGUT IDEOGRAPH-%04X", cp), true
	case strings.HasPrefix(label, "Hangul Syllable"):
		name := hangulName(cp)
		return name, name != ""
	default:
		return "", false
	}
}

// ParseUnicodeData reads UnicodeData.txt formatted lines. Only the first two
// fields are used, so "CODE;NAME" tables are accepted too. Labels in angle
// brackets such as <control> are skipped, and First/Last range pairs are
// expanded for CJK ideographs, Tangut ideographs and Hangul syllables.
func ParseUnicodeData(r io.Reader) ([]domain.Association, error) {
	var (
		out        []domain.Association
		rangeStart uint32
		rangeLabel string
		inRange    bool
	)

	err := eachRecord(r, func(lineNo int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected at least 2 fields, got %d", lineNo, len(fields))
		}
		cp, err := parseCodePoint(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		name := strings.TrimSpace(fields[1])

		if !strings.HasPrefix(name, "<") {
			if name != "" {
				out = append(out, domain.Association{Name: name, CodePoint: cp})
			}
			return nil
		}

		label := strings.Trim(name, "<>")
		switch {
		case strings.HasSuffix(label, ", First"):
			rangeStart = cp
			rangeLabel = strings.TrimSuffix(label, ", First")
			inRange = true
		case strings.HasSuffix(label, ", Last"):
			if !inRange || strings.TrimSuffix(label, ", Last") != rangeLabel || cp < rangeStart {
				return fmt.Errorf("line %d: range end %s without matching start", lineNo, name)
			}
			out = appendRange(out, rangeLabel, rangeStart, cp, defaultRangeName)
			inRange = false
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if inRange {
		return nil, fmt.Errorf("unterminated range <%s, First>", rangeLabel)
	}
	return out, nil
}

func appendRange(out []domain.Association, label string, first, last uint32, namer rangeNamer) []domain.Association {
	if _, ok := namer(label, first); !ok {
		return out
	}
	for cp := first; cp <= last; cp++ {
		if name, ok := namer(label, cp); ok {
			out = append(out, domain.Association{Name: name, CodePoint: cp})
		}
	}
	return out
}

// ParseNameAliases reads NameAliases.txt ("CODE;ALIAS;TYPE"). When types is
// non-empty only aliases of those types (correction, control, alternate,
// figment, abbreviation) are returned.
func ParseNameAliases(r io.Reader, types ...string) ([]domain.Association, error) {
	var out []domain.Association

	err := eachRecord(r, func(lineNo int, fields []string) error {
		if len(fields) < 2 {
			return fmt.Errorf("line %d: expected at least 2 fields, got %d", lineNo, len(fields))
		}
		cp, err := parseCodePoint(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if len(types) > 0 {
			if len(fields) < 3 || !slices.Contains(types, strings.TrimSpace(fields[2])) {
				return nil
			}
		}
		if name := strings.TrimSpace(fields[1]); name != "" {
			out = append(out, domain.Association{Name: name, CodePoint: cp})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// eachRecord calls fn with the semicolon separated fields of every
// non-blank, non-comment line.
func eachRecord(r io.Reader, fn func(lineNo int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(lineNo, strings.Split(line, ";")); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	return nil
}

func parseCodePoint(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q: %w", s, err)
	}
	if v > 0x10FFFF {
		return 0, fmt.Errorf("code point %q beyond U+10FFFF", s)
	}
	return uint32(v), nil
}
