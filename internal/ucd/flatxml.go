package ucd

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// XMLOptions controls ParseFlatXML.
type XMLOptions struct {
	// Aliases includes <name-alias> children as extra associations.
	Aliases bool
}

// ParseFlatXML reads <char> elements from ucd.all.flat.xml (or any of the
// UCDXML flat files). Elements carrying first-cp/last-cp are expanded, and
// a "#" in a name is replaced by the code point in hexadecimal, as in
// "CJK UNIFIED IDEOGRAPH-#". Characters without a name are skipped.
func ParseFlatXML(r io.Reader, opts XMLOptions) ([]domain.Association, error) {
	var (
		out     []domain.Association
		current []uint32
	)

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parse xml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "char":
				cps, err := charCodePoints(el.Attr)
				if err != nil {
					line, _ := dec.InputPos()
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				current = cps
				if name := attr(el.Attr, "na"); name != "" {
					out = appendNamed(out, name, cps)
				}
			case "name-alias":
				if opts.Aliases && current != nil {
					if alias := attr(el.Attr, "alias"); alias != "" {
						out = appendNamed(out, alias, current)
					}
				}
			}
		case xml.EndElement:
			if el.Name.Local == "char" {
				current = nil
			}
		}
	}
}

func charCodePoints(attrs []xml.Attr) ([]uint32, error) {
	if cp := attr(attrs, "cp"); cp != "" {
		v, err := parseCodePoint(cp)
		if err != nil {
			return nil, err
		}
		return []uint32{v}, nil
	}

	first, last := attr(attrs, "first-cp"), attr(attrs, "last-cp")
	if first == "" || last == "" {
		return nil, errors.New("char element without cp or first-cp/last-cp")
	}
	lo, err := parseCodePoint(first)
	if err != nil {
		return nil, err
	}
	hi, err := parseCodePoint(last)
	if err != nil {
		return nil, err
	}
	if hi < lo {
		return nil, fmt.Errorf("range %s..%s is reversed", first, last)
	}

	cps := make([]uint32, 0, hi-lo+1)
	for cp := lo; cp <= hi; cp++ {
		cps = append(cps, cp)
	}
	return cps, nil
}

func appendNamed(out []domain.Association, name string, cps []uint32) []domain.Association {
	templated := strings.Contains(name, "#")
	for _, cp := range cps {
		n := name
		if templated {
			n = strings.ReplaceAll(name, "#", fmt.Sprintf("%04X", cp))
		}
		out = append(out, domain.Association{Name: n, CodePoint: cp})
	}
	return out
}

func attr(attrs []xml.Attr, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
