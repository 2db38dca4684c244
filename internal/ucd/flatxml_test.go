package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

const flatXMLSample = `<?xml version="1.0" encoding="UTF-8"?>
<ucd xmlns="http://www.unicode.org/ns/2003/ucd/1.0">
  <repertoire>
    <char cp="0000" na="" gc="Cc">
      <name-alias alias="NULL" type="control"/>
    </char>
    <char cp="0041" na="LATIN CAPITAL LETTER A" gc="Lu"/>
    <char cp="01A2" na="LATIN CAPITAL LETTER OI" gc="Lu">
      <name-alias alias="LATIN CAPITAL LETTER GHA" type="correction"/>
    </char>
    <char first-cp="4E00" last-cp="4E02" na="CJK UNIFIED IDEOGRAPH-#" gc="Lo"/>
    <reserved first-cp="E0080" last-cp="E00FF"/>
  </repertoire>
</ucd>
`

func TestParseFlatXML(t *testing.T) {
	got, err := ParseFlatXML(strings.NewReader(flatXMLSample), XMLOptions{})
	require.NoError(t, err)

	assert.Equal(t, []domain.Association{
		{Name: "LATIN CAPITAL LETTER A", CodePoint: 0x41},
		{Name: "LATIN CAPITAL LETTER OI", CodePoint: 0x1A2},
		{Name: "CJK UNIFIED IDEOGRAPH-4E00", CodePoint: 0x4E00},
		{Name: "CJK UNIFIED IDEOGRAPH-4E01", CodePoint: 0x4E01},
		{Name: "CJK UNIFIED IDEOGRAPH-4E02", CodePoint: 0x4E02},
	}, got)
}

func TestParseFlatXML_Aliases(t *testing.T) {
	got, err := ParseFlatXML(strings.NewReader(flatXMLSample), XMLOptions{Aliases: true})
	require.NoError(t, err)

	assert.Contains(t, got, domain.Association{Name: "NULL", CodePoint: 0})
	assert.Contains(t, got, domain.Association{Name: "LATIN CAPITAL LETTER GHA", CodePoint: 0x1A2})
	assert.Len(t, got, 7)
}

func TestParseFlatXML_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `<ucd><char cp="0041" na="A"></ucd>`},
		{"no code point", `<ucd><char na="A"/></ucd>`},
		{"reversed range", `<ucd><char first-cp="0042" last-cp="0041" na="X-#"/></ucd>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlatXML(strings.NewReader(tt.input), XMLOptions{})
			assert.Error(t, err)
		})
	}
}
