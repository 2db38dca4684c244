package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

const unicodeDataSample = `0000;<control>;Cc;0;BN;;;;;N;NULL;;;;
0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0061;LATIN SMALL LETTER A;Ll;0;L;;;;;N;;;0041;;0041
3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
3402;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;
AC00;<Hangul Syllable, First>;Lo;0;L;;;;;N;;;;;
AC02;<Hangul Syllable, Last>;Lo;0;L;;;;;N;;;;;
D800;<Non Private Use High Surrogate, First>;Cs;0;L;;;;;N;;;;;
DB7F;<Non Private Use High Surrogate, Last>;Cs;0;L;;;;;N;;;;;
17000;<Tangut Ideograph, First>;Lo;0;L;;;;;N;;;;;
17001;<Tangut Ideograph, Last>;Lo;0;L;;;;;N;;;;;
1F600;GRINNING FACE;So;0;ON;;;;;N;;;;;
`

func TestParseUnicodeData(t *testing.T) {
	got, err := ParseUnicodeData(strings.NewReader(unicodeDataSample))
	require.NoError(t, err)

	assert.Equal(t, []domain.Association{
		{Name: "LATIN CAPITAL LETTER A", CodePoint: 0x41},
		{Name: "LATIN SMALL LETTER A", CodePoint: 0x61},
		{Name: "CJK UNIFIED IDEOGRAPH-3400", CodePoint: 0x3400},
		{Name: "CJK UNIFIED IDEOGRAPH-3401", CodePoint: 0x3401},
		{Name: "CJK UNIFIED IDEOGRAPH-3402", CodePoint: 0x3402},
		{Name: "HANGUL SYLLABLE GA", CodePoint: 0xAC00},
		{Name: "HANGUL SYLLABLE GAG", CodePoint: 0xAC01},
		{Name: "HANGUL SYLLABLE GAGG", CodePoint: 0xAC02},
		{Name: "TANGUT IDEOGRAPH-17000", CodePoint: 0x17000},
		{Name: "TANGUT IDEOGRAPH-17001", CodePoint: 0x17001},
		{Name: "GRINNING FACE", CodePoint: 0x1F600},
	}, got)
}

func TestParseUnicodeData_TwoFieldTable(t *testing.T) {
	got, err := ParseUnicodeData(strings.NewReader("0041;LATIN CAPITAL LETTER A\n\n# comment\n00E9;LATIN SMALL LETTER E WITH ACUTE\n"))
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, uint32(0xE9), got[1].CodePoint)
}

func TestParseUnicodeData_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing name", "0041\n"},
		{"bad hex", "XYZ;NAME\n"},
		{"beyond range", "110000;NAME\n"},
		{"last without first", "4DBF;<CJK Ideograph, Last>\n"},
		{"mismatched range", "3400;<CJK Ideograph, First>\nAC00;<Hangul Syllable, Last>\n"},
		{"unterminated range", "3400;<CJK Ideograph, First>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUnicodeData(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestHangulName(t *testing.T) {
	assert.Equal(t, "HANGUL SYLLABLE GA", hangulName(0xAC00))
	assert.Equal(t, "HANGUL SYLLABLE HIH", hangulName(0xD7A3))
	assert.Equal(t, "HANGUL SYLLABLE A", hangulName(0xC544))
	assert.Equal(t, "", hangulName(0xABFF))
	assert.Equal(t, "", hangulName(0xD7A4))
}

func TestParseNameAliases(t *testing.T) {
	input := `# NameAliases.txt
0000;NULL;control
0000;NUL;abbreviation
01A2;LATIN CAPITAL LETTER GHA;correction
FEFF;BYTE ORDER MARK;alternate
`

	all, err := ParseNameAliases(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, all, 4)

	some, err := ParseNameAliases(strings.NewReader(input), "control", "correction")
	require.NoError(t, err)
	assert.Equal(t, []domain.Association{
		{Name: "NULL", CodePoint: 0},
		{Name: "LATIN CAPITAL LETTER GHA", CodePoint: 0x1A2},
	}, some)
}
