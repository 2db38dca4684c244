package ucd

const (
	hangulBase   = 0xAC00
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulCount  = hangulLCount * hangulNCount
)

var (
	jamoL = [hangulLCount]string{
		"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S",
		"SS", "", "J", "JJ", "C", "K", "T", "P", "H",
	}
	jamoV = [hangulVCount]string{
		"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA",
		"WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I",
	}
	jamoT = [hangulTCount]string{
		"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG",
		"LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S",
		"SS", "NG", "J", "C", "K", "T", "P", "H",
	}
)

// hangulName returns the algorithmic name of a precomposed Hangul syllable
// (Unicode chapter 3.12), or "" if cp is not one.
func hangulName(cp uint32) string {
	if cp < hangulBase || cp >= hangulBase+hangulCount {
		return ""
	}
	s := cp - hangulBase
	l := s / hangulNCount
	v := (s % hangulNCount) / hangulTCount
	t := s % hangulTCount
	return "HANGUL SYLLABLE " + jamoL[l] + jamoV[v] + jamoT[t]
}
