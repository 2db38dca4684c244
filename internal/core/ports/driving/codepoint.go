package driving

// CodepointService converts between characters and their code points.
type CodepointService interface {
	// Lookup decodes a hexadecimal code point into its character.
	Lookup(code string) (rune, error)

	// Encode returns the uppercase hexadecimal code point of the first
	// character of s.
	Encode(s string) (string, error)
}
