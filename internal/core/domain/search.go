package domain

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means no limit.
	Limit int
}

// Association pairs a character name with its code point.
// Within a built index names are unique and sorted byte-wise.
type Association struct {
	// Name is the character's symbolic name, e.g. "LATIN SMALL LETTER A".
	Name string

	// CodePoint is an opaque payload until decoded.
	CodePoint uint32
}

// Label returns the text a list renders for this association.
func (a Association) Label() string {
	return a.Name
}

// Payload returns the code point carried by this association.
func (a Association) Payload() uint32 {
	return a.CodePoint
}

// Rune decodes the code point into a character.
func (a Association) Rune() (rune, error) {
	return Decode(uint64(a.CodePoint))
}
