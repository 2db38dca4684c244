package index

import (
	"github.com/blevesearch/vellum/regexp"

	"github.com/custodia-labs/runepick/internal/core/domain"
)

// Query is a compiled search automaton.
type Query struct {
	pattern   string
	automaton *regexp.Regexp
}

// Pattern wraps raw into the case-insensitive "contains" pattern that
// Compile hands to the automaton compiler. raw is not escaped, so regular
// expression syntax in it keeps its meaning.
func Pattern(raw string) string {
	return "(?i).*" + raw + ".*"
}

// Compile turns a raw query into an automaton matching every name that
// contains raw, ignoring case. Syntax errors, and constructs the automaton
// cannot express such as anchors or word boundaries, are returned as a
// *domain.QueryCompileError.
func Compile(raw string) (*Query, error) {
	pattern := Pattern(raw)
	re, err := regexp.New(pattern)
	if err != nil {
		return nil, &domain.QueryCompileError{Pattern: pattern, Err: err}
	}
	return &Query{pattern: pattern, automaton: re}, nil
}

// String returns the compiled pattern.
func (q *Query) String() string {
	return q.pattern
}
