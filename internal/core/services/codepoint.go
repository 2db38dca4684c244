package services

import (
	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/core/ports/driving"
	"github.com/custodia-labs/runepick/internal/logger"
)

// Ensure CodepointService implements the interface.
var _ driving.CodepointService = (*CodepointService)(nil)

// CodepointService converts between characters and code points.
// It never consults the index.
type CodepointService struct{}

// NewCodepointService creates a new codepoint service.
func NewCodepointService() *CodepointService {
	return &CodepointService{}
}

// Lookup decodes a hexadecimal code point such as "1F600" or "U+1F600".
func (s *CodepointService) Lookup(code string) (rune, error) {
	r, err := domain.ParseCode(code)
	if err != nil {
		return 0, err
	}
	logger.Debug("Lookup %q -> U+%s", code, domain.FormatCode(r))
	return r, nil
}

// Encode returns the code point of the first character of s.
func (s *CodepointService) Encode(str string) (string, error) {
	return domain.Encode(str)
}
