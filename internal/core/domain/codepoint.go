package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Decode converts a numeric value into a character. Surrogates and values
// beyond U+10FFFF are rejected with a DecodeError.
func Decode(value uint64) (rune, error) {
	if value > utf8.MaxRune {
		return 0, &DecodeError{Value: value, Reason: "beyond U+10FFFF"}
	}
	r := rune(value)
	if !utf8.ValidRune(r) {
		return 0, &DecodeError{Value: value, Reason: "surrogate code point"}
	}
	return r, nil
}

// ParseCode parses a hexadecimal code point such as "1F600", "U+1F600" or
// "0x1f600" and returns the character it names.
func ParseCode(s string) (rune, error) {
	digits := strings.TrimSpace(s)
	upper := strings.ToUpper(digits)
	switch {
	case strings.HasPrefix(upper, "U+"), strings.HasPrefix(upper, "0X"):
		digits = digits[2:]
	}
	if digits == "" {
		return 0, &DecodeError{Input: s, Reason: "no hexadecimal digits"}
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &DecodeError{Input: s, Reason: "value out of range"}
		}
		return 0, &DecodeError{Input: s, Reason: "not a hexadecimal number"}
	}

	r, err := Decode(n)
	if err != nil {
		var decErr *DecodeError
		if errors.As(err, &decErr) {
			decErr.Input = s
		}
		return 0, err
	}
	return r, nil
}

// FormatCode formats a character's code point as uppercase hexadecimal,
// padded to at least four digits.
func FormatCode(r rune) string {
	return fmt.Sprintf("%04X", r)
}

// Encode returns the code point of the first character in s formatted by
// FormatCode.
func Encode(s string) (string, error) {
	if s == "" {
		return "", &DecodeError{Input: s, Reason: "empty string"}
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return "", &DecodeError{Input: s, Reason: "invalid UTF-8"}
	}
	return FormatCode(r), nil
}
