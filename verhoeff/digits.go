package verhoeff

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the parsing layer. Contextual wrapping
// (offending character, byte offset) is added via fmt.Errorf("%w: …"),
// so callers must match with errors.Is rather than ==.
var (
	// ErrEmptyInput indicates that the input string is empty.
	ErrEmptyInput = errors.New("verhoeff: input is empty")

	// ErrInvalidCharacter indicates that the input contains a character
	// that is not an ASCII decimal digit ('0'–'9').
	ErrInvalidCharacter = errors.New("verhoeff: invalid character")
)

// Digits parses s into its sequence of digit values, preserving the
// left-to-right input order (any reversal for checksum processing is
// the engine's concern, not the parser's).
//
// Validation (in order):
//  1. s must be non-empty (ErrEmptyInput).
//  2. Every byte of s must be an ASCII decimal digit; the first
//     offender fails the whole parse with ErrInvalidCharacter wrapped
//     with the character and its byte offset — no partial result, no
//     skipping.
//
// Digits is a pure function: no state is carried between calls, and
// identical inputs always produce identical sequences.
func Digits(s string) ([]uint8, error) {
	// 1) Reject empty input before any allocation.
	if s == "" {
		return nil, ErrEmptyInput
	}

	// 2) Convert byte-by-byte; the digit contract is ASCII, so any
	//    multi-byte rune fails on its first byte.
	out := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			// Report the full rune at the offending offset so
			// non-ASCII input prints readably.
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, ([]rune(s[i:]))[0], i)
		}
		out[i] = c - '0'
	}

	return out, nil
}
