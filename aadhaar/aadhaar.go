package aadhaar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/checkdigit/verhoeff"
)

// Length is the exact number of digits in an Aadhaar number, the
// twelfth being the Verhoeff check digit. It is a structural constant
// of the identifier scheme, not configuration.
const Length = 12

// ErrInvalidLength indicates that the input, while non-empty and
// all-digit, does not have exactly Length digits. It is wrapped with
// the actual digit count; match with errors.Is.
var ErrInvalidLength = errors.New("aadhaar: number must be 12 digits")

// Validate checks whether id is a structurally valid Aadhaar number.
//
// Validation (in order):
//  1. id must parse as a non-empty all-digit string
//     (verhoeff.ErrEmptyInput, verhoeff.ErrInvalidCharacter) — a bad
//     character is reported as such even when the length is also
//     wrong.
//  2. The digit count must be exactly Length (ErrInvalidLength,
//     wrapped with the actual count) — never truncated or padded.
//  3. The Verhoeff fold over all 12 digits decides the verdict.
//
// Returns:
//
//   - (true, nil)  — shape and check digit both consistent.
//   - (false, nil) — correct shape, check digit mismatch.
//   - (false, err) — one of the structural errors above.
//
// A true verdict is NOT proof the number was issued; see the package
// documentation.
func Validate(id string) (bool, error) {
	// 1) Confirm non-empty, all-digit input first.
	digits, err := verhoeff.Digits(id)
	if err != nil {
		return false, err
	}

	// 2) Enforce the fixed length, reporting the actual count.
	if len(digits) != Length {
		return false, fmt.Errorf("%w: got %d", ErrInvalidLength, len(digits))
	}

	// 3) Delegate the checksum verdict to the shared engine.
	return verhoeff.Verify(id)
}
