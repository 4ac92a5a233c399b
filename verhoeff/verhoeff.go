package verhoeff

// Verhoeff — dihedral-group check digit
//
// Description:
//
//	Every operation in this file reduces to one fold over the parsed
//	digit sequence: a running product in the dihedral group D5, with a
//	position-dependent permutation applied to each digit first.
//
// Algorithm Outline:
//  1. c = 0 (the group identity).
//  2. Walk the digits in REVERSE order; for the digit at reverse
//     position i (the last input digit has i = 0):
//     permuted = permutationTable[(i+offset) % 8][digit]
//     c        = dihedralTable[c][permuted]
//  3. Return c.
//
// The offset selects the mode, and the asymmetry is deliberate:
//   - offset 0 (validation): the trailing check digit is part of the
//     input, so it occupies reverse position 0 itself. The whole
//     string is consistent iff the fold lands on the identity.
//   - offset 1 (generation): the check digit is not appended yet, so
//     every payload digit is pre-shifted one position to where it
//     will sit once the digit IS appended. The check digit is then
//     the group inverse of the fold.
//
// Swapping the offsets produces checksums the validation path
// rejects.
//
// Complexity:
//
//	Time   = O(n), constant work per digit, all intermediates in [0,9]
//	Memory = O(n) for the parsed sequence (see Digits)

// Fold offsets for the two call modes.
const (
	validateOffset = 0 // input already carries its check digit
	checksumOffset = 1 // input is the bare payload, digit to be appended
)

// fold runs the core group fold over digits with the given
// permutation offset and returns the resulting group element.
func fold(digits []uint8, offset int) uint8 {
	var c uint8 // group identity
	n := len(digits)
	for i := 0; i < n; i++ {
		// Reverse position i holds the (n-1-i)-th input digit.
		permuted := permutationTable[(i+offset)%8][digits[n-1-i]]
		c = dihedralTable[c][permuted]
	}

	return c
}

// Checksum computes the Verhoeff check digit for s.
//
// s must be a non-empty string of ASCII decimal digits WITHOUT a check
// digit; the returned digit (0–9) is the one to append. Parse failures
// propagate as ErrEmptyInput or ErrInvalidCharacter — invalid input is
// never coerced to a default digit.
//
// Example:
//
//	digit, err := Checksum("12345") // 1, nil
func Checksum(s string) (uint8, error) {
	digits, err := Digits(s)
	if err != nil {
		return 0, err
	}

	return inverseTable[fold(digits, checksumOffset)], nil
}

// Append returns s with its Verhoeff check digit appended as a decimal
// character. Same preconditions and errors as Checksum; on error the
// result string is empty, never a silently unprotected copy of s.
//
// Example:
//
//	id, err := Append("12345") // "123451", nil
func Append(s string) (string, error) {
	digit, err := Checksum(s)
	if err != nil {
		return "", err
	}

	return s + string('0'+digit), nil
}

// Verify checks a string whose LAST character is its Verhoeff check
// digit. It is the primary validation surface: malformed input is
// distinguished from a well-formed string with a wrong check digit.
//
// Returns:
//
//   - (true, nil)  — well-formed, checksum consistent.
//   - (false, nil) — well-formed, checksum mismatch. This is a normal
//     negative verdict, not an error.
//   - (false, err) — empty input (ErrEmptyInput) or a non-digit
//     character (ErrInvalidCharacter).
//
// A single-character input is acceptable: it validates iff that one
// digit is 0 (the empty payload's check digit).
func Verify(s string) (bool, error) {
	digits, err := Digits(s)
	if err != nil {
		return false, err
	}

	return fold(digits, validateOffset) == 0, nil
}

// Validate is the boolean convenience form of Verify: it reports
// whether s (check digit included) is consistent, treating ANY parse
// failure as false. Callers that need to tell "malformed" apart from
// "checksum failed" must use Verify instead.
func Validate(s string) bool {
	ok, err := Verify(s)

	return err == nil && ok
}
