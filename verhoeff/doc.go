// Package verhoeff computes and verifies Verhoeff check digits over
// strings of decimal digits.
//
// 🚀 What is the Verhoeff algorithm?
//
//	A check-digit scheme built on the dihedral group of order 10 (D5).
//	Because the group operation is non-commutative and each position
//	applies its own digit permutation, the scheme detects:
//	  • 100% of single-digit substitution errors
//	  • 100% of adjacent-digit transposition errors
//	  • a high fraction of twin, jump-transposition and phonetic errors
//	It is widely used for identification numbers (e.g. the Indian
//	Aadhaar ID — see the sibling aadhaar package).
//
// ✨ Key features:
//   - Checksum — compute the check digit for a digit string
//   - Append — return the input with its check digit appended
//   - Verify — validate a string whose last digit is the check digit,
//     distinguishing malformed input from a checksum mismatch
//   - Validate — boolean convenience form of Verify
//   - Digits — the underlying strict digit parser
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/checkdigit/verhoeff"
//
//	id, err := verhoeff.Append("12345678901") // "123456789010"
//	ok := verhoeff.Validate(id)               // true
//
// Errors (sentinel):
//
//	– ErrEmptyInput       if the input string is empty.
//	– ErrInvalidCharacter if the input contains a non-digit character.
//
// A checksum mismatch is NOT an error: Verify returns (false, nil).
//
// Performance:
//
//   - Time:   O(n) over the input length, constant work per digit
//   - Memory: O(n) for the parsed digit sequence, nothing retained
//
// All functions are pure and safe for unsynchronized concurrent use:
// the lookup tables are fixed at definition time and never mutated.
package verhoeff
