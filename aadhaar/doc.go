// Package aadhaar validates the structure of Aadhaar numbers — the
// 12-digit Indian national identifier whose last digit is a Verhoeff
// check digit.
//
// The package is a thin fixed-length layer over
// github.com/katalvlaran/checkdigit/verhoeff: it enforces the 12-digit
// shape with a structured error taxonomy, then delegates the checksum
// verdict to the shared engine.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/checkdigit/aadhaar"
//
//	ok, err := aadhaar.Validate("123456789010")
//	switch {
//	case errors.Is(err, aadhaar.ErrInvalidLength):
//	    // wrong number of digits — the error carries the actual count
//	case err != nil:
//	    // empty or non-digit input (verhoeff.ErrEmptyInput /
//	    // verhoeff.ErrInvalidCharacter)
//	case ok:
//	    // structurally valid
//	}
//
// Errors (sentinel):
//
//	– verhoeff.ErrEmptyInput       if the input is empty.
//	– verhoeff.ErrInvalidCharacter if the input has a non-digit character.
//	– ErrInvalidLength             if the digit count is not exactly 12.
//
// ⚠️ Scope: this is an arithmetic/structural check only. A true verdict
// means the digits are internally consistent, NOT that the number was
// ever issued to a real person — issuance can only be confirmed
// against the authoritative registry.
package aadhaar
