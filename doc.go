// Package checkdigit is your toolbox for computing and verifying
// check digits — the single extra digit that catches typos in IDs,
// invoices and account numbers before they ever reach a database.
//
// 🚀 What is checkdigit?
//
//	A small, thread-safe, zero-dependency library built around
//	table-driven check-digit schemes:
//		• Verhoeff: dihedral-group (D5) checksum — catches ALL single-digit
//		  substitutions and ALL adjacent transpositions
//		• Aadhaar: fixed-length (12-digit) identifier validation built on
//		  the Verhoeff core, with a structured error taxonomy
//
// ✨ Why choose checkdigit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, immutable tables, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – the table-driven pattern makes adding Luhn/Damm-style
//     schemes a one-package affair
//
// Under the hood, everything is organized under two subpackages:
//
//	verhoeff/ — the checksum engine: canonical tables, digit parsing,
//	            Checksum / Append / Verify / Validate
//	aadhaar/  — 12-digit national-ID validation delegating to verhoeff
//
// Quick taste:
//
//	digit, _ := verhoeff.Checksum("12345")   // 1
//	ok := verhoeff.Validate("123451")        // true
//
// Dive into each package's doc.go and example_test.go for full
// walkthroughs, error taxonomies and benchmarks.
//
//	go get github.com/katalvlaran/checkdigit
package checkdigit
