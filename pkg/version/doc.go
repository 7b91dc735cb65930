// Package version provides parsing, normalization, and ordering for
// semantic versions in the relaxed NuGet-style dialect.
//
// # Overview
//
// A version is a four-component non-negative numeric tuple
// (Major.Minor.Patch.Revision) with an optional pre-release label
// introduced by a hyphen. Two grammars are supported:
//
//   - Strict: exactly three components, no interior whitespace
//     (e.g., "1.2.3", "1.2.3-beta")
//   - Loose: one to four components with whitespace tolerated around the
//     dots (e.g., "1", "1.0", "1.2.3.4", "2.1.4.3-pre-1")
//
// Components absent from the input normalize to zero, so "1.0" and
// "1.0.0.0" are equivalent values. The display text is preserved, however:
// parsing "1.0" yields a Version whose String method returns "1.0".
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.ParseLoose("1.0-alpha")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.0-alpha
//
// Branch without error handling using the Try variants:
//
//	if v, ok := version.TryParseStrict(input); ok {
//	    // input is a strict three-component version
//	}
//
// Compare versions:
//
//	a := version.MustParseLoose("1.01-RC-1")
//	b := version.MustParseLoose("1.1")
//	fmt.Println(a.LessThan(b)) // Output: true
//
// # Ordering Semantics
//
// Compare defines a strict total order:
//
//  1. The numeric four-tuples are compared lexicographically.
//  2. At equal numeric value, a release (no pre-release label) is greater
//     than a pre-release.
//  3. Two pre-release labels are compared as case-folded ordinal strings.
//
// Equal and Hash are consistent with Compare: versions that compare equal
// are Equal and hash identically.
//
// # Error Handling
//
// The Try variants never return an error; a failed match is an ordinary
// outcome reported as false. The Parse variants return:
//
//   - ErrEmptyVersion: input is empty or blank
//   - ErrMalformedVersion: input does not match the grammar (wrapped with
//     the offending text)
//
// For constant initialization, use MustParseLoose which panics on error.
//
// All operations are pure computations over immutable values and are safe
// for concurrent use without coordination.
package version
