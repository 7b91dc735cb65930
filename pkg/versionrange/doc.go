// Package versionrange provides interval specifications over semantic
// versions: parsing, membership testing, and rendering.
//
// # Overview
//
// A Range is a pair of optional bounds with independent inclusivity flags.
// Ranges are written in NuGet-style bracket notation:
//
//	1.0        at least 1.0 (shorthand for "[1.0, )")
//	[1.0]      exactly 1.0
//	(1.0, )    greater than 1.0
//	(, 1.0]    1.0 or lower
//	[1.2, 3.2.5)   1.2 <= x < 3.2.5
//
// Bound versions are parsed with the loose grammar of pkg/version, so
// shorthand components ("1.2") and four-part versions are accepted.
//
// # Usage
//
// Parse a range and test membership:
//
//	r, err := versionrange.Parse("[1.2, 3.2.5)")
//	if err != nil {
//	    // Handle error
//	}
//	r.Satisfies(version.MustParseLoose("2.0.0")) // true
//	r.Satisfies(version.MustParseLoose("3.2.5")) // false
//
// Render a range:
//
//	r.String()       // "[1.2, 3.2.5)"  (round-trips through Parse)
//	r.PrettyString() // "(≥ 1.2 && < 3.2.5)"  (display only)
//
// # Error Handling
//
// TryParse never returns an error; a failed match is an ordinary outcome
// reported as false. Parse returns ErrEmptyRange for blank input and
// ErrMalformedRange, wrapped with the offending text, otherwise. A range
// either parses fully or not at all; no partially-populated range is ever
// returned.
//
// All operations are pure computations over immutable values and are safe
// for concurrent use without coordination.
package versionrange
