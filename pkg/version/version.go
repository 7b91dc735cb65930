// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion     = errors.New("version string is empty")
	ErrMalformedVersion = errors.New("malformed version string")
)

// The strict and loose grammars differ only in how many numeric components
// they accept and whether whitespace is tolerated around the dots, so both
// are built from the same parameterized pattern. Compiled once at load;
// regexp values are immutable and safe for concurrent use.
var (
	strictPattern = grammar(2, 2, ``)
	loosePattern  = grammar(0, 3, `\s*`)
)

// grammar builds a version pattern accepting between minDots+1 and
// maxDots+1 numeric components, with gap tolerated around each dot,
// followed by an optional pre-release label. The label must start with a
// letter and may continue with letters, digits, or hyphens.
func grammar(minDots, maxDots int, gap string) *regexp.Regexp {
	numbers := fmt.Sprintf(`\d+(?:%s\.%s\d+){%d,%d}`, gap, gap, minDots, maxDots)
	return regexp.MustCompile(`^(` + numbers + `)(?:-([A-Za-z][0-9A-Za-z-]*))?$`)
}

// Version represents a semantic version in the relaxed four-component
// dialect Major.Minor.Patch[.Revision][-Prerelease]. The Patch component is
// also known as "Build" in loose four-part versions. Components absent from
// the parsed input normalize to zero.
//
// A Version is an immutable value: it is fully populated at parse or
// construction time and never modified afterwards. The zero Version is
// "0.0.0".
//
// Note that Go's built-in == compares the Prerelease field case-sensitively
// and includes the captured display text; use Equal or Compare for the
// semantic equivalence defined by this package.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	Revision int

	// Prerelease is the optional label after the hyphen. Its case is
	// preserved for display but ignored by Compare, Equal, and Hash.
	Prerelease string

	// text is the trimmed input with interior whitespace removed, kept so
	// String returns what was parsed rather than a re-serialization.
	text string
}

// New creates a Version with the given major, minor, and patch components.
// The revision is zero and there is no pre-release label.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// NewRevision creates a four-component Version. Unlike New, the revision is
// always rendered, even when zero.
func NewRevision(major, minor, patch, revision int) Version {
	return Version{
		Major:    major,
		Minor:    minor,
		Patch:    patch,
		Revision: revision,
		text:     fmt.Sprintf("%d.%d.%d.%d", major, minor, patch, revision),
	}
}

// NewPrerelease creates a Version with a pre-release label. The label is
// stored as given; callers wanting validation should parse instead.
func NewPrerelease(major, minor, patch int, label string) Version {
	return Version{Major: major, Minor: minor, Patch: patch, Prerelease: label}
}

// TryParseStrict parses s using the strict grammar: exactly three numeric
// components with no interior whitespace, plus an optional pre-release
// label. It reports false on any malformed input and never panics.
func TryParseStrict(s string) (Version, bool) {
	return tryParse(s, strictPattern)
}

// TryParseLoose parses s using the loose compatibility grammar: one to four
// numeric components with whitespace tolerated around the dots, plus an
// optional pre-release label. It reports false on any malformed input and
// never panics.
func TryParseLoose(s string) (Version, bool) {
	return tryParse(s, loosePattern)
}

// ParseStrict is the error-returning form of TryParseStrict.
// It returns ErrEmptyVersion for blank input and ErrMalformedVersion,
// wrapped with the offending text, for anything the grammar rejects.
func ParseStrict(s string) (Version, error) {
	return parse(s, strictPattern)
}

// ParseLoose is the error-returning form of TryParseLoose.
// It returns ErrEmptyVersion for blank input and ErrMalformedVersion,
// wrapped with the offending text, for anything the grammar rejects.
func ParseLoose(s string) (Version, error) {
	return parse(s, loosePattern)
}

// MustParseLoose parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use ParseLoose and handle errors explicitly.
func MustParseLoose(s string) Version {
	v, err := ParseLoose(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseLoose: %v", err))
	}
	return v
}

func parse(s string, pattern *regexp.Regexp) (Version, error) {
	if strings.TrimSpace(s) == "" {
		return Version{}, ErrEmptyVersion
	}
	v, ok := tryParse(s, pattern)
	if !ok {
		return Version{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	return v, nil
}

func tryParse(s string, pattern *regexp.Regexp) (Version, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, false
	}

	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, false
	}

	// The grammar guarantees 1-4 dot-separated digit runs once interior
	// whitespace is removed.
	var numbers [4]int
	for i, part := range strings.Split(stripSpace(m[1]), ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			// Digit runs only fail Atoi on overflow.
			return Version{}, false
		}
		numbers[i] = n
	}

	return Version{
		Major:      numbers[0],
		Minor:      numbers[1],
		Patch:      numbers[2],
		Revision:   numbers[3],
		Prerelease: m[2],
		text:       stripSpace(s),
	}, true
}

// stripSpace removes every whitespace rune the loose grammar tolerates so
// the displayed text is stable regardless of input spacing.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// fold returns the case-folded form of a pre-release label. Caser values
// are stateful, so a fresh one is built per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// String returns the version as it was written: the trimmed,
// whitespace-stripped input for parsed versions ("1.0" stays "1.0" even
// though it normalizes to 1.0.0.0), or the canonical rendering for
// constructed ones.
func (v Version) String() string {
	if v.text != "" {
		return v.text
	}
	return v.format()
}

func (v Version) format() string {
	var s string
	if v.Revision != 0 {
		s = fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Patch, v.Revision)
	} else {
		s = fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	return s
}

// IsPrerelease returns true if the version carries a pre-release label.
func (v Version) IsPrerelease() bool {
	return v.Prerelease != ""
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
//
// The numeric four-tuples are compared lexicographically. At equal numeric
// value a release (no label) is greater than a pre-release, and two labels
// are compared as case-folded ordinal strings. Useful for sorting.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return intCompare(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return intCompare(v.Minor, other.Minor)
	}
	if v.Patch != other.Patch {
		return intCompare(v.Patch, other.Patch)
	}
	if v.Revision != other.Revision {
		return intCompare(v.Revision, other.Revision)
	}

	// Release sorts after pre-release at equal numeric value.
	switch {
	case v.Prerelease == "" && other.Prerelease == "":
		return 0
	case v.Prerelease == "":
		return 1
	case other.Prerelease == "":
		return -1
	}
	return strings.Compare(fold(v.Prerelease), fold(other.Prerelease))
}

// Equal returns true if v and other are semantically equivalent: all four
// numeric components match and the pre-release labels match
// case-insensitively. Display text plays no part, so Equal holds for
// versions parsed from "1.0" and "1.0.0.0".
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// LessThan returns true if v < other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// LessThanOrEqual returns true if v <= other.
func (v Version) LessThanOrEqual(other Version) bool {
	return v.Compare(other) <= 0
}

// GreaterThan returns true if v > other.
func (v Version) GreaterThan(other Version) bool {
	return v.Compare(other) > 0
}

// GreaterThanOrEqual returns true if v >= other.
func (v Version) GreaterThanOrEqual(other Version) bool {
	return v.Compare(other) >= 0
}

// Hash returns a hash consistent with Equal: equivalent versions hash
// identically. The numeric tuple is mixed with the case-folded pre-release
// hash using a fixed odd multiplier to reduce clustering.
func (v Version) Hash() uint64 {
	h := uint64(v.Major)
	h = h*31 + uint64(v.Minor)
	h = h*31 + uint64(v.Patch)
	h = h*31 + uint64(v.Revision)
	if v.Prerelease != "" {
		f := fnv.New64a()
		f.Write([]byte(fold(v.Prerelease)))
		h = h*4567 + f.Sum64()
	}
	return h
}

// Compare orders two possibly-nil versions: a nil version is less than any
// non-nil version and two nils are equal.
func Compare(a, b *Version) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return a.Compare(*b)
}

// Equal reports whether two possibly-nil versions are equivalent. Two nils
// are equal; a nil never equals a non-nil version.
func Equal(a, b *Version) bool {
	return Compare(a, b) == 0
}

func intCompare(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
