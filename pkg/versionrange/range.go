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

package versionrange

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NVIDIA/verspec/pkg/version"
)

// Error types for range parsing failures
var (
	ErrEmptyRange     = errors.New("version range string is empty")
	ErrMalformedRange = errors.New("malformed version range")
)

// Range is an interval of versions with optional bounds. A nil Min means
// unbounded below and a nil Max means unbounded above. The inclusivity
// flags are meaningful only when the corresponding bound is present but are
// stored either way; parsing "(1.6, ]" records MaxInclusive even though no
// upper bound exists.
//
// A Range is an immutable value, produced by parsing or by the
// constructors; do not modify the bound versions through the pointers.
type Range struct {
	Min          *version.Version
	MinInclusive bool
	Max          *version.Version
	MaxInclusive bool
}

// AtLeast returns the range of every version greater than or equal to v.
// This is the meaning of a bare version string such as "1.0.0".
func AtLeast(v version.Version) Range {
	return Range{Min: &v, MinInclusive: true}
}

// Exactly returns the degenerate range containing only versions equivalent
// to v, written "[v]" in bracket notation.
func Exactly(v version.Version) Range {
	return Range{Min: &v, MinInclusive: true, Max: &v, MaxInclusive: true}
}

// New returns a range with the given bounds. Either bound may be nil to
// leave that side unbounded.
func New(min *version.Version, minInclusive bool, max *version.Version, maxInclusive bool) Range {
	return Range{Min: min, MinInclusive: minInclusive, Max: max, MaxInclusive: maxInclusive}
}

// TryParse parses a range description and reports false on any malformed
// input; it never panics. Two notations are accepted:
//
//   - a bare version (loose grammar), meaning "at least this version";
//   - a bracket interval "[min, max)" where '[' or '(' selects lower-bound
//     inclusivity, ']' or ')' upper-bound inclusivity, and either side may
//     be blank for an unbounded interval. A single bracketed version
//     supplies both bounds, so "[1.0]" matches exactly 1.0 and "(1.0)"
//     nothing at all.
func TryParse(s string) (Range, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, false
	}

	// The bare-version shorthand takes priority over interval syntax.
	if v, ok := version.TryParseLoose(s); ok {
		return AtLeast(v), true
	}

	if len(s) < 3 {
		return Range{}, false
	}

	var r Range
	switch s[0] {
	case '[':
		r.MinInclusive = true
	case '(':
	default:
		return Range{}, false
	}
	switch s[len(s)-1] {
	case ']':
		r.MaxInclusive = true
	case ')':
	default:
		return Range{}, false
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) > 2 {
		return Range{}, false
	}

	// An interval must specify at least one bound.
	allBlank := true
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			allBlank = false
			break
		}
	}
	if allBlank {
		return Range{}, false
	}

	// A single segment supplies both bounds.
	minText := parts[0]
	maxText := minText
	if len(parts) == 2 {
		maxText = parts[1]
	}

	if strings.TrimSpace(minText) != "" {
		v, ok := version.TryParseLoose(minText)
		if !ok {
			return Range{}, false
		}
		r.Min = &v
	}
	if strings.TrimSpace(maxText) != "" {
		v, ok := version.TryParseLoose(maxText)
		if !ok {
			return Range{}, false
		}
		r.Max = &v
	}
	return r, true
}

// Parse is the error-returning form of TryParse. It returns ErrEmptyRange
// for blank input and ErrMalformedRange, wrapped with the offending text,
// for anything TryParse rejects.
func Parse(s string) (Range, error) {
	if strings.TrimSpace(s) == "" {
		return Range{}, ErrEmptyRange
	}
	r, ok := TryParse(s)
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}
	return r, nil
}

// MustParse parses a range string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return r
}

// Satisfies reports whether v lies within the range. An absent bound
// imposes no constraint on its side.
func (r Range) Satisfies(v version.Version) bool {
	if r.Min != nil {
		c := v.Compare(*r.Min)
		if c < 0 || (c == 0 && !r.MinInclusive) {
			return false
		}
	}
	if r.Max != nil {
		c := v.Compare(*r.Max)
		if c > 0 || (c == 0 && !r.MaxInclusive) {
			return false
		}
	}
	return true
}

// String renders the range in the bracket notation TryParse accepts. The
// "at least" shorthand renders as the bare minimum version, the degenerate
// inclusive range as "[v]", and everything else as an interval with absent
// bounds left blank.
func (r Range) String() string {
	if r.Min != nil && r.MinInclusive && r.Max == nil && !r.MaxInclusive {
		return r.Min.String()
	}
	if r.Min != nil && r.Max != nil && r.Min.Equal(*r.Max) && r.MinInclusive && r.MaxInclusive {
		return "[" + r.Min.String() + "]"
	}

	var b strings.Builder
	if r.MinInclusive {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}
	if r.Min != nil {
		b.WriteString(r.Min.String())
	}
	b.WriteString(", ")
	if r.Max != nil {
		b.WriteString(r.Max.String())
	}
	if r.MaxInclusive {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}
	return b.String()
}

// PrettyString renders the range in mathematical notation for display:
// "(≥ 1.0)" for the shorthand, "(= 1.0)" for the degenerate range, and
// otherwise the bounds joined with " && " using ≥/> and ≤/< per
// inclusivity, e.g. "(≥ 1.2 && < 3.2.5)". This notation is display-only
// and is not parsed.
func (r Range) PrettyString() string {
	if r.Min != nil && r.MinInclusive && r.Max == nil && !r.MaxInclusive {
		return fmt.Sprintf("(≥ %s)", r.Min)
	}
	if r.Min != nil && r.Max != nil && r.Min.Equal(*r.Max) && r.MinInclusive && r.MaxInclusive {
		return fmt.Sprintf("(= %s)", r.Min)
	}

	var b strings.Builder
	b.WriteByte('(')
	if r.Min != nil {
		if r.MinInclusive {
			b.WriteString("≥ ")
		} else {
			b.WriteString("> ")
		}
		b.WriteString(r.Min.String())
	}
	if r.Max != nil {
		if r.Min != nil {
			b.WriteString(" && ")
		}
		if r.MaxInclusive {
			b.WriteString("≤ ")
		} else {
			b.WriteString("< ")
		}
		b.WriteString(r.Max.String())
	}
	b.WriteByte(')')
	return b.String()
}
