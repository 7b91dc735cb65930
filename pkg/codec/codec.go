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

package codec

import (
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/verspec/pkg/version"
	"github.com/NVIDIA/verspec/pkg/versionrange"
)

// Version wraps version.Version so it can appear as a plain string in JSON
// and YAML documents. Decoding uses the loose grammar; encoding emits the
// display text.
type Version struct {
	version.Version
}

// MarshalText implements encoding.TextMarshaler, which also drives
// encoding/json and yaml.v3 encoding.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.Version.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Decode failures
// surface the version package sentinels unchanged, so callers can branch
// with errors.Is.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := version.ParseLoose(string(text))
	if err != nil {
		return err
	}
	v.Version = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler; yaml.v3 does not consult
// TextUnmarshaler on decode.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}

// Range wraps versionrange.Range so it can appear as a bracket-notation
// string in JSON and YAML documents.
type Range struct {
	versionrange.Range
}

// MarshalText implements encoding.TextMarshaler, which also drives
// encoding/json and yaml.v3 encoding.
func (r Range) MarshalText() ([]byte, error) {
	return []byte(r.Range.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Decode failures
// surface the versionrange package sentinels unchanged.
func (r *Range) UnmarshalText(text []byte) error {
	parsed, err := versionrange.Parse(string(text))
	if err != nil {
		return err
	}
	r.Range = parsed
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler; yaml.v3 does not consult
// TextUnmarshaler on decode.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}
