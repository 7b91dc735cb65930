// Package codec adapts the version and versionrange value types to host
// serialization frameworks. The core packages stay free of framework
// concerns; documents that carry versions or ranges as strings decode
// through the wrapper types defined here.
//
// # Usage
//
//	type Dependency struct {
//	    Name     string        `json:"name" yaml:"name"`
//	    Required codec.Range   `json:"required" yaml:"required"`
//	    Resolved codec.Version `json:"resolved" yaml:"resolved"`
//	}
//
// Both wrappers implement encoding.TextMarshaler and
// encoding.TextUnmarshaler, which covers encoding/json in both directions
// and yaml.v3 encoding. yaml.v3 decoding goes through UnmarshalYAML since
// that library does not consult TextUnmarshaler.
//
// Decode errors are the underlying package sentinels
// (version.ErrMalformedVersion, versionrange.ErrMalformedRange, and the
// empty-input variants), so callers can branch with errors.Is.
package codec
