package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Submission holds the values posted for one form, keyed by field name.
// It only lives for the duration of a request.
type Submission map[string]string

// Get returns the trimmed value of a field, or "" when it is absent.
func (s Submission) Get(field string) string {
	return strings.TrimSpace(s[field])
}

// Has reports whether the field carries a non-blank value.
func (s Submission) Has(field string) bool {
	return s.Get(field) != ""
}

// UnmarshalJSON accepts a flat JSON object. Strings are kept, numbers keep their
// literal text, true becomes "true", false and null are dropped. Nested values
// are rejected. Every value is normalized to NFC.
func (s *Submission) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("submission must be a JSON object")
	}

	out := make(Submission, len(raw))
	for k, v := range raw {
		v = bytes.TrimSpace(v)
		if len(v) == 0 {
			continue
		}
		switch v[0] {
		case '"':
			var str string
			if err := json.Unmarshal(v, &str); err != nil {
				return fmt.Errorf("field %s: %w", k, err)
			}
			out[k] = norm.NFC.String(str)
		case 't':
			out[k] = "true"
		case 'f', 'n':
			// false and null count as absent
		case '{', '[':
			return fmt.Errorf("field %s must be a scalar value", k)
		default:
			out[k] = string(v)
		}
	}
	*s = out
	return nil
}

// Normalize returns a copy with every value normalized to NFC.
func (s Submission) Normalize() Submission {
	out := make(Submission, len(s))
	for k, v := range s {
		out[k] = norm.NFC.String(v)
	}
	return out
}
