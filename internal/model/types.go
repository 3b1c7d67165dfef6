package model

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04"
	timestampLayout = "2006-01-02T15:04:05"
)

// Date is a calendar date in YYYY-MM-DD wire form. The zero value means
// "unset" and is never stored.
type Date string

// ParseDate validates s against the YYYY-MM-DD layout.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date(s), nil
}

func (d Date) String() string { return string(d) }

// Clock is a 24-hour wall-clock time in HH:MM wire form.
type Clock string

// ParseClock validates s against the HH:MM layout.
func ParseClock(s string) (Clock, error) {
	if _, err := time.Parse(clockLayout, s); err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return Clock(s), nil
}

func (c Clock) String() string { return string(c) }

// ResourceDoc is an opaque structured document attached to an event. No shape
// is enforced beyond being valid JSON; it round-trips through a text column.
type ResourceDoc map[string]any

// Encode serializes the document for storage. A nil document encodes as the
// empty object, which is also the column default.
func (d ResourceDoc) Encode() (string, error) {
	if d == nil {
		return "{}", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("encode resources: %w", err)
	}
	return string(b), nil
}

// DecodeResources parses a stored resources column back into a document.
func DecodeResources(s string) (ResourceDoc, error) {
	if s == "" {
		return ResourceDoc{}, nil
	}
	var d ResourceDoc
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}
	if d == nil {
		d = ResourceDoc{}
	}
	return d, nil
}

// FormatTimestamp renders a stored timestamp in the combined date-time wire
// form used by every response.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
