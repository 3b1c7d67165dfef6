package model

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024-12-15", false},
		{"2025-01-01", false},
		{"15-12-2024", true},
		{"2024/12/15", true},
		{"2024-13-01", true},
		{"not-a-date", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := ParseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && d.String() != tt.in {
				t.Errorf("ParseDate(%q) = %q, want input echoed", tt.in, d)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"10:00", false},
		{"23:59", false},
		{"00:00", false},
		{"24:00", true},
		{"10:60", true},
		{"10", true},
		{"10:00:00", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && c.String() != tt.in {
				t.Errorf("ParseClock(%q) = %q, want input echoed", tt.in, c)
			}
		})
	}
}

func TestResourceDocEncode(t *testing.T) {
	var nilDoc ResourceDoc
	got, err := nilDoc.Encode()
	if err != nil {
		t.Fatalf("Encode(nil) error = %v", err)
	}
	if got != "{}" {
		t.Errorf("Encode(nil) = %q, want {}", got)
	}

	doc := ResourceDoc{"materials": []any{"slides.pdf"}}
	got, err = doc.Encode()
	if err != nil {
		t.Fatalf("Encode error = %v", err)
	}
	if got != `{"materials":["slides.pdf"]}` {
		t.Errorf("Encode = %q", got)
	}
}

func TestDecodeResources(t *testing.T) {
	doc, err := DecodeResources("")
	if err != nil {
		t.Fatalf("DecodeResources(empty) error = %v", err)
	}
	if doc == nil || len(doc) != 0 {
		t.Errorf("DecodeResources(empty) = %v, want empty doc", doc)
	}

	doc, err = DecodeResources(`{"key": "value"}`)
	if err != nil {
		t.Fatalf("DecodeResources error = %v", err)
	}
	if doc["key"] != "value" {
		t.Errorf("DecodeResources key = %v, want value", doc["key"])
	}

	if _, err := DecodeResources("not json"); err == nil {
		t.Error("DecodeResources(invalid) expected error")
	}

	// JSON null stored in the column decodes as an empty document.
	doc, err = DecodeResources("null")
	if err != nil {
		t.Fatalf("DecodeResources(null) error = %v", err)
	}
	if doc == nil {
		t.Error("DecodeResources(null) = nil, want empty doc")
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC)
	if got := FormatTimestamp(ts); got != "2024-12-15T10:30:00" {
		t.Errorf("FormatTimestamp = %q", got)
	}

	// Non-UTC inputs are normalized.
	loc := time.FixedZone("X", 3600)
	ts = time.Date(2024, 12, 15, 11, 30, 0, 0, loc)
	if got := FormatTimestamp(ts); got != "2024-12-15T10:30:00" {
		t.Errorf("FormatTimestamp(zoned) = %q", got)
	}
}

func TestEventPatchIsEmpty(t *testing.T) {
	if !(EventPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	title := "x"
	if (EventPatch{Title: &title}).IsEmpty() {
		t.Error("patch with title should not be empty")
	}
}
