package runner

import (
	"bytes"
	"regexp"
	"testing"
	"time"
)

// TestFormatRunID verifies run ID formatting.
func TestFormatRunID(t *testing.T) {
	timestamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	got := FormatRunID(timestamp, "deadbeef")
	if got != "20240102T030405Z-deadbeef" {
		t.Fatalf("unexpected run id: %q", got)
	}
}

// TestNewRunIDWithRand verifies deterministic run ID generation with a reader.
// The UUID version and variant bits rewrite bytes 6 and 8.
func TestNewRunIDWithRand(t *testing.T) {
	timestamp := time.Date(2024, 6, 7, 8, 9, 10, 0, time.UTC)
	reader := bytes.NewReader(bytes.Repeat([]byte{0x00, 0x11, 0x22, 0x33}, 4))
	got, err := NewRunIDWithRand(timestamp, reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "20240607T080910Z-00112233-0011-4233-8011-223300112233" {
		t.Fatalf("unexpected run id: %q", got)
	}
}

// TestNewRunIDShortReader verifies short random sources fail.
func TestNewRunIDShortReader(t *testing.T) {
	if _, err := NewRunIDWithRand(time.Now(), bytes.NewReader([]byte{1, 2})); err == nil {
		t.Fatalf("expected error for short reader")
	}
}

// TestNewRunIDShape verifies generated ids use the timestamp-suffix layout.
func TestNewRunIDShape(t *testing.T) {
	id, err := NewRunID()
	if err != nil {
		t.Fatalf("new run id: %v", err)
	}
	if !regexp.MustCompile(`^\d{8}T\d{6}Z-[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`).MatchString(id) {
		t.Fatalf("unexpected run id shape %q", id)
	}
}
