package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		limit    int
		expected string
	}{
		{name: "shorter than limit", text: "hello", limit: 10, expected: "hello"},
		{name: "exactly limit", text: "hello", limit: 5, expected: "hello"},
		{name: "cut with ellipsis", text: "hello world", limit: 6, expected: "hello…"},
		{name: "multibyte counted as one", text: "日本語のテキスト", limit: 4, expected: "日本語…"},
		{name: "zero limit", text: "hello", limit: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TruncateRunes(tt.text, tt.limit); got != tt.expected {
				t.Fatalf("TruncateRunes(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.expected)
			}
		})
	}
}
