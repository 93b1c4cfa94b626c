package cli

import (
	"strings"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	testCases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1048576, "1.0 MB"},
		{5 * 1024 * 1024 * 1024, "5.0 GB"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatBytes(tc.bytes); got != tc.want {
				t.Errorf("FormatBytes(%d) = %q, want %q", tc.bytes, got, tc.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{2 * time.Second, "2.0s"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := FormatDuration(tc.d); got != tc.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tc.d, got, tc.want)
			}
		})
	}
}

func TestFormatDimensions(t *testing.T) {
	if got := FormatDimensions(1200, 630); got != "1200x630" {
		t.Errorf("FormatDimensions = %q, want 1200x630", got)
	}
}

func TestCardSummary(t *testing.T) {
	summary := CardSummary("/tmp/public/og-image.png", "1200x630", "41.2 KB", "85ms")

	for _, want := range []string{"Card Rendered!", "/tmp/public/og-image.png", "1200x630", "41.2 KB", "85ms"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
