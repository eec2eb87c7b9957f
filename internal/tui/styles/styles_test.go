package styles

import (
	"strings"
	"testing"
)

func TestStatusIcon(t *testing.T) {
	cases := []struct {
		status string
		glyph  string
	}{
		{"complete", "✓"},
		{"in_progress", "◐"},
		{"pending", "○"},
		{"anything else", "○"},
	}

	for _, tc := range cases {
		if got := StatusIcon(tc.status); !strings.Contains(got, tc.glyph) {
			t.Errorf("StatusIcon(%q) = %q, want it to contain %q", tc.status, got, tc.glyph)
		}
	}
}
