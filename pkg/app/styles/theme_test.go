package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestHeaderFor(t *testing.T) {
	tests := []struct {
		scroll float64
		opaque bool
	}{
		{0, true},
		{0.05, true},
		{0.1, true},
		{0.11, false},
		{1, false},
	}
	for _, tt := range tests {
		bg := HeaderFor(tt.scroll).GetBackground()
		_, transparent := bg.(lipgloss.NoColor)
		if tt.opaque && bg != BlackVeryDark {
			t.Errorf("scroll %.2f: expected opaque header, got background %v", tt.scroll, bg)
		}
		if !tt.opaque && !transparent {
			t.Errorf("scroll %.2f: expected transparent header, got background %v", tt.scroll, bg)
		}
	}
}
