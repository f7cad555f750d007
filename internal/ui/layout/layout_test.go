package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) {
		t.Error("expected narrow terminal to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("minimum size should fit")
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Progress", 240, 3, 100)
	if lipgloss.Height(h) != HeaderHeight {
		t.Errorf("header height = %d, want %d", lipgloss.Height(h), HeaderHeight)
	}
	for _, want := range []string{"Kupu", "Progress", "240 XP", "3 days"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestDays(t *testing.T) {
	if Days(1) != "1 day" || Days(0) != "0 days" || Days(7) != "7 days" {
		t.Errorf("unexpected: %q %q %q", Days(1), Days(0), Days(7))
	}
}

func TestDuration(t *testing.T) {
	tests := map[int]string{
		0:    "0s",
		45:   "45s",
		750:  "12m 30s",
		3900: "1h 05m",
		-5:   "0s",
	}
	for in, want := range tests {
		if got := Duration(in); got != want {
			t.Errorf("Duration(%d) = %q, want %q", in, got, want)
		}
	}
}
