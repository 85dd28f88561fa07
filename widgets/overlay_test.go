package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestOverlayAtPlacesContent(t *testing.T) {
	base := FitCanvas("", 10, 3)
	out := OverlayAt(base, "XY", 4, 1, 10, 3)
	lines := strings.Split(out, "\n")
	if lines[1] != "    XY    " {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[0] != strings.Repeat(" ", 10) {
		t.Fatalf("row 0 should be untouched, got %q", lines[0])
	}
}

func TestOverlayAtDropsRowsOutsideBase(t *testing.T) {
	base := FitCanvas("", 4, 2)
	out := OverlayAt(base, "a\nb\nc", 0, 1, 4, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[1], "a") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestBackdropShadesBlankCells(t *testing.T) {
	out := Backdrop("hi", 4, 2, lipgloss.NewStyle())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if lines[0] != "hi░░" {
		t.Fatalf("row 0 = %q", lines[0])
	}
	if lines[1] != "░░░░" {
		t.Fatalf("row 1 = %q", lines[1])
	}
}

func TestFitCanvasPadsAndClipsWideRunes(t *testing.T) {
	out := FitCanvas("abcdef\n갤러리", 4, 3)
	lines := strings.Split(out, "\n")
	want := []string{"abcd", "갤러", "    "}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
