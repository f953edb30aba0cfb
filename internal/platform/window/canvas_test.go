package window

import (
	"image/color"
	"math"
	"testing"

	"github.com/vovakirdan/rainshield/internal/core"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		in   core.Color
		want color.RGBA
	}{
		{"#EBBF6E", color.RGBA{R: 0xEB, G: 0xBF, B: 0x6E, A: 255}},
		{core.ColorDefault, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"blue", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	}

	for _, tt := range tests {
		if got := toRGBA(tt.in); got != tt.want {
			t.Errorf("toRGBA(%q) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestDomeSpans(t *testing.T) {
	spans := domeSpans(100, 50, 10)
	if len(spans) != 10 {
		t.Fatalf("len(domeSpans) = %d, expected 10", len(spans))
	}

	for i, s := range spans {
		if s.y >= 50 {
			t.Errorf("span %d at y = %v, expected above the base", i, s.y)
		}
		if math.Abs(s.x+s.w/2-100) > 1e-9 {
			t.Errorf("span %d centered at %v, expected 100", i, s.x+s.w/2)
		}
		if i > 0 && s.w >= spans[i-1].w {
			t.Errorf("span %d width %v should narrow toward the top", i, s.w)
		}
	}

	if domeSpans(0, 0, 0) != nil {
		t.Error("domeSpans with zero radius should be empty")
	}
}
