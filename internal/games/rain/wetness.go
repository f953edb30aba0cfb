package rain

import (
	"fmt"

	"github.com/vovakirdan/rainshield/internal/core"
)

// Body colors from dry to soaked.
var (
	DryColor    = core.RGB(0xEB, 0xBF, 0x6E)
	SoakedColor = core.RGB(0xEB, 0x6C, 0x73)

	wetColors = []core.Color{
		core.RGB(0xEB, 0xAD, 0x6E),
		core.RGB(0xEB, 0x96, 0x6D),
		core.RGB(0xEB, 0x80, 0x6C),
	}
)

// Wetness is an NPC's bounded hit counter: Dry, then Wet levels 1..max,
// then Soaked. The zero value is dry with a max of one wet level.
type Wetness struct {
	level int
	max   int
}

// NewWetness returns a dry counter with maxLevel wet levels before soaked.
func NewWetness(maxLevel int) Wetness {
	return Wetness{max: max(maxLevel, 1)}
}

func (w Wetness) limit() int {
	return max(w.max, 1)
}

// Level returns 0 when dry, 1..max when wet, and max+1 when soaked.
func (w Wetness) Level() int {
	return w.level
}

// Dry reports whether no rain has been absorbed.
func (w Wetness) Dry() bool {
	return w.level == 0
}

// Soaked reports whether the terminal state has been reached.
func (w Wetness) Soaked() bool {
	return w.level > w.limit()
}

// Absorb advances one step. It reports false, leaving w unchanged, once soaked.
func (w *Wetness) Absorb() bool {
	if w.Soaked() {
		return false
	}
	w.level++
	return true
}

// Color returns the body color for the current level.
func (w Wetness) Color() core.Color {
	switch {
	case w.Dry():
		return DryColor
	case w.Soaked():
		return SoakedColor
	default:
		i := (w.level - 1) * len(wetColors) / w.limit()
		return wetColors[min(i, len(wetColors)-1)]
	}
}

func (w Wetness) String() string {
	switch {
	case w.Dry():
		return "dry"
	case w.Soaked():
		return "soaked"
	default:
		return fmt.Sprintf("wet(%d)", w.level)
	}
}
