package rain

import "testing"

func TestWetnessProgression(t *testing.T) {
	w := NewWetness(3)
	expected := []struct {
		level  int
		soaked bool
		name   string
	}{
		{1, false, "wet(1)"},
		{2, false, "wet(2)"},
		{3, false, "wet(3)"},
		{4, true, "soaked"},
	}

	if !w.Dry() || w.String() != "dry" {
		t.Fatalf("NewWetness() = %v, expected dry", w)
	}

	seen := map[string]bool{string(w.Color()): true}
	for _, e := range expected {
		if !w.Absorb() {
			t.Fatalf("Absorb() = false before soaked at level %d", w.Level())
		}
		if w.Level() != e.level || w.Soaked() != e.soaked || w.String() != e.name {
			t.Errorf("after absorb: level %d soaked %v %q, expected %d %v %q",
				w.Level(), w.Soaked(), w.String(), e.level, e.soaked, e.name)
		}
		seen[string(w.Color())] = true
	}
	if len(seen) != 5 {
		t.Errorf("saw %d distinct colors, expected 5", len(seen))
	}

	if w.Absorb() {
		t.Error("Absorb() on soaked should be a no-op")
	}
	if w.Level() != 4 {
		t.Errorf("Level() = %d after extra hit, expected 4", w.Level())
	}
}

func TestWetnessZeroValue(t *testing.T) {
	var w Wetness
	w.Absorb()
	w.Absorb()
	if !w.Soaked() {
		t.Error("zero value should soak after one wet level")
	}
}
