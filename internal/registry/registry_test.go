package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/rainshield/internal/core"
)

type fakeGame struct {
	id string
}

func (g *fakeGame) ID() string {
	return g.id
}

func (g *fakeGame) Title() string {
	return "Fake " + g.id
}

func (g *fakeGame) Reset(core.RuntimeConfig) {}

func (g *fakeGame) Resize(int, int) {}

func (g *fakeGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g *fakeGame) Render(core.Canvas) {}

func (g *fakeGame) State() core.GameState {
	return core.GameState{}
}

func fakeFactory(id string) Factory {
	return func() Game { return &fakeGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_b", fakeFactory("test_b"))
	Register("test_a", fakeFactory("test_a"))

	if !Exists("test_a") {
		t.Errorf("Exists(test_a) = false, expected true")
	}
	if Exists("test_missing") {
		t.Errorf("Exists(test_missing) = true, expected false")
	}

	g, err := Create("test_a")
	if err != nil {
		t.Fatalf("Create(test_a) error: %v", err)
	}
	if g.ID() != "test_a" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "test_a")
	}

	// Each call builds a fresh instance
	g2, _ := Create("test_a")
	if g == g2 {
		t.Errorf("Create returned the same instance twice")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("test_list_z", fakeFactory("test_list_z"))
	Register("test_list_y", fakeFactory("test_list_y"))

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "test_list_y" {
			found = true
			if info.Title != "Fake test_list_y" {
				t.Errorf("Title = %q, expected %q", info.Title, "Fake test_list_y")
			}
		}
	}
	if !found {
		t.Errorf("List() missing test_list_y")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("nope")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(nope) error = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", fakeFactory("test_dup"))

	defer func() {
		if recover() == nil {
			t.Errorf("Register with duplicate ID did not panic")
		}
	}()
	Register("test_dup", fakeFactory("test_dup"))
}
