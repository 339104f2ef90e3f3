package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/maze-arcade/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string                           { return g.id }
func (g fakeGame) Title() string                        { return strings.ToUpper(g.id) }
func (g fakeGame) Reset(core.RuntimeConfig)             {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen)                  {}
func (g fakeGame) State() core.GameState                { return core.GameState{} }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, func() Game { return fakeGame{id: id} })
	t.Cleanup(func() {
		mu.Lock()
		delete(factories, id)
		delete(titles, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "zeta")
	register(t, "alpha")

	if !Exists("alpha") || Exists("missing") {
		t.Fatal("Exists() disagrees with registrations")
	}

	g, err := Create("zeta")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zeta" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for an unknown id")
	}
}

func TestListIsSortedWithTitles(t *testing.T) {
	register(t, "zeta")
	register(t, "alpha")

	list := List()
	if len(list) != 2 {
		t.Fatalf("List() = %v", list)
	}
	if list[0] != (GameInfo{ID: "alpha", Title: "ALPHA"}) || list[1].ID != "zeta" {
		t.Errorf("List() = %v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "dup")

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup", func() Game { return fakeGame{id: "dup"} })
}
