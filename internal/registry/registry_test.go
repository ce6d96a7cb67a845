package registry

import (
	"testing"

	"github.com/vovakirdan/tile-twister/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateExists(t *testing.T) {
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Error("Exists(stub_a) = false after Register")
	}
	if Exists("stub_missing") {
		t.Error("Exists(stub_missing) = true")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, want stub_a", g.ID())
	}
	if _, err := Create("stub_missing"); err == nil {
		t.Error("Create(stub_missing) should fail")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub_a" && info.Title == "Stub stub_a" {
			found = true
		}
	}
	if !found {
		t.Error("List() does not include stub_a")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
