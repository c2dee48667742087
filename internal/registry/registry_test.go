package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-match3/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreate(t *testing.T) {
	Register(GameInfo{ID: "zz_stub", Title: "Stub"}, func(Options) (Game, error) {
		return &stubGame{id: "zz_stub"}, nil
	})

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should exist after Register")
	}

	g, err := Create("zz_stub", Options{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("List() should include zz_stub with its title")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz_dup"}, func(Options) (Game, error) { return &stubGame{}, nil })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "zz_dup"}, func(Options) (Game, error) { return &stubGame{}, nil })
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("nope", Options{}); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("expected unknown game error, got %v", err)
	}

	boom := errors.New("boom")
	Register(GameInfo{ID: "zz_fail"}, func(Options) (Game, error) { return nil, boom })
	if _, err := Create("zz_fail", Options{}); !errors.Is(err, boom) {
		t.Errorf("expected wrapped factory error, got %v", err)
	}
}
