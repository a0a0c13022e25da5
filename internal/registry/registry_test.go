package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct {
	id     string
	tuned  bool
	preset config.DifficultyPreset
	err    error
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func (g *stubGame) Tune(_ config.TetrisConfig, p config.DifficultyPreset) error {
	g.tuned = true
	g.preset = p
	return g.err
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("Exists() = false after Register")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub zz_stub"
		}
	}
	if !found {
		t.Error("List() missing registered game or title")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("nope"); err == nil {
		t.Error("Create() of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestCreateTuned(t *testing.T) {
	Register("zz_tuned", func() Game { return &stubGame{id: "zz_tuned"} })

	g, err := CreateTuned("zz_tuned", config.DefaultTetrisConfig(), config.DifficultyHard)
	if err != nil {
		t.Fatalf("CreateTuned() failed: %v", err)
	}
	stub := g.(*stubGame)
	if !stub.tuned || stub.preset != config.DifficultyHard {
		t.Errorf("Tune not applied: %+v", stub)
	}

	boom := errors.New("boom")
	Register("zz_broken", func() Game { return &stubGame{id: "zz_broken", err: boom} })
	if _, err := CreateTuned("zz_broken", config.DefaultTetrisConfig(), config.DifficultyNormal); !errors.Is(err, boom) {
		t.Errorf("CreateTuned() error = %v, expected wrapped boom", err)
	}
}

func TestListIsSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %s before %s", list[i-1].ID, list[i].ID)
		}
	}
}
