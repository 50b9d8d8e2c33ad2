package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakeworld/internal/config"
	"github.com/vovakirdan/snakeworld/internal/core"
	"github.com/vovakirdan/snakeworld/internal/games/snake"
	"github.com/vovakirdan/snakeworld/internal/loop"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runes("s"), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"h", runes("h"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runes("d"), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"p", runes("p"), core.ActionPause},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"q", runes("q"), core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func newTestModel(t *testing.T, display config.DisplayConfig) Model {
	t.Helper()
	p, err := NewScreenPresenter(display, snake.DefaultRules())
	if err != nil {
		t.Fatalf("NewScreenPresenter() failed: %v", err)
	}
	ctrl, err := loop.New(loop.Options{Seed: 1, Presenter: p})
	if err != nil {
		t.Fatalf("loop.New() failed: %v", err)
	}
	return NewModel(ctrl, p, DefaultKeyMap())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartupScreen(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig().Display)

	if m.Init() == nil {
		t.Error("Init() should schedule a tick")
	}
	if !strings.Contains(m.View(), "Snake World") {
		t.Error("startup view missing title")
	}
}

func TestModelKeysApplyOnTick(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig().Display)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.ctrl.Phase() != loop.PhaseStartup {
		t.Fatal("key press should wait for the next tick")
	}

	m, cmd := update(t, m, TickMsg{})
	if m.ctrl.Phase() != loop.PhaseRunning {
		t.Errorf("phase = %v, want running", m.ctrl.Phase())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !strings.Contains(m.View(), "Score: 1") {
		t.Error("running view missing score")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig().Display)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := update(t, m, TickMsg{})

	if m.ctrl.Phase() != loop.PhaseTerminated {
		t.Errorf("phase = %v, want terminated", m.ctrl.Phase())
	}
	if !isQuit(cmd) {
		t.Error("expected quit command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig().Display)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !isQuit(cmd) {
		t.Error("ctrl+c should quit immediately")
	}
	if m.ctrl.Phase() != loop.PhaseStartup {
		t.Errorf("force quit should not tick the controller")
	}
}

func TestModelTooSmallHoldsTicks(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig().Display)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, TickMsg{})

	if m.ctrl.Phase() != loop.PhaseStartup {
		t.Errorf("controller ticked while the window was too small")
	}
	if !strings.Contains(m.View(), "too small") {
		t.Errorf("view = %q, want size warning", m.View())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	m, _ = update(t, m, TickMsg{})
	if m.ctrl.Phase() != loop.PhaseRunning {
		t.Errorf("queued start was lost: phase = %v", m.ctrl.Phase())
	}
}

func TestModelFaultStopsProgram(t *testing.T) {
	display := config.DefaultConfig().Display
	display.Head.Rune = ""
	m := newTestModel(t, display)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg{})

	if !errors.Is(m.Err(), ErrMissingSprite) {
		t.Errorf("Err() = %v, want ErrMissingSprite", m.Err())
	}
	if !isQuit(cmd) {
		t.Error("fault should quit the program")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, config.DefaultConfig().Display)

	m, _ = update(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Error("? should expand help")
	}
	m, _ = update(t, m, runes("?"))
	if m.help.ShowAll {
		t.Error("? should collapse help")
	}
}
