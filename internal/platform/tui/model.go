package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakeworld/internal/core"
	"github.com/vovakirdan/snakeworld/internal/loop"
)

// Model is the Bubble Tea model that feeds key presses to the controller
// and renders the presenter's last frame.
type Model struct {
	ctrl      *loop.Controller
	presenter *ScreenPresenter
	keys      KeyMap
	help      help.Model
	frame     core.InputFrame
	runtime   core.RuntimeConfig
	width     int
	height    int
	quitting  bool
	err       error
}

// NewModel creates a model for an already constructed controller.
func NewModel(ctrl *loop.Controller, presenter *ScreenPresenter, keys KeyMap) Model {
	return Model{
		ctrl:      ctrl,
		presenter: presenter,
		keys:      keys,
		help:      help.New(),
		frame:     core.NewInputFrame(),
		runtime:   presenter.Runtime(0),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.ctrl.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.frame.Set(m.keys.Action(msg))
	return m, nil
}

// handleTick runs one controller tick with the queued input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Keep input queued until the board fits again.
	if m.tooSmall() {
		return m, tickCmd(m.ctrl.Interval())
	}

	if err := m.ctrl.Tick(m.frame.Drain()); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}

	if m.ctrl.Phase() == loop.PhaseTerminated {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.ctrl.Interval())
}

// tooSmall reports whether the known window cannot hold the board and help line.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	return !m.runtime.Fits(m.width, m.height)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return warningStyle.Render(fmt.Sprintf(
			"Terminal too small: need %dx%d, have %dx%d",
			m.runtime.ScreenW, m.runtime.ScreenH, m.width, m.height))
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.presenter.Screen()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Err returns the fault that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for the controller and blocks until it
// quits. An unexpected controller fault is returned.
func Run(ctrl *loop.Controller, presenter *ScreenPresenter, keys KeyMap) error {
	model := NewModel(ctrl, presenter, keys)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
