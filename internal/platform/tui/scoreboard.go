package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snakeworld/internal/storage"
)

// maxScores caps how many entries the scoreboard loads.
const maxScores = 100

// chrome is the number of lines around the table: title, stats, borders, help.
const chrome = 9

// ScoreSource is the read side of the score store.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

var scoreColumns = []table.Column{
	{Title: "Rank", Width: 6},
	{Title: "Score", Width: 8},
	{Title: "Ended by", Width: 20},
	{Title: "Ticks", Width: 8},
	{Title: "Date", Width: 14},
}

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Refresh, k.Quit}}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// ScoreboardModel shows the recorded games of one game id.
type ScoreboardModel struct {
	source   ScoreSource
	gameID   string
	title    string
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard and loads its entries.
func NewScoreboardModel(source ScoreSource, gameID, title string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		gameID: gameID,
		title:  title,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		height: height,
	}
	m.help.Width = width
	m.table = newScoreTable(height)
	m.load()
	return m
}

func newScoreTable(height int) table.Model {
	t := table.New(
		table.WithColumns(scoreColumns),
		table.WithFocused(true),
		table.WithHeight(max(height-chrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load rereads entries and stats. The first error wins; stats still show
// when only the entries failed.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.loadErr = nil, nil, nil

	if m.source != nil {
		m.scores, m.loadErr = m.source.TopScores(m.gameID, maxScores)

		stats, err := m.source.GetGameStats(m.gameID)
		if m.loadErr == nil {
			m.loadErr = err
		}
		m.stats = stats
	}

	m.fillTable()
}

func (m *ScoreboardModel) fillTable() {
	rows := make([]table.Row, 0, len(m.scores))
	for i, e := range m.scores {
		rows = append(rows, scoreRow(i+1, e))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func scoreRow(rank int, e storage.ScoreEntry) table.Row {
	reason := e.EndReason
	if reason == "" {
		reason = "-"
	}
	return table.Row{
		"#" + strconv.Itoa(rank),
		strconv.Itoa(e.Score),
		reason,
		strconv.FormatInt(e.Ticks, 10),
		e.CreatedAt.Format("Jan 02 15:04"),
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Refresh) {
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(m.height-chrome, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	body := m.table.View()
	if len(m.scores) == 0 {
		body = emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("HIGH SCORES - " + m.title))
	b.WriteString("\n\n")
	b.WriteString(m.statsLine())
	b.WriteString("\n\n")
	b.WriteString(frameStyle.Render(body))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) statsLine() string {
	switch {
	case m.loadErr != nil:
		return warningStyle.Render("Cannot load scores: " + m.loadErr.Error())
	case m.stats == nil || m.stats.GamesCount == 0:
		return helpStyle.Render("No games recorded")
	}
	return fmt.Sprintf("Games: %d   Best: %d   Average: %.1f   Last played: %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore,
		m.stats.LastPlayed.Format("2006-01-02 15:04"))
}

// Scores returns the loaded entries.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// RunScoreboard shows the scoreboard in the alternate screen until the user quits.
func RunScoreboard(source ScoreSource, gameID, title string, width, height int) error {
	_, err := tea.NewProgram(
		NewScoreboardModel(source, gameID, title, width, height),
		tea.WithAltScreen(),
	).Run()
	return err
}
