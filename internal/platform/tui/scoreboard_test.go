package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snakeworld/internal/storage"
)

type fakeSource struct {
	scores []storage.ScoreEntry
	stats  *storage.GameStats
	err    error
	loads  int
}

func (f *fakeSource) TopScores(string, int) ([]storage.ScoreEntry, error) {
	f.loads++
	return f.scores, f.err
}

func (f *fakeSource) GetGameStats(gameID string) (*storage.GameStats, error) {
	if f.stats == nil {
		return &storage.GameStats{GameID: gameID}, f.err
	}
	return f.stats, f.err
}

func TestScoreboardShowsScores(t *testing.T) {
	played := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	src := &fakeSource{
		scores: []storage.ScoreEntry{
			{ID: 2, GameID: "snake", Score: 9, EndReason: "out of bounds", Ticks: 120, CreatedAt: played},
			{ID: 1, GameID: "snake", Score: 4, EndReason: "collided with self", Ticks: 60, CreatedAt: played},
		},
		stats: &storage.GameStats{GameID: "snake", GamesCount: 2, HighScore: 9, AvgScore: 6.5, LastPlayed: played},
	}

	m := NewScoreboardModel(src, "snake", "Snake World", 100, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES - Snake World", "Games: 2", "Best: 9", "Average: 6.5", "out of bounds"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if len(m.Scores()) != 2 {
		t.Errorf("Scores() = %d entries, want 2", len(m.Scores()))
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(&fakeSource{}, "snake", "Snake World", 100, 30)

	view := m.View()
	if !strings.Contains(view, "No scores recorded yet.") || !strings.Contains(view, "No games recorded") {
		t.Errorf("view = %q", view)
	}
}

func TestScoreboardLoadError(t *testing.T) {
	m := NewScoreboardModel(&fakeSource{err: errors.New("locked")}, "snake", "Snake World", 100, 30)

	if !strings.Contains(m.View(), "Cannot load scores: locked") {
		t.Errorf("view missing load error")
	}
}

func TestScoreboardRefreshAndQuit(t *testing.T) {
	src := &fakeSource{}
	m := NewScoreboardModel(src, "snake", "Snake World", 100, 30)

	next, _ := m.Update(runes("r"))
	m = next.(ScoreboardModel)
	if src.loads != 2 {
		t.Errorf("loads = %d, want 2 after refresh", src.loads)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !isQuit(cmd) {
		t.Error("esc should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
