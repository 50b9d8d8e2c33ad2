package tui

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/snakeworld/internal/config"
	"github.com/vovakirdan/snakeworld/internal/core"
	"github.com/vovakirdan/snakeworld/internal/games/snake"
	"github.com/vovakirdan/snakeworld/internal/loop"
)

// cellWidth is the number of terminal columns per board cell; terminal
// cells are roughly twice as tall as wide.
const cellWidth = 2

// ErrMissingSprite is returned when asked to draw a sprite without a glyph.
var ErrMissingSprite = errors.New("tui: missing sprite")

type glyph struct {
	r     rune
	color core.Color
}

// ScreenPresenter draws the board into a back buffer and copies it to the
// front buffer on Flip. The model renders the front buffer.
type ScreenPresenter struct {
	back    *core.Screen
	front   *core.Screen
	sprites map[loop.Sprite]glyph
	border  core.Color
	text    core.Color
	cell    int
	board   core.Rect // In cells
}

var _ loop.Presenter = (*ScreenPresenter)(nil)

// NewScreenPresenter sizes the buffers for the board in rules and resolves
// the glyphs in display. A glyph with an empty rune is left unset.
func NewScreenPresenter(display config.DisplayConfig, rules snake.Rules) (*ScreenPresenter, error) {
	border, err := core.ParseColor(display.Border)
	if err != nil {
		return nil, fmt.Errorf("tui: border color: %w", err)
	}
	text, err := core.ParseColor(display.Text)
	if err != nil {
		return nil, fmt.Errorf("tui: text color: %w", err)
	}

	sprites := make(map[loop.Sprite]glyph, 3)
	for sprite, g := range map[loop.Sprite]config.Glyph{
		loop.SpriteHead: display.Head,
		loop.SpriteBody: display.Body,
		loop.SpriteFood: display.Food,
	} {
		if g.Rune == "" {
			continue
		}
		color, err := core.ParseColor(g.Color)
		if err != nil {
			return nil, fmt.Errorf("tui: %s color: %w", sprite, err)
		}
		r, _ := utf8.DecodeRuneInString(g.Rune)
		sprites[sprite] = glyph{r: r, color: color}
	}

	cols, rows := rules.Columns(), rules.Rows()
	w, h := cols*cellWidth+2, rows+2

	return &ScreenPresenter{
		back:    core.NewScreen(w, h),
		front:   core.NewScreen(w, h),
		sprites: sprites,
		border:  border,
		text:    text,
		cell:    rules.CellSize,
		board:   core.NewRect(0, 0, cols, rows),
	}, nil
}

// Size returns the terminal area the board needs.
func (p *ScreenPresenter) Size() (width, height int) {
	return p.front.Width(), p.front.Height()
}

// Runtime returns the terminal size needed to show the board and a help line.
func (p *ScreenPresenter) Runtime(seed int64) core.RuntimeConfig {
	w, h := p.Size()
	return core.RuntimeConfig{ScreenW: w, ScreenH: h + 1, Seed: seed}
}

// Screen returns the last flipped frame.
func (p *ScreenPresenter) Screen() *core.Screen {
	return p.front
}

// Clear implements loop.Presenter.
func (p *ScreenPresenter) Clear() {
	p.back.Clear()
	p.back.DrawBox(core.NewRect(0, 0, p.back.Width(), p.back.Height()), p.border)
}

// DrawEntity implements loop.Presenter. Positions off the board are skipped.
func (p *ScreenPresenter) DrawEntity(sprite loop.Sprite, pos core.Position) error {
	g, ok := p.sprites[sprite]
	if !ok {
		return fmt.Errorf("%w: %s", ErrMissingSprite, sprite)
	}

	col, row := pos.Cell(p.cell)
	if !p.board.Contains(col, row) {
		return nil
	}

	x, y := 1+col*cellWidth, 1+row
	for i := 0; i < cellWidth; i++ {
		p.back.SetColored(x+i, y, g.r, g.color)
	}
	return nil
}

// DrawScore implements loop.Presenter. The score sits in the top border.
func (p *ScreenPresenter) DrawScore(score int) {
	label := fmt.Sprintf(" Score: %d ", score)
	x := p.back.Width() - len(label) - 2
	p.back.DrawText(x, 0, label, p.text)
}

// DrawBanner implements loop.Presenter. The title and lines are centered,
// separated by a blank row, on a blank panel that hides the board below.
func (p *ScreenPresenter) DrawBanner(title string, lines ...string) {
	height := 1
	width := utf8.RuneCountInString(title)
	if len(lines) > 0 {
		height += 1 + len(lines)
	}
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	y := (p.back.Height() - height) / 2

	panel := core.NewRect((p.back.Width()-width)/2-1, y-1, width+2, height+2)
	p.back.FillRect(panel, ' ', core.ColorDefault)

	p.back.DrawTextCentered(y, title, p.text)
	for i, line := range lines {
		p.back.DrawTextCentered(y+2+i, line, p.text)
	}
}

// Flip implements loop.Presenter.
func (p *ScreenPresenter) Flip() error {
	p.front.CopyFrom(p.back)
	return nil
}
