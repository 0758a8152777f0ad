package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// selectionLines is the difficulty selection screen, tier lines carry their tier name for coloring
var selectionLines = []struct {
	text string
	tier string
}{
	{"SNAKE GAME", ""},
	{"", ""},
	{"Select Difficulty Level (1-10):", ""},
	{"", ""},
	{"1-3: Easy (Slow)", "Easy"},
	{"4-6: Medium", "Medium"},
	{"7-9: Hard (Fast)", "Hard"},
	{"0: Expert (Very Fast)", "Expert"},
}

const selectionPrompt = "Press a number key to start!"

// TerminalRenderer draws game snapshots to a tcell screen. It never mutates the game.
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int

	// Top-left terminal cell of grid cell (0,0)
	originX int
	originY int
}

// NewTerminalRenderer creates a new terminal renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *TerminalRenderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// GridOrigin returns the terminal cell where grid cell (0,0) is drawn for a grid of gridWidth cells
func (r *TerminalRenderer) GridOrigin(gridWidth int) (int, int) {
	x := (r.width - gridWidth*constants.CellWidth) / 2
	if x < 0 {
		x = 0
	}
	return x, constants.StatusBarHeight
}

// Fits reports whether the whole grid is visible
func (r *TerminalRenderer) Fits(snap engine.Snapshot) bool {
	return r.width >= snap.Width*constants.CellWidth && r.height >= snap.Height+constants.StatusBarHeight
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, paused bool) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()
	r.originX, r.originY = r.GridOrigin(snap.Width)

	if !r.Fits(snap) {
		r.drawTooSmall(snap, defaultStyle)
		r.screen.Show()
		return
	}

	if !snap.DifficultySelected {
		r.drawSelection(snap, defaultStyle)
		r.screen.Show()
		return
	}

	r.drawStatusBar(snap, paused, defaultStyle)
	r.drawBorder(snap, defaultStyle)
	r.drawFood(snap, defaultStyle)
	r.drawSnake(snap, defaultStyle)

	if snap.GameOver {
		r.drawGameOver(snap, defaultStyle)
	}

	r.screen.Show()
}

// setCell fills every terminal column of one grid cell
func (r *TerminalRenderer) setCell(p core.Point, ch rune, style tcell.Style) {
	x := r.originX + p.X*constants.CellWidth
	y := r.originY + p.Y
	for i := 0; i < constants.CellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		if x+i >= 0 && x+i < r.width {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}

// drawCentered draws text centered over the grid on grid row gridY
func (r *TerminalRenderer) drawCentered(snap engine.Snapshot, gridY int, text string, style tcell.Style) {
	span := snap.Width * constants.CellWidth
	x := r.originX + (span-len([]rune(text)))/2
	r.drawText(x, r.originY+gridY, text, style)
}

// drawStatusBar draws difficulty and score above the grid
func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, paused bool, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbStatusText)
	left := fmt.Sprintf("Difficulty: %d", snap.Difficulty)
	r.drawText(r.originX, 0, left, style)

	right := fmt.Sprintf("Score: %d", snap.Score)
	if paused {
		right = "PAUSED  " + right
	}
	r.drawText(r.originX+snap.Width*constants.CellWidth-len(right), 0, right, style)
}

// drawBorder draws the permanent wall ring
func (r *TerminalRenderer) drawBorder(snap engine.Snapshot, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbWall)
	for x := 0; x < snap.Width; x++ {
		r.setCell(core.Point{X: x, Y: 0}, constants.GlyphWall, style)
		r.setCell(core.Point{X: x, Y: snap.Height - 1}, constants.GlyphWall, style)
	}
	for y := 1; y < snap.Height-1; y++ {
		r.setCell(core.Point{X: 0, Y: y}, constants.GlyphWall, style)
		r.setCell(core.Point{X: snap.Width - 1, Y: y}, constants.GlyphWall, style)
	}
}

func (r *TerminalRenderer) drawFood(snap engine.Snapshot, defaultStyle tcell.Style) {
	if !snap.FoodExists {
		return
	}
	x := r.originX + snap.Food.X*constants.CellWidth
	y := r.originY + snap.Food.Y
	r.screen.SetContent(x, y, constants.GlyphFood, nil, defaultStyle.Foreground(RgbFood))
}

func (r *TerminalRenderer) drawSnake(snap engine.Snapshot, defaultStyle tcell.Style) {
	headStyle := defaultStyle.Foreground(RgbSnakeHead)
	bodyStyle := defaultStyle.Foreground(RgbSnakeBody)
	if snap.GameOver {
		headStyle = defaultStyle.Foreground(RgbSnakeDead)
		bodyStyle = headStyle
	}

	// Tail first so the head wins on any shared cell
	for i := len(snap.Snake) - 1; i > 0; i-- {
		r.setCell(snap.Snake[i], constants.GlyphBody, bodyStyle)
	}
	if len(snap.Snake) > 0 {
		r.setCell(snap.Snake[0], constants.GlyphHead, headStyle)
	}
}

// drawGameOver draws the banner and the restart countdown over the grid center
func (r *TerminalRenderer) drawGameOver(snap engine.Snapshot, defaultStyle tcell.Style) {
	mid := snap.Height / 2
	banner := defaultStyle.Background(RgbGameOverBg).Foreground(RgbText).Bold(true)
	r.drawCentered(snap, mid-1, " GAME OVER ", banner)
	r.drawCentered(snap, mid+1, fmt.Sprintf("Restarting in %.1fs", snap.RestartIn), defaultStyle)
}

// drawSelection draws the difficulty selection screen
func (r *TerminalRenderer) drawSelection(snap engine.Snapshot, defaultStyle tcell.Style) {
	top := (snap.Height - len(selectionLines) - 2) / 2
	if top < 0 {
		top = 0
	}

	for i, line := range selectionLines {
		style := defaultStyle
		switch {
		case i == 0:
			style = style.Bold(true)
		case line.tier != "":
			style = style.Foreground(tierColor(line.tier))
		}
		r.drawCentered(snap, top+i, line.text, style)
	}

	r.drawCentered(snap, top+len(selectionLines)+1, selectionPrompt, defaultStyle.Foreground(RgbHighlight))
}

// drawTooSmall asks for a bigger terminal
func (r *TerminalRenderer) drawTooSmall(snap engine.Snapshot, defaultStyle tcell.Style) {
	need := fmt.Sprintf("Terminal too small: need %dx%d", snap.Width*constants.CellWidth, snap.Height+constants.StatusBarHeight)
	have := fmt.Sprintf("Current size: %dx%d", r.width, r.height)
	r.drawText(0, 0, need, defaultStyle)
	r.drawText(0, 1, have, defaultStyle)
}
