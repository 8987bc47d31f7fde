// Package render rasterizes a maze and per-solver search overlays to PNG.
// It is a thin consumer of the core's read-only outputs; nothing in here
// feeds back into generation or search.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/beka-birhanu/maze-race/maze"
	"github.com/beka-birhanu/maze-race/search"
)

const (
	cellPixels  = 10
	labelHeight = 16
	panelGap    = 4
)

var (
	wallColor       = color.RGBA{0, 0, 0, 255}
	pathColor       = color.RGBA{255, 255, 255, 255}
	visitedColor    = color.RGBA{173, 216, 230, 255}
	frontierColor   = color.RGBA{0, 0, 255, 255}
	startColor      = color.RGBA{0, 150, 0, 255}
	goalColor       = color.RGBA{200, 0, 0, 255}
	backgroundColor = color.RGBA{100, 100, 100, 255}
	labelColor      = color.RGBA{230, 230, 230, 255}
)

// Snapshot draws one labeled panel per solver, side by side, each showing
// the maze with that solver's visited cells and frontier (or result) path.
// With no states it draws a single unlabeled panel of the bare maze. Panels
// are ordered by solver name so the layout is stable.
func Snapshot(m *maze.Maze, states map[string]search.StepResult) *image.RGBA {
	names := make([]string, 0, len(states))
	for name := range states {
		names = append(names, name)
	}
	sort.Strings(names)

	panels := len(names)
	if panels == 0 {
		panels = 1
	}
	panelWidth := m.GridWidth() * cellPixels
	panelHeight := m.GridHeight() * cellPixels

	totalWidth := panels*panelWidth + (panels-1)*panelGap
	totalHeight := labelHeight + panelHeight
	img := image.NewRGBA(image.Rect(0, 0, totalWidth, totalHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{backgroundColor}, image.Point{}, draw.Src)

	if len(names) == 0 {
		drawPanel(img, 0, m, search.StepResult{})
		return img
	}
	for i, name := range names {
		offsetX := i * (panelWidth + panelGap)
		drawLabel(img, name, offsetX+2, labelHeight-4)
		drawPanel(img, offsetX, m, states[name])
	}
	return img
}

// WritePNG renders a snapshot and writes it to path.
func WritePNG(path string, m *maze.Maze, states map[string]search.StepResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, Snapshot(m, states))
}

func drawPanel(img *image.RGBA, offsetX int, m *maze.Maze, state search.StepResult) {
	highlight := state.FrontierPath
	if state.ResultPath != nil {
		highlight = state.ResultPath
	}
	onHighlight := make(map[maze.Coordinate]bool, len(highlight))
	for _, c := range highlight {
		onHighlight[c] = true
	}

	for y := 0; y < m.GridHeight(); y++ {
		for x := 0; x < m.GridWidth(); x++ {
			c := maze.Coordinate{X: x, Y: y}
			fill := pathColor
			switch {
			case c == m.Start:
				fill = startColor
			case c == m.End:
				fill = goalColor
			case m.Grid[y][x] == maze.Wall:
				fill = wallColor
			case onHighlight[c]:
				fill = frontierColor
			case state.Visited[c]:
				fill = visitedColor
			}
			fillCell(img, offsetX+x*cellPixels, labelHeight+y*cellPixels, fill)
		}
	}
}

func fillCell(img *image.RGBA, x0, y0 int, fill color.RGBA) {
	rect := image.Rect(x0, y0, x0+cellPixels, y0+cellPixels)
	draw.Draw(img, rect, &image.Uniform{fill}, image.Point{}, draw.Src)
}

func drawLabel(img *image.RGBA, text string, x, baseline int) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, baseline),
	}
	drawer.DrawString(text)
}
