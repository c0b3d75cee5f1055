// internal/render/world.go
package render

import (
	"go-tower-siege/internal/config"
	"go-tower-siege/pkg/geom"
	"go-tower-siege/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawMap рисует фон, зону строительства, линии сетки и маршруты врагов.
func DrawMap(screen *ebiten.Image, g *grid.Grid, paths []*geom.Path) {
	screen.Fill(config.BackgroundColor)

	size := float32(g.CellSize)
	for _, cell := range g.BuildableCells() {
		vector.DrawFilledRect(screen, float32(cell.Col)*size+1, float32(cell.Row)*size+1, size-2, size-2, config.BuildableColor, false)
	}
	width, height := float32(g.Cols)*size, float32(g.Rows)*size
	for c := 0; c <= g.Cols; c++ {
		x := float32(c) * size
		vector.StrokeLine(screen, x, 0, x, height, 1, config.GridLineColor, false)
	}
	for r := 0; r <= g.Rows; r++ {
		y := float32(r) * size
		vector.StrokeLine(screen, 0, y, width, y, 1, config.GridLineColor, false)
	}

	for _, path := range paths {
		points := path.Points()
		for i := 1; i < len(points); i++ {
			a, b := points[i-1], points[i]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(config.PathStrokeWidth), config.PathColor, true)
		}
		end := path.End()
		vector.DrawFilledCircle(screen, float32(end.X), float32(end.Y), 8, config.LoseColor, true)
	}
}

// DrawHover подсвечивает клетку под курсором. Если rangeRadius > 0,
// рисуется ещё и радиус атаки башни с центром в клетке.
func DrawHover(screen *ebiten.Image, g *grid.Grid, cell grid.Cell, rangeRadius float64) {
	if !g.InBounds(cell) {
		return
	}
	size := float32(g.CellSize)
	vector.DrawFilledRect(screen, float32(cell.Col)*size, float32(cell.Row)*size, size, size, config.HoverColor, false)
	if rangeRadius > 0 {
		center := g.Center(cell)
		vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(rangeRadius), config.RangeColor, true)
	}
}
