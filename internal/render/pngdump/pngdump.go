// internal/render/pngdump/pngdump.go
//
// Пакет рисует снимок состояния в PNG без ebiten, чтобы им можно было
// пользоваться из headless-симуляции и тестов.
package pngdump

import (
	"fmt"
	"go-tower-siege/internal/app"
	"go-tower-siege/internal/config"
	"go-tower-siege/pkg/geom"
	"go-tower-siege/pkg/grid"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Draw рисует карту, башни и врагов из снимка.
func Draw(s *app.Snapshot, g *grid.Grid, paths []*geom.Path) image.Image {
	width := int(float64(g.Cols) * g.CellSize)
	height := int(float64(g.Rows) * g.CellSize)
	dc := gg.NewContext(width, height)

	dc.SetColor(config.BackgroundColor)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	dc.SetColor(config.BuildableColor)
	for _, cell := range g.BuildableCells() {
		dc.DrawRectangle(float64(cell.Col)*g.CellSize+1, float64(cell.Row)*g.CellSize+1, g.CellSize-2, g.CellSize-2)
	}
	dc.Fill()

	dc.SetColor(config.PathColor)
	dc.SetLineWidth(config.PathStrokeWidth)
	for _, path := range paths {
		points := path.Points()
		dc.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.Stroke()
	}

	if s == nil {
		return dc.Image()
	}

	for _, t := range s.Towers {
		dc.SetColor(config.TowerStrokeColor)
		dc.DrawCircle(t.X, t.Y, config.TowerRadius+2)
		dc.Fill()
		dc.SetColor(colorOr(config.TowerColors, string(t.Kind)))
		dc.DrawCircle(t.X, t.Y, config.TowerRadius)
		dc.Fill()
	}

	for _, e := range s.Enemies {
		dc.SetColor(colorOr(config.EnemyColors, string(e.Kind)))
		dc.DrawCircle(e.X, e.Y, config.EnemyRadius)
		dc.Fill()
		if e.MaxHealth > 0 {
			top := e.Y - config.EnemyRadius - 8
			left := e.X - config.HealthBarWidth/2
			dc.SetColor(config.HealthBarBack)
			dc.DrawRectangle(left, top, config.HealthBarWidth, config.HealthBarHeight)
			dc.Fill()
			dc.SetColor(config.HealthBarColor)
			dc.DrawRectangle(left, top, config.HealthBarWidth*float64(e.Health)/float64(e.MaxHealth), config.HealthBarHeight)
			dc.Fill()
		}
	}

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(config.TextDarkColor)
	dc.DrawString(fmt.Sprintf("%s  wave %d/%d  %s  t=%.1fs  money %d  lives %d",
		s.Level, s.Wave, s.TotalWaves, s.Phase, s.GameTime, s.Money, s.Lives), 8, 16)
	return dc.Image()
}

// Write сохраняет снимок в PNG-файл.
func Write(filename string, s *app.Snapshot, g *grid.Grid, paths []*geom.Path) error {
	img := Draw(s, g, paths)
	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", filename, err)
	}
	return nil
}

func colorOr(colors map[string]color.RGBA, kind string) color.RGBA {
	if c, ok := colors[kind]; ok {
		return c
	}
	return config.FallbackColor
}
