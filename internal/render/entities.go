// internal/render/entities.go
package render

import (
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/entity"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var flashColor = color.RGBA{255, 255, 255, 255}

// DrawEntities рисует башни, врагов, снаряды и следы выстрелов.
// Состояние симуляции только читается.
func DrawEntities(screen *ebiten.Image, ecs *entity.ECS) {
	// Сначала башни, чтобы враги и снаряды были поверх
	for _, id := range ecs.TowerIDs() {
		pos, hasPos := ecs.Positions[id]
		render, hasRender := ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)
		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, render.Radius+2, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, x, y, render.Radius, render.Color, true)
		if combat, ok := ecs.Combats[id]; ok {
			bx := x + float32(math.Cos(combat.Angle))*render.Radius
			by := y + float32(math.Sin(combat.Angle))*render.Radius
			vector.StrokeLine(screen, x, y, bx, by, 4, config.TextDarkColor, true)
		}
		// Уровень башни - точками под ней
		tower := ecs.Towers[id]
		for i := 0; i < tower.Level; i++ {
			px := x - render.Radius + float32(i)*6 + 3
			vector.DrawFilledCircle(screen, px, y+render.Radius+5, 2, config.TextDarkColor, true)
		}
	}

	for _, id := range ecs.EnemyIDs() {
		pos, hasPos := ecs.Positions[id]
		render, hasRender := ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		x, y := float32(pos.X), float32(pos.Y)
		if render.HasStroke {
			vector.DrawFilledCircle(screen, x, y, render.Radius+2, config.TowerStrokeColor, true)
		}
		fill := render.Color
		if _, flashing := ecs.DamageFlashes[id]; flashing {
			fill = flashColor
		}
		vector.DrawFilledCircle(screen, x, y, render.Radius, fill, true)
		if health, ok := ecs.Healths[id]; ok && health.Max > 0 {
			drawHealthBar(screen, x, y-render.Radius-8, float32(health.Value)/float32(health.Max))
		}
	}

	for _, id := range ecs.ProjectileIDs() {
		pos, hasPos := ecs.Positions[id]
		render, hasRender := ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)
	}

	// Отрисовка следов мгновенных выстрелов
	for _, laser := range ecs.Lasers {
		c := laser.Color
		if laser.Duration > 0 {
			c.A = uint8(255 * (1 - math.Min(laser.Timer/laser.Duration, 1)))
		}
		vector.StrokeLine(screen, float32(laser.FromX), float32(laser.FromY), float32(laser.ToX), float32(laser.ToY), 2.0, c, true)
	}
}

func drawHealthBar(screen *ebiten.Image, cx, top, ratio float32) {
	w, h := float32(config.HealthBarWidth), float32(config.HealthBarHeight)
	left := cx - w/2
	vector.DrawFilledRect(screen, left, top, w, h, config.HealthBarBack, false)
	vector.DrawFilledRect(screen, left, top, w*max(ratio, 0), h, config.HealthBarColor, false)
}
