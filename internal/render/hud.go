// internal/render/hud.go
package render

import (
	"fmt"
	"go-tower-siege/internal/app"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudLineHeight = 20
	hudPadding    = 10
	hudHeight     = 3*hudLineHeight + hudPadding
)

// HUD рисует верхнюю панель с деньгами, жизнями и прогрессом,
// а также сводку по выбранной башне.
type HUD struct {
	face      font.Face
	titleFace font.Face
}

func NewHUD(face, titleFace font.Face) *HUD {
	return &HUD{face: face, titleFace: titleFace}
}

// Draw рисует панель по снимку. selected - тип башни для постройки,
// info - башня под курсором (может быть nil).
func (h *HUD) Draw(screen *ebiten.Image, s *app.Snapshot, selected defs.TowerKind, buildCost int, info *app.TowerInfo) {
	if s == nil {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, hudHeight, config.PanelColor, false)

	y := hudPadding + hudLineHeight - config.TextOffsetY
	h.line(screen, fmt.Sprintf("Money: %d   Lives: %d", s.Money, s.Lives), hudPadding, y)
	h.line(screen, fmt.Sprintf("Level %d/%d (%s)   Wave %d/%d   %s",
		s.LevelIndex+1, s.TotalLevels, s.Level, s.Wave, s.TotalWaves, s.Phase), hudPadding, y+hudLineHeight)
	h.line(screen, fmt.Sprintf("Build: %s (%d)   [1] basic  [2] sniper  [3] money  [U] upgrade  [S] sell",
		selected, buildCost), hudPadding, y+2*hudLineHeight)

	if info != nil {
		h.drawTowerInfo(screen, info)
	}
}

func (h *HUD) drawTowerInfo(screen *ebiten.Image, info *app.TowerInfo) {
	x := config.ScreenWidth - 260
	y := hudPadding + hudLineHeight - config.TextOffsetY
	h.line(screen, fmt.Sprintf("%s tower, level %d", info.Kind, info.Level), x, y)
	if info.Income > 0 {
		h.line(screen, fmt.Sprintf("Income %d every %.2fs", info.Income, info.FireInterval), x, y+hudLineHeight)
	} else {
		h.line(screen, fmt.Sprintf("Dmg %d  Range %.0f  Every %.2fs", info.Damage, info.Range, info.FireInterval), x, y+hudLineHeight)
	}
	h.line(screen, fmt.Sprintf("Upgrade %d   Sell %d", info.UpgradeCost, info.SellValue), x, y+2*hudLineHeight)
}

func (h *HUD) line(screen *ebiten.Image, s string, x, y int) {
	text.Draw(screen, s, h.face, x, y, config.TextLightColor)
}

// DrawResult рисует итог игры по центру экрана.
func (h *HUD) DrawResult(screen *ebiten.Image, s *app.Snapshot) {
	if s == nil || !s.Over {
		return
	}
	title, c := "DEFEAT", color.Color(config.LoseColor)
	if s.Won {
		title, c = "VICTORY", config.WinColor
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)

	bounds := text.BoundString(h.titleFace, title)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	text.Draw(screen, title, h.titleFace, cx-bounds.Dx()/2, cy-hudLineHeight, c)

	lines := []string{
		s.Reason,
		fmt.Sprintf("Killed %d   Breakthroughs %d   Money %d   Lives %d", s.Stats.Killed, s.Stats.Breakthroughs, s.Money, s.Lives),
		"Press Enter to play again, Esc to quit",
	}
	for i, l := range lines {
		b := text.BoundString(h.face, l)
		text.Draw(screen, l, h.face, cx-b.Dx()/2, cy+(i+1)*hudLineHeight, config.TextLightColor)
	}
}
