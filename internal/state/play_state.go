// internal/state/play_state.go
package state

import (
	"go-tower-siege/internal/app"
	"go-tower-siege/internal/audio"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/render"
	"go-tower-siege/internal/types"
	"go-tower-siege/pkg/geom"
	"go-tower-siege/pkg/grid"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"
)

// Env - то, что состояния получают от main: фабрика сессий, звук и HUD.
type Env struct {
	NewGame func() (*app.Game, error)
	Player  audio.Player
	HUD     *render.HUD
}

// PlayState - идёт игра: ввод игрока, тики симуляции, отрисовка.
type PlayState struct {
	sm   *StateMachine
	env  *Env
	game *app.Game

	buildKind  defs.TowerKind
	selection  selection
	clickLimit *rate.Limiter
}

// selection - выбранная башня. ID сущностей в каждом уровне начинаются
// заново, поэтому выбор привязан к индексу уровня и после смены уровня
// пропадает.
type selection struct {
	id    types.EntityID
	level int
	ok    bool
}

func (s *selection) set(level int, id types.EntityID) {
	*s = selection{id: id, level: level, ok: true}
}

func (s *selection) clear() {
	*s = selection{}
}

// get возвращает выбранную башню, если она выбрана на этом уровне.
func (s *selection) get(level int) (types.EntityID, bool) {
	if !s.ok || s.level != level {
		return 0, false
	}
	return s.id, true
}

func NewPlayState(sm *StateMachine, env *Env, game *app.Game) *PlayState {
	return &PlayState{
		sm:         sm,
		env:        env,
		game:       game,
		buildKind:  defs.TowerBasic,
		clickLimit: rate.NewLimiter(rate.Every(config.ClickCooldown*time.Millisecond), 1),
	}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Exit() {}

func (p *PlayState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		p.buildKind = defs.TowerBasic
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		p.buildKind = defs.TowerSniper
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		p.buildKind = defs.TowerMoney
	}

	cell := p.cursorCell()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && p.clickLimit.Allow() {
		p.handleLeftClick(cell)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyU) {
		p.upgrade(cell)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		p.sell(cell)
	}

	p.game.Update(deltaTime)
	if p.game.Over() {
		p.sm.SetState(NewResultState(p.sm, p.env, p.game))
	}
}

func (p *PlayState) cursorCell() grid.Cell {
	x, y := ebiten.CursorPosition()
	return p.game.Level().Grid.CellAt(geom.Vec{X: float64(x), Y: float64(y)})
}

// handleLeftClick выбирает башню на клетке или строит новую.
func (p *PlayState) handleLeftClick(cell grid.Cell) {
	level := p.game.Level()
	if id, ok := level.TowerAt(cell); ok {
		p.selection.set(level.Index, id)
		return
	}
	id, err := p.game.PlaceTower(p.buildKind, cell)
	if err != nil {
		p.fail(err)
		return
	}
	p.selection.set(level.Index, id)
}

// target - башня под курсором, иначе выбранная.
func (p *PlayState) target(cell grid.Cell) (types.EntityID, bool) {
	level := p.game.Level()
	if id, ok := level.TowerAt(cell); ok {
		return id, true
	}
	if id, ok := p.selection.get(level.Index); ok {
		if _, alive := level.ECS.Towers[id]; alive {
			return id, true
		}
	}
	return 0, false
}

func (p *PlayState) upgrade(cell grid.Cell) {
	id, ok := p.target(cell)
	if !ok {
		return
	}
	if err := p.game.UpgradeTower(id); err != nil {
		p.fail(err)
	}
}

func (p *PlayState) sell(cell grid.Cell) {
	id, ok := p.target(cell)
	if !ok {
		return
	}
	if _, err := p.game.SellTower(id); err != nil {
		p.fail(err)
		return
	}
	p.selection.clear()
}

func (p *PlayState) fail(err error) {
	log.Printf("Command rejected: %v", err)
	p.env.Player.PlayEffect(audio.CueError)
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	level := p.game.Level()
	render.DrawMap(screen, level.Grid, level.Paths)

	cell := p.cursorCell()
	var info *app.TowerInfo
	if id, ok := p.target(cell); ok {
		if ti, ok := level.TowerInfo(id); ok {
			info = &ti
			render.DrawHover(screen, level.Grid, level.ECS.Towers[id].Cell, ti.Range)
		}
	} else if level.Grid.CanBuild(cell) {
		def, _ := p.game.Library().Tower(p.buildKind)
		render.DrawHover(screen, level.Grid, cell, def.Range)
	}

	render.DrawEntities(screen, level.ECS)

	def, _ := p.game.Library().Tower(p.buildKind)
	p.env.HUD.Draw(screen, p.game.Snapshot(), p.buildKind, def.Cost, info)
}
