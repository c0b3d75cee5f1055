// internal/state/result_state.go
package state

import (
	"go-tower-siege/internal/app"
	"go-tower-siege/internal/render"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResultState показывает итог поверх последнего кадра игры.
type ResultState struct {
	sm   *StateMachine
	env  *Env
	game *app.Game
}

func NewResultState(sm *StateMachine, env *Env, game *app.Game) *ResultState {
	return &ResultState{sm: sm, env: env, game: game}
}

func (r *ResultState) Enter() {}

func (r *ResultState) Exit() {}

func (r *ResultState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		r.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g, err := r.env.NewGame()
		if err != nil {
			log.Printf("Failed to start a new game: %v", err)
			return
		}
		r.sm.SetState(NewPlayState(r.sm, r.env, g))
	}
}

func (r *ResultState) Draw(screen *ebiten.Image) {
	level := r.game.Level()
	render.DrawMap(screen, level.Grid, level.Paths)
	render.DrawEntities(screen, level.ECS)
	r.env.HUD.DrawResult(screen, r.game.Snapshot())
}
