// cmd/game/main.go
package main

import (
	"context"
	"errors"
	"go-tower-siege/internal/app"
	"go-tower-siege/internal/audio"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/debugsrv"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/metrics"
	"go-tower-siege/internal/render"
	"go-tower-siege/internal/state"
	"log"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// currentGame отдаёт снимок той сессии, что идёт сейчас: после рестарта
// метрики и debug-сервер переключаются на новую игру.
type currentGame struct {
	game atomic.Pointer[app.Game]
}

func (c *currentGame) Snapshot() *app.Snapshot {
	if g := c.game.Load(); g != nil {
		return g.Snapshot()
	}
	return nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables only")
	}
	opts := config.OptionsFromEnv()

	lib, err := defs.Load(opts.DefsDir)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}

	player, err := audio.NewPlayer(opts.Mute)
	if err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	if closer, ok := player.(interface{ Close() }); ok {
		defer closer.Close()
	}
	sounds := audio.NewListener(player)

	current := &currentGame{}
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	gameMetrics := metrics.New(registry, current)

	newGame := func() (*app.Game, error) {
		g, err := app.NewGame(lib, opts)
		if err != nil {
			return nil, err
		}
		g.EventDispatcher.SubscribeAll(sounds)
		g.EventDispatcher.SubscribeAll(gameMetrics)
		g.SetTickObserver(gameMetrics)
		current.game.Store(g)
		return g, nil
	}

	if opts.DebugAddr != "" {
		srv := debugsrv.New(opts.DebugAddr, debugsrv.Config{Source: current, Gatherer: registry})
		srv.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("Debug server shutdown: %v", err)
			}
		}()
	}

	g, err := newGame()
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	env := &state.Env{
		NewGame: newGame,
		Player:  player,
		HUD:     render.NewHUD(render.LoadFace(14), render.LoadFace(40)),
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, env, g))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Siege")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
