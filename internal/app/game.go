// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/economy"
	"go-tower-siege/internal/event"
	"go-tower-siege/internal/types"
	"go-tower-siege/internal/utils"
	"go-tower-siege/pkg/grid"
	"log"
	"sync/atomic"
	"time"
)

// ErrGameOver - сессия уже закончена, команды не принимаются.
var ErrGameOver = errors.New("game is over")

// TickObserver получает длительность каждого тика (метрики).
type TickObserver interface {
	ObserveTick(d time.Duration)
}

// Game holds one single-player session over the fixed level sequence.
// The economy carries over between levels; towers and the grid do not.
type Game struct {
	Options         config.Options
	Economy         *economy.Economy
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	lib          *defs.Library
	level        *Level
	tickObserver TickObserver

	advancePending bool
	over           bool
	won            bool
	reason         string

	snapshot atomic.Pointer[Snapshot]
}

// NewGame creates a session with the starting economy and enters the first level.
func NewGame(lib *defs.Library, opts config.Options) (*Game, error) {
	if opts.Breakthrough == "" {
		opts.Breakthrough = config.PolicyLives
	}
	g := &Game{
		Options:         opts,
		Economy:         economy.New(config.StartingMoney, config.StartingLives),
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(opts.Seed),
		lib:             lib,
	}
	log.Printf("New game: seed %d, breakthrough policy %s", g.Rng.Seed(), opts.Breakthrough)
	if err := g.enterLevel(0); err != nil {
		return nil, err
	}
	return g, nil
}

// SetTickObserver подключает наблюдателя длительности тиков.
func (g *Game) SetTickObserver(o TickObserver) {
	g.tickObserver = o
}

func (g *Game) enterLevel(index int) error {
	def := g.lib.Levels[index]
	level, err := NewLevel(g.lib, def, index, g.Economy, g.Rng, g)
	if err != nil {
		return err
	}
	g.level = level
	log.Printf("Level %d/%d (%s) started", index+1, len(g.lib.Levels), def.Name)
	g.publish()
	return nil
}

// OnEvent пересылает событие уровня подписчикам сессии, затем применяет
// политику прорыва и отмечает конец уровня. Так GameOver всегда приходит
// после прорыва, который его вызвал.
func (g *Game) OnEvent(e event.Event) {
	g.EventDispatcher.Dispatch(e)
	switch e.Type {
	case event.EnemyBreakthrough:
		g.handleBreakthrough()
	case event.LevelCompleted:
		g.advancePending = true
	}
}

func (g *Game) handleBreakthrough() {
	if g.over {
		return
	}
	switch g.Options.Breakthrough {
	case config.PolicySuddenDeath:
		g.finish(false, "enemy reached the base")
	default:
		if g.Economy.LoseLife() == 0 {
			g.finish(false, "no lives left")
		}
	}
}

// Update advances the current level by one tick and then applies the
// session rules: loss, level advance or final win.
func (g *Game) Update(deltaTime float64) {
	if g.over {
		return
	}
	start := time.Now()
	g.level.Update(deltaTime)

	if !g.over && g.advancePending {
		g.advancePending = false
		stats := g.level.Stats()
		log.Printf("Level %s complete: killed %d, breakthroughs %d, rewards %d",
			g.level.Def.ID, stats.Killed, stats.Breakthroughs, stats.RewardsEarned)
		next := g.level.Index + 1
		if next < len(g.lib.Levels) {
			if err := g.enterLevel(next); err != nil {
				// Определения проверены при загрузке, сюда попадать не должны
				log.Printf("Failed to enter level %d: %v", next+1, err)
				g.finish(false, err.Error())
			}
		} else {
			g.finish(true, "all levels complete")
		}
	}

	g.publish()
	if g.tickObserver != nil {
		g.tickObserver.ObserveTick(time.Since(start))
	}
}

func (g *Game) finish(won bool, reason string) {
	g.over = true
	g.won = won
	g.reason = reason
	if won {
		log.Printf("Game won: %s", reason)
	} else {
		log.Printf("Game lost: %s", reason)
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverPayload{
		Won:    won,
		Reason: reason,
	}})
}

// PlaceTower передаёт команду постройки текущему уровню.
func (g *Game) PlaceTower(kind defs.TowerKind, cell grid.Cell) (types.EntityID, error) {
	if g.over {
		return 0, ErrGameOver
	}
	id, err := g.level.AttemptPlaceTower(kind, cell)
	if err != nil {
		return 0, fmt.Errorf("place tower: %w", err)
	}
	g.publish()
	return id, nil
}

// UpgradeTower передаёт команду улучшения текущему уровню.
func (g *Game) UpgradeTower(id types.EntityID) error {
	if g.over {
		return ErrGameOver
	}
	if err := g.level.UpgradeTower(id); err != nil {
		return fmt.Errorf("upgrade tower: %w", err)
	}
	g.publish()
	return nil
}

// SellTower передаёт команду продажи текущему уровню.
func (g *Game) SellTower(id types.EntityID) (int, error) {
	if g.over {
		return 0, ErrGameOver
	}
	refund, err := g.level.SellTower(id)
	if err != nil {
		return 0, fmt.Errorf("sell tower: %w", err)
	}
	g.publish()
	return refund, nil
}

// Level возвращает текущий уровень. Читать его можно только между тиками
// из той же горутины, что вызывает Update.
func (g *Game) Level() *Level {
	return g.level
}

// Library возвращает определения башен, врагов и уровней сессии.
func (g *Game) Library() *defs.Library {
	return g.lib
}

func (g *Game) Over() bool {
	return g.over
}

// Result возвращает итог сессии; имеет смысл только после Over.
func (g *Game) Result() (won bool, reason string) {
	return g.won, g.reason
}

func (g *Game) publish() {
	s := &Snapshot{
		TotalLevels: len(g.lib.Levels),
		Money:       g.Economy.Money(),
		Lives:       g.Economy.Lives(),
		Over:        g.over,
		Won:         g.won,
		Reason:      g.reason,
	}
	g.level.fillSnapshot(s)
	g.snapshot.Store(s)
}

// Snapshot возвращает последний опубликованный снимок. Безопасно вызывать
// из любой горутины.
func (g *Game) Snapshot() *Snapshot {
	return g.snapshot.Load()
}
