// cmd/simulate/main.go
//
// Headless-прогон: ставит башни по плану, крутит тики с фиксированным шагом
// и печатает итог. Удобно для балансировки и воспроизведения по seed.
package main

import (
	"encoding/json"
	"flag"
	"go-tower-siege/internal/app"
	"go-tower-siege/internal/config"
	"go-tower-siege/internal/defs"
	"go-tower-siege/internal/render/pngdump"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables only")
	}
	opts := config.OptionsFromEnv()

	level := flag.Int("level", 0, "play only this level (1-based), 0 plays all")
	seed := flag.Int64("seed", opts.Seed, "PRNG seed, 0 takes the current time")
	ticks := flag.Int("ticks", 100000, "maximum number of ticks")
	dt := flag.Float64("dt", 1.0/config.FrameRate, "tick length in seconds")
	planFlag := flag.String("plan", "basic:3,4;basic:6,4;sniper:9,4", "towers to place, kind:col,row separated by ';'")
	pngPath := flag.String("png", "", "write the final state to this PNG file")
	policy := flag.String("policy", string(opts.Breakthrough), "breakthrough policy: lives or sudden_death")
	defsDir := flag.String("defs", opts.DefsDir, "directory with definition JSON files")
	flag.Parse()

	opts.Seed = *seed
	opts.DefsDir = *defsDir
	if p := config.ParseBreakthroughPolicy(*policy); p != "" {
		opts.Breakthrough = p
	} else {
		log.Fatalf("Unknown breakthrough policy %q", *policy)
	}

	lib, err := defs.Load(opts.DefsDir)
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	if *level > 0 {
		if *level > len(lib.Levels) {
			log.Fatalf("Level %d out of range, have %d", *level, len(lib.Levels))
		}
		single := *lib
		single.Levels = lib.Levels[*level-1 : *level]
		lib = &single
	}

	plan, err := parsePlan(*planFlag)
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.NewGame(lib, opts)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}

	// План ставится заново на каждом уровне: башни между уровнями не переносятся
	placedOn := -1
	n := 0
	for ; n < *ticks && !game.Over(); n++ {
		if idx := game.Level().Index; idx != placedOn {
			placedOn = idx
			applyPlan(game, plan)
		}
		game.Update(*dt)
	}

	s := game.Snapshot()
	won, reason := game.Result()
	log.Printf("Finished after %d ticks (%.1fs): over=%v won=%v reason=%q", n, float64(n)*(*dt), game.Over(), won, reason)
	stats, err := json.MarshalIndent(s.Stats, "", "  ")
	if err == nil {
		log.Printf("Last level stats:\n%s", stats)
	}
	log.Printf("Money %d, lives %d, level %d/%d", s.Money, s.Lives, s.LevelIndex+1, s.TotalLevels)

	if *pngPath != "" {
		if err := pngdump.Write(*pngPath, s, game.Level().Grid, game.Level().Paths); err != nil {
			log.Fatal(err)
		}
		log.Printf("Snapshot written to %s", *pngPath)
	}
	if game.Over() && !won {
		os.Exit(1)
	}
}

func applyPlan(game *app.Game, plan []placement) {
	for _, p := range plan {
		if _, err := game.PlaceTower(p.Kind, p.Cell); err != nil {
			log.Printf("Plan: %s at %v skipped: %v", p.Kind, p.Cell, err)
		}
	}
}
