// internal/config/options.go
package config

import (
	"os"
	"strconv"
	"strings"
)

// BreakthroughPolicy решает, что происходит, когда враг доходит до базы.
type BreakthroughPolicy string

const (
	// PolicyLives - каждый прорыв отнимает одну жизнь, игра проиграна при нуле.
	PolicyLives BreakthroughPolicy = "lives"
	// PolicySuddenDeath - первый же прорыв завершает игру.
	PolicySuddenDeath BreakthroughPolicy = "sudden_death"
)

// Options holds runtime settings that are not part of the game balance.
type Options struct {
	Seed         int64              // 0 - взять текущее время
	DebugAddr    string             // пустая строка отключает debug-сервер
	Breakthrough BreakthroughPolicy // политика прорыва
	Mute         bool               // отключить звук
	DefsDir      string             // каталог с JSON-определениями, пусто - встроенные
}

// DefaultOptions returns the options used when nothing is overridden.
func DefaultOptions() Options {
	return Options{
		Seed:         0,
		DebugAddr:    "localhost:6060",
		Breakthrough: PolicyLives,
	}
}

// OptionsFromEnv returns DefaultOptions with environment overrides applied.
func OptionsFromEnv() Options {
	opts := DefaultOptions()
	if seed, err := strconv.ParseInt(os.Getenv("TD_SEED"), 10, 64); err == nil {
		opts.Seed = seed
	}
	if addr, ok := os.LookupEnv("TD_DEBUG_ADDR"); ok {
		opts.DebugAddr = addr
	}
	if p := ParseBreakthroughPolicy(os.Getenv("TD_BREAKTHROUGH")); p != "" {
		opts.Breakthrough = p
	}
	if mute, err := strconv.ParseBool(os.Getenv("TD_MUTE")); err == nil {
		opts.Mute = mute
	}
	if dir := os.Getenv("TD_DEFS_DIR"); dir != "" {
		opts.DefsDir = dir
	}
	return opts
}

// ParseBreakthroughPolicy returns "" for unknown values.
func ParseBreakthroughPolicy(s string) BreakthroughPolicy {
	switch BreakthroughPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case PolicyLives:
		return PolicyLives
	case PolicySuddenDeath:
		return PolicySuddenDeath
	default:
		return ""
	}
}
