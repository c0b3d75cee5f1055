// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800
	MaxDeltaTime = 0.06
	FrameRate    = 60 // скорости врагов заданы в пикселях за кадр при 60 FPS

	GridCols      = 15
	GridRows      = 10
	GridCellSize  = 64.0
	BuildMinCol   = 1
	BuildMinRow   = 3
	ClickCooldown = 150 // мс между кликами

	StartingMoney = 3000
	StartingLives = 20

	SpawnDelay    = 1.0  // секунды между появлениями врагов одной волны
	TimeEpsilon   = 1e-6 // допуск сравнения игрового времени
	DefaultReward = 10

	UpgradeBaseCost = 100
	DamageGrowth    = 1.2
	IntervalDecay   = 0.8
	MinFireInterval = 0.1
	SellRefundRatio = 0.75

	EnemyRadius = 15.0
	TowerRadius = 22.0

	DamageFlashDuration = 0.1
	LaserDuration       = 0.15

	ProjectileSpeed    = 400.0 // pixels per second
	ProjectileRadius   = 5.0   // pixels
	ProjectileLifetime = 3.0   // seconds

	HealthBarWidth  = 30.0
	HealthBarHeight = 4.0

	TextOffsetY = 4
)

var (
	BackgroundColor  = color.RGBA{230, 230, 230, 255}
	PathColor        = color.RGBA{0, 128, 0, 255}
	GridLineColor    = color.RGBA{200, 200, 200, 255}
	BuildableColor   = color.RGBA{215, 225, 215, 255}
	HoverColor       = color.RGBA{255, 255, 255, 120}
	RangeColor       = color.RGBA{60, 60, 200, 60}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PanelColor       = color.RGBA{30, 30, 40, 200}
	HealthBarColor   = color.RGBA{220, 40, 40, 255}
	HealthBarBack    = color.RGBA{40, 40, 40, 255}
	ProjectileColor  = color.RGBA{255, 200, 0, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	WinColor         = color.RGBA{50, 205, 50, 255}
	LoseColor        = color.RGBA{220, 60, 60, 255}
	StrokeWidth      = 2.0
	PathStrokeWidth  = 5.0
	TowerColors      = map[string]color.RGBA{
		"basic":  {50, 100, 255, 255},
		"sniper": {180, 50, 230, 255},
		"money":  {255, 215, 0, 255},
	}
	EnemyColors = map[string]color.RGBA{
		"basic":  {90, 90, 90, 255},
		"fast":   {255, 140, 0, 255},
		"strong": {140, 20, 20, 255},
		"boss":   {0, 0, 0, 255},
	}
	FallbackColor = color.RGBA{128, 128, 128, 255}
)
