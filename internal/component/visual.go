// internal/component/visual.go
package component

import "image/color"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer float64 // сколько времени эффекту осталось
}

// Laser - след мгновенного выстрела снайперской башни.
type Laser struct {
	FromX, FromY float64
	ToX, ToY     float64
	Color        color.RGBA
	Timer        float64 // сколько времени эффект уже активен
	Duration     float64 // общая продолжительность эффекта
}
