// component/movement.go
package component

import "go-tower-siege/pkg/geom"

// Position - компонент позиции
type Position struct {
	X, Y float64
}

// Vec возвращает позицию как вектор
func (p Position) Vec() geom.Vec {
	return geom.Vec{X: p.X, Y: p.Y}
}

// Velocity - компонент скорости (пиксели за кадр при config.FrameRate)
type Velocity struct {
	Speed float64
}

// Path - компонент пути. Index - начало текущего отрезка,
// всегда в диапазоне [0, Route.Len()-2].
type Path struct {
	Route *geom.Path
	Index int
}
