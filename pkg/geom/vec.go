// pkg/geom/vec.go
package geom

import "math"

// Vec - точка или вектор на плоскости в пикселях
type Vec struct {
	X, Y float64
}

// Add возвращает сумму двух векторов
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub возвращает разность двух векторов
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale умножает вектор на скаляр
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len возвращает длину вектора
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize возвращает единичный вектор того же направления.
// Для нулевого вектора возвращается нулевой вектор.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Distance вычисляет евклидово расстояние между точками
func Distance(a, b Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Angle returns the heading from a to b in radians.
func Angle(a, b Vec) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}
