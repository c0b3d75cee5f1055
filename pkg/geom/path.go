// pkg/geom/path.go
package geom

import (
	"errors"
	"fmt"
)

var (
	ErrPathTooShort      = errors.New("path needs at least two points")
	ErrDegenerateSegment = errors.New("path has a zero-length segment")
)

// Path is an immutable ordered route of waypoints from the map edge to the base.
// A Path is shared read-only by every enemy walking it.
type Path struct {
	points []Vec
}

// NewPath validates the waypoints and copies them into a Path.
func NewPath(points []Vec) (*Path, error) {
	if len(points) < 2 {
		return nil, ErrPathTooShort
	}
	for i := 1; i < len(points); i++ {
		if points[i] == points[i-1] {
			return nil, fmt.Errorf("segment %d: %w", i-1, ErrDegenerateSegment)
		}
	}
	cp := make([]Vec, len(points))
	copy(cp, points)
	return &Path{points: cp}, nil
}

// MustPath is NewPath for static tables; it panics on invalid input.
func MustPath(points ...Vec) *Path {
	p, err := NewPath(points)
	if err != nil {
		panic(err)
	}
	return p
}

// Len возвращает количество точек пути
func (p *Path) Len() int {
	return len(p.points)
}

// Segments возвращает количество отрезков пути
func (p *Path) Segments() int {
	return len(p.points) - 1
}

// Point возвращает i-ю точку пути
func (p *Path) Point(i int) Vec {
	return p.points[i]
}

// Start возвращает первую точку пути
func (p *Path) Start() Vec {
	return p.points[0]
}

// End возвращает последнюю точку пути (база)
func (p *Path) End() Vec {
	return p.points[len(p.points)-1]
}

// Points returns a copy of the waypoints.
func (p *Path) Points() []Vec {
	cp := make([]Vec, len(p.points))
	copy(cp, p.points)
	return cp
}

// Length returns the total length of the route.
func (p *Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.points); i++ {
		total += Distance(p.points[i-1], p.points[i])
	}
	return total
}
