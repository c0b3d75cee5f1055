// pkg/grid/grid.go
package grid

import (
	"go-tower-siege/pkg/geom"
	"math"
)

// Cell - клетка сетки в координатах (столбец, строка)
type Cell struct {
	Col, Row int
}

// Area - прямоугольная область клеток, где разрешено строительство.
// Границы Min включительно, Max исключительно.
type Area struct {
	MinCol, MinRow int
	MaxCol, MaxRow int
}

// Grid - квадратная сетка размещения башен с учётом занятых клеток
type Grid struct {
	Cols, Rows int
	CellSize   float64
	Buildable  Area
	occupied   map[Cell]bool
}

// New создаёт сетку, в которой строить можно везде.
func New(cols, rows int, cellSize float64) *Grid {
	return &Grid{
		Cols:      cols,
		Rows:      rows,
		CellSize:  cellSize,
		Buildable: Area{MaxCol: cols, MaxRow: rows},
		occupied:  make(map[Cell]bool),
	}
}

// WithBuildable restricts construction to the given area (clamped to the grid).
func (g *Grid) WithBuildable(a Area) *Grid {
	a.MinCol = max(a.MinCol, 0)
	a.MinRow = max(a.MinRow, 0)
	a.MaxCol = min(a.MaxCol, g.Cols)
	a.MaxRow = min(a.MaxRow, g.Rows)
	g.Buildable = a
	return g
}

// InBounds сообщает, лежит ли клетка внутри сетки
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.Cols && c.Row < g.Rows
}

// CanBuild сообщает, лежит ли клетка внутри области строительства
func (g *Grid) CanBuild(c Cell) bool {
	a := g.Buildable
	return g.InBounds(c) && c.Col >= a.MinCol && c.Row >= a.MinRow && c.Col < a.MaxCol && c.Row < a.MaxRow
}

// CellAt конвертирует пиксельные координаты в клетку
func (g *Grid) CellAt(p geom.Vec) Cell {
	return Cell{
		Col: int(math.Floor(p.X / g.CellSize)),
		Row: int(math.Floor(p.Y / g.CellSize)),
	}
}

// Center возвращает пиксельный центр клетки
func (g *Grid) Center(c Cell) geom.Vec {
	return geom.Vec{
		X: float64(c.Col)*g.CellSize + g.CellSize/2,
		Y: float64(c.Row)*g.CellSize + g.CellSize/2,
	}
}

// IsOccupied сообщает, занята ли клетка
func (g *Grid) IsOccupied(c Cell) bool {
	return g.occupied[c]
}

// Reserve помечает клетку занятой. Возвращает false, если клетка уже занята
// или вне области строительства.
func (g *Grid) Reserve(c Cell) bool {
	if !g.CanBuild(c) || g.occupied[c] {
		return false
	}
	g.occupied[c] = true
	return true
}

// Release освобождает клетку
func (g *Grid) Release(c Cell) {
	delete(g.occupied, c)
}

// Occupied returns the number of reserved cells.
func (g *Grid) Occupied() int {
	return len(g.occupied)
}

// BuildableCells lists every cell of the build area in row-major order.
func (g *Grid) BuildableCells() []Cell {
	a := g.Buildable
	cells := make([]Cell, 0, (a.MaxCol-a.MinCol)*(a.MaxRow-a.MinRow))
	for row := a.MinRow; row < a.MaxRow; row++ {
		for col := a.MinCol; col < a.MaxCol; col++ {
			cells = append(cells, Cell{Col: col, Row: row})
		}
	}
	return cells
}
