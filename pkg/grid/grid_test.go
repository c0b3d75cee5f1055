package grid

import (
	"go-tower-siege/pkg/geom"
	"testing"
)

func TestCellAtAndCenter(t *testing.T) {
	g := New(15, 10, 64)
	c := g.CellAt(geom.Vec{X: 130, Y: 200})
	if c != (Cell{Col: 2, Row: 3}) {
		t.Fatalf("CellAt = %+v, want {2 3}", c)
	}
	if got := g.Center(c); got != (geom.Vec{X: 160, Y: 224}) {
		t.Errorf("Center = %+v, want {160 224}", got)
	}
	if g.CellAt(g.Center(c)) != c {
		t.Error("Center does not map back to the same cell")
	}
}

func TestReserveAndRelease(t *testing.T) {
	g := New(4, 4, 10)
	c := Cell{Col: 1, Row: 1}
	if !g.Reserve(c) {
		t.Fatal("first Reserve failed")
	}
	if g.Reserve(c) {
		t.Error("second Reserve on the same cell succeeded")
	}
	if !g.IsOccupied(c) || g.Occupied() != 1 {
		t.Error("cell not marked occupied")
	}
	g.Release(c)
	if g.IsOccupied(c) {
		t.Error("cell still occupied after Release")
	}
	if g.Reserve(Cell{Col: 4, Row: 0}) {
		t.Error("Reserve outside the grid succeeded")
	}
}

func TestBuildableArea(t *testing.T) {
	g := New(15, 10, 64).WithBuildable(Area{MinCol: 1, MinRow: 3, MaxCol: 99, MaxRow: 99})
	if g.CanBuild(Cell{Col: 0, Row: 5}) {
		t.Error("column 0 should not be buildable")
	}
	if g.CanBuild(Cell{Col: 5, Row: 2}) {
		t.Error("row 2 should not be buildable")
	}
	if !g.CanBuild(Cell{Col: 14, Row: 9}) {
		t.Error("bottom-right cell should be buildable")
	}
	if got, want := len(g.BuildableCells()), 14*7; got != want {
		t.Errorf("BuildableCells = %d, want %d", got, want)
	}
}
