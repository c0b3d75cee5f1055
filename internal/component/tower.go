// component/tower.go
package component

import (
	"go-tower-siege/internal/defs"
	"go-tower-siege/pkg/grid"
)

type Tower struct {
	Kind     defs.TowerKind
	Cell     grid.Cell // клетка, на которой стоит башня
	Level    int       // начиная с 1
	Invested int       // потрачено на постройку и улучшения
}
