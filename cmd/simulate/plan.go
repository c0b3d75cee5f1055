package main

import (
	"fmt"
	"go-tower-siege/internal/defs"
	"go-tower-siege/pkg/grid"
	"strconv"
	"strings"
)

// placement - одна башня из плана: тип и клетка.
type placement struct {
	Kind defs.TowerKind
	Cell grid.Cell
}

// parsePlan разбирает строку вида "basic:3,4;sniper:5,6".
func parsePlan(s string) ([]placement, error) {
	var plan []placement
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		kind, coords, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("plan entry %q: want kind:col,row", item)
		}
		colStr, rowStr, ok := strings.Cut(coords, ",")
		if !ok {
			return nil, fmt.Errorf("plan entry %q: want kind:col,row", item)
		}
		col, err := strconv.Atoi(strings.TrimSpace(colStr))
		if err != nil {
			return nil, fmt.Errorf("plan entry %q: bad column: %w", item, err)
		}
		row, err := strconv.Atoi(strings.TrimSpace(rowStr))
		if err != nil {
			return nil, fmt.Errorf("plan entry %q: bad row: %w", item, err)
		}
		plan = append(plan, placement{
			Kind: defs.TowerKind(strings.TrimSpace(kind)),
			Cell: grid.Cell{Col: col, Row: row},
		})
	}
	return plan, nil
}
