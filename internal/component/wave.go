// internal/component/wave.go
package component

import "go-tower-siege/internal/defs"

// Wave - курсор спавна текущей волны
type Wave struct {
	Number        int               // номер волны, с единицы
	Orders        []defs.SpawnOrder // все запросы на спавн этой волны
	Spawned       int               // сколько уже создано
	LastSpawnTime float64           // время последнего спавна по часам уровня
	SpawnInterval float64           // секунды между спавнами
}

// Remaining возвращает число ещё не созданных врагов
func (w *Wave) Remaining() int {
	return len(w.Orders) - w.Spawned
}
