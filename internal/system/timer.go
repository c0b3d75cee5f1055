// internal/system/timer.go
package system

import "go-tower-siege/internal/config"

// elapsed сообщает, что с момента last прошло не меньше interval секунд.
// Игровое время накапливается шагами float64, и 60 шагов по 1/60 дают
// чуть меньше секунды; поэтому сравнение идёт с допуском config.TimeEpsilon.
func elapsed(now, last, interval float64) bool {
	return now-last >= interval-config.TimeEpsilon
}
