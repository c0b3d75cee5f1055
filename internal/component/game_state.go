package component

// LevelPhase - фаза уровня
type LevelPhase int

const (
	PhaseSpawning LevelPhase = iota
	PhaseWaitingForClear
	PhaseAllWavesComplete
)

func (p LevelPhase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseWaitingForClear:
		return "waiting_for_clear"
	case PhaseAllWavesComplete:
		return "all_waves_complete"
	default:
		return "unknown"
	}
}
