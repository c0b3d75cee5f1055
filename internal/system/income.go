package system

import (
	"go-tower-siege/internal/economy"
	"go-tower-siege/internal/entity"
	"go-tower-siege/internal/event"
)

// IncomeSystem начисляет доход денежных башен. Они не ищут целей и не стреляют.
type IncomeSystem struct {
	ecs             *entity.ECS
	wallet          economy.Wallet
	eventDispatcher *event.Dispatcher
}

func NewIncomeSystem(ecs *entity.ECS, wallet economy.Wallet, eventDispatcher *event.Dispatcher) *IncomeSystem {
	return &IncomeSystem{ecs: ecs, wallet: wallet, eventDispatcher: eventDispatcher}
}

// Update начисляет Amount каждой башне, у которой с прошлого начисления
// прошло не меньше Interval.
func (s *IncomeSystem) Update(now float64) {
	for _, id := range s.ecs.TowerIDs() {
		income, ok := s.ecs.Incomes[id]
		if !ok {
			continue
		}
		if !elapsed(now, income.LastGenerationTime, income.Interval) {
			continue
		}
		income.LastGenerationTime = now
		s.wallet.Credit(income.Amount)

		tower := s.ecs.Towers[id]
		s.eventDispatcher.Dispatch(event.Event{Type: event.IncomeGenerated, Data: event.TowerPayload{
			ID:     id,
			Kind:   tower.Kind,
			Cell:   tower.Cell,
			Level:  tower.Level,
			Amount: income.Amount,
		}})
	}
}
