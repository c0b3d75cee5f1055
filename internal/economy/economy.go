// internal/economy/economy.go
package economy

import "errors"

// ErrInsufficientFunds - денег не хватает на покупку или улучшение.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Wallet - узкая возможность начислять деньги (награды, доход).
type Wallet interface {
	Credit(amount int)
}

// Funds - возможность проверять и списывать деньги (постройка, улучшение).
type Funds interface {
	Money() int
	CanAfford(amount int) bool
	TryDebit(amount int) error
}

// Economy holds the shared money and lives counters of a game session.
// All mutations go through Credit, TryDebit and LoseLife so money never
// drops below zero. It is not safe for concurrent use; the simulation
// mutates it only from inside a tick.
type Economy struct {
	money int
	lives int
}

// New создаёт экономику со стартовыми значениями. Отрицательные значения обнуляются.
func New(money, lives int) *Economy {
	return &Economy{money: max(money, 0), lives: max(lives, 0)}
}

// Money возвращает текущий запас денег
func (e *Economy) Money() int {
	return e.money
}

// Lives возвращает оставшиеся жизни
func (e *Economy) Lives() int {
	return e.lives
}

// Credit начисляет деньги. Неположительные суммы игнорируются.
func (e *Economy) Credit(amount int) {
	if amount <= 0 {
		return
	}
	e.money += amount
}

// CanAfford сообщает, хватает ли денег
func (e *Economy) CanAfford(amount int) bool {
	return amount <= e.money
}

// TryDebit списывает amount, если денег хватает. Иначе возвращает
// ErrInsufficientFunds и ничего не меняет.
func (e *Economy) TryDebit(amount int) error {
	if amount < 0 {
		amount = 0
	}
	if amount > e.money {
		return ErrInsufficientFunds
	}
	e.money -= amount
	return nil
}

// LoseLife отнимает одну жизнь и возвращает остаток.
func (e *Economy) LoseLife() int {
	if e.lives > 0 {
		e.lives--
	}
	return e.lives
}
