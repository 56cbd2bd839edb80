package rewards

import (
	"log"
	"sync"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/dice"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// DieSides is the size of every bonus reward die
const DieSides = 6

// Ledger keeps the running count of bonus reward dice granted by enabled
// mutators. The count never drops below zero.
type Ledger struct {
	mu    sync.Mutex
	count int
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddDice adds n dice to the pool
func (l *Ledger) AddDice(n int) {
	if n <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count += n
}

// RemoveDice takes n dice out of the pool, stopping at zero
func (l *Ledger) RemoveDice(n int) {
	if n <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.count -= n
	if l.count < 0 {
		log.Printf("RewardLedger: removed %d dice from a pool of %d, clamping to zero", n, l.count+n)
		l.count = 0
	}
}

// Count returns the current number of bonus dice
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Roll rolls the accumulated pool. An empty pool yields a zero result
// without touching the roller.
func (l *Ledger) Roll(roller dice.Roller) (*dice.RollResult, error) {
	if roller == nil {
		return nil, dnderr.InvalidArgument("roller is required")
	}

	count := l.Count()
	if count == 0 {
		return &dice.RollResult{Sides: DieSides}, nil
	}

	result, err := roller.Roll(count, DieSides, 0)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to roll %d reward dice", count)
	}
	return result, nil
}
