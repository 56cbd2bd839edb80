package dice

import (
	"math/rand"
	"sync"
	"time"

	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// randomRoller implements Roller with math/rand
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller with a fixed seed so a sequence can be replayed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, dnderr.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 {
		return nil, dnderr.InvalidArgumentf("invalid dice size %d", sides)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := &RollResult{
		Count: count,
		Sides: sides,
		Bonus: bonus,
		Rolls: make([]int, count),
		Total: bonus,
	}
	for i := 0; i < count; i++ {
		roll := r.rng.Intn(sides) + 1
		result.Rolls[i] = roll
		result.Total += roll
	}

	return result, nil
}
