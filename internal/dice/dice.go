package dice

import (
	"fmt"
	"strings"
)

// RollResult is the outcome of rolling a pool of same-sided dice
type RollResult struct {
	Count int
	Sides int
	Bonus int
	Rolls []int
	Total int
}

// Highest returns the best single die in the pool
func (r *RollResult) Highest() int {
	highest := 0
	for _, roll := range r.Rolls {
		if roll > highest {
			highest = roll
		}
	}
	return highest
}

// Notation renders the roll as e.g. "3d6+1"
func (r *RollResult) Notation() string {
	switch {
	case r.Bonus > 0:
		return fmt.Sprintf("%dd%d+%d", r.Count, r.Sides, r.Bonus)
	case r.Bonus < 0:
		return fmt.Sprintf("%dd%d%d", r.Count, r.Sides, r.Bonus)
	default:
		return fmt.Sprintf("%dd%d", r.Count, r.Sides)
	}
}

func (r *RollResult) String() string {
	if r == nil {
		return ""
	}
	rolls := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		rolls[i] = fmt.Sprintf("%d", roll)
	}
	return fmt.Sprintf("%s [%s] = %d", r.Notation(), strings.Join(rolls, ", "), r.Total)
}
