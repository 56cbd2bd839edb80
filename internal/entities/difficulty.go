package entities

// Difficulty identifies an encounter difficulty tier a session can be run at
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyDeadly Difficulty = "deadly"
)

// AllDifficulties lists the tiers from easiest to hardest
var AllDifficulties = []Difficulty{
	DifficultyEasy,
	DifficultyMedium,
	DifficultyHard,
	DifficultyDeadly,
}

// String returns the string representation of the difficulty
func (d Difficulty) String() string {
	return string(d)
}

// IsValid checks if the difficulty is a known tier
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyDeadly:
		return true
	default:
		return false
	}
}
