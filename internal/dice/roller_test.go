package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/dice"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

func TestRandomRoller_Roll(t *testing.T) {
	roller := dice.NewRandomRoller()

	for i := 0; i < 100; i++ {
		result, err := roller.Roll(3, 6, 2)
		require.NoError(t, err)
		require.Len(t, result.Rolls, 3)

		sum := 0
		for _, roll := range result.Rolls {
			assert.GreaterOrEqual(t, roll, 1)
			assert.LessOrEqual(t, roll, 6)
			sum += roll
		}
		assert.Equal(t, sum+2, result.Total)
		assert.Equal(t, 3, result.Count)
		assert.Equal(t, 6, result.Sides)
	}
}

func TestRandomRoller_InvalidArguments(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(0, 6, 0)
	require.Error(t, err)
	assert.Equal(t, dnderr.CodeInvalidArgument, dnderr.GetCode(err))

	_, err = roller.Roll(1, 0, 0)
	require.Error(t, err)
	assert.Equal(t, dnderr.CodeInvalidArgument, dnderr.GetCode(err))
}

func TestSeededRoller_Replays(t *testing.T) {
	first, err := dice.NewSeededRoller(42).Roll(10, 20, 0)
	require.NoError(t, err)
	second, err := dice.NewSeededRoller(42).Roll(10, 20, 0)
	require.NoError(t, err)

	assert.Equal(t, first.Rolls, second.Rolls)
}

func TestRollResult_String(t *testing.T) {
	tests := []struct {
		name   string
		result *dice.RollResult
		want   string
	}{
		{
			name:   "no bonus",
			result: &dice.RollResult{Count: 2, Sides: 6, Rolls: []int{3, 5}, Total: 8},
			want:   "2d6 [3, 5] = 8",
		},
		{
			name:   "positive bonus",
			result: &dice.RollResult{Count: 1, Sides: 20, Bonus: 3, Rolls: []int{17}, Total: 20},
			want:   "1d20+3 [17] = 20",
		},
		{
			name:   "negative bonus",
			result: &dice.RollResult{Count: 1, Sides: 4, Bonus: -1, Rolls: []int{1}, Total: 0},
			want:   "1d4-1 [1] = 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.String())
		})
	}
}

func TestRollResult_Highest(t *testing.T) {
	result := &dice.RollResult{Rolls: []int{2, 6, 4}}
	assert.Equal(t, 6, result.Highest())
	assert.Equal(t, 0, (&dice.RollResult{}).Highest())
}
