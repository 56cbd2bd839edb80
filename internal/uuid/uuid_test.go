package uuid_test

import (
	"strings"
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	g := uuid.NewGoogleUUIDGenerator()

	a, b := g.New(), g.New()
	assert.NotEqual(t, a, b)

	parsed, err := googleuuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, googleuuid.Version(4), parsed.Version())
}

func TestPrefixed(t *testing.T) {
	g := uuid.NewPrefixed("evt", nil)

	id := g.New()
	require.True(t, strings.HasPrefix(id, "evt_"))

	_, err := googleuuid.Parse(strings.TrimPrefix(id, "evt_"))
	assert.NoError(t, err)
}
