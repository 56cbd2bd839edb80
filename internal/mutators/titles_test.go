package mutators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
)

func TestFormatTitles(t *testing.T) {
	engine, _ := quietEngine(t, nil)
	register := func(name string, cfg mutators.Config) *mutators.Mutator {
		m, err := engine.Register(name, cfg)
		require.NoError(t, err)
		return m
	}

	foo := register("foo", mutators.Config{Title: "Foo", TitlePlacement: mutators.PlacementBefore})
	bar := register("bar", mutators.Config{Title: "Bar", TitlePlacement: mutators.PlacementReplace})
	baz := register("baz", mutators.Config{Title: "Baz", ShortTitle: "Bz"})
	qux := register("qux", mutators.Config{Title: "Qux", TitlePlacement: mutators.PlacementBefore})
	zap := register("zap", mutators.Config{Title: "Zap", TitlePlacement: mutators.PlacementReplace})

	testCases := []struct {
		name     string
		mutators []*mutators.Mutator
		base     string
		sep      string
		short    bool
		want     string
	}{
		{name: "no mutators keeps base", base: "Base", sep: ", ", want: "Base"},
		{name: "replace overrides base, before still prepends", mutators: []*mutators.Mutator{foo, bar}, base: "Base", sep: ", ", want: "Foo, Bar"},
		{name: "after appends", mutators: []*mutators.Mutator{baz}, base: "Base", sep: " - ", want: "Base - Baz"},
		{name: "short titles", mutators: []*mutators.Mutator{baz, foo}, base: "Base", sep: " ", short: true, want: "Foo Base Bz"},
		{name: "same placement stacks in given order", mutators: []*mutators.Mutator{qux, foo}, base: "Base", sep: "/", want: "Qux/Foo/Base"},
		{name: "multiple replaces join", mutators: []*mutators.Mutator{bar, zap, baz}, base: "Base", sep: ", ", want: "Bar, Zap, Baz"},
		{name: "empty base skipped", mutators: []*mutators.Mutator{foo, baz}, base: "", sep: ", ", want: "Foo, Baz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mutators.FormatTitles(tc.mutators, tc.base, tc.sep, tc.short))
		})
	}
}

func TestEngine_EnabledTitlesFollowResolvedOrder(t *testing.T) {
	engine, _ := quietEngine(t, nil)
	_, _ = engine.Register("second", mutators.Config{Title: "Second", EnableAfterThese: []string{"first"}})
	_, _ = engine.Register("first", mutators.Config{Title: "First"})
	_, _ = engine.Register("off", mutators.Config{Title: "Off"})

	require.NoError(t, engine.SetState("second", true))
	require.NoError(t, engine.SetState("first", true))

	assert.Equal(t, "Hunt + First + Second", engine.EnabledTitles("Hunt", " + ", false))
}
