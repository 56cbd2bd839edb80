package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/i18n"
	"github.com/KirkDiggler/dnd-bot-mutators/internal/mutators"
)

func TestLoadEmbedded(t *testing.T) {
	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, []string{"en-US", "de-DE"}, bundle.Locales())

	en := bundle.Localizer("en-US")
	assert.Equal(t, "and", en.Localize(mutators.KeyConnectiveAnd))
	assert.Equal(t,
		"Mutators disabled because they are no longer available: Brutal",
		en.Localize(mutators.KeyDisabledLocal, en.Localize(mutators.KeyReasonUnavailable), "Brutal"))
}

func TestLocalizer_Matching(t *testing.T) {
	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)

	testCases := []struct {
		requested string
		want      string
		and       string
	}{
		{requested: "de-DE", want: "de-DE", and: "und"},
		{requested: "de", want: "de-DE", and: "und"},
		{requested: "fr-FR", want: "en-US", and: "and"},
		{requested: "", want: "en-US", and: "and"},
		{requested: "not a tag", want: "en-US", and: "and"},
	}

	for _, tc := range testCases {
		t.Run(tc.requested, func(t *testing.T) {
			l := bundle.Localizer(tc.requested)
			assert.Equal(t, tc.want, l.Locale())
			assert.Equal(t, tc.and, l.Localize(mutators.KeyConnectiveAnd))
		})
	}
}

func TestEveryLocaleCoversBaseKeys(t *testing.T) {
	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)

	keys := []string{
		mutators.KeyDisabledLocal,
		mutators.KeyDisabledBroadcast,
		mutators.KeyReasonDifficulty,
		mutators.KeyReasonIncompatible,
		mutators.KeyReasonUnavailable,
		mutators.KeyConnectiveAnd,
	}
	for _, locale := range bundle.Locales() {
		for _, key := range keys {
			_, ok := bundle.Message(locale, key)
			assert.True(t, ok, "%s missing %s", locale, key)
		}
	}
}

func TestLocalizer_UnknownKeyRendersKey(t *testing.T) {
	bundle, err := i18n.LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, "mutators.nope", bundle.Localizer("en-US").Localize("mutators.nope"))
}

func TestLoadFromFS_Validation(t *testing.T) {
	testCases := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			name: "missing base locale",
			fs: fstest.MapFS{
				"locales/de-DE/mutators.yaml": {Data: []byte("locale: de-DE\nmessages:\n  a: b\n")},
			},
		},
		{
			name: "locale mismatch",
			fs: fstest.MapFS{
				"locales/en-US/mutators.yaml": {Data: []byte("locale: en-GB\nmessages:\n  a: b\n")},
			},
		},
		{
			name: "duplicate key across namespaces",
			fs: fstest.MapFS{
				"locales/en-US/a.yaml": {Data: []byte("locale: en-US\nmessages:\n  k: one\n")},
				"locales/en-US/b.yaml": {Data: []byte("locale: en-US\nmessages:\n  k: two\n")},
			},
		},
		{
			name: "no catalogs",
			fs:   fstest.MapFS{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := i18n.LoadFromFS(tc.fs)
			assert.Error(t, err)
		})
	}
}
