package mutators

import (
	"strings"

	"github.com/KirkDiggler/dnd-bot-mutators/internal/entities"
	dnderr "github.com/KirkDiggler/dnd-bot-mutators/internal/errors"
)

// TitlePlacement controls where a mutator's title goes when it is added to a
// base string such as a session name
type TitlePlacement string

const (
	PlacementBefore  TitlePlacement = "before"
	PlacementAfter   TitlePlacement = "after"
	PlacementReplace TitlePlacement = "replace"
)

// IsValid checks if the placement is one of the known placements
func (p TitlePlacement) IsValid() bool {
	switch p {
	case PlacementBefore, PlacementAfter, PlacementReplace:
		return true
	default:
		return false
	}
}

// Config is the declared configuration of a mutator. Every field is optional.
//
// Defaults: empty compatibility and ordering sets, both "all" stances false,
// an empty difficulty set meaning every difficulty, zero dice, the mutator
// name as title, the title as short title and PlacementAfter.
type Config struct {
	CompatibleWith      []string `yaml:"compatible_with" json:"compatible_with,omitempty"`
	IncompatibleWith    []string `yaml:"incompatible_with" json:"incompatible_with,omitempty"`
	CompatibleWithAll   bool     `yaml:"compatible_with_all" json:"compatible_with_all,omitempty"`
	IncompatibleWithAll bool     `yaml:"incompatible_with_all" json:"incompatible_with_all,omitempty"`

	// EnableBeforeThese names mutators that must be enabled after this one
	EnableBeforeThese []string `yaml:"enable_before_these" json:"enable_before_these,omitempty"`
	// EnableAfterThese names mutators that must be enabled before this one
	EnableAfterThese []string `yaml:"enable_after_these" json:"enable_after_these,omitempty"`

	DifficultyLevels []entities.Difficulty `yaml:"difficulty_levels" json:"difficulty_levels,omitempty"`

	Title          string         `yaml:"title" json:"title,omitempty"`
	ShortTitle     string         `yaml:"short_title" json:"short_title,omitempty"`
	TitlePlacement TitlePlacement `yaml:"title_placement" json:"title_placement,omitempty"`

	// Dice is the number of bonus reward dice the mutator adds while enabled
	Dice int `yaml:"dice" json:"dice,omitempty"`
}

// resolve merges the config over the defaults for the named mutator and
// validates the result
func (c Config) resolve(name string) (Config, error) {
	out := Config{
		CompatibleWith:      uniqueNames(c.CompatibleWith),
		IncompatibleWith:    uniqueNames(c.IncompatibleWith),
		CompatibleWithAll:   c.CompatibleWithAll,
		IncompatibleWithAll: c.IncompatibleWithAll,
		EnableBeforeThese:   uniqueNames(c.EnableBeforeThese),
		EnableAfterThese:    uniqueNames(c.EnableAfterThese),
		Title:               strings.TrimSpace(c.Title),
		ShortTitle:          strings.TrimSpace(c.ShortTitle),
		TitlePlacement:      c.TitlePlacement,
		Dice:                c.Dice,
	}

	if out.Title == "" {
		out.Title = name
	}
	if out.ShortTitle == "" {
		out.ShortTitle = out.Title
	}
	if out.TitlePlacement == "" {
		out.TitlePlacement = PlacementAfter
	}
	if !out.TitlePlacement.IsValid() {
		return Config{}, dnderr.Validationf("mutator %q: unknown title placement %q", name, c.TitlePlacement).
			WithMeta("mutator", name)
	}
	if out.Dice < 0 {
		return Config{}, dnderr.Validationf("mutator %q: dice cannot be negative (got %d)", name, c.Dice).
			WithMeta("mutator", name)
	}

	seen := make(map[entities.Difficulty]bool, len(c.DifficultyLevels))
	for _, d := range c.DifficultyLevels {
		if !d.IsValid() {
			return Config{}, dnderr.Validationf("mutator %q: unknown difficulty %q", name, d).
				WithMeta("mutator", name)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out.DifficultyLevels = append(out.DifficultyLevels, d)
	}

	return out, nil
}

// uniqueNames trims and de-duplicates names, keeping first-seen order
func uniqueNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
