package mutators

import "strings"

// FormatTitles adds the mutators' titles to base according to each one's
// placement. Titles sharing a placement are joined with separator. Replace
// titles take the place of base; before and after titles still wrap the
// result.
func FormatTitles(mutators []*Mutator, base, separator string, short bool) string {
	if len(mutators) == 0 {
		return base
	}

	var before, after, replace []string
	for _, m := range mutators {
		title := m.Title(short)
		switch m.config.TitlePlacement {
		case PlacementBefore:
			before = append(before, title)
		case PlacementReplace:
			replace = append(replace, title)
		default:
			after = append(after, title)
		}
	}

	core := base
	if len(replace) > 0 {
		core = strings.Join(replace, separator)
	}

	parts := make([]string, 0, 3)
	if len(before) > 0 {
		parts = append(parts, strings.Join(before, separator))
	}
	if core != "" {
		parts = append(parts, core)
	}
	if len(after) > 0 {
		parts = append(parts, strings.Join(after, separator))
	}
	return strings.Join(parts, separator)
}

// EnabledTitles formats the titles of the enabled mutators, in resolved
// order, onto base
func (e *Engine) EnabledTitles(base, separator string, short bool) string {
	e.ensureSorted()
	var enabled []*Mutator
	for _, m := range e.order {
		if m.enabled {
			enabled = append(enabled, m)
		}
	}
	return FormatTitles(enabled, base, separator, short)
}
