package spread

import "sort"

// elementDefinitions label the five elemental currents used by the
// hexagram-style spread and resolvable anywhere via ${...} placeholders.
var elementDefinitions = map[string]string{
	"water":  "Emotional Basis/Subconscious Influences (Water)",
	"fire":   "Karmic Forces/Cosmic Influences (Fire)",
	"air":    "Psychic Basis/Mutable Influences (Air)",
	"earth":  "Material/Foundation/Practical Influences (Earth)",
	"spirit": "Nature of Circumstances/Divine Will (Spirit)",
}

var builtins = map[string]*Spread{
	"single": {
		Name:        "single",
		Description: "A single card for focused contemplation.",
		Positions:   [][]int{{1}},
		Semantics:   [][]string{{"Contemplation on Question/Potential Answer/Guidance"}},
	},
	"3-card": {
		Name:        "3-card",
		Description: "Past, present, and future in one line.",
		Positions:   [][]int{{2, 1, 3}},
		Semantics: [][]string{{
			"Past/Querent/Situation/Idea",
			"Present/Path/Action/Process",
			"Future/Potential/Outcome/Aspiration",
		}},
	},
	"cross": {
		Name:        "cross",
		Description: "A five card cross around the present moment.",
		Positions: [][]int{
			{0, 5, 0},
			{2, 1, 3},
			{0, 4, 0},
		},
		Semantics: [][]string{
			{"", "Potential", ""},
			{"Past", "Present", "Future"},
			{"", "Core Reason", ""},
		},
	},
	"celtic": {
		Name:        "celtic",
		Description: "The ten card Celtic Cross.",
		Positions: [][]int{
			{0, 5, 0, 0, 7},
			{4, 1, 6, 0, 8},
			{0, 2, 0, 0, 9},
			{0, 3, 0, 0, 10},
		},
		Semantics: [][]string{
			{"", "Goal/Potential/Best Outcome", "", "", "Previous Experiences/Attitudes"},
			{"Recent Past", "Present/Theme/Querent's Role", "Near Future", "", "External Influences (Environment/Social)"},
			{"", "Primary Obstacle/Challenge", "", "", "Hopes/Fears"},
			{"", "Psychic/Subconscious Foundations of the Issue", "", "", "Probable/Natural Outcome"},
		},
	},
	"crowley": {
		Name:        "crowley",
		Description: "The fifteen card hexagram attributed to Crowley, with four elemental triads around a spirit axis.",
		Positions: [][]int{
			{13, 9, 5, 0, 4, 8, 12},
			{0, 0, 2, 1, 3, 0, 0},
			{14, 10, 6, 0, 7, 11, 15},
		},
		SemanticGroups: elementDefinitions,
		Semantics: [][]string{
			{"${water}", "${water}", "${water}", "", "${earth}", "${earth}", "${earth}"},
			{"", "", "${spirit}", "Querent/Present (Spirit)", "${spirit}", "", ""},
			{"${air}", "${air}", "${air}", "", "${fire}", "${fire}", "${fire}"},
		},
		Guidance: []Rule{
			{
				Condition: Condition{Kind: CondMajorArcanaMin, Threshold: 5},
				Text:      "Cosmic forces are strongly at work. The ${fire} triad deserves particular attention as the channel of karmic momentum.",
			},
			{
				Condition: Condition{Kind: CondInGroup, Group: "water", Cards: []string{"The Moon"}},
				Text:      "The Moon within ${water} points to subconscious currents the querent has not yet surfaced.",
			},
			{
				Condition: Condition{Kind: CondReversedMin, Threshold: 6},
				Text:      "With this many reversals the spread reads as blocked energy. Weigh the ${spirit} axis before the elemental triads.",
			},
			{
				Condition: Condition{Kind: CondElementalBalance, Element: "earth", Threshold: 5},
				Text:      "Earth dominates. Practical and material matters in ${earth} outweigh the question as asked.",
			},
		},
	},
}

// Builtin returns the named built-in spread, if one exists.
func Builtin(name string) (*Spread, bool) {
	s, ok := builtins[name]
	return s, ok
}

// BuiltinNames lists the built-in spreads in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
