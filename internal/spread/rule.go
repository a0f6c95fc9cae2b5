package spread

// ConditionKind is the closed set of guidance condition types.
type ConditionKind string

const (
	// CondInGroup matches when at least one drawn card occupies a position
	// in the named semantic group (optionally restricted to named cards).
	CondInGroup ConditionKind = "in_group"
	// CondAnywhere matches when any of the named cards appears in the draw,
	// regardless of position.
	CondAnywhere ConditionKind = "anywhere"
	// CondSuitPresent matches when any of the named suits appears among the
	// drawn minor arcana.
	CondSuitPresent ConditionKind = "suit_present"
	// CondNotPresent matches when none of the named cards appears.
	CondNotPresent ConditionKind = "not_present"
	// CondCardTypeCount matches when the count of major, minor, or court
	// cards falls within [min_count, max_count].
	CondCardTypeCount ConditionKind = "card_type_count"

	CondMajorArcanaMin ConditionKind = "major_arcana_min"
	CondMajorArcanaMax ConditionKind = "major_arcana_max"
	CondMinorArcanaMin ConditionKind = "minor_arcana_min"
	CondCourtCardsMin  ConditionKind = "court_cards_min"
	CondReversedMin    ConditionKind = "reversed_min"
	CondReversedMax    ConditionKind = "reversed_max"

	// CondElementalBalance matches when the named element's tally reaches
	// the threshold.
	CondElementalBalance ConditionKind = "elemental_balance"
)

// Condition is a tagged variant; Kind selects which fields are meaningful.
type Condition struct {
	Kind ConditionKind

	Group string   // in_group
	Cards []string // in_group (optional), anywhere, not_present
	Suits []string // suit_present

	CardType string // card_type_count: "major", "minor", or "court"
	MinCount int    // card_type_count
	MaxCount int    // card_type_count; 0 means unbounded

	Threshold int    // the *_min/*_max kinds and elemental_balance
	Element   string // elemental_balance
}

// Rule pairs a condition with the markdown text emitted when it matches.
// Text may contain ${key} placeholders.
type Rule struct {
	Condition Condition
	Text      string
}
