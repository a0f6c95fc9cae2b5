package semantic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/oracle/internal/card"
	"github.com/arcanaland/oracle/internal/draw"
	"github.com/arcanaland/oracle/internal/spread"
)

// reading builds a Reading by hand so every card and orientation is
// controlled exactly.
func reading(s *spread.Spread, cards ...draw.DrawnCard) *draw.Reading {
	for i := range cards {
		cards[i].Position = i + 1
	}
	return &draw.Reading{Spread: s, Cards: cards}
}

func rowSpread(n int) *spread.Spread {
	row := make([]int, n)
	for i := range row {
		row[i] = i + 1
	}
	s, _ := spread.FromLayout("row", [][]int{row})
	return s
}

func major(rank card.Rank, name string) draw.DrawnCard {
	return draw.DrawnCard{Card: card.Card{Suit: card.MajorArcana, Rank: rank, Name: name}}
}

func minor(suit card.Suit, rank card.Rank) draw.DrawnCard {
	return draw.DrawnCard{Card: card.Card{Suit: suit, Rank: rank}}
}

func reversed(dc draw.DrawnCard) draw.DrawnCard {
	dc.Reversed = true
	return dc
}

func TestAnalyzeCounts(t *testing.T) {
	r := reading(rowSpread(6),
		major(0, "The Fool"),
		major(13, "Death"),
		minor(card.Wands, 3),
		minor(card.Cups, card.Queen),
		reversed(minor(card.Swords, card.King)),
		reversed(minor(card.Pentacles, 7)),
	)
	a := Analyze(r)

	assert.Equal(t, 6, a.CardCount)
	assert.Equal(t, 2, a.MajorCount)
	assert.Equal(t, 4, a.MinorCount)
	assert.Equal(t, 2, a.CourtCount)
	assert.Equal(t, 2, a.ReversedCount)
	assert.Equal(t, 1, a.SuitCounts[card.Wands])
	assert.Equal(t, 2, a.SuitCounts[card.MajorArcana])

	// Majors count as spirit; minors follow their suit element.
	assert.Equal(t, 2, a.Elements["spirit"])
	assert.Equal(t, 1, a.Elements["fire"])
	assert.Equal(t, 1, a.Elements["water"])
	assert.Equal(t, 1, a.Elements["air"])
	assert.Equal(t, 1, a.Elements["earth"])
}

func TestAnalyzeGroupCards(t *testing.T) {
	s := &spread.Spread{
		Name:           "grouped",
		Positions:      [][]int{{1, 2, 3}},
		SemanticGroups: map[string]string{"water": "Water"},
		Semantics:      [][]string{{"${water}", "", "${water}"}},
	}
	r := reading(s,
		minor(card.Cups, 2),
		minor(card.Wands, 5),
		major(18, "The Moon"),
	)
	a := Analyze(r)

	require.Len(t, a.GroupCards["water"], 2)
	assert.Equal(t, 1, a.GroupCards["water"][0].Position)
	assert.Equal(t, 3, a.GroupCards["water"][1].Position)
}

func guidanceSpread(n int, rules ...spread.Rule) *spread.Spread {
	s := rowSpread(n)
	s.SemanticGroups = map[string]string{"water": "Emotional Currents (Water)"}
	sem := make([]string, n)
	sem[0] = "${water}"
	s.Semantics = [][]string{sem}
	s.Guidance = rules
	return s
}

func TestMatchGuidanceThreshold(t *testing.T) {
	rule := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondMajorArcanaMin, Threshold: 5},
		Text:      "Cosmic forces at work.",
	}

	four := reading(guidanceSpread(5, rule),
		major(0, "a"), major(1, "b"), major(2, "c"), major(3, "d"),
		minor(card.Wands, 2),
	)
	assert.Empty(t, MatchGuidance(four))

	five := reading(guidanceSpread(5, rule),
		major(0, "a"), major(1, "b"), major(2, "c"), major(3, "d"), major(4, "e"),
	)
	assert.Equal(t, []string{"Cosmic forces at work."}, MatchGuidance(five))
}

func TestMatchGuidanceMonotonic(t *testing.T) {
	// Threshold-minimum rules never unmatch when cards are added.
	rule := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondMinorArcanaMin, Threshold: 2},
		Text:      "grounded",
	}
	base := []draw.DrawnCard{minor(card.Wands, 1), minor(card.Cups, 2)}
	assert.Len(t, MatchGuidance(reading(guidanceSpread(2, rule), base...)), 1)

	extended := append(base, major(0, "The Fool"), minor(card.Swords, 4))
	assert.Len(t, MatchGuidance(reading(guidanceSpread(4, rule), extended...)), 1)
}

func TestMatchGuidanceInGroup(t *testing.T) {
	anyCard := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondInGroup, Group: "water"},
		Text:      "water stirs",
	}
	namedCard := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondInGroup, Group: "water", Cards: []string{"The Moon"}},
		Text:      "moon in ${water}",
	}

	withMoon := reading(guidanceSpread(2, anyCard, namedCard),
		major(18, "The Moon"),
		minor(card.Wands, 2),
	)
	assert.Equal(t, []string{"water stirs", "moon in Emotional Currents (Water)"}, MatchGuidance(withMoon))

	withoutMoon := reading(guidanceSpread(2, anyCard, namedCard),
		minor(card.Cups, 3),
		major(18, "The Moon"), // position 2 is outside the group
	)
	assert.Equal(t, []string{"water stirs"}, MatchGuidance(withoutMoon))
}

func TestMatchGuidanceCardConditions(t *testing.T) {
	anywhere := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondAnywhere, Cards: []string{"XVI"}},
		Text:      "the tower appears",
	}
	notPresent := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondNotPresent, Cards: []string{"The Tower"}},
		Text:      "no sudden upheaval",
	}
	suit := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondSuitPresent, Suits: []string{"cups"}},
		Text:      "feelings surface",
	}

	withTower := reading(guidanceSpread(2, anywhere, notPresent, suit),
		major(16, "The Tower"),
		minor(card.Cups, 4),
	)
	// Card matching works by name or by notation code.
	assert.Equal(t, []string{"the tower appears", "feelings surface"}, MatchGuidance(withTower))

	calm := reading(guidanceSpread(2, anywhere, notPresent, suit),
		minor(card.Wands, 2),
		minor(card.Swords, 3),
	)
	assert.Equal(t, []string{"no sudden upheaval"}, MatchGuidance(calm))
}

func TestMatchGuidanceCardTypeAndElements(t *testing.T) {
	courts := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondCardTypeCount, CardType: "court", MinCount: 2},
		Text:      "many personalities",
	}
	bounded := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondCardTypeCount, CardType: "major", MinCount: 1, MaxCount: 1},
		Text:      "one karmic note",
	}
	fire := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondElementalBalance, Element: "fire", Threshold: 2},
		Text:      "fire dominates",
	}

	r := reading(guidanceSpread(4, courts, bounded, fire),
		minor(card.Wands, card.Queen),
		minor(card.Wands, card.King),
		major(10, "Wheel of Fortune"),
		minor(card.Cups, 2),
	)
	assert.Equal(t, []string{"many personalities", "one karmic note", "fire dominates"}, MatchGuidance(r))

	// A second major breaks the bounded rule.
	r2 := reading(guidanceSpread(4, bounded),
		major(10, "Wheel of Fortune"),
		major(11, "Justice"),
		minor(card.Wands, 2),
		minor(card.Wands, 3),
	)
	assert.Empty(t, MatchGuidance(r2))
}

func TestMatchGuidanceReversed(t *testing.T) {
	min2 := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondReversedMin, Threshold: 2},
		Text:      "blocked",
	}
	max1 := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondReversedMax, Threshold: 1},
		Text:      "flowing",
	}

	r := reading(guidanceSpread(3, min2, max1),
		reversed(minor(card.Wands, 1)),
		reversed(minor(card.Cups, 2)),
		minor(card.Swords, 3),
	)
	assert.Equal(t, []string{"blocked"}, MatchGuidance(r))

	upright := reading(guidanceSpread(3, min2, max1),
		minor(card.Wands, 1),
		minor(card.Cups, 2),
		minor(card.Swords, 3),
	)
	assert.Equal(t, []string{"flowing"}, MatchGuidance(upright))
}

func TestRenderFullInterpretation(t *testing.T) {
	rule := spread.Rule{
		Condition: spread.Condition{Kind: spread.CondMajorArcanaMin, Threshold: 2},
		Text:      "Cosmic forces at work.",
	}
	r := reading(guidanceSpread(3, rule),
		major(16, "The Tower"),
		major(17, "The Star"),
		major(18, "The Moon"),
	)
	doc := RenderFullInterpretation(r, false)

	assert.Contains(t, doc, "## Cards by Position")
	assert.Contains(t, doc, "## Spread")
	assert.Contains(t, doc, "## Interpretive Guidance")
	assert.Contains(t, doc, "- Cosmic forces at work.")
	assert.Contains(t, doc, "## Reading Analysis")
	assert.Contains(t, doc, "**Spiritual Focus**")

	// All majors means a single dominant element.
	assert.Contains(t, doc, "**Elemental Focus**: Spirit (Karmic/Divine)")

	// Sections are ordered legend, grid, guidance, analysis.
	legendAt := strings.Index(doc, "## Cards by Position")
	gridAt := strings.Index(doc, "## Spread")
	guidanceAt := strings.Index(doc, "## Interpretive Guidance")
	analysisAt := strings.Index(doc, "## Reading Analysis")
	assert.Less(t, legendAt, gridAt)
	assert.Less(t, gridAt, guidanceAt)
	assert.Less(t, guidanceAt, analysisAt)
}

func TestRenderFullInterpretationReversals(t *testing.T) {
	r := reading(rowSpread(3),
		reversed(minor(card.Wands, 1)),
		reversed(minor(card.Cups, 2)),
		minor(card.Swords, 3),
	)
	doc := RenderFullInterpretation(r, false)
	assert.Contains(t, doc, "**Transformation Phase**")
}
