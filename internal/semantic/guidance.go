package semantic

import (
	"strings"

	"github.com/arcanaland/oracle/internal/card"
	"github.com/arcanaland/oracle/internal/draw"
	"github.com/arcanaland/oracle/internal/spread"
)

// MatchGuidance evaluates the spread's guidance rules in definition order
// and returns the text of every rule whose condition holds, with ${key}
// placeholders resolved. Adding cards to a reading never unmatches the
// threshold-minimum kinds.
func MatchGuidance(r *draw.Reading) []string {
	a := Analyze(r)
	var texts []string
	for _, rule := range r.Spread.Guidance {
		if conditionHolds(rule.Condition, r, a) {
			texts = append(texts, r.Spread.Resolve(rule.Text))
		}
	}
	return texts
}

func conditionHolds(c spread.Condition, r *draw.Reading, a Analysis) bool {
	switch c.Kind {
	case spread.CondInGroup:
		group := a.GroupCards[c.Group]
		if len(c.Cards) == 0 {
			return len(group) > 0
		}
		for _, dc := range group {
			if cardNamed(dc, c.Cards) {
				return true
			}
		}
		return false
	case spread.CondAnywhere:
		for _, dc := range r.Cards {
			if cardNamed(dc, c.Cards) {
				return true
			}
		}
		return false
	case spread.CondNotPresent:
		for _, dc := range r.Cards {
			if cardNamed(dc, c.Cards) {
				return false
			}
		}
		return true
	case spread.CondSuitPresent:
		for _, want := range c.Suits {
			if suit, err := card.ParseSuit(want); err == nil && a.SuitCounts[suit] > 0 {
				return true
			}
		}
		return false
	case spread.CondCardTypeCount:
		var n int
		switch c.CardType {
		case "major":
			n = a.MajorCount
		case "minor":
			n = a.MinorCount
		case "court":
			n = a.CourtCount
		}
		if n < c.MinCount {
			return false
		}
		return c.MaxCount == 0 || n <= c.MaxCount
	case spread.CondMajorArcanaMin:
		return a.MajorCount >= c.Threshold
	case spread.CondMajorArcanaMax:
		return a.MajorCount <= c.Threshold
	case spread.CondMinorArcanaMin:
		return a.MinorCount >= c.Threshold
	case spread.CondCourtCardsMin:
		return a.CourtCount >= c.Threshold
	case spread.CondReversedMin:
		return a.ReversedCount >= c.Threshold
	case spread.CondReversedMax:
		return a.ReversedCount <= c.Threshold
	case spread.CondElementalBalance:
		return a.Elements[c.Element] >= c.Threshold
	}
	return false
}

// cardNamed reports whether a drawn card matches any entry in names, by
// display name or by notation code, case-insensitively.
func cardNamed(dc draw.DrawnCard, names []string) bool {
	for _, name := range names {
		if strings.EqualFold(name, dc.Card.Name) || strings.EqualFold(name, dc.Card.NotationCode()) {
			return true
		}
	}
	return false
}
