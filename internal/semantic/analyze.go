// Package semantic derives interpretation signals from a reading: card
// distribution analysis, guidance rule matching, and the full markdown
// interpretation document.
package semantic

import (
	"github.com/arcanaland/oracle/internal/card"
	"github.com/arcanaland/oracle/internal/draw"
)

// Analysis summarizes the composition of a reading.
type Analysis struct {
	CardCount     int
	SuitCounts    map[card.Suit]int
	Elements      map[string]int
	MajorCount    int
	MinorCount    int
	CourtCount    int
	ReversedCount int

	// GroupCards maps each semantic group key to the drawn cards at its
	// positions, in ascending position order.
	GroupCards map[string][]draw.DrawnCard
}

// Analyze tallies every drawn card. Major arcana count toward the spirit
// element; minors toward their suit's element.
func Analyze(r *draw.Reading) Analysis {
	a := Analysis{
		CardCount:  len(r.Cards),
		SuitCounts: make(map[card.Suit]int),
		Elements:   make(map[string]int),
		GroupCards: make(map[string][]draw.DrawnCard),
	}
	for _, dc := range r.Cards {
		a.SuitCounts[dc.Card.Suit]++
		a.Elements[dc.Card.Suit.Element()]++
		if dc.Card.IsMajor() {
			a.MajorCount++
		} else {
			a.MinorCount++
			if dc.Card.IsCourt() {
				a.CourtCount++
			}
		}
		if dc.Reversed {
			a.ReversedCount++
		}
	}
	for key, positions := range r.Spread.GroupPositions() {
		for _, pos := range positions {
			if dc, ok := r.CardAt(pos); ok {
				a.GroupCards[key] = append(a.GroupCards[key], dc)
			}
		}
	}
	return a
}
