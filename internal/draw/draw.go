// Package draw performs the deterministic card draw: a seeded shuffle of a
// deck, one card per spread position, with optional per-card reversals.
package draw

import (
	"fmt"

	"github.com/arcanaland/oracle/internal/card"
	"github.com/arcanaland/oracle/internal/deck"
	"github.com/arcanaland/oracle/internal/spread"
)

// Options adjust a draw.
type Options struct {
	Question      string
	AllowReversed bool
}

// DrawnCard is a card placed at a spread position.
type DrawnCard struct {
	Card     card.Card
	Reversed bool
	Position int
}

// Notation returns the bracketed display code, e.g. "[ XVI ]" or "[↓CQ  ]".
func (d DrawnCard) Notation() string {
	return card.Notation(d.Card.NotationCode(), d.Reversed)
}

// Meaning returns the upright or reversed meaning per orientation.
func (d DrawnCard) Meaning() string {
	return d.Card.Meaning(d.Reversed)
}

// Reading is the outcome of one draw. Cards are ordered by ascending
// position index.
type Reading struct {
	Spread   *spread.Spread
	Cards    []DrawnCard
	Question string
	Seed     uint64
}

// CardAt returns the drawn card at a position index.
func (r *Reading) CardAt(pos int) (DrawnCard, bool) {
	for _, dc := range r.Cards {
		if dc.Position == pos {
			return dc, true
		}
	}
	return DrawnCard{}, false
}

// Draw shuffles the deck with the seed and deals one card per spread
// position. Reversal, when enabled, is decided by one extra generator step
// per dealt card, so the cards dealt for a given seed do not depend on the
// reversal setting.
func Draw(d *deck.Deck, s *spread.Spread, seed uint64, opts Options) (*Reading, error) {
	n := s.PositionCount()
	if n == 0 {
		return nil, fmt.Errorf("spread %q has no positions: %w", s.Name, card.ErrInvalidValue)
	}
	if d.Size() < n {
		return nil, fmt.Errorf("deck %q has %d cards but spread %q needs %d: %w",
			d.Name, d.Size(), s.Name, n, card.ErrInvalidValue)
	}

	cards := d.Cards()
	rng := NewRNG(seed)
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	reading := &Reading{
		Spread:   s,
		Cards:    make([]DrawnCard, 0, n),
		Question: opts.Question,
		Seed:     seed,
	}
	for pos := 1; pos <= n; pos++ {
		dc := DrawnCard{Card: cards[pos-1], Position: pos}
		if opts.AllowReversed {
			dc.Reversed = rng.Next(2) == 1
		}
		reading.Cards = append(reading.Cards, dc)
	}
	return reading, nil
}
