// Package deck provides the ordered, duplicate-free card collection a
// reading draws from, including the built-in 78-card deck and decoding of
// custom deck files.
package deck

import (
	"fmt"
	"strings"

	"github.com/arcanaland/oracle/internal/card"
)

// Deck is an ordered collection of cards plus metadata. No two cards share
// the same (suit, rank) identity. Decks are read-only once constructed.
type Deck struct {
	Name        string
	Author      string
	Version     string
	Description string

	// Dir is the directory the deck file was loaded from, used to resolve
	// relative card image paths. Empty for the built-in deck.
	Dir string

	cards []card.Card
}

// New builds a deck from cards, rejecting duplicate (suit, rank) identities.
func New(name, author, version string, cards []card.Card) (*Deck, error) {
	seen := make(map[card.Suit]map[card.Rank]bool)
	for _, c := range cards {
		if seen[c.Suit] == nil {
			seen[c.Suit] = make(map[card.Rank]bool)
		}
		if seen[c.Suit][c.Rank] {
			return nil, fmt.Errorf("duplicate card %s rank %d in deck %q: %w",
				c.Suit, c.Rank, name, card.ErrInvalidValue)
		}
		seen[c.Suit][c.Rank] = true
	}
	return &Deck{Name: name, Author: author, Version: version, cards: cards}, nil
}

// Cards returns the deck's cards in order. The returned slice is a copy so
// callers cannot disturb the deck.
func (d *Deck) Cards() []card.Card {
	out := make([]card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Size returns the number of cards in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// ByCode looks up a card by its notation code, e.g. "XVII" or "CQ".
func (d *Deck) ByCode(code string) (card.Card, bool) {
	for _, c := range d.cards {
		if c.NotationCode() == code {
			return c, true
		}
	}
	return card.Card{}, false
}

// File is the on-disk JSON shape of a custom deck.
type File struct {
	Name        string       `json:"name"`
	Author      string       `json:"author"`
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Cards       []CardRecord `json:"cards"`
}

// CardRecord is one card entry in a deck file. Rank stays untyped here so
// both numeric ranks and named court ranks decode; card.ParseRank sorts out
// type errors.
type CardRecord struct {
	Suit            string `json:"suit"`
	Rank            any    `json:"rank"`
	Name            string `json:"name"`
	UprightMeaning  string `json:"upright_meaning"`
	ReversedMeaning string `json:"reversed_meaning"`
	ImagePath       string `json:"image_path"`
}

// FromFile validates a decoded deck file and builds a Deck from it.
func FromFile(f File) (*Deck, error) {
	if f.Name == "" {
		return nil, fmt.Errorf("deck file missing name: %w", card.ErrInvalidValue)
	}
	if len(f.Cards) == 0 {
		return nil, fmt.Errorf("deck %q has no cards: %w", f.Name, card.ErrInvalidValue)
	}

	cards := make([]card.Card, 0, len(f.Cards))
	for i, rec := range f.Cards {
		suit, err := card.ParseSuit(rec.Suit)
		if err != nil {
			return nil, fmt.Errorf("deck %q card %d: %w", f.Name, i, err)
		}
		rank, err := card.ParseRank(suit, rec.Rank)
		if err != nil {
			return nil, fmt.Errorf("deck %q card %d: %w", f.Name, i, err)
		}
		name := rec.Name
		if name == "" {
			name = defaultName(suit, rank)
		}
		cards = append(cards, card.Card{
			Suit:      suit,
			Rank:      rank,
			Name:      name,
			Upright:   rec.UprightMeaning,
			Reversed:  rec.ReversedMeaning,
			ImagePath: rec.ImagePath,
		})
	}

	d, err := New(f.Name, f.Author, f.Version, cards)
	if err != nil {
		return nil, err
	}
	d.Description = f.Description
	return d, nil
}

// defaultName produces the conventional name for a card lacking one.
func defaultName(suit card.Suit, rank card.Rank) string {
	if suit == card.MajorArcana {
		if name, ok := majorNames[int(rank)]; ok {
			return name
		}
		return fmt.Sprintf("Major Arcana %d", int(rank))
	}
	return fmt.Sprintf("%s of %s", rank.Title(), suit.Title())
}

// Lookup is one resolved card code: the card plus its reversal flag.
type Lookup struct {
	Card     card.Card
	Reversed bool
}

// ResolveCodes resolves comma-separated card codes against the deck.
// Bracket notation with the reversal arrow is accepted, as is the
// underscore form C_Q for CQ.
func (d *Deck) ResolveCodes(codes string) ([]Lookup, error) {
	var out []Lookup
	for _, raw := range strings.Split(codes, ",") {
		code := strings.TrimSpace(raw)
		if code == "" {
			continue
		}

		reversed := false
		if strings.HasPrefix(code, "[↓") && strings.HasSuffix(code, "]") {
			reversed = true
			code = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(code, "[↓"), "]"))
		} else if strings.HasPrefix(code, "[ ") && strings.HasSuffix(code, "]") {
			code = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(code, "[ "), "]"))
		}
		if len(code) == 3 && code[1] == '_' {
			code = code[:1] + code[2:]
		}

		c, ok := d.ByCode(code)
		if !ok {
			return nil, fmt.Errorf("unknown card code %q (expected major arcana like XVII or minor arcana like W3, CQ): %w",
				code, card.ErrInvalidValue)
		}
		out = append(out, Lookup{Card: c, Reversed: reversed})
	}
	return out, nil
}
