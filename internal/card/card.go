// Package card defines the immutable tarot card value objects shared by the
// rest of the oracle: suits, ranks, notation codes, and the two error kinds
// every validation in the system reduces to.
package card

import (
	"errors"
	"fmt"
)

// The only two error kinds in the system. Everything structural wraps one of
// these; callers distinguish them with errors.Is.
var (
	// ErrInvalidValue marks wrong or inconsistent data of a valid type:
	// duplicated position indices, unknown placeholder keys, short decks.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidType marks data of the wrong type entirely, such as a
	// non-integer position index or a non-string semantics cell.
	ErrInvalidType = errors.New("invalid type")
)

// Suit identifies one of the four minor arcana suits or the major arcana.
type Suit string

const (
	MajorArcana Suit = "major-arcana"
	Wands       Suit = "wands"
	Cups        Suit = "cups"
	Swords      Suit = "swords"
	Pentacles   Suit = "pentacles"
)

// Suits lists every suit in deck order: majors first, then the minors.
var Suits = []Suit{MajorArcana, Wands, Cups, Swords, Pentacles}

// ParseSuit converts an on-disk suit string into a Suit.
func ParseSuit(s string) (Suit, error) {
	switch Suit(s) {
	case MajorArcana, Wands, Cups, Swords, Pentacles:
		return Suit(s), nil
	}
	return "", fmt.Errorf("unknown suit %q: %w", s, ErrInvalidValue)
}

// Element returns the elemental correspondence for a suit. Major arcana
// cards count as spirit.
func (s Suit) Element() string {
	switch s {
	case Wands:
		return "fire"
	case Cups:
		return "water"
	case Swords:
		return "air"
	case Pentacles:
		return "earth"
	default:
		return "spirit"
	}
}

// Letter returns the single-letter suit code used in card notation.
func (s Suit) Letter() string {
	switch s {
	case Wands:
		return "W"
	case Cups:
		return "C"
	case Swords:
		return "S"
	case Pentacles:
		return "P"
	default:
		return ""
	}
}

// Title returns the display name for a suit ("Wands", "Major Arcana", ...).
func (s Suit) Title() string {
	switch s {
	case Wands:
		return "Wands"
	case Cups:
		return "Cups"
	case Swords:
		return "Swords"
	case Pentacles:
		return "Pentacles"
	default:
		return "Major Arcana"
	}
}

// Rank is a card's value within its suit. Major arcana use 0 through 21;
// minor arcana use 1 (ace) through 10 plus the four court ranks.
type Rank int

const (
	Ace    Rank = 1
	Page   Rank = 11
	Knight Rank = 12
	Queen  Rank = 13
	King   Rank = 14
)

var namedRanks = map[string]Rank{
	"ace":    Ace,
	"page":   Page,
	"knight": Knight,
	"queen":  Queen,
	"king":   King,
}

// ParseRank converts an on-disk rank (a JSON number or a named rank like
// "queen") into a Rank for the given suit. A non-number, non-string rank or
// a fractional number is an invalid-type error; an out-of-range rank is an
// invalid-value error.
func ParseRank(suit Suit, raw any) (Rank, error) {
	var r Rank
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("rank %v is not an integer: %w", v, ErrInvalidType)
		}
		r = Rank(v)
	case int:
		r = Rank(v)
	case string:
		named, ok := namedRanks[v]
		if !ok {
			return 0, fmt.Errorf("unknown rank name %q: %w", v, ErrInvalidValue)
		}
		r = named
	default:
		return 0, fmt.Errorf("rank must be an integer or rank name, got %T: %w", raw, ErrInvalidType)
	}

	if suit == MajorArcana {
		if r < 0 || r > 21 {
			return 0, fmt.Errorf("major arcana rank %d out of range 0-21: %w", r, ErrInvalidValue)
		}
	} else if r < Ace || r > King {
		return 0, fmt.Errorf("minor arcana rank %d out of range 1-14: %w", r, ErrInvalidValue)
	}
	return r, nil
}

var rankTitles = []string{
	"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Page", "Knight", "Queen", "King",
}

// Title returns the display name of a minor arcana rank ("Ace", "Queen").
func (r Rank) Title() string {
	if r < Ace || r > King {
		return ""
	}
	return rankTitles[r]
}

// valueCode returns the notation letter for a minor arcana rank.
func (r Rank) valueCode() string {
	switch r {
	case Ace:
		return "A"
	case Page:
		return "P"
	case Knight:
		return "N"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card is a single tarot card. Cards are immutable; identity is (Suit, Rank).
type Card struct {
	Suit      Suit
	Rank      Rank
	Name      string
	Upright   string // upright meaning keywords
	Reversed  string // reversed meaning keywords, may be empty
	ImagePath string // optional card face image, relative to the deck file
}

// IsMajor reports whether the card belongs to the major arcana.
func (c Card) IsMajor() bool {
	return c.Suit == MajorArcana
}

// IsCourt reports whether the card is a court card (page through king).
func (c Card) IsCourt() bool {
	return !c.IsMajor() && c.Rank >= Page
}

// NotationCode returns the raw code for a card: the roman numeral for major
// arcana (0 for the Fool), or the suit letter plus value code for minors,
// e.g. "XVII", "W3", "CQ".
func (c Card) NotationCode() string {
	if c.IsMajor() {
		if c.Rank == 0 {
			return "0"
		}
		return RomanNumeral(int(c.Rank))
	}
	return c.Suit.Letter() + c.Rank.valueCode()
}

// Notation formats a card code in fixed seven-character bracket notation.
// Upright cards render as "[ XVI ]", reversed cards as "[↓XVI ]".
func Notation(code string, reversed bool) string {
	if reversed {
		return fmt.Sprintf("[↓%-4s]", code)
	}
	return fmt.Sprintf("[ %-4s]", code)
}

// Meaning returns the keyword text appropriate for the orientation. Reversed
// cards fall back to the upright text when no reversed meaning exists.
func (c Card) Meaning(reversed bool) string {
	if reversed && c.Reversed != "" {
		return c.Reversed
	}
	return c.Upright
}
