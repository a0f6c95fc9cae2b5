// Package spread models the spatial layout of a reading: a position matrix,
// an aligned semantic matrix, semantic groups, and ordered guidance rules.
// Definitions are validated once when loaded and never change afterwards.
package spread

import (
	"regexp"
	"sort"
)

// Spread is a validated, immutable spread definition.
type Spread struct {
	Name        string
	Description string

	// Positions is a rectangular grid. 0 is an empty cell; positive values
	// are unique position indices in reading order.
	Positions [][]int

	// SemanticGroups maps short keys to human-readable descriptions,
	// e.g. "fire" -> "Karmic Forces/Cosmic Influences (Fire)".
	SemanticGroups map[string]string

	// Semantics has the same shape as Positions; each cell is empty text,
	// literal text, or text with ${key} placeholders.
	Semantics [][]string

	// Guidance holds the ordered interpretation rules.
	Guidance []Rule
}

// PositionCount returns the number of distinct positive position indices.
func (s *Spread) PositionCount() int {
	n := 0
	for _, row := range s.Positions {
		for _, pos := range row {
			if pos > 0 {
				n++
			}
		}
	}
	return n
}

// Cell returns the (row, col) coordinates of a position index.
func (s *Spread) Cell(pos int) (row, col int, ok bool) {
	for r, cells := range s.Positions {
		for c, p := range cells {
			if p == pos {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// SemanticAt returns the raw semantics cell text for a position index.
func (s *Spread) SemanticAt(pos int) string {
	row, col, ok := s.Cell(pos)
	if !ok || row >= len(s.Semantics) || col >= len(s.Semantics[row]) {
		return ""
	}
	return s.Semantics[row][col]
}

// GroupPositions maps each semantic group key to the position indices whose
// semantics cell references it via a ${key} placeholder. Position lists are
// in ascending order.
func (s *Spread) GroupPositions() map[string][]int {
	groups := make(map[string][]int)
	for r, row := range s.Semantics {
		for c, cell := range row {
			if cell == "" || r >= len(s.Positions) || c >= len(s.Positions[r]) {
				continue
			}
			pos := s.Positions[r][c]
			if pos <= 0 {
				continue
			}
			for _, key := range Placeholders(cell) {
				groups[key] = append(groups[key], pos)
			}
		}
	}
	for key := range groups {
		sort.Ints(groups[key])
	}
	return groups
}

// Resolve substitutes the spread's semantic group descriptions into text.
func (s *Spread) Resolve(text string) string {
	return Resolve(text, s.SemanticGroups)
}

var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Placeholders returns the ${key} keys referenced by a string, in order of
// appearance. Repeated keys appear once.
func Placeholders(text string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}

// Resolve substitutes every ${key} placeholder in text with its description
// from groups. Text without placeholders passes through unchanged, so
// resolution is idempotent. Unknown keys are left intact; validation
// guarantees they cannot occur in a loaded spread.
func Resolve(text string, groups map[string]string) string {
	if groups == nil {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(m string) string {
		key := m[2 : len(m)-1]
		if desc, ok := groups[key]; ok {
			return desc
		}
		return m
	})
}
