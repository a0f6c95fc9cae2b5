// Package render formats a reading for terminal and JSON output: the
// spatial card grid and the position legend grouped by semantic meaning.
package render

import (
	"strings"

	"github.com/arcanaland/oracle/internal/card"
	"github.com/arcanaland/oracle/internal/draw"
)

const generalGroup = "General Information"

// Grid renders the spread as bracket notation laid out in the spread's
// matrix shape. Multi-row spreads use seven-space blanks, three spaces
// between cells, and a blank line between rows; single-row spreads use
// eight-space blanks and single-space joins.
func Grid(r *draw.Reading) string {
	layout := r.Spread.Positions
	if len(layout) > 1 {
		rows := make([]string, 0, len(layout))
		for _, row := range layout {
			cells := make([]string, 0, len(row))
			for _, pos := range row {
				cells = append(cells, cellNotation(r, pos, strings.Repeat(" ", 7)))
			}
			rows = append(rows, strings.Join(cells, "   "))
		}
		return strings.Join(rows, "\n\n")
	}

	var row []int
	if len(layout) == 1 {
		row = layout[0]
	}
	cells := make([]string, 0, len(row))
	for _, pos := range row {
		cells = append(cells, cellNotation(r, pos, strings.Repeat(" ", 8)))
	}
	return strings.Join(cells, " ")
}

// GridMatrix renders the spread as a matrix of notation strings for
// structured output. Empty cells are four spaces.
func GridMatrix(r *draw.Reading) [][]string {
	rows := make([][]string, 0, len(r.Spread.Positions))
	for _, row := range r.Spread.Positions {
		cells := make([]string, 0, len(row))
		for _, pos := range row {
			cells = append(cells, cellNotation(r, pos, "    "))
		}
		rows = append(rows, cells)
	}
	return rows
}

func cellNotation(r *draw.Reading, pos int, blank string) string {
	if pos <= 0 {
		return blank
	}
	dc, ok := r.CardAt(pos)
	if !ok {
		return blank
	}
	return dc.Notation()
}

// Legend renders the drawn cards grouped under their resolved semantic
// headings. Groups appear in the order their first position is reached
// scanning the grid row by row; cards at positions with no semantics
// collect under "General Information", always last.
func Legend(r *draw.Reading, includeKeywords bool) string {
	headings, groups := groupBySemantic(r)
	if len(r.Cards) == 0 {
		return ""
	}

	var lines []string
	for i, heading := range headings {
		if i == 0 {
			lines = append(lines, heading+":")
		} else {
			lines = append(lines, "\n"+heading+":")
		}
		for _, dc := range groups[heading] {
			lines = append(lines, cardLine(dc, includeKeywords))
		}
	}
	return strings.Join(lines, "\n")
}

// LegendEntry is one card in the structured legend.
type LegendEntry struct {
	Notation string `json:"notation"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Keywords string `json:"keywords,omitempty"`
}

// LegendEntries returns the legend as structured data in drawing order.
func LegendEntries(r *draw.Reading, includeKeywords bool) []LegendEntry {
	entries := make([]LegendEntry, 0, len(r.Cards))
	for _, dc := range r.Cards {
		e := LegendEntry{
			Notation: dc.Notation(),
			Name:     dc.Card.Name,
			Type:     typeName(dc.Card),
		}
		if includeKeywords {
			e.Keywords = dc.Meaning()
		}
		entries = append(entries, e)
	}
	return entries
}

// Document is the structured form of a complete reading.
type Document struct {
	Question string        `json:"question,omitempty"`
	Spread   string        `json:"spread_name"`
	Seed     uint64        `json:"seed"`
	Grid     [][]string    `json:"spread"`
	Legend   []LegendEntry `json:"legend"`
}

// NewDocument builds the structured reading for JSON output.
func NewDocument(r *draw.Reading) Document {
	return Document{
		Question: r.Question,
		Spread:   r.Spread.Name,
		Seed:     r.Seed,
		Grid:     GridMatrix(r),
		Legend:   LegendEntries(r, true),
	}
}

// groupBySemantic partitions cards by the resolved semantics of their
// positions. Headings come back in grid scan order with the general
// group forced last.
func groupBySemantic(r *draw.Reading) ([]string, map[string][]draw.DrawnCard) {
	groups := make(map[string][]draw.DrawnCard)
	var headings []string
	sawGeneral := false

	for _, row := range r.Spread.Positions {
		for _, pos := range row {
			if pos <= 0 {
				continue
			}
			dc, ok := r.CardAt(pos)
			if !ok {
				continue
			}
			heading := r.Spread.Resolve(r.Spread.SemanticAt(pos))
			if heading == "" {
				heading = generalGroup
			}
			if _, seen := groups[heading]; !seen {
				if heading == generalGroup {
					sawGeneral = true
				} else {
					headings = append(headings, heading)
				}
			}
			groups[heading] = append(groups[heading], dc)
		}
	}
	if sawGeneral {
		headings = append(headings, generalGroup)
	}
	return headings, groups
}

func cardLine(dc draw.DrawnCard, includeKeywords bool) string {
	line := "  " + dc.Notation() + " - " + dc.Card.Name + " (" + typeName(dc.Card) + ")"
	if includeKeywords {
		line += ": " + dc.Meaning()
	}
	return line
}

func typeName(c card.Card) string {
	if c.IsMajor() {
		return "Major Arcana"
	}
	return c.Suit.Title()
}
