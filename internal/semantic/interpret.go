package semantic

import (
	"fmt"
	"strings"

	"github.com/arcanaland/oracle/internal/draw"
	"github.com/arcanaland/oracle/internal/render"
)

var elementLabels = map[string]string{
	"fire":   "Fire (Action/Passion)",
	"water":  "Water (Emotion/Intuition)",
	"air":    "Air (Intellect/Communication)",
	"earth":  "Earth (Material/Practical)",
	"spirit": "Spirit (Karmic/Divine)",
}

// RenderFullInterpretation assembles the legend, the grid, matched
// guidance, and the composition insights into one markdown document.
func RenderFullInterpretation(r *draw.Reading, includeKeywords bool) string {
	var parts []string

	if legend := render.Legend(r, includeKeywords); legend != "" {
		parts = append(parts, "## Cards by Position\n\n"+legend)
	}
	parts = append(parts, "## Spread\n\n```\n"+render.Grid(r)+"\n```")

	if guidance := MatchGuidance(r); len(guidance) > 0 {
		var b strings.Builder
		b.WriteString("## Interpretive Guidance\n")
		for _, text := range guidance {
			b.WriteString("\n- " + text)
		}
		parts = append(parts, b.String())
	}

	if insights := composeInsights(r); len(insights) > 0 {
		var b strings.Builder
		b.WriteString("## Reading Analysis\n")
		for _, line := range insights {
			b.WriteString("\n- " + line)
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

// composeInsights derives the built-in reading observations that apply
// regardless of spread.
func composeInsights(r *draw.Reading) []string {
	a := Analyze(r)
	var lines []string

	if a.MajorCount > a.MinorCount {
		lines = append(lines, "**Spiritual Focus**: More Major Arcana cards suggest spiritual/karmic themes")
	}
	if a.ReversedCount > a.CardCount/2 {
		lines = append(lines, "**Transformation Phase**: Many reversed cards indicate change and reflection")
	}

	var present []string
	for element, n := range a.Elements {
		if n > 0 {
			present = append(present, element)
		}
	}
	if len(present) == 1 {
		label, ok := elementLabels[present[0]]
		if !ok {
			label = present[0]
		}
		lines = append(lines, fmt.Sprintf("**Elemental Focus**: %s", label))
	}
	return lines
}
