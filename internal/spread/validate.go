package spread

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/arcanaland/oracle/internal/card"
)

// rawDefinition mirrors the on-disk JSON shape of a spread before
// validation.
type rawDefinition struct {
	Name           string            `mapstructure:"name"`
	Description    string            `mapstructure:"description"`
	Positions      [][]int           `mapstructure:"positions"`
	SemanticGroups map[string]string `mapstructure:"semantic_groups"`
	Semantics      [][]string        `mapstructure:"semantics"`
	Guidance       []rawRule         `mapstructure:"guidance"`
}

type rawRule struct {
	Condition string   `mapstructure:"condition"`
	Text      string   `mapstructure:"text"`
	Group     string   `mapstructure:"group"`
	Cards     []string `mapstructure:"cards"`
	Suits     []string `mapstructure:"suits"`
	CardType  string   `mapstructure:"card_type"`
	MinCount  int      `mapstructure:"min_count"`
	MaxCount  int      `mapstructure:"max_count"`
	Threshold int      `mapstructure:"threshold"`
	Element   string   `mapstructure:"element"`
}

// integralNumberHook converts JSON numbers to ints only when they carry no
// fractional part, so 1.5 in a position matrix fails as a type error
// instead of silently truncating.
func integralNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 || to.Kind() != reflect.Int {
		return data, nil
	}
	f := data.(float64)
	if f != float64(int(f)) {
		return nil, fmt.Errorf("%v is not an integer", f)
	}
	return int(f), nil
}

// Validate checks an already-parsed raw spread definition and returns the
// immutable Spread. Validation is all-or-nothing: the first violated
// invariant aborts with an error naming the offending field.
func Validate(raw map[string]any) (*Spread, error) {
	var def rawDefinition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: integralNumberHook,
		Result:     &def,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("spread definition: %v: %w", err, card.ErrInvalidType)
	}

	if def.Name == "" {
		return nil, fmt.Errorf("spread definition missing name: %w", card.ErrInvalidValue)
	}

	s := &Spread{
		Name:           def.Name,
		Description:    def.Description,
		Positions:      def.Positions,
		SemanticGroups: def.SemanticGroups,
		Semantics:      def.Semantics,
	}

	if err := validateIndices(s.Name, s.Positions); err != nil {
		return nil, err
	}

	// A missing semantics matrix means no positional hints; give it the
	// positions' shape so downstream lookups stay aligned.
	if s.Semantics == nil {
		s.Semantics = make([][]string, len(s.Positions))
		for i, row := range s.Positions {
			s.Semantics[i] = make([]string, len(row))
		}
	}
	if err := validateShape(s.Name, s.Positions, s.Semantics); err != nil {
		return nil, err
	}

	for r, row := range s.Semantics {
		for c, cell := range row {
			for _, key := range Placeholders(cell) {
				if _, ok := s.SemanticGroups[key]; !ok {
					return nil, fmt.Errorf("spread %q semantics[%d][%d]: unknown placeholder key %q: %w",
						s.Name, r, c, key, card.ErrInvalidValue)
				}
			}
		}
	}

	for i, rr := range def.Guidance {
		rule, err := validateRule(s, i, rr)
		if err != nil {
			return nil, err
		}
		s.Guidance = append(s.Guidance, rule)
	}

	return s, nil
}

// FromLayout builds a spread from a bare position matrix, used for custom
// matrix input on the command line.
func FromLayout(name string, layout [][]int) (*Spread, error) {
	if err := validateIndices(name, layout); err != nil {
		return nil, err
	}
	semantics := make([][]string, len(layout))
	for i, row := range layout {
		semantics[i] = make([]string, len(row))
	}
	return &Spread{Name: name, Positions: layout, Semantics: semantics}, nil
}

func validateShape(name string, positions [][]int, semantics [][]string) error {
	if len(positions) != len(semantics) {
		return fmt.Errorf("spread %q: positions has %d rows but semantics has %d: %w",
			name, len(positions), len(semantics), card.ErrInvalidValue)
	}
	for i := range positions {
		if len(positions[i]) != len(semantics[i]) {
			return fmt.Errorf("spread %q row %d: positions has %d columns but semantics has %d: %w",
				name, i, len(positions[i]), len(semantics[i]), card.ErrInvalidValue)
		}
	}
	return nil
}

// validateIndices checks that positive position indices are unique and form
// the contiguous range 1..N.
func validateIndices(name string, positions [][]int) error {
	seen := make(map[int]bool)
	for r, row := range positions {
		for c, pos := range row {
			if pos < 0 {
				return fmt.Errorf("spread %q positions[%d][%d]: negative index %d: %w",
					name, r, c, pos, card.ErrInvalidValue)
			}
			if pos == 0 {
				continue
			}
			if seen[pos] {
				return fmt.Errorf("spread %q positions[%d][%d]: duplicate index %d: %w",
					name, r, c, pos, card.ErrInvalidValue)
			}
			seen[pos] = true
		}
	}
	for pos := 1; pos <= len(seen); pos++ {
		if !seen[pos] {
			return fmt.Errorf("spread %q: position indices are not contiguous, missing %d of 1-%d: %w",
				name, pos, len(seen), card.ErrInvalidValue)
		}
	}
	return nil
}

var conditionKinds = map[ConditionKind]bool{
	CondInGroup: true, CondAnywhere: true, CondSuitPresent: true,
	CondNotPresent: true, CondCardTypeCount: true,
	CondMajorArcanaMin: true, CondMajorArcanaMax: true,
	CondMinorArcanaMin: true, CondCourtCardsMin: true,
	CondReversedMin: true, CondReversedMax: true,
	CondElementalBalance: true,
}

var elements = map[string]bool{
	"fire": true, "water": true, "air": true, "earth": true, "spirit": true,
}

func validateRule(s *Spread, i int, rr rawRule) (Rule, error) {
	kind := ConditionKind(rr.Condition)
	if !conditionKinds[kind] {
		return Rule{}, fmt.Errorf("spread %q guidance[%d]: unrecognized condition %q: %w",
			s.Name, i, rr.Condition, card.ErrInvalidValue)
	}
	if rr.Text == "" {
		return Rule{}, fmt.Errorf("spread %q guidance[%d]: missing text: %w",
			s.Name, i, card.ErrInvalidValue)
	}

	switch kind {
	case CondInGroup:
		if rr.Group == "" {
			return Rule{}, fmt.Errorf("spread %q guidance[%d]: in_group requires a group: %w",
				s.Name, i, card.ErrInvalidValue)
		}
		if _, ok := s.SemanticGroups[rr.Group]; !ok {
			return Rule{}, fmt.Errorf("spread %q guidance[%d]: unknown semantic group %q: %w",
				s.Name, i, rr.Group, card.ErrInvalidValue)
		}
	case CondAnywhere, CondNotPresent:
		if len(rr.Cards) == 0 {
			return Rule{}, fmt.Errorf("spread %q guidance[%d]: %s requires cards: %w",
				s.Name, i, kind, card.ErrInvalidValue)
		}
	case CondSuitPresent:
		if len(rr.Suits) == 0 {
			return Rule{}, fmt.Errorf("spread %q guidance[%d]: suit_present requires suits: %w",
				s.Name, i, card.ErrInvalidValue)
		}
		for _, suit := range rr.Suits {
			parsed, err := card.ParseSuit(suit)
			if err != nil || parsed == card.MajorArcana {
				return Rule{}, fmt.Errorf("spread %q guidance[%d]: %q is not a minor arcana suit: %w",
					s.Name, i, suit, card.ErrInvalidValue)
			}
		}
	case CondCardTypeCount:
		switch rr.CardType {
		case "major", "minor", "court":
		default:
			return Rule{}, fmt.Errorf("spread %q guidance[%d]: card_type must be major, minor, or court, got %q: %w",
				s.Name, i, rr.CardType, card.ErrInvalidValue)
		}
		if rr.MinCount < 0 || rr.MaxCount < 0 || (rr.MaxCount > 0 && rr.MinCount > rr.MaxCount) {
			return Rule{}, fmt.Errorf("spread %q guidance[%d]: bad card_type_count range %d-%d: %w",
				s.Name, i, rr.MinCount, rr.MaxCount, card.ErrInvalidValue)
		}
	case CondElementalBalance:
		if !elements[rr.Element] {
			return Rule{}, fmt.Errorf("spread %q guidance[%d]: unknown element %q (valid: %s): %w",
				s.Name, i, rr.Element, strings.Join(elementNames(), ", "), card.ErrInvalidValue)
		}
		if rr.Threshold < 1 {
			return Rule{}, fmt.Errorf("spread %q guidance[%d]: elemental_balance requires a threshold: %w",
				s.Name, i, card.ErrInvalidValue)
		}
	default:
		// The remaining kinds are simple threshold comparisons.
		if rr.Threshold < 1 {
			return Rule{}, fmt.Errorf("spread %q guidance[%d]: %s requires a threshold: %w",
				s.Name, i, kind, card.ErrInvalidValue)
		}
	}

	for _, key := range Placeholders(rr.Text) {
		if _, ok := s.SemanticGroups[key]; !ok {
			return Rule{}, fmt.Errorf("spread %q guidance[%d]: unknown placeholder key %q: %w",
				s.Name, i, key, card.ErrInvalidValue)
		}
	}

	return Rule{
		Condition: Condition{
			Kind:      kind,
			Group:     rr.Group,
			Cards:     rr.Cards,
			Suits:     rr.Suits,
			CardType:  rr.CardType,
			MinCount:  rr.MinCount,
			MaxCount:  rr.MaxCount,
			Threshold: rr.Threshold,
			Element:   rr.Element,
		},
		Text: rr.Text,
	}, nil
}

func elementNames() []string {
	names := make([]string, 0, len(elements))
	for e := range elements {
		names = append(names, e)
	}
	sort.Strings(names)
	return names
}
