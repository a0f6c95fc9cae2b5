package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/oracle/internal/config"
	"github.com/arcanaland/oracle/internal/deck"
	"github.com/arcanaland/oracle/internal/draw"
	"github.com/arcanaland/oracle/internal/loader"
	"github.com/arcanaland/oracle/internal/oracle"
	"github.com/arcanaland/oracle/internal/render"
	"github.com/arcanaland/oracle/internal/semantic"
	"github.com/arcanaland/oracle/internal/spread"
)

var readingCmd = &cobra.Command{
	Use:   "reading [question]",
	Short: "Perform a tarot reading for a question",
	Long: `Reading draws cards for a question using a deterministic seeded shuffle.
Spreads can be built-in (single, 3-card, cross, celtic, crowley), custom
spread files from your spread directory, or an inline position matrix
like '[[2,1,3]]'.

Examples:
  oracle reading "What should I focus on this week?"
  oracle reading --spread celtic --reversed "Career direction?"
  oracle reading --seed 42 --spread single "Quick insight"
  oracle reading --interpret --provider ollama "What is hidden?"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := args[0]

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ld := loader.FromConfig(cfg)

		flags := cmd.Flags()
		spreadName, _ := flags.GetString("spread")
		deckName, _ := flags.GetString("deck")
		allowReversed, _ := flags.GetBool("reversed")
		seedFlag, _ := flags.GetUint64("seed")
		randomBytes, _ := flags.GetInt("random")
		noKeywords, _ := flags.GetBool("no-keywords")
		asJSON, _ := flags.GetBool("json")
		interpret, _ := flags.GetBool("interpret")
		provider, _ := flags.GetString("provider")
		model, _ := flags.GetString("model")
		invocationName, _ := flags.GetString("invocation")

		if spreadName == "" {
			spreadName = cfg.DefaultSpread
		}

		d, err := resolveDeck(ld, deckName)
		if err != nil {
			return err
		}
		s, err := resolveSpread(ld, spreadName)
		if err != nil {
			return err
		}

		invocation := oracle.DefaultInvocation
		if invocationName != "" {
			invocation, err = ld.LoadInvocation(invocationName)
			if err != nil {
				return fmt.Errorf("loading invocation: %v", err)
			}
		}

		seed := seedFlag
		if !flags.Changed("seed") {
			seed, err = draw.SeedForQuestion(question, invocation, randomBytes)
			if err != nil {
				return err
			}
		}

		reading, err := draw.Draw(d, s, seed, draw.Options{
			Question:      question,
			AllowReversed: allowReversed,
		})
		if err != nil {
			return err
		}

		grid := render.Grid(reading)
		legend := render.Legend(reading, !noKeywords)
		guidance := semantic.MatchGuidance(reading)

		if asJSON {
			doc := struct {
				render.Document
				Guidance []string `json:"guidance,omitempty"`
			}{render.NewDocument(reading), guidance}
			out, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		printHeader("Invocation")
		fmt.Println(invocation)
		fmt.Println()

		printHeader("Tarot Reading")
		fmt.Println()
		fmt.Printf("%s: %s\n", colorize.CyanString("Question"), question)
		fmt.Printf("%s: %s\n", colorize.CyanString("Spread"), s.Name)
		fmt.Println()
		fmt.Println(grid)
		fmt.Println()
		fmt.Println(legend)

		if len(guidance) > 0 {
			fmt.Println()
			printHeader("Interpretive Guidance")
			for _, text := range guidance {
				fmt.Println("- " + text)
			}
		}

		var interpretation string
		if interpret {
			o, err := oracle.New(cfg, provider, model)
			if err != nil {
				return err
			}
			prompt := oracle.Prompt{
				Invocation: invocation,
				Question:   question,
				SpreadType: s.Name,
				Legend:     legend,
			}
			interpretation, err = o.Interpret(cmd.Context(), prompt, model)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: interpretation failed: %v\n", err)
			} else {
				fmt.Println()
				printHeader("Interpretation")
				rendered, err := glamour.Render(interpretation, "dark")
				if err != nil {
					fmt.Println(interpretation)
				} else {
					fmt.Print(rendered)
				}
			}
		}

		forceSave, _ := flags.GetBool("save")
		noSave, _ := flags.GetBool("no-save")
		savePath, _ := flags.GetString("save-path")
		return maybeSaveSession(cfg, forceSave, noSave, savePath, loader.Session{
			Question:                question,
			SpreadName:              s.Name,
			Invocation:              invocation,
			Grid:                    grid,
			Legend:                  legend,
			InterpretationRequested: interpret,
			Interpretation:          interpretation,
		})
	},
}

func init() {
	RootCmd.AddCommand(readingCmd)

	readingCmd.Flags().StringP("spread", "s", "", "Spread name, custom spread file, or inline matrix like '[[2,1,3]]'")
	readingCmd.Flags().StringP("deck", "d", "", "Custom deck file (defaults to the standard Rider-Waite deck)")
	readingCmd.Flags().BoolP("reversed", "r", false, "Allow reversed cards")
	readingCmd.Flags().Uint64("seed", 0, "Explicit seed for a reproducible reading")
	readingCmd.Flags().Int("random", 8, "Random entropy bytes mixed into the derived seed (0 for none)")
	readingCmd.Flags().Bool("no-keywords", false, "Omit card keywords from the legend")
	readingCmd.Flags().Bool("json", false, "Emit the reading as JSON")
	readingCmd.Flags().BoolP("interpret", "i", false, "Generate an AI interpretation")
	readingCmd.Flags().String("provider", "", "AI provider: gemini, openrouter, or ollama")
	readingCmd.Flags().StringP("model", "m", "", "Model override for the AI provider")
	readingCmd.Flags().String("invocation", "", "Custom invocation name")
	readingCmd.Flags().Bool("save", false, "Force saving this session")
	readingCmd.Flags().Bool("no-save", false, "Do not save this session")
	readingCmd.Flags().String("save-path", "", "Override the session save directory")
}

func printHeader(title string) {
	colorize.New(colorize.FgHiMagenta, colorize.Bold).Printf("=== %s ===\n", title)
}

// resolveDeck returns the standard deck unless a custom deck is named.
func resolveDeck(ld *loader.Loader, name string) (*deck.Deck, error) {
	if name == "" {
		return deck.Standard(), nil
	}
	return ld.LoadDeck(name)
}

// resolveSpread tries built-ins, then custom spread files, then an inline
// position matrix.
func resolveSpread(ld *loader.Loader, name string) (*spread.Spread, error) {
	if s, ok := spread.Builtin(name); ok {
		return s, nil
	}
	if s, err := ld.LoadSpread(name); err == nil {
		return s, nil
	}
	if s, err := parseInlineSpread(name); err == nil {
		return s, nil
	}
	return nil, fmt.Errorf("invalid spread %q: use one of %s, a custom spread name, or an inline matrix",
		name, strings.Join(spread.BuiltinNames(), ", "))
}

// parseInlineSpread accepts '[[2,1,3]]' matrices and '[1,2,3]' rows.
func parseInlineSpread(input string) (*spread.Spread, error) {
	var matrix [][]int
	if err := json.Unmarshal([]byte(input), &matrix); err != nil {
		var row []int
		if err := json.Unmarshal([]byte(input), &row); err != nil {
			return nil, fmt.Errorf("not a position matrix: %q", input)
		}
		matrix = [][]int{row}
	}
	return spread.FromLayout("custom", matrix)
}

// maybeSaveSession applies the autosave settings and flag overrides.
func maybeSaveSession(cfg *config.Config, forceSave, noSave bool, savePath string, session loader.Session) error {
	shouldSave := cfg.AutosaveSessions
	if forceSave {
		shouldSave = true
	}
	if noSave {
		shouldSave = false
	}
	if !shouldSave {
		return nil
	}

	dir := savePath
	if dir == "" {
		dir = cfg.AutosaveLocation
	}
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(home, "oracles")
	}

	path, err := loader.SaveSession(dir, session)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to save session: %v\n", err)
		return nil
	}
	fmt.Printf("\nSession saved to %s\n", path)
	return nil
}
