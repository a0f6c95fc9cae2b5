package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/oracle/internal/config"
	"github.com/arcanaland/oracle/internal/deck"
	"github.com/arcanaland/oracle/internal/loader"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect decks and look up cards by code",
	Long: `Deck lists available custom decks or looks up cards by notation code.
Codes are major arcana roman numerals (XVII, 0) or suit letter plus value
for minors (W3, CQ, P10). Bracket notation and the reversal arrow are
accepted, so codes copied from a reading legend work as-is.

Examples:
  oracle deck --list
  oracle deck --lookup XVII,W3,CQ
  oracle deck --deck my-deck --lookup "S_A"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ld := loader.FromConfig(cfg)

		list, _ := cmd.Flags().GetBool("list")
		lookup, _ := cmd.Flags().GetString("lookup")
		deckName, _ := cmd.Flags().GetString("deck")

		if list {
			listings := ld.ListDecks()
			fmt.Printf("%s (built-in): the standard 78-card deck\n", colorize.HiWhiteString("rider-waite"))
			for _, item := range listings {
				fmt.Printf("%s (%s): %s\n", colorize.HiWhiteString(item.Name), item.Filename, item.Description)
			}
			return nil
		}

		if lookup == "" {
			return cmd.Help()
		}

		d, err := resolveDeck(ld, deckName)
		if err != nil {
			return err
		}
		results, err := d.ResolveCodes(lookup)
		if err != nil {
			return err
		}
		for _, r := range results {
			printLookup(r)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)

	deckCmd.Flags().BoolP("list", "l", false, "List available decks")
	deckCmd.Flags().String("lookup", "", "Comma-separated card codes to look up")
	deckCmd.Flags().StringP("deck", "d", "", "Custom deck file to look up against")
}

func printLookup(r deck.Lookup) {
	orientation := "upright"
	if r.Reversed {
		orientation = "reversed"
	}
	fmt.Printf("%s - %s (%s)\n", r.Card.NotationCode(), colorize.HiWhiteString(r.Card.Name), orientation)
	if meaning := r.Card.Meaning(r.Reversed); meaning != "" {
		fmt.Printf("  %s\n", meaning)
	}
}
