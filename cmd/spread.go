package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/oracle/internal/config"
	"github.com/arcanaland/oracle/internal/loader"
	"github.com/arcanaland/oracle/internal/spread"
)

var spreadCmd = &cobra.Command{
	Use:   "spread",
	Short: "List, inspect, and validate spreads",
	Long: `Spread manages the layouts available for readings: the built-in spreads
and custom JSON spread files from your spread directory.

Examples:
  oracle spread --list
  oracle spread --show crowley
  oracle spread --validate my-custom-spread`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ld := loader.FromConfig(cfg)

		list, _ := cmd.Flags().GetBool("list")
		show, _ := cmd.Flags().GetString("show")
		validate, _ := cmd.Flags().GetString("validate")

		switch {
		case list:
			fmt.Println("Built-in spreads:")
			for _, name := range spread.BuiltinNames() {
				s, _ := spread.Builtin(name)
				fmt.Printf("  %s (%d cards): %s\n", colorize.HiWhiteString(name), s.PositionCount(), s.Description)
			}
			custom := ld.ListSpreads()
			if len(custom) > 0 {
				fmt.Println("\nCustom spreads:")
				for _, item := range custom {
					fmt.Printf("  %s (%s): %s\n", colorize.HiWhiteString(item.Name), item.Filename, item.Description)
				}
			}
			return nil

		case show != "":
			s, err := resolveSpread(ld, show)
			if err != nil {
				return err
			}
			showSpread(s)
			return nil

		case validate != "":
			fmt.Println("Validation Results:")
			fmt.Println("-------------------")
			s, err := ld.LoadSpread(validate)
			if err != nil {
				fmt.Printf("❌ Spread '%s' is invalid:\n", validate)
				fmt.Printf("1. %s\n", err)
				return fmt.Errorf("validation failed")
			}
			fmt.Printf("✅ Spread '%s' is valid (%d positions).\n", s.Name, s.PositionCount())
			return nil
		}

		return cmd.Help()
	},
}

func init() {
	RootCmd.AddCommand(spreadCmd)

	spreadCmd.Flags().BoolP("list", "l", false, "List available spreads")
	spreadCmd.Flags().String("show", "", "Show a spread's layout and semantics")
	spreadCmd.Flags().String("validate", "", "Validate a custom spread file")
}

func showSpread(s *spread.Spread) {
	fmt.Printf("%s: %s\n\n", colorize.HiWhiteString(s.Name), s.Description)

	fmt.Println("Layout:")
	for _, row := range s.Positions {
		fmt.Print(" ")
		for _, pos := range row {
			if pos == 0 {
				fmt.Print("  . ")
			} else {
				fmt.Printf(" %2d ", pos)
			}
		}
		fmt.Println()
	}

	fmt.Println("\nPositions:")
	for pos := 1; pos <= s.PositionCount(); pos++ {
		meaning := s.Resolve(s.SemanticAt(pos))
		if meaning == "" {
			meaning = "General Information"
		}
		fmt.Printf("  %2d. %s\n", pos, meaning)
	}

	if len(s.Guidance) > 0 {
		fmt.Printf("\nGuidance rules: %d\n", len(s.Guidance))
	}
}
