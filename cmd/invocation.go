package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/oracle/internal/config"
	"github.com/arcanaland/oracle/internal/loader"
	"github.com/arcanaland/oracle/internal/oracle"
)

var invocationCmd = &cobra.Command{
	Use:   "invocation",
	Short: "List and show invocation texts",
	Long: `Invocation manages the ceremonial opening texts used by readings.
Custom invocations are plain .txt or .md files in your invocation
directory; without one, the default Hermes-Thoth/Prometheus invocation
is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ld := loader.FromConfig(cfg)

		list, _ := cmd.Flags().GetBool("list")
		show, _ := cmd.Flags().GetString("show")

		switch {
		case list:
			fmt.Printf("%s (built-in): the default Hermes-Thoth/Prometheus invocation\n",
				colorize.HiWhiteString("default"))
			for _, item := range ld.ListInvocations() {
				fmt.Printf("%s (%s): %s\n", colorize.HiWhiteString(item.Name), item.Filename, item.Description)
			}
			return nil

		case show != "":
			if show == "default" {
				fmt.Println(oracle.DefaultInvocation)
				return nil
			}
			text, err := ld.LoadInvocation(show)
			if err != nil {
				return err
			}
			fmt.Println(text)
			return nil
		}

		return cmd.Help()
	},
}

func init() {
	RootCmd.AddCommand(invocationCmd)

	invocationCmd.Flags().BoolP("list", "l", false, "List available invocations")
	invocationCmd.Flags().String("show", "", "Show an invocation's text")
}
