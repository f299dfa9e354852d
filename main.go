package main

import (
	"os"

	"github.com/minml-lang/minml/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "minml [subcommand]",
	Short:        "minml: a tiny ML-flavoured expression language with type inference",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.ConstraintsCmd)
}
