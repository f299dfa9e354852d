package cmd

import (
	"fmt"
	"log/slog"

	"github.com/minml-lang/minml/internal/log"
	"github.com/spf13/cobra"
)

var ConstraintsCmd = &cobra.Command{
	Use:          "constraints [file.mml]",
	Short:        "Print the type constraints collected for a minml program",
	RunE:         runConstraints,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

var (
	constraintsExpr     *string
	constraintsLogLevel *int
)

func init() {
	constraintsExpr = ConstraintsCmd.Flags().StringP("expr", "e", "", "collect constraints for an inline expression instead of a file")
	constraintsLogLevel = ConstraintsCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runConstraints(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*constraintsLogLevel))

	program, err := loadTarget(args, *constraintsExpr)
	if err != nil {
		return err
	}
	if program.Errors().HasError() {
		return fmt.Errorf("errors found while parsing:%s", formatDiagnostics(program.Errors()))
	}
	for _, c := range program.Constraints() {
		fmt.Println(c.String())
	}
	return nil
}
