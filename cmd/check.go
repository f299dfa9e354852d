package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/minml-lang/minml/frontend/ilerr"
	"github.com/minml-lang/minml/internal/log"
	"github.com/minml-lang/minml/minml"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var CheckCmd = &cobra.Command{
	Use:          "check [file.mml]",
	Short:        "Type-check a minml program and print its inferred type",
	RunE:         runCheck,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

var (
	checkExpr     *string
	checkLogLevel *int
)

func init() {
	checkExpr = CheckCmd.Flags().StringP("expr", "e", "", "type-check an inline expression instead of a file")
	checkLogLevel = CheckCmd.Flags().IntP("log-level", "l", int(slog.LevelError), "log level")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log.SetLevel(slog.Level(*checkLogLevel))

	program, err := loadTarget(args, *checkExpr)
	if err != nil {
		return err
	}
	inferred, errs := program.Check()
	if errs.HasError() {
		return fmt.Errorf("errors found during type checking:%s", formatDiagnostics(errs))
	}
	fmt.Println(inferred.TypeName())
	return nil
}

func loadTarget(args []string, inlineExpr string) (*minml.Program, error) {
	if inlineExpr != "" {
		return minml.NewProgram("<expr>", inlineExpr), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("provide a file, or an inline expression with --expr")
	}
	target, err := filepath.Abs(args[0])
	if err != nil {
		return nil, errors.Wrap(err, "could not get absolute path of target")
	}
	program, err := minml.LoadProgram(os.DirFS(filepath.Dir(target)), filepath.Base(target))
	if err != nil {
		return nil, err
	}
	return program, nil
}

func formatDiagnostics(errs *ilerr.Errors) string {
	colored := isatty.IsTerminal(os.Stderr.Fd())
	sb := &strings.Builder{}
	for _, e := range errs.Errors() {
		msg := ilerr.FormatWithCode(e)
		if colored {
			msg = "\x1b[31m" + msg + "\x1b[0m"
		}
		sb.WriteString("\n")
		sb.WriteString(msg)
	}
	return sb.String()
}
