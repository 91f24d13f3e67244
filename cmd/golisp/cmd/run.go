package cmd

import (
	"fmt"
	"os"

	"github.com/AlxV07/golisp/internal/datum"
	"github.com/AlxV07/golisp/pkg/golisp"
	"github.com/spf13/cobra"
)

var (
	evalExpr  string
	trace     bool
	dumpForms bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a golisp source file or expression",
	Long: `Execute a golisp program from a file or inline source.

Examples:
  # Run a source file
  golisp run program.lisp

  # Evaluate inline source
  golisp run -e "(display (+ 1 2))"

  # Run with a form dump (for debugging)
  golisp run --dump-forms program.lisp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from a file")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace top-level form evaluation (for debugging)")
	runCmd.Flags().BoolVar(&dumpForms, "dump-forms", false, "dump the forms the reader produced before evaluating")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string
	var filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline source")
	}

	if dumpForms {
		forms, err := golisp.Parse(input)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		for _, f := range forms {
			fmt.Println(f.String())
		}
	}

	engine := golisp.New(golisp.WithOutput(os.Stdout))
	program, err := engine.Compile(input)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	var tracer func(index int, form datum.Datum)
	if trace {
		tracer = func(index int, form datum.Datum) {
			fmt.Fprintf(os.Stderr, "[trace] %s form %d: %s\n", filename, index, form.String())
		}
	}

	result, err := engine.RunTraced(program, tracer)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] last value: %s\n", result.Value.String())
	}
	return nil
}
