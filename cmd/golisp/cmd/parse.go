package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/AlxV07/golisp/pkg/golisp"
	"github.com/spf13/cobra"
)

var parseExpression bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Read golisp source and print the forms the reader produced",
	Long: `Read golisp source code and print each top-level form in its printed
representation, without evaluating any of them.

If no file is provided, reads from stdin.
Use -e to parse a single expression from the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
}

func runParse(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	forms, err := golisp.Parse(input)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	for _, f := range forms {
		fmt.Println(f.String())
	}
	return nil
}
