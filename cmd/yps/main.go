// Command yps is the CLI entry point for the YoptaScript toolchain.
//
// Usage:
//
//	yps tokens <file>            Print the token stream
//	yps tokens <file> --json     Print the token stream as JSON
//	yps parse  <file>            Parse and print the AST as JSON
//	yps repl                     Start an interactive session
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"yoptascript/internal/ast"
	"yoptascript/internal/lexer"
	"yoptascript/internal/parser"
	"yoptascript/internal/source"
)

func main() {
	root := &cobra.Command{
		Use:           "yps",
		Short:         "YoptaScript compiler front-end",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(tokensCmd(), parseCmd(), replCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func tokensCmd() *cobra.Command {
	var jsonMode bool
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a source file and print the token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readSource(args[0])
			if err != nil {
				return err
			}
			l := lexer.New(file)
			tokens, diags := l.Tokenize()

			if jsonMode {
				printTokensJSON(tokens, diags)
			} else {
				printTokensText(tokens)
				printDiags(diags)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonMode, "json", false, "print tokens as JSON")
	return cmd
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print the AST as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readSource(args[0])
			if err != nil {
				return err
			}
			l := lexer.New(file)
			tokens, lexDiags := l.Tokenize()

			p := parser.New(tokens)
			program, parseDiags := p.ParseProgram()

			printJSON(ast.NodeToMap(program))
			printDiags(append(lexDiags, parseDiags...))
			return nil
		},
	}
}

func readSource(filename string) (*source.File, error) {
	text, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read file %s: %w", filename, err)
	}
	return source.NewFile(filename, string(text)), nil
}
