package main

import (
	"encoding/json"
	"fmt"
	"os"

	"yoptascript/internal/diag"
	"yoptascript/internal/token"
)

// ---- output helpers ----

// printTokensText prints one token per line as "<kind> @ <start>..<end>".
func printTokensText(tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Printf("%s @ %d..%d\n", tok.Kind, tok.Span.Start, tok.Span.End)
	}
}

func printTokensJSON(tokens []token.Token, diags []diag.Diagnostic) {
	type tokenJSON struct {
		Kind   string `json:"kind"`
		Lexeme string `json:"lexeme"`
		Start  int    `json:"start"`
		End    int    `json:"end"`
	}

	toks := make([]tokenJSON, len(tokens))
	for i, tok := range tokens {
		toks[i] = tokenJSON{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Start:  tok.Span.Start,
			End:    tok.Span.End,
		}
	}

	printJSON(map[string]interface{}{
		"tokens":      toks,
		"diagnostics": diagsToSlice(diags),
	})
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: JSON encoding failed: %v\n", err)
		os.Exit(1)
	}
}

// printDiags writes diagnostics to stderr as "<severity>: <message>".
// Diagnostics do not affect the exit code; error severity is the signal.
func printDiags(diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.String())
	}
}

func diagsToSlice(diags []diag.Diagnostic) []map[string]interface{} {
	result := make([]map[string]interface{}, len(diags))
	for i, d := range diags {
		result[i] = map[string]interface{}{
			"severity": d.Severity.String(),
			"message":  d.Message,
			"start":    d.Span.Start,
			"end":      d.Span.End,
		}
	}
	return result
}
