// Package source provides the source buffer shared by the lexer and parser.
package source

import (
	"strings"

	"yoptascript/internal/span"
)

// File is an immutable source buffer: the UTF-8 text plus its display name.
type File struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// NewFile creates a source file from a name and its text.
func NewFile(name, text string) *File {
	return &File{Name: name, Text: text}
}

// Slice returns the raw text covered by s. The span must lie on character
// boundaries; the lexer only ever produces such spans.
func (f *File) Slice(s span.Span) string {
	return f.Text[s.Start:s.End]
}

// Position resolves a byte offset to a 1-based (line, column) pair.
// Lines advance on '\n'; columns count characters, not bytes.
func (f *File) Position(offset int) (line, col int) {
	line, col = 1, 1
	for i, ch := range f.Text {
		if i >= offset {
			break
		}
		if ch == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Line returns the n-th line (1-based) without its '\n' terminator.
// The second result is false when n is out of range.
func (f *File) Line(n int) (string, bool) {
	if n < 1 || f.Text == "" {
		return "", false
	}
	lines := strings.Split(f.Text, "\n")
	// A trailing newline does not open a final empty line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}
