package source

import (
	"testing"

	"yoptascript/internal/span"
)

func TestSliceKeyword(t *testing.T) {
	f := NewFile("test.yps", "гыы x = 228;")

	if got := f.Slice(span.New(0, 6)); got != "гыы" {
		t.Errorf("expected 'гыы', got %q", got)
	}
}

func TestSliceIdentifier(t *testing.T) {
	f := NewFile("test.yps", "гыы x = 228;")

	if got := f.Slice(span.New(7, 8)); got != "x" {
		t.Errorf("expected 'x', got %q", got)
	}
}

func TestSliceNumber(t *testing.T) {
	f := NewFile("test.yps", "гыы x = 228;")

	if got := f.Slice(span.New(11, 14)); got != "228" {
		t.Errorf("expected '228', got %q", got)
	}
}

func TestSliceUnicode(t *testing.T) {
	f := NewFile("test.yps", "пацан x = 5;")

	if got := f.Slice(span.New(0, 10)); got != "пацан" {
		t.Errorf("expected 'пацан', got %q", got)
	}
}

func TestPosition(t *testing.T) {
	f := NewFile("test.yps", "line1\nline2\nline3")

	tests := []struct {
		offset    int
		line, col int
	}{
		{0, 1, 1},   // start of file
		{3, 1, 4},   // middle of first line
		{6, 2, 1},   // start of second line
		{9, 2, 4},   // middle of second line
		{12, 3, 1},  // start of third line
	}

	for _, tt := range tests {
		line, col := f.Position(tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("Position(%d): expected %d:%d, got %d:%d", tt.offset, tt.line, tt.col, line, col)
		}
	}
}

func TestPositionCountsCharacters(t *testing.T) {
	// 'п' and 'а' are two bytes each; offset 4 is the third character.
	f := NewFile("test.yps", "пацан")

	line, col := f.Position(4)
	if line != 1 || col != 3 {
		t.Errorf("expected 1:3, got %d:%d", line, col)
	}
}

func TestLine(t *testing.T) {
	f := NewFile("test.yps", "line1\nline2\nline3")

	for n, want := range map[int]string{1: "line1", 2: "line2", 3: "line3"} {
		got, ok := f.Line(n)
		if !ok || got != want {
			t.Errorf("Line(%d): expected %q, got %q (ok=%v)", n, want, got, ok)
		}
	}

	if _, ok := f.Line(4); ok {
		t.Error("Line(4): expected out of range")
	}
	if _, ok := f.Line(100); ok {
		t.Error("Line(100): expected out of range")
	}
}

func TestLineTrailingNewline(t *testing.T) {
	f := NewFile("test.yps", "a\nb\n")

	got, ok := f.Line(2)
	if !ok || got != "b" {
		t.Errorf("Line(2): expected %q, got %q (ok=%v)", "b", got, ok)
	}
	if _, ok := f.Line(3); ok {
		t.Error("Line(3): trailing newline should not open a new line")
	}
}

func TestEmptyFile(t *testing.T) {
	f := NewFile("empty.yps", "")

	if got := f.Slice(span.New(0, 0)); got != "" {
		t.Errorf("expected empty slice, got %q", got)
	}

	line, col := f.Position(0)
	if line != 1 || col != 1 {
		t.Errorf("expected 1:1, got %d:%d", line, col)
	}

	if _, ok := f.Line(1); ok {
		t.Error("Line(1) on empty file: expected out of range")
	}
}
