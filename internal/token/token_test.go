package token

import "testing"

func TestLookupIdentKeywords(t *testing.T) {
	tests := []struct {
		lexeme string
		kind   Kind
	}{
		{"гыы", KW_GYY},
		{"участковый", KW_UCHASTKOVIY},
		{"ясенХуй", KW_YASEN_HUY},
		{"вилкойвглаз", KW_VILKOYVGLAZ},
		{"иливжопураз", KW_ILIVZHOPURAZ},
		{"потрещим", KW_POTRESHCHIM},
		{"го", KW_GO},
		{"харэ", KW_HARE},
		{"двигай", KW_DVIGAY},
		{"йопта", KW_YOPTA},
		{"отвечаю", KW_OTVECHAYU},
	}

	for _, tt := range tests {
		if got := LookupIdent(tt.lexeme); got != tt.kind {
			t.Errorf("LookupIdent(%q): expected %s, got %s", tt.lexeme, tt.kind, got)
		}
	}
}

func TestLookupIdentNonKeywords(t *testing.T) {
	// The legacy fixture vocabulary and case variants are plain identifiers.
	for _, lexeme := range []string{"pachan", "sliva", "Гыы", "ГЫЫ", "x", "ясенхуй", "_го"} {
		if got := LookupIdent(lexeme); got != IDENT {
			t.Errorf("LookupIdent(%q): expected IDENT, got %s", lexeme, got)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !KW_GYY.IsKeyword() || !KW_OTVECHAYU.IsKeyword() {
		t.Error("keyword kinds must satisfy IsKeyword")
	}
	if !PLUS.IsOperator() || !OR.IsOperator() {
		t.Error("operator kinds must satisfy IsOperator")
	}
	if !LPAREN.IsPunctuation() || !DOT.IsPunctuation() {
		t.Error("punctuation kinds must satisfy IsPunctuation")
	}
	if IDENT.IsKeyword() || IDENT.IsOperator() || IDENT.IsPunctuation() {
		t.Error("IDENT must satisfy no class predicate")
	}
	if EOF.IsKeyword() || UNKNOWN.IsOperator() {
		t.Error("special kinds must satisfy no class predicate")
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		EQ_STRICT:  "===",
		NEQ_STRICT: "!==",
		AND:        "&&",
		KW_GYY:     "гыы",
		EOF:        "EOF",
		UNKNOWN:    "UNKNOWN",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Kind.String(): expected %q, got %q", want, got)
		}
	}
}
