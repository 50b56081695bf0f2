package lexer

import (
	"testing"

	"github.com/go-decaf/decafc/pkg/token"
)

func scan(t *testing.T, src string) ([]token.Token, []Error) {
	t.Helper()
	return New(src).ScanAll()
}

func TestScanAllSimpleProgram(t *testing.T) {
	src := `void main() {
		int x;
		x = 10;
		if (x > 5) {
			x = x + 1;
		}
	}`

	tests := []struct {
		kind token.Kind
		text string
	}{
		{token.VOID, "void"},
		{token.IDENTIFIER, "main"},
		{token.LPAREN, "("},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.INT, "int"},
		{token.IDENTIFIER, "x"},
		{token.SEMI, ";"},
		{token.IDENTIFIER, "x"},
		{token.ASSIGN, "="},
		{token.INTLITERAL, "10"},
		{token.SEMI, ";"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.IDENTIFIER, "x"},
		{token.GT, ">"},
		{token.INTLITERAL, "5"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENTIFIER, "x"},
		{token.ASSIGN, "="},
		{token.IDENTIFIER, "x"},
		{token.PLUS, "+"},
		{token.INTLITERAL, "1"},
		{token.SEMI, ";"},
		{token.RBRACE, "}"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	toks, errs := scan(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected scanner errors: %v", errs)
	}
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tests), toks)
	}
	for i, tt := range tests {
		if toks[i].Kind != tt.kind || toks[i].Text != tt.text {
			t.Fatalf("tokens[%d] = %s %q, want %s %q", i, toks[i].Kind, toks[i].Text, tt.kind, tt.text)
		}
	}
}

func TestScanAllAlwaysEndsWithOneEOF(t *testing.T) {
	toks, _ := scan(t, "")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("ScanAll of empty input = %v, want a single EOF", toks)
	}
}

func TestTwoCharacterSymbols(t *testing.T) {
	tests := []struct {
		text string
		kind token.Kind
	}{
		{"++", token.INC}, {"--", token.DEC}, {"==", token.EQ}, {"!=", token.NEQ},
		{"<=", token.LEQ}, {">=", token.GEQ}, {"&&", token.AND}, {"||", token.OR},
		{"+=", token.PLUSEQ}, {"-=", token.MINUSEQ}, {"*=", token.STAREQ},
		{"/=", token.SLASHEQ}, {"%=", token.PERCENTEQ},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			toks, errs := scan(t, tt.text)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if toks[0].Kind != tt.kind || toks[0].Text != tt.text {
				t.Fatalf("got %s %q, want %s %q", toks[0].Kind, toks[0].Text, tt.kind, tt.text)
			}
		})
	}
}

func TestIntegerIdentifierTieBreak(t *testing.T) {
	// : "12abc" tokenizes as INTLITERAL "12" then IDENTIFIER "abc".
	toks, errs := scan(t, "12abc")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []struct {
		kind token.Kind
		text string
	}{
		{token.INTLITERAL, "12"},
		{token.IDENTIFIER, "abc"},
		{token.EOF, ""},
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Fatalf("tokens[%d] = %s %q, want %s %q", i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
	}
}

func TestLongLiteralSuffix(t *testing.T) {
	toks, _ := scan(t, "42L")
	if toks[0].Kind != token.LONGLITERAL || toks[0].Text != "42L" {
		t.Fatalf("got %s %q, want LONGLITERAL \"42L\"", toks[0].Kind, toks[0].Text)
	}
}

func TestHexLiteral(t *testing.T) {
	toks, errs := scan(t, "0x1F")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[0].Kind != token.INTLITERAL || toks[0].Text != "0x1F" {
		t.Fatalf("got %s %q, want INTLITERAL \"0x1F\"", toks[0].Kind, toks[0].Text)
	}
}

func TestLineComment(t *testing.T) {
	toks, _ := scan(t, "int x; // trailing comment\nint y;")
	// Expect the comment to vanish and the second line to still scan.
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.INT, token.IDENTIFIER, token.SEMI, token.INT, token.IDENTIFIER, token.SEMI, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
	if toks[3].Pos.Line != 2 {
		t.Fatalf("second int should be on line 2, got line %d", toks[3].Pos.Line)
	}
}

func TestBlockCommentSpansLines(t *testing.T) {
	toks, errs := scan(t, "int /* multi\nline */ x;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[1].Pos.Line != 2 {
		t.Fatalf("identifier after block comment should be on line 2, got %d", toks[1].Pos.Line)
	}
}

func TestUnterminatedBlockCommentIsAnError(t *testing.T) {
	_, errs := scan(t, "int x; /* never closed")
	if len(errs) != 1 {
		t.Fatalf("want exactly one scanner error, got %v", errs)
	}
}

func TestStringLiteralRoundTripsQuotes(t *testing.T) {
	toks, errs := scan(t, `"hello\nworld"`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := `"hello\nworld"`
	if toks[0].Kind != token.STRINGLITERAL || toks[0].Text != want {
		t.Fatalf("got %s %q, want STRINGLITERAL %q", toks[0].Kind, toks[0].Text, want)
	}
}

func TestUnterminatedStringIsAnError(t *testing.T) {
	_, errs := scan(t, `"no closing quote`)
	if len(errs) != 1 {
		t.Fatalf("want exactly one scanner error, got %v", errs)
	}
}

func TestCharLiteral(t *testing.T) {
	toks, errs := scan(t, `'a'`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if toks[0].Kind != token.CHARLITERAL || toks[0].Text != `'a'` {
		t.Fatalf("got %s %q, want CHARLITERAL 'a'", toks[0].Kind, toks[0].Text)
	}
}

func TestEmptyCharLiteralIsAnError(t *testing.T) {
	_, errs := scan(t, `''`)
	if len(errs) != 1 {
		t.Fatalf("want exactly one scanner error, got %v", errs)
	}
}

func TestLoneAmpersandIsAnError(t *testing.T) {
	toks, errs := scan(t, "& x")
	if len(errs) != 1 {
		t.Fatalf("want exactly one scanner error, got %v", errs)
	}
	// scanning recovers and still finds the identifier after the bad rune.
	if toks[0].Kind != token.IDENTIFIER || toks[0].Text != "x" {
		t.Fatalf("got %s %q after recovery, want IDENTIFIER \"x\"", toks[0].Kind, toks[0].Text)
	}
}

func TestKeywordsAreNotIdentifiers(t *testing.T) {
	keywords := []string{"bool", "break", "const", "continue", "else", "false", "for",
		"if", "import", "int", "len", "long", "return", "true", "void", "while"}
	for _, kw := range keywords {
		t.Run(kw, func(t *testing.T) {
			toks, _ := scan(t, kw)
			if toks[0].Kind == token.IDENTIFIER {
				t.Fatalf("keyword %q scanned as IDENTIFIER", kw)
			}
		})
	}
}
