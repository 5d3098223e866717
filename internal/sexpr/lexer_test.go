package sexpr

import "testing"

func TestTokenizeBasicForm(t *testing.T) {
	toks, err := New(`(print "hi")`).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	want := []TokenKind{TokenLParen, TokenAtom, TokenString, TokenRParen, TokenEOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
	if toks[2].Text != "hi" {
		t.Errorf("string token text = %q, want %q", toks[2].Text, "hi")
	}
}

func TestTokenizeTracksLines(t *testing.T) {
	toks, err := New("(a\n(b))").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	// (a \n (b) )  -> '(' a '(' b ')' ')'
	if toks[0].Line != 1 {
		t.Errorf("first token line = %d, want 1", toks[0].Line)
	}
	last := toks[len(toks)-2] // final ')'
	if last.Line != 2 {
		t.Errorf("closing ')' line = %d, want 2", last.Line)
	}
}

func TestTokenizeComment(t *testing.T) {
	toks, err := New("; a comment\n(a)").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if toks[0].Kind != TokenLParen {
		t.Errorf("comment line should be skipped entirely, first token kind = %v", toks[0].Kind)
	}
}

func TestTokenizeEscapes(t *testing.T) {
	toks, err := New(`"a\nb\t\"c\""`).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	want := "a\nb\t\"c\""
	if toks[0].Text != want {
		t.Errorf("decoded string = %q, want %q", toks[0].Text, want)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := New(`"unterminated`).Tokenize()
	if err == nil {
		t.Fatal("expected an error for an unterminated string literal")
	}
}

func TestTokenizeAtomBoundaries(t *testing.T) {
	toks, err := New("(+ 1 2)").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}
	if toks[1].Text != "+" || toks[2].Text != "1" || toks[3].Text != "2" {
		t.Errorf("unexpected atom tokens: %+v", toks[1:4])
	}
}
