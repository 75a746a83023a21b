package quill

import "testing"

func lexAll(t *testing.T, source string) []Token {
	t.Helper()
	l := newLexer(source)
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("lex error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Type == tokenEOF {
			return toks
		}
	}
}

func tokenTypes(toks []Token) []TokenType {
	types := make([]TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestLexerIndentation(t *testing.T) {
	source := "if x:\n  print x\nprint y\n"
	got := tokenTypes(lexAll(t, source))
	want := []TokenType{
		tokenIf, tokenIdent, tokenColon, tokenNewline,
		tokenIndent, tokenPrint, tokenIdent, tokenNewline,
		tokenDedent, tokenPrint, tokenIdent, tokenNewline,
		tokenEOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d tokens %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	toks := lexAll(t, "class self None True False and or not\n")
	want := []TokenType{tokenClass, tokenSelf, tokenNone, tokenTrue, tokenFalse, tokenAnd, tokenOr, tokenNot, tokenNewline, tokenEOF}
	got := tokenTypes(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexerStringEscapes(t *testing.T) {
	l := newLexer(`"a\nb\"c"`)
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	if tok.Type != tokenString {
		t.Fatalf("got %s, want STRING", tok.Type)
	}
	if want := "a\nb\"c"; tok.Literal != want {
		t.Fatalf("got %q, want %q", tok.Literal, want)
	}
}

func TestLexerTabsAreIllegal(t *testing.T) {
	l := newLexer("if x:\n\tprint x\n")
	for {
		tok, err := l.NextToken()
		if err != nil {
			rtErr, ok := err.(*RuntimeError)
			if !ok || rtErr.Kind != ErrLex {
				t.Fatalf("expected LexError, got %v", err)
			}
			return
		}
		if tok.Type == tokenEOF {
			t.Fatalf("expected a lex error before EOF")
		}
	}
}

func TestLexerInconsistentDedentIsIllegal(t *testing.T) {
	// Dedenting to a width that never appeared on the indent stack.
	source := "if x:\n    print x\n  print y\n"
	l := newLexer(source)
	for {
		tok, err := l.NextToken()
		if err != nil {
			rtErr, ok := err.(*RuntimeError)
			if !ok || rtErr.Kind != ErrLex {
				t.Fatalf("expected LexError, got %v", err)
			}
			return
		}
		if tok.Type == tokenEOF {
			t.Fatalf("expected a lex error before EOF")
		}
	}
}
