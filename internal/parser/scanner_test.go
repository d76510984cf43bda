package parser

import (
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string) []Token {
	t.Helper()
	scanner := NewScanner(input)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	return tokens
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "var val global static import function as to in has instanceof this " +
		"if else for while break continue return version zenClass zenConstructor " +
		"true false null customIdent"
	expected := []TokenType{
		VAR, VAL, GLOBAL, STATIC, IMPORT, FUNCTION, AS, TO, IN, HAS, INSTANCEOF, THIS,
		IF, ELSE, FOR, WHILE, BREAK, CONTINUE, RETURN, VERSION, ZEN_CLASS, ZEN_CONSTRUCTOR,
		TRUE, FALSE, NULL, IDENTIFIER,
	}

	tokens := scanAll(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestPrimitiveTypeKeywords(t *testing.T) {
	input := "any bool byte short int long float double string"
	expected := []TokenType{ANY, BOOL, BYTE, SHORT, INT, LONG, FLOAT, DOUBLE, STRING_TYPE}

	tokens := scanAll(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestFrigginAliases(t *testing.T) {
	tokens := scanAll(t, "frigginClass frigginConstructor")
	if tokens[0].Type != ZEN_CLASS {
		t.Errorf("expected ZEN_CLASS, got %s", tokens[0].Type)
	}
	if tokens[1].Type != ZEN_CONSTRUCTOR {
		t.Errorf("expected ZEN_CONSTRUCTOR, got %s", tokens[1].Type)
	}
	if tokens[0].Lexeme != "frigginClass" {
		t.Errorf("lexeme should keep the alias spelling, got %q", tokens[0].Lexeme)
	}
}

func TestOperatorLongestMatch(t *testing.T) {
	cases := []struct {
		input    string
		expected []TokenType
	}{
		{"= ==", []TokenType{EQUAL, EQUAL_EQUAL}},
		{"& &&", []TokenType{AMPERSAND, AND}},
		{"| ||", []TokenType{PIPE, OR}},
		{"+ +=", []TokenType{PLUS, PLUS_ASSIGN}},
		{"~ ~=", []TokenType{TILDE, TILDE_ASSIGN}},
		{"! !=", []TokenType{BANG, BANG_EQUAL}},
		{"< <=", []TokenType{LESS, LESS_EQUAL}},
		{"> >=", []TokenType{GREATER, GREATER_EQUAL}},
		{"|=", []TokenType{PIPE_ASSIGN}},
		{"&=", []TokenType{AMPERSAND_ASSIGN}},
		{"^ ^=", []TokenType{CARET, CARET_ASSIGN}},
		{"..", []TokenType{DOT_DOT}},
		{"...", []TokenType{DOT_DOT, DOT}},
		{". ..", []TokenType{DOT, DOT_DOT}},
	}

	for _, c := range cases {
		tokens := scanAll(t, c.input)
		if len(tokens) != len(c.expected) {
			t.Errorf("%q: expected %d tokens, got %d", c.input, len(c.expected), len(tokens))
			continue
		}
		for i, exp := range c.expected {
			if tokens[i].Type != exp {
				t.Errorf("%q token %d: expected %s, got %s", c.input, i, exp, tokens[i].Type)
			}
		}
	}
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		input    string
		expected TokenType
	}{
		{"42", INT_NUMBER},
		{"0", INT_NUMBER},
		{"0x1F", INT_NUMBER},
		{"0XABC", INT_NUMBER},
		{"3.14", FLOAT_NUMBER},
		{"1.5e10", FLOAT_NUMBER},
		{"1.5e+10", FLOAT_NUMBER},
		{"2.0E-3", FLOAT_NUMBER},
		{"1.0f", FLOAT_NUMBER},
		{"1.0F", FLOAT_NUMBER},
		{"2.5d", FLOAT_NUMBER},
		{"2.5D", FLOAT_NUMBER},
	}

	for _, c := range cases {
		tokens := scanAll(t, c.input)
		if len(tokens) != 1 {
			t.Errorf("%q: expected 1 token, got %d", c.input, len(tokens))
			continue
		}
		if tokens[0].Type != c.expected {
			t.Errorf("%q: expected %s, got %s", c.input, c.expected, tokens[0].Type)
		}
		if tokens[0].Lexeme != c.input {
			t.Errorf("%q: lexeme mismatch, got %q", c.input, tokens[0].Lexeme)
		}
	}
}

func TestIntegerWithTrailingDot(t *testing.T) {
	// 1..5 must not lex 1. as a float
	tokens := scanAll(t, "1..5")
	expected := []TokenType{INT_NUMBER, DOT_DOT, INT_NUMBER}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestNegativeNumberLiterals(t *testing.T) {
	// At expression start the minus joins the literal.
	tokens := scanAll(t, "-5")
	if len(tokens) != 1 || tokens[0].Type != INT_NUMBER || tokens[0].Lexeme != "-5" {
		t.Fatalf("expected single INT_NUMBER '-5', got %v", tokens)
	}

	// After an operand the minus is subtraction.
	tokens = scanAll(t, "x - 5")
	expected := []TokenType{IDENTIFIER, MINUS, INT_NUMBER}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}

	// x -5 still subtracts; spacing does not change the decision.
	tokens = scanAll(t, "x -5")
	if len(tokens) != 3 || tokens[1].Type != MINUS {
		t.Fatalf("expected IDENTIFIER MINUS INT_NUMBER, got %v", tokens)
	}

	// After an operator the minus signs the literal: a + -5
	tokens = scanAll(t, "a + -5")
	if len(tokens) != 3 || tokens[2].Type != INT_NUMBER || tokens[2].Lexeme != "-5" {
		t.Fatalf("expected signed literal after '+', got %v", tokens)
	}

	// -x is a unary minus on an identifier, not a literal.
	tokens = scanAll(t, "-x")
	if len(tokens) != 2 || tokens[0].Type != MINUS || tokens[1].Type != IDENTIFIER {
		t.Fatalf("expected MINUS IDENTIFIER, got %v", tokens)
	}

	// -3.5 signs a float literal.
	tokens = scanAll(t, "-3.5")
	if len(tokens) != 1 || tokens[0].Type != FLOAT_NUMBER || tokens[0].Lexeme != "-3.5" {
		t.Fatalf("expected single FLOAT_NUMBER '-3.5', got %v", tokens)
	}
}

func TestStringsKeepQuotes(t *testing.T) {
	tokens := scanAll(t, `"hello" 'world'`)
	if tokens[0].Type != STRING || tokens[0].Lexeme != `"hello"` {
		t.Errorf("expected quoted lexeme %q, got %q", `"hello"`, tokens[0].Lexeme)
	}
	if tokens[1].Type != STRING || tokens[1].Lexeme != `'world'` {
		t.Errorf("expected quoted lexeme %q, got %q", `'world'`, tokens[1].Lexeme)
	}
}

func TestStringEscapes(t *testing.T) {
	valid := []string{
		`"a\nb"`,
		`"tab\there"`,
		`'it\'s'`,
		`"quote\""`,
		`"back\\slash"`,
		`"uniAcode"`,
		`"slash\/ok"`,
		`"\b\f\r"`,
	}
	for _, input := range valid {
		tokens := scanAll(t, input)
		if len(tokens) != 1 || tokens[0].Type != STRING {
			t.Errorf("%s: expected one STRING token, got %v", input, tokens)
		}
	}

	invalid := []string{
		`"bad\qescape"`,
		`"trunc\u12"`,
		`"unterminated`,
		"\"newline\nin string\"",
	}
	for _, input := range invalid {
		scanner := NewScanner(input)
		_, err := scanner.ScanTokens()
		if err == nil {
			t.Errorf("%s: expected scan error", input)
		}
	}
}

func TestUnquoteString(t *testing.T) {
	cases := []struct {
		lexeme string
		value  string
	}{
		{`"hello"`, "hello"},
		{`'world'`, "world"},
		{`"a\nb"`, "a\nb"},
		{`"A"`, "A"},
		{`'it\'s'`, "it's"},
	}
	for _, c := range cases {
		got, err := UnquoteString(c.lexeme)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.lexeme, err)
			continue
		}
		if got != c.value {
			t.Errorf("%s: expected %q, got %q", c.lexeme, c.value, got)
		}
	}

	if _, err := UnquoteString(`"`); err == nil {
		t.Error("expected error for malformed lexeme")
	}
}

func TestComments(t *testing.T) {
	input := `a // line comment
b # hash comment
c /* block
   spanning lines */ d`
	tokens := scanAll(t, input)
	expected := []string{"a", "b", "c", "d"}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, lexeme := range expected {
		if tokens[i].Lexeme != lexeme {
			t.Errorf("token %d: expected %q, got %q", i, lexeme, tokens[i].Lexeme)
		}
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	scanner := NewScanner("a /* never closed")
	_, err := scanner.ScanTokens()
	if err == nil {
		t.Fatal("expected scan error for unterminated block comment")
	}
}

func TestTokenConcatenationReproducesSource(t *testing.T) {
	input := `global x as int = -5; val s = "a\nb" ~ 'c'; for i in 0 .. 10 { print(i); }`

	tokens := scanAll(t, input)

	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Lexeme)
	}
	joined := b.String()

	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, input)
	if joined != stripped {
		t.Errorf("token concatenation does not reproduce source:\n got %q\nwant %q", joined, stripped)
	}
}

func TestPermissiveModeTruncates(t *testing.T) {
	scanner := NewScanner("a b @ c")
	scanner.SetPermissive(true)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		t.Fatalf("permissive scan must not fail, got %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected tokens up to the fault, got %d", len(tokens))
	}
	if tokens[0].Lexeme != "a" || tokens[1].Lexeme != "b" {
		t.Errorf("unexpected token prefix: %v", tokens)
	}
}

func TestStrictModeFaults(t *testing.T) {
	scanner := NewScanner("a b @ c")
	_, err := scanner.ScanTokens()
	if err == nil {
		t.Fatal("expected scan error in strict mode")
	}
	scanErr, ok := err.(*ScanError)
	if !ok {
		t.Fatalf("expected *ScanError, got %T", err)
	}
	if scanErr.Snippet != "@" {
		t.Errorf("expected snippet %q, got %q", "@", scanErr.Snippet)
	}
	if scanErr.Position.Line != 1 || scanErr.Position.Column != 5 {
		t.Errorf("unexpected fault position: %+v", scanErr.Position)
	}
}

func TestPositions(t *testing.T) {
	tokens := scanAll(t, "a\n  b")
	if tokens[0].Position.Line != 1 || tokens[0].Position.Column != 1 {
		t.Errorf("unexpected position for a: %+v", tokens[0].Position)
	}
	if tokens[1].Position.Line != 2 || tokens[1].Position.Column != 3 {
		t.Errorf("unexpected position for b: %+v", tokens[1].Position)
	}
	if tokens[1].Position.Offset != 4 {
		t.Errorf("unexpected offset for b: %d", tokens[1].Position.Offset)
	}
}

func TestRangeScanner(t *testing.T) {
	source := "var x = 1;\nvar y = 2;\nvar z = 3;"
	from := strings.Index(source, "var y")
	to := from + len("var y = 2;")

	scanner := NewRangeScanner(source, from, to)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}

	expected := []TokenType{VAR, IDENTIFIER, EQUAL, INT_NUMBER, SEMICOLON}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	if tokens[0].Position.Line != 2 || tokens[0].Position.Column != 1 {
		t.Errorf("range token should keep absolute line/column, got %+v", tokens[0].Position)
	}
	if tokens[0].Position.Offset != from {
		t.Errorf("range token should keep absolute offset, got %d", tokens[0].Position.Offset)
	}
	if tokens[1].Lexeme != "y" {
		t.Errorf("expected y, got %q", tokens[1].Lexeme)
	}
}

func TestRangeScannerClampsBounds(t *testing.T) {
	source := "x"
	scanner := NewRangeScanner(source, -3, 99)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Lexeme != "x" {
		t.Errorf("unexpected tokens: %v", tokens)
	}

	// A start offset past the end yields an empty scan, not a panic.
	scanner = NewRangeScanner(source, 5, 10)
	tokens, err = scanner.ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}

	scanner = NewRangeScanner(source, 1, 0)
	tokens, err = scanner.ScanTokens()
	if err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens for inverted range, got %v", tokens)
	}
}

func TestNonASCIIInputFaults(t *testing.T) {
	// Identifiers are ASCII letters, digits and underscore only; a
	// multi-byte character is an unmatched position, not an identifier.
	scanner := NewScanner("café")
	tokens, err := scanner.ScanTokens()
	if err == nil {
		t.Fatal("expected scan error for non-ASCII input")
	}
	scanErr, ok := err.(*ScanError)
	if !ok {
		t.Fatalf("expected *ScanError, got %T", err)
	}
	if scanErr.Position.Offset != 3 {
		t.Errorf("fault should point at the first non-ASCII byte, got offset %d", scanErr.Position.Offset)
	}
	if len(tokens) != 1 || tokens[0].Lexeme != "caf" {
		t.Errorf("expected the ASCII prefix to lex as an identifier, got %v", tokens)
	}
}
