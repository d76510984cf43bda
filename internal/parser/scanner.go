package parser

import (
	"fmt"
)

type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// Scanner turns source text into tokens over a half-open [from, to) range.
// In permissive mode an unmatched position stops the scan and returns the
// tokens accumulated so far instead of failing, which is what the editor
// integration uses on partially typed buffers.
type Scanner struct {
	source      string
	end         int
	tokens      []Token
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	permissive  bool
	prevType    TokenType
	hasPrev     bool
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		end:    len(source),
		line:   1,
		column: 1,
	}
}

// NewRangeScanner scans only source[from:to) while keeping absolute offsets
// and line/column numbers relative to the whole text.
func NewRangeScanner(source string, from, to int) *Scanner {
	if from < 0 {
		from = 0
	}
	if from > len(source) {
		from = len(source)
	}
	if to > len(source) {
		to = len(source)
	}
	if to < from {
		to = from
	}

	s := &Scanner{
		source:  source,
		end:     to,
		current: from,
		line:    1,
		column:  1,
	}
	for i := 0; i < from; i++ {
		if source[i] == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
	}
	return s
}

func (s *Scanner) SetPermissive(p bool) {
	s.permissive = p
}

func (s *Scanner) ScanTokens() ([]Token, error) {
	for {
		if err := s.skipWhitespaceAndComments(); err != nil {
			if s.permissive {
				return s.tokens, nil
			}
			return s.tokens, err
		}
		if s.isAtEnd() {
			break
		}

		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		if err := s.scanToken(); err != nil {
			if s.permissive {
				return s.tokens, nil
			}
			return s.tokens, err
		}
	}
	return s.tokens, nil
}

// skipWhitespaceAndComments absorbs any run of whitespace, line comments
// ("//" or "#") and block comments before the next token. A single loop
// covers the case of a block comment followed by further whitespace or
// comments.
func (s *Scanner) skipWhitespaceAndComments() error {
	for !s.isAtEnd() {
		switch c := s.peekChar(); {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance()
		case c == '#':
			s.skipLineComment()
		case c == '/' && s.peekCharAt(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peekCharAt(1) == '*':
			if err := s.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *Scanner) skipLineComment() {
	for !s.isAtEnd() && s.peekChar() != '\n' {
		s.advance()
	}
}

func (s *Scanner) skipBlockComment() error {
	commentLine, commentColumn, commentStart := s.line, s.column, s.current
	s.advance() // '/'
	s.advance() // '*'
	for !s.isAtEnd() {
		if s.peekChar() == '*' && s.peekCharAt(1) == '/' {
			s.advance()
			s.advance()
			return nil
		}
		s.advance()
	}
	return &ScanError{
		Message:  "unterminated block comment",
		Snippet:  s.snippetAt(commentStart),
		Position: Position{Line: commentLine, Column: commentColumn, Offset: commentStart},
		Length:   s.current - commentStart,
	}
}

// scanToken tries the lexical rules in fixed priority order: identifiers and
// keywords, then the operator table (longest lexeme first), then numeric
// literals, then string literals. A '-' directly followed by a digit joins
// the numeric literal unless the previous token could end an expression, in
// which case it stays the subtraction operator.
func (s *Scanner) scanToken() error {
	c := s.peekChar()

	if isAlpha(c) {
		s.scanIdentifier()
		return nil
	}

	if c == '-' && isDigit(s.peekCharAt(1)) && !s.prevEndsExpr() {
		s.advance()
		return s.scanNumber()
	}

	if s.scanOperator() {
		return nil
	}

	if isDigit(c) {
		return s.scanNumber()
	}

	if c == '"' || c == '\'' {
		return s.scanString(c)
	}

	return s.lexFault()
}

// operators lists every punctuation lexeme in match order. Each
// multi-character operator precedes its single-character prefix so the
// longest match always wins.
var operators = []struct {
	text string
	kind TokenType
}{
	{"..", DOT_DOT},
	{".", DOT},
	{"+=", PLUS_ASSIGN},
	{"+", PLUS},
	{"-=", MINUS_ASSIGN},
	{"-", MINUS},
	{"~=", TILDE_ASSIGN},
	{"~", TILDE},
	{"*=", STAR_ASSIGN},
	{"*", STAR},
	{"/=", SLASH_ASSIGN},
	{"/", SLASH},
	{"%=", PERCENT_ASSIGN},
	{"%", PERCENT},
	{"|=", PIPE_ASSIGN},
	{"||", OR},
	{"|", PIPE},
	{"&=", AMPERSAND_ASSIGN},
	{"&&", AND},
	{"&", AMPERSAND},
	{"^=", CARET_ASSIGN},
	{"^", CARET},
	{"==", EQUAL_EQUAL},
	{"=", EQUAL},
	{"!=", BANG_EQUAL},
	{"!", BANG},
	{"<=", LESS_EQUAL},
	{"<", LESS},
	{">=", GREATER_EQUAL},
	{">", GREATER},
	{"?", QUESTION},
	{":", COLON},
	{"(", LEFT_PAREN},
	{")", RIGHT_PAREN},
	{"[", LEFT_BRACKET},
	{"]", RIGHT_BRACKET},
	{"{", LEFT_BRACE},
	{"}", RIGHT_BRACE},
	{",", COMMA},
	{";", SEMICOLON},
}

func (s *Scanner) scanOperator() bool {
	for _, op := range operators {
		if s.matchLexeme(op.text) {
			s.addToken(op.kind)
			return true
		}
	}
	return false
}

func (s *Scanner) matchLexeme(text string) bool {
	if s.current+len(text) > s.end {
		return false
	}
	if s.source[s.current:s.current+len(text)] != text {
		return false
	}
	for range text {
		s.advance()
	}
	return true
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peekChar()) || isDigit(s.peekChar()) {
		s.advance()
	}
	s.addToken(lookupIdentifier(s.source[s.start:s.current]))
}

func (s *Scanner) scanNumber() error {
	if s.peekChar() == '0' && (s.peekCharAt(1) == 'x' || s.peekCharAt(1) == 'X') {
		s.advance()
		s.advance()
		if !isHexDigit(s.peekChar()) {
			return s.faultHere("hex literal missing digits after 0x")
		}
		for isHexDigit(s.peekChar()) {
			s.advance()
		}
		s.addToken(INT_NUMBER)
		return nil
	}

	for isDigit(s.peekChar()) {
		s.advance()
	}

	isFloat := false
	if s.peekChar() == '.' && isDigit(s.peekCharAt(1)) {
		isFloat = true
		s.advance()
		for isDigit(s.peekChar()) {
			s.advance()
		}
	}

	if isFloat {
		if c := s.peekChar(); c == 'e' || c == 'E' {
			next := s.peekCharAt(1)
			if isDigit(next) {
				s.advance()
				for isDigit(s.peekChar()) {
					s.advance()
				}
			} else if (next == '+' || next == '-') && isDigit(s.peekCharAt(2)) {
				s.advance()
				s.advance()
				for isDigit(s.peekChar()) {
					s.advance()
				}
			}
		}
		if c := s.peekChar(); c == 'f' || c == 'F' || c == 'd' || c == 'D' {
			s.advance()
		}
		s.addToken(FLOAT_NUMBER)
		return nil
	}

	s.addToken(INT_NUMBER)
	return nil
}

// scanString consumes a single- or double-quoted literal. The token lexeme
// keeps its quotes so that concatenating lexemes reproduces the source text;
// UnquoteString decodes the escapes where the grammar needs the value.
func (s *Scanner) scanString(quote byte) error {
	s.advance() // opening quote
	for !s.isAtEnd() && s.peekChar() != quote {
		c := s.peekChar()
		if c == '\n' {
			return s.faultHere("unterminated string literal")
		}
		if c == '\\' {
			s.advance()
			switch e := s.peekChar(); e {
			case '\'', '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				s.advance()
			case 'u':
				s.advance()
				for i := 0; i < 4; i++ {
					if !isHexDigit(s.peekChar()) {
						return s.faultHere("invalid unicode escape in string literal")
					}
					s.advance()
				}
			default:
				return s.faultHere(fmt.Sprintf("invalid escape sequence \\%c", e))
			}
			continue
		}
		s.advance()
	}
	if s.isAtEnd() {
		return s.faultHere("unterminated string literal")
	}
	s.advance() // closing quote
	s.addToken(STRING)
	return nil
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) peekChar() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekCharAt(n int) byte {
	if s.current+n >= s.end {
		return 0
	}
	return s.source[s.current+n]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= s.end
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
	})
	s.prevType = tokenType
	s.hasPrev = true
}

// prevEndsExpr reports whether the previously emitted token can terminate an
// expression. Only then is a following '-' an infix operator rather than the
// sign of a numeric literal.
func (s *Scanner) prevEndsExpr() bool {
	if !s.hasPrev {
		return false
	}
	switch s.prevType {
	case IDENTIFIER, INT_NUMBER, FLOAT_NUMBER, STRING,
		TRUE, FALSE, NULL, THIS,
		RIGHT_PAREN, RIGHT_BRACKET, RIGHT_BRACE:
		return true
	}
	return false
}

func (s *Scanner) lexFault() error {
	snippet := s.snippetAt(s.current)
	return &ScanError{
		Message:  fmt.Sprintf("unrecognized input: %q", snippet),
		Snippet:  snippet,
		Position: Position{Line: s.line, Column: s.column, Offset: s.current},
		Length:   len(snippet),
	}
}

func (s *Scanner) faultHere(message string) error {
	snippet := s.source[s.start:s.current]
	return &ScanError{
		Message:  message,
		Snippet:  snippet,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	}
}

// snippetAt extracts the run of non-whitespace text starting at off, capped
// for readability in diagnostics.
func (s *Scanner) snippetAt(off int) string {
	stop := off
	for stop < s.end && stop-off < 16 {
		c := s.source[stop]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			break
		}
		stop++
	}
	return s.source[off:stop]
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}
