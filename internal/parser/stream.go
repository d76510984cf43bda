package parser

// TokenStream is the only way grammar code touches tokens: a strictly
// forward cursor over an immutable token slice. Nothing ever un-consumes a
// token; lookahead beyond one token must go through Peek.
type TokenStream interface {
	// Peek returns the next token without consuming it.
	Peek() (Token, bool)

	// Next consumes and returns the next token.
	Next() (Token, bool)

	// Optional consumes and returns the next token only when its type
	// matches; otherwise the stream is left untouched.
	Optional(tt TokenType) (Token, bool)

	// Require consumes and returns the next token when its type matches and
	// aborts the parse with a fault carrying message otherwise.
	Require(tt TokenType, message string) (Token, error)

	// HasMore reports whether any tokens remain.
	HasMore() bool
}

type tokenStream struct {
	tokens []Token
	pos    int
}

func NewTokenStream(tokens []Token) TokenStream {
	return &tokenStream{tokens: tokens}
}

func (s *tokenStream) Peek() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[s.pos], true
}

func (s *tokenStream) Next() (Token, bool) {
	if s.pos >= len(s.tokens) {
		return Token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

func (s *tokenStream) Optional(tt TokenType) (Token, bool) {
	if s.pos >= len(s.tokens) || s.tokens[s.pos].Type != tt {
		return Token{}, false
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, true
}

func (s *tokenStream) Require(tt TokenType, message string) (Token, error) {
	if s.pos >= len(s.tokens) {
		return Token{}, &ParseError{
			Message:  message + ", found end of input",
			Position: s.endPosition(),
		}
	}
	tok := s.tokens[s.pos]
	if tok.Type != tt {
		return Token{}, &ParseError{
			Message:  message + ", found '" + tok.Lexeme + "'",
			Position: tok.Position,
		}
	}
	s.pos++
	return tok, nil
}

func (s *tokenStream) HasMore() bool {
	return s.pos < len(s.tokens)
}

func (s *tokenStream) endPosition() Position {
	if len(s.tokens) == 0 {
		return Position{Line: 1, Column: 1}
	}
	last := s.tokens[len(s.tokens)-1]
	return Position{
		Line:   last.Position.Line,
		Column: last.Position.Column + len(last.Lexeme),
		Offset: last.Position.Offset + len(last.Lexeme),
	}
}
