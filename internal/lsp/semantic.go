package lsp

import (
	"zenscript/internal/parser"
)

// Indices into SemanticTokenTypes.
const (
	tokenTypeNamespace = iota
	tokenTypeType
	tokenTypeFunction
	tokenTypeVariable
	tokenTypeProperty
	tokenTypeKeyword
	tokenTypeNumber
	tokenTypeString
	tokenTypeOperator
)

// SemanticToken is one highlighted span before delta encoding.
type SemanticToken struct {
	Line           uint32 // 0-based
	StartChar      uint32 // 0-based
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens scans a document permissively and classifies every
// token it could produce. A source with a lexical fault still yields the
// prefix that scanned cleanly.
func collectSemanticTokens(source string) []SemanticToken {
	scanner := parser.NewScanner(source)
	scanner.SetPermissive(true)
	tokens, _ := scanner.ScanTokens()

	result := make([]SemanticToken, 0, len(tokens))
	for _, token := range tokens {
		tokenType, ok := classifyToken(token.Type)
		if !ok {
			continue
		}
		result = append(result, SemanticToken{
			Line:      uint32(token.Position.Line - 1),
			StartChar: uint32(token.Position.Column - 1),
			Length:    uint32(len(token.Lexeme)),
			TokenType: tokenType,
		})
	}
	return result
}

func classifyToken(tt parser.TokenType) (int, bool) {
	switch tt {
	case parser.INT_NUMBER, parser.FLOAT_NUMBER:
		return tokenTypeNumber, true
	case parser.STRING:
		return tokenTypeString, true
	case parser.IDENTIFIER:
		return tokenTypeVariable, true
	case parser.ANY, parser.BOOL, parser.BYTE, parser.SHORT, parser.INT,
		parser.LONG, parser.FLOAT, parser.DOUBLE, parser.STRING_TYPE:
		return tokenTypeType, true
	case parser.FUNCTION:
		return tokenTypeFunction, true
	case parser.IMPORT:
		return tokenTypeNamespace, true
	case parser.VAR, parser.VAL, parser.GLOBAL, parser.STATIC,
		parser.AS, parser.TO, parser.IN, parser.HAS, parser.INSTANCEOF,
		parser.THIS, parser.IF, parser.ELSE, parser.FOR, parser.WHILE,
		parser.BREAK, parser.CONTINUE, parser.RETURN, parser.VERSION,
		parser.ZEN_CLASS, parser.ZEN_CONSTRUCTOR,
		parser.TRUE, parser.FALSE, parser.NULL:
		return tokenTypeKeyword, true
	case parser.PLUS, parser.PLUS_ASSIGN, parser.MINUS, parser.MINUS_ASSIGN,
		parser.TILDE, parser.TILDE_ASSIGN, parser.STAR, parser.STAR_ASSIGN,
		parser.SLASH, parser.SLASH_ASSIGN, parser.PERCENT, parser.PERCENT_ASSIGN,
		parser.OR, parser.PIPE, parser.PIPE_ASSIGN,
		parser.AND, parser.AMPERSAND, parser.AMPERSAND_ASSIGN,
		parser.CARET, parser.CARET_ASSIGN,
		parser.BANG, parser.BANG_EQUAL, parser.EQUAL, parser.EQUAL_EQUAL,
		parser.LESS, parser.LESS_EQUAL, parser.GREATER, parser.GREATER_EQUAL,
		parser.QUESTION, parser.DOT_DOT:
		return tokenTypeOperator, true
	default:
		return 0, false
	}
}
