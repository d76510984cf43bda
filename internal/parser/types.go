package parser

type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota

	// Identifiers + literals
	IDENTIFIER
	INT_NUMBER
	FLOAT_NUMBER
	STRING

	// Primitive type keywords
	ANY
	BOOL
	BYTE
	SHORT
	INT
	LONG
	FLOAT
	DOUBLE
	STRING_TYPE

	// Keywords
	VAR
	VAL
	GLOBAL
	STATIC
	IMPORT
	FUNCTION
	AS
	TO
	IN
	HAS
	INSTANCEOF
	THIS
	IF
	ELSE
	FOR
	WHILE
	BREAK
	CONTINUE
	RETURN
	VERSION
	ZEN_CLASS
	ZEN_CONSTRUCTOR
	TRUE
	FALSE
	NULL

	// Operators
	PLUS
	PLUS_ASSIGN
	MINUS
	MINUS_ASSIGN
	TILDE
	TILDE_ASSIGN
	STAR
	STAR_ASSIGN
	SLASH
	SLASH_ASSIGN
	PERCENT
	PERCENT_ASSIGN
	OR
	PIPE
	PIPE_ASSIGN
	AND
	AMPERSAND
	AMPERSAND_ASSIGN
	CARET
	CARET_ASSIGN
	BANG
	BANG_EQUAL
	EQUAL
	EQUAL_EQUAL
	LESS
	LESS_EQUAL
	GREATER
	GREATER_EQUAL
	QUESTION

	// Separators
	COMMA
	DOT
	DOT_DOT
	SEMICOLON
	COLON

	// Brackets
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACE
	RIGHT_BRACE
	LEFT_BRACKET
	RIGHT_BRACKET
)

var tokenNames = map[TokenType]string{
	ILLEGAL:          "ILLEGAL",
	IDENTIFIER:       "IDENTIFIER",
	INT_NUMBER:       "INT_NUMBER",
	FLOAT_NUMBER:     "FLOAT_NUMBER",
	STRING:           "STRING",
	ANY:              "ANY",
	BOOL:             "BOOL",
	BYTE:             "BYTE",
	SHORT:            "SHORT",
	INT:              "INT",
	LONG:             "LONG",
	FLOAT:            "FLOAT",
	DOUBLE:           "DOUBLE",
	STRING_TYPE:      "STRING_TYPE",
	VAR:              "VAR",
	VAL:              "VAL",
	GLOBAL:           "GLOBAL",
	STATIC:           "STATIC",
	IMPORT:           "IMPORT",
	FUNCTION:         "FUNCTION",
	AS:               "AS",
	TO:               "TO",
	IN:               "IN",
	HAS:              "HAS",
	INSTANCEOF:       "INSTANCEOF",
	THIS:             "THIS",
	IF:               "IF",
	ELSE:             "ELSE",
	FOR:              "FOR",
	WHILE:            "WHILE",
	BREAK:            "BREAK",
	CONTINUE:         "CONTINUE",
	RETURN:           "RETURN",
	VERSION:          "VERSION",
	ZEN_CLASS:        "ZEN_CLASS",
	ZEN_CONSTRUCTOR:  "ZEN_CONSTRUCTOR",
	TRUE:             "TRUE",
	FALSE:            "FALSE",
	NULL:             "NULL",
	PLUS:             "PLUS",
	PLUS_ASSIGN:      "PLUS_ASSIGN",
	MINUS:            "MINUS",
	MINUS_ASSIGN:     "MINUS_ASSIGN",
	TILDE:            "TILDE",
	TILDE_ASSIGN:     "TILDE_ASSIGN",
	STAR:             "STAR",
	STAR_ASSIGN:      "STAR_ASSIGN",
	SLASH:            "SLASH",
	SLASH_ASSIGN:     "SLASH_ASSIGN",
	PERCENT:          "PERCENT",
	PERCENT_ASSIGN:   "PERCENT_ASSIGN",
	OR:               "OR",
	PIPE:             "PIPE",
	PIPE_ASSIGN:      "PIPE_ASSIGN",
	AND:              "AND",
	AMPERSAND:        "AMPERSAND",
	AMPERSAND_ASSIGN: "AMPERSAND_ASSIGN",
	CARET:            "CARET",
	CARET_ASSIGN:     "CARET_ASSIGN",
	BANG:             "BANG",
	BANG_EQUAL:       "BANG_EQUAL",
	EQUAL:            "EQUAL",
	EQUAL_EQUAL:      "EQUAL_EQUAL",
	LESS:             "LESS",
	LESS_EQUAL:       "LESS_EQUAL",
	GREATER:          "GREATER",
	GREATER_EQUAL:    "GREATER_EQUAL",
	QUESTION:         "QUESTION",
	COMMA:            "COMMA",
	DOT:              "DOT",
	DOT_DOT:          "DOT_DOT",
	SEMICOLON:        "SEMICOLON",
	COLON:            "COLON",
	LEFT_PAREN:       "LEFT_PAREN",
	RIGHT_PAREN:      "RIGHT_PAREN",
	LEFT_BRACE:       "LEFT_BRACE",
	RIGHT_BRACE:      "RIGHT_BRACE",
	LEFT_BRACKET:     "LEFT_BRACKET",
	RIGHT_BRACKET:    "RIGHT_BRACKET",
}

func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
