package parser

// KEYWORDS maps reserved words to their token types. It is populated once at
// package load and must never be written to afterwards; concurrent parses
// share it for reads.
var KEYWORDS = map[string]TokenType{
	"any":                ANY,
	"bool":               BOOL,
	"byte":               BYTE,
	"short":              SHORT,
	"int":                INT,
	"long":               LONG,
	"float":              FLOAT,
	"double":             DOUBLE,
	"string":             STRING_TYPE,
	"var":                VAR,
	"val":                VAL,
	"global":             GLOBAL,
	"static":             STATIC,
	"import":             IMPORT,
	"function":           FUNCTION,
	"as":                 AS,
	"to":                 TO,
	"in":                 IN,
	"has":                HAS,
	"instanceof":         INSTANCEOF,
	"this":               THIS,
	"if":                 IF,
	"else":               ELSE,
	"for":                FOR,
	"while":              WHILE,
	"break":              BREAK,
	"continue":           CONTINUE,
	"return":             RETURN,
	"version":            VERSION,
	"zenClass":           ZEN_CLASS,
	"zenConstructor":     ZEN_CONSTRUCTOR,
	"frigginClass":       ZEN_CLASS,
	"frigginConstructor": ZEN_CONSTRUCTOR,
	"true":               TRUE,
	"false":              FALSE,
	"null":               NULL,
}

func lookupIdentifier(text string) TokenType {
	if t, ok := KEYWORDS[text]; ok {
		return t
	}
	return IDENTIFIER
}
