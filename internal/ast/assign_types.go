package ast

type AssignType int

const (
	ASSIGN AssignType = iota
	PLUS_ASSIGN
	MINUS_ASSIGN
	CAT_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	PIPE_ASSIGN
	AMPERSAND_ASSIGN
	CARET_ASSIGN
)

var assignLexemes = map[AssignType]string{
	ASSIGN:           "=",
	PLUS_ASSIGN:      "+=",
	MINUS_ASSIGN:     "-=",
	CAT_ASSIGN:       "~=",
	STAR_ASSIGN:      "*=",
	SLASH_ASSIGN:     "/=",
	PERCENT_ASSIGN:   "%=",
	PIPE_ASSIGN:      "|=",
	AMPERSAND_ASSIGN: "&=",
	CARET_ASSIGN:     "^=",
}

func (at AssignType) String() string {
	if s, ok := assignLexemes[at]; ok {
		return s
	}
	return "="
}
