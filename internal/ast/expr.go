package ast

type Expr interface {
	Node
	isExpr()
}

type LiteralKind int

const (
	INT_LITERAL LiteralKind = iota
	FLOAT_LITERAL
	STRING_LITERAL
	BOOL_LITERAL
	NULL_LITERAL
)

// AssignExpr covers plain and compound assignment. Right-associative: Right
// may itself be another AssignExpr.
type AssignExpr struct {
	Pos    Position
	EndPos Position
	Op     AssignType
	Left   Expr
	Right  Expr
}

type ConditionalExpr struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Expr
	Else   Expr
}

// BinaryExpr covers the logical, bitwise, comparison, contains, arithmetic,
// concatenation and range operators. Op is the operator as written, so a
// range carries ".." or "to" and containment carries "in" or "has".
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// MemberExpr is `target.member`; Member is the identifier, keyword or
// unquoted string used after the dot.
type MemberExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Member string
}

type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

type IndexExpr struct {
	Pos    Position
	EndPos Position
	Target Expr
	Index  Expr
}

// CastExpr is the postfix `expr as Type` conversion.
type CastExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
	AsType Type
}

// LiteralExpr keeps the literal exactly as written; string values stay
// quoted and are decoded on demand by the consumer.
type LiteralExpr struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}

type IdentExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

type ParenExpr struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

type ArrayLiteralExpr struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

type MapEntry struct {
	Key   Expr
	Value Expr
}

type MapLiteralExpr struct {
	Pos     Position
	EndPos  Position
	Entries []MapEntry
}

// FunctionLiteralExpr is an anonymous `function(params) [as R] { ... }`.
type FunctionLiteralExpr struct {
	Pos    Position
	EndPos Position
	Params []*FunctionParam
	Return Type // nil when unspecified
	Body   *BlockStmt
}

func (*AssignExpr) isExpr()          {}
func (*ConditionalExpr) isExpr()     {}
func (*BinaryExpr) isExpr()          {}
func (*UnaryExpr) isExpr()           {}
func (*MemberExpr) isExpr()          {}
func (*CallExpr) isExpr()            {}
func (*IndexExpr) isExpr()           {}
func (*CastExpr) isExpr()            {}
func (*LiteralExpr) isExpr()         {}
func (*IdentExpr) isExpr()           {}
func (*ParenExpr) isExpr()           {}
func (*ArrayLiteralExpr) isExpr()    {}
func (*MapLiteralExpr) isExpr()      {}
func (*FunctionLiteralExpr) isExpr() {}
