package ast

type Stmt interface {
	Node
	isStmt()
}

type BlockStmt struct {
	Pos    Position
	EndPos Position
	Items  []Stmt
}

type ExprStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expr // nil for a bare return
}

// VarDeclStmt is `var x [as T] [= e];` or the read-only `val` form. Also
// used for class fields.
type VarDeclStmt struct {
	Pos     Position
	EndPos  Position
	Final   bool
	Name    Ident
	VarType Type // nil when unspecified
	Init    Expr // nil when unspecified
}

// GlobalDecl is `global x [as T] = e;` (or `static`). The type defaults to
// raw `any` when unspecified and the initializer is mandatory.
type GlobalDecl struct {
	Pos     Position
	EndPos  Position
	Static  bool
	Name    Ident
	VarType Type
	Init    Expr
}

type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Stmt
	Else   Stmt // nil when absent
}

// ForStmt is `for a, b in expr stmt`.
type ForStmt struct {
	Pos      Position
	EndPos   Position
	Names    []Ident
	Iterable Expr
	Body     Stmt
}

type WhileStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   Stmt
}

type BreakStmt struct {
	Pos    Position
	EndPos Position
}

type ContinueStmt struct {
	Pos    Position
	EndPos Position
}

// VersionStmt is the `version N;` engine directive.
type VersionStmt struct {
	Pos    Position
	EndPos Position
	Number string
}

func (*BlockStmt) isStmt()    {}
func (*ExprStmt) isStmt()     {}
func (*ReturnStmt) isStmt()   {}
func (*VarDeclStmt) isStmt()  {}
func (*GlobalDecl) isStmt()   {}
func (*IfStmt) isStmt()       {}
func (*ForStmt) isStmt()      {}
func (*WhileStmt) isStmt()    {}
func (*BreakStmt) isStmt()    {}
func (*ContinueStmt) isStmt() {}
func (*VersionStmt) isStmt()  {}
