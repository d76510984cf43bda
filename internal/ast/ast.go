package ast

// Position locates a node in its source file. Offset is the 0-based byte
// index; Line and Column are 1-based.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Program is the result of one parse call: ordered imports, then the named
// declarations, then the remaining top-level statements (globals included).
// It is built fresh per parse and never mutated after being returned.
type Program struct {
	Pos        Position
	EndPos     Position
	Imports    []*ImportDecl
	Functions  []*FunctionDecl
	Classes    []*ClassDecl
	Statements []Stmt
}

// ImportDecl is `import a.b.C;` with an optional `as Alias` rename.
type ImportDecl struct {
	Pos    Position
	EndPos Position
	Path   []Ident
	Alias  *Ident
}

// FunctionDecl is a named top-level function or a class method.
type FunctionDecl struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Params []*FunctionParam
	Return Type // nil when unspecified
	Body   *BlockStmt
}

type FunctionParam struct {
	Pos       Position
	EndPos    Position
	Name      Ident
	ParamType Type // nil when unspecified
}

// ClassDecl is `zenClass Name { ... }` with fields, constructors and
// methods in declaration order.
type ClassDecl struct {
	Pos          Position
	EndPos       Position
	Name         Ident
	Fields       []*VarDeclStmt
	Constructors []*ConstructorDecl
	Methods      []*FunctionDecl
}

type ConstructorDecl struct {
	Pos    Position
	EndPos Position
	Params []*FunctionParam
	Body   *BlockStmt
}
