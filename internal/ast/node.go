package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

type NodeType int

const (
	// High-level constructs
	PROGRAM NodeType = iota
	IDENT

	// Declarations
	IMPORT_DECL
	GLOBAL_DECL
	FUNCTION_DECL
	FUNCTION_PARAM
	CLASS_DECL
	CONSTRUCTOR_DECL

	// Statements
	BLOCK_STMT
	EXPR_STMT
	RETURN_STMT
	VAR_DECL_STMT
	IF_STMT
	FOR_STMT
	WHILE_STMT
	BREAK_STMT
	CONTINUE_STMT
	VERSION_STMT

	// Types
	RAW_TYPE
	FUNCTION_TYPE
	LIST_TYPE
	ARRAY_TYPE
	MAP_TYPE

	// Expressions
	ASSIGN_EXPR
	CONDITIONAL_EXPR
	BINARY_EXPR
	UNARY_EXPR
	MEMBER_EXPR
	CALL_EXPR
	INDEX_EXPR
	CAST_EXPR
	LITERAL_EXPR
	IDENT_EXPR
	PAREN_EXPR
	ARRAY_LITERAL_EXPR
	MAP_LITERAL_EXPR
	FUNCTION_LITERAL_EXPR
)

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (d *ImportDecl) NodePos() Position    { return d.Pos }
func (d *ImportDecl) NodeEndPos() Position { return d.EndPos }
func (*ImportDecl) NodeType() NodeType     { return IMPORT_DECL }

func (d *GlobalDecl) NodePos() Position    { return d.Pos }
func (d *GlobalDecl) NodeEndPos() Position { return d.EndPos }
func (*GlobalDecl) NodeType() NodeType     { return GLOBAL_DECL }

func (d *FunctionDecl) NodePos() Position    { return d.Pos }
func (d *FunctionDecl) NodeEndPos() Position { return d.EndPos }
func (*FunctionDecl) NodeType() NodeType     { return FUNCTION_DECL }

func (p *FunctionParam) NodePos() Position    { return p.Pos }
func (p *FunctionParam) NodeEndPos() Position { return p.EndPos }
func (*FunctionParam) NodeType() NodeType     { return FUNCTION_PARAM }

func (d *ClassDecl) NodePos() Position    { return d.Pos }
func (d *ClassDecl) NodeEndPos() Position { return d.EndPos }
func (*ClassDecl) NodeType() NodeType     { return CLASS_DECL }

func (d *ConstructorDecl) NodePos() Position    { return d.Pos }
func (d *ConstructorDecl) NodeEndPos() Position { return d.EndPos }
func (*ConstructorDecl) NodeType() NodeType     { return CONSTRUCTOR_DECL }

func (s *BlockStmt) NodePos() Position    { return s.Pos }
func (s *BlockStmt) NodeEndPos() Position { return s.EndPos }
func (*BlockStmt) NodeType() NodeType     { return BLOCK_STMT }

func (s *ExprStmt) NodePos() Position    { return s.Pos }
func (s *ExprStmt) NodeEndPos() Position { return s.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (s *ReturnStmt) NodePos() Position    { return s.Pos }
func (s *ReturnStmt) NodeEndPos() Position { return s.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (s *VarDeclStmt) NodePos() Position    { return s.Pos }
func (s *VarDeclStmt) NodeEndPos() Position { return s.EndPos }
func (*VarDeclStmt) NodeType() NodeType     { return VAR_DECL_STMT }

func (s *IfStmt) NodePos() Position    { return s.Pos }
func (s *IfStmt) NodeEndPos() Position { return s.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (s *ForStmt) NodePos() Position    { return s.Pos }
func (s *ForStmt) NodeEndPos() Position { return s.EndPos }
func (*ForStmt) NodeType() NodeType     { return FOR_STMT }

func (s *WhileStmt) NodePos() Position    { return s.Pos }
func (s *WhileStmt) NodeEndPos() Position { return s.EndPos }
func (*WhileStmt) NodeType() NodeType     { return WHILE_STMT }

func (s *BreakStmt) NodePos() Position    { return s.Pos }
func (s *BreakStmt) NodeEndPos() Position { return s.EndPos }
func (*BreakStmt) NodeType() NodeType     { return BREAK_STMT }

func (s *ContinueStmt) NodePos() Position    { return s.Pos }
func (s *ContinueStmt) NodeEndPos() Position { return s.EndPos }
func (*ContinueStmt) NodeType() NodeType     { return CONTINUE_STMT }

func (s *VersionStmt) NodePos() Position    { return s.Pos }
func (s *VersionStmt) NodeEndPos() Position { return s.EndPos }
func (*VersionStmt) NodeType() NodeType     { return VERSION_STMT }

func (t *RawType) NodePos() Position    { return t.Pos }
func (t *RawType) NodeEndPos() Position { return t.EndPos }
func (*RawType) NodeType() NodeType     { return RAW_TYPE }

func (t *FunctionType) NodePos() Position    { return t.Pos }
func (t *FunctionType) NodeEndPos() Position { return t.EndPos }
func (*FunctionType) NodeType() NodeType     { return FUNCTION_TYPE }

func (t *ListType) NodePos() Position    { return t.Pos }
func (t *ListType) NodeEndPos() Position { return t.EndPos }
func (*ListType) NodeType() NodeType     { return LIST_TYPE }

func (t *ArrayType) NodePos() Position    { return t.Pos }
func (t *ArrayType) NodeEndPos() Position { return t.EndPos }
func (*ArrayType) NodeType() NodeType     { return ARRAY_TYPE }

func (t *MapType) NodePos() Position    { return t.Pos }
func (t *MapType) NodeEndPos() Position { return t.EndPos }
func (*MapType) NodeType() NodeType     { return MAP_TYPE }

func (e *AssignExpr) NodePos() Position    { return e.Pos }
func (e *AssignExpr) NodeEndPos() Position { return e.EndPos }
func (*AssignExpr) NodeType() NodeType     { return ASSIGN_EXPR }

func (e *ConditionalExpr) NodePos() Position    { return e.Pos }
func (e *ConditionalExpr) NodeEndPos() Position { return e.EndPos }
func (*ConditionalExpr) NodeType() NodeType     { return CONDITIONAL_EXPR }

func (e *BinaryExpr) NodePos() Position    { return e.Pos }
func (e *BinaryExpr) NodeEndPos() Position { return e.EndPos }
func (*BinaryExpr) NodeType() NodeType     { return BINARY_EXPR }

func (e *UnaryExpr) NodePos() Position    { return e.Pos }
func (e *UnaryExpr) NodeEndPos() Position { return e.EndPos }
func (*UnaryExpr) NodeType() NodeType     { return UNARY_EXPR }

func (e *MemberExpr) NodePos() Position    { return e.Pos }
func (e *MemberExpr) NodeEndPos() Position { return e.EndPos }
func (*MemberExpr) NodeType() NodeType     { return MEMBER_EXPR }

func (e *CallExpr) NodePos() Position    { return e.Pos }
func (e *CallExpr) NodeEndPos() Position { return e.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }

func (e *IndexExpr) NodePos() Position    { return e.Pos }
func (e *IndexExpr) NodeEndPos() Position { return e.EndPos }
func (*IndexExpr) NodeType() NodeType     { return INDEX_EXPR }

func (e *CastExpr) NodePos() Position    { return e.Pos }
func (e *CastExpr) NodeEndPos() Position { return e.EndPos }
func (*CastExpr) NodeType() NodeType     { return CAST_EXPR }

func (e *LiteralExpr) NodePos() Position    { return e.Pos }
func (e *LiteralExpr) NodeEndPos() Position { return e.EndPos }
func (*LiteralExpr) NodeType() NodeType     { return LITERAL_EXPR }

func (e *IdentExpr) NodePos() Position    { return e.Pos }
func (e *IdentExpr) NodeEndPos() Position { return e.EndPos }
func (*IdentExpr) NodeType() NodeType     { return IDENT_EXPR }

func (e *ParenExpr) NodePos() Position    { return e.Pos }
func (e *ParenExpr) NodeEndPos() Position { return e.EndPos }
func (*ParenExpr) NodeType() NodeType     { return PAREN_EXPR }

func (e *ArrayLiteralExpr) NodePos() Position    { return e.Pos }
func (e *ArrayLiteralExpr) NodeEndPos() Position { return e.EndPos }
func (*ArrayLiteralExpr) NodeType() NodeType     { return ARRAY_LITERAL_EXPR }

func (e *MapLiteralExpr) NodePos() Position    { return e.Pos }
func (e *MapLiteralExpr) NodeEndPos() Position { return e.EndPos }
func (*MapLiteralExpr) NodeType() NodeType     { return MAP_LITERAL_EXPR }

func (e *FunctionLiteralExpr) NodePos() Position    { return e.Pos }
func (e *FunctionLiteralExpr) NodeEndPos() Position { return e.EndPos }
func (*FunctionLiteralExpr) NodeType() NodeType     { return FUNCTION_LITERAL_EXPR }
