package parser

import "zenscript/internal/ast"

// Parser consumes a token stream and builds the AST. All grammar rules go
// through the TokenStream protocol; any fault aborts the whole parse and
// propagates out as a *ParseError.
type Parser struct {
	filename string
	tokens   []Token
	stream   TokenStream
}

func NewParser(filename string, tokens []Token) *Parser {
	return &Parser{
		filename: filename,
		tokens:   tokens,
		stream:   NewTokenStream(tokens),
	}
}

// ParseSource scans and parses a whole source text.
func ParseSource(filename, source string) (*ast.Program, error) {
	scanner := NewScanner(source)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		return nil, err
	}
	return NewParser(filename, tokens).ParseProgram()
}

// ParseSourceRange parses only the half-open [from, to) slice of the text,
// which lets editor tooling analyze part of a buffer.
func ParseSourceRange(filename, source string, from, to int) (*ast.Program, error) {
	scanner := NewRangeScanner(source, from, to)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		return nil, err
	}
	return NewParser(filename, tokens).ParseProgram()
}

// ParseProgram parses leading import declarations, then dispatches on the
// next token until the stream is exhausted: global/static declarations,
// function declarations, class declarations, and plain statements.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := &ast.Program{
		Pos: ast.Position{Filename: p.filename, Line: 1, Column: 1},
	}
	if tok, ok := p.stream.Peek(); ok {
		program.Pos = p.makePos(tok)
	}
	program.EndPos = program.Pos

	for {
		tok, ok := p.stream.Optional(IMPORT)
		if !ok {
			break
		}
		imp, err := p.parseImport(tok)
		if err != nil {
			return nil, err
		}
		program.Imports = append(program.Imports, imp)
		program.EndPos = imp.EndPos
	}

	for p.stream.HasMore() {
		tok, _ := p.stream.Peek()
		switch tok.Type {
		case GLOBAL, STATIC:
			decl, err := p.parseGlobal()
			if err != nil {
				return nil, err
			}
			program.Statements = append(program.Statements, decl)
			program.EndPos = decl.EndPos
		case FUNCTION:
			fn, err := p.parseFunctionDecl()
			if err != nil {
				return nil, err
			}
			program.Functions = append(program.Functions, fn)
			program.EndPos = fn.EndPos
		case ZEN_CLASS:
			cls, err := p.parseClassDecl()
			if err != nil {
				return nil, err
			}
			program.Classes = append(program.Classes, cls)
			program.EndPos = cls.EndPos
		case IMPORT:
			return nil, &ParseError{
				Message:  "import declarations must precede all other statements",
				Position: tok.Position,
			}
		default:
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			program.Statements = append(program.Statements, stmt)
			program.EndPos = stmt.NodeEndPos()
		}
	}

	return program, nil
}

// parseImport parses the dot-separated path and optional `as` rename after
// an already consumed `import` keyword.
func (p *Parser) parseImport(startToken Token) (*ast.ImportDecl, error) {
	first, err := p.stream.Require(IDENTIFIER, "expected identifier after 'import'")
	if err != nil {
		return nil, err
	}
	path := []ast.Ident{p.makeIdent(first)}

	for {
		if _, ok := p.stream.Optional(DOT); !ok {
			break
		}
		seg, err := p.stream.Require(IDENTIFIER, "expected identifier after '.' in import path")
		if err != nil {
			return nil, err
		}
		path = append(path, p.makeIdent(seg))
	}

	var alias *ast.Ident
	if _, ok := p.stream.Optional(AS); ok {
		tok, err := p.stream.Require(IDENTIFIER, "expected name after 'as' in import declaration")
		if err != nil {
			return nil, err
		}
		ident := p.makeIdent(tok)
		alias = &ident
	}

	semi, err := p.stream.Require(SEMICOLON, "expected ';' after import declaration")
	if err != nil {
		return nil, err
	}

	return &ast.ImportDecl{
		Pos:    p.makePos(startToken),
		EndPos: p.makeEndPos(semi),
		Path:   path,
		Alias:  alias,
	}, nil
}

// parseGlobal parses `global x [as T] = e;` (or `static`). The type
// defaults to raw `any`; the initializer is mandatory.
func (p *Parser) parseGlobal() (*ast.GlobalDecl, error) {
	keyword, _ := p.stream.Next()

	name, err := p.stream.Require(IDENTIFIER, "expected global variable name")
	if err != nil {
		return nil, err
	}

	var varType ast.Type
	if _, ok := p.stream.Optional(AS); ok {
		varType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	} else {
		varType = &ast.RawType{
			Pos:    p.makePos(name),
			EndPos: p.makeEndPos(name),
			Name:   "any",
		}
	}

	if _, err := p.stream.Require(EQUAL, "global variable must have an initializer"); err != nil {
		return nil, err
	}
	init, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.stream.Require(SEMICOLON, "expected ';' after global declaration")
	if err != nil {
		return nil, err
	}

	return &ast.GlobalDecl{
		Pos:     p.makePos(keyword),
		EndPos:  p.makeEndPos(semi),
		Static:  keyword.Type == STATIC,
		Name:    p.makeIdent(name),
		VarType: varType,
		Init:    init,
	}, nil
}

func (p *Parser) parseFunctionDecl() (*ast.FunctionDecl, error) {
	startToken, _ := p.stream.Next()

	name, err := p.stream.Require(IDENTIFIER, "expected function name")
	if err != nil {
		return nil, err
	}
	params, err := p.parseFunctionParams()
	if err != nil {
		return nil, err
	}
	returnType, err := p.parseOptionalReturnType()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionDecl{
		Pos:    p.makePos(startToken),
		EndPos: body.EndPos,
		Name:   p.makeIdent(name),
		Params: params,
		Return: returnType,
		Body:   body,
	}, nil
}

// parseFunctionParams parses the parenthesized parameter list shared by
// function declarations, constructors and function literals. Each parameter
// is a name with an optional `as Type`.
func (p *Parser) parseFunctionParams() ([]*ast.FunctionParam, error) {
	if _, err := p.stream.Require(LEFT_PAREN, "expected '(' to start parameter list"); err != nil {
		return nil, err
	}

	var params []*ast.FunctionParam
	if _, ok := p.stream.Optional(RIGHT_PAREN); ok {
		return params, nil
	}

	for {
		name, err := p.stream.Require(IDENTIFIER, "expected parameter name")
		if err != nil {
			return nil, err
		}
		param := &ast.FunctionParam{
			Pos:    p.makePos(name),
			EndPos: p.makeEndPos(name),
			Name:   p.makeIdent(name),
		}
		if _, ok := p.stream.Optional(AS); ok {
			paramType, err := p.parseType()
			if err != nil {
				return nil, err
			}
			param.ParamType = paramType
			param.EndPos = paramType.NodeEndPos()
		}
		params = append(params, param)

		if _, ok := p.stream.Optional(COMMA); ok {
			continue
		}
		if _, err := p.stream.Require(RIGHT_PAREN, "expected ')' to close parameter list"); err != nil {
			return nil, err
		}
		return params, nil
	}
}

func (p *Parser) parseOptionalReturnType() (ast.Type, error) {
	if _, ok := p.stream.Optional(AS); !ok {
		return nil, nil
	}
	return p.parseType()
}

// parseClassDecl parses `zenClass Name { fields, constructors, methods }`.
func (p *Parser) parseClassDecl() (*ast.ClassDecl, error) {
	startToken, _ := p.stream.Next()

	name, err := p.stream.Require(IDENTIFIER, "expected class name")
	if err != nil {
		return nil, err
	}
	if _, err := p.stream.Require(LEFT_BRACE, "expected '{' to start class body"); err != nil {
		return nil, err
	}

	cls := &ast.ClassDecl{
		Pos:  p.makePos(startToken),
		Name: p.makeIdent(name),
	}

	for {
		if rb, ok := p.stream.Optional(RIGHT_BRACE); ok {
			cls.EndPos = p.makeEndPos(rb)
			return cls, nil
		}

		tok, ok := p.stream.Peek()
		if !ok {
			return nil, &ParseError{
				Message:  "expected '}' to close class body, found end of input",
				Position: p.endPosition(),
			}
		}

		switch tok.Type {
		case VAR, VAL:
			field, err := p.parseVarDecl()
			if err != nil {
				return nil, err
			}
			cls.Fields = append(cls.Fields, field)
		case ZEN_CONSTRUCTOR:
			ctor, err := p.parseConstructorDecl()
			if err != nil {
				return nil, err
			}
			cls.Constructors = append(cls.Constructors, ctor)
		case FUNCTION:
			method, err := p.parseFunctionDecl()
			if err != nil {
				return nil, err
			}
			cls.Methods = append(cls.Methods, method)
		default:
			return nil, &ParseError{
				Message:  "unexpected token in class body: '" + tok.Lexeme + "'",
				Position: tok.Position,
			}
		}
	}
}

func (p *Parser) parseConstructorDecl() (*ast.ConstructorDecl, error) {
	startToken, _ := p.stream.Next()

	params, err := p.parseFunctionParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.ConstructorDecl{
		Pos:    p.makePos(startToken),
		EndPos: body.EndPos,
		Params: params,
		Body:   body,
	}, nil
}

// Helpers shared by the grammar files.

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset + len(tok.Lexeme),
		Line:     tok.Position.Line,
		Column:   tok.Position.Column + len(tok.Lexeme),
	}
}

func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}

// endPosition is where faults point when the stream is exhausted.
func (p *Parser) endPosition() Position {
	if len(p.tokens) == 0 {
		return Position{Line: 1, Column: 1}
	}
	last := p.tokens[len(p.tokens)-1]
	return Position{
		Line:   last.Position.Line,
		Column: last.Position.Column + len(last.Lexeme),
		Offset: last.Position.Offset + len(last.Lexeme),
	}
}

func (p *Parser) faultAtCurrent(message string) error {
	if tok, ok := p.stream.Peek(); ok {
		return &ParseError{
			Message:  message + ", found '" + tok.Lexeme + "'",
			Position: tok.Position,
		}
	}
	return &ParseError{
		Message:  message + ", found end of input",
		Position: p.endPosition(),
	}
}
