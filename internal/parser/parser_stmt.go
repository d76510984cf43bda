package parser

import "zenscript/internal/ast"

func (p *Parser) parseStatement() (ast.Stmt, error) {
	tok, ok := p.stream.Peek()
	if !ok {
		return nil, p.faultAtCurrent("expected statement")
	}

	switch tok.Type {
	case LEFT_BRACE:
		return p.parseBlock()
	case RETURN:
		return p.parseReturn()
	case VAR, VAL:
		return p.parseVarDecl()
	case IF:
		return p.parseIf()
	case FOR:
		return p.parseFor()
	case WHILE:
		return p.parseWhile()
	case BREAK:
		p.stream.Next()
		semi, err := p.stream.Require(SEMICOLON, "expected ';' after 'break'")
		if err != nil {
			return nil, err
		}
		return &ast.BreakStmt{Pos: p.makePos(tok), EndPos: p.makeEndPos(semi)}, nil
	case CONTINUE:
		p.stream.Next()
		semi, err := p.stream.Require(SEMICOLON, "expected ';' after 'continue'")
		if err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{Pos: p.makePos(tok), EndPos: p.makeEndPos(semi)}, nil
	case VERSION:
		return p.parseVersion()
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.stream.Require(SEMICOLON, "expected ';' after expression")
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: p.makeEndPos(semi),
		Value:  expr,
	}, nil
}

func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	lb, err := p.stream.Require(LEFT_BRACE, "expected '{' to start block")
	if err != nil {
		return nil, err
	}

	block := &ast.BlockStmt{Pos: p.makePos(lb)}
	for {
		if rb, ok := p.stream.Optional(RIGHT_BRACE); ok {
			block.EndPos = p.makeEndPos(rb)
			return block, nil
		}
		if !p.stream.HasMore() {
			return nil, &ParseError{
				Message:  "expected '}' to close block, found end of input",
				Position: p.endPosition(),
			}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Items = append(block.Items, stmt)
	}
}

func (p *Parser) parseReturn() (ast.Stmt, error) {
	keyword, _ := p.stream.Next()

	if semi, ok := p.stream.Optional(SEMICOLON); ok {
		return &ast.ReturnStmt{Pos: p.makePos(keyword), EndPos: p.makeEndPos(semi)}, nil
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.stream.Require(SEMICOLON, "expected ';' after return value")
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{
		Pos:    p.makePos(keyword),
		EndPos: p.makeEndPos(semi),
		Value:  value,
	}, nil
}

// parseVarDecl parses `var x [as T] [= e];` and the read-only `val` form.
func (p *Parser) parseVarDecl() (*ast.VarDeclStmt, error) {
	keyword, _ := p.stream.Next()

	name, err := p.stream.Require(IDENTIFIER, "expected variable name")
	if err != nil {
		return nil, err
	}

	decl := &ast.VarDeclStmt{
		Pos:   p.makePos(keyword),
		Final: keyword.Type == VAL,
		Name:  p.makeIdent(name),
	}

	if _, ok := p.stream.Optional(AS); ok {
		varType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		decl.VarType = varType
	}

	if _, ok := p.stream.Optional(EQUAL); ok {
		init, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		decl.Init = init
	}

	semi, err := p.stream.Require(SEMICOLON, "expected ';' after variable declaration")
	if err != nil {
		return nil, err
	}
	decl.EndPos = p.makeEndPos(semi)
	return decl, nil
}

func (p *Parser) parseIf() (ast.Stmt, error) {
	keyword, _ := p.stream.Next()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	thenStmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{
		Pos:    p.makePos(keyword),
		EndPos: thenStmt.NodeEndPos(),
		Cond:   cond,
		Then:   thenStmt,
	}
	if _, ok := p.stream.Optional(ELSE); ok {
		elseStmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseStmt
		stmt.EndPos = elseStmt.NodeEndPos()
	}
	return stmt, nil
}

// parseFor parses `for a, b in expr stmt`.
func (p *Parser) parseFor() (ast.Stmt, error) {
	keyword, _ := p.stream.Next()

	first, err := p.stream.Require(IDENTIFIER, "expected loop variable name")
	if err != nil {
		return nil, err
	}
	names := []ast.Ident{p.makeIdent(first)}
	for {
		if _, ok := p.stream.Optional(COMMA); !ok {
			break
		}
		name, err := p.stream.Require(IDENTIFIER, "expected loop variable name after ','")
		if err != nil {
			return nil, err
		}
		names = append(names, p.makeIdent(name))
	}

	if _, err := p.stream.Require(IN, "expected 'in' in for statement"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ast.ForStmt{
		Pos:      p.makePos(keyword),
		EndPos:   body.NodeEndPos(),
		Names:    names,
		Iterable: iterable,
		Body:     body,
	}, nil
}

func (p *Parser) parseWhile() (ast.Stmt, error) {
	keyword, _ := p.stream.Next()

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	return &ast.WhileStmt{
		Pos:    p.makePos(keyword),
		EndPos: body.NodeEndPos(),
		Cond:   cond,
		Body:   body,
	}, nil
}

func (p *Parser) parseVersion() (ast.Stmt, error) {
	keyword, _ := p.stream.Next()

	number, err := p.stream.Require(INT_NUMBER, "expected version number")
	if err != nil {
		return nil, err
	}
	semi, err := p.stream.Require(SEMICOLON, "expected ';' after version statement")
	if err != nil {
		return nil, err
	}
	return &ast.VersionStmt{
		Pos:    p.makePos(keyword),
		EndPos: p.makeEndPos(semi),
		Number: number.Lexeme,
	}, nil
}
