package parser

import "zenscript/internal/ast"

// The expression grammar is precedence climbing, lowest precedence first:
// assignment, conditional, ||, &&, |, ^, &, comparison/contains, additive,
// multiplicative, unary, postfix, primary. Each level parses the next one
// as its operand and folds same-level operators leftward, except assignment
// and unary which recurse for right associativity.

var assignOps = map[TokenType]ast.AssignType{
	EQUAL:            ast.ASSIGN,
	PLUS_ASSIGN:      ast.PLUS_ASSIGN,
	MINUS_ASSIGN:     ast.MINUS_ASSIGN,
	TILDE_ASSIGN:     ast.CAT_ASSIGN,
	STAR_ASSIGN:      ast.STAR_ASSIGN,
	SLASH_ASSIGN:     ast.SLASH_ASSIGN,
	PERCENT_ASSIGN:   ast.PERCENT_ASSIGN,
	PIPE_ASSIGN:      ast.PIPE_ASSIGN,
	AMPERSAND_ASSIGN: ast.AMPERSAND_ASSIGN,
	CARET_ASSIGN:     ast.CARET_ASSIGN,
}

// ParseExpression consumes exactly one expression from the stream.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	return p.parseExpression()
}

func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseAssign()
}

func (p *Parser) parseAssign() (ast.Expr, error) {
	left, err := p.parseConditional()
	if err != nil {
		return nil, err
	}

	tok, ok := p.stream.Peek()
	if !ok {
		return left, nil
	}
	op, isAssign := assignOps[tok.Type]
	if !isAssign {
		return left, nil
	}
	p.stream.Next()

	// Right-associative: a = b = 3 nests to the right.
	right, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	return &ast.AssignExpr{
		Pos:    left.NodePos(),
		EndPos: right.NodeEndPos(),
		Op:     op,
		Left:   left,
		Right:  right,
	}, nil
}

func (p *Parser) parseConditional() (ast.Expr, error) {
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if _, ok := p.stream.Optional(QUESTION); !ok {
		return cond, nil
	}
	thenExpr, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	if _, err := p.stream.Require(COLON, "expected ':' in conditional expression"); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpr{
		Pos:    cond.NodePos(),
		EndPos: elseExpr.NodeEndPos(),
		Cond:   cond,
		Then:   thenExpr,
		Else:   elseExpr,
	}, nil
}

func (p *Parser) parseOr() (ast.Expr, error) {
	return p.parseBinaryChain(p.parseAnd, OR)
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	return p.parseBinaryChain(p.parseBitOr, AND)
}

func (p *Parser) parseBitOr() (ast.Expr, error) {
	return p.parseBinaryChain(p.parseBitXor, PIPE)
}

func (p *Parser) parseBitXor() (ast.Expr, error) {
	return p.parseBinaryChain(p.parseBitAnd, CARET)
}

func (p *Parser) parseBitAnd() (ast.Expr, error) {
	return p.parseBinaryChain(p.parseComparison, AMPERSAND)
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.parseBinaryChain(p.parseMultiplicative, PLUS, MINUS, TILDE)
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	return p.parseBinaryChain(p.parseUnary, STAR, SLASH, PERCENT)
}

// parseBinaryChain folds a left-associative run of same-level operators.
func (p *Parser) parseBinaryChain(next func() (ast.Expr, error), ops ...TokenType) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.stream.Peek()
		if !ok || !tokenTypeIn(tok.Type, ops) {
			return left, nil
		}
		p.stream.Next()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   left,
			Right:  right,
		}
	}
}

func tokenTypeIn(tt TokenType, ops []TokenType) bool {
	for _, op := range ops {
		if tt == op {
			return true
		}
	}
	return false
}

var comparisonOps = map[TokenType]bool{
	EQUAL_EQUAL:   true,
	BANG_EQUAL:    true,
	LESS:          true,
	LESS_EQUAL:    true,
	GREATER:       true,
	GREATER_EQUAL: true,
}

// parseComparison fires at most one contains operator and at most one
// comparison operator per call. A contains node does not stop a subsequent
// comparison from also firing on the same result, so `a in b == c` parses
// as (a in b) == c, while `a < b < c` stays a fault.
func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	if tok, ok := p.stream.Peek(); ok && (tok.Type == IN || tok.Type == HAS) {
		p.stream.Next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   left,
			Right:  right,
		}
	}

	if tok, ok := p.stream.Peek(); ok && comparisonOps[tok.Type] {
		p.stream.Next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     tok.Lexeme,
			Left:   left,
			Right:  right,
		}
	}

	return left, nil
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	tok, ok := p.stream.Peek()
	if ok && (tok.Type == BANG || tok.Type == MINUS) {
		p.stream.Next()
		value, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{
			Pos:    p.makePos(tok),
			EndPos: value.NodeEndPos(),
			Op:     tok.Lexeme,
			Value:  value,
		}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary and then folds trailing suffixes in an
// iterative loop: member access, calls, indexing, ranges and casts.
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.stream.Peek()
		if !ok {
			return expr, nil
		}

		switch tok.Type {
		case DOT:
			p.stream.Next()
			member, memberEnd, err := p.parseMemberName()
			if err != nil {
				return nil, err
			}
			expr = &ast.MemberExpr{
				Pos:    expr.NodePos(),
				EndPos: memberEnd,
				Target: expr,
				Member: member,
			}

		case LEFT_PAREN:
			p.stream.Next()
			args, rp, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(rp),
				Callee: expr,
				Args:   args,
			}

		case LEFT_BRACKET:
			p.stream.Next()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			rb, err := p.stream.Require(RIGHT_BRACKET, "expected ']' after index expression")
			if err != nil {
				return nil, err
			}
			expr = &ast.IndexExpr{
				Pos:    expr.NodePos(),
				EndPos: p.makeEndPos(rb),
				Target: expr,
				Index:  index,
			}

		case DOT_DOT, TO:
			p.stream.Next()
			right, err := p.parseAssign()
			if err != nil {
				return nil, err
			}
			expr = &ast.BinaryExpr{
				Pos:    expr.NodePos(),
				EndPos: right.NodeEndPos(),
				Op:     tok.Lexeme,
				Left:   expr,
				Right:  right,
			}

		case AS:
			p.stream.Next()
			asType, err := p.parseType()
			if err != nil {
				return nil, err
			}
			expr = &ast.CastExpr{
				Pos:    expr.NodePos(),
				EndPos: asType.NodeEndPos(),
				Value:  expr,
				AsType: asType,
			}

		default:
			return expr, nil
		}
	}
}

// parseMemberName accepts an identifier, a quoted string (quotes stripped),
// or a keyword used contextually as a member name after '.'.
func (p *Parser) parseMemberName() (string, ast.Position, error) {
	tok, ok := p.stream.Next()
	if !ok {
		return "", ast.Position{}, p.faultAtCurrent("expected member name after '.'")
	}

	switch {
	case tok.Type == IDENTIFIER:
		return tok.Lexeme, p.makeEndPos(tok), nil
	case tok.Type == STRING:
		name, err := UnquoteString(tok.Lexeme)
		if err != nil {
			return "", ast.Position{}, &ParseError{Message: err.Error(), Position: tok.Position}
		}
		return name, p.makeEndPos(tok), nil
	case tok.Type != ILLEGAL && lookupIdentifier(tok.Lexeme) == tok.Type:
		// Keywords double as member names: foo.to, recipes.remove, etc.
		return tok.Lexeme, p.makeEndPos(tok), nil
	}
	return "", ast.Position{}, &ParseError{
		Message:  "expected member name after '.', found '" + tok.Lexeme + "'",
		Position: tok.Position,
	}
}

func (p *Parser) parseCallArgs() ([]ast.Expr, Token, error) {
	if rp, ok := p.stream.Optional(RIGHT_PAREN); ok {
		return nil, rp, nil
	}

	var args []ast.Expr
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, Token{}, err
		}
		args = append(args, arg)
		if _, ok := p.stream.Optional(COMMA); ok {
			continue
		}
		rp, err := p.stream.Require(RIGHT_PAREN, "expected ')' after call arguments")
		if err != nil {
			return nil, Token{}, err
		}
		return args, rp, nil
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok, ok := p.stream.Peek()
	if !ok {
		return nil, p.faultAtCurrent("expected expression")
	}

	switch tok.Type {
	case INT_NUMBER:
		p.stream.Next()
		return p.makeLiteral(tok, ast.INT_LITERAL), nil
	case FLOAT_NUMBER:
		p.stream.Next()
		return p.makeLiteral(tok, ast.FLOAT_LITERAL), nil
	case STRING:
		p.stream.Next()
		return p.makeLiteral(tok, ast.STRING_LITERAL), nil
	case TRUE, FALSE:
		p.stream.Next()
		return p.makeLiteral(tok, ast.BOOL_LITERAL), nil
	case NULL:
		p.stream.Next()
		return p.makeLiteral(tok, ast.NULL_LITERAL), nil

	case IDENTIFIER, THIS:
		p.stream.Next()
		return &ast.IdentExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}, nil

	case LEFT_PAREN:
		p.stream.Next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		rp, err := p.stream.Require(RIGHT_PAREN, "expected ')' after parenthesized expression")
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(rp),
			Value:  inner,
		}, nil

	case LEFT_BRACKET:
		return p.parseArrayLiteral()

	case LEFT_BRACE:
		return p.parseMapLiteral()

	case FUNCTION:
		return p.parseFunctionLiteral()
	}

	return nil, &ParseError{
		Message:  "unexpected token in expression: '" + tok.Lexeme + "'",
		Position: tok.Position,
	}
}

func (p *Parser) makeLiteral(tok Token, kind ast.LiteralKind) *ast.LiteralExpr {
	return &ast.LiteralExpr{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Kind:   kind,
		Value:  tok.Lexeme,
	}
}

func (p *Parser) parseArrayLiteral() (ast.Expr, error) {
	lb, _ := p.stream.Next()

	var elements []ast.Expr
	for {
		if rb, ok := p.stream.Optional(RIGHT_BRACKET); ok {
			return &ast.ArrayLiteralExpr{
				Pos:      p.makePos(lb),
				EndPos:   p.makeEndPos(rb),
				Elements: elements,
			}, nil
		}
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, elem)
		if _, ok := p.stream.Optional(COMMA); ok {
			continue // trailing comma before ']' is fine
		}
		rb, err := p.stream.Require(RIGHT_BRACKET, "expected ']' after array literal")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLiteralExpr{
			Pos:      p.makePos(lb),
			EndPos:   p.makeEndPos(rb),
			Elements: elements,
		}, nil
	}
}

func (p *Parser) parseMapLiteral() (ast.Expr, error) {
	lb, _ := p.stream.Next()

	var entries []ast.MapEntry
	for {
		if rb, ok := p.stream.Optional(RIGHT_BRACE); ok {
			return &ast.MapLiteralExpr{
				Pos:     p.makePos(lb),
				EndPos:  p.makeEndPos(rb),
				Entries: entries,
			}, nil
		}
		key, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.stream.Require(COLON, "expected ':' after map literal key"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.MapEntry{Key: key, Value: value})
		if _, ok := p.stream.Optional(COMMA); ok {
			continue
		}
		rb, err := p.stream.Require(RIGHT_BRACE, "expected '}' after map literal")
		if err != nil {
			return nil, err
		}
		return &ast.MapLiteralExpr{
			Pos:     p.makePos(lb),
			EndPos:  p.makeEndPos(rb),
			Entries: entries,
		}, nil
	}
}

func (p *Parser) parseFunctionLiteral() (ast.Expr, error) {
	startToken, _ := p.stream.Next()

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

	return &ast.FunctionLiteralExpr{
		Pos:    p.makePos(startToken),
		EndPos: body.EndPos,
		Params: params,
		Return: returnType,
		Body:   body,
	}, nil
}
