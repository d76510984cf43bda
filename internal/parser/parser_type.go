package parser

import "zenscript/internal/ast"

var primitiveTypes = map[TokenType]bool{
	ANY:         true,
	BOOL:        true,
	BYTE:        true,
	SHORT:       true,
	INT:         true,
	LONG:        true,
	FLOAT:       true,
	DOUBLE:      true,
	STRING_TYPE: true,
}

// ParseType consumes exactly one type expression from the stream.
func (p *Parser) ParseType() (ast.Type, error) {
	return p.parseType()
}

// parseType dispatches on the leading token: a primitive keyword or a
// dot-qualified identifier is a raw type, `function` introduces a function
// type, `[` a list type. After the base type, trailing `[]` and `[K]`
// suffixes are folded in read order, each wrapping the prior result.
func (p *Parser) parseType() (ast.Type, error) {
	tok, ok := p.stream.Peek()
	if !ok {
		return nil, p.faultAtCurrent("expected type")
	}

	var base ast.Type
	switch {
	case primitiveTypes[tok.Type]:
		p.stream.Next()
		base = &ast.RawType{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(tok),
			Name:   tok.Lexeme,
		}

	case tok.Type == IDENTIFIER:
		p.stream.Next()
		name := tok.Lexeme
		last := tok
		for {
			if _, ok := p.stream.Optional(DOT); !ok {
				break
			}
			seg, err := p.stream.Require(IDENTIFIER, "expected identifier after '.' in type name")
			if err != nil {
				return nil, err
			}
			name += "." + seg.Lexeme
			last = seg
		}
		base = &ast.RawType{
			Pos:    p.makePos(tok),
			EndPos: p.makeEndPos(last),
			Name:   name,
		}

	case tok.Type == FUNCTION:
		p.stream.Next()
		if _, err := p.stream.Require(LEFT_PAREN, "expected '(' after 'function'"); err != nil {
			return nil, err
		}
		var params []ast.Type
		if _, ok := p.stream.Optional(RIGHT_PAREN); !ok {
			for {
				param, err := p.parseType()
				if err != nil {
					return nil, err
				}
				params = append(params, param)
				if _, ok := p.stream.Optional(COMMA); ok {
					continue
				}
				if _, err := p.stream.Require(RIGHT_PAREN, "expected ')' after function parameter types"); err != nil {
					return nil, err
				}
				break
			}
		}
		returnType, err := p.parseType()
		if err != nil {
			return nil, err
		}
		base = &ast.FunctionType{
			Pos:    p.makePos(tok),
			EndPos: returnType.NodeEndPos(),
			Params: params,
			Return: returnType,
		}

	case tok.Type == LEFT_BRACKET:
		p.stream.Next()
		element, err := p.parseType()
		if err != nil {
			return nil, err
		}
		rb, err := p.stream.Require(RIGHT_BRACKET, "expected ']' after list element type")
		if err != nil {
			return nil, err
		}
		base = &ast.ListType{
			Pos:     p.makePos(tok),
			EndPos:  p.makeEndPos(rb),
			Element: element,
		}

	default:
		return nil, &ParseError{
			Message:  "unknown type: '" + tok.Lexeme + "'",
			Position: tok.Position,
		}
	}

	// Suffixes fold left to right: `base[]` wraps in an array type,
	// `base[K]` in an associative type keyed by K.
	for {
		if _, ok := p.stream.Optional(LEFT_BRACKET); !ok {
			break
		}
		if rb, ok := p.stream.Optional(RIGHT_BRACKET); ok {
			base = &ast.ArrayType{
				Pos:     base.NodePos(),
				EndPos:  p.makeEndPos(rb),
				Element: base,
			}
			continue
		}
		key, err := p.parseType()
		if err != nil {
			return nil, err
		}
		rb, err := p.stream.Require(RIGHT_BRACKET, "expected ']' after map key type")
		if err != nil {
			return nil, err
		}
		base = &ast.MapType{
			Pos:    base.NodePos(),
			EndPos: p.makeEndPos(rb),
			Value:  base,
			Key:    key,
		}
	}

	return base, nil
}
