package ast

import (
	"fmt"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder

	for _, imp := range p.Imports {
		b.WriteString(imp.String())
		b.WriteString("\n")
	}
	for _, fn := range p.Functions {
		b.WriteString(fn.String())
		b.WriteString("\n")
	}
	for _, cls := range p.Classes {
		b.WriteString(cls.String())
		b.WriteString("\n")
	}
	for _, stmt := range p.Statements {
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (i *Ident) String() string {
	return i.Value
}

func (d *ImportDecl) String() string {
	var b strings.Builder
	b.WriteString("import ")
	for i, seg := range d.Path {
		if i > 0 {
			b.WriteString(".")
		}
		b.WriteString(seg.Value)
	}
	if d.Alias != nil {
		b.WriteString(" as ")
		b.WriteString(d.Alias.Value)
	}
	b.WriteString(";")
	return b.String()
}

func (d *GlobalDecl) String() string {
	keyword := "global"
	if d.Static {
		keyword = "static"
	}
	return fmt.Sprintf("%s %s as %s = %s;", keyword, d.Name.Value, d.VarType.String(), d.Init.String())
}

func (d *FunctionDecl) String() string {
	var b strings.Builder
	b.WriteString("function ")
	b.WriteString(d.Name.Value)
	writeSignature(&b, d.Params, d.Return)
	b.WriteString(" ")
	b.WriteString(d.Body.String())
	return b.String()
}

func (p *FunctionParam) String() string {
	if p.ParamType != nil {
		return p.Name.Value + " as " + p.ParamType.String()
	}
	return p.Name.Value
}

func (d *ClassDecl) String() string {
	var b strings.Builder
	b.WriteString("zenClass ")
	b.WriteString(d.Name.Value)
	b.WriteString(" {\n")
	for _, field := range d.Fields {
		b.WriteString(indent(field.String()) + "\n")
	}
	for _, ctor := range d.Constructors {
		b.WriteString(indent(ctor.String()) + "\n")
	}
	for _, method := range d.Methods {
		b.WriteString(indent(method.String()) + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (d *ConstructorDecl) String() string {
	var b strings.Builder
	b.WriteString("zenConstructor")
	writeSignature(&b, d.Params, nil)
	b.WriteString(" ")
	b.WriteString(d.Body.String())
	return b.String()
}

func writeSignature(b *strings.Builder, params []*FunctionParam, ret Type) {
	b.WriteString("(")
	for i, param := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(param.String())
	}
	b.WriteString(")")
	if ret != nil {
		b.WriteString(" as ")
		b.WriteString(ret.String())
	}
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}

// Statements

func (s *BlockStmt) String() string {
	if len(s.Items) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, item := range s.Items {
		b.WriteString(indent(item.String()) + "\n")
	}
	b.WriteString("}")
	return b.String()
}

func (s *ExprStmt) String() string {
	return s.Value.String() + ";"
}

func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "return;"
	}
	return "return " + s.Value.String() + ";"
}

func (s *VarDeclStmt) String() string {
	var b strings.Builder
	if s.Final {
		b.WriteString("val ")
	} else {
		b.WriteString("var ")
	}
	b.WriteString(s.Name.Value)
	if s.VarType != nil {
		b.WriteString(" as ")
		b.WriteString(s.VarType.String())
	}
	if s.Init != nil {
		b.WriteString(" = ")
		b.WriteString(s.Init.String())
	}
	b.WriteString(";")
	return b.String()
}

func (s *IfStmt) String() string {
	out := "if " + s.Cond.String() + " " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

func (s *ForStmt) String() string {
	var b strings.Builder
	b.WriteString("for ")
	for i, name := range s.Names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(name.Value)
	}
	b.WriteString(" in ")
	b.WriteString(s.Iterable.String())
	b.WriteString(" ")
	b.WriteString(s.Body.String())
	return b.String()
}

func (s *WhileStmt) String() string {
	return "while " + s.Cond.String() + " " + s.Body.String()
}

func (s *BreakStmt) String() string {
	return "break;"
}

func (s *ContinueStmt) String() string {
	return "continue;"
}

func (s *VersionStmt) String() string {
	return "version " + s.Number + ";"
}

// Types

func (t *RawType) String() string {
	return t.Name
}

func (t *FunctionType) String() string {
	var b strings.Builder
	b.WriteString("function(")
	for i, param := range t.Params {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(param.String())
	}
	b.WriteString(")")
	b.WriteString(t.Return.String())
	return b.String()
}

func (t *ListType) String() string {
	return "[" + t.Element.String() + "]"
}

func (t *ArrayType) String() string {
	return t.Element.String() + "[]"
}

func (t *MapType) String() string {
	return t.Value.String() + "[" + t.Key.String() + "]"
}

// Expressions

func (e *AssignExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.Left.String(), e.Op.String(), e.Right.String())
}

func (e *ConditionalExpr) String() string {
	return fmt.Sprintf("%s ? %s : %s", e.Cond.String(), e.Then.String(), e.Else.String())
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.Left.String(), e.Op, e.Right.String())
}

func (e *UnaryExpr) String() string {
	return e.Op + e.Value.String()
}

func (e *MemberExpr) String() string {
	return e.Target.String() + "." + e.Member
}

func (e *CallExpr) String() string {
	var b strings.Builder
	b.WriteString(e.Callee.String())
	b.WriteString("(")
	for i, arg := range e.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(")")
	return b.String()
}

func (e *IndexExpr) String() string {
	return e.Target.String() + "[" + e.Index.String() + "]"
}

func (e *CastExpr) String() string {
	return e.Value.String() + " as " + e.AsType.String()
}

func (e *LiteralExpr) String() string {
	return e.Value
}

func (e *IdentExpr) String() string {
	return e.Name
}

func (e *ParenExpr) String() string {
	return "(" + e.Value.String() + ")"
}

func (e *ArrayLiteralExpr) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, elem := range e.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(elem.String())
	}
	b.WriteString("]")
	return b.String()
}

func (e *MapLiteralExpr) String() string {
	if len(e.Entries) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{")
	for i, entry := range e.Entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(entry.Key.String())
		b.WriteString(" : ")
		b.WriteString(entry.Value.String())
	}
	b.WriteString("}")
	return b.String()
}

func (e *FunctionLiteralExpr) String() string {
	var b strings.Builder
	b.WriteString("function")
	writeSignature(&b, e.Params, e.Return)
	b.WriteString(" ")
	b.WriteString(e.Body.String())
	return b.String()
}
