package ast

// Type is the parsed form of a type expression. Trailing `[...]` suffixes
// apply left to right, each wrapping the previous result, so `T[][string]`
// is a map keyed by string whose values are arrays of T.
type Type interface {
	Node
	isType()
}

// RawType is a primitive or a (possibly dot-qualified) named type.
type RawType struct {
	Pos    Position
	EndPos Position
	Name   string
}

// FunctionType is `function(P1,P2)R`.
type FunctionType struct {
	Pos    Position
	EndPos Position
	Params []Type
	Return Type
}

// ListType is `[T]`.
type ListType struct {
	Pos     Position
	EndPos  Position
	Element Type
}

// ArrayType is the `T[]` suffix form.
type ArrayType struct {
	Pos     Position
	EndPos  Position
	Element Type
}

// MapType is the associative `V[K]` suffix form.
type MapType struct {
	Pos    Position
	EndPos Position
	Value  Type
	Key    Type
}

func (*RawType) isType()      {}
func (*FunctionType) isType() {}
func (*ListType) isType()     {}
func (*ArrayType) isType()    {}
func (*MapType) isType()      {}
