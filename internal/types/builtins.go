package types

// BuiltinType is one of the primitive type names the language reserves.
type BuiltinType string

const (
	Any    BuiltinType = "any"
	Bool   BuiltinType = "bool"
	Byte   BuiltinType = "byte"
	Short  BuiltinType = "short"
	Int    BuiltinType = "int"
	Long   BuiltinType = "long"
	Float  BuiltinType = "float"
	Double BuiltinType = "double"
	String BuiltinType = "string"
)

// BuiltinTypes contains all valid built-in types.
var BuiltinTypes = map[BuiltinType]bool{
	Any:    true,
	Bool:   true,
	Byte:   true,
	Short:  true,
	Int:    true,
	Long:   true,
	Float:  true,
	Double: true,
	String: true,
}

// IsBuiltinType checks if a type name is a built-in type.
func IsBuiltinType(typeName string) bool {
	return BuiltinTypes[BuiltinType(typeName)]
}

// IsNumericType checks if a type name is one of the numeric primitives.
func IsNumericType(typeName string) bool {
	switch BuiltinType(typeName) {
	case Byte, Short, Int, Long, Float, Double:
		return true
	}
	return false
}
