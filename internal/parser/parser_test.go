package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"zenscript/internal/ast"
)

func TestParseEmptySource(t *testing.T) {
	program, err := ParseSource("test.zs", "")
	assert.NoError(t, err)
	assert.NotNil(t, program)
	assert.Empty(t, program.Imports)
	assert.Empty(t, program.Statements)
}

func TestParseImport(t *testing.T) {
	program, err := ParseSource("test.zs", "import crafttweaker.item.IItemStack;")
	assert.NoError(t, err)
	assert.Len(t, program.Imports, 1)

	imp := program.Imports[0]
	assert.Len(t, imp.Path, 3)
	assert.Equal(t, "crafttweaker", imp.Path[0].Value)
	assert.Equal(t, "item", imp.Path[1].Value)
	assert.Equal(t, "IItemStack", imp.Path[2].Value)
	assert.Nil(t, imp.Alias)
}

func TestParseImportWithAlias(t *testing.T) {
	program, err := ParseSource("test.zs", "import foo.bar.Baz as Qux;")
	assert.NoError(t, err)
	assert.Len(t, program.Imports, 1)

	imp := program.Imports[0]
	assert.Len(t, imp.Path, 3)
	assert.NotNil(t, imp.Alias)
	assert.Equal(t, "Qux", imp.Alias.Value)
}

func TestImportsMustComeFirst(t *testing.T) {
	source := `var x = 1;
import foo.Bar;`
	_, err := ParseSource("test.zs", source)
	assert.Error(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Contains(t, parseErr.Message, "import declarations must precede")
	assert.Equal(t, 2, parseErr.Position.Line)
}

func TestParseGlobal(t *testing.T) {
	program, err := ParseSource("test.zs", "global x as int = 5;")
	assert.NoError(t, err)
	assert.Len(t, program.Statements, 1)

	decl, ok := program.Statements[0].(*ast.GlobalDecl)
	assert.True(t, ok)
	assert.False(t, decl.Static)
	assert.Equal(t, "x", decl.Name.Value)

	typ, ok := decl.VarType.(*ast.RawType)
	assert.True(t, ok)
	assert.Equal(t, "int", typ.Name)

	lit, ok := decl.Init.(*ast.LiteralExpr)
	assert.True(t, ok)
	assert.Equal(t, "5", lit.Value)
}

func TestParseStatic(t *testing.T) {
	program, err := ParseSource("test.zs", `static greeting = "hi";`)
	assert.NoError(t, err)

	decl, ok := program.Statements[0].(*ast.GlobalDecl)
	assert.True(t, ok)
	assert.True(t, decl.Static)
}

func TestGlobalTypeDefaultsToAny(t *testing.T) {
	program, err := ParseSource("test.zs", "global x = 5;")
	assert.NoError(t, err)

	decl, ok := program.Statements[0].(*ast.GlobalDecl)
	assert.True(t, ok)
	typ, ok := decl.VarType.(*ast.RawType)
	assert.True(t, ok)
	assert.Equal(t, "any", typ.Name)
}

func TestGlobalRequiresInitializer(t *testing.T) {
	_, err := ParseSource("test.zs", "global x as int;")
	assert.Error(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Contains(t, parseErr.Message, "global variable must have an initializer")
}

func TestParseFunctionDecl(t *testing.T) {
	source := `function add(a as int, b as int) as int {
    return a + b;
}`
	program, err := ParseSource("test.zs", source)
	assert.NoError(t, err)
	assert.Len(t, program.Functions, 1)

	fn := program.Functions[0]
	assert.Equal(t, "add", fn.Name.Value)
	assert.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name.Value)
	assert.NotNil(t, fn.Params[0].ParamType)
	assert.NotNil(t, fn.Return)
	assert.Len(t, fn.Body.Items, 1)
}

func TestParseFunctionWithoutTypes(t *testing.T) {
	program, err := ParseSource("test.zs", "function greet(name) { print(name); }")
	assert.NoError(t, err)

	fn := program.Functions[0]
	assert.Nil(t, fn.Params[0].ParamType)
	assert.Nil(t, fn.Return)
}

func TestParseClassDecl(t *testing.T) {
	source := `zenClass Point {
    var x as int;
    val label = "origin";

    zenConstructor(x as int) {
        this.x = x;
    }

    function norm() as int {
        return this.x * this.x;
    }
}`
	program, err := ParseSource("test.zs", source)
	assert.NoError(t, err)
	assert.Len(t, program.Classes, 1)

	cls := program.Classes[0]
	assert.Equal(t, "Point", cls.Name.Value)
	assert.Len(t, cls.Fields, 2)
	assert.Len(t, cls.Constructors, 1)
	assert.Len(t, cls.Methods, 1)

	assert.False(t, cls.Fields[0].Final)
	assert.True(t, cls.Fields[1].Final)
	assert.Len(t, cls.Constructors[0].Params, 1)
	assert.Equal(t, "norm", cls.Methods[0].Name.Value)
}

func TestClassBodyFaults(t *testing.T) {
	_, err := ParseSource("test.zs", "zenClass P { return 1; }")
	assert.Error(t, err)

	_, err = ParseSource("test.zs", "zenClass P {")
	assert.Error(t, err)
}

func TestParseVarAndVal(t *testing.T) {
	source := `var x as int = 1;
val y = 2;
var z;`
	program, err := ParseSource("test.zs", source)
	assert.NoError(t, err)
	assert.Len(t, program.Statements, 3)

	x, ok := program.Statements[0].(*ast.VarDeclStmt)
	assert.True(t, ok)
	assert.False(t, x.Final)
	assert.NotNil(t, x.VarType)
	assert.NotNil(t, x.Init)

	y, ok := program.Statements[1].(*ast.VarDeclStmt)
	assert.True(t, ok)
	assert.True(t, y.Final)
	assert.Nil(t, y.VarType)
	assert.NotNil(t, y.Init)

	z, ok := program.Statements[2].(*ast.VarDeclStmt)
	assert.True(t, ok)
	assert.Nil(t, z.VarType)
	assert.Nil(t, z.Init)
}

func TestParseIfElse(t *testing.T) {
	source := `if a > 1 {
    print("big");
} else {
    print("small");
}`
	program, err := ParseSource("test.zs", source)
	assert.NoError(t, err)

	stmt, ok := program.Statements[0].(*ast.IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, stmt.Cond)
	assert.NotNil(t, stmt.Then)
	assert.NotNil(t, stmt.Else)
}

func TestParseIfWithoutElse(t *testing.T) {
	program, err := ParseSource("test.zs", "if ready print(1);")
	assert.NoError(t, err)

	stmt, ok := program.Statements[0].(*ast.IfStmt)
	assert.True(t, ok)
	assert.Nil(t, stmt.Else)
}

func TestParseFor(t *testing.T) {
	source := `for i in 0 .. 10 {
    print(i);
}`
	program, err := ParseSource("test.zs", source)
	assert.NoError(t, err)

	stmt, ok := program.Statements[0].(*ast.ForStmt)
	assert.True(t, ok)
	assert.Len(t, stmt.Names, 1)
	assert.Equal(t, "i", stmt.Names[0].Value)

	rng, ok := stmt.Iterable.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, "..", rng.Op)
}

func TestParseForKeyValue(t *testing.T) {
	program, err := ParseSource("test.zs", "for k, v in table { print(k); }")
	assert.NoError(t, err)

	stmt, ok := program.Statements[0].(*ast.ForStmt)
	assert.True(t, ok)
	assert.Len(t, stmt.Names, 2)
	assert.Equal(t, "k", stmt.Names[0].Value)
	assert.Equal(t, "v", stmt.Names[1].Value)
}

func TestParseWhileBreakContinue(t *testing.T) {
	source := `while x < 10 {
    x += 1;
    if x == 5 break;
    continue;
}`
	program, err := ParseSource("test.zs", source)
	assert.NoError(t, err)

	stmt, ok := program.Statements[0].(*ast.WhileStmt)
	assert.True(t, ok)

	body, ok := stmt.Body.(*ast.BlockStmt)
	assert.True(t, ok)
	assert.Len(t, body.Items, 3)

	ifStmt, ok := body.Items[1].(*ast.IfStmt)
	assert.True(t, ok)
	_, ok = ifStmt.Then.(*ast.BreakStmt)
	assert.True(t, ok)
	_, ok = body.Items[2].(*ast.ContinueStmt)
	assert.True(t, ok)
}

func TestParseReturn(t *testing.T) {
	program, err := ParseSource("test.zs", "function f() { return; }")
	assert.NoError(t, err)

	ret, ok := program.Functions[0].Body.Items[0].(*ast.ReturnStmt)
	assert.True(t, ok)
	assert.Nil(t, ret.Value)
}

func TestParseVersion(t *testing.T) {
	program, err := ParseSource("test.zs", "version 1;")
	assert.NoError(t, err)

	stmt, ok := program.Statements[0].(*ast.VersionStmt)
	assert.True(t, ok)
	assert.Equal(t, "1", stmt.Number)
}

func TestParseExpressionStatement(t *testing.T) {
	program, err := ParseSource("test.zs", "recipes.remove(target);")
	assert.NoError(t, err)

	stmt, ok := program.Statements[0].(*ast.ExprStmt)
	assert.True(t, ok)
	_, ok = stmt.Value.(*ast.CallExpr)
	assert.True(t, ok)
}

func TestMissingSemicolonFaults(t *testing.T) {
	_, err := ParseSource("test.zs", "var x = 1")
	assert.Error(t, err)
	parseErr, ok := err.(*ParseError)
	assert.True(t, ok)
	assert.Contains(t, parseErr.Message, "found end of input")
}

func TestScanFaultPropagatesFromParseSource(t *testing.T) {
	_, err := ParseSource("test.zs", "var x = @;")
	assert.Error(t, err)
	_, ok := err.(*ScanError)
	assert.True(t, ok, "lexical faults should surface as *ScanError")
}

func TestParseSourceRange(t *testing.T) {
	source := "var a = 1;\nvar b = 2;\nvar c = 3;"
	from := len("var a = 1;\n")
	to := from + len("var b = 2;")

	program, err := ParseSourceRange("test.zs", source, from, to)
	assert.NoError(t, err)
	assert.Len(t, program.Statements, 1)

	decl, ok := program.Statements[0].(*ast.VarDeclStmt)
	assert.True(t, ok)
	assert.Equal(t, "b", decl.Name.Value)
	assert.Equal(t, 2, decl.Pos.Line)
}

func TestFullScript(t *testing.T) {
	source := `import crafttweaker.item.IItemStack;
import crafttweaker.oredict.IOreDictEntry as OreEntry;

global counter as int = 0;
static limit = 64;

function describe(item as IItemStack) as string {
    return "item: " ~ item.displayName;
}

zenClass Recipe {
    var output as IItemStack;

    zenConstructor(output as IItemStack) {
        this.output = output;
    }
}

for i in 0 to limit {
    if i % 2 == 0 {
        counter += 1;
    } else {
        continue;
    }
}

print("done");`

	program, err := ParseSource("script.zs", source)
	assert.NoError(t, err)
	assert.Len(t, program.Imports, 2)
	assert.Len(t, program.Functions, 1)
	assert.Len(t, program.Classes, 1)
	// Globals, the for loop and the trailing call are top-level statements.
	assert.Len(t, program.Statements, 4)
}