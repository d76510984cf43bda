package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinTypes(t *testing.T) {
	for _, name := range []string{"any", "bool", "byte", "short", "int", "long", "float", "double", "string"} {
		assert.True(t, IsBuiltinType(name), "%s should be builtin", name)
	}
	assert.False(t, IsBuiltinType("void"))
	assert.False(t, IsBuiltinType("IItemStack"))
}

func TestIsNumericType(t *testing.T) {
	for _, name := range []string{"byte", "short", "int", "long", "float", "double"} {
		assert.True(t, IsNumericType(name), "%s should be numeric", name)
	}
	assert.False(t, IsNumericType("bool"))
	assert.False(t, IsNumericType("string"))
	assert.False(t, IsNumericType("any"))
}

func TestDefaultRegistryResolvesTypes(t *testing.T) {
	registry := DefaultRegistry()

	def, ok := registry.ResolveType("crafttweaker.item.IItemStack")
	assert.True(t, ok, "IItemStack should resolve")
	assert.Equal(t, "IItemStack", def.Name)
	assert.Contains(t, def.Members, "displayName")

	_, ok = registry.ResolveType("crafttweaker.item.NoSuchType")
	assert.False(t, ok)

	_, ok = registry.ResolveType("no.such.pkg.Type")
	assert.False(t, ok)

	_, ok = registry.ResolveType("unqualified")
	assert.False(t, ok, "unqualified names never resolve")
}

func TestImportableMembersSorted(t *testing.T) {
	registry := DefaultRegistry()

	members := registry.ImportableMembers("crafttweaker.item")
	assert.Equal(t, []string{"IIngredient", "IItemStack"}, members)

	assert.Nil(t, registry.ImportableMembers("no.such.pkg"))
}

func TestImportableMembersIncludeFunctions(t *testing.T) {
	registry := DefaultRegistry()

	members := registry.ImportableMembers("crafttweaker.text")
	assert.Contains(t, members, "format")
}

func TestGlobals(t *testing.T) {
	registry := DefaultRegistry()

	globals := registry.Globals()
	assert.NotEmpty(t, globals)
	for i := 1; i < len(globals); i++ {
		assert.LessOrEqual(t, globals[i-1].Name, globals[i].Name, "globals should come back sorted")
	}

	g, ok := registry.LookupGlobal("recipes")
	assert.True(t, ok)
	assert.Equal(t, "crafttweaker.recipes.IRecipeManager", g.TypeName)

	_, ok = registry.LookupGlobal("nope")
	assert.False(t, ok)
}

func TestCustomRegistry(t *testing.T) {
	registry := NewRegistry()
	assert.Empty(t, registry.Packages())
	assert.Empty(t, registry.Globals())
	assert.True(t, registry.IsBuiltinType("int"), "builtins are always present")

	registry.AddPackage(&PackageDefinition{
		Path: "mods.example",
		Types: map[string]TypeDefinition{
			"Widget": {Name: "Widget", Members: []string{"spin"}},
		},
	})
	registry.AddGlobal(GlobalSymbol{Name: "widgets", TypeName: "mods.example.Widget[]"})

	def, ok := registry.ResolveType("mods.example.Widget")
	assert.True(t, ok)
	assert.Equal(t, "Widget", def.Name)

	g, ok := registry.LookupGlobal("widgets")
	assert.True(t, ok)
	assert.Equal(t, "mods.example.Widget[]", g.TypeName)
}
