package types

// PackageDefinition describes an importable script package: the types and
// functions scripts can pull in with an import declaration.
type PackageDefinition struct {
	Path      string                        // full dotted path, e.g. "crafttweaker.item"
	Types     map[string]TypeDefinition     // importable types in this package
	Functions map[string]FunctionDefinition // importable functions in this package
}

// TypeDefinition describes a type exposed by a package.
type TypeDefinition struct {
	Name    string
	Members []string // member names tooling can offer after '.'
}

// FunctionDefinition describes a function exposed by a package.
type FunctionDefinition struct {
	Name       string
	Parameters []string // parameter type names, for display only
	ReturnType string   // empty when the function returns nothing
}

// GlobalSymbol is a name available to every script without an import.
type GlobalSymbol struct {
	Name     string
	TypeName string
	Detail   string
}

// standardPackages is the bundled symbol information for the script
// environment. Host applications replace or extend it through the registry.
func standardPackages() []*PackageDefinition {
	return []*PackageDefinition{
		{
			Path: "crafttweaker.item",
			Types: map[string]TypeDefinition{
				"IItemStack": {
					Name:    "IItemStack",
					Members: []string{"amount", "displayName", "withAmount", "withTag"},
				},
				"IIngredient": {
					Name:    "IIngredient",
					Members: []string{"amount", "items", "matches"},
				},
			},
			Functions: map[string]FunctionDefinition{},
		},
		{
			Path: "crafttweaker.oredict",
			Types: map[string]TypeDefinition{
				"IOreDictEntry": {
					Name:    "IOreDictEntry",
					Members: []string{"name", "empty", "firstItem", "add", "remove"},
				},
			},
			Functions: map[string]FunctionDefinition{},
		},
		{
			Path: "crafttweaker.player",
			Types: map[string]TypeDefinition{
				"IPlayer": {
					Name:    "IPlayer",
					Members: []string{"name", "health", "give", "sendChat"},
				},
			},
			Functions: map[string]FunctionDefinition{},
		},
		{
			Path:  "crafttweaker.text",
			Types: map[string]TypeDefinition{},
			Functions: map[string]FunctionDefinition{
				"format": {
					Name:       "format",
					Parameters: []string{"string"},
					ReturnType: "string",
				},
			},
		},
	}
}

func standardGlobals() []GlobalSymbol {
	return []GlobalSymbol{
		{Name: "print", TypeName: "function(any)void", Detail: "write a line to the script log"},
		{Name: "logger", TypeName: "crafttweaker.ILogger", Detail: "script engine logger"},
		{Name: "recipes", TypeName: "crafttweaker.recipes.IRecipeManager", Detail: "crafting recipe manager"},
		{Name: "furnace", TypeName: "crafttweaker.recipes.IFurnaceManager", Detail: "furnace recipe manager"},
		{Name: "oreDict", TypeName: "crafttweaker.oredict.IOreDict", Detail: "ore dictionary"},
	}
}
