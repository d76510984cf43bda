package types

import (
	"sort"
	"strings"
)

// Registry is the symbol and type database layered above the parser: it
// resolves fully-qualified type names and enumerates global symbols and
// importable members for tooling. The parser itself never consults it.
//
// A Registry is not written to after construction, so concurrent reads from
// any number of simultaneous parses need no locking.
type Registry struct {
	builtins map[string]bool
	packages map[string]*PackageDefinition
	globals  map[string]GlobalSymbol
}

// NewRegistry creates an empty registry with only the built-in types.
func NewRegistry() *Registry {
	r := &Registry{
		builtins: make(map[string]bool),
		packages: make(map[string]*PackageDefinition),
		globals:  make(map[string]GlobalSymbol),
	}
	for typeName := range BuiltinTypes {
		r.builtins[string(typeName)] = true
	}
	return r
}

// DefaultRegistry returns a registry preloaded with the bundled packages
// and global symbols.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, pkg := range standardPackages() {
		r.AddPackage(pkg)
	}
	for _, g := range standardGlobals() {
		r.AddGlobal(g)
	}
	return r
}

func (r *Registry) AddPackage(pkg *PackageDefinition) {
	r.packages[pkg.Path] = pkg
}

func (r *Registry) AddGlobal(g GlobalSymbol) {
	r.globals[g.Name] = g
}

// IsBuiltinType checks whether a name is one of the primitive types.
func (r *Registry) IsBuiltinType(typeName string) bool {
	return r.builtins[typeName]
}

// ResolveType resolves a fully-qualified type name, e.g.
// "crafttweaker.item.IItemStack", to its definition.
func (r *Registry) ResolveType(qualifiedName string) (*TypeDefinition, bool) {
	idx := strings.LastIndex(qualifiedName, ".")
	if idx < 0 {
		return nil, false
	}
	pkg, ok := r.packages[qualifiedName[:idx]]
	if !ok {
		return nil, false
	}
	def, ok := pkg.Types[qualifiedName[idx+1:]]
	if !ok {
		return nil, false
	}
	return &def, true
}

// ImportableMembers lists the names an import of the given package path can
// bring in, sorted for stable completion output.
func (r *Registry) ImportableMembers(packagePath string) []string {
	pkg, ok := r.packages[packagePath]
	if !ok {
		return nil
	}
	var names []string
	for name := range pkg.Types {
		names = append(names, name)
	}
	for name := range pkg.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Packages lists every known package path, sorted.
func (r *Registry) Packages() []string {
	var paths []string
	for path := range r.packages {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Globals lists every global symbol, sorted by name.
func (r *Registry) Globals() []GlobalSymbol {
	var globals []GlobalSymbol
	for _, g := range r.globals {
		globals = append(globals, g)
	}
	sort.Slice(globals, func(i, j int) bool { return globals[i].Name < globals[j].Name })
	return globals
}

// LookupGlobal resolves a single global symbol by name.
func (r *Registry) LookupGlobal(name string) (GlobalSymbol, bool) {
	g, ok := r.globals[name]
	return g, ok
}
