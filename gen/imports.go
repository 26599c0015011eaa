package gen

import (
	"sort"
	"strings"

	"github.com/dhamidi/rstdoc/java"
	"github.com/dhamidi/rstdoc/rst"
)

// Imports collects the types referenced while one class document is built.
// Signatures use the short name of every collected type; Directives later
// emits the import directives that let the documentation tool resolve them.
type Imports struct {
	packageOf func(string) string
	types     map[string]java.TypeModel
	// names maps the short name of a collected type to its qualified name.
	names map[string]string

	typeVars   map[string][]java.TypeModel
	inProgress map[string]bool
}

// NewImports returns an empty accumulator. packageOf splits qualified names;
// nil uses java.PackageOf.
func NewImports(packageOf func(string) string) *Imports {
	if packageOf == nil {
		packageOf = java.PackageOf
	}
	return &Imports{
		packageOf:  packageOf,
		types:      make(map[string]java.TypeModel),
		names:      make(map[string]string),
		typeVars:   make(map[string][]java.TypeModel),
		inProgress: make(map[string]bool),
	}
}

// Fork returns a copy that can be filled independently and merged back.
func (im *Imports) Fork() *Imports {
	f := NewImports(im.packageOf)
	for k, v := range im.types {
		f.types[k] = v
	}
	for k, v := range im.names {
		f.names[k] = v
	}
	for k, v := range im.typeVars {
		f.typeVars[k] = v
	}
	return f
}

// Merge adds the types collected by other. A type whose short name is
// already taken by a different type is not added.
func (im *Imports) Merge(other *Imports) {
	if other == nil {
		return
	}
	for _, q := range other.Qualified() {
		im.record(q, other.types[q])
	}
}

// DeclareTypeParameters puts type variables in scope. Their bounds are
// collected whenever a variable is used.
func (im *Imports) DeclareTypeParameters(params []java.TypeParameterModel) {
	for _, p := range params {
		im.typeVars[p.Name] = p.Bounds
	}
}

// Add collects t and every type in its type arguments.
func (im *Imports) Add(t java.TypeModel) {
	t.Walk(func(t java.TypeModel) {
		if bounds, ok := im.typeVars[t.Name]; ok {
			im.addTypeVar(t.Name, bounds)
			return
		}
		im.AddName(t.Name)
	})
}

// addTypeVar collects the bounds of a type variable. Variables that are
// already being collected are skipped, which stops recursive bounds such as
// E extends Enum<E>.
func (im *Imports) addTypeVar(name string, bounds []java.TypeModel) {
	if im.inProgress[name] {
		return
	}
	im.inProgress[name] = true
	defer delete(im.inProgress, name)
	for _, b := range bounds {
		im.Add(b)
	}
}

// AddName collects a type given by its qualified name.
func (im *Imports) AddName(qualified string) {
	qualified = strings.TrimSpace(qualified)
	if qualified == "" || java.IsPrimitiveName(qualified) || im.packageOf(qualified) == "" {
		return
	}
	if _, ok := im.typeVars[qualified]; ok {
		return
	}
	im.record(qualified, java.TypeModel{Name: qualified})
}

func (im *Imports) record(qualified string, t java.TypeModel) {
	if _, ok := im.types[qualified]; ok {
		return
	}
	short := im.short(qualified)
	if other, taken := im.names[short]; taken && other != qualified {
		return
	}
	im.types[qualified] = t
	im.names[short] = qualified
}

// short is the name relative to the package, e.g. Map.Entry.
func (im *Imports) short(qualified string) string {
	pkg := im.packageOf(qualified)
	if pkg == "" {
		return qualified
	}
	return strings.TrimPrefix(qualified, pkg+".")
}

// Name returns the name to print for a type: the short name when the type
// was collected, the qualified name otherwise.
func (im *Imports) Name(qualified string) string {
	if _, ok := im.types[qualified]; ok {
		return im.short(qualified)
	}
	return qualified
}

// Has reports whether qualified was collected.
func (im *Imports) Has(qualified string) bool {
	_, ok := im.types[qualified]
	return ok
}

// Qualified returns the collected names in sorted order.
func (im *Imports) Qualified() []string {
	out := make([]string, 0, len(im.types))
	for q := range im.types {
		out = append(out, q)
	}
	sort.Strings(out)
	return out
}

// Filtered returns the collected types that need an import in a document
// for selfPackage: types of selfPackage and java.lang are visible anyway.
func (im *Imports) Filtered(selfPackage string) []string {
	var out []string
	for _, q := range im.Qualified() {
		pkg := im.packageOf(q)
		if pkg == "" || pkg == selfPackage || pkg == "java.lang" {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Directives returns one java:import directive per filtered type, sorted by
// qualified name.
func (im *Imports) Directives(selfPackage string) []*rst.Directive {
	var out []*rst.Directive
	for _, q := range im.Filtered(selfPackage) {
		out = append(out, rst.NewDirective("java:import", im.packageOf(q)+" "+im.short(q)))
	}
	return out
}
