package java

import (
	"sort"
	"strings"
)

// EntityGraph answers read-only questions about the documented entities.
// It must be safe for concurrent readers.
type EntityGraph interface {
	Lookup(qualified string) (*ClassModel, bool)
	// LookupSimple finds a class by simple or partially qualified name,
	// preferring classes in fromPackage.
	LookupSimple(name, fromPackage string) (*ClassModel, bool)
	// Member finds a member of a class. member is a field or method name,
	// optionally followed by a parameter list like "bar(int, String)".
	Member(className, member string) (MemberRef, bool)
	PackageOf(qualified string) string
	Packages() []string
	Classes(pkg string) []*ClassModel
	Package(name string) (*PackageInfoModel, bool)
}

type MemberKind string

const (
	MemberField        MemberKind = "field"
	MemberMethod       MemberKind = "method"
	MemberConstructor  MemberKind = "constructor"
	MemberEnumConstant MemberKind = "enum-constant"
)

// MemberRef identifies a member found in the graph. Target is the qualified
// form used in cross references, e.g. com.example.Foo.bar(int).
type MemberRef struct {
	Class  *ClassModel
	Kind   MemberKind
	Name   string
	Target string
}

// Index is the in-memory EntityGraph built from loaded models.
type Index struct {
	classes  map[string]*ClassModel
	simple   map[string][]*ClassModel
	packages map[string][]*ClassModel
	infos    map[string]*PackageInfoModel
}

// NewIndex indexes classes after fixing nested class references. Missing
// package and simple names are filled in from the qualified name.
func NewIndex(classes []*ClassModel, packages []*PackageInfoModel) *Index {
	ResolveInnerClassReferences(classes)
	idx := &Index{
		classes:  make(map[string]*ClassModel),
		simple:   make(map[string][]*ClassModel),
		packages: make(map[string][]*ClassModel),
		infos:    make(map[string]*PackageInfoModel),
	}
	for _, c := range classes {
		if c == nil || c.Name == "" {
			continue
		}
		if c.Package == "" {
			c.Package = PackageOf(c.Name)
		}
		if c.SimpleName == "" {
			c.SimpleName = SimpleName(c.Name)
		}
		idx.classes[c.Name] = c
		idx.simple[c.SimpleName] = append(idx.simple[c.SimpleName], c)
		idx.packages[c.Package] = append(idx.packages[c.Package], c)
	}
	for _, list := range idx.packages {
		sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	}
	for _, p := range packages {
		if p != nil && p.Name != "" {
			idx.infos[p.Name] = p
			if _, ok := idx.packages[p.Name]; !ok {
				idx.packages[p.Name] = nil
			}
		}
	}
	return idx
}

func (idx *Index) Lookup(qualified string) (*ClassModel, bool) {
	c, ok := idx.classes[strings.TrimSpace(qualified)]
	return c, ok
}

func (idx *Index) LookupSimple(name, fromPackage string) (*ClassModel, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}
	if c, ok := idx.classes[name]; ok {
		return c, true
	}
	if fromPackage != "" {
		if c, ok := idx.classes[fromPackage+"."+name]; ok {
			return c, true
		}
	}
	// Outer.Inner written without a package.
	candidates := idx.simple[SimpleName(name)]
	var match *ClassModel
	for _, c := range candidates {
		if c.Name != name && !strings.HasSuffix(c.Name, "."+name) {
			continue
		}
		if match != nil {
			return nil, false
		}
		match = c
	}
	if match != nil {
		return match, true
	}
	if c, ok := idx.classes["java.lang."+name]; ok {
		return c, true
	}
	return nil, false
}

func (idx *Index) Member(className, member string) (MemberRef, bool) {
	c, ok := idx.classes[className]
	if !ok {
		return MemberRef{}, false
	}
	name, params, hasParams := splitMember(member)
	if name == "" {
		return MemberRef{}, false
	}

	if !hasParams {
		for _, f := range c.Fields {
			if f.Name == name {
				return MemberRef{Class: c, Kind: MemberField, Name: name, Target: c.Name + "." + name}, true
			}
		}
		for _, e := range c.EnumConstants {
			if e.Name == name {
				return MemberRef{Class: c, Kind: MemberEnumConstant, Name: name, Target: c.Name + "." + name}, true
			}
		}
	}

	if name == c.SimpleName {
		if m, ok := matchMethod(c.Constructors, name, params, hasParams); ok {
			return MemberRef{Class: c, Kind: MemberConstructor, Name: name, Target: c.Name + "." + MethodSignature(m)}, true
		}
	}
	if m, ok := matchMethod(c.Methods, name, params, hasParams); ok {
		return MemberRef{Class: c, Kind: MemberMethod, Name: name, Target: c.Name + "." + MethodSignature(m)}, true
	}
	return MemberRef{}, false
}

func (idx *Index) PackageOf(qualified string) string {
	if c, ok := idx.classes[qualified]; ok {
		return c.Package
	}
	return PackageOf(qualified)
}

func (idx *Index) Packages() []string {
	out := make([]string, 0, len(idx.packages))
	for p := range idx.packages {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func (idx *Index) Classes(pkg string) []*ClassModel {
	return idx.packages[pkg]
}

func (idx *Index) Package(name string) (*PackageInfoModel, bool) {
	p, ok := idx.infos[name]
	return p, ok
}

// MethodSignature is the erased signature used in cross-reference targets,
// e.g. bar(int, java.lang.String[]).
func MethodSignature(m *MethodModel) string {
	params := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		params[i] = erasure(p.Type)
	}
	return m.Name + "(" + strings.Join(params, ", ") + ")"
}

func erasure(t TypeModel) string {
	return t.Name + strings.Repeat("[]", t.ArrayDepth)
}

func splitMember(member string) (name string, params []string, hasParams bool) {
	member = strings.TrimSpace(member)
	open := strings.Index(member, "(")
	if open < 0 {
		return member, nil, false
	}
	name = strings.TrimSpace(member[:open])
	inner := strings.TrimSuffix(strings.TrimSpace(member[open+1:]), ")")
	for _, p := range strings.Split(inner, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// Parameter names are allowed in javadoc references: "bar(int count)".
		if fields := strings.Fields(p); len(fields) > 1 {
			p = fields[0]
		}
		params = append(params, normalizeParam(p))
	}
	return name, params, true
}

func normalizeParam(p string) string {
	if i := strings.Index(p, "<"); i >= 0 {
		if j := strings.LastIndex(p, ">"); j > i {
			p = p[:i] + p[j+1:]
		}
	}
	p = strings.ReplaceAll(p, "...", "[]")
	base := strings.TrimRight(p, "[]")
	return SimpleName(base) + p[len(base):]
}

// matchMethod returns the first method named name whose parameters match.
// Without a parameter list the first overload wins.
func matchMethod(methods []MethodModel, name string, params []string, hasParams bool) (*MethodModel, bool) {
	for i := range methods {
		m := &methods[i]
		if m.Name != name {
			continue
		}
		if !hasParams {
			return m, true
		}
		if len(m.Parameters) != len(params) {
			continue
		}
		same := true
		for j, p := range m.Parameters {
			if normalizeParam(erasure(p.Type)) != params[j] {
				same = false
				break
			}
		}
		if same {
			return m, true
		}
	}
	return nil, false
}
