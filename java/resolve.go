package java

import (
	"strings"
)

// ResolveInnerClassReferences rewrites type references of the form
// pkg.Inner to pkg.Outer.Inner when Inner is a known nested class of that
// package. Model producers that resolve names file by file often lose the
// enclosing class; this runs once over the whole set.
func ResolveInnerClassReferences(classes []*ClassModel) {
	inner := buildInnerClassMap(classes)
	if len(inner) == 0 {
		return
	}
	fix := func(name string) string { return fixTypeName(name, inner) }
	for _, model := range classes {
		fixClassModelTypes(model, fix)
	}
}

// buildInnerClassMap maps package -> simple name -> qualified nested class.
func buildInnerClassMap(classes []*ClassModel) map[string]map[string]string {
	all := make(map[string]bool)
	for _, model := range classes {
		for _, ic := range model.InnerClasses {
			all[ic.InnerClass] = true
		}
		if isInnerClass(model) {
			all[model.Name] = true
		}
	}

	result := make(map[string]map[string]string)
	for name := range all {
		pkg := PackageOf(name)
		if pkg == "" {
			continue
		}
		if result[pkg] == nil {
			result[pkg] = make(map[string]string)
		}
		result[pkg][SimpleName(name)] = name
	}
	return result
}

// PackageOf guesses the package of a qualified name: every component before
// the first one that starts with an upper-case letter. Without such a
// component everything but the last part is the package.
func PackageOf(qualified string) string {
	parts := strings.Split(qualified, ".")
	for i, part := range parts {
		if len(part) > 0 && part[0] >= 'A' && part[0] <= 'Z' {
			return strings.Join(parts[:i], ".")
		}
	}
	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], ".")
	}
	return ""
}

func isInnerClass(model *ClassModel) bool {
	if model.EnclosingClass != "" {
		return true
	}
	if model.Package == "" {
		return false
	}
	return strings.Contains(strings.TrimPrefix(model.Name, model.Package+"."), ".")
}

func fixClassModelTypes(model *ClassModel, fix func(string) string) {
	if model.SuperClass != "" {
		model.SuperClass = fix(model.SuperClass)
	}
	if model.SuperClassType != nil {
		fixType(model.SuperClassType, fix)
	}
	for i := range model.Interfaces {
		model.Interfaces[i] = fix(model.Interfaces[i])
	}
	for i := range model.InterfaceTypes {
		fixType(&model.InterfaceTypes[i], fix)
	}
	for i := range model.Fields {
		fixType(&model.Fields[i].Type, fix)
	}
	for _, methods := range [][]MethodModel{model.Constructors, model.Methods} {
		for i := range methods {
			fixMethod(&methods[i], fix)
		}
	}
	fixTypeParameters(model.TypeParameters, fix)
	for i := range model.RecordComponents {
		fixType(&model.RecordComponents[i].Type, fix)
	}
}

func fixMethod(m *MethodModel, fix func(string) string) {
	fixType(&m.ReturnType, fix)
	for j := range m.Parameters {
		fixType(&m.Parameters[j].Type, fix)
	}
	for j := range m.Exceptions {
		m.Exceptions[j] = fix(m.Exceptions[j])
	}
	fixTypeParameters(m.TypeParameters, fix)
}

func fixTypeParameters(params []TypeParameterModel, fix func(string) string) {
	for i := range params {
		for j := range params[i].Bounds {
			fixType(&params[i].Bounds[j], fix)
		}
	}
}

func fixType(t *TypeModel, fix func(string) string) {
	t.Name = fix(t.Name)
	for i := range t.TypeArguments {
		if t.TypeArguments[i].Type != nil {
			fixType(t.TypeArguments[i].Type, fix)
		}
		if t.TypeArguments[i].Bound != nil {
			fixType(t.TypeArguments[i].Bound, fix)
		}
	}
}

func fixTypeName(typeName string, inner map[string]map[string]string) string {
	lastDot := strings.LastIndex(typeName, ".")
	if lastDot == -1 {
		return typeName
	}
	if names, ok := inner[typeName[:lastDot]]; ok {
		if fullName, ok := names[typeName[lastDot+1:]]; ok {
			return fullName
		}
	}
	return typeName
}
