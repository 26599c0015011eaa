package java

import (
	"strings"
)

// IsArray reports whether t has at least one array dimension.
func (t TypeModel) IsArray() bool {
	return t.ArrayDepth > 0
}

// ElementType strips one array dimension.
func (t TypeModel) ElementType() TypeModel {
	if t.ArrayDepth == 0 {
		return t
	}
	t.ArrayDepth--
	return t
}

// String renders the type with qualified names, e.g.
// java.util.Map<java.lang.String, ? extends java.lang.Number>[].
func (t TypeModel) String() string {
	return t.Format(func(name string) string { return name })
}

// Format renders the type, passing every class name through name.
func (t TypeModel) Format(name func(string) string) string {
	var sb strings.Builder
	sb.WriteString(name(t.Name))
	if len(t.TypeArguments) > 0 {
		sb.WriteString("<")
		for i, arg := range t.TypeArguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.Format(name))
		}
		sb.WriteString(">")
	}
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (a TypeArgumentModel) Format(name func(string) string) string {
	if a.IsWildcard {
		if a.Bound == nil || a.BoundKind == "" {
			return "?"
		}
		return "? " + a.BoundKind + " " + a.Bound.Format(name)
	}
	if a.Type == nil {
		return "?"
	}
	return a.Type.Format(name)
}

// Walk calls fn for t and every type nested in its type arguments.
func (t TypeModel) Walk(fn func(TypeModel)) {
	fn(t)
	for _, arg := range t.TypeArguments {
		if arg.Type != nil {
			arg.Type.Walk(fn)
		}
		if arg.Bound != nil {
			arg.Bound.Walk(fn)
		}
	}
}

func IsPrimitiveName(name string) bool {
	switch name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double", "void":
		return true
	}
	return false
}

// SimpleName returns the last component of a qualified name.
func SimpleName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
