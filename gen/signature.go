package gen

import (
	"strings"

	"github.com/dhamidi/rstdoc/java"
)

// typeString formats t with the short names of collected types.
func typeString(t java.TypeModel, imports *Imports) string {
	imports.Add(t)
	return t.Format(imports.Name)
}

func typeParameters(params []java.TypeParameterModel, imports *Imports) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("<")
	for i, tp := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(tp.Name)
		if len(tp.Bounds) > 0 {
			sb.WriteString(" extends ")
			for j, b := range tp.Bounds {
				if j > 0 {
					sb.WriteString(" & ")
				}
				sb.WriteString(typeString(b, imports))
			}
		}
	}
	sb.WriteString(">")
	return sb.String()
}

func visibility(v java.Visibility) string {
	switch v {
	case java.VisibilityPublic, java.VisibilityProtected, java.VisibilityPrivate:
		return string(v) + " "
	}
	return ""
}

// classSignature is the argument of the java:type directive, e.g.
// "public final class Foo<T> extends Bar implements Baz".
func classSignature(c *java.ClassModel, imports *Imports) string {
	var sb strings.Builder
	imports.DeclareTypeParameters(c.TypeParameters)

	sb.WriteString(visibility(c.Visibility))
	if c.IsStatic && c.EnclosingClass != "" {
		sb.WriteString("static ")
	}
	if c.IsAbstract && c.Kind != java.ClassKindInterface && c.Kind != java.ClassKindAnnotation {
		sb.WriteString("abstract ")
	}
	if c.IsFinal && c.Kind != java.ClassKindRecord && c.Kind != java.ClassKindEnum {
		sb.WriteString("final ")
	}
	if c.IsSealed {
		sb.WriteString("sealed ")
	}

	switch c.Kind {
	case java.ClassKindInterface:
		sb.WriteString("interface ")
	case java.ClassKindEnum:
		sb.WriteString("enum ")
	case java.ClassKindRecord:
		sb.WriteString("record ")
	case java.ClassKindAnnotation:
		sb.WriteString("@interface ")
	default:
		sb.WriteString("class ")
	}

	sb.WriteString(c.SimpleName)
	sb.WriteString(typeParameters(c.TypeParameters, imports))

	if c.Kind == java.ClassKindRecord && len(c.RecordComponents) > 0 {
		sb.WriteString("(")
		for i, rc := range c.RecordComponents {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typeString(rc.Type, imports))
			sb.WriteString(" ")
			sb.WriteString(rc.Name)
		}
		sb.WriteString(")")
	}

	if super := superClass(c); super != nil {
		sb.WriteString(" extends ")
		sb.WriteString(typeString(*super, imports))
	}

	if ifaces := interfaces(c); len(ifaces) > 0 {
		if c.Kind == java.ClassKindInterface {
			sb.WriteString(" extends ")
		} else {
			sb.WriteString(" implements ")
		}
		for i, t := range ifaces {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typeString(t, imports))
		}
	}

	if c.IsSealed && len(c.PermittedSubclasses) > 0 {
		sb.WriteString(" permits ")
		for i, p := range c.PermittedSubclasses {
			if i > 0 {
				sb.WriteString(", ")
			}
			imports.AddName(p)
			sb.WriteString(imports.Name(p))
		}
	}
	return sb.String()
}

// superClass returns the declared superclass. Implicit superclasses of
// classes, enums and records are omitted.
func superClass(c *java.ClassModel) *java.TypeModel {
	if c.Kind == java.ClassKindInterface || c.Kind == java.ClassKindAnnotation {
		return nil
	}
	t := c.SuperClassType
	if t == nil {
		if c.SuperClass == "" {
			return nil
		}
		t = &java.TypeModel{Name: c.SuperClass}
	}
	switch t.Name {
	case "java.lang.Object", "java.lang.Enum", "java.lang.Record":
		return nil
	}
	return t
}

func interfaces(c *java.ClassModel) []java.TypeModel {
	if len(c.InterfaceTypes) > 0 {
		return c.InterfaceTypes
	}
	var out []java.TypeModel
	for _, name := range c.Interfaces {
		if c.Kind == java.ClassKindAnnotation && name == "java.lang.annotation.Annotation" {
			continue
		}
		out = append(out, java.TypeModel{Name: name})
	}
	return out
}

// methodSignature is the argument of java:method and java:constructor, e.g.
// "public static <T> List<T> of(T... elements) throws IOException".
func methodSignature(c *java.ClassModel, m *java.MethodModel, constructor bool, imports *Imports) string {
	var sb strings.Builder
	imports.DeclareTypeParameters(m.TypeParameters)

	sb.WriteString(visibility(m.Visibility))
	if c.Kind == java.ClassKindInterface && !constructor {
		if m.IsDefault {
			sb.WriteString("default ")
		}
	} else if m.IsAbstract {
		sb.WriteString("abstract ")
	}
	if m.IsStatic {
		sb.WriteString("static ")
	}
	if m.IsFinal {
		sb.WriteString("final ")
	}
	if m.IsSynchronized {
		sb.WriteString("synchronized ")
	}
	if m.IsNative {
		sb.WriteString("native ")
	}

	if tp := typeParameters(m.TypeParameters, imports); tp != "" {
		sb.WriteString(tp)
		sb.WriteString(" ")
	}
	if constructor {
		sb.WriteString(c.SimpleName)
	} else {
		sb.WriteString(typeString(m.ReturnType, imports))
		sb.WriteString(" ")
		sb.WriteString(m.Name)
	}

	sb.WriteString("(")
	for i, p := range m.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		t := p.Type
		varargs := m.IsVarargs && i == len(m.Parameters)-1 && t.IsArray()
		if varargs {
			t = t.ElementType()
		}
		sb.WriteString(typeString(t, imports))
		if varargs {
			sb.WriteString("...")
		}
		if p.Name != "" {
			sb.WriteString(" ")
			sb.WriteString(p.Name)
		}
	}
	sb.WriteString(")")

	if len(m.Exceptions) > 0 {
		sb.WriteString(" throws ")
		for i, e := range m.Exceptions {
			if i > 0 {
				sb.WriteString(", ")
			}
			imports.AddName(e)
			sb.WriteString(imports.Name(e))
		}
	}
	return sb.String()
}

func fieldSignature(f *java.FieldModel, imports *Imports) string {
	var sb strings.Builder
	sb.WriteString(visibility(f.Visibility))
	if f.IsStatic {
		sb.WriteString("static ")
	}
	if f.IsFinal {
		sb.WriteString("final ")
	}
	if f.IsVolatile {
		sb.WriteString("volatile ")
	}
	if f.IsTransient {
		sb.WriteString("transient ")
	}
	sb.WriteString(typeString(f.Type, imports))
	sb.WriteString(" ")
	sb.WriteString(f.Name)
	return sb.String()
}

// enumConstantSignature documents an enum constant the way the compiler
// declares it.
func enumConstantSignature(c *java.ClassModel, e *java.EnumConstantModel, imports *Imports) string {
	imports.AddName(c.Name)
	return "public static final " + imports.Name(c.Name) + " " + e.Name
}

// outerType is the value of the outertype option: the class name without
// its package, e.g. Map.Entry.
func outerType(c *java.ClassModel) string {
	if c.Package == "" {
		return c.Name
	}
	return strings.TrimPrefix(c.Name, c.Package+".")
}
