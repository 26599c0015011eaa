package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/rstdoc/java"
)

func TestClassSignature(t *testing.T) {
	tests := []struct {
		name  string
		class java.ClassModel
		want  string
	}{
		{
			name: "generic class",
			class: java.ClassModel{
				Name: "com.example.Foo", SimpleName: "Foo", Package: "com.example",
				Kind: java.ClassKindClass, Visibility: java.VisibilityPublic, IsFinal: true,
				TypeParameters: []java.TypeParameterModel{
					{Name: "T", Bounds: []java.TypeModel{named("java.lang.Comparable", named("T"))}},
				},
				SuperClass: "com.example.Base",
				Interfaces: []string{"java.io.Serializable"},
			},
			want: "public final class Foo<T extends Comparable<T>> extends Base implements Serializable",
		},
		{
			name: "interface",
			class: java.ClassModel{
				Name: "com.example.Bag", SimpleName: "Bag", Package: "com.example",
				Kind: java.ClassKindInterface, Visibility: java.VisibilityPublic, IsAbstract: true,
				Interfaces: []string{"java.util.Collection"},
			},
			want: "public interface Bag extends Collection",
		},
		{
			name: "enum",
			class: java.ClassModel{
				Name: "com.example.Color", SimpleName: "Color", Package: "com.example",
				Kind: java.ClassKindEnum, Visibility: java.VisibilityPublic, IsFinal: true,
				SuperClass: "java.lang.Enum",
			},
			want: "public enum Color",
		},
		{
			name: "record",
			class: java.ClassModel{
				Name: "com.example.Point", SimpleName: "Point", Package: "com.example",
				Kind: java.ClassKindRecord, Visibility: java.VisibilityPublic, IsFinal: true,
				SuperClass: "java.lang.Record",
				RecordComponents: []java.RecordComponentModel{
					{Name: "x", Type: java.TypeModel{Name: "int"}},
					{Name: "y", Type: java.TypeModel{Name: "int"}},
				},
			},
			want: "public record Point(int x, int y)",
		},
		{
			name: "annotation type",
			class: java.ClassModel{
				Name: "com.example.Marker", SimpleName: "Marker", Package: "com.example",
				Kind: java.ClassKindAnnotation, Visibility: java.VisibilityPublic, IsAbstract: true,
				Interfaces: []string{"java.lang.annotation.Annotation"},
			},
			want: "public @interface Marker",
		},
		{
			name: "static nested sealed class",
			class: java.ClassModel{
				Name: "com.example.Outer.Shape", SimpleName: "Shape", Package: "com.example",
				Kind: java.ClassKindClass, Visibility: java.VisibilityProtected, IsStatic: true,
				IsAbstract: true, IsSealed: true, EnclosingClass: "com.example.Outer",
				PermittedSubclasses: []string{"com.example.Circle", "com.example.Square"},
			},
			want: "protected static abstract sealed class Shape permits Circle, Square",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classSignature(&tt.class, NewImports(nil)))
		})
	}
}

func TestMethodSignature(t *testing.T) {
	class := &java.ClassModel{Name: "com.example.Foo", SimpleName: "Foo", Package: "com.example", Kind: java.ClassKindClass}

	get := &java.MethodModel{
		Name:       "get",
		Visibility: java.VisibilityPublic,
		ReturnType: named("java.util.List", named("java.lang.String")),
		Parameters: []java.ParameterModel{{Name: "index", Type: java.TypeModel{Name: "int"}}},
		Exceptions: []string{"java.io.IOException"},
	}
	im := NewImports(nil)
	assert.Equal(t, "public List<String> get(int index) throws IOException", methodSignature(class, get, false, im))
	assert.Equal(t, []string{"java.io.IOException", "java.util.List"}, im.Filtered("com.example"))

	of := &java.MethodModel{
		Name:           "of",
		Visibility:     java.VisibilityPublic,
		IsStatic:       true,
		IsVarargs:      true,
		ReturnType:     named("java.util.Set", named("T")),
		TypeParameters: []java.TypeParameterModel{{Name: "T"}},
		Parameters:     []java.ParameterModel{{Name: "elements", Type: java.TypeModel{Name: "T", ArrayDepth: 1}}},
	}
	assert.Equal(t, "public static <T> Set<T> of(T... elements)", methodSignature(class, of, false, NewImports(nil)))

	ctor := &java.MethodModel{
		Name:       "Foo",
		Visibility: java.VisibilityProtected,
		Parameters: []java.ParameterModel{{Name: "name", Type: named("java.lang.String")}},
	}
	assert.Equal(t, "protected Foo(String name)", methodSignature(class, ctor, true, NewImports(nil)))

	iface := &java.ClassModel{Name: "com.example.Task", SimpleName: "Task", Package: "com.example", Kind: java.ClassKindInterface}
	run := &java.MethodModel{Name: "run", Visibility: java.VisibilityPublic, IsDefault: true, ReturnType: java.TypeModel{Name: "void"}}
	assert.Equal(t, "public default void run()", methodSignature(iface, run, false, NewImports(nil)))
}

func TestFieldSignature(t *testing.T) {
	f := &java.FieldModel{
		Name:       "CACHE",
		Visibility: java.VisibilityPrivate,
		IsStatic:   true,
		IsVolatile: true,
		Type:       named("java.util.Map", named("java.lang.String"), java.TypeModel{Name: "int", ArrayDepth: 1}),
	}
	assert.Equal(t, "private static volatile Map<String, int[]> CACHE", fieldSignature(f, NewImports(nil)))
}

func TestOuterType(t *testing.T) {
	assert.Equal(t, "Map.Entry", outerType(&java.ClassModel{Name: "java.util.Map.Entry", Package: "java.util"}))
	assert.Equal(t, "Foo", outerType(&java.ClassModel{Name: "Foo"}))
}
