package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/rstdoc/java"
)

func named(name string, args ...java.TypeModel) java.TypeModel {
	t := java.TypeModel{Name: name}
	for i := range args {
		t.TypeArguments = append(t.TypeArguments, java.TypeArgumentModel{Type: &args[i]})
	}
	return t
}

func TestImportsFiltered(t *testing.T) {
	im := NewImports(nil)
	im.Add(named("java.util.Map", named("java.lang.String"), named("com.other.Value")))
	im.Add(named("com.example.Foo"))
	im.Add(named("int"))

	assert.Equal(t, []string{"com.example.Foo", "com.other.Value", "java.lang.String", "java.util.Map"}, im.Qualified())
	assert.Equal(t, []string{"com.other.Value", "java.util.Map"}, im.Filtered("com.example"))
	assert.Equal(t, "Map", im.Name("java.util.Map"))
	assert.Equal(t, "java.util.Set", im.Name("java.util.Set"))

	var args []string
	for _, d := range im.Directives("com.example") {
		assert.Equal(t, "java:import", d.Name)
		args = append(args, d.Args)
	}
	assert.Equal(t, []string{"com.other Value", "java.util Map"}, args)
}

func TestImportsNestedType(t *testing.T) {
	im := NewImports(nil)
	im.AddName("java.util.Map.Entry")
	require.True(t, im.Has("java.util.Map.Entry"))
	assert.Equal(t, "Map.Entry", im.Name("java.util.Map.Entry"))
	assert.Equal(t, "java.util Map.Entry", im.Directives("")[0].Args)
}

func TestImportsCollision(t *testing.T) {
	im := NewImports(nil)
	im.AddName("java.util.List")
	im.AddName("java.awt.List")

	assert.Equal(t, "List", im.Name("java.util.List"))
	assert.Equal(t, "java.awt.List", im.Name("java.awt.List"))
	assert.False(t, im.Has("java.awt.List"))
}

func TestImportsRecursiveBound(t *testing.T) {
	im := NewImports(nil)
	im.DeclareTypeParameters([]java.TypeParameterModel{
		{Name: "E", Bounds: []java.TypeModel{named("java.lang.Enum", named("E"))}},
		{Name: "T", Bounds: []java.TypeModel{named("java.lang.Comparable", named("U"))}},
		{Name: "U", Bounds: []java.TypeModel{named("java.util.List", named("T"))}},
	})

	im.Add(named("E"))
	im.Add(named("T"))

	assert.True(t, im.Has("java.lang.Enum"))
	assert.True(t, im.Has("java.lang.Comparable"))
	assert.True(t, im.Has("java.util.List"))
	assert.False(t, im.Has("E"))
	assert.Equal(t, []string{"java.lang.Comparable", "java.lang.Enum", "java.util.List"}, im.Qualified())
}

func TestImportsForkMerge(t *testing.T) {
	im := NewImports(nil)
	im.AddName("java.util.List")

	member := im.Fork()
	member.AddName("java.io.File")
	member.AddName("java.awt.List")
	assert.False(t, im.Has("java.io.File"))

	im.Merge(member)
	assert.True(t, im.Has("java.io.File"))
	assert.False(t, im.Has("java.awt.List"))
	assert.Equal(t, []string{"java.io.File", "java.util.List"}, im.Qualified())
}

func TestImportsSkipsPrimitivesAndUnqualified(t *testing.T) {
	im := NewImports(nil)
	for _, name := range []string{"", "void", "boolean", "T", "  "} {
		im.AddName(name)
	}
	assert.Empty(t, im.Qualified())
}
