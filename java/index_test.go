package java

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleIndex() *Index {
	foo := &ClassModel{
		Name: "com.example.Foo",
		Fields: []FieldModel{
			{Name: "SIZE", Type: TypeModel{Name: "int"}},
		},
		Constructors: []MethodModel{
			{Name: "Foo"},
			{Name: "Foo", Parameters: []ParameterModel{{Name: "size", Type: TypeModel{Name: "int"}}}},
		},
		Methods: []MethodModel{
			{Name: "bar", Parameters: []ParameterModel{{Name: "n", Type: TypeModel{Name: "int"}}}},
			{Name: "bar", Parameters: []ParameterModel{
				{Name: "s", Type: TypeModel{Name: "java.lang.String", ArrayDepth: 1}},
				{Name: "m", Type: TypeModel{Name: "java.util.Map", TypeArguments: []TypeArgumentModel{{IsWildcard: true}}}},
			}},
		},
	}
	color := &ClassModel{
		Name:          "com.example.Color",
		Kind:          ClassKindEnum,
		EnumConstants: []EnumConstantModel{{Name: "RED"}},
	}
	inner := &ClassModel{Name: "com.example.Foo.Entry", EnclosingClass: "com.example.Foo"}
	other := &ClassModel{Name: "org.other.Foo"}
	return NewIndex([]*ClassModel{foo, color, inner, other}, []*PackageInfoModel{
		{Name: "com.example", Javadoc: "Examples."},
		{Name: "com.empty"},
	})
}

func TestIndexLookup(t *testing.T) {
	idx := sampleIndex()

	c, ok := idx.Lookup("com.example.Foo")
	require.True(t, ok)
	assert.Equal(t, "Foo", c.SimpleName)
	assert.Equal(t, "com.example", c.Package)

	_, ok = idx.Lookup("com.example.Missing")
	assert.False(t, ok)
}

func TestIndexLookupSimple(t *testing.T) {
	idx := sampleIndex()

	c, ok := idx.LookupSimple("Foo", "org.other")
	require.True(t, ok)
	assert.Equal(t, "org.other.Foo", c.Name)

	c, ok = idx.LookupSimple("Foo", "com.example")
	require.True(t, ok)
	assert.Equal(t, "com.example.Foo", c.Name)

	_, ok = idx.LookupSimple("Foo", "net.elsewhere")
	assert.False(t, ok, "ambiguous simple name")

	c, ok = idx.LookupSimple("Foo.Entry", "net.elsewhere")
	require.True(t, ok)
	assert.Equal(t, "com.example.Foo.Entry", c.Name)

	c, ok = idx.LookupSimple("Color", "")
	require.True(t, ok)
	assert.Equal(t, "com.example.Color", c.Name)
}

func TestIndexMember(t *testing.T) {
	idx := sampleIndex()

	tests := []struct {
		member string
		kind   MemberKind
		target string
	}{
		{"SIZE", MemberField, "com.example.Foo.SIZE"},
		{"bar", MemberMethod, "com.example.Foo.bar(int)"},
		{"bar(int)", MemberMethod, "com.example.Foo.bar(int)"},
		{"bar(String[], Map<?>)", MemberMethod, "com.example.Foo.bar(java.lang.String[], java.util.Map)"},
		{"bar(java.lang.String... s, java.util.Map m)", MemberMethod, "com.example.Foo.bar(java.lang.String[], java.util.Map)"},
		{"Foo(int)", MemberConstructor, "com.example.Foo.Foo(int)"},
		{"Foo()", MemberConstructor, "com.example.Foo.Foo()"},
	}
	for _, tt := range tests {
		t.Run(tt.member, func(t *testing.T) {
			ref, ok := idx.Member("com.example.Foo", tt.member)
			require.True(t, ok)
			assert.Equal(t, tt.kind, ref.Kind)
			assert.Equal(t, tt.target, ref.Target)
		})
	}

	ref, ok := idx.Member("com.example.Color", "RED")
	require.True(t, ok)
	assert.Equal(t, MemberEnumConstant, ref.Kind)

	_, ok = idx.Member("com.example.Foo", "bar(long)")
	assert.False(t, ok)
	_, ok = idx.Member("com.example.Nope", "bar")
	assert.False(t, ok)
}

func TestIndexPackages(t *testing.T) {
	idx := sampleIndex()
	assert.Equal(t, []string{"com.empty", "com.example", "org.other"}, idx.Packages())

	var names []string
	for _, c := range idx.Classes("com.example") {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"com.example.Color", "com.example.Foo", "com.example.Foo.Entry"}, names)

	info, ok := idx.Package("com.example")
	require.True(t, ok)
	assert.Equal(t, "Examples.", info.Javadoc)
	assert.Equal(t, "com.example", idx.PackageOf("com.example.Foo.Entry"))
	assert.Equal(t, "a.b", idx.PackageOf("a.b.Unknown"))
}

func TestLoadModels(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "foo.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"name": "com.example.Foo",
		"javadoc": "A foo.",
		"sourceURL": "file:///src/Foo.java",
		"methods": [{"name": "bar", "returnType": {"name": "void"}}]
	}`), 0o644))

	listPath := filepath.Join(dir, "list.json")
	require.NoError(t, os.WriteFile(listPath, []byte(`[{"name": "com.example.A"}, {"name": "com.example.B"}]`), 0o644))

	yamlPath := filepath.Join(dir, "models.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`packages:
  - name: com.example
    javadoc: Example package.
classes:
  - name: com.example.C
    kind: interface
---
name: com.example.D
fields:
  - name: count
    type:
      name: int
---
- name: com.example.E
`), 0o644))

	set, err := LoadModels(jsonPath, listPath, yamlPath)
	require.NoError(t, err)
	require.Len(t, set.Classes, 6)
	require.Len(t, set.Packages, 1)

	assert.Equal(t, "A foo.", set.Classes[0].Javadoc)
	assert.Equal(t, "/src/Foo.java", set.Classes[0].SourceURL.Path)
	assert.Equal(t, ClassKindInterface, set.Classes[3].Kind)
	assert.Equal(t, "int", set.Classes[4].Fields[0].Type.Name)
	assert.Equal(t, "com.example.E", set.Classes[5].Name)

	idx := set.Index()
	_, ok := idx.Lookup("com.example.D")
	assert.True(t, ok)
}

func TestLoadModelsErrors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "models.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o644))

	_, err := LoadModels(txt)
	assert.ErrorIs(t, err, ErrUnsupportedModelFormat)

	_, err = LoadModels(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadModels(bad)
	assert.Error(t, err)
}

func TestTypeModelString(t *testing.T) {
	typ := TypeModel{
		Name:       "java.util.Map",
		ArrayDepth: 1,
		TypeArguments: []TypeArgumentModel{
			{Type: &TypeModel{Name: "java.lang.String"}},
			{IsWildcard: true, BoundKind: "extends", Bound: &TypeModel{Name: "java.lang.Number"}},
		},
	}
	assert.Equal(t, "java.util.Map<java.lang.String, ? extends java.lang.Number>[]", typ.String())
	assert.Equal(t, "Map<String, ? extends Number>[]", typ.Format(SimpleName))
	assert.True(t, typ.IsArray())
	assert.Equal(t, "Map<String, ? extends Number>", typ.ElementType().Format(SimpleName))
	assert.False(t, typ.ElementType().IsArray())
	assert.Equal(t, typ.ElementType(), typ.ElementType().ElementType())

	var seen []string
	typ.Walk(func(t TypeModel) { seen = append(seen, t.Name) })
	assert.Equal(t, []string{"java.util.Map", "java.lang.String", "java.lang.Number"}, seen)
}
