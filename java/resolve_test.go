package java

import (
	"testing"
)

func TestResolveInnerClassReferences(t *testing.T) {
	// A consumer in another file resolved HeaderInfo against the package
	// instead of its enclosing class.
	authentication := &ClassModel{
		Name:       "org.eclipse.jetty.client.Authentication",
		SimpleName: "Authentication",
		Package:    "org.eclipse.jetty.client",
		InnerClasses: []InnerClassModel{
			{
				InnerClass: "org.eclipse.jetty.client.Authentication.HeaderInfo",
				OuterClass: "org.eclipse.jetty.client.Authentication",
				InnerName:  "HeaderInfo",
				IsStatic:   true,
			},
		},
		Methods: []MethodModel{
			{Name: "createHeader", ReturnType: TypeModel{Name: "org.eclipse.jetty.client.HeaderInfo"}},
		},
	}
	consumer := &ClassModel{
		Name:    "org.eclipse.jetty.client.SomeConsumer",
		Package: "org.eclipse.jetty.client",
		Methods: []MethodModel{
			{
				Name:       "process",
				ReturnType: TypeModel{Name: "void"},
				Parameters: []ParameterModel{
					{Name: "header", Type: TypeModel{Name: "org.eclipse.jetty.client.HeaderInfo"}},
				},
			},
		},
		Fields: []FieldModel{
			{
				Name: "headers",
				Type: TypeModel{
					Name: "java.util.List",
					TypeArguments: []TypeArgumentModel{
						{Type: &TypeModel{Name: "org.eclipse.jetty.client.HeaderInfo"}},
					},
				},
			},
		},
	}

	ResolveInnerClassReferences([]*ClassModel{authentication, consumer})

	want := "org.eclipse.jetty.client.Authentication.HeaderInfo"
	if got := authentication.Methods[0].ReturnType.Name; got != want {
		t.Errorf("createHeader return type = %q, want %q", got, want)
	}
	if got := consumer.Methods[0].Parameters[0].Type.Name; got != want {
		t.Errorf("process parameter type = %q, want %q", got, want)
	}
	if got := consumer.Fields[0].Type.TypeArguments[0].Type.Name; got != want {
		t.Errorf("headers type argument = %q, want %q", got, want)
	}
	if got := consumer.Fields[0].Type.Name; got != "java.util.List" {
		t.Errorf("headers type = %q, want java.util.List", got)
	}
}

func TestResolveInnerClassReferencesFromNestedModels(t *testing.T) {
	outer := &ClassModel{
		Name:    "org.example.Processor",
		Package: "org.example",
		Methods: []MethodModel{
			{
				Name:       "process",
				Parameters: []ParameterModel{{Name: "task", Type: TypeModel{Name: "org.example.Task"}}},
				Exceptions: []string{"org.example.Failure"},
			},
		},
	}
	task := &ClassModel{Name: "org.example.Processor.Task", Package: "org.example"}
	failure := &ClassModel{Name: "org.example.Processor.Failure", EnclosingClass: "org.example.Processor"}

	ResolveInnerClassReferences([]*ClassModel{outer, task, failure})

	if got := outer.Methods[0].Parameters[0].Type.Name; got != "org.example.Processor.Task" {
		t.Errorf("task parameter = %q", got)
	}
	if got := outer.Methods[0].Exceptions[0]; got != "org.example.Processor.Failure" {
		t.Errorf("exception = %q", got)
	}
}

func TestPackageOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"org.eclipse.jetty.client.Authentication.HeaderInfo", "org.eclipse.jetty.client"},
		{"com.example.Foo", "com.example"},
		{"Foo", ""},
		{"com.example.lower", "com.example"},
		{"single", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PackageOf(tt.name); got != tt.want {
				t.Errorf("PackageOf(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
