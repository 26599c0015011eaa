package gen

import (
	"context"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/rstdoc/java"
	"github.com/dhamidi/rstdoc/report"
	"github.com/dhamidi/rstdoc/rst"
)

// PackageIndexName is the document name of a package index.
const PackageIndexName = "package-index"

type Result struct {
	// Name is the qualified name of the class or package.
	Name string
	// Path is the slash separated output path, e.g. com/example/Foo.rst.
	Path string
	Text string
	// Fallback is set when the document could not be generated and Text
	// holds the fallback message.
	Fallback bool
}

// ClassDocument builds the document of one class.
func (g *Generator) ClassDocument(class *java.ClassModel) *rst.Document {
	imports := NewImports(g.graph.PackageOf)
	return g.ClassBuilder(class).Build(imports)
}

func (g *Generator) PackageDocument(pkg string) *rst.Document {
	return g.PackageBuilder(pkg).Build()
}

// CommentDocument converts one comment as if it were written on class. With
// a nil class, references to members of the current class do not resolve.
func (g *Generator) CommentDocument(class *java.ClassModel, text string) *rst.Document {
	if class == nil {
		class = &java.ClassModel{}
	}
	return rst.NewDocument(g.newContext(class).commentBlocks(text)...)
}

// Class generates and serializes one class. A failure while building or
// serializing is reported and yields the fallback text.
func (g *Generator) Class(class *java.ClassModel) Result {
	return g.render(class.Name, g.classPath(class), func() *rst.Document {
		return g.ClassDocument(class)
	})
}

func (g *Generator) Package(pkg string) Result {
	return g.render(pkg, g.packagePath(pkg), func() *rst.Document {
		return g.PackageDocument(pkg)
	})
}

func (g *Generator) render(name, out string, build func() *rst.Document) (res Result) {
	res = Result{Name: name, Path: out}
	defer func() {
		if p := recover(); p != nil {
			report.Reportf(g.reporter, report.SeverityError, "%s: generating documentation: %v", name, p)
			res.Text = g.fallback()
			res.Fallback = true
		}
	}()
	doc := build()
	failed := false
	reporter := report.Tee(g.reporter, reporterFunc(func(s report.Severity, _ string) {
		if s == report.SeverityError {
			failed = true
		}
	}))
	res.Text = doc.GetSerialized(g.fallback(), reporter)
	res.Fallback = failed
	return res
}

type reporterFunc func(report.Severity, string)

func (f reporterFunc) Report(s report.Severity, msg string) { f(s, msg) }

func (g *Generator) fallback() string {
	return g.opts.FallbackMessage + "\n"
}

func (g *Generator) classPath(class *java.ClassModel) string {
	return path.Join(packageDir(class.Package), outerType(class)+g.opts.OutputExtension)
}

func (g *Generator) packagePath(pkg string) string {
	return path.Join(packageDir(pkg), PackageIndexName+g.opts.OutputExtension)
}

func packageDir(pkg string) string {
	if pkg == "" {
		return "."
	}
	return strings.ReplaceAll(pkg, ".", "/")
}

// Generate renders classes concurrently, at most Options.Workers at a time.
// Results are in the order of classes. A class that fails yields its
// fallback text; only cancellation of ctx stops the batch.
func (g *Generator) Generate(ctx context.Context, classes []*java.ClassModel) ([]Result, error) {
	return g.batch(ctx, len(classes), func(i int) Result { return g.Class(classes[i]) })
}

// GeneratePackages renders the index documents of pkgs.
func (g *Generator) GeneratePackages(ctx context.Context, pkgs []string) ([]Result, error) {
	return g.batch(ctx, len(pkgs), func(i int) Result { return g.Package(pkgs[i]) })
}

func (g *Generator) batch(ctx context.Context, n int, run func(int) Result) ([]Result, error) {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.opts.Workers, 1))

	results := make([]Result, n)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = run(i)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// All renders every documented class of the graph followed by one index per
// package. Packages are in sorted order, classes sorted by name within
// their package.
func (g *Generator) All(ctx context.Context) ([]Result, error) {
	var classes []*java.ClassModel
	pkgs := g.graph.Packages()
	for _, pkg := range pkgs {
		for _, class := range g.graph.Classes(pkg) {
			if g.documentedClass(class) {
				classes = append(classes, class)
			}
		}
	}
	results, err := g.Generate(ctx, classes)
	if err != nil {
		return results, err
	}
	indexes, err := g.GeneratePackages(ctx, pkgs)
	return append(results, indexes...), err
}
