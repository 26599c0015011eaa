// Package gen builds the rst documents of classes and packages from the
// entity graph. Comments are rendered to HTML by java/javadoc and converted
// by htmldoc; everything structural (signatures, sections, directives) is
// built here.
package gen

import (
	"errors"

	"github.com/dhamidi/rstdoc/config"
	"github.com/dhamidi/rstdoc/java"
	"github.com/dhamidi/rstdoc/java/javadoc"
	"github.com/dhamidi/rstdoc/report"
)

// ErrNoGraph is returned when a generator is created without an entity
// graph. Nothing can be documented without one.
var ErrNoGraph = errors.New("no entity graph")

// LinkerFunc returns the linker used for the comments of one class. qualify
// resolves references relative to that class.
type LinkerFunc func(qualify javadoc.Qualifier) javadoc.Linker

// Toolkit bundles what a generator depends on. It is read-only once the
// generator is created.
type Toolkit struct {
	Graph    java.EntityGraph
	Reporter report.Reporter
	Options  config.Options
	// Linker overrides the linker selected by Options.Linker.
	Linker LinkerFunc
}

type Generator struct {
	graph    java.EntityGraph
	reporter report.Reporter
	opts     config.Options
	linker   LinkerFunc
}

func New(tk Toolkit) (*Generator, error) {
	if tk.Graph == nil {
		return nil, ErrNoGraph
	}
	if err := tk.Options.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		graph:    tk.Graph,
		reporter: tk.Reporter,
		opts:     tk.Options,
		linker:   tk.Linker,
	}
	if g.reporter == nil {
		g.reporter = report.Discard
	}
	if g.linker == nil {
		g.linker = LinkerFor(tk.Options)
	}
	return g, nil
}

// LinkerFor returns the linker named by opts.Linker.
func LinkerFor(opts config.Options) LinkerFunc {
	if opts.Linker == config.LinkerRole {
		return func(q javadoc.Qualifier) javadoc.Linker {
			return javadoc.RoleLinker{Qualify: q, Role: opts.CrossRefRole}
		}
	}
	return func(q javadoc.Qualifier) javadoc.Linker {
		return javadoc.SentinelLinker{Qualify: q}
	}
}

func (g *Generator) Options() config.Options { return g.opts }

func (g *Generator) Graph() java.EntityGraph { return g.graph }
