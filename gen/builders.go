package gen

import (
	"path"
	"sort"
	"strings"

	"github.com/dhamidi/rstdoc/java"
	"github.com/dhamidi/rstdoc/java/javadoc"
	"github.com/dhamidi/rstdoc/rst"
)

// Heading levels of a class document.
const (
	levelType    = 1
	levelSection = 2
	levelMember  = 3
)

// memberBlock builds the directive of one member: the signature, the
// converted comment and its block tags. ok is false for members hidden
// with @hidden.
func memberBlock(c *docContext, directive, signature, javadocText string) (d *rst.Directive, ok bool) {
	comment := c.comment(javadocText)
	tags := c.tags(comment.Tags)
	if tags.hidden {
		return nil, false
	}
	d = rst.NewDirective(directive, signature)
	d.SetOption("outertype", outerType(c.class))
	for _, n := range c.convert(comment.Body) {
		d.AddChild(n)
	}
	for _, n := range tags.nodes() {
		d.AddChild(n)
	}
	return d, true
}

type FieldBuilder struct {
	ctx   *docContext
	Field *java.FieldModel
}

func (b FieldBuilder) Build(imports *Imports) ([]rst.Node, bool) {
	c := b.ctx.forField(b.Field)
	d, ok := memberBlock(c, "java:field", fieldSignature(b.Field, imports), b.Field.Javadoc)
	if !ok {
		return nil, false
	}
	return []rst.Node{rst.NewTitle(b.Field.Name, levelMember), d}, true
}

type EnumConstantBuilder struct {
	ctx      *docContext
	Constant *java.EnumConstantModel
}

func (b EnumConstantBuilder) Build(imports *Imports) ([]rst.Node, bool) {
	sig := enumConstantSignature(b.ctx.class, b.Constant, imports)
	c := b.ctx.forField(&java.FieldModel{Name: b.Constant.Name})
	d, ok := memberBlock(c, "java:field", sig, b.Constant.Javadoc)
	if !ok {
		return nil, false
	}
	return []rst.Node{rst.NewTitle(b.Constant.Name, levelMember), d}, true
}

type ConstructorBuilder struct {
	ctx         *docContext
	Constructor *java.MethodModel
}

func (b ConstructorBuilder) Build(imports *Imports) ([]rst.Node, bool) {
	c := b.ctx.forMethod(b.Constructor)
	sig := methodSignature(c.class, b.Constructor, true, imports)
	d, ok := memberBlock(c, "java:constructor", sig, b.Constructor.Javadoc)
	if !ok {
		return nil, false
	}
	return []rst.Node{rst.NewTitle(c.class.SimpleName, levelMember), d}, true
}

type MethodBuilder struct {
	ctx    *docContext
	Method *java.MethodModel
}

func (b MethodBuilder) Build(imports *Imports) ([]rst.Node, bool) {
	c := b.ctx.forMethod(b.Method)
	sig := methodSignature(c.class, b.Method, false, imports)
	d, ok := memberBlock(c, "java:method", sig, b.Method.Javadoc)
	if !ok {
		return nil, false
	}
	return []rst.Node{rst.NewTitle(b.Method.Name, levelMember), d}, true
}

// ImportBuilder emits the import directives of a class document.
type ImportBuilder struct {
	Imports *Imports
	Package string
}

func (b ImportBuilder) Build() []rst.Node {
	var out []rst.Node
	for _, d := range b.Imports.Directives(b.Package) {
		out = append(out, d)
	}
	return out
}

type memberBuilder interface {
	Build(imports *Imports) ([]rst.Node, bool)
}

type section struct {
	title   string
	members []memberBuilder
}

// ClassBuilder builds the document of one type.
type ClassBuilder struct {
	g     *Generator
	ctx   *docContext
	Class *java.ClassModel
}

func (g *Generator) ClassBuilder(class *java.ClassModel) *ClassBuilder {
	return &ClassBuilder{g: g, ctx: g.newContext(class), Class: class}
}

// Hidden reports whether the class comment carries @hidden.
func (b *ClassBuilder) Hidden() bool {
	for _, t := range javadoc.Parse(b.Class.Javadoc).Tags {
		if _, ok := t.(javadoc.Hidden); ok {
			return true
		}
	}
	return false
}

// Build lays out the document: imports, package, annotation summary,
// title, type signature with the class comment, then one section per
// member kind. imports receives every type the document references.
func (b *ClassBuilder) Build(imports *Imports) *rst.Document {
	c := b.ctx
	class := b.Class

	typeDir := b.typeDirective(imports)
	annotations := c.annotationSummary(class.Annotations, imports)

	var body []rst.Node
	for _, s := range b.sections() {
		var nodes []rst.Node
		for _, m := range s.members {
			memberImports := imports.Fork()
			built, ok := m.Build(memberImports)
			if !ok {
				continue
			}
			imports.Merge(memberImports)
			nodes = append(nodes, built...)
		}
		if len(nodes) == 0 {
			continue
		}
		body = append(body, rst.NewTitle(s.title, levelSection))
		body = append(body, nodes...)
	}

	doc := rst.NewDocument()
	for _, n := range (ImportBuilder{Imports: imports, Package: class.Package}).Build() {
		doc.AddChild(n)
	}
	doc.AddChild(rst.NewDirective("java:package", class.Package))
	if annotations != nil {
		doc.AddChild(annotations)
	}
	doc.AddChild(rst.NewTitle(outerType(class), levelType))
	doc.AddChild(typeDir)
	for _, n := range body {
		doc.AddChild(n)
	}
	return doc
}

func (b *ClassBuilder) typeDirective(imports *Imports) *rst.Directive {
	d := rst.NewDirective("java:type", classSignature(b.Class, imports))
	if b.Class.EnclosingClass != "" {
		d.SetOption("outertype", outerType(&java.ClassModel{Name: b.Class.EnclosingClass, Package: b.Class.Package}))
	}
	for _, n := range b.ctx.commentBlocks(b.Class.Javadoc) {
		d.AddChild(n)
	}
	if src := b.source(); src != nil {
		d.AddChild(src)
	}
	return d
}

// source links the file the class was declared in.
func (b *ClassBuilder) source() *rst.Paragraph {
	file := b.Class.SourceFile
	if b.Class.SourceURL.IsZero() {
		if file == "" {
			return nil
		}
		return rst.NewParagraph(rst.NewText("Source: "), rst.NewLiteral(file))
	}
	if file == "" {
		if base := path.Base(b.Class.SourceURL.Path); base != "." && base != "/" {
			file = base
		}
	}
	return rst.NewParagraph(rst.NewText("Source: "), rst.NewExternalLink(b.Class.SourceURL.String(), file))
}

func (b *ClassBuilder) sections() []section {
	c := b.ctx
	class := b.Class
	var constants, fields, ctors, methods []memberBuilder

	for _, e := range sortedConstants(class.EnumConstants) {
		constants = append(constants, EnumConstantBuilder{ctx: c, Constant: e})
	}
	for _, f := range sortedFields(class.Fields) {
		if b.g.documented(f.Visibility, f.IsSynthetic) {
			fields = append(fields, FieldBuilder{ctx: c, Field: f})
		}
	}
	for _, m := range sortedMethods(class.Constructors) {
		if b.g.documented(m.Visibility, m.IsSynthetic) {
			ctors = append(ctors, ConstructorBuilder{ctx: c, Constructor: m})
		}
	}
	for _, m := range sortedMethods(class.Methods) {
		if b.g.documented(m.Visibility, m.IsSynthetic) {
			methods = append(methods, MethodBuilder{ctx: c, Method: m})
		}
	}
	return []section{
		{title: "Enum Constants", members: constants},
		{title: "Fields", members: fields},
		{title: "Constructors", members: ctors},
		{title: "Methods", members: methods},
	}
}

func sortedConstants(constants []java.EnumConstantModel) []*java.EnumConstantModel {
	out := make([]*java.EnumConstantModel, len(constants))
	for i := range constants {
		out[i] = &constants[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedFields(fields []java.FieldModel) []*java.FieldModel {
	out := make([]*java.FieldModel, len(fields))
	for i := range fields {
		out[i] = &fields[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedMethods(methods []java.MethodModel) []*java.MethodModel {
	out := make([]*java.MethodModel, len(methods))
	for i := range methods {
		out[i] = &methods[i]
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// documented reports whether a member with the given visibility is part of
// the output.
func (g *Generator) documented(v java.Visibility, synthetic bool) bool {
	if g.opts.IncludePrivate {
		return true
	}
	return !synthetic && java.IsVisible(v)
}

// PackageBuilder builds the index document of a package: title, package
// comment and a table of contents of its types.
type PackageBuilder struct {
	g       *Generator
	Package string
}

func (g *Generator) PackageBuilder(pkg string) *PackageBuilder {
	return &PackageBuilder{g: g, Package: pkg}
}

func (b *PackageBuilder) Build() *rst.Document {
	doc := rst.NewBuilder().
		Title(b.Package, levelType).
		Directive("java:package", b.Package).End()

	if info, ok := b.g.graph.Package(b.Package); ok && strings.TrimSpace(info.Javadoc) != "" {
		c := b.g.newContext(&java.ClassModel{Name: b.Package, Package: b.Package})
		doc.Append(c.commentBlocks(info.Javadoc)...)
	}

	var classes []*java.ClassModel
	for _, class := range b.g.graph.Classes(b.Package) {
		if b.g.documentedClass(class) {
			classes = append(classes, class)
		}
	}
	sort.Slice(classes, func(i, j int) bool { return outerType(classes[i]) < outerType(classes[j]) })
	if len(classes) == 0 {
		return doc.Document()
	}

	summary := rst.NewList(false)
	entries := make([]string, len(classes))
	for i, class := range classes {
		entries[i] = outerType(class)
		summary.AddChild(b.summary(class))
	}
	doc.Append(summary)
	doc.Directive("toctree", "").
		Option("maxdepth", "1").
		Body(rst.NewRaw(strings.Join(entries, "\n")))
	return doc.Document()
}

// summary links a class and adds the first sentence of its comment.
func (b *PackageBuilder) summary(class *java.ClassModel) *rst.Paragraph {
	ref := rst.NewCrossRef(class.Name, outerType(class))
	ref.Role = b.g.opts.CrossRefRole
	p := rst.NewParagraph(ref)
	p.Width = b.g.opts.Width
	if s := javadoc.FirstSentence(javadoc.Parse(class.Javadoc).Body); s != "" {
		p.AddChild(rst.NewText(" - " + s))
	}
	return p
}

// documentedClass reports whether a class gets a document of its own.
func (g *Generator) documentedClass(class *java.ClassModel) bool {
	if !g.documented(class.Visibility, class.IsSynthetic) {
		return false
	}
	return !g.ClassBuilder(class).Hidden()
}
