package gen

import (
	"fmt"
	"strings"

	"github.com/dhamidi/rstdoc/htmldoc"
	"github.com/dhamidi/rstdoc/java"
	"github.com/dhamidi/rstdoc/java/javadoc"
	"github.com/dhamidi/rstdoc/report"
	"github.com/dhamidi/rstdoc/rst"
)

// docContext converts the comments of one class. References in comments are
// resolved relative to that class.
type docContext struct {
	g        *Generator
	class    *java.ClassModel
	resolver *htmldoc.Resolver
	renderer *javadoc.Renderer

	// The member whose comment is being converted, if any.
	field  *java.FieldModel
	method *java.MethodModel
}

func (g *Generator) newContext(class *java.ClassModel) *docContext {
	c := &docContext{
		g:        g,
		class:    class,
		resolver: htmldoc.NewResolver(g.graph, class),
	}
	c.bindRenderer()
	return c
}

func (c *docContext) bindRenderer() {
	c.renderer = &javadoc.Renderer{
		Linker:     c.g.linker(c.qualify),
		InheritDoc: c.inheritDoc,
		Value:      c.value,
	}
}

// forField and forMethod return a copy bound to a member.
func (c *docContext) forField(f *java.FieldModel) *docContext {
	cc := *c
	cc.field, cc.method = f, nil
	cc.bindRenderer()
	return &cc
}

func (c *docContext) forMethod(m *java.MethodModel) *docContext {
	cc := *c
	cc.field, cc.method = nil, m
	cc.bindRenderer()
	return &cc
}

// where names the documented entity in reports.
func (c *docContext) where() string {
	switch {
	case c.class.Name == "":
		return "comment"
	case c.method != nil:
		return c.class.Name + "." + c.method.Name
	case c.field != nil:
		return c.class.Name + "." + c.field.Name
	}
	return c.class.Name
}

func (c *docContext) qualify(ref string) (string, bool) {
	target, ok := c.resolver.Qualify(ref)
	if !ok {
		report.Reportf(c.g.reporter, report.SeverityWarning, "%s: unresolved reference %q", c.where(), ref)
	}
	return target, ok
}

// convert renders comment nodes to HTML and converts the HTML to rst blocks.
func (c *docContext) convert(nodes []javadoc.Node) []rst.Node {
	if len(nodes) == 0 {
		return nil
	}
	return c.convertHTML(c.renderer.Render(nodes))
}

func (c *docContext) convertHTML(fragment string) []rst.Node {
	if strings.TrimSpace(fragment) == "" {
		return nil
	}
	doc := htmldoc.ConvertWith(fragment, c.resolver, c.g.reporter, c.g.opts)
	return doc.Children()
}

// comment parses the comment of the current member. Methods without a
// comment inherit the comment of the method they override.
func (c *docContext) comment(text string) *javadoc.DocComment {
	if strings.TrimSpace(text) == "" && c.method != nil {
		text = c.inheritedComment()
	}
	return javadoc.Parse(text)
}

// commentBlocks converts a whole comment: the body followed by the blocks of
// its tags.
func (c *docContext) commentBlocks(text string) []rst.Node {
	comment := c.comment(text)
	return append(c.convert(comment.Body), c.tags(comment.Tags).nodes()...)
}

func (c *docContext) inheritDoc(string) string {
	if c.method == nil {
		return ""
	}
	text := c.inheritedComment()
	if text == "" {
		return ""
	}
	// Nested {@inheritDoc} tags are not followed further.
	r := *c.renderer
	r.InheritDoc = nil
	return r.Render(javadoc.Parse(text).Body)
}

// inheritedComment finds the comment of the method overridden by the current
// method, searching superclasses and interfaces breadth first.
func (c *docContext) inheritedComment() string {
	sig := java.MethodSignature(c.method)
	seen := map[string]bool{c.class.Name: true}
	queue := supertypes(c.class)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if seen[name] {
			continue
		}
		seen[name] = true
		super, ok := c.g.graph.Lookup(name)
		if !ok {
			continue
		}
		for i := range super.Methods {
			m := &super.Methods[i]
			if java.MethodSignature(m) == sig && strings.TrimSpace(m.Javadoc) != "" {
				return m.Javadoc
			}
		}
		queue = append(queue, supertypes(super)...)
	}
	return ""
}

func supertypes(c *java.ClassModel) []string {
	var out []string
	if c.SuperClass != "" {
		out = append(out, c.SuperClass)
	}
	return append(out, c.Interfaces...)
}

// value returns the constant shown by {@value ref}. An empty ref means the
// field being documented.
func (c *docContext) value(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		if c.field == nil || c.field.ConstantValue == nil {
			return "", false
		}
		return formatConstant(c.field.ConstantValue), true
	}
	className, member, ok := strings.Cut(ref, "#")
	if !ok {
		return "", false
	}
	class := c.class
	if className != "" {
		found, ok := c.g.graph.LookupSimple(className, c.class.Package)
		if !ok {
			return "", false
		}
		class = found
	}
	m, ok := c.g.graph.Member(class.Name, member)
	if !ok || m.Kind != java.MemberField {
		return "", false
	}
	for _, f := range m.Class.Fields {
		if f.Name == m.Name && f.ConstantValue != nil {
			return formatConstant(f.ConstantValue), true
		}
	}
	return "", false
}

func formatConstant(v interface{}) string {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
	}
	return fmt.Sprint(v)
}
