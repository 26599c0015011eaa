package gen

import (
	"strings"

	"github.com/dhamidi/rstdoc/java/javadoc"
	"github.com/dhamidi/rstdoc/report"
	"github.com/dhamidi/rstdoc/rst"
)

// tagBlocks holds the rst produced by the block tags of one comment.
type tagBlocks struct {
	fields       []*rst.Field
	see          []rst.Node
	since        string
	deprecated   []rst.Node
	isDeprecated bool
	// deprecatedIn is the release named by @Deprecated(since = ...).
	deprecatedIn string
	authors      []string
	hidden       bool
}

func (c *docContext) tags(tags []javadoc.BlockTag) *tagBlocks {
	tb := &tagBlocks{}
	for _, tag := range tags {
		switch t := tag.(type) {
		case javadoc.Param:
			name := t.Name
			if t.IsTypeParam {
				name = "<" + name + ">"
			}
			tb.fields = append(tb.fields, rst.NewField("param", name, c.convert(t.Description)...))
		case javadoc.Return:
			tb.fields = append(tb.fields, rst.NewField("return", "", c.convert(t.Description)...))
		case javadoc.Throws:
			tb.fields = append(tb.fields, rst.NewField("throws", t.Exception, c.convert(t.Description)...))
		case javadoc.See:
			tb.see = append(tb.see, c.convertHTML(c.renderer.See(t))...)
		case javadoc.Since:
			tb.since = strings.TrimSpace(javadoc.PlainText(t.Version))
		case javadoc.Deprecated:
			tb.isDeprecated = true
			tb.deprecatedIn = c.deprecatedSince()
			tb.deprecated = append(tb.deprecated, c.convert(t.Description)...)
		case javadoc.Author:
			if name := strings.TrimSpace(javadoc.PlainText(t.Name)); name != "" {
				tb.authors = append(tb.authors, name)
			}
		case javadoc.Version:
			tb.fields = append(tb.fields, rst.NewField("version", "", c.convert(t.Version)...))
		case javadoc.Hidden:
			tb.hidden = true
		case javadoc.Serial, javadoc.SerialData, javadoc.SerialField,
			javadoc.Provides, javadoc.Uses, javadoc.Spec, javadoc.UnknownBlock:
			report.Reportf(c.g.reporter, report.SeverityDebug, "%s: dropping @%s", c.where(), tag.TagName())
		default:
			report.Reportf(c.g.reporter, report.SeverityWarning, "%s: unhandled block tag %T", c.where(), tag)
		}
	}
	return tb
}

// nodes returns the blocks in output order: field list, see also, version
// added, deprecation, authors.
func (tb *tagBlocks) nodes() []rst.Node {
	var out []rst.Node
	if len(tb.fields) > 0 {
		out = append(out, rst.NewFieldList(tb.fields...))
	}
	if len(tb.see) > 0 {
		out = append(out, rst.NewDirective("seealso", "", tb.see...))
	}
	if tb.since != "" {
		out = append(out, rst.NewDirective("versionadded", tb.since))
	}
	if tb.isDeprecated {
		out = append(out, tb.deprecation())
	}
	for _, a := range tb.authors {
		out = append(out, rst.NewDirective("codeauthor", a))
	}
	return out
}

// deprecation needs a version for the deprecated directive. Without one the
// description goes into a warning.
func (tb *tagBlocks) deprecation() rst.Node {
	if tb.deprecatedIn != "" {
		return rst.NewDirective("deprecated", tb.deprecatedIn, tb.deprecated...)
	}
	body := append([]rst.Node{rst.NewParagraph(rst.NewText("Deprecated."))}, tb.deprecated...)
	return rst.NewDirective("warning", "", body...)
}

// deprecatedSince returns the since value of the java.lang.Deprecated
// annotation on the documented member or class.
func (c *docContext) deprecatedSince() string {
	annotations := c.class.Annotations
	switch {
	case c.method != nil:
		annotations = c.method.Annotations
	case c.field != nil:
		annotations = c.field.Annotations
	}
	for _, a := range annotations {
		if a.Type != "java.lang.Deprecated" && a.Type != "Deprecated" {
			continue
		}
		if v, ok := a.Values["since"].(string); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
