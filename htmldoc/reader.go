// Package htmldoc converts the restricted HTML found in documentation
// comments into an rst document. A Reader walks the HTML and reports it to a
// Visitor; the Writer is the Visitor that builds the rst tree.
package htmldoc

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Visitor receives the elements of a fragment in document order. Start
// events come before the children of an element, end events after them.
type Visitor interface {
	VisitText(text string)
	// VisitAnchor reports <a name> or <a id> without href. The anchor's
	// children are visited afterwards as ordinary content.
	VisitAnchor(name string, attrs map[string]string)
	// VisitLink reports <a href>. label is the text of its children, which
	// are not visited.
	VisitLink(href string, attrs map[string]string, label string)
	// VisitCode reports a code span with its text.
	VisitCode(text string)
	// VisitPre reports preformatted text.
	VisitPre(text string)
	VisitLineBreak()

	StartParagraph()
	EndParagraph()
	StartList(ordered bool)
	EndList()
	StartListItem()
	EndListItem()
	StartDefinitionList()
	EndDefinitionList()
	StartTerm()
	EndTerm()
	StartDefinition()
	EndDefinition()
	StartTable()
	EndTable()
	StartRow()
	EndRow()
	StartCell(header bool)
	EndCell()
	StartEmphasis()
	EndEmphasis()
	StartStrong()
	EndStrong()
	StartHeading(level int)
	EndHeading()

	// VisitUnknown reports an element outside the supported subset. Its
	// children are still visited.
	VisitUnknown(tag string, attrs map[string]string)
}

// BaseVisitor implements Visitor with no-ops. Embed it to handle only some
// events.
type BaseVisitor struct{}

func (BaseVisitor) VisitText(string)                           {}
func (BaseVisitor) VisitAnchor(string, map[string]string)      {}
func (BaseVisitor) VisitLink(string, map[string]string, string) {}
func (BaseVisitor) VisitCode(string)                           {}
func (BaseVisitor) VisitPre(string)                            {}
func (BaseVisitor) VisitLineBreak()                            {}
func (BaseVisitor) StartParagraph()                            {}
func (BaseVisitor) EndParagraph()                              {}
func (BaseVisitor) StartList(bool)                             {}
func (BaseVisitor) EndList()                                   {}
func (BaseVisitor) StartListItem()                             {}
func (BaseVisitor) EndListItem()                               {}
func (BaseVisitor) StartDefinitionList()                       {}
func (BaseVisitor) EndDefinitionList()                         {}
func (BaseVisitor) StartTerm()                                 {}
func (BaseVisitor) EndTerm()                                   {}
func (BaseVisitor) StartDefinition()                           {}
func (BaseVisitor) EndDefinition()                             {}
func (BaseVisitor) StartTable()                                {}
func (BaseVisitor) EndTable()                                  {}
func (BaseVisitor) StartRow()                                  {}
func (BaseVisitor) EndRow()                                    {}
func (BaseVisitor) StartCell(bool)                             {}
func (BaseVisitor) EndCell()                                   {}
func (BaseVisitor) StartEmphasis()                             {}
func (BaseVisitor) EndEmphasis()                               {}
func (BaseVisitor) StartStrong()                               {}
func (BaseVisitor) EndStrong()                                 {}
func (BaseVisitor) StartHeading(int)                           {}
func (BaseVisitor) EndHeading()                                {}
func (BaseVisitor) VisitUnknown(string, map[string]string)     {}

type Reader struct {
	fragment string
}

func NewReader(fragment string) *Reader {
	return &Reader{fragment: fragment}
}

// Accept parses the fragment and walks it with v. A fragment that cannot be
// parsed produces no events.
func (r *Reader) Accept(v Visitor) error {
	if strings.TrimSpace(r.fragment) == "" {
		return nil
	}
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(r.fragment), context)
	if err != nil {
		return fmt.Errorf("parsing html fragment: %w", err)
	}
	for _, n := range nodes {
		walk(n, v)
	}
	return nil
}

func walk(n *html.Node, v Visitor) {
	switch n.Type {
	case html.TextNode:
		v.VisitText(n.Data)
		return
	case html.ElementNode:
	default:
		children(n, v)
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style:
	case atom.P:
		v.StartParagraph()
		children(n, v)
		v.EndParagraph()
	case atom.Br:
		v.VisitLineBreak()
	case atom.Ul, atom.Ol, atom.Menu:
		v.StartList(n.DataAtom == atom.Ol)
		children(n, v)
		v.EndList()
	case atom.Li:
		v.StartListItem()
		children(n, v)
		v.EndListItem()
	case atom.Dl:
		v.StartDefinitionList()
		children(n, v)
		v.EndDefinitionList()
	case atom.Dt:
		v.StartTerm()
		children(n, v)
		v.EndTerm()
	case atom.Dd:
		v.StartDefinition()
		children(n, v)
		v.EndDefinition()
	case atom.Table:
		v.StartTable()
		children(n, v)
		v.EndTable()
	case atom.Thead, atom.Tbody, atom.Tfoot:
		children(n, v)
	case atom.Tr:
		v.StartRow()
		children(n, v)
		v.EndRow()
	case atom.Td, atom.Th:
		v.StartCell(n.DataAtom == atom.Th)
		children(n, v)
		v.EndCell()
	case atom.Em, atom.I, atom.Cite, atom.Dfn:
		v.StartEmphasis()
		children(n, v)
		v.EndEmphasis()
	case atom.Strong, atom.B:
		v.StartStrong()
		children(n, v)
		v.EndStrong()
	case atom.Code, atom.Tt, atom.Var, atom.Samp, atom.Kbd:
		if hasLink(n) {
			children(n, v)
			return
		}
		v.VisitCode(text(n))
	case atom.Pre:
		v.VisitPre(text(n))
	case atom.A:
		attrs := attrMap(n)
		if href, ok := attrs["href"]; ok {
			v.VisitLink(href, attrs, text(n))
			return
		}
		if name := firstAttr(attrs, "name", "id"); name != "" {
			v.VisitAnchor(name, attrs)
		}
		children(n, v)
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		v.StartHeading(int(n.Data[1] - '0'))
		children(n, v)
		v.EndHeading()
	default:
		v.VisitUnknown(n.Data, attrMap(n))
		children(n, v)
	}
}

func children(n *html.Node, v Visitor) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, v)
	}
}

func attrMap(n *html.Node) map[string]string {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

func firstAttr(attrs map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := attrs[k]; v != "" {
			return v
		}
	}
	return ""
}

// text returns the text of n and its descendants. Line breaks become
// newlines.
func text(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			sb.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			sb.WriteString("\n")
		case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style):
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				collect(c)
			}
		}
	}
	collect(n)
	return sb.String()
}

func hasLink(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.A {
			if _, ok := attrMap(c)["href"]; ok {
				return true
			}
		}
		if hasLink(c) {
			return true
		}
	}
	return false
}
