package javadoc

import (
	"strings"

	"golang.org/x/net/html"
)

// Linker renders a program element reference as HTML. label is plain text
// and may be empty.
type Linker interface {
	Link(ref, label string, plain bool) string
}

// Qualifier maps a reference as written in a comment, e.g. "List#add(E)",
// to a qualified cross-reference target such as "java.util.List.add(E)".
type Qualifier func(ref string) (target string, ok bool)

// SentinelLinker emits <a href="@target">label</a>. The htmldoc writer turns
// such links into cross references.
type SentinelLinker struct {
	Qualify Qualifier
}

func (l SentinelLinker) Link(ref, label string, plain bool) string {
	target, ok := qualify(l.Qualify, ref)
	if !ok {
		return unresolvedLink(ref, label, plain)
	}
	return `<a href="@` + html.EscapeString(target) + `">` + html.EscapeString(label) + `</a>`
}

// RoleLinker emits the cross-reference role inside <code>, which the
// htmldoc writer passes through untouched.
type RoleLinker struct {
	Qualify Qualifier
	Role    string
}

func (l RoleLinker) Link(ref, label string, plain bool) string {
	target, ok := qualify(l.Qualify, ref)
	if !ok {
		return unresolvedLink(ref, label, plain)
	}
	role := l.Role
	if role == "" {
		role = "java:ref"
	}
	text := target
	if label != "" && label != target {
		text = label + " <" + target + ">"
	}
	return "<code>:" + role + ":`" + html.EscapeString(text) + "`</code>"
}

func qualify(q Qualifier, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	if q == nil {
		return DisplayReference(ref), true
	}
	return q(ref)
}

func unresolvedLink(ref, label string, plain bool) string {
	if label == "" {
		label = DisplayReference(ref)
	}
	if plain {
		return html.EscapeString(label)
	}
	return "<code>" + html.EscapeString(label) + "</code>"
}

// DisplayReference writes a reference the way it reads in prose:
// "#size()" becomes "size()" and "List#add" becomes "List.add".
func DisplayReference(ref string) string {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "#")
	return strings.Replace(ref, "#", ".", 1)
}

// Renderer turns comment nodes into the restricted HTML subset.
type Renderer struct {
	Linker Linker
	// InheritDoc returns the HTML inherited by {@inheritDoc}. Without it the
	// tag renders as nothing.
	InheritDoc func(ref string) string
	// Value returns the constant shown by {@value}.
	Value func(ref string) (string, bool)
}

// RenderHTML renders nodes with the given linker.
func RenderHTML(nodes []Node, linker Linker) string {
	r := &Renderer{Linker: linker}
	return r.Render(nodes)
}

func (r *Renderer) Render(nodes []Node) string {
	w := &htmlWriter{r: r}
	w.nodes(nodes)
	return w.sb.String()
}

// See renders a @see tag.
func (r *Renderer) See(see See) string {
	switch see.Kind {
	case SeeString:
		q := html.EscapeString(`"` + see.Text + `"`)
		return `<a href="` + q + `">` + html.EscapeString(see.Text) + `</a>`
	case SeeHTML:
		return strings.TrimSpace(r.Render(see.HTML))
	}
	return r.linker().Link(see.Reference, strings.TrimSpace(PlainText(see.Label)), false)
}

func (r *Renderer) linker() Linker {
	if r.Linker == nil {
		return SentinelLinker{}
	}
	return r.Linker
}

type htmlWriter struct {
	r   *Renderer
	sb  strings.Builder
	pre int
}

func (w *htmlWriter) nodes(nodes []Node) {
	for _, n := range nodes {
		w.node(n)
	}
}

func (w *htmlWriter) node(n Node) {
	switch n := n.(type) {
	case Text:
		w.sb.WriteString(n.Content)
	case Code:
		w.code(n.Content)
	case Literal:
		w.sb.WriteString(html.EscapeString(n.Content))
	case Link:
		label := strings.TrimSpace(PlainText(n.Label))
		w.sb.WriteString(w.r.linker().Link(n.Reference, label, n.Plain))
	case Value:
		if w.r.Value != nil {
			if v, ok := w.r.Value(n.Reference); ok {
				w.sb.WriteString("<code>" + html.EscapeString(v) + "</code>")
				return
			}
		}
		if n.Reference != "" {
			w.sb.WriteString("<code>" + html.EscapeString(DisplayReference(n.Reference)) + "</code>")
		}
	case DocRoot:
	case InheritDoc:
		if w.r.InheritDoc != nil {
			w.sb.WriteString(w.r.InheritDoc(n.Reference))
		}
	case IndexTerm:
		w.sb.WriteString(html.EscapeString(n.Term))
	case Summary:
		w.nodes(n.Content)
	case InlineReturn:
		w.sb.WriteString("Returns ")
		w.nodes(n.Description)
	case SystemProperty:
		w.sb.WriteString("<code>" + html.EscapeString(n.Name) + "</code>")
	case Snippet:
		body := strings.Trim(n.Body, "\n")
		if strings.TrimSpace(body) == "" {
			return
		}
		if w.pre > 0 {
			w.sb.WriteString(html.EscapeString(body))
			return
		}
		w.sb.WriteString("<pre>" + html.EscapeString(body) + "</pre>")
	case UnknownInline:
		w.sb.WriteString(html.EscapeString(n.Content))
	case StartElement:
		if n.Name == "pre" && !n.SelfClose {
			w.pre++
		}
		w.sb.WriteString("<" + n.Name)
		for _, a := range n.Attributes {
			w.sb.WriteString(" " + a.Name + `="` + html.EscapeString(a.Value) + `"`)
		}
		if n.SelfClose {
			w.sb.WriteString("/")
		}
		w.sb.WriteString(">")
	case EndElement:
		if n.Name == "pre" && w.pre > 0 {
			w.pre--
		}
		w.sb.WriteString("</" + n.Name + ">")
	case Entity:
		w.sb.WriteString("&" + n.Name + ";")
	case Erroneous:
		w.sb.WriteString(html.EscapeString(n.Content))
	}
}

// code renders {@code}. Inside <pre> only the text is emitted; multi-line
// code elsewhere becomes its own <pre> block.
func (w *htmlWriter) code(content string) {
	switch {
	case w.pre > 0:
		w.sb.WriteString(html.EscapeString(content))
	case strings.Contains(strings.TrimSpace(content), "\n"):
		w.sb.WriteString("<pre>" + html.EscapeString(strings.Trim(content, "\n")) + "</pre>")
	default:
		w.sb.WriteString("<code>" + html.EscapeString(content) + "</code>")
	}
}

// PlainText returns the text of nodes without markup.
func PlainText(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case Text:
			sb.WriteString(n.Content)
		case Code:
			sb.WriteString(n.Content)
		case Literal:
			sb.WriteString(n.Content)
		case Link:
			if label := strings.TrimSpace(PlainText(n.Label)); label != "" {
				sb.WriteString(label)
			} else {
				sb.WriteString(DisplayReference(n.Reference))
			}
		case Value:
			sb.WriteString(DisplayReference(n.Reference))
		case IndexTerm:
			sb.WriteString(n.Term)
		case Summary:
			sb.WriteString(PlainText(n.Content))
		case InlineReturn:
			sb.WriteString(PlainText(n.Description))
		case SystemProperty:
			sb.WriteString(n.Name)
		case Entity:
			sb.WriteString(html.UnescapeString("&" + n.Name + ";"))
		case Erroneous:
			sb.WriteString(n.Content)
		}
	}
	return sb.String()
}

// FirstSentence returns the summary of a comment body: the {@summary} tag
// when present, otherwise the text up to the first period followed by
// whitespace.
func FirstSentence(body []Node) string {
	for _, n := range body {
		if s, ok := n.(Summary); ok {
			return strings.TrimSpace(PlainText(s.Content))
		}
	}
	text := strings.Join(strings.Fields(PlainText(body)), " ")
	if i := strings.Index(text, ". "); i >= 0 {
		return text[:i+1]
	}
	return text
}
