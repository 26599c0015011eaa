package rst

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Text is plain text. It is escaped on serialization.
type Text struct {
	leaf
	Text string
}

func NewText(s string) *Text { return &Text{Text: s} }

func (*Text) Kind() Kind          { return KindText }
func (*Text) inline()             {}
func (t *Text) Serialize() string { return Escape(t.Text) }

// InlineRaw is already-formatted inline markup, emitted verbatim.
type InlineRaw struct {
	leaf
	Text string
	// Markup marks text that begins and ends with inline markup, such as a
	// role, so the paragraph joiner keeps it apart from adjacent words.
	Markup bool
}

func NewInlineRaw(s string, markup bool) *InlineRaw { return &InlineRaw{Text: s, Markup: markup} }

func (*InlineRaw) Kind() Kind          { return KindRaw }
func (*InlineRaw) inline()             {}
func (r *InlineRaw) Serialize() string { return r.Text }

// LineBreak forces a new line inside a paragraph.
type LineBreak struct {
	leaf
}

func (*LineBreak) Kind() Kind        { return KindLineBreak }
func (*LineBreak) inline()           {}
func (*LineBreak) Serialize() string { return "\n" }

// Literal is a code span.
type Literal struct {
	leaf
	Code string
}

func NewLiteral(code string) *Literal { return &Literal{Code: code} }

func (*Literal) Kind() Kind { return KindLiteral }
func (*Literal) inline()    {}

func (l *Literal) Serialize() string {
	code := strings.Join(strings.Fields(l.Code), " ")
	if code == "" {
		return ""
	}
	if strings.Contains(code, "``") || strings.HasSuffix(code, "`") || strings.HasPrefix(code, "`") {
		return ":code:`" + strings.NewReplacer(`\`, `\\`, "`", "\\`").Replace(code) + "`"
	}
	return "``" + code + "``"
}

// span is the shared implementation of emphasis and strong emphasis. Nested
// markup is not expressible in rst, so children are flattened to plain text.
type span struct {
	children []Node
}

func (s *span) Children() []Node { return s.children }

func (s *span) AddChild(child Node) {
	if child == nil {
		return
	}
	if _, ok := child.(Inline); !ok {
		child = NewText(PlainText(child))
	}
	s.children = append(s.children, child)
}

func (s *span) render(marker string) string {
	var sb strings.Builder
	for _, c := range s.children {
		sb.WriteString(PlainText(c))
	}
	text := CollapseSpace(sb.String())
	core := strings.TrimSpace(text)
	if core == "" {
		return text
	}
	lead := text[:len(text)-len(strings.TrimLeftFunc(text, unicode.IsSpace))]
	trail := text[len(strings.TrimRightFunc(text, unicode.IsSpace)):]
	return lead + marker + Escape(core) + marker + trail
}

func (s *span) edges() (starts, ends bool) {
	var sb strings.Builder
	for _, c := range s.children {
		sb.WriteString(PlainText(c))
	}
	text := CollapseSpace(sb.String())
	if strings.TrimSpace(text) == "" {
		return false, false
	}
	first, _ := utf8.DecodeRuneInString(text)
	last, _ := utf8.DecodeLastRuneInString(text)
	return !unicode.IsSpace(first), !unicode.IsSpace(last)
}

type Emphasis struct {
	span
}

func NewEmphasis(children ...Inline) *Emphasis {
	e := &Emphasis{}
	for _, c := range children {
		e.AddChild(c)
	}
	return e
}

func (*Emphasis) Kind() Kind          { return KindEmphasis }
func (*Emphasis) inline()             {}
func (e *Emphasis) Serialize() string { return e.render("*") }

type Strong struct {
	span
}

func NewStrong(children ...Inline) *Strong {
	s := &Strong{}
	for _, c := range children {
		s.AddChild(c)
	}
	return s
}

func (*Strong) Kind() Kind          { return KindStrong }
func (*Strong) inline()             {}
func (s *Strong) Serialize() string { return s.render("**") }

// markupEdges reports whether the serialized form of n starts and ends with
// inline markup delimiters.
func markupEdges(n Node) (starts, ends bool) {
	switch v := n.(type) {
	case *Emphasis:
		return v.edges()
	case *Strong:
		return v.edges()
	case *Literal:
		return v.Serialize() != "", v.Serialize() != ""
	case *Reference:
		if v.RefKind == RefPassThrough {
			return false, false
		}
		return true, true
	case *InlineRaw:
		return v.Markup, v.Markup
	}
	return false, false
}

// CollapseSpace replaces every run of whitespace with a single space.
func CollapseSpace(s string) string {
	if s == "" {
		return s
	}
	var sb strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.WriteRune(r)
	}
	if space {
		sb.WriteByte(' ')
	}
	return sb.String()
}
