package rst

import (
	"strings"
)

// adornments maps heading levels to their underline character. Level 0 is
// also overlined.
var adornments = []byte{'#', '=', '-', '^', '~', '"'}

// Title is a section heading.
type Title struct {
	leaf
	Text  string
	Level int
}

func NewTitle(text string, level int) *Title { return &Title{Text: text, Level: level} }

func (*Title) Kind() Kind { return KindTitle }

func (t *Title) Serialize() string {
	text := Escape(strings.Join(strings.Fields(t.Text), " "))
	if text == "" {
		return ""
	}
	level := t.Level
	if level < 0 {
		level = 0
	}
	if level >= len(adornments) {
		level = len(adornments) - 1
	}
	line := strings.Repeat(string(adornments[level]), displayWidth(text))
	if level == 0 {
		return line + "\n" + text + "\n" + line
	}
	return text + "\n" + line
}

// Target is an explicit hyperlink target. It labels the block after it.
type Target struct {
	leaf
	Name string
}

func NewTarget(name string) *Target {
	return &Target{Name: strings.TrimSpace(CollapseSpace(name))}
}

func (*Target) Kind() Kind { return KindTarget }

// Serialize writes ".. _name:". Names that would end the target early are
// back-quoted.
func (t *Target) Serialize() string {
	if t.Name == "" {
		return ""
	}
	name := t.Name
	if strings.ContainsAny(name, ":`\\") || strings.HasPrefix(name, "_") {
		name = "`" + strings.NewReplacer(`\`, `\\`, "`", "\\`").Replace(name) + "`"
	}
	return ".. _" + name + ":"
}

// CodeBlock is a highlighted block of source code.
type CodeBlock struct {
	leaf
	Language string
	Code     string
}

func NewCodeBlock(language, code string) *CodeBlock {
	return &CodeBlock{Language: language, Code: code}
}

func (*CodeBlock) Kind() Kind { return KindCodeBlock }

func (c *CodeBlock) Serialize() string {
	code := trimBlankLines(c.Code)
	if code == "" {
		return ""
	}
	head := ".. code-block::"
	if c.Language != "" {
		head += " " + c.Language
	}
	return head + "\n\n" + indent(code, 3)
}

// LiteralBlock is preformatted text without highlighting.
type LiteralBlock struct {
	leaf
	Text string
}

func NewLiteralBlock(text string) *LiteralBlock { return &LiteralBlock{Text: text} }

func (*LiteralBlock) Kind() Kind { return KindLiteralBlock }

func (l *LiteralBlock) Serialize() string {
	text := trimBlankLines(l.Text)
	if text == "" {
		return ""
	}
	return "::\n\n" + indent(text, 3)
}

// Raw is block content that is already in the output dialect.
type Raw struct {
	leaf
	Text string
}

func NewRaw(text string) *Raw { return &Raw{Text: text} }

func (*Raw) Kind() Kind          { return KindRaw }
func (r *Raw) Serialize() string { return strings.TrimRight(r.Text, "\n") }

// Rubric is an informal heading that does not start a section.
type Rubric struct {
	leaf
	Text string
}

func NewRubric(text string) *Rubric { return &Rubric{Text: text} }

func (*Rubric) Kind() Kind { return KindRubric }

func (r *Rubric) Serialize() string {
	text := strings.Join(strings.Fields(r.Text), " ")
	if text == "" {
		return ""
	}
	return ".. rubric:: " + Escape(text)
}

// Field is an entry of a field list, such as ":param x: the value". The
// first child paragraph is placed on the marker line; further blocks are
// indented below it.
type Field struct {
	container
	Name string
	Arg  string
}

func NewField(name, arg string, children ...Node) *Field {
	f := &Field{Name: name, Arg: arg}
	for _, c := range children {
		f.AddChild(c)
	}
	return f
}

func (*Field) Kind() Kind { return KindField }

func (f *Field) Serialize() string {
	marker := ":" + f.Name
	if f.Arg != "" {
		marker += " " + f.Arg
	}
	marker += ":"
	body := joinBlocks(f.children)
	if body == "" {
		return marker
	}
	first, rest, _ := strings.Cut(body, "\n")
	if strings.HasPrefix(body, ".. ") || strings.HasPrefix(body, "::") {
		return marker + "\n" + indent(body, 3)
	}
	out := marker + " " + first
	if rest != "" {
		out += "\n" + indent(rest, 3)
	}
	return out
}

// FieldList groups fields without blank lines between them.
type FieldList struct {
	container
}

func NewFieldList(fields ...*Field) *FieldList {
	fl := &FieldList{}
	for _, f := range fields {
		fl.AddChild(f)
	}
	return fl
}

func (*FieldList) Kind() Kind { return KindFieldList }

func (fl *FieldList) Serialize() string {
	var out []string
	for _, c := range fl.children {
		if s := strings.TrimRight(c.Serialize(), "\n"); s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n")
}

func trimBlankLines(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}
