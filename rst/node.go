// Package rst is an in-memory reStructuredText document model. Every node
// knows how to serialize itself; containers serialize their children and
// indent them as the dialect requires.
package rst

import (
	"strings"
)

type Kind int

const (
	KindDocument Kind = iota
	KindParagraph
	KindTitle
	KindList
	KindListItem
	KindTable
	KindTableRow
	KindTableCell
	KindCodeBlock
	KindLiteralBlock
	KindDirective
	KindField
	KindRubric
	KindText
	KindEmphasis
	KindStrong
	KindLiteral
	KindReference
	KindLineBreak
	KindRaw
	KindFieldList
	KindTarget
)

var kindNames = [...]string{
	KindDocument:     "document",
	KindParagraph:    "paragraph",
	KindTitle:        "title",
	KindList:         "list",
	KindListItem:     "list-item",
	KindTable:        "table",
	KindTableRow:     "table-row",
	KindTableCell:    "table-cell",
	KindCodeBlock:    "code-block",
	KindLiteralBlock: "literal-block",
	KindDirective:    "directive",
	KindField:        "field",
	KindRubric:       "rubric",
	KindText:         "inline-text",
	KindEmphasis:     "emphasis",
	KindStrong:       "strong",
	KindLiteral:      "literal",
	KindReference:    "inline-reference",
	KindLineBreak:    "line-break",
	KindRaw:          "raw",
	KindFieldList:    "field-list",
	KindTarget:       "target",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is a unit of the output document. Children are kept in insertion
// order, which is the reading order of the document.
type Node interface {
	Kind() Kind
	Children() []Node
	AddChild(child Node)
	Serialize() string
}

// Inline is a flow-level span. Inline containers never hold block nodes.
type Inline interface {
	Node
	inline()
}

// container holds block children.
type container struct {
	children []Node
}

func (c *container) Children() []Node { return c.children }

func (c *container) AddChild(child Node) {
	if child == nil {
		return
	}
	c.children = append(c.children, child)
}

// leaf is embedded by nodes without children. AddChild is a no-op.
type leaf struct{}

func (leaf) Children() []Node { return nil }
func (leaf) AddChild(Node)    {}

// joinBlocks serializes block nodes and separates them with one blank line.
// Empty serializations are skipped.
func joinBlocks(nodes []Node) string {
	var parts []string
	for _, n := range nodes {
		if n == nil {
			continue
		}
		s := strings.TrimRight(n.Serialize(), "\n")
		if strings.TrimSpace(s) == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n\n")
}

// indent prefixes every non-empty line of text with n spaces.
func indent(text string, n int) string {
	if text == "" {
		return ""
	}
	pad := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// hangingIndent places the first line of text after prefix and indents the
// remaining lines to the width of prefix.
func hangingIndent(prefix, text string) string {
	lines := strings.Split(text, "\n")
	pad := strings.Repeat(" ", len(prefix))
	var sb strings.Builder
	for i, line := range lines {
		if i == 0 {
			sb.WriteString(strings.TrimRight(prefix+line, " "))
			continue
		}
		sb.WriteString("\n")
		if strings.TrimSpace(line) != "" {
			sb.WriteString(pad)
			sb.WriteString(line)
		}
	}
	return sb.String()
}

// PlainText returns the text content of a node and its descendants without
// any markup.
func PlainText(n Node) string {
	if n == nil {
		return ""
	}
	switch v := n.(type) {
	case *Text:
		return v.Text
	case *Literal:
		return v.Code
	case *Reference:
		return v.Label()
	case *LineBreak:
		return "\n"
	case *InlineRaw:
		return v.Text
	case *Title:
		return v.Text
	case *CodeBlock:
		return v.Code
	case *LiteralBlock:
		return v.Text
	case *Raw:
		return v.Text
	case *Rubric:
		return v.Text
	}
	var sb strings.Builder
	for _, c := range n.Children() {
		sb.WriteString(PlainText(c))
	}
	return sb.String()
}
