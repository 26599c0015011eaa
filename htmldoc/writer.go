package htmldoc

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/dhamidi/rstdoc/config"
	"github.com/dhamidi/rstdoc/report"
	"github.com/dhamidi/rstdoc/rst"
)

type State int

const (
	StateOutsideParagraph State = iota
	StateInsideParagraph
	StateInsideList
	StateInsideTableCell
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateOutsideParagraph:
		return "outside-paragraph"
	case StateInsideParagraph:
		return "inside-paragraph"
	case StateInsideList:
		return "inside-list"
	case StateInsideTableCell:
		return "inside-table-cell"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// Writer is the Visitor that builds an rst document. Block content goes to
// the innermost open container; inline content goes to the open paragraph,
// which is created on demand. A Writer serves exactly one document.
type Writer struct {
	resolver LinkResolver
	reporter report.Reporter
	opts     config.Options

	doc    *rst.Document
	blocks []rst.Node
	para   *rst.Paragraph
	spans  []rst.Node
	lists  int
	// targets wait for the next block.
	targets []*rst.Target

	heading      *strings.Builder
	headingLevel int

	finished bool
}

var _ Visitor = (*Writer)(nil)

func NewWriter(resolver LinkResolver, reporter report.Reporter, opts config.Options) *Writer {
	doc := rst.NewDocument()
	return &Writer{
		resolver: resolver,
		reporter: reporter,
		opts:     opts,
		doc:      doc,
		blocks:   []rst.Node{doc},
	}
}

// State reports where the next inline content would go.
func (w *Writer) State() State {
	switch {
	case w.finished:
		return StateFinished
	case w.para != nil:
		return StateInsideParagraph
	}
	switch w.top().(type) {
	case *rst.Cell:
		return StateInsideTableCell
	case *rst.List, *rst.ListItem:
		return StateInsideList
	}
	return StateOutsideParagraph
}

// ListDepth is the number of open lists.
func (w *Writer) ListDepth() int { return w.lists }

// Document finishes the document. Events after this call are ignored.
func (w *Writer) Document() *rst.Document {
	if !w.finished {
		w.closeParagraph()
		for _, t := range w.targets {
			w.doc.AddChild(t)
		}
		w.targets = nil
		w.finished = true
	}
	return w.doc
}

func (w *Writer) top() rst.Node { return w.blocks[len(w.blocks)-1] }

func (w *Writer) push(n rst.Node) {
	w.top().AddChild(n)
	w.blocks = append(w.blocks, n)
}

func (w *Writer) pop() rst.Node {
	if len(w.blocks) == 1 {
		return nil
	}
	n := w.top()
	w.blocks = w.blocks[:len(w.blocks)-1]
	return n
}

// popTo pops containers up to and including the innermost one accepted by
// match. Nothing is popped when no such container is open.
func (w *Writer) popTo(match func(rst.Node) bool) {
	for i := len(w.blocks) - 1; i > 0; i-- {
		if match(w.blocks[i]) {
			w.blocks = w.blocks[:i]
			return
		}
	}
}

func (w *Writer) ensureParagraph() {
	if w.para != nil {
		return
	}
	switch w.top().(type) {
	case *rst.List:
		w.push(rst.NewListItem())
	case *rst.Table:
		w.push(rst.NewRow(false))
		w.push(rst.NewCell())
	case *rst.Row:
		w.push(rst.NewCell())
	}
	w.para = rst.NewParagraph()
	w.para.Width = w.opts.Width
	w.para.Targets, w.targets = w.targets, nil
	w.top().AddChild(w.para)
}

// flushTargets writes the waiting targets ahead of a block that is not a
// paragraph. Lists and tables only take them inside an item or cell.
func (w *Writer) flushTargets() {
	switch w.top().(type) {
	case *rst.List, *rst.Table, *rst.Row:
		return
	}
	for _, t := range w.targets {
		w.top().AddChild(t)
	}
	w.targets = nil
}

func (w *Writer) closeParagraph() {
	w.para = nil
	w.spans = nil
}

func (w *Writer) addInline(n rst.Inline) {
	if w.heading != nil {
		w.heading.WriteString(rst.PlainText(n))
		return
	}
	w.ensureParagraph()
	if len(w.spans) > 0 {
		w.spans[len(w.spans)-1].AddChild(n)
		return
	}
	w.para.AddChild(n)
}

func (w *Writer) VisitText(text string) {
	if w.finished {
		return
	}
	text = rst.CollapseSpace(text)
	if w.heading != nil {
		w.heading.WriteString(text)
		return
	}
	if w.para == nil && strings.TrimSpace(text) == "" {
		return
	}
	w.addInline(rst.NewText(text))
}

// VisitAnchor labels the open paragraph, or else the next block, with a
// target named after the anchor.
func (w *Writer) VisitAnchor(name string, attrs map[string]string) {
	if w.finished {
		return
	}
	target := rst.NewTarget(name)
	if target.Name == "" {
		return
	}
	if w.para != nil && w.heading == nil {
		w.para.Targets = append(w.para.Targets, target)
		return
	}
	w.targets = append(w.targets, target)
}

func (w *Writer) VisitLink(href string, attrs map[string]string, label string) {
	if w.finished {
		return
	}
	label = strings.Join(strings.Fields(label), " ")
	href = strings.TrimSpace(href)

	var ref *rst.Reference
	switch {
	case strings.HasPrefix(href, "#") && len(href) > 1:
		ref = rst.NewAnchorRef(href[1:], label)
	case strings.HasPrefix(href, "@") && len(href) > 1:
		ref = rst.NewCrossRef(href[1:], label)
	case w.resolver != nil:
		ref = w.resolver.Resolve(href, attrs, label)
	default:
		ref = (&Resolver{}).Resolve(href, attrs, label)
	}
	switch ref.RefKind {
	case rst.RefCross:
		if ref.Role == "" {
			ref.Role = w.opts.CrossRefRole
		}
	case rst.RefAnchor:
		if ref.Role == "" {
			ref.Role = w.opts.AnchorRole
		}
	}
	w.addInline(ref)
}

// VisitCode emits a code span. Spans that already hold a role, such as
// ":java:ref:`Foo`", are passed through.
func (w *Writer) VisitCode(text string) {
	if w.finished {
		return
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	for _, prefix := range w.opts.RolePrefixes {
		if prefix != "" && strings.HasPrefix(trimmed, prefix) {
			role := html.UnescapeString(trimmed)
			w.addInline(rst.NewInlineRaw(rst.EscapeRoleUnderscores(role), true))
			return
		}
	}
	w.addInline(rst.NewLiteral(trimmed))
}

func (w *Writer) VisitPre(text string) {
	if w.finished {
		return
	}
	w.closeParagraph()
	code := dedent(text)
	if strings.TrimSpace(code) == "" {
		return
	}
	w.flushTargets()
	if w.opts.CodeLanguage == "" {
		w.top().AddChild(rst.NewLiteralBlock(code))
		return
	}
	w.top().AddChild(rst.NewCodeBlock(w.opts.CodeLanguage, code))
}

func (w *Writer) VisitLineBreak() {
	if w.finished {
		return
	}
	if w.heading != nil {
		w.heading.WriteString(" ")
		return
	}
	if w.para != nil {
		w.para.AddChild(&rst.LineBreak{})
	}
}

func (w *Writer) StartParagraph() {
	if w.finished {
		return
	}
	w.closeParagraph()
}

func (w *Writer) EndParagraph() {
	if w.finished {
		return
	}
	w.closeParagraph()
}

func (w *Writer) StartList(ordered bool) {
	if w.finished {
		return
	}
	w.closeParagraph()
	w.flushTargets()
	w.push(rst.NewList(ordered))
	w.lists++
}

func (w *Writer) EndList() {
	if w.finished || w.lists == 0 {
		return
	}
	w.closeParagraph()
	w.popTo(isList)
	w.lists--
}

func (w *Writer) StartListItem() {
	if w.finished {
		return
	}
	w.closeParagraph()
	if _, ok := w.top().(*rst.ListItem); ok {
		w.pop()
	}
	if _, ok := w.top().(*rst.List); !ok {
		return
	}
	w.push(rst.NewListItem())
}

func (w *Writer) EndListItem() {
	if w.finished {
		return
	}
	w.closeParagraph()
	if _, ok := w.top().(*rst.ListItem); ok {
		w.pop()
	}
}

// Definition lists become bullet lists: each term opens an item with the
// term in bold, the definitions follow in the same item.
func (w *Writer) StartDefinitionList() { w.StartList(false) }
func (w *Writer) EndDefinitionList()   { w.EndList() }

func (w *Writer) StartTerm() {
	w.StartListItem()
	if w.finished {
		return
	}
	strong := rst.NewStrong()
	w.addInline(strong)
	w.spans = append(w.spans, strong)
}

func (w *Writer) EndTerm() {
	if w.finished {
		return
	}
	w.closeParagraph()
}

func (w *Writer) StartDefinition() {
	if w.finished {
		return
	}
	w.closeParagraph()
	if _, ok := w.top().(*rst.List); ok {
		w.push(rst.NewListItem())
	}
}

func (w *Writer) EndDefinition() { w.EndListItem() }

func (w *Writer) StartTable() {
	if w.finished {
		return
	}
	w.closeParagraph()
	w.flushTargets()
	w.push(rst.NewTable())
}

func (w *Writer) EndTable() {
	if w.finished {
		return
	}
	w.closeParagraph()
	w.popTo(func(n rst.Node) bool { _, ok := n.(*rst.Table); return ok })
}

func (w *Writer) StartRow() {
	if w.finished {
		return
	}
	w.closeParagraph()
	w.popCell()
	if _, ok := w.top().(*rst.Row); ok {
		w.pop()
	}
	if _, ok := w.top().(*rst.Table); !ok {
		return
	}
	w.push(rst.NewRow(false))
}

func (w *Writer) EndRow() {
	if w.finished {
		return
	}
	w.closeParagraph()
	w.popCell()
	if _, ok := w.top().(*rst.Row); ok {
		w.pop()
	}
}

// StartCell opens a cell. A row counts as a header row when all of its
// cells are header cells.
func (w *Writer) StartCell(header bool) {
	if w.finished {
		return
	}
	w.closeParagraph()
	w.popCell()
	if _, ok := w.top().(*rst.Table); ok {
		w.push(rst.NewRow(false))
	}
	row, ok := w.top().(*rst.Row)
	if !ok {
		return
	}
	if len(row.Children()) == 0 {
		row.Header = header
	} else {
		row.Header = row.Header && header
	}
	w.push(rst.NewCell())
}

func (w *Writer) EndCell() {
	if w.finished {
		return
	}
	w.closeParagraph()
	w.popCell()
}

func (w *Writer) popCell() {
	if _, ok := w.top().(*rst.Cell); ok {
		w.pop()
	}
}

func (w *Writer) StartEmphasis() { w.startSpan(rst.NewEmphasis()) }
func (w *Writer) EndEmphasis()   { w.endSpan(rst.KindEmphasis) }
func (w *Writer) StartStrong()   { w.startSpan(rst.NewStrong()) }
func (w *Writer) EndStrong()     { w.endSpan(rst.KindStrong) }

func (w *Writer) startSpan(span rst.Inline) {
	if w.finished || w.heading != nil {
		return
	}
	w.addInline(span)
	w.spans = append(w.spans, span)
}

func (w *Writer) endSpan(kind rst.Kind) {
	if w.finished || len(w.spans) == 0 {
		return
	}
	if w.spans[len(w.spans)-1].Kind() == kind {
		w.spans = w.spans[:len(w.spans)-1]
	}
}

// Headings inside comments must not start sections, so they become rubrics.
func (w *Writer) StartHeading(level int) {
	if w.finished {
		return
	}
	w.closeParagraph()
	w.heading = &strings.Builder{}
	w.headingLevel = level
}

func (w *Writer) EndHeading() {
	if w.finished || w.heading == nil {
		return
	}
	text := strings.TrimSpace(w.heading.String())
	w.heading = nil
	if text != "" {
		w.flushTargets()
		w.top().AddChild(rst.NewRubric(text))
	}
}

func (w *Writer) VisitUnknown(tag string, attrs map[string]string) {
	if w.finished {
		return
	}
	report.Reportf(w.reporter, report.SeverityDebug, "unsupported html element <%s>, keeping its text", tag)
}

func isList(n rst.Node) bool {
	_, ok := n.(*rst.List)
	return ok
}

// dedent removes the indentation common to all non-blank lines.
func dedent(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	common := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if common < 0 || n < common {
			common = n
		}
	}
	if common <= 0 {
		return s
	}
	for i, l := range lines {
		if len(l) >= common {
			lines[i] = l[common:]
		} else {
			lines[i] = strings.TrimLeft(l, " \t")
		}
	}
	return strings.Join(lines, "\n")
}
