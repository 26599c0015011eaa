package rst

// Builder assembles a document top to bottom.
//
//	doc := rst.NewBuilder().
//		Title("Widgets", 1).
//		Paragraph(rst.NewText("All about widgets.")).
//		Document()
type Builder struct {
	doc   *Document
	Width int
}

func NewBuilder() *Builder {
	return &Builder{doc: NewDocument()}
}

func (b *Builder) Title(text string, level int) *Builder {
	b.doc.AddChild(NewTitle(text, level))
	return b
}

func (b *Builder) Paragraph(children ...Inline) *Builder {
	p := NewParagraph(children...)
	p.Width = b.Width
	b.doc.AddChild(p)
	return b
}

// Text adds a paragraph holding plain text.
func (b *Builder) Text(text string) *Builder {
	return b.Paragraph(NewText(text))
}

func (b *Builder) BulletList(items ...string) *Builder {
	l := NewList(false)
	for _, it := range items {
		l.AddChild(NewListItem(NewParagraph(NewText(it))))
	}
	b.doc.AddChild(l)
	return b
}

// Directive starts a directive. Its options and body are set on the
// returned DirectiveBuilder; the directive is already part of the document.
func (b *Builder) Directive(name, args string) *DirectiveBuilder {
	d := NewDirective(name, args)
	b.doc.AddChild(d)
	return &DirectiveBuilder{parent: b, d: d}
}

func (b *Builder) Append(nodes ...Node) *Builder {
	for _, n := range nodes {
		b.doc.AddChild(n)
	}
	return b
}

func (b *Builder) Document() *Document { return b.doc }

type DirectiveBuilder struct {
	parent *Builder
	d      *Directive
}

func (db *DirectiveBuilder) Option(name, value string) *DirectiveBuilder {
	db.d.SetOption(name, value)
	return db
}

func (db *DirectiveBuilder) Body(nodes ...Node) *DirectiveBuilder {
	for _, n := range nodes {
		db.d.AddChild(n)
	}
	return db
}

// End returns to the document builder.
func (db *DirectiveBuilder) End() *Builder { return db.parent }

func (db *DirectiveBuilder) Node() *Directive { return db.d }
