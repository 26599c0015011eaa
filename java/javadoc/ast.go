// Package javadoc parses Javadoc comments and renders them to the HTML
// subset understood by the htmldoc converter.
package javadoc

// Node is an element of a comment body: text, inline tags and HTML.
type Node interface {
	node()
}

// BlockTag is a tag that starts at the beginning of a line, such as @param.
type BlockTag interface {
	Node
	TagName() string
}

type DocComment struct {
	Body []Node
	Tags []BlockTag
}

type Text struct {
	Content string
}

// Code is {@code ...}.
type Code struct {
	Content string
}

// Literal is {@literal ...}.
type Literal struct {
	Content string
}

// Link is {@link ...} or, when Plain, {@linkplain ...}.
type Link struct {
	Reference string
	Label     []Node
	Plain     bool
}

// Value is {@value ...}. An empty Reference means the documented field.
type Value struct {
	Reference string
}

type DocRoot struct{}

type InheritDoc struct {
	Reference string
}

// IndexTerm is {@index term description}.
type IndexTerm struct {
	Term        string
	Description []Node
}

type Summary struct {
	Content []Node
}

// InlineReturn is {@return ...}.
type InlineReturn struct {
	Description []Node
}

type SystemProperty struct {
	Name string
}

type Snippet struct {
	Attributes map[string]string
	Body       string
}

type UnknownInline struct {
	Name    string
	Content string
}

type StartElement struct {
	Name       string
	Attributes []Attribute
	SelfClose  bool
}

type EndElement struct {
	Name string
}

type Attribute struct {
	Name  string
	Value string
}

// Entity is a character reference without its delimiters, e.g. "nbsp" or
// "#160".
type Entity struct {
	Name string
}

// Erroneous is input the parser could not make sense of. It is kept so the
// text is not lost.
type Erroneous struct {
	Content string
	Message string
}

func (Text) node()           {}
func (Code) node()           {}
func (Literal) node()        {}
func (Link) node()           {}
func (Value) node()          {}
func (DocRoot) node()        {}
func (InheritDoc) node()     {}
func (IndexTerm) node()      {}
func (Summary) node()        {}
func (InlineReturn) node()   {}
func (SystemProperty) node() {}
func (Snippet) node()        {}
func (UnknownInline) node()  {}
func (StartElement) node()   {}
func (EndElement) node()     {}
func (Entity) node()         {}
func (Erroneous) node()      {}

// Param is @param. Type parameters are written @param <T>.
type Param struct {
	Name        string
	IsTypeParam bool
	Description []Node
}

type Return struct {
	Description []Node
}

// Throws is @throws or its synonym @exception.
type Throws struct {
	Exception   string
	Description []Node
}

type SeeKind int

const (
	SeeReference SeeKind = iota
	SeeString
	SeeHTML
)

// See is @see in one of its three forms: a program element reference with
// optional label, a quoted string, or an HTML link.
type See struct {
	Kind      SeeKind
	Reference string
	Label     []Node
	Text      string
	HTML      []Node
}

type Since struct {
	Version []Node
}

type Deprecated struct {
	Description []Node
}

type Author struct {
	Name []Node
}

type Version struct {
	Version []Node
}

type Serial struct {
	Description []Node
}

type SerialData struct {
	Description []Node
}

type SerialField struct {
	Name        string
	Type        string
	Description []Node
}

type Hidden struct {
	Description []Node
}

type Provides struct {
	ServiceType string
	Description []Node
}

type Uses struct {
	ServiceType string
	Description []Node
}

type Spec struct {
	URL   string
	Title []Node
}

type UnknownBlock struct {
	Name    string
	Content []Node
}

func (Param) node()        {}
func (Return) node()       {}
func (Throws) node()       {}
func (See) node()          {}
func (Since) node()        {}
func (Deprecated) node()   {}
func (Author) node()       {}
func (Version) node()      {}
func (Serial) node()       {}
func (SerialData) node()   {}
func (SerialField) node()  {}
func (Hidden) node()       {}
func (Provides) node()     {}
func (Uses) node()         {}
func (Spec) node()         {}
func (UnknownBlock) node() {}

func (Param) TagName() string          { return "param" }
func (Return) TagName() string         { return "return" }
func (Throws) TagName() string         { return "throws" }
func (See) TagName() string            { return "see" }
func (Since) TagName() string          { return "since" }
func (Deprecated) TagName() string     { return "deprecated" }
func (Author) TagName() string         { return "author" }
func (Version) TagName() string        { return "version" }
func (Serial) TagName() string         { return "serial" }
func (SerialData) TagName() string     { return "serialData" }
func (SerialField) TagName() string    { return "serialField" }
func (Hidden) TagName() string         { return "hidden" }
func (Provides) TagName() string       { return "provides" }
func (Uses) TagName() string           { return "uses" }
func (Spec) TagName() string           { return "spec" }
func (t UnknownBlock) TagName() string { return t.Name }
