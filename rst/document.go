package rst

import (
	"fmt"

	"github.com/dhamidi/rstdoc/report"
)

// Document is the root of one generated page.
type Document struct {
	container
}

func NewDocument(children ...Node) *Document {
	d := &Document{}
	for _, c := range children {
		d.AddChild(c)
	}
	return d
}

func (*Document) Kind() Kind { return KindDocument }

// Serialize renders the document. The result ends in a newline unless the
// document is empty.
func (d *Document) Serialize() string {
	s := joinBlocks(d.children)
	if s == "" {
		return ""
	}
	return s + "\n"
}

// GetSerialized is Serialize for callers that cannot afford a failure: a
// panic while serializing is reported and fallback is returned instead.
func (d *Document) GetSerialized(fallback string, r report.Reporter) (out string) {
	defer func() {
		if p := recover(); p != nil {
			report.Reportf(r, report.SeverityError, "serializing document: %v", p)
			out = fallback
		}
	}()
	return d.Serialize()
}

// String implements fmt.Stringer.
func (d *Document) String() string { return d.Serialize() }

var _ fmt.Stringer = (*Document)(nil)
