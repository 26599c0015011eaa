package htmldoc

import (
	"github.com/dhamidi/rstdoc/config"
	"github.com/dhamidi/rstdoc/report"
	"github.com/dhamidi/rstdoc/rst"
)

// Convert turns an HTML fragment into an rst document using the default
// options.
func Convert(fragment string, resolver LinkResolver, reporter report.Reporter) *rst.Document {
	return ConvertWith(fragment, resolver, reporter, config.Default())
}

// ConvertWith is Convert with explicit options. It never fails: input that
// cannot be read is reported and yields an empty document.
func ConvertWith(fragment string, resolver LinkResolver, reporter report.Reporter, opts config.Options) *rst.Document {
	w := NewWriter(resolver, reporter, opts)
	if err := NewReader(fragment).Accept(w); err != nil {
		report.Reportf(reporter, report.SeverityWarning, "%v", err)
		return rst.NewDocument()
	}
	return w.Document()
}
