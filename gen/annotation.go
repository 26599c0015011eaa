package gen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dhamidi/rstdoc/java"
	"github.com/dhamidi/rstdoc/report"
	"github.com/dhamidi/rstdoc/rst"
)

// annotationSummary lists the annotations of a type as code spans, e.g.
// ``@Deprecated`` ``@Retention(RUNTIME)``. Annotations with values that
// cannot be written are left out and reported.
func (c *docContext) annotationSummary(annotations []java.AnnotationModel, imports *Imports) *rst.Paragraph {
	p := rst.NewParagraph()
	p.Width = c.g.opts.Width
	for _, a := range annotations {
		s, err := formatAnnotation(a, imports)
		if err != nil {
			report.Reportf(c.g.reporter, report.SeverityWarning, "%s: omitting annotation @%s: %v", c.where(), a.Type, err)
			continue
		}
		if len(p.Children()) > 0 {
			p.AddChild(rst.NewText(" "))
		}
		p.AddChild(rst.NewLiteral(s))
	}
	if p.IsEmpty() {
		return nil
	}
	return p
}

func formatAnnotation(a java.AnnotationModel, imports *Imports) (string, error) {
	if strings.TrimSpace(a.Type) == "" {
		return "", fmt.Errorf("annotation without type")
	}
	imports.AddName(a.Type)
	name := "@" + imports.Name(a.Type)
	if len(a.Values) == 0 {
		return name, nil
	}

	keys := make([]string, 0, len(a.Values))
	for k := range a.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if len(keys) == 1 && keys[0] == "value" {
		v, err := formatAnnotationValue(a.Values["value"], imports)
		if err != nil {
			return "", err
		}
		return name + "(" + v + ")", nil
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, err := formatAnnotationValue(a.Values[k], imports)
		if err != nil {
			return "", fmt.Errorf("element %s: %w", k, err)
		}
		parts = append(parts, k+" = "+v)
	}
	return name + "(" + strings.Join(parts, ", ") + ")", nil
}

// formatAnnotationValue writes an element value as Java source. Nested
// annotations are maps with an "@type" key.
func formatAnnotationValue(v interface{}, imports *Imports) (string, error) {
	switch v := v.(type) {
	case string:
		return fmt.Sprintf("%q", v), nil
	case bool:
		return fmt.Sprint(v), nil
	case int, int32, int64, uint, uint32, uint64:
		return fmt.Sprint(v), nil
	case float32, float64:
		return formatConstant(v), nil
	case []interface{}:
		parts := make([]string, len(v))
		for i, e := range v {
			s, err := formatAnnotationValue(e, imports)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "{" + strings.Join(parts, ", ") + "}", nil
	case map[string]interface{}:
		typ, _ := v["@type"].(string)
		if typ == "" {
			return "", fmt.Errorf("nested annotation without @type")
		}
		values := make(map[string]interface{}, len(v))
		for k, e := range v {
			if k != "@type" {
				values[k] = e
			}
		}
		return formatAnnotation(java.AnnotationModel{Type: typ, Values: values}, imports)
	case nil:
		return "", fmt.Errorf("missing value")
	}
	return "", fmt.Errorf("unsupported value of type %T", v)
}
