package rst

import (
	"strings"
)

type Option struct {
	Name  string
	Value string
}

// Directive is an explicit markup block: ".. name:: args", followed by
// options and an indented body.
type Directive struct {
	container
	Name    string
	Args    string
	Options []Option
}

func NewDirective(name, args string, children ...Node) *Directive {
	d := &Directive{Name: name, Args: args}
	for _, c := range children {
		d.AddChild(c)
	}
	return d
}

func (*Directive) Kind() Kind { return KindDirective }

// SetOption appends an option, replacing an earlier one of the same name.
func (d *Directive) SetOption(name, value string) *Directive {
	for i := range d.Options {
		if d.Options[i].Name == name {
			d.Options[i].Value = value
			return d
		}
	}
	d.Options = append(d.Options, Option{Name: name, Value: value})
	return d
}

func (d *Directive) Serialize() string {
	var sb strings.Builder
	sb.WriteString(".. ")
	sb.WriteString(d.Name)
	sb.WriteString("::")
	if args := strings.Join(strings.Fields(d.Args), " "); args != "" {
		sb.WriteString(" ")
		sb.WriteString(args)
	}
	for _, o := range d.Options {
		sb.WriteString("\n   :")
		sb.WriteString(o.Name)
		sb.WriteString(":")
		if o.Value != "" {
			sb.WriteString(" ")
			sb.WriteString(o.Value)
		}
	}
	if body := joinBlocks(d.children); body != "" {
		sb.WriteString("\n\n")
		sb.WriteString(indent(body, 3))
	}
	return sb.String()
}
