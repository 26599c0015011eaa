package rst

import (
	"strings"
)

type RefKind int

const (
	// RefAnchor points at an anchor inside the generated documentation.
	RefAnchor RefKind = iota
	// RefCross points at a documented entity.
	RefCross
	// RefExternal is an ordinary hyperlink.
	RefExternal
	// RefLiteral is quoted free text that is not a link at all.
	RefLiteral
	// RefPassThrough carries markup that is already in the target dialect.
	RefPassThrough
)

func (k RefKind) String() string {
	switch k {
	case RefAnchor:
		return "anchor"
	case RefCross:
		return "cross"
	case RefExternal:
		return "external"
	case RefLiteral:
		return "literal"
	case RefPassThrough:
		return "pass-through"
	}
	return "unknown"
}

const (
	DefaultCrossRefRole = "java:ref"
	DefaultAnchorRole   = "ref"
	// PlaceholderTarget is used when neither a target nor a label is known.
	PlaceholderTarget = "#"
)

// Reference is the resolved form of a link found in the input. Target is
// never empty.
type Reference struct {
	leaf
	RefKind  RefKind
	Target   string
	label    string
	explicit bool
	// Role overrides the role name for anchor and cross references.
	Role string
}

func newReference(kind RefKind, target, label string) *Reference {
	target = strings.TrimSpace(target)
	label = strings.TrimSpace(label)
	if target == "" {
		target = label
	}
	if target == "" {
		target = PlaceholderTarget
	}
	return &Reference{RefKind: kind, Target: target, label: label, explicit: label != ""}
}

// NewAnchorRef references an in-document anchor. Escaped angle brackets in
// the label are unescaped.
func NewAnchorRef(target, label string) *Reference {
	return newReference(RefAnchor, target, unescapeBrackets(label))
}

// NewCrossRef references a documented entity. Member separators written as
// '#' are normalized to '.'.
func NewCrossRef(target, label string) *Reference {
	target = strings.TrimSpace(target)
	if strings.HasPrefix(target, "#") {
		target = target[1:]
	}
	target = strings.Replace(target, "#", ".", 1)
	return newReference(RefCross, target, label)
}

func NewExternalLink(target, label string) *Reference {
	return newReference(RefExternal, target, label)
}

func NewLiteralRef(text string) *Reference {
	return newReference(RefLiteral, text, text)
}

func NewPassThrough(markup string) *Reference {
	return newReference(RefPassThrough, markup, markup)
}

func (*Reference) Kind() Kind { return KindReference }
func (*Reference) inline()    {}

// Label returns the display text, synthesized from the target when the
// input had none.
func (r *Reference) Label() string {
	if r.label != "" {
		return r.label
	}
	return FormatTarget(r.RefKind, r.Target)
}

// HasExplicitLabel reports whether the label came from the input.
func (r *Reference) HasExplicitLabel() bool { return r.explicit }

func (r *Reference) Serialize() string {
	switch r.RefKind {
	case RefAnchor:
		return r.role(r.Role, DefaultAnchorRole)
	case RefCross:
		return r.role(r.Role, DefaultCrossRefRole)
	case RefExternal:
		label := r.Label()
		if label == r.Target {
			return "`<" + escapeInterpreted(r.Target) + ">`__"
		}
		return "`" + escapeInterpreted(label) + " <" + escapeInterpreted(r.Target) + ">`__"
	case RefLiteral:
		return NewLiteral(r.Target).Serialize()
	case RefPassThrough:
		return r.Target
	}
	return Escape(r.Label())
}

func (r *Reference) role(name, def string) string {
	if name == "" {
		name = def
	}
	if !r.explicit || r.label == r.Target {
		return ":" + name + ":`" + escapeInterpreted(r.Target) + "`"
	}
	return ":" + name + ":`" + escapeInterpreted(r.label) + " <" + escapeInterpreted(r.Target) + ">`"
}

// FormatTarget is the label shown for a reference without explicit text.
// Cross references drop the package: com.example.Foo.bar(int) becomes
// Foo.bar(int).
func FormatTarget(kind RefKind, target string) string {
	if kind != RefCross {
		return target
	}
	name, params := target, ""
	if i := strings.Index(target, "("); i >= 0 {
		name, params = target[:i], target[i:]
	}
	parts := strings.Split(name, ".")
	start := len(parts) - 1
	for start > 0 {
		p := parts[start-1]
		if p == "" || !isUpper(p[0]) {
			break
		}
		start--
	}
	if params != "" && start == len(parts)-1 && start > 0 {
		start--
	}
	return strings.Join(parts[start:], ".") + params
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
