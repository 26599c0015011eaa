package htmldoc

import (
	"net/url"
	"path"
	"strings"

	"github.com/dhamidi/rstdoc/java"
	"github.com/dhamidi/rstdoc/rst"
)

// LinkResolver classifies a hyperlink found in a comment.
type LinkResolver interface {
	Resolve(href string, attrs map[string]string, label string) *rst.Reference
}

// Resolver maps hrefs to references, consulting the entity graph for links
// that point at documented entities. It does no I/O.
type Resolver struct {
	Graph java.EntityGraph
	// Package and Class are the context for simple names and "#member"
	// references.
	Package string
	Class   string
}

func NewResolver(graph java.EntityGraph, class *java.ClassModel) *Resolver {
	r := &Resolver{Graph: graph}
	if class != nil {
		r.Package = class.Package
		r.Class = class.Name
	}
	return r
}

// Resolve classifies href. In order: "<"-wrapped markup passes through,
// quoted text becomes a literal, links to documented entities become cross
// references and everything else is an external link. The result always has
// a target.
func (r *Resolver) Resolve(href string, attrs map[string]string, label string) *rst.Reference {
	href = strings.TrimSpace(href)
	label = strings.Join(strings.Fields(label), " ")

	switch {
	case strings.HasPrefix(href, "<") || strings.HasPrefix(href, `\<`):
		markup := unwrap(href, `\<`, `\>`)
		if markup == href {
			markup = unwrap(href, "<", ">")
		}
		if markup != "" {
			return rst.NewPassThrough(markup)
		}
	case strings.HasPrefix(href, `"`) || strings.HasPrefix(href, "'"):
		text := unwrap(href, href[:1], href[:1])
		if text == "" {
			text = label
		}
		return rst.NewLiteralRef(text)
	}

	if r != nil && r.Graph != nil && href != "" {
		if target, ok := r.lookup(href); ok {
			return rst.NewCrossRef(target, label)
		}
	}
	return rst.NewExternalLink(href, label)
}

// unwrap removes one leading prefix and one trailing suffix from s.
func unwrap(s, prefix, suffix string) string {
	inner, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return s
	}
	inner, _ = strings.CutSuffix(inner, suffix)
	return inner
}

// Qualify returns the cross-reference target of a program element
// reference as written in a comment, e.g. "List#add(Object)".
func (r *Resolver) Qualify(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if r == nil || r.Graph == nil || ref == "" {
		return "", false
	}
	return r.lookupName(ref)
}

func (r *Resolver) lookup(href string) (string, bool) {
	if strings.Contains(href, ".html") {
		return r.lookupPage(href)
	}
	if strings.ContainsAny(href, "/:") {
		return "", false
	}
	return r.lookupName(href)
}

// lookupPage maps javadoc page URLs such as ../pkg/Foo.html#bar(int) or
// pkg/Outer.Inner.html to the documented entity.
func (r *Resolver) lookupPage(href string) (string, bool) {
	u, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	p := strings.TrimSuffix(path.Clean(u.Path), ".html")
	var segs []string
	for _, s := range strings.Split(p, "/") {
		if s != "" && s != "." && s != ".." {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return "", false
	}

	if last := segs[len(segs)-1]; last == "package-summary" || last == "package-frame" {
		for i := range segs[:len(segs)-1] {
			candidate := strings.Join(segs[i:len(segs)-1], ".")
			if r.isPackage(candidate) {
				return candidate, true
			}
		}
		return "", false
	}

	var class *java.ClassModel
	for i := range segs {
		if c, ok := r.Graph.Lookup(strings.Join(segs[i:], ".")); ok {
			class = c
			break
		}
	}
	// Pages next to the current one are named by their simple name.
	if class == nil && u.Scheme == "" && u.Host == "" && len(segs) == 1 {
		if c, ok := r.Graph.LookupSimple(segs[0], r.Package); ok {
			class = c
		}
	}
	if class == nil {
		return "", false
	}
	if u.Fragment != "" {
		if m, ok := r.Graph.Member(class.Name, fragmentMember(u.Fragment)); ok {
			return m.Target, true
		}
	}
	return class.Name, true
}

func (r *Resolver) isPackage(name string) bool {
	if _, ok := r.Graph.Package(name); ok {
		return true
	}
	return len(r.Graph.Classes(name)) > 0
}

// fragmentMember converts old style anchors like "put-java.lang.Object-int-"
// to "put(java.lang.Object, int)".
func fragmentMember(fragment string) string {
	if strings.Contains(fragment, "(") || !strings.Contains(fragment, "-") {
		return fragment
	}
	name, params, _ := strings.Cut(fragment, "-")
	params = strings.TrimSuffix(params, "-")
	params = strings.ReplaceAll(params, ":A", "[]")
	return name + "(" + strings.Join(strings.Split(params, "-"), ", ") + ")"
}

// lookupName resolves Type, pkg.Type, Type#member and #member.
func (r *Resolver) lookupName(ref string) (string, bool) {
	class, member, hasMember := strings.Cut(ref, "#")
	if class == "" {
		if !hasMember || r.Class == "" {
			return "", false
		}
		class = r.Class
	}
	c, ok := r.Graph.LookupSimple(class, r.Package)
	if !ok {
		if !hasMember && r.isPackage(class) {
			return class, true
		}
		return "", false
	}
	if !hasMember {
		return c.Name, true
	}
	m, ok := r.Graph.Member(c.Name, member)
	if !ok {
		return "", false
	}
	return m.Target, true
}
