package javadoc

import (
	"strings"
	"unicode"
)

// Parse parses a Javadoc comment. The /** */ delimiters and the leading
// asterisks of each line are removed when present, so both raw comments and
// already extracted comment text are accepted.
func Parse(comment string) *DocComment {
	p := &parser{src: []rune(stripComment(comment))}
	doc := &DocComment{Body: p.content(false)}
	for !p.eof() {
		if p.peek() != '@' {
			p.pos++
			continue
		}
		doc.Tags = append(doc.Tags, p.blockTag())
	}
	return doc
}

func stripComment(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "/**") {
		return s
	}
	t = strings.TrimSuffix(strings.TrimPrefix(t, "/**"), "*/")
	lines := strings.Split(t, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, "*"):
			lines[i] = strings.TrimPrefix(strings.TrimLeft(trimmed, "*"), " ")
		case i == 0:
			lines[i] = trimmed
		}
	}
	return strings.Join(lines, "\n")
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune { return p.peekAt(0) }

func (p *parser) peekAt(n int) rune {
	if i := p.pos + n; i >= 0 && i < len(p.src) {
		return p.src[i]
	}
	return 0
}

func (p *parser) hasPrefix(s string) bool {
	i := p.pos
	for _, r := range s {
		if i >= len(p.src) || p.src[i] != r {
			return false
		}
		i++
	}
	return true
}

// scan consumes runes while keep returns true.
func (p *parser) scan(keep func(rune) bool) string {
	start := p.pos
	for !p.eof() && keep(p.peek()) {
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) skipSpace() { p.scan(isBlank) }

func (p *parser) skipAllSpace() { p.scan(unicode.IsSpace) }

// atLineStart reports whether only blanks precede pos on its line.
func (p *parser) atLineStart() bool {
	for i := p.pos - 1; i >= 0; i-- {
		switch p.src[i] {
		case '\n':
			return true
		case ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// content parses text, HTML and inline tags. In a tag it stops before the
// closing brace; otherwise it stops before a block tag.
func (p *parser) content(inTag bool) []Node {
	var nodes []Node
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			nodes = append(nodes, Text{Content: buf.String()})
			buf.Reset()
		}
	}
	depth := 0
	for !p.eof() {
		c := p.peek()
		switch {
		case !inTag && c == '@' && p.atLineStart():
			flush()
			return nodes
		case c == '{' && p.peekAt(1) == '@':
			flush()
			nodes = append(nodes, p.inlineTag())
			continue
		case c == '{':
			depth++
		case c == '}' && inTag && depth == 0:
			flush()
			return nodes
		case c == '}' && depth > 0:
			depth--
		case c == '<':
			if n, ok := p.html(); ok {
				flush()
				if n != nil {
					nodes = append(nodes, n)
				}
				continue
			}
		case c == '&':
			if n, ok := p.entity(); ok {
				flush()
				nodes = append(nodes, n)
				continue
			}
		}
		buf.WriteRune(c)
		p.pos++
	}
	flush()
	return nodes
}

func (p *parser) inlineTag() Node {
	p.pos += 2
	name := p.scan(isIdentPart)
	if name == "" {
		return Erroneous{Content: "{@", Message: "missing tag name"}
	}
	if isBlank(p.peek()) || p.peek() == '\n' {
		p.pos++
	}

	var n Node
	switch name {
	case "code":
		n = Code{Content: p.balanced()}
	case "literal":
		n = Literal{Content: p.balanced()}
	case "link", "linkplain":
		p.skipAllSpace()
		ref := p.reference()
		p.skipAllSpace()
		var label []Node
		if p.peek() != '}' {
			label = p.content(true)
		}
		n = Link{Reference: ref, Label: label, Plain: name == "linkplain"}
	case "value":
		p.skipSpace()
		n = Value{Reference: p.reference()}
	case "docRoot":
		n = DocRoot{}
	case "inheritDoc":
		p.skipSpace()
		n = InheritDoc{Reference: p.reference()}
	case "index":
		var term string
		if p.peek() == '"' {
			term = p.quoted()
		} else {
			term = p.scan(func(r rune) bool { return !unicode.IsSpace(r) && r != '}' })
		}
		p.skipAllSpace()
		n = IndexTerm{Term: term, Description: p.content(true)}
	case "summary":
		n = Summary{Content: p.content(true)}
	case "return":
		n = InlineReturn{Description: p.content(true)}
	case "systemProperty":
		n = SystemProperty{Name: strings.TrimSpace(p.balanced())}
	case "snippet":
		n = p.snippet()
	default:
		n = UnknownInline{Name: name, Content: p.balanced()}
	}
	if p.peek() == '}' {
		p.pos++
	}
	return n
}

// balanced reads up to the brace that closes the current inline tag.
func (p *parser) balanced() string {
	start := p.pos
	depth := 0
	for !p.eof() {
		switch p.peek() {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return string(p.src[start:p.pos])
			}
			depth--
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

// reference reads a program element reference such as
// java.util.Map#put(Object, Object). Blanks are allowed inside parentheses.
func (p *parser) reference() string {
	start := p.pos
	depth := 0
	for !p.eof() {
		c := p.peek()
		if depth == 0 && (unicode.IsSpace(c) || c == '}') {
			break
		}
		if c == '(' {
			depth++
		} else if c == ')' && depth > 0 {
			depth--
		} else if c == '\n' {
			break
		}
		p.pos++
	}
	return strings.TrimSpace(string(p.src[start:p.pos]))
}

func (p *parser) quoted() string {
	q := p.peek()
	if q != '"' && q != '\'' {
		return ""
	}
	p.pos++
	var sb strings.Builder
	for !p.eof() && p.peek() != q {
		if p.peek() == '\\' && p.peekAt(1) == q {
			p.pos++
		}
		sb.WriteRune(p.peek())
		p.pos++
	}
	if p.peek() == q {
		p.pos++
	}
	return sb.String()
}

func (p *parser) snippet() Node {
	attrs := make(map[string]string)
	for !p.eof() {
		p.skipAllSpace()
		if !isIdentStart(p.peek()) {
			break
		}
		name := p.scan(isIdentPart)
		p.skipSpace()
		var value string
		if p.peek() == '=' {
			p.pos++
			p.skipSpace()
			if p.peek() == '"' || p.peek() == '\'' {
				value = p.quoted()
			} else {
				value = p.scan(func(r rune) bool { return !unicode.IsSpace(r) && r != ':' && r != '}' })
			}
		}
		attrs[name] = value
	}
	var body string
	if p.peek() == ':' {
		p.pos++
		p.scan(func(r rune) bool { return r != '\n' })
		if p.peek() == '\n' {
			p.pos++
		}
		body = p.balanced()
	}
	return Snippet{Attributes: attrs, Body: body}
}

// html parses an HTML tag or comment at pos. It reports false and consumes
// nothing when the input is not a tag. Comments are consumed without a node.
func (p *parser) html() (Node, bool) {
	start := p.pos
	if p.hasPrefix("<!--") {
		p.pos += 4
		for !p.eof() && !p.hasPrefix("-->") {
			p.pos++
		}
		p.pos += 3
		if p.pos > len(p.src) {
			p.pos = len(p.src)
		}
		return nil, true
	}

	p.pos++
	if p.peek() == '/' {
		p.pos++
		name := p.scan(isTagNamePart)
		p.skipAllSpace()
		if name == "" || p.peek() != '>' {
			p.pos = start
			return nil, false
		}
		p.pos++
		return EndElement{Name: strings.ToLower(name)}, true
	}

	if !unicode.IsLetter(p.peek()) {
		p.pos = start
		return nil, false
	}
	name := p.scan(isTagNamePart)
	var attrs []Attribute
	for {
		p.skipAllSpace()
		if p.eof() || p.peek() == '>' || p.peek() == '/' {
			break
		}
		attr := p.scan(isTagNamePart)
		if attr == "" {
			p.pos = start
			return nil, false
		}
		p.skipAllSpace()
		var value string
		if p.peek() == '=' {
			p.pos++
			p.skipAllSpace()
			if p.peek() == '"' || p.peek() == '\'' {
				value = p.quoted()
			} else {
				value = p.scan(func(r rune) bool { return !unicode.IsSpace(r) && r != '>' })
			}
		}
		attrs = append(attrs, Attribute{Name: strings.ToLower(attr), Value: value})
	}
	selfClose := false
	if p.peek() == '/' {
		selfClose = true
		p.pos++
	}
	if p.peek() != '>' {
		p.pos = start
		return nil, false
	}
	p.pos++
	return StartElement{Name: strings.ToLower(name), Attributes: attrs, SelfClose: selfClose}, true
}

func (p *parser) entity() (Node, bool) {
	start := p.pos
	p.pos++
	var name string
	if p.peek() == '#' {
		p.pos++
		if p.peek() == 'x' || p.peek() == 'X' {
			p.pos++
			name = p.scan(isHexDigit)
		} else {
			name = p.scan(isDigit)
		}
		if name != "" {
			name = string(p.src[start+1 : p.pos])
		}
	} else {
		name = p.scan(unicode.IsLetter)
	}
	if name == "" || p.peek() != ';' {
		p.pos = start
		return nil, false
	}
	p.pos++
	return Entity{Name: name}, true
}

func (p *parser) blockTag() BlockTag {
	p.pos++
	name := p.scan(isIdentPart)
	p.skipSpace()

	switch name {
	case "param":
		typeParam := p.peek() == '<'
		if typeParam {
			p.pos++
		}
		param := p.scan(isIdentPart)
		if typeParam && p.peek() == '>' {
			p.pos++
		}
		p.skipSpace()
		return Param{Name: param, IsTypeParam: typeParam, Description: p.content(false)}
	case "return":
		return Return{Description: p.content(false)}
	case "throws", "exception":
		exc := p.reference()
		p.skipSpace()
		return Throws{Exception: exc, Description: p.content(false)}
	case "see":
		return p.see()
	case "since":
		return Since{Version: p.content(false)}
	case "deprecated":
		return Deprecated{Description: p.content(false)}
	case "author":
		return Author{Name: p.content(false)}
	case "version":
		return Version{Version: p.content(false)}
	case "serial":
		return Serial{Description: p.content(false)}
	case "serialData":
		return SerialData{Description: p.content(false)}
	case "serialField":
		field := p.scan(isIdentPart)
		p.skipSpace()
		typ := p.reference()
		p.skipSpace()
		return SerialField{Name: field, Type: typ, Description: p.content(false)}
	case "hidden":
		return Hidden{Description: p.content(false)}
	case "provides":
		svc := p.reference()
		p.skipSpace()
		return Provides{ServiceType: svc, Description: p.content(false)}
	case "uses":
		svc := p.reference()
		p.skipSpace()
		return Uses{ServiceType: svc, Description: p.content(false)}
	case "spec":
		url := p.scan(func(r rune) bool { return !unicode.IsSpace(r) })
		p.skipSpace()
		return Spec{URL: url, Title: p.content(false)}
	}
	return UnknownBlock{Name: name, Content: p.content(false)}
}

func (p *parser) see() BlockTag {
	switch p.peek() {
	case '"':
		s := p.quoted()
		p.content(false)
		return See{Kind: SeeString, Text: s}
	case '<':
		return See{Kind: SeeHTML, HTML: p.content(false)}
	}
	ref := p.reference()
	p.skipSpace()
	label := p.content(false)
	if strings.TrimSpace(PlainText(label)) == "" {
		label = nil
	}
	return See{Kind: SeeReference, Reference: ref, Label: label}
}

func isBlank(r rune) bool { return r == ' ' || r == '\t' }

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' || r == '$' }

func isIdentPart(r rune) bool { return isIdentStart(r) || unicode.IsDigit(r) }

func isTagNamePart(r rune) bool {
	return unicode.IsLetter(r) || isDigit(r) || r == '-' || r == '_' || r == ':'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
