package rst

import (
	"regexp"
	"strings"
	"unicode"
)

// Paragraph is a run of inline content. Width > 0 wraps it greedily.
type Paragraph struct {
	children []Node
	Width    int
	// Targets are written above the text and label the paragraph.
	Targets []*Target
}

func NewParagraph(children ...Inline) *Paragraph {
	p := &Paragraph{}
	for _, c := range children {
		p.AddChild(c)
	}
	return p
}

func (*Paragraph) Kind() Kind { return KindParagraph }

func (p *Paragraph) Children() []Node { return p.children }

// AddChild appends inline content. Block nodes are reduced to their text.
func (p *Paragraph) AddChild(child Node) {
	if child == nil {
		return
	}
	if _, ok := child.(Inline); !ok {
		child = NewText(PlainText(child))
	}
	p.children = append(p.children, child)
}

// IsEmpty reports whether the paragraph has no visible content.
func (p *Paragraph) IsEmpty() bool {
	for _, c := range p.children {
		if _, ok := c.(*LineBreak); ok {
			continue
		}
		if strings.TrimSpace(c.Serialize()) != "" {
			return false
		}
	}
	return true
}

func (p *Paragraph) Serialize() string {
	text := p.text()
	var labels []string
	for _, t := range p.Targets {
		if s := t.Serialize(); s != "" {
			labels = append(labels, s)
		}
	}
	if len(labels) == 0 {
		return text
	}
	if text == "" {
		return strings.Join(labels, "\n")
	}
	return strings.Join(labels, "\n") + "\n\n" + text
}

func (p *Paragraph) text() string {
	lines := p.lines()
	if len(lines) == 0 {
		return ""
	}
	if len(lines) == 1 {
		words := lines[0]
		if p.Width > 0 {
			return finishParagraph(wrap(words, p.Width))
		}
		return finishParagraph(joinWords(words))
	}

	var sb strings.Builder
	for i, words := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		line := joinWords(words)
		if line == "" {
			sb.WriteString("|")
			continue
		}
		sb.WriteString("| ")
		sb.WriteString(line)
	}
	return sb.String()
}

// lines splits the children at line breaks and turns each line into words.
// Leading and trailing line breaks are dropped.
func (p *Paragraph) lines() [][]string {
	var groups [][]Node
	var cur []Node
	for _, c := range p.children {
		if _, ok := c.(*LineBreak); ok {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, c)
	}
	groups = append(groups, cur)

	var lines [][]string
	for _, g := range groups {
		lines = append(lines, words(g))
	}
	for len(lines) > 0 && len(lines[0]) == 0 {
		lines = lines[1:]
	}
	for len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// words serializes inline nodes into whitespace separated words. Markup is
// never split; the separator rule is applied at every seam between nodes.
func words(nodes []Node) []string {
	var out []string
	var word strings.Builder
	var prev string
	prevMarkup := false

	flush := func() {
		if word.Len() > 0 {
			out = append(out, word.String())
			word.Reset()
		}
	}

	for _, n := range nodes {
		s := n.Serialize()
		if s == "" {
			continue
		}
		starts, ends := markupEdges(n)
		if needsSeparator(prev, prevMarkup, s, starts) {
			word.WriteString(Separator)
		}
		if starts || ends {
			// Markup may carry whitespace outside its delimiters.
			lead := s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsSpace))]
			trail := s[len(strings.TrimRightFunc(s, unicode.IsSpace)):]
			if lead != "" {
				flush()
			}
			word.WriteString(strings.TrimSpace(s))
			if trail != "" {
				flush()
			}
		} else {
			for i, f := range strings.FieldsFunc(s, unicode.IsSpace) {
				if i > 0 || startsWithSpace(s) {
					flush()
				}
				word.WriteString(f)
			}
			if endsWithSpace(s) {
				flush()
			}
		}
		prev, prevMarkup = s, ends
	}
	flush()
	return out
}

func startsWithSpace(s string) bool {
	return s != "" && unicode.IsSpace([]rune(s)[0])
}

func endsWithSpace(s string) bool {
	return strings.TrimRightFunc(s, unicode.IsSpace) != s
}

func joinWords(words []string) string {
	if len(words) == 0 {
		return ""
	}
	out := make([]string, len(words))
	copy(out, words)
	if startsConstruct(out[0]) {
		out[0] = `\` + out[0]
	}
	return strings.Join(out, " ")
}

// wrap fills lines up to width. A word that would be read as a list marker,
// enumerator or explicit markup at the start of a line stays on the previous
// line even if that overflows.
func wrap(words []string, width int) string {
	if len(words) == 0 {
		return ""
	}
	var lines []string
	first := words[0]
	if startsConstruct(first) {
		first = `\` + first
	}
	line := first
	for _, w := range words[1:] {
		if displayWidth(line)+1+displayWidth(w) > width && !startsConstruct(w) {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

var constructPattern = regexp.MustCompile(`^(?:[-*+•|]|#\.|[0-9]+[.)]|[a-zA-Z][.)]|[ivxlcdmIVXLCDM]+[.)]|\([0-9a-zA-Z#]+\)|\.\.|>>>|::?|:[^:\s]+:)$`)

// startsConstruct reports whether a word at the start of a line would begin
// a block construct instead of a paragraph.
func startsConstruct(word string) bool {
	return constructPattern.MatchString(word) || isAdornment(word)
}

// isAdornment reports a run of one repeated punctuation character, which
// would read as a section underline or transition.
func isAdornment(word string) bool {
	if len(word) < 2 || !strings.ContainsRune(`=-~^"'+#*<>_.:`, rune(word[0])) {
		return false
	}
	return strings.Count(word, word[:1]) == len(word)
}

// finishParagraph keeps a trailing "::" from introducing a literal block.
func finishParagraph(s string) string {
	if strings.HasSuffix(s, "::") && !strings.HasSuffix(s, `\::`) {
		return s[:len(s)-1] + `\:`
	}
	return s
}
