package javadoc

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseSimpleText(t *testing.T) {
	doc := Parse("/** Simple text. */")

	if len(doc.Body) != 1 {
		t.Fatalf("expected 1 body node, got %d", len(doc.Body))
	}
	text, ok := doc.Body[0].(Text)
	if !ok {
		t.Fatalf("expected Text node, got %T", doc.Body[0])
	}
	if text.Content != "Simple text. " {
		t.Errorf("expected 'Simple text. ', got %q", text.Content)
	}
}

func TestParseCodeTag(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/** Use {@code Map<String, List<Integer>>} for this. */", "Map<String, List<Integer>>"},
		{"/** Use {@code class Foo { int x; }} for this. */", "class Foo { int x; }"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			doc := Parse(tt.input)
			if len(doc.Body) != 3 {
				t.Fatalf("expected 3 body nodes, got %d: %+v", len(doc.Body), doc.Body)
			}
			code, ok := doc.Body[1].(Code)
			if !ok {
				t.Fatalf("expected Code node, got %T", doc.Body[1])
			}
			if code.Content != tt.want {
				t.Errorf("expected %q, got %q", tt.want, code.Content)
			}
		})
	}
}

func TestParseLinkTag(t *testing.T) {
	doc := Parse("/** See {@link java.util.List the List interface}. */")

	link, ok := doc.Body[1].(Link)
	if !ok {
		t.Fatalf("expected Link node, got %T", doc.Body[1])
	}
	if link.Reference != "java.util.List" {
		t.Errorf("expected 'java.util.List', got %q", link.Reference)
	}
	if link.Plain {
		t.Error("expected Plain to be false")
	}
	if got := PlainText(link.Label); got != "the List interface" {
		t.Errorf("label = %q", got)
	}

	doc = Parse("{@linkplain Map#put(Object, Object) put}")
	link = doc.Body[0].(Link)
	if link.Reference != "Map#put(Object, Object)" || !link.Plain {
		t.Errorf("unexpected link %+v", link)
	}
}

func TestParseBlockTags(t *testing.T) {
	doc := Parse(`/**
	 * Description.
	 *
	 * @param name the name of the thing
	 * @param <T> the element type
	 * @return the result
	 * @throws IllegalArgumentException if bad
	 * @exception java.io.IOException on I/O
	 * @since 1.2
	 * @deprecated use {@link #other()}
	 * @custom whatever
	 */`)

	if got := strings.TrimSpace(PlainText(doc.Body)); got != "Description." {
		t.Errorf("body = %q", got)
	}
	names := make([]string, len(doc.Tags))
	for i, tag := range doc.Tags {
		names[i] = tag.TagName()
	}
	want := []string{"param", "param", "return", "throws", "throws", "since", "deprecated", "custom"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("tags = %v, want %v", names, want)
	}

	param := doc.Tags[0].(Param)
	if param.Name != "name" || param.IsTypeParam {
		t.Errorf("unexpected param %+v", param)
	}
	if got := strings.TrimSpace(PlainText(param.Description)); got != "the name of the thing" {
		t.Errorf("param description = %q", got)
	}
	typeParam := doc.Tags[1].(Param)
	if typeParam.Name != "T" || !typeParam.IsTypeParam {
		t.Errorf("unexpected type param %+v", typeParam)
	}
	if exc := doc.Tags[4].(Throws).Exception; exc != "java.io.IOException" {
		t.Errorf("exception = %q", exc)
	}
	deprecated := doc.Tags[6].(Deprecated)
	if _, ok := deprecated.Description[1].(Link); !ok {
		t.Errorf("expected link in @deprecated, got %+v", deprecated.Description)
	}
}

func TestParseSeeTag(t *testing.T) {
	doc := Parse(`/**
 * @see java.util.List#add(Object) adding
 * @see "The Java Language Specification"
 * @see <a href="https://example.com">Example</a>
 * @see Other
 */`)

	if len(doc.Tags) != 4 {
		t.Fatalf("expected 4 tags, got %d", len(doc.Tags))
	}
	ref := doc.Tags[0].(See)
	if ref.Kind != SeeReference || ref.Reference != "java.util.List#add(Object)" {
		t.Errorf("unexpected see %+v", ref)
	}
	if got := strings.TrimSpace(PlainText(ref.Label)); got != "adding" {
		t.Errorf("label = %q", got)
	}
	if s := doc.Tags[1].(See); s.Kind != SeeString || s.Text != "The Java Language Specification" {
		t.Errorf("unexpected see %+v", s)
	}
	if s := doc.Tags[2].(See); s.Kind != SeeHTML {
		t.Errorf("unexpected see %+v", s)
	}
	if s := doc.Tags[3].(See); s.Label != nil {
		t.Errorf("expected no label, got %+v", s.Label)
	}
}

func TestParseHTML(t *testing.T) {
	doc := Parse("<p>Hello &amp; <b>bye</b></p> a < b")

	want := []Node{
		StartElement{Name: "p"},
		Text{Content: "Hello "},
		Entity{Name: "amp"},
		Text{Content: " "},
		StartElement{Name: "b"},
		Text{Content: "bye"},
		EndElement{Name: "b"},
		EndElement{Name: "p"},
		Text{Content: " a < b"},
	}
	if !reflect.DeepEqual(doc.Body, want) {
		t.Errorf("body = %#v", doc.Body)
	}
}

func TestParseHTMLAttributes(t *testing.T) {
	doc := Parse(`<a href="https://example.com/?a=1&b=2" target=_blank>x</a><br/>`)

	start := doc.Body[0].(StartElement)
	want := []Attribute{{Name: "href", Value: "https://example.com/?a=1&b=2"}, {Name: "target", Value: "_blank"}}
	if !reflect.DeepEqual(start.Attributes, want) {
		t.Errorf("attributes = %+v", start.Attributes)
	}
	if br := doc.Body[3].(StartElement); br.Name != "br" || !br.SelfClose {
		t.Errorf("unexpected %+v", br)
	}
}

func TestParseEntities(t *testing.T) {
	doc := Parse("&#160;&#x41;&nbsp;&bogus &")
	if len(doc.Body) != 4 {
		t.Fatalf("body = %#v", doc.Body)
	}
	if e := doc.Body[0].(Entity); e.Name != "#160" {
		t.Errorf("entity = %q", e.Name)
	}
	if e := doc.Body[1].(Entity); e.Name != "#x41" {
		t.Errorf("entity = %q", e.Name)
	}
	if got := PlainText(doc.Body); got != "\u00a0A\u00a0&bogus &" {
		t.Errorf("plain text = %q", got)
	}
}

func TestParseInlineTags(t *testing.T) {
	doc := Parse(`{@inheritDoc} {@value #MAX} {@summary Short.} {@return the size} {@index "foo bar" desc} {@systemProperty user.home} {@unknown x}`)

	var kinds []string
	for _, n := range doc.Body {
		if _, ok := n.(Text); ok {
			continue
		}
		kinds = append(kinds, reflect.TypeOf(n).Name())
	}
	want := []string{"InheritDoc", "Value", "Summary", "InlineReturn", "IndexTerm", "SystemProperty", "UnknownInline"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds = %v", kinds)
	}
	if v := doc.Body[2].(Value); v.Reference != "#MAX" {
		t.Errorf("value reference = %q", v.Reference)
	}
}

func TestParseSnippet(t *testing.T) {
	doc := Parse("{@snippet lang=java :\nint x = 1;\n}")
	s, ok := doc.Body[0].(Snippet)
	if !ok {
		t.Fatalf("expected Snippet, got %T", doc.Body[0])
	}
	if s.Attributes["lang"] != "java" {
		t.Errorf("attributes = %v", s.Attributes)
	}
	if s.Body != "int x = 1;\n" {
		t.Errorf("body = %q", s.Body)
	}
}

func TestParseCommentStripping(t *testing.T) {
	doc := Parse("/**\n * <pre>\n *   indented\n * </pre>\n */")
	got := RenderHTML(doc.Body, nil)
	if !strings.Contains(got, "<pre>\n  indented\n</pre>") {
		t.Errorf("rendered = %q", got)
	}
}
