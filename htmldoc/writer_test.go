package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/rstdoc/config"
	"github.com/dhamidi/rstdoc/report"
)

func convert(t *testing.T, fragment string) string {
	t.Helper()
	return Convert(fragment, nil, report.Discard).Serialize()
}

func TestConvertInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Hello world.", "Hello world.\n"},
		{"strong", "<p>Hello <b>world</b>.</p>", "Hello **world**.\n"},
		{"emphasis", "an <i>important</i> note", "an *important* note\n"},
		{"whitespace collapsed", "a \n\t  b", "a b\n"},
		{"code", "use <code>a &lt; b</code> here", "use ``a < b`` here\n"},
		{"glued code", "<code>foo</code>s", "``foo``\\ s\n"},
		{"escaped", "2 * 3 = six_", "2 \\* 3 = six\\_\n"},
		{"line break", "<p>a<br>b</p>", "| a\n| b\n"},
		{"named anchor", `<a name="top">Top</a> text`, ".. _top:\n\nTop text\n"},
		{"unknown element", `<span class="x">kept</span>`, "kept\n"},
		{"script dropped", "<script>alert(1)</script>text", "text\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert(t, tt.in))
		})
	}
}

func TestConvertEmpty(t *testing.T) {
	assert.Equal(t, "", convert(t, ""))
	assert.Equal(t, "", convert(t, "  \n "))
	assert.Equal(t, "", convert(t, "<p> </p>"))
}

func TestConvertParagraphs(t *testing.T) {
	got := convert(t, "<p>First.</p><p>Second.</p>")
	assert.Equal(t, "First.\n\nSecond.\n", got)

	got = convert(t, "Intro<p>Body")
	assert.Equal(t, "Intro\n\nBody\n", got)
}

func TestConvertLinks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"anchor", `<a href="#usage">Usage</a>`, ":ref:`Usage <usage>`\n"},
		{"cross reference", `<a href="@com.example.Foo#bar(int)">bar</a>`, ":java:ref:`bar <com.example.Foo.bar(int)>`\n"},
		{"cross reference without label", `<a href="@com.example.Foo"></a>`, ":java:ref:`com.example.Foo`\n"},
		{"external", `<a href="https://example.org">Example</a>`, "`Example <https://example.org>`__\n"},
		{"external bare", `<a href="https://example.org">https://example.org</a>`, "`<https://example.org>`__\n"},
		{"role code span", "<code>:java:ref:`Foo &lt;com.example.Foo&gt;`</code>", ":java:ref:`Foo <com.example.Foo>`\n"},
		{"link in code", `<code><a href="@com.example.Foo">Foo</a></code>`, ":java:ref:`Foo <com.example.Foo>`\n"},
		{"quoted text", `<a href="'it's'">x</a>`, "``it's``\n"},
		{"quoted text with inner quotes", `<a href='"say "hi""'>x</a>`, "``say \"hi\"``\n"},
		{"pass through", "<a href=\"&lt;:java:ref:`X`&gt;\">x</a>", ":java:ref:`X`\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert(t, tt.in))
		})
	}
}

func TestConvertAnchors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"inside paragraph", `<p>See below <a id="details"></a>for details.</p>`, ".. _details:\n\nSee below for details.\n"},
		{"heading", `<h2><a name="usage">Usage</a></h2><p>Text</p>`, ".. _usage:\n\n.. rubric:: Usage\n\nText\n"},
		{"code", `<a name="ex"></a><pre>x = 1;</pre>`, ".. _ex:\n\n.. code-block:: java\n\n   x = 1;\n"},
		{"list", `<a name="steps"></a><ul><li>one</li></ul>`, ".. _steps:\n\n* one\n"},
		{"at the end", `Text.<p><a name="end"></a>`, "Text.\n\n.. _end:\n"},
		{"name with colon", `<a name="a:b">x</a>`, ".. _`a:b`:\n\nx\n"},
		{"blank name", `<a name=" ">x</a>`, "x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, convert(t, tt.in))
		})
	}

	got := convert(t, `<p><a name="usage"></a>How to use it.</p><p>See <a href="#usage">Usage</a>.</p>`)
	assert.Equal(t, ".. _usage:\n\nHow to use it.\n\nSee :ref:`Usage <usage>`.\n", got)
}

func TestConvertCustomRoles(t *testing.T) {
	opts := config.Default()
	opts.CrossRefRole = "kt:ref"
	opts.AnchorRole = "doc"
	got := ConvertWith(`<a href="@a.B">B</a> <a href="#x">X</a>`, nil, nil, opts).Serialize()
	assert.Equal(t, ":kt:ref:`B <a.B>` :doc:`X <x>`\n", got)
}

func TestConvertPre(t *testing.T) {
	got := convert(t, "<p>Example:</p><pre>\n    int x = 1;\n    if (x &lt; 2) {\n        x++;\n    }\n</pre>")
	want := "Example:\n\n.. code-block:: java\n\n   int x = 1;\n   if (x < 2) {\n       x++;\n   }\n"
	assert.Equal(t, want, got)

	opts := config.Default()
	opts.CodeLanguage = ""
	got = ConvertWith("<pre>raw</pre>", nil, nil, opts).Serialize()
	assert.Equal(t, "::\n\n   raw\n", got)
}

func TestConvertLists(t *testing.T) {
	assert.Equal(t, "* one\n* two\n", convert(t, "<ul><li>one</li><li>two</li></ul>"))
	assert.Equal(t, "#. one\n#. two\n", convert(t, "<ol><li>one<li>two</ol>"))
	assert.Equal(t, "* a\n\n  * b\n", convert(t, "<ul><li>a<ul><li>b</li></ul></li></ul>"))
	assert.Equal(t, "Before\n\n* item\n\nAfter\n", convert(t, "Before<ul><li>item</li></ul>After"))
}

func TestConvertDefinitionList(t *testing.T) {
	got := convert(t, "<dl><dt>Key</dt><dd>Value</dd><dt>Other</dt><dd>More</dd></dl>")
	assert.Equal(t, "* **Key**\n\n  Value\n\n* **Other**\n\n  More\n", got)
}

func TestConvertTable(t *testing.T) {
	got := convert(t, "<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>22</td></tr></table>")
	want := "+---+----+\n| A | B  |\n+===+====+\n| 1 | 22 |\n+---+----+\n"
	assert.Equal(t, want, got)

	got = convert(t, "<table><tr><th>Name</th><td>value</td></tr></table>")
	assert.NotContains(t, got, "=", "mixed rows are not header rows")
}

func TestConvertHeading(t *testing.T) {
	got := convert(t, "<h2>Usage <code>notes</code></h2><p>Text</p>")
	assert.Equal(t, ".. rubric:: Usage notes\n\nText\n", got)
}

func TestConvertReportsUnknownElements(t *testing.T) {
	var c report.Collector
	Convert(`<span>x</span><blink>y</blink>`, nil, &c)
	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, report.SeverityDebug, entries[0].Severity)
	assert.Contains(t, entries[1].Message, "<blink>")
	assert.Equal(t, 0, c.Count(report.SeverityWarning))
}

func TestWriterState(t *testing.T) {
	w := NewWriter(nil, nil, config.Default())
	assert.Equal(t, StateOutsideParagraph, w.State())

	w.StartList(false)
	assert.Equal(t, StateInsideList, w.State())
	assert.Equal(t, 1, w.ListDepth())

	w.StartListItem()
	w.VisitText("x")
	assert.Equal(t, StateInsideParagraph, w.State())

	w.StartList(true)
	assert.Equal(t, StateInsideList, w.State())
	assert.Equal(t, 2, w.ListDepth())
	w.EndList()
	assert.Equal(t, 1, w.ListDepth())
	w.EndListItem()
	w.EndList()
	assert.Equal(t, 0, w.ListDepth())
	assert.Equal(t, StateOutsideParagraph, w.State())

	w.StartTable()
	w.StartRow()
	w.StartCell(false)
	assert.Equal(t, StateInsideTableCell, w.State())
	w.VisitText("cell")
	assert.Equal(t, StateInsideParagraph, w.State())
	w.EndCell()
	w.EndRow()
	w.EndTable()
	assert.Equal(t, StateOutsideParagraph, w.State())

	doc := w.Document()
	assert.Equal(t, StateFinished, w.State())
	before := doc.Serialize()
	w.VisitText("ignored")
	w.StartList(false)
	assert.Equal(t, before, w.Document().Serialize())
	assert.Equal(t, StateFinished, w.State())
}

func TestWriterUnbalancedEvents(t *testing.T) {
	w := NewWriter(nil, nil, config.Default())
	w.EndList()
	w.EndListItem()
	w.EndCell()
	w.EndRow()
	w.EndTable()
	w.EndStrong()
	w.EndHeading()
	w.VisitText("still fine")
	assert.Equal(t, "still fine\n", w.Document().Serialize())
	assert.Equal(t, 0, w.ListDepth())
}

func TestDedent(t *testing.T) {
	assert.Equal(t, "a\n  b\n", dedent("  a\n    b\n"))
	assert.Equal(t, "a\n\nb", dedent("\ta\n\n\tb"))
	assert.Equal(t, "x", dedent("x"))
}
