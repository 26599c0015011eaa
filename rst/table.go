package rst

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a grid table. Leading header rows are separated from the body by
// a '=' border.
type Table struct {
	children []Node
}

func NewTable() *Table { return &Table{} }

func (*Table) Kind() Kind { return KindTable }

func (t *Table) Children() []Node { return t.children }

func (t *Table) AddChild(child Node) {
	if child == nil {
		return
	}
	row, ok := child.(*Row)
	if !ok {
		row = NewRow(false)
		row.AddChild(child)
	}
	t.children = append(t.children, row)
}

func (t *Table) Serialize() string {
	var rows [][][]string
	var header []bool
	cols := 0
	for _, c := range t.children {
		row := c.(*Row)
		var cells [][]string
		for _, cell := range row.children {
			cells = append(cells, strings.Split(cell.Serialize(), "\n"))
		}
		if len(cells) > cols {
			cols = len(cells)
		}
		rows = append(rows, cells)
		header = append(header, row.Header)
	}
	if len(rows) == 0 || cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for i := range widths {
		widths[i] = 1
	}
	for r := range rows {
		for len(rows[r]) < cols {
			rows[r] = append(rows[r], []string{""})
		}
		for i, lines := range rows[r] {
			for _, l := range lines {
				if w := displayWidth(l); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	// Only a leading run of header rows is treated as the table head.
	headEnd := 0
	for headEnd < len(header) && header[headEnd] {
		headEnd++
	}
	if headEnd == len(rows) {
		headEnd = 0
	}

	var sb strings.Builder
	sb.WriteString(border(widths, '-'))
	for r, cells := range rows {
		height := 1
		for _, lines := range cells {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for h := 0; h < height; h++ {
			sb.WriteString("\n|")
			for i, lines := range cells {
				line := ""
				if h < len(lines) {
					line = lines[h]
				}
				sb.WriteString(" ")
				sb.WriteString(line)
				sb.WriteString(strings.Repeat(" ", widths[i]-displayWidth(line)))
				sb.WriteString(" |")
			}
		}
		sb.WriteString("\n")
		if headEnd > 0 && r == headEnd-1 {
			sb.WriteString(border(widths, '='))
		} else {
			sb.WriteString(border(widths, '-'))
		}
	}
	return sb.String()
}

func border(widths []int, c byte) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for _, w := range widths {
		sb.WriteString(strings.Repeat(string(c), w+2))
		sb.WriteByte('+')
	}
	return sb.String()
}

// Row is a table row. Header marks it as part of the table head.
type Row struct {
	children []Node
	Header   bool
}

func NewRow(header bool) *Row { return &Row{Header: header} }

func (*Row) Kind() Kind { return KindTableRow }

func (r *Row) Children() []Node { return r.children }

func (r *Row) AddChild(child Node) {
	if child == nil {
		return
	}
	cell, ok := child.(*Cell)
	if !ok {
		cell = NewCell(child)
	}
	r.children = append(r.children, cell)
}

// Serialize renders the row as a one-row table.
func (r *Row) Serialize() string {
	t := NewTable()
	t.AddChild(r)
	return t.Serialize()
}

type Cell struct {
	container
}

func NewCell(children ...Node) *Cell {
	c := &Cell{}
	for _, n := range children {
		c.AddChild(n)
	}
	return c
}

func (*Cell) Kind() Kind          { return KindTableCell }
func (c *Cell) Serialize() string { return joinBlocks(c.children) }

func displayWidth(s string) int { return runewidth.StringWidth(s) }
