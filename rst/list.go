package rst

import (
	"strings"
)

// List is a bullet list, or an auto-numbered list when Ordered is set.
type List struct {
	children []Node
	Ordered  bool
}

func NewList(ordered bool) *List { return &List{Ordered: ordered} }

func (*List) Kind() Kind { return KindList }

func (l *List) Children() []Node { return l.children }

// AddChild appends an item. Anything that is not a ListItem is wrapped in one.
func (l *List) AddChild(child Node) {
	if child == nil {
		return
	}
	item, ok := child.(*ListItem)
	if !ok {
		item = NewListItem(child)
	}
	l.children = append(l.children, item)
}

func (l *List) Serialize() string {
	marker := "* "
	if l.Ordered {
		marker = "#. "
	}
	var items []string
	loose := false
	for _, c := range l.children {
		item := c.(*ListItem)
		body := joinBlocks(item.children)
		if body == "" {
			continue
		}
		if strings.Contains(body, "\n\n") {
			loose = true
		}
		items = append(items, hangingIndent(marker, body))
	}
	if loose {
		return strings.Join(items, "\n\n")
	}
	return strings.Join(items, "\n")
}

type ListItem struct {
	container
}

func NewListItem(children ...Node) *ListItem {
	li := &ListItem{}
	for _, c := range children {
		li.AddChild(c)
	}
	return li
}

func (*ListItem) Kind() Kind { return KindListItem }

// Serialize renders the item body without a marker.
func (li *ListItem) Serialize() string { return joinBlocks(li.children) }
