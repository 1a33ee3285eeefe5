// Package render turns items into a display tree that a front end can draw.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/todolist/internal/model"
)

type Kind int

const (
	KindList Kind = iota
	KindArticle
	KindHeading
	KindParagraph
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindArticle:
		return "article"
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Node is one element of the display tree. Only headings and paragraphs carry text.
type Node struct {
	Kind     Kind
	Text     string
	Children []*Node
}

// DefaultGroupLabel prefixes the group field of each article.
const DefaultGroupLabel = "Project"

type options struct {
	groupLabel string
}

type Option func(*options)

func WithGroupLabel(label string) Option {
	return func(o *options) {
		if label != "" {
			o.groupLabel = label
		}
	}
}

// TaskList builds one article per item, in the order given. Each article has
// a heading with the title followed by paragraphs for content, due date,
// priority/done and group/creation date.
func TaskList(items []*model.Item, opts ...Option) *Node {
	o := options{groupLabel: DefaultGroupLabel}
	for _, opt := range opts {
		opt(&o)
	}

	root := &Node{Kind: KindList, Children: make([]*Node, 0, len(items))}
	for _, it := range items {
		root.Children = append(root.Children, &Node{
			Kind: KindArticle,
			Children: []*Node{
				{Kind: KindHeading, Text: it.Title},
				paragraph("Content: %s", it.Content),
				paragraph("Due Date: %s", DateString(it.Due)),
				paragraph("Priority: %d, Is Done: %t", it.Priority, it.IsDone),
				paragraph("%s: %s, Date: %s", o.groupLabel, it.Group, DateString(it.CreatedAt)),
			},
		})
	}
	return root
}

func paragraph(format string, args ...any) *Node {
	return &Node{Kind: KindParagraph, Text: fmt.Sprintf(format, args...)}
}

// DateString formats the local calendar day, e.g. "Fri Mar 01 2024".
func DateString(t time.Time) string {
	if !model.ValidDate(t) {
		return "Invalid Date"
	}
	return t.Local().Format("Mon Jan 02 2006")
}

// Text dumps the tree as indented plain text, one node per line.
func Text(n *Node) string {
	var b strings.Builder
	writeText(&b, n, 0)
	return b.String()
}

func writeText(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	if n.Text != "" {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(n.Text)
		b.WriteByte('\n')
	}
	next := depth
	if n.Kind == KindArticle {
		next++
	}
	for _, c := range n.Children {
		writeText(b, c, next)
	}
	if n.Kind == KindArticle {
		b.WriteByte('\n')
	}
}
