package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/ui"
)

// Terminal draws the tree as a column of bordered cards.
func Terminal(n *Node, th ui.Theme) string {
	if n == nil {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(th.Border).
		BorderForeground(th.BorderColor).
		Padding(0, 1)

	switch n.Kind {
	case KindHeading:
		return th.Title.Render(n.Text)
	case KindParagraph:
		return n.Text
	case KindArticle:
		lines := make([]string, 0, len(n.Children))
		for _, c := range n.Children {
			lines = append(lines, Terminal(c, th))
		}
		return card.Render(strings.Join(lines, "\n"))
	}

	if len(n.Children) == 0 {
		return th.Muted.Render("no items")
	}
	cards := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		cards = append(cards, Terminal(c, th))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
