package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/render"
	"github.com/idilsaglam/todolist/internal/ui"
)

// doneFilter cycles all -> pending -> done.
type doneFilter int

const (
	showAll doneFilter = iota
	showPending
	showDone
)

func (f doneFilter) String() string {
	switch f {
	case showPending:
		return "pending"
	case showDone:
		return "done"
	}
	return "all"
}

// promptKind says what the text input at the bottom is collecting.
type promptKind int

const (
	noPrompt promptKind = iota
	groupPrompt
	addPrompt
	editPrompt
)

func (p promptKind) label() string {
	switch p {
	case addPrompt:
		return "Add new item"
	case editPrompt:
		return "Edit item"
	}
	return "Filter by group"
}

// listItem adapts *model.Item to bubbles/list.Item
type listItem struct {
	it *model.Item
}

func (i listItem) Title() string { return i.it.Title }
func (i listItem) Description() string {
	return fmt.Sprintf("%s · due %s · p%d · %s", i.it.ShortID(), render.DateString(i.it.Due), i.it.Priority, i.it.Group)
}
func (i listItem) FilterValue() string { return i.it.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	li, ok := item.(listItem)
	if !ok {
		return
	}
	th := ui.Current()

	box := th.Muted.Render(th.BoxUnchecked)
	text := li.it.Title
	if li.it.IsDone {
		box = th.Success.Render(th.BoxChecked)
		text = th.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = th.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s  %s", prefix, box, text, th.Muted.Render(li.Description()))
}

// Model is the Bubble Tea model over a collection. Every change is made on
// the collection itself; nothing is written anywhere.
type Model struct {
	coll    *model.Collection
	list    list.Model
	changed bool

	sortKey model.SortKey
	done    doneFilter
	group   string

	prompt    promptKind
	promptErr string
	editing   *model.Item
	ti        textinput.Model

	width, height int
}

var (
	sortDueBind      = key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "sort due"))
	sortPriorityBind = key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sort priority"))
	sortTitleBind    = key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sort title"))
	toggleBind       = key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle done"))
	removeBind       = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	doneFilterBind   = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "pending/done"))
	groupBind        = key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "group"))
	addBind          = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind         = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit title"))
	quitBind         = key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit"))
)

// New builds the model; initial sort is applied to the collection right away.
func New(c *model.Collection, sortKey model.SortKey) Model {
	if sortKey != "" {
		c.Sort(sortKey)
	}

	l := list.New(nil, itemDelegate{}, 80, 20)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	extra := func() []key.Binding {
		return []key.Binding{sortDueBind, sortPriorityBind, sortTitleBind, toggleBind, removeBind, addBind, editBind, doneFilterBind, groupBind}
	}
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{coll: c, list: l, sortKey: sortKey, ti: ti, width: 80, height: 24}
	m.refresh()
	return m
}

// Changed reports whether the collection was modified during the session.
func (m Model) Changed() bool { return m.changed }

// Visible returns the items currently shown, in display order.
func (m Model) Visible() []*model.Item {
	out := make([]*model.Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.it)
		}
	}
	return out
}

func (m Model) query() model.Query {
	var q model.Query
	if m.group != "" {
		g := m.group
		q.Group = &g
	}
	switch m.done {
	case showPending:
		f := false
		q.Done = &f
	case showDone:
		t := true
		q.Done = &t
	}
	return q
}

func (m *Model) refresh() tea.Cmd {
	items := m.query().Run(m.coll)
	li := make([]list.Item, 0, len(items))
	done := 0
	for _, it := range items {
		li = append(li, listItem{it: it})
		if it.IsDone {
			done++
		}
	}

	th := ui.Current()
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		th.Title.Render("Todos"),
		th.Success.Render(th.SymDone), done,
		th.Pending.Render(th.SymPending), len(items)-done,
		th.Accent.Render("Total"), m.coll.Len(),
	)
	var tags []string
	if m.sortKey != "" {
		tags = append(tags, "sort:"+string(m.sortKey))
	}
	if m.done != showAll {
		tags = append(tags, "show:"+m.done.String())
	}
	if m.group != "" {
		tags = append(tags, "group:"+m.group)
	}
	if len(tags) > 0 {
		title += "  " + th.Muted.Render(strings.Join(tags, " "))
	}
	m.list.Title = title
	return m.list.SetItems(li)
}

func (m Model) selected() *model.Item {
	if li, ok := m.list.SelectedItem().(listItem); ok {
		return li.it
	}
	return nil
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.prompt != noPrompt {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				return m, m.submitPrompt()
			case "esc":
				m.closePrompt()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// let the list own the keyboard while its fuzzy filter is being typed
	if km, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, quitBind):
			return m, tea.Quit
		case key.Matches(km, sortDueBind):
			return m, m.sortBy(model.SortByDue)
		case key.Matches(km, sortPriorityBind):
			return m, m.sortBy(model.SortByPriority)
		case key.Matches(km, sortTitleBind):
			return m, m.sortBy(model.SortByTitle)
		case key.Matches(km, toggleBind):
			if it := m.selected(); it != nil {
				it.IsDone = !it.IsDone
				m.changed = true
				return m, m.refresh()
			}
			return m, nil
		case key.Matches(km, removeBind):
			if it := m.selected(); it != nil {
				m.coll.Remove(it)
				m.changed = true
				return m, m.refresh()
			}
			return m, nil
		case key.Matches(km, doneFilterBind):
			m.done = (m.done + 1) % 3
			return m, m.refresh()
		case key.Matches(km, groupBind):
			return m, m.openPrompt(groupPrompt, m.group, "Group name (empty clears)...")
		case key.Matches(km, addBind):
			return m, m.openPrompt(addPrompt, "", "New item title...")
		case key.Matches(km, editBind):
			if it := m.selected(); it != nil {
				m.editing = it
				return m, m.openPrompt(editPrompt, it.Title, "Edit item title...")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) sortBy(k model.SortKey) tea.Cmd {
	m.coll.Sort(k)
	m.sortKey = k
	return m.refresh()
}

func (m *Model) openPrompt(k promptKind, value, placeholder string) tea.Cmd {
	m.prompt = k
	m.promptErr = ""
	m.ti.Placeholder = placeholder
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.resize()
	return m.ti.Focus()
}

// submitPrompt applies the input; add and edit keep the prompt open on an empty title.
func (m *Model) submitPrompt() tea.Cmd {
	value := strings.TrimSpace(m.ti.Value())
	switch m.prompt {
	case groupPrompt:
		m.group = value
	case addPrompt, editPrompt:
		if value == "" {
			m.promptErr = "Title cannot be empty"
			return nil
		}
		if m.prompt == addPrompt {
			m.coll.Add(model.NewItem(value, "", nil, 0))
		} else if m.editing != nil {
			m.editing.Title = value
		}
		if m.sortKey != "" {
			m.coll.Sort(m.sortKey)
		}
		m.changed = true
	}
	m.closePrompt()
	return m.refresh()
}

func (m *Model) closePrompt() {
	m.prompt = noPrompt
	m.promptErr = ""
	m.editing = nil
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) resize() {
	h := m.height - 4
	if m.prompt != noPrompt {
		h -= 4
	}
	if h < 3 {
		h = 3
	}
	m.list.SetSize(m.width-4, h)
}

func (m Model) View() string {
	content := m.list.View()
	if m.prompt != noPrompt {
		label := m.prompt.label()
		if m.promptErr != "" {
			label += " " + ui.Current().Error.Render(m.promptErr)
		}
		content += "\n" + ui.Box(label+"\n"+m.ti.View())
	}
	return ui.Box(content)
}

// Run starts the interactive browser and reports whether anything changed.
func Run(c *model.Collection, sortKey model.SortKey) (bool, error) {
	p := tea.NewProgram(New(c, sortKey), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return fm.Changed(), nil
}
