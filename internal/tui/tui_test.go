package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("expected tui.Model; got %T", next)
		}
	}
	return m
}

func visibleTitles(m Model) string {
	var out []string
	for _, it := range m.Visible() {
		out = append(out, it.Title)
	}
	return strings.Join(out, ",")
}

func fixture() *model.Collection {
	return model.NewCollection(model.WithItems(
		model.NewItem("charlie", "", "2024-03-03", 2, model.WithGroup("Work")),
		model.NewItem("alpha", "", "2024-03-02", 3, model.WithDone(true)),
		model.NewItem("bravo", "", "2024-03-01", 1, model.WithGroup("Work")),
	))
}

func TestModel_SortKeys(t *testing.T) {
	m := New(fixture(), "")
	if got := visibleTitles(m); got != "charlie,alpha,bravo" {
		t.Fatalf("expected insertion order; got %s", got)
	}

	m = press(t, m, runes("1"))
	if got := visibleTitles(m); got != "bravo,alpha,charlie" {
		t.Fatalf("sort by due: got %s", got)
	}
	m = press(t, m, runes("2"))
	if got := visibleTitles(m); got != "bravo,charlie,alpha" {
		t.Fatalf("sort by priority: got %s", got)
	}
	m = press(t, m, runes("3"))
	if got := visibleTitles(m); got != "alpha,bravo,charlie" {
		t.Fatalf("sort by title: got %s", got)
	}
	if m.Changed() {
		t.Fatalf("sorting alone should not count as a change")
	}
}

func TestModel_InitialSort(t *testing.T) {
	m := New(fixture(), model.SortByPriority)
	if got := visibleTitles(m); got != "bravo,charlie,alpha" {
		t.Fatalf("expected priority order; got %s", got)
	}
}

func TestModel_DoneFilterCycles(t *testing.T) {
	m := New(fixture(), model.SortByTitle)

	m = press(t, m, runes("f"))
	if got := visibleTitles(m); got != "bravo,charlie" {
		t.Fatalf("pending: got %s", got)
	}
	m = press(t, m, runes("f"))
	if got := visibleTitles(m); got != "alpha" {
		t.Fatalf("done: got %s", got)
	}
	m = press(t, m, runes("f"))
	if got := visibleTitles(m); got != "alpha,bravo,charlie" {
		t.Fatalf("all: got %s", got)
	}
}

func TestModel_ToggleAndRemove(t *testing.T) {
	c := fixture()
	m := New(c, model.SortByTitle)

	// cursor starts on "alpha", which is done
	m = press(t, m, runes(" "))
	if c.List()[0].IsDone {
		t.Fatalf("expected alpha toggled to pending")
	}
	if !m.Changed() {
		t.Fatalf("expected changed after toggle")
	}

	m = press(t, m, runes("d"))
	if c.Len() != 2 {
		t.Fatalf("expected item removed from collection; len %d", c.Len())
	}
	if got := visibleTitles(m); got != "bravo,charlie" {
		t.Fatalf("after remove: got %s", got)
	}
}

func TestModel_GroupPrompt(t *testing.T) {
	m := New(fixture(), model.SortByTitle)

	m = press(t, m, runes("g"), runes("Work"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := visibleTitles(m); got != "bravo,charlie" {
		t.Fatalf("group Work: got %s", got)
	}
	if !strings.Contains(m.View(), "group:Work") {
		t.Fatalf("expected active group in title")
	}

	// case-sensitive
	m = press(t, m, runes("g"), tea.KeyMsg{Type: tea.KeyCtrlU}, runes("work"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := visibleTitles(m); got != "" {
		t.Fatalf("group work: expected nothing; got %s", got)
	}

	// esc cancels without touching the filter
	m = press(t, m, runes("g"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.prompt != noPrompt {
		t.Fatalf("expected prompt closed")
	}
	if m.group != "work" {
		t.Fatalf("expected group unchanged; got %q", m.group)
	}

	m = press(t, m, runes("g"), tea.KeyMsg{Type: tea.KeyCtrlU}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := visibleTitles(m); got != "alpha,bravo,charlie" {
		t.Fatalf("cleared group: got %s", got)
	}
}

func TestModel_Quit(t *testing.T) {
	m := New(fixture(), "")
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModel_AddItem(t *testing.T) {
	c := fixture()
	m := New(c, model.SortByTitle)

	m = press(t, m, runes("a"))
	if !strings.Contains(m.View(), "Add new item") {
		t.Fatalf("expected add prompt in view")
	}

	// empty titles are refused and the prompt stays open
	m = press(t, m, runes("   "), tea.KeyMsg{Type: tea.KeyEnter})
	if m.prompt != addPrompt || c.Len() != 3 {
		t.Fatalf("expected empty title refused; prompt %v len %d", m.prompt, c.Len())
	}
	if !strings.Contains(m.View(), "Title cannot be empty") {
		t.Fatalf("expected empty-title error in view")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU}, runes("bacon"), tea.KeyMsg{Type: tea.KeyEnter})
	if c.Len() != 4 {
		t.Fatalf("expected item added; len %d", c.Len())
	}
	if got := visibleTitles(m); got != "alpha,bacon,bravo,charlie" {
		t.Fatalf("expected new item in title order; got %s", got)
	}
	if !m.Changed() {
		t.Fatalf("expected changed after add")
	}
	added := c.FilterByTitle("bacon")[0]
	if added.ID == "" || added.Priority != 0 || added.IsDone || added.Group != model.DefaultGroup {
		t.Fatalf("unexpected new item %+v", added)
	}

	// esc discards the input
	m = press(t, m, runes("a"), runes("zulu"), tea.KeyMsg{Type: tea.KeyEsc})
	if c.Len() != 4 || m.prompt != noPrompt {
		t.Fatalf("expected esc to cancel add")
	}
}

func TestModel_EditTitle(t *testing.T) {
	c := fixture()
	m := New(c, "")

	// cursor starts on "charlie"
	m = press(t, m, runes("e"))
	if m.ti.Value() != "charlie" {
		t.Fatalf("expected prompt prefilled with the title; got %q", m.ti.Value())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlU}, runes("delta"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := visibleTitles(m); got != "delta,alpha,bravo" {
		t.Fatalf("after edit: got %s", got)
	}
	if c.Len() != 3 || !m.Changed() {
		t.Fatalf("expected edit in place")
	}
}

func TestListItem_DescriptionShowsShortID(t *testing.T) {
	it := model.NewItem("x", "", "2024-03-01", 2, model.WithID("3f2a9c1e-aaaa-bbbb"), model.WithGroup("Work"))
	got := listItem{it: it}.Description()
	if !strings.HasPrefix(got, "3f2a9c1e · ") || strings.Contains(got, "aaaa") {
		t.Fatalf("expected short id prefix; got %q", got)
	}
}
