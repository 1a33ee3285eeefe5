package model

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey names one of the orderings a Collection supports.
type SortKey string

const (
	SortByDue      SortKey = "due"
	SortByPriority SortKey = "priority"
	SortByTitle    SortKey = "title"
)

// ParseSortKey accepts the key names plus a couple of obvious spellings.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "due", "duedate", "date":
		return SortByDue, nil
	case "priority", "prio":
		return SortByPriority, nil
	case "title", "name":
		return SortByTitle, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want due, priority or title)", s)
}

// Collection is an ordered, in-memory list of items.
// Insertion order holds until one of the Sort methods reorders it.
// Not safe for concurrent use.
type Collection struct {
	items    []*Item
	collator *collate.Collator
}

type CollectionOption func(*Collection)

// WithLocale selects the collation used by SortByTitle.
func WithLocale(tag language.Tag) CollectionOption {
	return func(c *Collection) { c.collator = collate.New(tag) }
}

// WithItems seeds the collection, in order.
func WithItems(items ...*Item) CollectionOption {
	return func(c *Collection) { c.items = append(c.items, items...) }
}

func NewCollection(opts ...CollectionOption) *Collection {
	c := &Collection{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends it to the end of the collection.
func (c *Collection) Add(it *Item) {
	c.items = append(c.items, it)
}

// Remove drops every element that is the very same *Item as it.
// Items that merely hold equal field values stay.
func (c *Collection) Remove(it *Item) {
	kept := c.items[:0]
	for _, cur := range c.items {
		if cur != it {
			kept = append(kept, cur)
		}
	}
	clear(c.items[len(kept):])
	c.items = kept
}

// List returns a snapshot of the current order.
func (c *Collection) List() []*Item {
	return slices.Clone(c.items)
}

func (c *Collection) Len() int { return len(c.items) }

// Sort dispatches to the Sort method matching key. Unknown keys leave the order alone.
func (c *Collection) Sort(key SortKey) {
	switch key {
	case SortByDue:
		c.SortByDueDate()
	case SortByPriority:
		c.SortByPriority()
	case SortByTitle:
		c.SortByTitle()
	}
}

// SortByDueDate orders items chronologically. Invalid dates come first.
func (c *Collection) SortByDueDate() {
	slices.SortStableFunc(c.items, func(a, b *Item) int {
		return a.Due.Compare(b.Due)
	})
}

func (c *Collection) SortByPriority() {
	slices.SortStableFunc(c.items, func(a, b *Item) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
}

// SortByTitle orders titles with the collection's locale collation,
// the root collation unless WithLocale picked another.
func (c *Collection) SortByTitle() {
	if c.collator == nil {
		c.collator = collate.New(language.Und)
	}
	slices.SortStableFunc(c.items, func(a, b *Item) int {
		return c.collator.CompareString(a.Title, b.Title)
	})
}

// Filter returns the items pred accepts, in collection order.
func (c *Collection) Filter(pred func(*Item) bool) []*Item {
	out := make([]*Item, 0, len(c.items))
	for _, it := range c.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}

func (c *Collection) FilterByGroup(group string) []*Item {
	return c.Filter(func(it *Item) bool { return it.Group == group })
}

// FilterByDueDate keeps items due on the same local calendar day as day.
func (c *Collection) FilterByDueDate(day time.Time) []*Item {
	return c.Filter(func(it *Item) bool { return SameDay(it.Due, day) })
}

func (c *Collection) FilterByPriority(priority int) []*Item {
	return c.Filter(func(it *Item) bool { return it.Priority == priority })
}

func (c *Collection) FilterByTitle(title string) []*Item {
	return c.Filter(func(it *Item) bool { return it.Title == title })
}

// FilterByID keeps items whose id starts with prefix, so a ShortID is enough.
// An empty prefix matches nothing.
func (c *Collection) FilterByID(prefix string) []*Item {
	return c.Filter(func(it *Item) bool { return prefix != "" && strings.HasPrefix(it.ID, prefix) })
}

func (c *Collection) FilterByIsDone(done bool) []*Item {
	return c.Filter(func(it *Item) bool { return it.IsDone == done })
}
