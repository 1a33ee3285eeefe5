package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultGroup is the group an item lands in when none is given.
const DefaultGroup = "default"

// Item is the domain model for a todo entry.
// Fields are plain and may be reassigned freely; nothing is enforced beyond shape.
type Item struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Due       time.Time `json:"dueDate"` // zero value means "invalid date"
	Priority  int       `json:"priority"`
	IsDone    bool      `json:"isDone"`
	Group     string    `json:"group"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemOption tweaks the optional fields of NewItem.
type ItemOption func(*Item)

func WithDone(done bool) ItemOption {
	return func(it *Item) { it.IsDone = done }
}

func WithGroup(group string) ItemOption {
	return func(it *Item) { it.Group = group }
}

// WithCreatedAt overrides the creation time. The value goes through ParseDate.
func WithCreatedAt(v any) ItemOption {
	return func(it *Item) { it.CreatedAt = ParseDate(v) }
}

// WithID keeps a known identifier instead of generating one.
func WithID(id string) ItemOption {
	return func(it *Item) {
		if id != "" {
			it.ID = id
		}
	}
}

// NewItem builds an item. due is normalized with ParseDate, so anything it
// cannot understand silently becomes the invalid (zero) date.
func NewItem(title, content string, due any, priority int, opts ...ItemOption) *Item {
	it := &Item{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Due:       ParseDate(due),
		Priority:  priority,
		Group:     DefaultGroup,
		CreatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// ShortID is the leading block of the id, enough to tell items apart on screen.
func (it *Item) ShortID() string {
	if i := strings.IndexByte(it.ID, '-'); i > 0 {
		return it.ID[:i]
	}
	if len(it.ID) > 8 {
		return it.ID[:8]
	}
	return it.ID
}
