package model

import "time"

// Query combines an optional sort with any number of filters. Nil fields are
// ignored; set filters must all match.
type Query struct {
	Sort     SortKey
	ID       *string
	Group    *string
	Due      *time.Time
	Priority *int
	Title    *string
	Done     *bool
}

// Run sorts c in place when q.Sort is set, then narrows the result with each
// filter in turn. c keeps every item; only the returned slice is filtered.
func (q Query) Run(c *Collection) []*Item {
	if q.Sort != "" {
		c.Sort(q.Sort)
	}
	view := c
	narrow := func(items []*Item) {
		view = &Collection{items: items}
	}
	if q.ID != nil {
		narrow(view.FilterByID(*q.ID))
	}
	if q.Group != nil {
		narrow(view.FilterByGroup(*q.Group))
	}
	if q.Due != nil {
		narrow(view.FilterByDueDate(*q.Due))
	}
	if q.Priority != nil {
		narrow(view.FilterByPriority(*q.Priority))
	}
	if q.Title != nil {
		narrow(view.FilterByTitle(*q.Title))
	}
	if q.Done != nil {
		narrow(view.FilterByIsDone(*q.Done))
	}
	return view.List()
}
