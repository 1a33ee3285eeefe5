package model

import "testing"

func TestQuery_Run(t *testing.T) {
	shipped := NewItem("Ship", "", "2024-03-01", 1, WithGroup("Work"), WithDone(true))
	review := NewItem("Review", "", "2024-03-01", 2, WithGroup("Work"))
	plan := NewItem("Plan", "", "2024-03-04", 1, WithGroup("Work"))
	laundry := NewItem("Laundry", "", "2024-03-01", 1)
	c := NewCollection(WithItems(shipped, review, plan, laundry))

	work := "Work"
	pending := false
	due := ParseDate("2024-03-01")
	one := 1

	sameOrder(t, Query{}.Run(c), shipped, review, plan, laundry)
	sameOrder(t, Query{Group: &work, Done: &pending}.Run(c), review, plan)
	sameOrder(t, Query{Due: &due, Priority: &one}.Run(c), shipped, laundry)

	sameOrder(t, Query{Sort: SortByTitle, Group: &work}.Run(c), plan, review, shipped)
	// sorting is in place, filtering is not
	sameOrder(t, c.List(), laundry, plan, review, shipped)

	short := review.ShortID()
	sameOrder(t, Query{ID: &short}.Run(c), review)

	title := "Nope"
	if got := (Query{Title: &title}).Run(c); len(got) != 0 {
		t.Fatalf("expected no matches; got %v", titles(got))
	}
}
