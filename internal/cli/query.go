package cli

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// parseQuery reads the sort/filter flags shared by ls, show and browse.
// Only flags that were actually given become filters.
func parseQuery(cmd string, args []string) (model.Query, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(ui.Stderr())

	sortBy := fs.String("sort", "", "sort by due|priority|title")
	id := fs.String("id", "", "only items whose id starts with this prefix")
	group := fs.String("group", "", "only items in this group")
	due := fs.String("due", "", "only items due on this day (YYYY-MM-DD)")
	priority := fs.Int("priority", 0, "only items with this priority")
	title := fs.String("title", "", "only items with this exact title")
	done := fs.String("done", "", "only done (true) or pending (false) items")

	if err := fs.Parse(args); err != nil {
		return model.Query{}, err
	}
	if fs.NArg() > 0 {
		return model.Query{}, fmt.Errorf("%s: unexpected argument %q", cmd, fs.Arg(0))
	}

	var q model.Query
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "sort":
			q.Sort, err = model.ParseSortKey(*sortBy)
		case "id":
			q.ID = id
		case "group":
			q.Group = group
		case "due":
			t, perr := model.ParseDateStrict(*due)
			if perr != nil {
				err = fmt.Errorf("-due: %w", perr)
				return
			}
			q.Due = &t
		case "priority":
			q.Priority = priority
		case "title":
			q.Title = title
		case "done":
			b, perr := strconv.ParseBool(*done)
			if perr != nil {
				err = fmt.Errorf("-done: want true or false, got %q", *done)
				return
			}
			q.Done = &b
		}
	})
	return q, err
}
