package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/render"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options tune output behavior from root flags and config.
type Options struct {
	Split      bool   // list split into pending/done
	File       string // seed file, todos.json when empty
	Locale     language.Tag
	GroupLabel string
	Log        zerolog.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp(ui.Stdout())
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(ui.Stdout())
		return 0
	case "ls", "show", "browse":
	default:
		ui.Fail("unknown subcommand: " + cmd)
		PrintHelp(ui.Stdout())
		return 2
	}

	q, err := parseQuery(cmd, a)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		ui.Fail(err.Error())
		return 2
	}

	coll, code := load(opt)
	if code != 0 {
		return code
	}

	switch cmd {
	case "ls":
		return doList(coll, q, opt)
	case "show":
		return doShow(coll, q, opt)
	default:
		return doBrowse(coll, q, opt)
	}
}

// PrintHelp writes usage to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - browse a todo list in memory

Usage:
  todo [-file todos.json] [-split] [-theme classic|neon|mono] <subcommand> [query flags]

Subcommands:
  ls       List items with a progress header
  show     Render items as cards
  browse   Interactive list (sort, filter, toggle, remove)

Query flags:
  -sort due|priority|title   Sort before listing
  -id PREFIX                 Only items whose id starts with PREFIX
  -group NAME                Only items in this group (exact match)
  -due YYYY-MM-DD            Only items due that day
  -priority N                Only items with this priority
  -title TEXT                Only items with this exact title
  -done true|false           Only done / pending items

Examples:
  todo ls -sort priority
  todo -split ls -group Work
  todo show -due 2024-03-01
  todo show -id 3f2a9c1e
  todo browse -sort due
`)
}

// -------------- subcommand impls ----------------

func load(opt Options) (*model.Collection, int) {
	items, err := jsonstore.Load(opt.File)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return nil, 1
	}
	opt.Log.Debug().Str("file", opt.File).Int("items", len(items)).Msg("loaded items")
	return model.NewCollection(model.WithLocale(opt.Locale), model.WithItems(items...)), 0
}

func doList(coll *model.Collection, q model.Query, opt Options) int {
	items := q.Run(coll)
	opt.Log.Debug().Str("sort", string(q.Sort)).Int("matched", len(items)).Msg("query")

	// Header + progress
	th := ui.Current()
	d, p := stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		th.Title.Render("Todos"),
		th.Success.Render(th.SymDone), d,
		th.Pending.Render(th.SymPending), p,
		th.Accent.Render("Total"), len(items),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, th.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if opt.Split {
		lines = append(lines, splitLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, th.Muted.Render("Tip: `todo browse` to sort and filter interactively"))
	ui.Panel(lines)
	return 0
}

func doShow(coll *model.Collection, q model.Query, opt Options) int {
	items := q.Run(coll)
	opt.Log.Debug().Str("sort", string(q.Sort)).Int("matched", len(items)).Msg("query")

	tree := render.TaskList(items, render.WithGroupLabel(opt.GroupLabel))
	fmt.Fprintln(ui.Stdout(), render.Terminal(tree, ui.Current()))
	return 0
}

func doBrowse(coll *model.Collection, q model.Query, opt Options) int {
	// browse keeps its own interactive filters; the flags only narrow the starting set
	if q.ID != nil || q.Group != nil || q.Due != nil || q.Priority != nil || q.Title != nil || q.Done != nil {
		items := q.Run(coll)
		coll = model.NewCollection(model.WithLocale(opt.Locale), model.WithItems(items...))
	}
	changed, err := tui.Run(coll, q.Sort)
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	if changed {
		ui.OK(fmt.Sprintf("%d items after browsing", coll.Len()))
		ui.Hint("Changes made while browsing are kept in memory only.")
	}
	return 0
}

// -------------- rendering helpers --------------

func stats(items []*model.Item) (done, pending int) {
	for _, it := range items {
		if it.IsDone {
			done++
		} else {
			pending++
		}
	}
	return
}

func flatLines(items []*model.Item) []string {
	th := ui.Current()
	if len(items) == 0 {
		return []string{th.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := th.Muted.Render(th.BoxUnchecked)
		title := it.Title
		if len([]rune(title)) > 60 {
			title = string([]rune(title)[:57]) + "..."
		}
		if it.IsDone {
			box = th.Success.Render(th.BoxChecked)
			title = th.Done.Render(title)
		}
		meta := fmt.Sprintf("%s · p%d · %s", render.DateString(it.Due), it.Priority, it.Group)
		out = append(out, fmt.Sprintf("%s %s %s %s  %s",
			th.Muted.Render(idx), th.Accent.Render(it.ShortID()), box, title, th.Muted.Render(meta)))
	}
	return out
}

func splitLines(items []*model.Item) []string {
	view := model.NewCollection(model.WithItems(items...))
	pend, done := view.FilterByIsDone(false), view.FilterByIsDone(true)

	th := ui.Current()
	var lines []string
	lines = append(lines, th.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, th.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, th.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, th.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
