package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/ui"
)

func main() {
	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}

	// Root flags (apply to every subcommand); they override the environment.
	split := flag.Bool("split", false, "split output into pending/done")
	file := flag.String("file", cfg.File, "JSON file to read items from")
	theme := flag.String("theme", cfg.Theme, "classic | neon | mono")
	noColor := flag.Bool("no-color", false, "disable colors")
	color := flag.Bool("color", false, "force colors even when not a TTY")
	flag.Parse()

	ui.SetTheme(*theme)
	ui.SetColorForcing(*color, *noColor)
	log := logging.New(cfg.LogLevel, os.Stderr)

	tag, err := cfg.Language()
	if err != nil {
		log.Warn().Err(err).Msg("falling back to root collation")
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stdout)
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Split:      *split,
		File:       *file,
		Locale:     tag,
		GroupLabel: cfg.GroupLabel,
		Log:        log,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
