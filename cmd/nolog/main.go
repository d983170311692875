package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/sokinpui/nolog/cli"
	"github.com/sokinpui/nolog/internal/tui"
	"github.com/sokinpui/nolog/internal/ui"
	"github.com/sokinpui/nolog/model"
	"github.com/sokinpui/nolog/nolog"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status. Per-file
// failures are reported but never change the status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := cli.ParseFlags(args, stderr)
	switch {
	case errors.Is(err, pflag.ErrHelp):
		cli.PrintUsage(stdout)
		return 0
	case errors.Is(err, cli.ErrUsage):
		cli.PrintUsage(stdout)
		return 1
	case err != nil:
		ui.Error(stderr, "%v", err)
		return 1
	}

	app, err := nolog.New(cfg)
	if err != nil {
		ui.Error(stderr, "Failed to initialize application: %v", err)
		return 1
	}
	app.SetIO(stdin, stdout)

	if useTUI(cfg, stdout) {
		if _, err := tui.Run(app); err != nil {
			ui.Error(stderr, "Error: %v", err)
			return 1
		}
		return 0
	}

	// Keep stdout clean for the filtered text.
	reportOut := stdout
	if cfg.Stdin {
		reportOut = stderr
	}
	if cfg.DryRun {
		ui.Info(stderr, "Dry run: no files will be written.")
	}
	if cfg.Buffer && !cfg.DryRun {
		ui.Info(stderr, "Writing through Neovim buffers.")
	}
	app.SetReportCallback(func(_, _ int, r model.Report) {
		ui.PrintReport(reportOut, app.Target(), r)
	})

	summary, err := app.Execute()
	if err != nil {
		var detailed *nolog.DetailedError
		if errors.As(err, &detailed) {
			ui.Header(stderr, "\n--- Stack Trace ---")
			fmt.Fprintf(stderr, "%s\n", detailed.Stack)
		}
		ui.Error(stderr, "Error: %v", err)
		return 1
	}

	// Stdin and clipboard runs have no per-file callback.
	if cfg.Stdin || cfg.Clipboard {
		for _, r := range summary.Reports {
			ui.PrintReport(reportOut, app.Target(), r)
		}
	}
	ui.PrintSummary(reportOut, summary)
	return 0
}

// useTUI reports whether the interactive progress view should run.
func useTUI(cfg *cli.Config, stdout io.Writer) bool {
	if cfg.NoAnimation || cfg.Stdin || cfg.Clipboard {
		return false
	}
	f, ok := stdout.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
