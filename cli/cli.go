package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/sokinpui/nolog/internal/stripper"
)

// ErrUsage is returned when no input was given on the command line.
var ErrUsage = errors.New("no input files given")

// Config holds all the command-line flag values.
type Config struct {
	Target      string
	DryRun      bool
	Stdin       bool
	Clipboard   bool
	Buffer      bool
	NoAnimation bool
	Files       []string
}

// newFlagSet defines the command-line flags bound to cfg.
func newFlagSet(cfg *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("nolog", pflag.ContinueOnError)

	fs.StringVarP(&cfg.Target, "target", "t", stripper.DefaultTarget, "Call to remove; statements using any other name are kept.")
	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Report what would be removed without writing files.")
	fs.BoolVarP(&cfg.Stdin, "stdin", "i", false, "Read text from stdin and write the result to stdout.")
	fs.BoolVarP(&cfg.Clipboard, "clipboard", "c", false, "Strip the clipboard contents in place.")
	fs.BoolVarP(&cfg.Buffer, "buffer", "b", false, "Write files through Neovim so open buffers stay in sync.")
	fs.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable the progress view and print plain reports.")

	return fs
}

// PrintUsage writes the usage text and flag defaults to w.
func PrintUsage(w io.Writer) {
	fs := newFlagSet(&Config{})
	fs.SetOutput(w)
	fmt.Fprintln(w, "Usage: nolog [flags] <file1> [<file2> ...]")
	fmt.Fprintln(w, "\nRemove console.log statements from files, keeping console.error and other calls.")
	fmt.Fprintln(w, "\nExample: nolog src/app.js src/util.js")
	fmt.Fprintln(w, "\nEvery argument after -- is a path, even one starting with '-': nolog -- -x.js")
	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}

// ParseFlags parses args (without the program name). Flag errors are
// written to errOut. ErrUsage is returned when there is nothing to process.
func ParseFlags(args []string, errOut io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := newFlagSet(cfg)
	fs.SetOutput(errOut)
	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.Files = fs.Args()

	if cfg.Stdin && cfg.Clipboard {
		return nil, fmt.Errorf("error: --stdin and --clipboard are mutually exclusive")
	}
	if (cfg.Stdin || cfg.Clipboard) && len(cfg.Files) > 0 {
		return nil, fmt.Errorf("error: file arguments cannot be combined with --stdin or --clipboard")
	}
	if _, err := stripper.New(cfg.Target); err != nil {
		return nil, fmt.Errorf("error: invalid --target: %w", err)
	}
	if !cfg.Stdin && !cfg.Clipboard && len(cfg.Files) == 0 {
		return nil, ErrUsage
	}

	return cfg, nil
}
