package nolog

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/sokinpui/nolog/cli"
	"github.com/sokinpui/nolog/internal/fs"
	"github.com/sokinpui/nolog/internal/markdown"
	"github.com/sokinpui/nolog/internal/nvim"
	"github.com/sokinpui/nolog/internal/source"
	"github.com/sokinpui/nolog/internal/stripper"
	"github.com/sokinpui/nolog/model"
)

const (
	stdinName     = "<stdin>"
	clipboardName = "<clipboard>"
)

// ReportCallback is called after each document with its position in the batch.
type ReportCallback func(current, total int, report model.Report)

// documentWriter persists the transformed text of one document.
type documentWriter interface {
	Write(path, content string) error
}

// App orchestrates the entire application logic.
type App struct {
	cfg            *cli.Config
	stripper       *stripper.Stripper
	sourceProvider *source.SourceProvider
	writer         documentWriter
	stdout         io.Writer
	reportCallback ReportCallback
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	s, err := stripper.New(cfg.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize stripper: %w", err)
	}

	return &App{
		cfg:            cfg,
		stripper:       s,
		sourceProvider: source.New(os.Stdin),
		writer:         fs.FileWriter{},
		stdout:         os.Stdout,
	}, nil
}

// SetIO replaces the streams used by --stdin mode.
func (a *App) SetIO(stdin io.Reader, stdout io.Writer) {
	a.sourceProvider = source.New(stdin)
	a.stdout = stdout
}

// SetReportCallback sets a function to be called after each document.
func (a *App) SetReportCallback(cb ReportCallback) {
	a.reportCallback = cb
}

// Target returns the call name being removed.
func (a *App) Target() string {
	return a.stripper.Target()
}

// Files returns the document paths given on the command line.
func (a *App) Files() []string {
	return a.cfg.Files
}

// Execute executes the main application logic based on parsed flags.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	switch {
	case a.cfg.Stdin:
		return a.filterStdin()
	case a.cfg.Clipboard:
		return a.stripClipboard()
	default:
		return a.processFiles()
	}
}

// processFiles runs the batch over every path, strictly in order. A failed
// document is recorded in its report and never stops the batch.
func (a *App) processFiles() (model.Summary, error) {
	if a.cfg.Buffer && !a.cfg.DryRun {
		manager, err := nvim.New()
		if err != nil {
			return model.Summary{}, err
		}
		defer manager.Close()
		a.writer = manager
	}

	summary := model.Summary{Target: a.Target()}
	total := len(a.cfg.Files)
	for i, path := range a.cfg.Files {
		report := a.ProcessFile(path)
		summary.Reports = append(summary.Reports, report)
		if a.reportCallback != nil {
			a.reportCallback(i+1, total, report)
		}
	}
	return summary, nil
}

// ProcessFile strips one document in place and reports the counts.
func (a *App) ProcessFile(path string) model.Report {
	report := model.Report{Path: path}

	content, err := fs.ReadDocument(path)
	if err != nil {
		report.Err = &FileAccessError{Path: path, Op: "read", Err: err}
		return report
	}

	stripped, err := a.strip(path, content)
	if err != nil {
		report.Err = err
		return report
	}
	a.count(&report, content, stripped)

	if a.cfg.DryRun {
		return report
	}
	if err := a.writer.Write(path, stripped); err != nil {
		report.Err = &FileAccessError{Path: path, Op: "write", Err: err}
		return report
	}
	report.Written = true
	return report
}

// filterStdin strips stdin and writes the result to stdout.
func (a *App) filterStdin() (model.Summary, error) {
	content, err := a.sourceProvider.ReadStdin()
	if err != nil {
		return model.Summary{}, err
	}

	stripped := a.stripper.Strip(content)
	report := model.Report{Path: stdinName, Written: true}
	a.count(&report, content, stripped)

	if _, err := io.WriteString(a.stdout, stripped); err != nil {
		return model.Summary{}, fmt.Errorf("failed to write to stdout: %w", err)
	}
	return model.Summary{Target: a.Target(), Reports: []model.Report{report}}, nil
}

// stripClipboard strips the clipboard text and puts the result back.
func (a *App) stripClipboard() (model.Summary, error) {
	content, err := a.sourceProvider.ReadClipboard()
	if err != nil {
		return model.Summary{}, err
	}
	if strings.TrimSpace(content) == "" {
		return model.Summary{Target: a.Target(), Message: "Clipboard is empty. Nothing to process."}, nil
	}

	stripped := a.stripper.Strip(content)
	report := model.Report{Path: clipboardName}
	a.count(&report, content, stripped)

	if !a.cfg.DryRun {
		if err := a.sourceProvider.WriteClipboard(stripped); err != nil {
			return model.Summary{}, err
		}
		report.Written = true
	}
	return model.Summary{Target: a.Target(), Reports: []model.Report{report}}, nil
}

// strip dispatches on the document kind: Markdown documents only have their
// script code blocks rewritten.
func (a *App) strip(path, content string) (string, error) {
	if !markdown.IsMarkdown(path) {
		return a.stripper.Strip(content), nil
	}
	out, err := markdown.Strip([]byte(content), a.stripper)
	if err != nil {
		return "", fmt.Errorf("failed to parse markdown %s: %w", path, err)
	}
	return string(out), nil
}

func (a *App) count(report *model.Report, before, after string) {
	report.LinesBefore = stripper.CountLines(before)
	report.LinesAfter = stripper.CountLines(after)
	report.CallsBefore = a.stripper.Count(before)
	report.CallsAfter = a.stripper.Count(after)
}
