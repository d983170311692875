package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/sokinpui/nolog/model"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

// Header writes a bold section banner.
func Header(w io.Writer, format string, a ...interface{}) {
	HeaderColor.Fprintf(w, format+"\n", a...)
}

func Info(w io.Writer, format string, a ...interface{}) {
	InfoColor.Fprintf(w, format+"\n", a...)
}

func Error(w io.Writer, format string, a ...interface{}) {
	ErrorColor.Fprintf(w, format+"\n", a...)
}

// --- Reports ---

// PrintReport writes the per-document report block for r.
func PrintReport(w io.Writer, target string, r model.Report) {
	if !r.OK() {
		ErrorColor.Fprintf(w, "❌ failed to process %s: %v\n", r.Path, r.Err)
		return
	}

	suffix := ""
	if !r.Written {
		suffix = " (dry run)"
	}
	SuccessColor.Fprint(w, "✅ ")
	PathColor.Fprintf(w, "%s", r.Path)
	fmt.Fprintf(w, "%s\n", suffix)
	fmt.Fprintf(w, "   lines: %d → %d (-%d)\n", r.LinesBefore, r.LinesAfter, r.LinesRemoved())
	fmt.Fprintf(w, "   %s: %d → %d (removed %d)\n", target, r.CallsBefore, r.CallsAfter, r.CallsRemoved())
	fmt.Fprintln(w)
}

// PrintSummary writes the final tally line.
func PrintSummary(w io.Writer, s model.Summary) {
	if s.Message != "" {
		Info(w, "%s", s.Message)
	}
	c := SuccessColor
	if s.Succeeded() < len(s.Reports) {
		c = WarningColor
	}
	c.Fprintf(w, "\nDone! %d/%d file(s) processed successfully\n", s.Succeeded(), len(s.Reports))
}
