package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sokinpui/nolog/model"
	"github.com/sokinpui/nolog/nolog"
)

// --- Styles ---
var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")) // Mauve
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))            // Green
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))           // Orange
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))           // Red
	pathStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// --- Messages ---
type reportMsg struct {
	current int
	total   int
	report  model.Report
}

type summaryMsg struct {
	model.Summary
}

type errorMsg struct{ err error }

func (e errorMsg) Error() string { return e.err.Error() }

// --- Model ---
type Model struct {
	app      *nolog.App
	spinner  spinner.Model
	progress progress.Model
	state    state
	current  int
	total    int
	summary  model.Summary
	err      error
}

type state int

const (
	stateProcessing state = iota
	stateSummary
	stateError
)

func New(app *nolog.App) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		app:      app,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		state:    stateProcessing,
		total:    len(app.Files()),
	}
}

// Run drives app inside a bubbletea program. Reports are printed above the
// progress view as each document finishes.
func Run(app *nolog.App) (model.Summary, error) {
	p := tea.NewProgram(New(app))
	target := app.Target()
	// Both sends go through the program's message queue from the Execute
	// goroutine, so every report line is queued before the summary arrives.
	app.SetReportCallback(func(current, total int, r model.Report) {
		p.Println(RenderReport(target, r))
		p.Send(reportMsg{current: current, total: total, report: r})
	})

	final, err := p.Run()
	if err != nil {
		return model.Summary{}, fmt.Errorf("error running program: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return model.Summary{}, nil
	}
	return m.summary, m.err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runApp)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Quitting mid-batch would abandon a document being written.
			if m.state != stateProcessing {
				return m, tea.Quit
			}
		}

	case reportMsg:
		m.current = msg.current
		m.total = msg.total
		return m, nil

	case summaryMsg:
		m.state = stateSummary
		m.summary = msg.Summary
		return m, tea.Quit

	case errorMsg:
		m.state = stateError
		m.err = msg.err
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		if m.state == stateProcessing {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case stateProcessing:
		percent := 0.0
		if m.total > 0 {
			percent = float64(m.current) / float64(m.total)
		}
		return fmt.Sprintf("%s Processing %d/%d %s\n", m.spinner.View(), m.current, m.total, m.progress.ViewAs(percent))
	case stateError:
		return errorStyle.Render("Error: "+m.err.Error()) + "\n"
	case stateSummary:
		return m.renderSummary()
	default:
		return ""
	}
}

// RenderReport formats one document report for the terminal.
func RenderReport(target string, r model.Report) string {
	if !r.OK() {
		return errorStyle.Render(fmt.Sprintf("❌ failed to process %s: %v", r.Path, r.Err))
	}

	var b strings.Builder
	b.WriteString(successStyle.Render("✅ "))
	b.WriteString(pathStyle.Render(r.Path))
	if !r.Written {
		b.WriteString(faintStyle.Render(" (dry run)"))
	}
	b.WriteString(fmt.Sprintf("\n   lines: %d → %d (-%d)", r.LinesBefore, r.LinesAfter, r.LinesRemoved()))
	b.WriteString(fmt.Sprintf("\n   %s: %d → %d (removed %d)\n", target, r.CallsBefore, r.CallsAfter, r.CallsRemoved()))
	return b.String()
}

func (m *Model) renderSummary() string {
	var b strings.Builder

	if m.summary.Message != "" {
		b.WriteString(headerStyle.Render(m.summary.Message))
		b.WriteString("\n")
	}

	if len(m.summary.Reports) == 0 {
		b.WriteString(faintStyle.Render("Nothing to do."))
		b.WriteString("\n")
		return b.String()
	}

	style := successStyle
	if m.summary.Succeeded() < len(m.summary.Reports) {
		style = warningStyle
	}
	b.WriteString(style.Render(fmt.Sprintf("Done! %d/%d file(s) processed successfully", m.summary.Succeeded(), len(m.summary.Reports))))
	b.WriteString("\n")
	return b.String()
}

func (m Model) runApp() tea.Msg {
	summary, err := m.app.Execute()
	if err != nil {
		if e, ok := err.(*nolog.DetailedError); ok {
			// The TUI will exit, so we can print to stderr here for the stack trace.
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", e.Stack)
		}
		return errorMsg{err}
	}
	return summaryMsg{Summary: summary}
}
