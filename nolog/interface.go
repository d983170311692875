package nolog

import (
	"fmt"

	"github.com/sokinpui/nolog/cli"
	"github.com/sokinpui/nolog/internal/stripper"
	"github.com/sokinpui/nolog/model"
)

// Config for using nolog as a library.
type Config struct {
	// Call to remove. Defaults to console.log.
	Target string
	// Compute reports without writing files.
	DryRun bool
}

// Strip returns content with every standalone console.log statement removed.
func Strip(content string) string {
	s, _ := stripper.New(stripper.DefaultTarget)
	return s.Strip(content)
}

// StripFiles strips each file in place and returns the per-file reports.
func StripFiles(paths []string, config Config) (model.Summary, error) {
	target := config.Target
	if target == "" {
		target = stripper.DefaultTarget
	}

	app, err := New(&cli.Config{
		Target: target,
		DryRun: config.DryRun,
		Files:  paths,
	})
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to initialize nolog app: %w", err)
	}
	return app.Execute()
}
