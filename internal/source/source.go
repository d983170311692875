package source

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// SourceProvider reads and writes text that does not come from a file path.
type SourceProvider struct {
	stdin io.Reader
}

// New creates a new SourceProvider reading from the given stdin.
func New(stdin io.Reader) *SourceProvider {
	return &SourceProvider{stdin: stdin}
}

// ReadStdin returns everything piped into the process.
func (sp *SourceProvider) ReadStdin() (string, error) {
	content, err := io.ReadAll(sp.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return string(content), nil
}

// ReadClipboard returns the current clipboard text.
func (sp *SourceProvider) ReadClipboard() (string, error) {
	content, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read from clipboard: %w", err)
	}
	return content, nil
}

// WriteClipboard replaces the clipboard text.
func (sp *SourceProvider) WriteClipboard(content string) error {
	if err := clipboard.WriteAll(content); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}
