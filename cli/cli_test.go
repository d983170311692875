package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Run("files with defaults", func(t *testing.T) {
		cfg, err := ParseFlags([]string{"a.js", "b.js"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.js", "b.js"}, cfg.Files)
		assert.Equal(t, "console.log", cfg.Target)
		assert.False(t, cfg.DryRun)
	})

	t.Run("custom target and dry run", func(t *testing.T) {
		cfg, err := ParseFlags([]string{"-n", "--target", "logger.debug", "a.js"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, cfg.DryRun)
		assert.Equal(t, "logger.debug", cfg.Target)
	})

	t.Run("no arguments", func(t *testing.T) {
		_, err := ParseFlags(nil, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrUsage)
	})

	t.Run("stdin needs no files", func(t *testing.T) {
		cfg, err := ParseFlags([]string{"--stdin"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, cfg.Stdin)
	})

	t.Run("stdin and clipboard are exclusive", func(t *testing.T) {
		_, err := ParseFlags([]string{"-i", "-c"}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("files and stdin are exclusive", func(t *testing.T) {
		_, err := ParseFlags([]string{"-i", "a.js"}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("empty target", func(t *testing.T) {
		_, err := ParseFlags([]string{"--target", "", "a.js"}, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("dash-prefixed file after --", func(t *testing.T) {
		cfg, err := ParseFlags([]string{"--", "-x.js", "a.js"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, []string{"-x.js", "a.js"}, cfg.Files)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := ParseFlags([]string{"--bogus", "a.js"}, &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf)
	assert.Contains(t, buf.String(), "Usage: nolog [flags] <file1> [<file2> ...]")
	assert.Contains(t, buf.String(), "--dry-run")
	assert.Contains(t, buf.String(), "nolog -- -x.js")
}
