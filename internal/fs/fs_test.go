package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads text", func(t *testing.T) {
		path := filepath.Join(dir, "a.js")
		require.NoError(t, os.WriteFile(path, []byte("console.log(1);\n"), 0644))

		content, err := ReadDocument(path)
		require.NoError(t, err)
		assert.Equal(t, "console.log(1);\n", content)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadDocument(filepath.Join(dir, "missing.js"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		path := filepath.Join(dir, "bin.js")
		require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00}, 0644))

		_, err := ReadDocument(path)
		assert.Equal(t, ErrInvalidUTF8, err)
	})
}

func TestWriteDocumentKeepsMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not preserved on windows")
	}
	path := filepath.Join(t.TempDir(), "script.js")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0755))

	require.NoError(t, FileWriter{}.Write(path, "new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}
