package source

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestReadStdin(t *testing.T) {
	sp := New(strings.NewReader("console.log(1);\n"))
	content, err := sp.ReadStdin()
	require.NoError(t, err)
	assert.Equal(t, "console.log(1);\n", content)
}

func TestReadStdinError(t *testing.T) {
	sp := New(failingReader{})
	_, err := sp.ReadStdin()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read from stdin")
}
