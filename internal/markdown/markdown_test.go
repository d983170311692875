package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokinpui/nolog/internal/stripper"
)

func TestIsMarkdown(t *testing.T) {
	assert.True(t, IsMarkdown("README.md"))
	assert.True(t, IsMarkdown("docs/Guide.MARKDOWN"))
	assert.False(t, IsMarkdown("app.js"))
	assert.False(t, IsMarkdown("md"))
}

func TestStrip(t *testing.T) {
	s, err := stripper.New(stripper.DefaultTarget)
	require.NoError(t, err)

	source := "# Notes\n\nRun this:\n\nconsole.log(x);\n\n" +
		"```js\nconst a = 1;\nconsole.log(a);\n```\n\n" +
		"```python\nconsole.log(a);\n```\n"

	want := "# Notes\n\nRun this:\n\nconsole.log(x);\n\n" +
		"```js\nconst a = 1;\n```\n\n" +
		"```python\nconsole.log(a);\n```\n"

	got, err := Strip([]byte(source), s)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestStripWithoutScriptBlocks(t *testing.T) {
	s, err := stripper.New(stripper.DefaultTarget)
	require.NoError(t, err)

	source := "Some prose.\n\n\n\nconsole.log(x);\n"
	got, err := Strip([]byte(source), s)
	require.NoError(t, err)
	assert.Equal(t, source, string(got), "prose outside code blocks must be left alone")
}
