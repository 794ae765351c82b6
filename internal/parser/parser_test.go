package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alice.txt")
	require.NoError(t, os.WriteFile(path, []byte("5 years Java experience"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "5 years Java experience", text)
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	_, err := ExtractText("resume.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("a.pdf"))
	assert.True(t, Supported("b.DOCX"))
	assert.True(t, Supported("c.txt"))
	assert.False(t, Supported("d.png"))
	assert.False(t, Supported("noext"))
}
