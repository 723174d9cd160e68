package dictionary

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesAndDedupes(t *testing.T) {
	d := New([]string{" Cat", "cat", "DOG\n", "", "no way", "x1", "act"})
	assert.Equal(t, []string{"act", "cat", "dog"}, d.Words())
	assert.True(t, d.Contains("CAT "))
	assert.False(t, d.Contains("no way"))
	assert.Equal(t, 3, d.Len())
}

func TestDefaultWords(t *testing.T) {
	d := Default()
	assert.Equal(t, 20, d.Len())
	for _, w := range []string{"cat", "house", "window", "light"} {
		assert.True(t, d.Contains(w), w)
	}
}

func TestEnglishWords(t *testing.T) {
	d := English()
	assert.True(t, d.Contains("voice"))
	assert.False(t, d.Contains("# 3-letter words"))
	// "small" is listed twice in the source list
	assert.Equal(t, 68, d.Len())
}

func TestInLengthRange(t *testing.T) {
	d := New([]string{"ox", "cat", "door", "house", "window", "sun"})
	assert.Equal(t, []string{"cat", "sun", "door"}, d.InLengthRange(3, 4))
	assert.Empty(t, d.InLengthRange(7, 9))
	assert.Empty(t, d.InLengthRange(5, 4))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nTree\n\nbook\nbook\n"), 0o644))

	d, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"book", "tree"}, d.Words())
}

func TestLoadMissingFallsBackToDefault(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "nope.txt"), nil)
	require.NoError(t, err)
	assert.Equal(t, Default().Words(), d.Words())
}

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, English()))
	assert.True(t, strings.HasPrefix(buf.String(), "after\n"))

	d, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, English().Words(), d.Words())
}
