package corpus

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("trims lines and keeps their order", func(t *testing.T) {
		// Prepare
		r := strings.NewReader("  cat\ndog  \r\n\taccount\n")

		// Execute
		words, err := Load(r)

		// Check
		assert.NoError(t, err, "loads words")
		assert.Equal(t, []string{"cat", "dog", "account"}, words, "trimmed words in order")
	})

	t.Run("skips blank lines", func(t *testing.T) {
		// Execute
		words, err := Load(strings.NewReader("cat\n\n   \ndog"))

		// Check
		assert.NoError(t, err, "loads words")
		assert.Equal(t, []string{"cat", "dog"}, words, "blank lines dropped")
	})

	t.Run("returns no words for an empty source", func(t *testing.T) {
		words, err := Load(strings.NewReader(""))
		assert.NoError(t, err, "empty source is fine")
		assert.Empty(t, words, "no words")
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads a word list file", func(t *testing.T) {
		// Prepare
		path := filepath.Join(t.TempDir(), "wordlist")
		err := os.WriteFile(path, []byte("cat\ndog\n"), 0644)
		assert.NoError(t, err, "writes word list")

		// Execute
		words, err := LoadFile(path)

		// Check
		assert.NoError(t, err, "loads file")
		assert.Equal(t, []string{"cat", "dog"}, words, "words from file")
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		// Execute
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing"))

		// Check
		assert.ErrorIs(t, err, os.ErrNotExist, "missing file reported")
	})
}
