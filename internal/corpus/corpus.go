package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Load - Reads a word list with one word per line. Each line is trimmed of surrounding whitespace and
// blank lines are skipped, the order of the remaining lines is kept.
//   - r is the source of the word list
//
// It returns:
//   - words is the ordered list of words
//   - err is a standard error, if the source could not be read
func Load(r io.Reader) (words []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}

	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("error while reading word list: %w", err)
	}

	return
}

// LoadFile - Reads a word list from the file at path, see Load
func LoadFile(path string) (words []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("unable to open word list: %w", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	words, err = Load(f)

	return
}
