//go:build stress

package test

import (
	"context"
	"fmt"
	"github.com/gostonefire/pwscreen"
	"github.com/gostonefire/pwscreen/crt"
	"github.com/gostonefire/pwscreen/internal/corpus"
	"github.com/stretchr/testify/assert"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

func createAndStoreTestdata(amount int, fileName string) error {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	seen := make(map[string]bool, amount)
	for len(seen) < amount {
		word := make([]byte, 3+rand.Intn(18))
		for i := range word {
			word[i] = letters[rand.Intn(len(letters))]
		}
		if seen[string(word)] {
			continue
		}
		seen[string(word)] = true

		// Surrounding whitespace is trimmed when loading
		_, err = fmt.Fprintf(f, " %s\t\n", word)
		if err != nil {
			return err
		}
	}

	return nil
}

func TestStress(t *testing.T) {
	t.Run("loads a large word list and finds its words", func(t *testing.T) {
		// Prepare
		fileName := filepath.Join(t.TempDir(), "stress-words")
		err := createAndStoreTestdata(50000, fileName)
		assert.NoError(t, err, "creates test data")

		words, err := corpus.LoadFile(fileName)
		assert.NoError(t, err, "loads test data")
		assert.Len(t, words, 50000, "all words loaded")

		// The strength verdict scans the whole corpus, so every 10th word is checked
		sample := make([]string, 0, len(words)/10)
		for i := 0; i < len(words); i += 10 {
			sample = append(sample, words[i])
		}

		for _, loadHash := range pwscreen.HashFunctionNames() {
			checker, info, err := pwscreen.NewChecker(words, pwscreen.Conf{
				ChainSize:     5000,
				ProbeCapacity: 100000,
				LoadHash:      loadHash,
				SearchHashes:  []string{loadHash},
			})
			assert.NoErrorf(t, err, "creates checker with %s", loadHash)
			assert.Equalf(t, 0, info.DroppedWords, "nothing dropped with %s", loadHash)

			// Execute
			results, err := checker.CheckAll(context.Background(), sample, 8)
			assert.NoErrorf(t, err, "checks all words with %s", loadHash)

			// Check
			for _, result := range results {
				for _, cost := range result.Costs {
					assert.Truef(t, cost.Found, "%s found in %s with %s", result.Password, crt.Name(cost.Technique), loadHash)
					assert.LessOrEqualf(t, cost.Comparisons, len(words), "bounded cost for %s", result.Password)
				}
				assert.Falsef(t, result.Strong, "%s is a corpus word", result.Password)
			}

			for _, r := range checker.Stat(false) {
				assert.Equalf(t, len(words), r.Stat.Records, "all records in %s with %s", crt.Name(r.Technique), loadHash)
			}
		}
	})

	t.Run("keeps miss costs identical across runs", func(t *testing.T) {
		// Prepare
		words := make([]string, 15000)
		for i := range words {
			words[i] = strings.Repeat("x", i%40) + fmt.Sprint(i)
		}
		checker, _, err := pwscreen.NewChecker(words, pwscreen.Conf{})
		assert.NoError(t, err, "creates checker")

		misses := []string{"zzzzzzzz", "9a$D#qW7!uX&Lv3zT", strings.Repeat("x", 39) + "-"}

		for _, miss := range misses {
			// Execute
			first := checker.Check(miss)
			second := checker.Check(miss)

			// Check
			assert.Equalf(t, first, second, "reproducible for %s", miss)
		}
	})
}
