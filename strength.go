package pwscreen

import (
	"github.com/gostonefire/pwscreen/internal/conf"
	"strings"
	"unicode/utf16"
)

// IsStrong - Returns true if password has at least 8 characters, is not a word of the corpus and is not
// a word of the corpus followed by exactly one decimal digit.
// Characters are counted as UTF-16 code units, the same units the hash functions digest.
func IsStrong(password string, words []string) bool {
	if len(utf16.Encode([]rune(password))) < conf.MinStrongLength {
		return false
	}

	for _, word := range words {
		if password == word {
			return false
		}
		if strings.HasPrefix(password, word) && isSingleDigit(password[len(word):]) {
			return false
		}
	}

	return true
}

// isSingleDigit - Returns true if s is one of 0 to 9
func isSingleDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}
