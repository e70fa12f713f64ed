package pwscreen

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsStrong(t *testing.T) {
	words := []string{"cat", "dog", "account", "password"}

	t.Run("rejects passwords shorter than 8", func(t *testing.T) {
		assert.False(t, IsStrong("x7#Qa!2", words), "seven characters")
		assert.False(t, IsStrong("", words), "empty")
	})

	t.Run("rejects corpus words", func(t *testing.T) {
		assert.False(t, IsStrong("password", words), "exact word")
	})

	t.Run("rejects a word followed by exactly one digit", func(t *testing.T) {
		assert.False(t, IsStrong("account8", words), "word and digit")
		assert.False(t, IsStrong("password0", words), "word and zero")
	})

	t.Run("accepts a word followed by anything else", func(t *testing.T) {
		assert.True(t, IsStrong("account88", words), "two digits")
		assert.True(t, IsStrong("accountX", words), "letter")
		assert.True(t, IsStrong("accountability", words), "longer word")
		assert.True(t, IsStrong("account٣", words), "non ASCII digit")
	})

	t.Run("accepts long passwords unrelated to the corpus", func(t *testing.T) {
		assert.True(t, IsStrong("9a$D#qW7!uX&Lv3zT", words), "random")
		assert.True(t, IsStrong("B@k45*W!c$Y7#zR9P", words), "random")
		assert.True(t, IsStrong("X$8vQ!mW#3Dz&Yr4K5", words), "random")
	})

	t.Run("counts characters rather than bytes", func(t *testing.T) {
		assert.False(t, IsStrong("ééééééé", words), "seven characters in fourteen bytes")
		assert.True(t, IsStrong("éééééééé", words), "eight characters")
	})
}
