package hash

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLegacyHash_Hash(t *testing.T) {
	t.Run("digests short keys over every character", func(t *testing.T) {
		// Prepare
		h := NewLegacyHash()

		// Execute
		cat := h.Hash("cat")
		hello := h.Hash("hello")

		// Check
		assert.Equal(t, int32(139236), cat, "digest of cat")
		assert.Equal(t, int32(200180656), hello, "digest of hello")
	})

	t.Run("digests the empty key to zero", func(t *testing.T) {
		assert.Equal(t, int32(0), NewLegacyHash().Hash(""), "empty key")
	})

	t.Run("wraps on overflow", func(t *testing.T) {
		// Prepare
		h := NewLegacyHash()

		// Execute
		digest := h.Hash("polygenelubricants")

		// Check
		assert.Equal(t, int32(-2047573871), digest, "wrapped digest")
	})

	t.Run("visits every character of keys shorter than 16", func(t *testing.T) {
		// Prepare
		h := NewLegacyHash()
		keys := [][2]string{
			{"abcdefg", "aXcdefg"},
			{"abcdefgh", "aXcdefgh"},
			{"abcdefghijklmno", "aXcdefghijklmno"},
		}

		for _, k := range keys {
			// Execute
			a := h.Hash(k[0])
			b := h.Hash(k[1])

			// Check
			assert.NotEqualf(t, a, b, "second character is sampled for %s", k[0])
		}
	})

	t.Run("skips characters of keys of 16 or more", func(t *testing.T) {
		// Prepare
		h := NewLegacyHash()

		// Execute
		a := h.Hash("abcdefghijklmnop")
		b := h.Hash("aXcdefghijklmnop")
		c := h.Hash("abXdefghijklmnop")

		// Check
		assert.Equal(t, int32(-801643856), a, "digest of long key")
		assert.Equal(t, a, b, "odd positions are not sampled with stride 2")
		assert.NotEqual(t, a, c, "even positions are sampled with stride 2")
	})

	t.Run("is deterministic", func(t *testing.T) {
		h := NewLegacyHash()
		assert.Equal(t, h.Hash("accountability"), h.Hash("accountability"), "same digest twice")
	})
}
