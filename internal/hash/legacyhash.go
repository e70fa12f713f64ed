package hash

// LegacyHash - The old string digest that samples characters at a stride of max(1, length/8).
// Keys of 16 characters or more are under-sampled which makes keys sharing the sampled characters collide.
type LegacyHash struct{}

// NewLegacyHash - Returns a new LegacyHash instance
func NewLegacyHash() LegacyHash {
	return LegacyHash{}
}

// Hash - Returns the digest for key, arithmetic wraps on overflow
func (L LegacyHash) Hash(key string) int32 {
	units := codeUnits(key)

	var h int32
	stride := len(units) / 8
	if stride < 1 {
		stride = 1
	}
	for i := 0; i < len(units); i += stride {
		h = h*37 + int32(units[i])
	}

	return h
}
