package hash

// CurrentHash - The current string digest consuming every character, h = h*31 + c
type CurrentHash struct{}

// NewCurrentHash - Returns a new CurrentHash instance
func NewCurrentHash() CurrentHash {
	return CurrentHash{}
}

// Hash - Returns the digest for key, arithmetic wraps on overflow
func (C CurrentHash) Hash(key string) int32 {
	var h int32
	for _, c := range codeUnits(key) {
		h = h*31 + int32(c)
	}

	return h
}
