package storage

// IndexOf - Returns the home slot of a digest in a table of size slots.
// The remainder is taken before the absolute value, so the most negative digest lands in range as well
// (math.MinInt32 in a table of 1000 gives 648) while every other digest gives abs(digest) mod size.
func IndexOf(digest int32, size int) int {
	index := int(digest) % size
	if index < 0 {
		index = -index
	}

	return index
}
