package model

// Entry - Represents one stored key with its payload, the 1-based position of the key in the corpus
type Entry struct {
	Key   string
	Value int
}

// TableStat - Statistics on the usage and distribution over slots of a table
//   - Records is the total number of entries stored
//   - Slots is the number of buckets (separate chaining) or slots (linear probing) in the table
//   - UsedSlots is the number of buckets holding at least one entry, or the number of occupied slots
//   - LongestRun is the longest chain (separate chaining) or the longest cluster of consecutive occupied slots (linear probing)
//   - Distribution is the number of entries in each slot, nil unless asked for
type TableStat struct {
	Records      int
	Slots        int
	UsedSlots    int
	LongestRun   int
	Distribution []int
}
