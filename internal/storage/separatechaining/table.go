package separatechaining

import (
	"github.com/gostonefire/pwscreen/crt"
	"github.com/gostonefire/pwscreen/hashfunc"
	"github.com/gostonefire/pwscreen/internal/model"
	"github.com/gostonefire/pwscreen/internal/storage"
)

// Table - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// It has a fixed number of buckets where each bucket holds a chain of entries in insertion order.
// Chains grow without bound, the table itself is never resized regardless of load factor.
type Table struct {
	buckets [][]model.Entry
	size    int
	records int
}

// NewTable - Returns a pointer to a new Separate Chaining table with size empty buckets
//   - size is the number of buckets, it has to be a positive value
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is of type crt.InvalidSize if size is not positive
func NewTable(size int) (table *Table, err error) {
	if size <= 0 {
		err = crt.InvalidSize{}
		return
	}

	table = &Table{
		buckets: make([][]model.Entry, size),
		size:    size,
	}

	return
}

// Size - Returns the number of buckets
func (S *Table) Size() int {
	return S.size
}

// Insert - Appends key to the chain of its home bucket unless the key is already in that chain,
// in which case the first inserted entry is kept untouched.
//   - key is the identifier of the entry
//   - value is the payload to store with the key
//   - hashFunc is the hash function used to find the home bucket
//
// It returns:
//   - err which is always nil, chains never run out of space
func (S *Table) Insert(key string, value int, hashFunc hashfunc.HashFunction) (err error) {
	bucketNo := storage.IndexOf(hashFunc.Hash(key), S.size)

	for _, entry := range S.buckets[bucketNo] {
		if entry.Key == key {
			return
		}
	}

	S.buckets[bucketNo] = append(S.buckets[bucketNo], model.Entry{Key: key, Value: value})
	S.records++

	return
}

// Search - Walks the chain of the home bucket of key looking for it.
//   - key is the identifier to look for
//   - hashFunc is the hash function used to find the home bucket, it need not be the one used when inserting
//
// It returns:
//   - found is true if key is in the chain
//   - comparisons is the number of key equality tests made, an empty chain costs nothing
func (S *Table) Search(key string, hashFunc hashfunc.HashFunction) (found bool, comparisons int) {
	bucketNo := storage.IndexOf(hashFunc.Hash(key), S.size)

	for _, entry := range S.buckets[bucketNo] {
		comparisons++
		if entry.Key == key {
			found = true
			return
		}
	}

	return
}

// Stat - Walks through all buckets and produce a model.TableStat.
//   - includeDistribution set to true will include a slice of length Size with the chain length of each bucket
func (S *Table) Stat(includeDistribution bool) (stat model.TableStat) {
	stat.Records = S.records
	stat.Slots = S.size
	if includeDistribution {
		stat.Distribution = make([]int, S.size)
	}

	for i, chain := range S.buckets {
		n := len(chain)
		if n > 0 {
			stat.UsedSlots++
		}
		if n > stat.LongestRun {
			stat.LongestRun = n
		}
		if includeDistribution {
			stat.Distribution[i] = n
		}
	}

	return
}
