package openaddressing

import (
	"github.com/gostonefire/pwscreen/crt"
	"github.com/gostonefire/pwscreen/hashfunc"
	"github.com/gostonefire/pwscreen/internal/model"
	"github.com/gostonefire/pwscreen/internal/storage"
)

// Table - Represents an in memory implementation of the Linear Probing Collision Resolution Technique.
// It uses one flat array of slots where each slot holds at most one entry. In case of a collision it probes
// the next slot, wrapping at capacity, until it finds a free slot.
// Once all slots are occupied the table will accept no more keys.
type Table struct {
	slots    []*model.Entry
	capacity int
	records  int
}

// NewTable - Returns a pointer to a new Linear Probing table with capacity empty slots
//   - capacity is the number of slots, it has to be a positive value
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is of type crt.InvalidSize if capacity is not positive
func NewTable(capacity int) (table *Table, err error) {
	if capacity <= 0 {
		err = crt.InvalidSize{}
		return
	}

	table = &Table{
		slots:    make([]*model.Entry, capacity),
		capacity: capacity,
	}

	return
}

// Size - Returns the number of slots
func (L *Table) Size() int {
	return L.capacity
}

// Insert - Stores key in the first slot, starting from its home slot, that is either empty or already holds key.
// An existing entry for key is overwritten in place, so a key never occupies more than one slot.
//   - key is the identifier of the entry
//   - value is the payload to store with the key
//   - hashFunc is the hash function used to find the home slot
//
// It returns:
//   - err which is of type crt.TableFull if all slots are occupied by other keys, the table is then left unchanged
func (L *Table) Insert(key string, value int, hashFunc hashfunc.HashFunction) (err error) {
	home := storage.IndexOf(hashFunc.Hash(key), L.capacity)

	for i := 0; i < L.capacity; i++ {
		probe := L.probeIteration(home, i)
		entry := L.slots[probe]
		if entry == nil || entry.Key == key {
			if entry == nil {
				L.records++
			}
			L.slots[probe] = &model.Entry{Key: key, Value: value}
			return
		}
	}

	err = crt.TableFull{}

	return
}

// Search - Probes from the home slot of key until key, an empty slot or capacity probes.
// Since Insert fills the first free slot on the probe path, key can never be stored beyond an empty slot.
//   - key is the identifier to look for
//   - hashFunc is the hash function used to find the home slot, it need not be the one used when inserting
//
// It returns:
//   - found is true if key was reached
//   - comparisons is the number of probes made, the probe hitting an empty slot included
func (L *Table) Search(key string, hashFunc hashfunc.HashFunction) (found bool, comparisons int) {
	home := storage.IndexOf(hashFunc.Hash(key), L.capacity)

	for i := 0; i < L.capacity; i++ {
		comparisons++
		entry := L.slots[L.probeIteration(home, i)]
		if entry == nil {
			return
		}
		if entry.Key == key {
			found = true
			return
		}
	}

	return
}

// Stat - Walks through all slots and produce a model.TableStat.
// LongestRun is the longest cluster of consecutive occupied slots, a cluster running past the last slot
// continues at slot zero.
//   - includeDistribution set to true will include a slice of length Size with 1 for occupied slots and 0 for empty
func (L *Table) Stat(includeDistribution bool) (stat model.TableStat) {
	stat.Records = L.records
	stat.Slots = L.capacity
	stat.UsedSlots = L.records
	if includeDistribution {
		stat.Distribution = make([]int, L.capacity)
	}

	if L.records == L.capacity {
		stat.LongestRun = L.capacity
	}

	var run, leading int
	leadingDone := false
	for i, entry := range L.slots {
		if entry == nil {
			if !leadingDone {
				leading = run
				leadingDone = true
			}
			run = 0
			continue
		}
		if includeDistribution {
			stat.Distribution[i] = 1
		}
		run++
		if run > stat.LongestRun {
			stat.LongestRun = run
		}
	}

	// Join the cluster at the end with the one at the start
	if leadingDone && run+leading > stat.LongestRun {
		stat.LongestRun = run + leading
	}

	return
}

// probeIteration - Implements Linear Probing
func (L *Table) probeIteration(home, iteration int) int {
	probe := home + iteration
	if probe >= L.capacity {
		probe -= L.capacity
	}

	return probe
}
