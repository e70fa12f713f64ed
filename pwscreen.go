package pwscreen

import (
	"errors"
	"fmt"
	"github.com/gostonefire/pwscreen/crt"
	"github.com/gostonefire/pwscreen/hashfunc"
	"github.com/gostonefire/pwscreen/internal/conf"
	"github.com/gostonefire/pwscreen/internal/model"
	"github.com/gostonefire/pwscreen/internal/storage/openaddressing"
	"github.com/gostonefire/pwscreen/internal/storage/separatechaining"
)

// TableStat - Statistics on the usage and distribution over slots of a table
type TableStat = model.TableStat

// Table - Interface for any collision resolution technique implementation
type Table interface {
	Size() int
	Insert(key string, value int, hashFunc hashfunc.HashFunction) (err error)
	Search(key string, hashFunc hashfunc.HashFunction) (found bool, comparisons int)
	Stat(includeDistribution bool) (stat model.TableStat)
}

// Conf - Is a struct used in the call to NewChecker holding the table configuration.
// Zero values are replaced by defaults.
//   - ChainSize is the number of buckets in the separate chaining table, defaults to 1000
//   - ProbeCapacity is the number of slots in the linear probing table, defaults to 20000
//   - LoadHash is the name of the hash function the corpus is loaded with, defaults to legacy
//   - SearchHashes are the names of the hash functions each password is searched with, defaults to legacy and current
//   - MatchedTables set to true builds one pair of tables per search hash, each loaded with that same hash, instead of one pair loaded with LoadHash
type Conf struct {
	ChainSize     int
	ProbeCapacity int
	LoadHash      string
	SearchHashes  []string
	MatchedTables bool
}

// Info - Information structure containing some information about the tables created
//   - Words is the number of words in the corpus
//   - ChainSize is the number of buckets in each separate chaining table
//   - ProbeCapacity is the number of slots in each linear probing table
//   - LoadHashes are the names of the hash functions tables were loaded with, one pair of tables each
//   - DroppedWords is the number of words a linear probing table had no room for
type Info struct {
	Words         int
	ChainSize     int
	ProbeCapacity int
	LoadHashes    []string
	DroppedWords  int
}

// tablePair - The two tables loaded with the same hash function
type tablePair struct {
	chained Table
	probing Table
}

// Checker - The main implementation struct.
// It is built once from a corpus and only read afterwards, so it is safe for concurrent use.
type Checker struct {
	words        []string
	pairs        map[string]tablePair
	loadHashes   []string
	loadHash     string
	searchHashes []string
	matched      bool
}

// NewChecker - Returns a new Checker with the corpus loaded into a separate chaining and a linear probing table.
// Word number i (0-based) is stored with value i+1.
//   - words is the corpus, duplicates are allowed but only stored once
//   - checkerConf is the table configuration
//
// It returns:
//   - checker is a pointer to a Checker struct
//   - info is an Info struct containing some data regarding the tables created
//   - err is of type crt.InvalidSize or UnknownHashFunction if checkerConf is not valid
func NewChecker(words []string, checkerConf Conf) (checker *Checker, info Info, err error) {
	checkerConf = withDefaults(checkerConf)

	// Check all hash functions before building anything
	for _, name := range append([]string{checkerConf.LoadHash}, checkerConf.SearchHashes...) {
		if _, err = HashFunctionByName(name); err != nil {
			return
		}
	}

	// The caller may change words afterwards, tables and verdicts must keep agreeing
	words = append([]string(nil), words...)

	loadHashes := []string{checkerConf.LoadHash}
	if checkerConf.MatchedTables {
		loadHashes = uniqueNames(checkerConf.SearchHashes)
	}

	checker = &Checker{
		words:        words,
		pairs:        make(map[string]tablePair, len(loadHashes)),
		loadHashes:   loadHashes,
		loadHash:     checkerConf.LoadHash,
		searchHashes: checkerConf.SearchHashes,
		matched:      checkerConf.MatchedTables,
	}

	var dropped int
	for _, name := range loadHashes {
		var pair tablePair
		pair, dropped, err = loadPair(words, name, checkerConf.ChainSize, checkerConf.ProbeCapacity)
		if err != nil {
			checker = nil
			return
		}
		checker.pairs[name] = pair
		info.DroppedWords += dropped
	}

	info.Words = len(words)
	info.ChainSize = checkerConf.ChainSize
	info.ProbeCapacity = checkerConf.ProbeCapacity
	info.LoadHashes = loadHashes

	return
}

// withDefaults - Returns conf with zero values replaced by defaults
func withDefaults(c Conf) Conf {
	if c.ChainSize == 0 {
		c.ChainSize = conf.DefaultChainSize
	}
	if c.ProbeCapacity == 0 {
		c.ProbeCapacity = conf.DefaultProbeCapacity
	}
	if c.LoadHash == "" {
		c.LoadHash = conf.DefaultLoadHash
	}
	if len(c.SearchHashes) == 0 {
		c.SearchHashes = conf.DefaultSearchHashes
	}

	return c
}

// uniqueNames - Returns names without repetitions, first occurrence order kept
func uniqueNames(names []string) (unique []string) {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if !seen[name] {
			seen[name] = true
			unique = append(unique, name)
		}
	}

	return
}

// loadPair - Creates both tables and inserts the corpus using the named hash function.
// A word that does not fit in the linear probing table is counted as dropped, it is still in the chained table.
func loadPair(words []string, hashName string, chainSize, probeCapacity int) (pair tablePair, dropped int, err error) {
	hashFunc, err := HashFunctionByName(hashName)
	if err != nil {
		return
	}

	pair.chained, err = separatechaining.NewTable(chainSize)
	if err != nil {
		err = fmt.Errorf("error while creating separate chaining table: %w", err)
		return
	}
	pair.probing, err = openaddressing.NewTable(probeCapacity)
	if err != nil {
		err = fmt.Errorf("error while creating linear probing table: %w", err)
		return
	}

	for i, word := range words {
		if err = pair.chained.Insert(word, i+1, hashFunc); err != nil {
			return
		}
		err = pair.probing.Insert(word, i+1, hashFunc)
		if errors.Is(err, crt.TableFull{}) {
			dropped++
			err = nil
		} else if err != nil {
			return
		}
	}

	return
}
