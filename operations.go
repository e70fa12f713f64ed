package pwscreen

import (
	"context"
	"github.com/gostonefire/pwscreen/crt"
	"golang.org/x/sync/errgroup"
)

// Cost - The outcome of one search
//   - Technique is the Collision Resolution Technique of the table searched, crt.SeparateChaining or crt.LinearProbing
//   - Hash is the name of the hash function the search used
//   - Found is true if the password is a key of the table
//   - Comparisons is the number of key equality tests the search made
type Cost struct {
	Technique   int
	Hash        string
	Found       bool
	Comparisons int
}

// Result - The outcome of checking one password
//   - Password is the password checked
//   - Strong is the verdict of IsStrong against the corpus
//   - Costs holds, for each search hash in configured order, the separate chaining cost followed by the linear probing cost
type Result struct {
	Password string
	Strong   bool
	Costs    []Cost
}

// TableReport - Statistics of one table built by the Checker
type TableReport struct {
	Technique int
	LoadHash  string
	Stat      TableStat
}

// Check - Gives the strength verdict of password and searches it in both tables with every search hash.
// When the tables were loaded with another hash than the one searched with, a word of the corpus may not be found,
// the comparisons still show what the search cost.
func (C *Checker) Check(password string) (result Result) {
	result.Password = password
	result.Strong = IsStrong(password, C.words)
	result.Costs = make([]Cost, 0, 2*len(C.searchHashes))

	for _, name := range C.searchHashes {
		// Names were validated in NewChecker
		hashFunc, _ := HashFunctionByName(name)
		pair := C.pairFor(name)

		found, comparisons := pair.chained.Search(password, hashFunc)
		result.Costs = append(result.Costs, Cost{Technique: crt.SeparateChaining, Hash: name, Found: found, Comparisons: comparisons})

		found, comparisons = pair.probing.Search(password, hashFunc)
		result.Costs = append(result.Costs, Cost{Technique: crt.LinearProbing, Hash: name, Found: found, Comparisons: comparisons})
	}

	return
}

// CheckAll - Checks passwords using up to workers goroutines.
//   - ctx cancels checking of passwords not yet started
//   - passwords are the passwords to check
//   - workers is the max number of passwords checked at the same time, values below 1 mean 1
//
// It returns:
//   - results in the same order as passwords
//   - err is the context error if ctx was cancelled before all passwords were checked
func (C *Checker) CheckAll(ctx context.Context, passwords []string, workers int) (results []Result, err error) {
	if workers < 1 {
		workers = 1
	}

	results = make([]Result, len(passwords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, password := range passwords {
		i, password := i, password
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = C.Check(password)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		results = nil
	}

	return
}

// Stat - Produces statistics for every table built, grouped by load hash with separate chaining first.
//   - includeDistribution set to true will include per slot counts in each TableStat
func (C *Checker) Stat(includeDistribution bool) (reports []TableReport) {
	for _, name := range C.loadHashes {
		pair := C.pairs[name]
		reports = append(reports,
			TableReport{Technique: crt.SeparateChaining, LoadHash: name, Stat: pair.chained.Stat(includeDistribution)},
			TableReport{Technique: crt.LinearProbing, LoadHash: name, Stat: pair.probing.Stat(includeDistribution)},
		)
	}

	return
}

// pairFor - Returns the tables to search with the named hash function
func (C *Checker) pairFor(searchHash string) tablePair {
	if C.matched {
		return C.pairs[searchHash]
	}

	return C.pairs[C.loadHash]
}
