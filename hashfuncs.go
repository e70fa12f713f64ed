package pwscreen

import (
	"github.com/gostonefire/pwscreen/hashfunc"
	"github.com/gostonefire/pwscreen/internal/hash"
)

// Names of the registered hash functions
const (
	LegacyHashName  = "legacy"
	CurrentHashName = "current"
	XXHashName      = "xxhash"
	MurmurHashName  = "murmur3"
	FNVHashName     = "fnv1a"
)

var hashFunctions = map[string]hashfunc.HashFunction{
	LegacyHashName:  hash.NewLegacyHash(),
	CurrentHashName: hash.NewCurrentHash(),
	XXHashName:      hash.XXHash{},
	MurmurHashName:  hash.MurmurHash{},
	FNVHashName:     hash.FNVHash{},
}

// NewLegacyHash - Returns the legacy digest that samples characters at a stride of max(1, length/8)
func NewLegacyHash() hashfunc.HashFunction {
	return hash.NewLegacyHash()
}

// NewCurrentHash - Returns the current digest that consumes every character
func NewCurrentHash() hashfunc.HashFunction {
	return hash.NewCurrentHash()
}

// HashFunctionByName - Returns the registered hash function with the given name
//   - name is one of the names returned by HashFunctionNames
//
// It returns:
//   - hashFunc is the hash function
//   - err is of type UnknownHashFunction if name is not registered
func HashFunctionByName(name string) (hashFunc hashfunc.HashFunction, err error) {
	hashFunc, ok := hashFunctions[name]
	if !ok {
		err = unknownHashFunction(name)
	}

	return
}

// HashFunctionNames - Returns the names of all registered hash functions, legacy and current first
func HashFunctionNames() []string {
	return []string{LegacyHashName, CurrentHashName, XXHashName, MurmurHashName, FNVHashName}
}
