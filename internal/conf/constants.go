package conf

// DefaultChainSize - Number of buckets in the separate chaining table
const DefaultChainSize int = 1000

// DefaultProbeCapacity - Number of slots in the linear probing table, large enough for a 10000 word list
const DefaultProbeCapacity int = 20000

// DefaultWordList - Word list read when no other is configured
const DefaultWordList string = "wordlist.10000"

// DefaultLoadHash - Name of the hash function used to load the corpus
const DefaultLoadHash string = "legacy"

// DefaultSearchHashes - Names of the hash functions each password is searched with
var DefaultSearchHashes = []string{"legacy", "current"}

// DefaultWorkers - Number of passwords checked in parallel
const DefaultWorkers int = 4

// MinStrongLength - Minimum number of characters of a strong password
const MinStrongLength int = 8

// DefaultPasswords - Passwords checked when none are given
var DefaultPasswords = []string{
	"account8",
	"accountability",
	"9a$D#qW7!uX&Lv3zT",
	"B@k45*W!c$Y7#zR9P",
	"X$8vQ!mW#3Dz&Yr4K5",
}
