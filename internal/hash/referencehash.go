package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/segmentio/fasthash/fnv1a"
	"github.com/twmb/murmur3"
)

// XXHash - Reference digest using xxHash64 over the UTF-8 bytes of the key, folded to its low 32 bits
type XXHash struct{}

// Hash - Returns the digest for key
func (X XXHash) Hash(key string) int32 {
	return int32(uint32(xxhash.Sum64String(key)))
}

// MurmurHash - Reference digest using 32-bit MurmurHash3 over the UTF-8 bytes of the key
type MurmurHash struct{}

// Hash - Returns the digest for key
func (M MurmurHash) Hash(key string) int32 {
	return int32(murmur3.StringSum32(key))
}

// FNVHash - Reference digest using 32-bit FNV-1a over the UTF-8 bytes of the key
type FNVHash struct{}

// Hash - Returns the digest for key
func (F FNVHash) Hash(key string) int32 {
	return int32(fnv1a.HashString32(key))
}
