package hashfunc

// HashFunction - Interface that permits a table to be loaded and searched with any digest function.
// Implementations must be pure and deterministic, and must be defined for the empty string.
// The digest is a signed 32-bit value and implementations are expected to let arithmetic wrap on overflow,
// it is the home slot computation that brings the value into table range.
type HashFunction interface {
	// Hash - Returns the digest for key
	Hash(key string) int32
}
