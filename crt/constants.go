package crt

// SeparateChaining - Collision Resolution Technique where each bucket holds a chain of entries
const SeparateChaining int = 0

// LinearProbing - Collision Resolution Technique where a collision moves on to the next slot, wrapping at capacity
const LinearProbing int = 1

// Name - Returns a human readable name of a Collision Resolution Technique
func Name(technique int) string {
	switch technique {
	case SeparateChaining:
		return "separate chaining"
	case LinearProbing:
		return "linear probing"
	default:
		return "unknown"
	}
}
