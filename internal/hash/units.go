package hash

import "unicode/utf16"

// codeUnits - Returns the key as UTF-16 code units, which is what the legacy and current digests iterate over.
// Pure ASCII keys skip the rune conversion.
func codeUnits(key string) []uint16 {
	for i := 0; i < len(key); i++ {
		if key[i] >= 0x80 {
			return utf16.Encode([]rune(key))
		}
	}

	units := make([]uint16, len(key))
	for i := 0; i < len(key); i++ {
		units[i] = uint16(key[i])
	}

	return units
}
