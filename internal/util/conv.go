package util

import "strconv"

// MustParseUint converts a string to an unsigned integer, returning 0 when
// the input does not parse.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
