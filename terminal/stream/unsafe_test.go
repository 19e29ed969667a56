package stream

import "unsafe"

// unsafeData returns the address of the first byte of s.
func unsafeData(s string) *byte {
	return unsafe.StringData(s)
}
