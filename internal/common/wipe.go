package common

// WipeByteArray zeroes a byte slice holding sensitive data, typically a
// password read from the terminal.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
