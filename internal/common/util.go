// Package common contains small shared helpers and constants used across
// the campus client.
package common

// WipeByteArray overwrites the slice contents with zeros. Used for
// passwords read from the terminal once they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
