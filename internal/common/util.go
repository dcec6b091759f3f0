// Package common holds small helpers shared by the client packages.
package common

// WipeByteArray overwrites b with zeros. It is used to drop secrets such as
// the admin password as soon as they have been handed on.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
