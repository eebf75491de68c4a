// Package scytale provides interfaces for types to be in compliance with.
package scytale

// Transposer defines a set of methods for types implementing Transposer.
type Transposer interface {
	Encode(message string, step int) (string, error)
	Decode(cipherText string, step int) (string, error)
}
