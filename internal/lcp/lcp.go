// Package lcp computes the longest common prefix of an ordered list of
// strings using three interchangeable algorithms: a character-by-character
// scan, a binary search over prefix lengths, and a trie walk.
//
// All three algorithms share one contract and produce byte-identical output
// for identical input. Strings are compared as byte sequences; no Unicode
// normalization is applied.
package lcp

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the algorithm functions.
var (
	// ErrEmptyInput is returned when no strings are supplied.
	ErrEmptyInput = errors.New("empty string list provided")

	// ErrUnknownAlgorithm is returned for an unrecognized algorithm identifier.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Algorithm identifies one of the three LCP implementations. The set is
// closed; there is no plugin registration.
type Algorithm string

const (
	// AlgorithmCharacter compares strings position by position.
	AlgorithmCharacter Algorithm = "character"
	// AlgorithmBinarySearch binary-searches the feasible prefix length.
	AlgorithmBinarySearch Algorithm = "binary_search"
	// AlgorithmTrie inserts all strings into a trie and walks the shared path.
	AlgorithmTrie Algorithm = "trie"
)

// DefaultAlgorithm is used when the caller does not select one.
const DefaultAlgorithm = AlgorithmCharacter

// Algorithms returns all valid algorithm identifiers in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmCharacter, AlgorithmBinarySearch, AlgorithmTrie}
}

// Valid reports whether a is a recognized algorithm identifier.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmCharacter, AlgorithmBinarySearch, AlgorithmTrie:
		return true
	}
	return false
}

// ParseAlgorithm converts a string identifier to an Algorithm. An empty
// string selects DefaultAlgorithm. Unrecognized identifiers return
// ErrUnknownAlgorithm with the valid set named in the message.
func ParseAlgorithm(s string) (Algorithm, error) {
	if s == "" {
		return DefaultAlgorithm, nil
	}
	a := Algorithm(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q (valid identifiers: %q, %q, %q)",
			ErrUnknownAlgorithm, s, AlgorithmCharacter, AlgorithmBinarySearch, AlgorithmTrie)
	}
	return a, nil
}

// Find dispatches to the selected algorithm. The returned prefix is the
// longest string that every element of strs starts with.
func Find(algorithm Algorithm, strs []string) (string, error) {
	switch algorithm {
	case AlgorithmCharacter:
		return Character(strs)
	case AlgorithmBinarySearch:
		return BinarySearch(strs)
	case AlgorithmTrie:
		return Trie(strs)
	default:
		return "", fmt.Errorf("%w: %q (valid identifiers: %q, %q, %q)",
			ErrUnknownAlgorithm, algorithm, AlgorithmCharacter, AlgorithmBinarySearch, AlgorithmTrie)
	}
}
