package lcp

import "strings"

// Character computes the LCP by scanning byte positions from index 0 and
// stopping at the first position where the strings disagree, bounded by the
// shortest string. O(len(shortest) * len(strs)).
func Character(strs []string) (string, error) {
	if len(strs) == 0 {
		return "", ErrEmptyInput
	}
	if len(strs) == 1 {
		return strs[0], nil
	}

	bound := shortestLength(strs)
	i := 0
scan:
	for ; i < bound; i++ {
		c := strs[0][i]
		for _, s := range strs[1:] {
			if s[i] != c {
				break scan
			}
		}
	}
	return strs[0][:i], nil
}

// BinarySearch computes the LCP by binary-searching the maximal feasible
// prefix length in [0, len(shortest)]. A length is feasible when the prefix
// of that length taken from the first string is a prefix of every string.
func BinarySearch(strs []string) (string, error) {
	if len(strs) == 0 {
		return "", ErrEmptyInput
	}
	if len(strs) == 1 {
		return strs[0], nil
	}

	low, high := 0, shortestLength(strs)
	for low < high {
		// Round up so low always advances when mid is feasible.
		mid := (low + high + 1) / 2
		if isCommonPrefix(strs, mid) {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return strs[0][:low], nil
}

// isCommonPrefix reports whether the first n bytes of strs[0] prefix every
// string in strs. n must not exceed the shortest string's length.
func isCommonPrefix(strs []string, n int) bool {
	if n == 0 {
		return true
	}
	prefix := strs[0][:n]
	for _, s := range strs[1:] {
		if !strings.HasPrefix(s, prefix) {
			return false
		}
	}
	return true
}

func shortestLength(strs []string) int {
	min := len(strs[0])
	for _, s := range strs[1:] {
		if len(s) < min {
			min = len(s)
		}
	}
	return min
}
