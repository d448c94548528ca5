// Package tsp — tour utilities.
//
// Helpers operating purely on tour structure (index sequences), without
// touching distance matrices:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CloseTour: append the start city to form an explicit cycle.
//   - CopyTour: independent copy of a tour slice.
//   - FormatTour: compact printable representation.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for every helper.
package tsp

import (
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 {
		return ErrNoCities
	}
	if len(perm) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// CloseTour returns a fresh slice with the first city appended at the end,
// i.e. [a b c] → [a b c a]. A nil or empty tour yields nil.
//
// Complexity: O(n).
func CloseTour(tour []int) []int {
	if len(tour) == 0 {
		return nil
	}
	out := make([]int, len(tour)+1)
	copy(out, tour)
	out[len(tour)] = tour[0]

	return out
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// FormatTour renders a tour as space-separated indices, e.g. "0 1 3 2".
//
// Complexity: O(n).
func FormatTour(tour []int) string {
	var (
		sb strings.Builder
		i  int
	)
	for i = range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(tour[i]))
	}

	return sb.String()
}
