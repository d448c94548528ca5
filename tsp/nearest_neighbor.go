package tsp

// BuildNearestNeighbor constructs a tour greedily: it starts at start and
// repeatedly moves to the closest city not yet visited.
//
// Algorithm:
//  1. tour = [start]; mark start visited.
//  2. While cities remain, scan every unvisited candidate c in ascending index
//     order and keep the one minimizing dist[current][c]. A candidate replaces
//     the incumbent only when strictly closer, so among equal distances the
//     smallest index wins.
//  3. Append the winner, mark it visited and make it current.
//
// Contracts:
//   - n > 0 (else ErrNoCities), 0 ≤ start < n (else ErrStartOutOfRange).
//   - Only dist[current][c] is read; symmetry and the triangle inequality are
//     not required. An unreadable, NaN or negative entry that is read yields
//     ErrMalformedMatrix.
//   - dist is never written.
//
// Returns a fresh slice of length n that is a permutation of [0..n-1] with
// tour[0]==start. On error the returned slice is nil.
//
// Complexity: O(n²) time (n-1 scans), O(n) extra space.
func BuildNearestNeighbor(n int, dist Distances, start int) ([]int, error) {
	if err := validateInstance(n, start); err != nil {
		return nil, err
	}
	if dist == nil {
		return nil, ErrMalformedMatrix
	}

	tour := make([]int, 1, n)
	tour[0] = start
	visited := make([]bool, n)
	visited[start] = true

	var (
		current   = start
		remaining = n - 1
		c         int     // candidate city
		best      int     // best candidate so far
		bestDist  float64 // dist[current][best]
		d         float64
		found     bool
		err       error
	)
	for remaining > 0 {
		found = false
		for c = 0; c < n; c++ {
			if visited[c] {
				continue
			}
			d, err = distanceAt(dist, current, c)
			if err != nil {
				return nil, err
			}
			// Strict '<' keeps the lowest index among ties.
			if !found || d < bestDist {
				best, bestDist, found = c, d, true
			}
		}

		tour = append(tour, best)
		visited[best] = true
		current = best
		remaining--
	}

	return tour, nil
}
