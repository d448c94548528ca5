// Package matrix provides the distance storage consumed by the tsp package.
//
// The package offers:
//
//   - Matrix, a minimal two-dimensional float64 surface (Rows/Cols/At/Set/Clone).
//   - Dense, a row-major implementation with bounds-checked accessors.
//   - NewDenseFromRows, a constructor for literal [][]float64 tables such as
//     those decoded from instance files.
//
// Accessors never panic on user input; they return sentinels from errors.go,
// wrapped with the failing method and coordinates.
//
// Complexity: At/Set O(1), Clone and NewDenseFromRows O(r*c).
package matrix
