package domain

import "fmt"

// Pairwise travel cost in meters between locations, indexed like the
// location list it was built from. Read-only once built.
type DistanceMatrix [][]int64

// Size returns the number of locations covered by the matrix.
func (m DistanceMatrix) Size() int { return len(m) }

// Validate checks the matrix is square with a zero diagonal and no negative entries.
// A matrix failing these checks admits no well-defined tour.
func (m DistanceMatrix) Validate() error {
	n := len(m)
	if n == 0 {
		return fmt.Errorf("distance matrix: empty: %w", ErrNoSolution)
	}

	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("distance matrix: row %d has length %d, want %d: %w", i, len(row), n, ErrNoSolution)
		}
		for j, d := range row {
			if d < 0 {
				return fmt.Errorf("distance matrix: [%d][%d]=%d is negative or unreachable: %w", i, j, d, ErrNoSolution)
			}
		}
		if row[i] != 0 {
			return fmt.Errorf("distance matrix: [%d][%d]=%d, diagonal must be zero: %w", i, i, row[i], ErrNoSolution)
		}
	}

	return nil
}

// IsSymmetric reports whether m[i][j] == m[j][i] for every pair.
func (m DistanceMatrix) IsSymmetric() bool {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}
	return true
}
