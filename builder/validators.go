// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// validators.go: parameter checks shared by constructors.

package builder

import "fmt"

// validateMin returns ErrInvalidConstructionParameters if got < min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrInvalidConstructionParameters)
	}
	return nil
}

// maxSimpleEdges returns n*(n-1)/2, the edge capacity of a simple undirected graph.
func maxSimpleEdges(n int) int64 {
	if n < 2 {
		return 0
	}
	return int64(n) * int64(n-1) / 2
}

// validateEdgeBudget rejects m outside [0, n*(n-1)/2].
func validateEdgeBudget(method string, n, m int) error {
	if err := validateMin(method, "m", m, 0); err != nil {
		return err
	}
	if limit := maxSimpleEdges(n); int64(m) > limit {
		return fmt.Errorf("%s: m=%d > max=%d for n=%d: %w", method, m, limit, n, ErrInvalidConstructionParameters)
	}
	return nil
}
