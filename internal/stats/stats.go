// Package stats provides the aggregate functions used by board analytics.
package stats

import (
	"math"
	"sort"
)

// Percentile computes the p-th percentile (0 <= p <= 1) of values using
// linear interpolation over a sorted copy of the input. Returns 0 for an
// empty input.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := float64(len(sorted)-1) * p
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	weight := idx - float64(lo)
	return sorted[lo]*(1-weight) + sorted[hi]*weight
}

// Median computes the median of values. Returns 0 for an empty input.
func Median(values []float64) float64 {
	return Percentile(values, 0.5)
}
