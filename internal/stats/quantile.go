package stats

import (
	"math"
	"sort"
)

// Quantile returns the q-th quantile (0-1) of values.
// Uses linear interpolation between closest ranks.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return 0
	}
	q = math.Max(0, math.Min(1, q))

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	index := q * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Range returns min, median and max of values
func Range(values []float64) (min, median, max float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}

	min, max = values[0], values[0]
	for _, v := range values[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, Quantile(values, 0.5), max
}
