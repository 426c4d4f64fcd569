package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	values := []float64{40, 10, 30, 20}

	assert.Equal(t, 10.0, Quantile(values, 0))
	assert.Equal(t, 40.0, Quantile(values, 1))
	assert.Equal(t, 25.0, Quantile(values, 0.5))
	assert.Equal(t, 10.0, Quantile(values, -3))
	assert.Equal(t, 0.0, Quantile(nil, 0.5))

	assert.Equal(t, []float64{40, 10, 30, 20}, values, "input is left unsorted")
}

func TestRange(t *testing.T) {
	min, median, max := Range([]float64{21000, 15000, 18000})
	assert.Equal(t, 15000.0, min)
	assert.Equal(t, 18000.0, median)
	assert.Equal(t, 21000.0, max)

	min, median, max = Range(nil)
	assert.Zero(t, min)
	assert.Zero(t, median)
	assert.Zero(t, max)
}
