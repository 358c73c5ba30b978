package plates

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Series{
		{{X: 0, Y: 10, Z: 0, T: 1}, {Y: math.NaN()}, {Y: math.NaN()}, {}},
		{{X: 3, Y: 20, Z: 4, T: 3}, {Y: math.NaN()}, {Y: 5}, {}},
		{{X: 0, Y: 30, Z: 0, T: 5}, {Y: math.NaN()}, {Y: math.NaN()}, {}},
	}

	sum := Summarize(s)

	assert.Equal(t, 0, sum[0].Plate)
	assert.Equal(t, 3, sum[0].Valid)
	assert.Equal(t, 0, sum[0].Invalid)
	assert.InDelta(t, 20, sum[0].MeanForce, 1e-9)
	assert.InDelta(t, 30, sum[0].MaxForce, 1e-9)
	assert.InDelta(t, 10, sum[0].StdForce, 1e-9)
	assert.InDelta(t, 30, sum[0].PeakMagnitude, 1e-9)
	assert.InDelta(t, 3, sum[0].MeanTorque, 1e-9)

	assert.Equal(t, 0, sum[1].Valid)
	assert.Equal(t, 3, sum[1].Invalid)
	assert.True(t, math.IsNaN(sum[1].MeanForce))

	assert.Equal(t, 1, sum[2].Valid)
	assert.Equal(t, 2, sum[2].Invalid)
	assert.InDelta(t, 5, sum[2].MaxForce, 1e-9)

	assert.Equal(t, 3, sum[3].Valid)
	assert.InDelta(t, 0, sum[3].MeanForce, 1e-9)
}
