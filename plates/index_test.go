package plates

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrameIndexForProgress(t *testing.T) {
	type eg struct {
		progress float64
		n        int
		exp      int
	}

	examples := []eg{
		{0, 100, 0},
		{0.5, 100, 50},
		{0.004, 100, 0},
		{0.005, 100, 1},
		{0.999, 100, 100},
		{1.0, 100, 100},
		{1.5, 10, 15},
		{-0.2, 10, -2},
		{0.5, 0, 0},
		{math.NaN(), 10, -1},
		{math.Inf(1), 10, -1},
	}

	for _, x := range examples {
		assert.Equal(t, x.exp, FrameIndexForProgress(x.progress, x.n), "progress=%v n=%d", x.progress, x.n)
	}
}

func TestAtBounds(t *testing.T) {
	s := make(Series, 100)
	s[99][0].Y = 7

	_, ok := s.At(FrameIndexForProgress(1.0, s.Len()))
	assert.False(t, ok, "index == len must be rejected")

	_, ok = s.At(-1)
	assert.False(t, ok)

	f, ok := s.At(99)
	assert.True(t, ok)
	assert.Equal(t, 7.0, f[0].Y)
}

func TestFrameAt(t *testing.T) {
	s := make(Series, 4)
	for i := range s {
		s[i][2].Y = float64(i)
	}

	type eg struct {
		progress float64
		ok       bool
		y        float64
	}

	examples := []eg{
		{0, true, 0},
		{0.25, true, 1},
		{0.6, true, 2},
		{0.8, true, 3},
		{0.9, false, 0},
		{1, false, 0},
	}

	for _, x := range examples {
		f, ok := s.FrameAt(x.progress)
		assert.Equal(t, x.ok, ok, "progress=%v", x.progress)
		if ok {
			assert.Equal(t, x.y, f[2].Y, "progress=%v", x.progress)
		}
	}

	_, ok := Series{}.FrameAt(0)
	assert.False(t, ok)
}
