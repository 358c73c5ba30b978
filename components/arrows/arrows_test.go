package arrows

import (
	"math"
	"testing"
	"time"

	"github.com/adammck/forceplate"
	"github.com/adammck/forceplate/overlay"
	"github.com/adammck/forceplate/plates"
	"github.com/stretchr/testify/assert"
)

func series(n int) plates.Series {
	s := make(plates.Series, n)
	for i := range s {
		for p := range s[i] {
			s[i][p].Y = float64(i + 1)
		}
	}
	return s
}

func TestTick(t *testing.T) {
	type eg struct {
		progress float64
		index    int
		length   float64
	}

	examples := []eg{
		{0, 0, 1},
		{0.5, 2, 3},
		{0.7, 3, 4},
		{1.0, -1, 0},
	}

	a := New(overlay.Layout{Spacing: 1, Scale: 1, VectorScale: 1}, series(4))
	assert.NoError(t, a.Boot())

	for _, x := range examples {
		err := a.Tick(time.Now(), forceplate.State{Progress: x.progress})
		assert.NoError(t, err)
		assert.Equal(t, x.index, a.Index(), "progress=%v", x.progress)

		arrows, ok := a.Current()
		for p := range ok {
			assert.Equal(t, x.index != -1, ok[p])
			if ok[p] {
				assert.InDelta(t, x.length, arrows[p].Length, 1e-9)
			}
		}
	}
}

func TestTickHidesInvalid(t *testing.T) {
	s := series(1)
	s[0][2].Px = math.NaN()

	a := New(overlay.Layout{Scale: 1, VectorScale: 1}, s)
	a.Tick(time.Now(), forceplate.State{Progress: 0})

	_, ok := a.Current()
	assert.Equal(t, [plates.NumPlates]bool{true, true, false, true}, ok)
}

func TestReplace(t *testing.T) {
	a := New(overlay.Layout{Scale: 1, VectorScale: 1}, nil)
	a.Tick(time.Now(), forceplate.State{Progress: 0})
	assert.Equal(t, -1, a.Index())

	a.Replace(series(2))
	a.Tick(time.Now(), forceplate.State{Progress: 0.4})
	assert.Equal(t, 1, a.Index())

	a.Replace(nil)
	assert.Equal(t, -1, a.Index())
	_, ok := a.Current()
	assert.Equal(t, [plates.NumPlates]bool{}, ok)
}
