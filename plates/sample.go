package plates

import (
	"fmt"
	"math"

	"github.com/adammck/forceplate/math3d"
)

// NumPlates is the number of force plates in every frame.
const NumPlates = 4

// Sample is one force plate's reading at one instant. Fields which could not
// be parsed are NaN.
type Sample struct {

	// Ground reaction force components.
	X float64
	Y float64
	Z float64

	// Free moment about the vertical axis.
	T float64

	// Center of pressure on the plate surface.
	Px float64
	Py float64
}

// Frame holds a sample for each plate, in plate order.
type Frame [NumPlates]Sample

// Series is a frame per data row of a force plate export, in time order. It is
// built once by Parse and never modified; load a new file to replace it.
type Series []Frame

// Force returns the ground reaction force as a vector.
func (s Sample) Force() math3d.Vector3 {
	return math3d.Vector3{X: s.X, Y: s.Y, Z: s.Z}
}

// CenterOfPressure returns the (px, py) location of the pressure centroid.
func (s Sample) CenterOfPressure() (float64, float64) {
	return s.Px, s.Py
}

// Valid returns true if every field parsed to a number. Callers should treat
// invalid samples as "no reading".
func (s Sample) Valid() bool {
	for _, f := range [...]float64{s.X, s.Y, s.Z, s.T, s.Px, s.Py} {
		if math.IsNaN(f) {
			return false
		}
	}

	return true
}

func (s Sample) String() string {
	return fmt.Sprintf("&Sample{f=(%.2f, %.2f, %.2f) t=%.2f cop=(%.3f, %.3f)}", s.X, s.Y, s.Z, s.T, s.Px, s.Py)
}

// Len returns the number of frames in the series.
func (s Series) Len() int {
	return len(s)
}

// At returns the frame at index i. The second return value is false if the
// index is out of range, which includes i == Len().
func (s Series) At(i int) (Frame, bool) {
	if i < 0 || i >= len(s) {
		return Frame{}, false
	}

	return s[i], true
}

// FrameAt returns the frame for the given playback progress (see
// FrameIndexForProgress), or false if there is none.
func (s Series) FrameAt(progress float64) (Frame, bool) {
	return s.At(FrameIndexForProgress(progress, len(s)))
}
