package motion

import (
	"fmt"
	"math"
	"strings"

	"github.com/adammck/forceplate/math3d"
)

// KeyframeTrack is one animated property of one joint, as exported from an
// animation clip. Values are flat: three per keyframe for positions and
// scales, four (x, y, z, w) for quaternion rotations.
type KeyframeTrack struct {
	Name   string    `json:"name"`
	Type   string    `json:"type,omitempty"`
	Times  []float64 `json:"times"`
	Values []float64 `json:"values"`
}

// Keyframe is one grouped record of a track. W is only meaningful if HasW.
type Keyframe struct {
	Index int
	X     float64
	Y     float64
	Z     float64
	W     float64
	HasW  bool
}

func (k Keyframe) String() string {
	if k.HasW {
		return fmt.Sprintf("#%d{x=%+.4f y=%+.4f z=%+.4f w=%+.4f}", k.Index, k.X, k.Y, k.Z, k.W)
	}

	return fmt.Sprintf("#%d{x=%+.4f y=%+.4f z=%+.4f}", k.Index, k.X, k.Y, k.Z)
}

// Quaternion returns the keyframe as a rotation.
func (k Keyframe) Quaternion() math3d.Quaternion {
	return math3d.Quaternion{X: k.X, Y: k.Y, Z: k.Z, W: k.W}
}

// IsQuaternion returns true if the track holds rotations. Exporters name these
// tracks like "mixamorigHips.quaternion".
func (t KeyframeTrack) IsQuaternion() bool {
	return strings.Contains(t.Name, "quaternion")
}

// Stride returns the number of values per keyframe.
func (t KeyframeTrack) Stride() int {
	if t.IsQuaternion() {
		return 4
	}

	return 3
}

// Group splits the flat values into keyframes. If the value count isn't a
// multiple of the stride, the missing values of the last keyframe are NaN.
func (t KeyframeTrack) Group() []Keyframe {
	stride := t.Stride()
	out := make([]Keyframe, 0, (len(t.Values)+stride-1)/stride)

	for i := 0; i < len(t.Values); i += stride {
		k := Keyframe{
			Index: i / stride,
			X:     valueAt(t.Values, i),
			Y:     valueAt(t.Values, i+1),
			Z:     valueAt(t.Values, i+2),
		}

		if stride == 4 {
			k.W = valueAt(t.Values, i+3)
			k.HasW = true
		}

		out = append(out, k)
	}

	return out
}

// Orientations returns the rotations of a quaternion track, or an error if the
// track holds something else.
func (t KeyframeTrack) Orientations() ([]math3d.Quaternion, error) {
	if !t.IsQuaternion() {
		return nil, fmt.Errorf("track %q is not a quaternion track", t.Name)
	}

	keys := t.Group()
	out := make([]math3d.Quaternion, len(keys))
	for i, k := range keys {
		out[i] = k.Quaternion()
	}

	return out, nil
}

func valueAt(values []float64, i int) float64 {
	if i >= len(values) {
		return math.NaN()
	}

	return values[i]
}
