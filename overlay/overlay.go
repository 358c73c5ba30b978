package overlay

import (
	"fmt"

	"github.com/adammck/forceplate/math3d"
	"github.com/adammck/forceplate/plates"
)

// The grid drawn on each plate is slightly smaller than the plate, so adjacent
// plates don't share an edge.
const gridRatio = 0.98

// Layout is the placement of the plates in the scene. Plates sit in a row
// along the X axis, Spacing apart, starting at Start. Scale is the length of a
// plate's side, which is also the factor from center of pressure units to
// scene units. VectorScale converts newtons into arrow length.
type Layout struct {
	Start       float64 `yaml:"start"`
	Spacing     float64 `yaml:"spacing"`
	Scale       float64 `yaml:"scale"`
	VectorScale float64 `yaml:"vector_scale"`
}

// Arrow is a force vector drawn above a plate.
type Arrow struct {
	Plate     int
	Origin    math3d.Vector3
	Direction math3d.Vector3
	Length    float64
}

func (a Arrow) String() string {
	return fmt.Sprintf("&Arrow{plate=%d origin=%s dir=%s len=%.3f}", a.Plate, a.Origin, a.Direction, a.Length)
}

// Plate returns the pose of the center of plate i.
func (l Layout) Plate(i int) math3d.Pose {
	return math3d.Pose{
		Position: math3d.Vector3{X: l.Start + l.Spacing*float64(i)},
	}
}

// GridSize returns the side length of the grid drawn on each plate.
func (l Layout) GridSize() float64 {
	return l.Scale * gridRatio
}

// ArrowFor returns the arrow for a sample on plate i. The arrow points along
// the force, with the Z axis flipped into scene space, is as long as the
// vertical force (scaled), and starts at the center of pressure. Invalid
// samples have no arrow.
func (l Layout) ArrowFor(i int, s plates.Sample) (Arrow, bool) {
	if !s.Valid() {
		return Arrow{}, false
	}

	// Center of pressure, in the plate's space. The export's axes are rotated
	// relative to the scene: px runs along Z and py against X.
	px, py := s.CenterOfPressure()
	cop := math3d.Vector3{X: -py * l.Scale, Z: px * l.Scale}

	return Arrow{
		Plate:     i,
		Origin:    cop.MultiplyByMatrix44(l.Plate(i).ToWorld()),
		Direction: math3d.Vector3{X: s.X, Y: s.Y, Z: -s.Z}.Unit(),
		Length:    s.Y * l.VectorScale,
	}, true
}

// Arrows returns the arrow for each plate of a frame. ok[i] is false where
// the sample was invalid.
func (l Layout) Arrows(f plates.Frame) (arrows [plates.NumPlates]Arrow, ok [plates.NumPlates]bool) {
	for i, s := range f {
		arrows[i], ok[i] = l.ArrowFor(i, s)
	}

	return arrows, ok
}
