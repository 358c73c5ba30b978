package math3d

import (
	"fmt"

	"github.com/adammck/forceplate/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a position and a heading (in degrees, around the Y axis). Force
// plates sit flat on the floor, so a heading is all the rotation they need.
type Pose struct {
	Position Vector3
	Heading  float64
}

func (p Pose) String() string {
	return fmt.Sprintf("Pose{x=%+07.2f y=%+07.2f z=%+07.2f, r=%+07.2f}", p.Position.X, p.Position.Y, p.Position.Z, p.Heading)
}

// Add returns the pose pp, which is relative to this pose, in the parent space
// of this pose.
func (p Pose) Add(pp Pose) Pose {
	return Pose{
		Position: pp.Position.MultiplyByMatrix44(p.ToWorld()),
		Heading:  p.Heading + pp.Heading,
	}
}

// ToWorld returns a matrix to transform a vector in the pose's space into the
// parent space.
func (p Pose) ToWorld() mgl64.Mat4 {
	t := mgl64.Translate3D(p.Position.X, p.Position.Y, p.Position.Z)
	return t.Mul4(mgl64.HomogRotate3DY(utils.Rad(p.Heading)))
}

// ToLocal returns a matrix to transform a vector in the parent space into the
// pose's space.
func (p Pose) ToLocal() mgl64.Mat4 {
	return p.ToWorld().Inv()
}
