package math3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Vector3 struct {
	X float64
	Y float64
	Z float64
}

var (
	ZeroVector3 = Vector3{}
)

func (v Vector3) String() string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X, v.Y, v.Z)
}

// Zero returns true if the vector is at 0,0,0.
func (v Vector3) Zero() bool {
	return (v.X == 0) && (v.Y == 0) && (v.Z == 0)
}

// NaN returns true if any component is NaN.
func (v Vector3) NaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

func (v Vector3) Subtract(vv Vector3) Vector3 {
	return Vector3{
		(v.X - vv.X),
		(v.Y - vv.Y),
		(v.Z - vv.Z),
	}
}

func (v Vector3) MultiplyByScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Magnitude returns the length of the vector.
func (v Vector3) Magnitude() float64 {
	return v.vec().Len()
}

// Distance calculates and returns the distance between this vector and another,
// as a float64.
func (v Vector3) Distance(vv Vector3) float64 {
	return v.Subtract(vv).Magnitude()
}

// Unit returns the vector scaled to a length of one. The zero vector has no
// direction, so is returned unchanged.
func (v Vector3) Unit() Vector3 {
	if v.Zero() {
		return ZeroVector3
	}

	return fromVec(v.vec().Normalize())
}

// MultiplyByMatrix44 returns a new Vector3, by transforming this vector (as a
// point, w=1) by a 4x4 matrix.
func (v Vector3) MultiplyByMatrix44(m mgl64.Mat4) Vector3 {
	return fromVec(mgl64.TransformCoordinate(v.vec(), m))
}

func (v Vector3) vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromVec(vv mgl64.Vec3) Vector3 {
	return Vector3{vv.X(), vv.Y(), vv.Z()}
}
