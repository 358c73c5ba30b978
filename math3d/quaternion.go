package math3d

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion is a rotation, stored in the same component order as keyframe
// tracks are exported in: x, y, z, w.
type Quaternion struct {
	X float64
	Y float64
	Z float64
	W float64
}

var (
	IdentityQuaternion = Quaternion{0, 0, 0, 1}
)

// QuaternionFromAxisAngle returns the unit quaternion which rotates by the
// given angle (in radians) around the given axis.
func QuaternionFromAxisAngle(axis Vector3, rad float64) Quaternion {
	return fromQuat(mgl64.QuatRotate(rad, axis.Unit().vec()))
}

// Quat returns the mathgl representation of the quaternion.
func (q Quaternion) Quat() mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func (q Quaternion) String() string {
	return fmt.Sprintf("&Quat{x=%+.4f y=%+.4f z=%+.4f w=%+.4f}", q.X, q.Y, q.Z, q.W)
}

// Inverse returns the inverse rotation. For unit quaternions this is just the
// conjugate, but non-unit input is handled too.
func (q Quaternion) Inverse() Quaternion {
	return fromQuat(q.Quat().Inverse())
}

// Multiply returns q*qq, i.e. the rotation qq followed by q.
func (q Quaternion) Multiply(qq Quaternion) Quaternion {
	return fromQuat(q.Quat().Mul(qq.Quat()))
}

// Normalize returns the quaternion scaled to unit length. The zero quaternion
// becomes the identity.
func (q Quaternion) Normalize() Quaternion {
	return fromQuat(q.Quat().Normalize())
}

func (q Quaternion) Len() float64 {
	return q.Quat().Len()
}

// Angle returns the rotation angle (in radians, 0..2π) represented by a unit
// quaternion. W is clamped to [-1, 1] first, so round-off can't push acos out
// of its domain.
func (q Quaternion) Angle() float64 {
	return AngleFromW(q.W)
}

// AngleFromW returns 2*acos(w), with w clamped to [-1, 1].
func AngleFromW(w float64) float64 {
	return 2 * math.Acos(mgl64.Clamp(w, -1, 1))
}

// NaN returns true if any component is NaN.
func (q Quaternion) NaN() bool {
	return math.IsNaN(q.X) || math.IsNaN(q.Y) || math.IsNaN(q.Z) || math.IsNaN(q.W)
}

func fromQuat(q mgl64.Quat) Quaternion {
	return Quaternion{q.V.X(), q.V.Y(), q.V.Z(), q.W}
}
