package motion

import (
	"github.com/adammck/forceplate/math3d"
)

// EstimateAngularVelocity returns the magnitude of the rotational velocity
// (radians per unit of dt) between two consecutive orientations:
//
//	delta = normalize(inverse(q1) * q2)
//	angle = 2 * acos(clamp(delta.w, -1, 1))
//	v     = angle / dt
//
// A dt of zero gives Inf or NaN, as IEEE division does.
func EstimateAngularVelocity(q1, q2 math3d.Quaternion, dt float64) float64 {
	delta := q1.Inverse().Multiply(q2).Normalize()
	return delta.Angle() / dt
}

// AngularVelocities estimates the velocity at each sample of an orientation
// track spanning the given duration. Samples are assumed to be evenly spaced,
// duration/len(track) apart. The first sample has nothing before it, so its
// velocity is 0.
func AngularVelocities(track []math3d.Quaternion, duration float64) []float64 {
	out := make([]float64, len(track))
	if len(track) == 0 {
		return out
	}

	dt := duration / float64(len(track))
	for i := 1; i < len(track); i++ {
		out[i] = EstimateAngularVelocity(track[i-1], track[i], dt)
	}

	return out
}

// AngularVelocitiesAt is like AngularVelocities, but takes the time of each
// sample rather than assuming even spacing. times must be the same length as
// track.
func AngularVelocitiesAt(track []math3d.Quaternion, times []float64) []float64 {
	out := make([]float64, len(track))
	for i := 1; i < len(track) && i < len(times); i++ {
		out[i] = EstimateAngularVelocity(track[i-1], track[i], times[i]-times[i-1])
	}

	return out
}
