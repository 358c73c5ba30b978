package plates

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one plate over a whole series. Invalid samples are left
// out of every statistic.
type Summary struct {
	Plate int

	// Number of samples with every field present.
	Valid   int
	Invalid int

	// Vertical (Y) ground reaction force.
	MeanForce float64
	MaxForce  float64
	StdForce  float64

	// Largest magnitude of the full force vector.
	PeakMagnitude float64

	MeanTorque float64
}

func (s Summary) String() string {
	return fmt.Sprintf("plate=%d valid=%d invalid=%d fy(mean=%.2f max=%.2f sd=%.2f) |f|max=%.2f t(mean=%.3f)",
		s.Plate, s.Valid, s.Invalid, s.MeanForce, s.MaxForce, s.StdForce, s.PeakMagnitude, s.MeanTorque)
}

// Summarize computes a Summary for each plate. Statistics of a plate with no
// valid samples are NaN.
func Summarize(series Series) [NumPlates]Summary {
	var out [NumPlates]Summary

	for p := range out {
		fy := make([]float64, 0, len(series))
		mag := make([]float64, 0, len(series))
		torque := make([]float64, 0, len(series))

		for _, f := range series {
			s := f[p]
			if !s.Valid() {
				out[p].Invalid += 1
				continue
			}

			fy = append(fy, s.Y)
			mag = append(mag, s.Force().Magnitude())
			torque = append(torque, s.T)
		}

		out[p].Plate = p
		out[p].Valid = len(fy)

		if len(fy) == 0 {
			out[p].MeanForce = math.NaN()
			out[p].MaxForce = math.NaN()
			out[p].StdForce = math.NaN()
			out[p].PeakMagnitude = math.NaN()
			out[p].MeanTorque = math.NaN()
			continue
		}

		out[p].MeanForce, out[p].StdForce = stat.MeanStdDev(fy, nil)
		out[p].MaxForce = floats.Max(fy)
		out[p].PeakMagnitude = floats.Max(mag)
		out[p].MeanTorque = stat.Mean(torque, nil)
	}

	return out
}
