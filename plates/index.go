package plates

import (
	"math"
)

// FrameIndexForProgress maps playback progress (elapsed time / clip duration,
// normally 0..1) onto a series of length n, by rounding progress*n. Progress is
// not clamped, so the result can be out of range: progress 1.0 maps to n, one
// past the last frame. Use Series.At, which checks bounds. Progress which is
// NaN or infinite maps to -1.
func FrameIndexForProgress(progress float64, n int) int {
	if math.IsNaN(progress) || math.IsInf(progress, 0) {
		return -1
	}

	return int(math.Round(progress * float64(n)))
}
