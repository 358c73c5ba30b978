package utils

import (
	"math"

	"github.com/cheggaaa/pb/v3"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// NewProgressBar starts a progress bar over the given number of steps, showing
// elapsed and remaining time.
func NewProgressBar(total int) *pb.ProgressBar {
	template := `{{ string . "prefix" }} {{counters . "%s/%s" "%s/?"}} {{bar . }} {{percent . "%.01f%%" "?"}} {{etime . "%s elapsed"}} {{rtime . "%s remain" "%s total" "???"}}`
	return pb.ProgressBarTemplate(template).Start(total)
}
