package arrows

import (
	"time"

	"github.com/adammck/forceplate"
	"github.com/adammck/forceplate/overlay"
	"github.com/adammck/forceplate/plates"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "arrows",
})

// Arrows keeps the force arrow of each plate in step with playback.
type Arrows struct {
	Layout overlay.Layout

	series plates.Series

	// The frame index used on the last tick, or -1 if there was no frame.
	index int

	current [plates.NumPlates]overlay.Arrow
	visible [plates.NumPlates]bool
}

func New(layout overlay.Layout, series plates.Series) *Arrows {
	return &Arrows{
		Layout: layout,
		series: series,
		index:  -1,
	}
}

// Replace swaps in a newly loaded series. Arrows are hidden until the next
// tick.
func (a *Arrows) Replace(series plates.Series) {
	log.Infof("replacing series: %d -> %d frames", a.series.Len(), series.Len())
	a.series = series
	a.index = -1
	a.visible = [plates.NumPlates]bool{}
}

func (a *Arrows) Boot() error {
	if a.series.Len() == 0 {
		log.Warnf("no force plate data; arrows will stay hidden")
	}

	return nil
}

// Tick looks up the frame for the current progress. If there is none (no data,
// or progress past the last frame) the arrows are hidden.
func (a *Arrows) Tick(now time.Time, state forceplate.State) error {
	i := plates.FrameIndexForProgress(state.Progress, a.series.Len())

	f, ok := a.series.At(i)
	if !ok {
		if a.index != -1 {
			log.Debugf("no frame at index %d of %d (progress=%.4f)", i, a.series.Len(), state.Progress)
		}

		a.index = -1
		a.visible = [plates.NumPlates]bool{}
		return nil
	}

	a.index = i
	a.current, a.visible = a.Layout.Arrows(f)

	for p := range a.current {
		if a.visible[p] {
			log.Debugf("frame=%d %s", i, a.current[p])
		}
	}

	return nil
}

// Index returns the frame index shown, or -1 if none.
func (a *Arrows) Index() int {
	return a.index
}

// Current returns the arrows of the current frame. Arrows for which ok is
// false should not be drawn.
func (a *Arrows) Current() (arrows [plates.NumPlates]overlay.Arrow, ok [plates.NumPlates]bool) {
	return a.current, a.visible
}
