package graph

import (
	"fmt"
	"math"
	"time"

	"github.com/adammck/forceplate"
	"github.com/adammck/forceplate/motion"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "graph",
})

// Row is one point of the graph: a keyframe, plus its angular velocity if the
// track is a rotation and velocity is shown.
type Row struct {
	motion.Keyframe
	V    float64
	HasV bool
}

// Graph follows playback along the keyframes of a single track.
type Graph struct {
	Track motion.KeyframeTrack
	rows  []Row

	// Drawn so the largest value of any key is at +/-1, but never enlarged.
	scale float64

	cursor int
}

// New builds the graph of a track. If showVelocity is set and the track holds
// rotations, each row also gets the angular velocity of the clip duration.
func New(track motion.KeyframeTrack, duration float64, showVelocity bool) *Graph {
	keys := track.Group()
	rows := make([]Row, len(keys))
	for i, k := range keys {
		rows[i] = Row{Keyframe: k}
	}

	if showVelocity && track.IsQuaternion() {
		qs, _ := track.Orientations()
		for i, v := range motion.AngularVelocities(qs, duration) {
			rows[i].V = v
			rows[i].HasV = true
		}
	}

	return &Graph{
		Track:  track,
		rows:   rows,
		scale:  scaleOf(rows),
		cursor: -1,
	}
}

func scaleOf(rows []Row) float64 {
	scale := 1.0
	for _, r := range rows {
		for _, v := range r.values() {
			if !math.IsNaN(v) && !math.IsInf(v, 0) {
				scale = math.Max(scale, math.Abs(v))
			}
		}
	}

	return scale
}

func (r Row) values() []float64 {
	vals := []float64{r.X, r.Y, r.Z}
	if r.HasW {
		vals = append(vals, r.W)
	}
	if r.HasV {
		vals = append(vals, r.V)
	}

	return vals
}

func (r Row) String() string {
	if r.HasV {
		return fmt.Sprintf("%s v=%+.4f", r.Keyframe, r.V)
	}

	return r.Keyframe.String()
}

func (g *Graph) Boot() error {
	log.Infof("track=%s rows=%d scale=%.3f", g.Track.Name, len(g.rows), g.scale)
	return nil
}

// Tick moves the cursor to the row under the playback progress.
func (g *Graph) Tick(now time.Time, state forceplate.State) error {
	g.cursor = CursorForProgress(state.Progress, len(g.rows))
	if g.cursor >= 0 {
		log.Debugf("progress=%.4f %s", state.Progress, g.rows[g.cursor])
	}

	return nil
}

// CursorForProgress returns the row under the given progress in a graph of n
// rows, where row i is drawn at x = i/n. The result is clamped to the rows, or
// -1 if there are none.
func CursorForProgress(progress float64, n int) int {
	if n == 0 || math.IsNaN(progress) {
		return -1
	}

	i := int(math.Floor(math.Max(0, math.Min(progress, 1)) * float64(n)))
	if i >= n {
		i = n - 1
	}

	return i
}

func (g *Graph) Rows() []Row {
	return g.rows
}

func (g *Graph) Scale() float64 {
	return g.scale
}

// Current returns the row under the cursor, or false before the first tick or
// if the track is empty.
func (g *Graph) Current() (Row, bool) {
	if g.cursor < 0 || g.cursor >= len(g.rows) {
		return Row{}, false
	}

	return g.rows[g.cursor], true
}
