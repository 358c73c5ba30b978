package forceplate

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "forceplate",
})

// State is the playback position for one tick. It is passed by value to every
// component, so none of them can change what the others see.
type State struct {
	Tick int

	// Animation time, in seconds since the start of the clip.
	Time float64

	// Time divided by clip duration, in [0, 1].
	Progress float64
}

func (s State) String() string {
	return fmt.Sprintf("&State{tick=%d t=%.3fs progress=%.4f}", s.Tick, s.Time, s.Progress)
}

type Component interface {
	Boot() error
	Tick(time.Time, State) error
}

// Player advances a clock every frame, and passes the resulting state to each
// of its components.
type Player struct {
	Components []Component
	Clock      Clock

	// The wall time of the previous tick. Zero until the first tick.
	last  time.Time
	ticks int
}

// NewPlayer creates a new Player for a clip of the given clock.
func NewPlayer(clock Clock) *Player {
	return &Player{
		Components: []Component{},
		Clock:      clock,
	}
}

// Add registers a component to receive ticks every frame.
func (p *Player) Add(c Component) {
	p.Components = append(p.Components, c)
}

// Boot calls Boot on each component.
func (p *Player) Boot() error {
	for _, c := range p.Components {
		err := c.Boot()
		if err != nil {
			return fmt.Errorf("booting %T: %w", c, err)
		}
	}

	return nil
}

// Tick advances the clock by the wall time since the previous tick (nothing,
// on the first tick), then calls Tick on each component. Component errors are
// logged, and don't stop the others.
func (p *Player) Tick(now time.Time) State {
	if !p.last.IsZero() {
		p.Clock = p.Clock.Advance(now.Sub(p.last).Seconds())
	}
	p.last = now

	s := State{
		Tick:     p.ticks,
		Time:     p.Clock.Time,
		Progress: p.Clock.Progress(),
	}
	p.ticks += 1

	for _, c := range p.Components {
		err := c.Tick(now, s)
		if err != nil {
			log.Warnf("tick %d: %T: %s", s.Tick, c, err)
		}
	}

	return s
}

// Run ticks the player every time the channel fires, until the context is
// cancelled, the channel is closed, or (if stop returns true) the state says
// so. The final state is returned.
func (p *Player) Run(ctx context.Context, ticks <-chan time.Time, stop func(State) bool) State {
	var s State

	for {
		select {
		case <-ctx.Done():
			log.Infof("stopped: %s", ctx.Err())
			return s

		case now, ok := <-ticks:
			if !ok {
				return s
			}

			s = p.Tick(now)
			if stop != nil && stop(s) {
				return s
			}
		}
	}
}
