package forceplate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adammck/forceplate"
	"github.com/adammck/forceplate/fake/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoot(t *testing.T) {
	a := component.New()
	b := component.New()
	b.BootErr = errors.New("nope")
	c := component.New()

	p := forceplate.NewPlayer(forceplate.NewClock(1, true))
	p.Add(a)
	p.Add(b)
	p.Add(c)

	err := p.Boot()
	assert.ErrorIs(t, err, b.BootErr)
	assert.True(t, a.Booted)
	assert.True(t, b.Booted)
	assert.False(t, c.Booted)
}

func TestTick(t *testing.T) {
	a := component.New()
	a.TickErr = errors.New("ignored")
	b := component.New()

	p := forceplate.NewPlayer(forceplate.NewClock(4, true))
	p.Add(a)
	p.Add(b)

	t0 := time.Unix(1000, 0)
	p.Tick(t0)
	p.Tick(t0.Add(1 * time.Second))
	s := p.Tick(t0.Add(3 * time.Second))

	assert.Equal(t, 2, s.Tick)
	assert.InDelta(t, 3, s.Time, 1e-9)
	assert.InDelta(t, 0.75, s.Progress, 1e-9)

	require.Len(t, b.States, 3)
	assert.Equal(t, a.States, b.States)
	assert.Equal(t, 0.0, b.States[0].Progress)
	assert.InDelta(t, 0.25, b.States[1].Progress, 1e-9)
}

func TestRunStops(t *testing.T) {
	c := component.New()
	p := forceplate.NewPlayer(forceplate.NewClock(1, false))
	p.Add(c)

	ticks := make(chan time.Time, 10)
	t0 := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		ticks <- t0.Add(time.Duration(i) * 250 * time.Millisecond)
	}
	close(ticks)

	s := p.Run(context.Background(), ticks, func(s forceplate.State) bool {
		return s.Progress >= 1
	})

	assert.Equal(t, 4, s.Tick)
	assert.Equal(t, 1.0, s.Progress)
	assert.Len(t, c.States, 5)
}

func TestRunClosed(t *testing.T) {
	p := forceplate.NewPlayer(forceplate.NewClock(1, true))

	ticks := make(chan time.Time, 2)
	ticks <- time.Unix(0, 0)
	ticks <- time.Unix(0, 0).Add(100 * time.Millisecond)
	close(ticks)

	s := p.Run(context.Background(), ticks, nil)
	assert.Equal(t, 1, s.Tick)
	assert.InDelta(t, 0.1, s.Progress, 1e-9)
}

func TestRunCancelled(t *testing.T) {
	p := forceplate.NewPlayer(forceplate.NewClock(1, true))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := p.Run(ctx, make(chan time.Time), nil)
	assert.Equal(t, forceplate.State{}, s)
}
