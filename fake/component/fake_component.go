package component

import (
	"time"

	"github.com/adammck/forceplate"
	"github.com/sirupsen/logrus"
)

var logger = logrus.WithFields(logrus.Fields{
	"pkg": "fake",
})

// FakeComponent records every state it is ticked with.
type FakeComponent struct {
	BootErr error
	TickErr error

	Booted bool
	States []forceplate.State
}

func New() *FakeComponent {
	return &FakeComponent{}
}

func (c *FakeComponent) Boot() error {
	logger.Debugf("boot")
	c.Booted = true
	return c.BootErr
}

func (c *FakeComponent) Tick(now time.Time, state forceplate.State) error {
	logger.Debugf("tick: %s", state)
	c.States = append(c.States, state)
	return c.TickErr
}
