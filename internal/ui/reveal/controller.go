package reveal

import (
	"fmt"
	"time"
)

// State is the lifecycle of one revealed element.
type State int

const (
	Unobserved State = iota
	Pending
	Triggered
	Cancelled
)

func (s State) String() string {
	switch s {
	case Unobserved:
		return "unobserved"
	case Pending:
		return "pending"
	case Triggered:
		return "triggered"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Transition describes how a target moves to a style.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Easing   string
}

// Target is the element being revealed.
type Target interface {
	Apply(style Style, tr Transition)
}

// Observer reports visibility changes. Observe subscribes fn, called with the
// visible ratio of the target, and returns a function that unsubscribes it.
type Observer interface {
	Observe(threshold float64, fn func(ratio float64)) (stop func())
}

// Controller fires a preset's entrance animation the first time its target
// becomes sufficiently visible. It is not safe for concurrent use.
type Controller struct {
	frames Frames
	delay  time.Duration
	obs    Observer
	target Target
	state  State
	stop   func()
}

// NewController creates a controller for preset p. Unknown presets fall back
// to FadeUp.
func NewController(p Preset, delay time.Duration, obs Observer) *Controller {
	frames, _ := Lookup(Resolve(p))
	return &Controller{frames: frames, delay: delay, obs: obs}
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Mount applies the initial style to t and starts observing it. Mounting a
// controller that has already been mounted does nothing.
func (c *Controller) Mount(t Target) {
	if c.state != Unobserved {
		return
	}
	c.target = t
	t.Apply(c.frames.Initial, Transition{})
	c.state = Pending
	c.stop = c.obs.Observe(Threshold, func(ratio float64) { c.Visible(ratio) })
}

// Visible handles a visibility report and reports whether it triggered the
// animation. Only the first report at or above Threshold while pending counts.
func (c *Controller) Visible(ratio float64) bool {
	if c.state != Pending || ratio < Threshold {
		return false
	}
	c.target.Apply(c.frames.Animate, Transition{Duration: Duration, Delay: c.delay, Easing: Easing})
	c.state = Triggered
	c.unsubscribe()
	return true
}

// Unmount stops observing. Later visibility reports are ignored.
func (c *Controller) Unmount() {
	c.unsubscribe()
	c.state = Cancelled
}

func (c *Controller) unsubscribe() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}
