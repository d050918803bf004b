package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type applied struct {
	style Style
	tr    Transition
}

type fakeTarget struct {
	calls []applied
}

func (f *fakeTarget) Apply(style Style, tr Transition) {
	f.calls = append(f.calls, applied{style, tr})
}

type fakeObserver struct {
	fn        func(float64)
	threshold float64
	stopped   int
}

func (f *fakeObserver) Observe(threshold float64, fn func(float64)) func() {
	f.threshold = threshold
	f.fn = fn
	return func() { f.stopped++ }
}

func TestPresetTable(t *testing.T) {
	for _, p := range Presets() {
		frames, ok := Lookup(p)
		require.True(t, ok, p)
		assert.Equal(t, 0.0, frames.Initial.Opacity, p)
		assert.Equal(t, 1.0, frames.Animate.Opacity, p)
	}

	fadeUp, _ := Lookup(FadeUp)
	assert.Equal(t, 40.0, fadeUp.Initial.Y)
	slideLeft, _ := Lookup(SlideLeft)
	assert.Equal(t, -40.0, slideLeft.Initial.X)
	slideRight, _ := Lookup(SlideRight)
	assert.Equal(t, 40.0, slideRight.Initial.X)
	scale, _ := Lookup(Scale)
	assert.Equal(t, 0.95, scale.Initial.Scale)

	_, ok := Lookup("spin")
	assert.False(t, ok)
	assert.Equal(t, FadeUp, Resolve("spin"))
}

func TestStyleCSS(t *testing.T) {
	fadeUp, _ := Lookup(FadeUp)
	assert.Equal(t, "opacity:0;transform:translate(0px,40px)", fadeUp.Initial.CSS())
	scale, _ := Lookup(Scale)
	assert.Equal(t, "opacity:0;transform:scale(0.95)", scale.Initial.CSS())
	assert.Equal(t, "opacity:1;transform:none", scale.Animate.CSS())
}

func TestControllerFiresOnce(t *testing.T) {
	obs := &fakeObserver{}
	target := &fakeTarget{}
	c := NewController(FadeUp, 200*time.Millisecond, obs)
	require.Equal(t, Unobserved, c.State())

	c.Mount(target)
	require.Equal(t, Pending, c.State())
	require.Len(t, target.calls, 1)
	assert.Equal(t, 0.0, target.calls[0].style.Opacity)
	assert.Equal(t, Threshold, obs.threshold)

	obs.fn(0.1)
	assert.Equal(t, Pending, c.State(), "below threshold must not fire")

	obs.fn(0.5)
	require.Equal(t, Triggered, c.State())
	require.Len(t, target.calls, 2)
	assert.Equal(t, Transition{Duration: Duration, Delay: 200 * time.Millisecond, Easing: Easing}, target.calls[1].tr)
	assert.Equal(t, 1, obs.stopped)

	// leaving and re-entering the viewport never replays
	obs.fn(0)
	obs.fn(1)
	assert.Len(t, target.calls, 2)
	assert.Equal(t, 1, obs.stopped)
}

func TestControllerUnmountBeforeVisible(t *testing.T) {
	obs := &fakeObserver{}
	target := &fakeTarget{}
	c := NewController(SlideLeft, 0, obs)
	c.Mount(target)

	c.Unmount()
	assert.Equal(t, Cancelled, c.State())
	assert.Equal(t, 1, obs.stopped)

	assert.False(t, c.Visible(1))
	obs.fn(1)
	assert.Len(t, target.calls, 1, "callbacks after unmount are no-ops")

	c.Unmount()
	assert.Equal(t, 1, obs.stopped)
}

func TestControllerMountTwice(t *testing.T) {
	obs := &fakeObserver{}
	target := &fakeTarget{}
	c := NewController(FadeIn, 0, obs)
	c.Mount(target)
	c.Mount(target)
	assert.Len(t, target.calls, 1)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "triggered", Triggered.String())
	assert.Equal(t, "State(9)", State(9).String())
}
