// Package reveal models the reveal-on-scroll behaviour of animated sections:
// the preset table shared by server markup and the site script, and the
// per-element controller that fires an entrance animation once.
package reveal

import (
	"strconv"
	"strings"
	"time"
)

// Preset names an entrance animation.
type Preset string

const (
	FadeUp     Preset = "fade-up"
	FadeIn     Preset = "fade-in"
	Scale      Preset = "scale"
	SlideLeft  Preset = "slide-left"
	SlideRight Preset = "slide-right"
)

// Timing shared by every preset.
const (
	Duration  = 600 * time.Millisecond
	Easing    = "cubic-bezier(0.25,0.1,0.25,1)"
	Threshold = 0.2
)

// Style is a point in an entrance animation. X and Y are pixel offsets.
type Style struct {
	Opacity float64
	X       float64
	Y       float64
	Scale   float64
}

// CSS renders the style as an inline declaration list.
func (s Style) CSS() string {
	var sb strings.Builder
	sb.WriteString("opacity:")
	sb.WriteString(formatFloat(s.Opacity))

	var transforms []string
	if s.X != 0 || s.Y != 0 {
		transforms = append(transforms, "translate("+formatFloat(s.X)+"px,"+formatFloat(s.Y)+"px)")
	}
	if s.Scale != 0 && s.Scale != 1 {
		transforms = append(transforms, "scale("+formatFloat(s.Scale)+")")
	}
	sb.WriteString(";transform:")
	if len(transforms) == 0 {
		sb.WriteString("none")
	} else {
		sb.WriteString(strings.Join(transforms, " "))
	}
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Frames is the start and end of a preset.
type Frames struct {
	Initial Style
	Animate Style
}

var visible = Style{Opacity: 1, Scale: 1}

var presets = map[Preset]Frames{
	FadeUp:     {Initial: Style{Opacity: 0, Y: 40, Scale: 1}, Animate: visible},
	FadeIn:     {Initial: Style{Opacity: 0, Scale: 1}, Animate: visible},
	Scale:      {Initial: Style{Opacity: 0, Scale: 0.95}, Animate: visible},
	SlideLeft:  {Initial: Style{Opacity: 0, X: -40, Scale: 1}, Animate: visible},
	SlideRight: {Initial: Style{Opacity: 0, X: 40, Scale: 1}, Animate: visible},
}

// Lookup returns the frames of p.
func Lookup(p Preset) (Frames, bool) {
	f, ok := presets[p]
	return f, ok
}

// Resolve returns p when it is a known preset and FadeUp otherwise.
func Resolve(p Preset) Preset {
	if _, ok := presets[p]; ok {
		return p
	}
	return FadeUp
}

// Presets lists every preset in a fixed order.
func Presets() []Preset {
	return []Preset{FadeUp, FadeIn, Scale, SlideLeft, SlideRight}
}
