// Package tween holds begin/end pairs for animatable visual properties and
// evaluates them at a progress value t in [0,1]. Evaluation is pure; callers
// are expected to clamp t before evaluating.
package tween

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Curve remaps a progress value. Compatible with the functions from
// github.com/fogleman/ease.
type Curve func(t float64) float64

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rate accelerates a progress value by factor, saturating at 1. With factor 5
// the result reaches 1 once t >= 0.2.
func Rate(t, factor float64) float64 {
	return math.Min(1, t*factor)
}

// FadeOut maps progress to a 1→0 opacity at the given rate. With rate 3 the
// result reaches 0 once t >= 1/3.
func FadeOut(t, rate float64) float64 {
	return math.Max(0, 1-t*rate)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// FloatTween interpolates a scalar.
type FloatTween struct {
	Begin, End float64
}

func (tw FloatTween) Lerp(t float64) float64 {
	if t == 0 {
		return tw.Begin
	}
	if t == 1 {
		return tw.End
	}
	return lerp(tw.Begin, tw.End, t)
}

// LerpCurve evaluates the tween at curve(t). A nil curve is linear.
func (tw FloatTween) LerpCurve(t float64, c Curve) float64 {
	if c == nil {
		return tw.Lerp(t)
	}
	return tw.Lerp(c(t))
}

// Size is a 2D extent in pixels.
type Size struct {
	W, H float64
}

// SizeTween interpolates width and height component-wise.
type SizeTween struct {
	Begin, End Size
}

func (tw SizeTween) Lerp(t float64) Size {
	return Size{
		W: FloatTween{tw.Begin.W, tw.End.W}.Lerp(t),
		H: FloatTween{tw.Begin.H, tw.End.H}.Lerp(t),
	}
}

// Corners holds one radius per corner, clockwise from top-left.
type Corners struct {
	TL, TR, BR, BL float64
}

// All returns a Corners with the same radius on every corner.
func All(r float64) Corners {
	return Corners{TL: r, TR: r, BR: r, BL: r}
}

// CornersTween interpolates each corner radius independently.
type CornersTween struct {
	Begin, End Corners
}

func (tw CornersTween) Lerp(t float64) Corners {
	return Corners{
		TL: FloatTween{tw.Begin.TL, tw.End.TL}.Lerp(t),
		TR: FloatTween{tw.Begin.TR, tw.End.TR}.Lerp(t),
		BR: FloatTween{tw.Begin.BR, tw.End.BR}.Lerp(t),
		BL: FloatTween{tw.Begin.BL, tw.End.BL}.Lerp(t),
	}
}

// Insets is a 4-sided margin or padding.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// InsetsTween interpolates each side independently.
type InsetsTween struct {
	Begin, End Insets
}

func (tw InsetsTween) Lerp(t float64) Insets {
	return Insets{
		Left:   FloatTween{tw.Begin.Left, tw.End.Left}.Lerp(t),
		Top:    FloatTween{tw.Begin.Top, tw.End.Top}.Lerp(t),
		Right:  FloatTween{tw.Begin.Right, tw.End.Right}.Lerp(t),
		Bottom: FloatTween{tw.Begin.Bottom, tw.End.Bottom}.Lerp(t),
	}
}

// Align is a 2D alignment fraction: (0,0) is center, (-1,-1) top-left,
// (1,1) bottom-right.
type Align struct {
	X, Y float64
}

// AlignTween interpolates alignment fractions component-wise.
type AlignTween struct {
	Begin, End Align
}

func (tw AlignTween) Lerp(t float64) Align {
	return Align{
		X: FloatTween{tw.Begin.X, tw.End.X}.Lerp(t),
		Y: FloatTween{tw.Begin.Y, tw.End.Y}.Lerp(t),
	}
}

// ColorTween interpolates RGB through go-colorful's linear RGB blend and the
// alpha channel linearly.
type ColorTween struct {
	Begin, End color.RGBA
}

func (tw ColorTween) Lerp(t float64) color.RGBA {
	if t == 0 {
		return tw.Begin
	}
	if t == 1 {
		return tw.End
	}
	b := rgb(tw.Begin)
	e := rgb(tw.End)
	c := b.BlendRgb(e, t).Clamped()
	a := lerp(float64(tw.Begin.A), float64(tw.End.A), t)
	return color.RGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: uint8(math.Round(a)),
	}
}

func rgb(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
