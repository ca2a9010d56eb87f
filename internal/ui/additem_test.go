package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leonalonso/storyrail/internal/tween"
)

func testOptions() Options {
	return Options{
		Width:        300,
		Height:       190,
		AddItemWidth: 110,
		ItemWidth:    110,
		ItemMargin:   8,
		ItemCount:    3,
		BorderRadius: 14,
		IconSize:     34,
		CreateLabel:  "Create story",
	}.withDefaults()
}

func TestAddItemBeginState(t *testing.T) {
	a := newAddItem(testOptions())
	v := a.visualsAt(0)

	assert.Equal(t, tween.Size{W: 110, H: 190}, v.Size)
	assert.Equal(t, tween.All(14), v.Radius)
	assert.Equal(t, ColorCardBackground, v.Fill)
	assert.Equal(t, ColorBackground, v.BorderColor)
	assert.Zero(t, v.BorderWidth)
	assert.Equal(t, tween.Align{X: 0, Y: 0.75}, v.IconAlign)
	assert.Equal(t, tween.Insets{}, v.Margin)
	assert.Equal(t, 1.0, v.LabelAlpha)
}

func TestAddItemEndState(t *testing.T) {
	a := newAddItem(testOptions())
	v := a.visualsAt(1)

	// Compact circle: half the add-item width on both axes, radius half the
	// compact height, vertically centered by the top margin.
	assert.Equal(t, tween.Size{W: 55, H: 55}, v.Size)
	assert.Equal(t, tween.All(27.5), v.Radius)
	assert.Equal(t, ColorIconBackground, v.Fill)
	assert.Equal(t, ColorBorder, v.BorderColor)
	assert.Equal(t, AddBorderW, v.BorderWidth)
	assert.Equal(t, tween.Align{X: 0, Y: 0}, v.IconAlign)
	assert.Equal(t, tween.Insets{Top: 67.5}, v.Margin)
	assert.Zero(t, v.LabelAlpha)
}

func TestAddItemBorderFinishesEarly(t *testing.T) {
	a := newAddItem(testOptions())

	// Border color and width run at a 5x rate: done by t = 0.2 even though
	// the shape morph is still in flight.
	for _, tv := range []float64{0.2, 0.3, 0.6, 1} {
		v := a.visualsAt(tv)
		assert.Equal(t, ColorBorder, v.BorderColor, "t=%v", tv)
		assert.Equal(t, AddBorderW, v.BorderWidth, "t=%v", tv)
	}

	// Still in transition before the cutoff
	v := a.visualsAt(0.1)
	assert.Equal(t, 1.0, v.BorderWidth)
	assert.NotEqual(t, ColorBorder, v.BorderColor)
}

func TestAddItemLabelFade(t *testing.T) {
	a := newAddItem(testOptions())

	assert.Equal(t, 1.0, a.visualsAt(0).LabelAlpha)
	assert.InDelta(t, 0.7, a.visualsAt(0.1).LabelAlpha, 1e-9)
	for _, tv := range []float64{1.0 / 3, 0.5, 1} {
		assert.InDelta(t, 0.0, a.visualsAt(tv).LabelAlpha, 1e-9, "t=%v", tv)
	}
}

func TestAddItemShapeMonotonic(t *testing.T) {
	a := newAddItem(testOptions())
	prev := a.visualsAt(0)
	for i := 1; i <= 50; i++ {
		v := a.visualsAt(float64(i) / 50)
		assert.LessOrEqual(t, v.Size.W, prev.Size.W)
		assert.LessOrEqual(t, v.Size.H, prev.Size.H)
		assert.GreaterOrEqual(t, v.Radius.TL, prev.Radius.TL)
		assert.GreaterOrEqual(t, v.Margin.Top, prev.Margin.Top)
		assert.LessOrEqual(t, v.LabelAlpha, prev.LabelAlpha)
		prev = v
	}
}

func TestWithDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, float64(StoryBarHeight), o.Height)
	assert.Equal(t, float64(AddItemWidth), o.AddItemWidth)
	assert.Equal(t, ColorBorder, o.Border)

	// Explicit values survive
	o = Options{Height: 120, Border: color.RGBA{R: 1, A: 255}}.withDefaults()
	assert.Equal(t, 120.0, o.Height)
	assert.Equal(t, color.RGBA{R: 1, A: 255}, o.Border)
}
