package tween

import (
	"image/color"
	"testing"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
)

func TestFloatTweenEndpoints(t *testing.T) {
	tw := FloatTween{Begin: 110, End: 55}
	assert.Equal(t, 110.0, tw.Lerp(0))
	assert.Equal(t, 55.0, tw.Lerp(1))
	assert.Equal(t, 82.5, tw.Lerp(0.5))
}

func TestFloatTweenMonotonic(t *testing.T) {
	tests := []struct {
		name string
		tw   FloatTween
	}{
		{name: "decreasing", tw: FloatTween{Begin: 190, End: 55}},
		{name: "increasing", tw: FloatTween{Begin: 0, End: 2}},
		{name: "flat", tw: FloatTween{Begin: 14, End: 14}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := tt.tw.Lerp(0)
			for i := 1; i <= 100; i++ {
				cur := tt.tw.Lerp(float64(i) / 100)
				if tt.tw.End >= tt.tw.Begin {
					assert.GreaterOrEqual(t, cur, prev, "step %d", i)
				} else {
					assert.LessOrEqual(t, cur, prev, "step %d", i)
				}
				prev = cur
			}
		})
	}
}

func TestSizeTween(t *testing.T) {
	tw := SizeTween{
		Begin: Size{W: 110, H: 190},
		End:   Size{W: 55, H: 55},
	}
	assert.Equal(t, tw.Begin, tw.Lerp(0))
	assert.Equal(t, tw.End, tw.Lerp(1))

	mid := tw.Lerp(0.5)
	assert.Equal(t, 82.5, mid.W)
	assert.Equal(t, 122.5, mid.H)
}

func TestCornersTween(t *testing.T) {
	tw := CornersTween{Begin: All(14), End: All(27.5)}
	assert.Equal(t, All(14), tw.Lerp(0))
	assert.Equal(t, All(27.5), tw.Lerp(1))

	mid := tw.Lerp(0.5)
	assert.Equal(t, 20.75, mid.TL)
	assert.Equal(t, mid.TL, mid.TR)
	assert.Equal(t, mid.TL, mid.BR)
	assert.Equal(t, mid.TL, mid.BL)
}

func TestInsetsTween(t *testing.T) {
	tw := InsetsTween{
		Begin: Insets{},
		End:   Insets{Top: 67.5},
	}
	assert.Equal(t, Insets{}, tw.Lerp(0))
	assert.Equal(t, Insets{Top: 67.5}, tw.Lerp(1))
	assert.Equal(t, 33.75, tw.Lerp(0.5).Top)
	assert.Zero(t, tw.Lerp(0.5).Left)
}

func TestAlignTween(t *testing.T) {
	tw := AlignTween{
		Begin: Align{X: 0, Y: 0.75},
		End:   Align{X: 0, Y: 0},
	}
	assert.Equal(t, tw.Begin, tw.Lerp(0))
	assert.Equal(t, tw.End, tw.Lerp(1))
	assert.Equal(t, 0.375, tw.Lerp(0.5).Y)
}

func TestColorTweenEndpointsExact(t *testing.T) {
	tw := ColorTween{
		Begin: color.RGBA{R: 0xE4, G: 0xE6, B: 0xEB, A: 0xFF},
		End:   color.RGBA{R: 0x18, G: 0x77, B: 0xF2, A: 0xFF},
	}
	assert.Equal(t, tw.Begin, tw.Lerp(0))
	assert.Equal(t, tw.End, tw.Lerp(1))
}

func TestColorTweenChannelMonotonic(t *testing.T) {
	tw := ColorTween{
		Begin: color.RGBA{R: 0x00, G: 0xFF, B: 0x80, A: 0x00},
		End:   color.RGBA{R: 0xFF, G: 0x00, B: 0x80, A: 0xFF},
	}
	var prev color.RGBA = tw.Lerp(0)
	for i := 1; i <= 50; i++ {
		cur := tw.Lerp(float64(i) / 50)
		assert.GreaterOrEqual(t, cur.R, prev.R, "R at step %d", i)
		assert.LessOrEqual(t, cur.G, prev.G, "G at step %d", i)
		assert.Equal(t, uint8(0x80), cur.B, "B at step %d", i)
		assert.GreaterOrEqual(t, cur.A, prev.A, "A at step %d", i)
		prev = cur
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestRateSaturates(t *testing.T) {
	// With factor 5 the secondary progress hits 1 at t = 0.2 and stays there.
	assert.Equal(t, 0.0, Rate(0, 5))
	assert.Equal(t, 0.5, Rate(0.1, 5))
	for _, tv := range []float64{0.2, 0.25, 0.5, 0.9, 1} {
		assert.Equal(t, 1.0, Rate(tv, 5), "t=%v", tv)
	}
}

func TestFadeOut(t *testing.T) {
	assert.Equal(t, 1.0, FadeOut(0, 3))
	assert.InDelta(t, 0.4, FadeOut(0.2, 3), 1e-9)
	for _, tv := range []float64{1.0 / 3, 0.4, 0.7, 1} {
		assert.InDelta(t, 0.0, FadeOut(tv, 3), 1e-9, "t=%v", tv)
	}
}

func TestLerpCurve(t *testing.T) {
	tw := FloatTween{Begin: 0, End: 100}
	// Endpoints hold for any easing curve
	assert.Equal(t, 0.0, tw.LerpCurve(0, ease.OutQuad))
	assert.Equal(t, 100.0, tw.LerpCurve(1, ease.OutQuad))
	// OutQuad leads linear in the middle
	assert.Greater(t, tw.LerpCurve(0.5, ease.OutQuad), tw.Lerp(0.5))
	// Nil curve is linear
	assert.Equal(t, tw.Lerp(0.3), tw.LerpCurve(0.3, nil))
}
