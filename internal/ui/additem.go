package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/leonalonso/storyrail/internal/tween"
)

const (
	// borderRateFactor makes the border color/width transition finish at
	// t = 0.2, well before the shape morph completes.
	borderRateFactor = 5
	// labelFadeRate fades the create-label out by t = 1/3.
	labelFadeRate = 3
	// compactFactor sizes the end-state circle relative to the add-item width.
	compactFactor = 0.5
)

// addItem is the leading create-story card. As the rail scrolls it morphs from
// a full story card into a compact circle. All begin/end values are derived
// from the Options once at construction; evaluation at a progress value is
// pure.
type addItem struct {
	size        tween.SizeTween
	radius      tween.CornersTween
	fill        tween.ColorTween
	borderColor tween.ColorTween
	borderWidth tween.FloatTween
	iconAlign   tween.AlignTween
	margin      tween.InsetsTween

	label  string
	cover  *ebiten.Image
	button AddButton
}

// addItemVisuals is the full set of evaluated properties for one frame.
type addItemVisuals struct {
	Size        tween.Size
	Radius      tween.Corners
	Fill        color.RGBA
	BorderColor color.RGBA
	BorderWidth float64
	IconAlign   tween.Align
	Margin      tween.Insets
	LabelAlpha  float64
}

func newAddItem(o Options) addItem {
	compact := o.AddItemWidth * compactFactor
	return addItem{
		size: tween.SizeTween{
			Begin: tween.Size{W: o.AddItemWidth, H: o.Height},
			End:   tween.Size{W: compact, H: compact},
		},
		radius: tween.CornersTween{
			Begin: tween.All(o.BorderRadius),
			End:   tween.All(compact / 2),
		},
		fill: tween.ColorTween{
			Begin: o.AddItemBackground,
			End:   o.IconBackground,
		},
		borderColor: tween.ColorTween{
			Begin: o.Background,
			End:   o.Border,
		},
		borderWidth: tween.FloatTween{Begin: 0, End: AddBorderW},
		iconAlign: tween.AlignTween{
			Begin: tween.Align{X: 0, Y: 0.75},
			End:   tween.Align{X: 0, Y: 0},
		},
		margin: tween.InsetsTween{
			Begin: tween.Insets{},
			End:   tween.Insets{Top: (o.Height - compact) / 2},
		},
		label: o.CreateLabel,
		cover: o.CoverImage,
		button: AddButton{
			Diameter:   o.IconSize,
			Background: o.IconBackground,
			IconColor:  o.Background,
			OnPressed:  o.OnAdd,
		},
	}
}

// visualsAt evaluates every animatable property at progress t. The border
// runs at a 5× rate and the label fade at a 3× rate; everything else tracks t
// directly. Callers clamp t to [0,1].
func (a addItem) visualsAt(t float64) addItemVisuals {
	bt := tween.Rate(t, borderRateFactor)
	return addItemVisuals{
		Size:        a.size.Lerp(t),
		Radius:      a.radius.Lerp(t),
		Fill:        a.fill.Lerp(t),
		BorderColor: a.borderColor.Lerp(bt),
		BorderWidth: a.borderWidth.Lerp(bt),
		IconAlign:   a.iconAlign.Lerp(t),
		Margin:      a.margin.Lerp(t),
		LabelAlpha:  tween.FadeOut(t, labelFadeRate),
	}
}

// draw renders the add item with its left edge at (x, y) being the top-left
// of the rail slot. Returns the consumed visuals for debug display.
func (a addItem) draw(dst *ebiten.Image, x, y, t float64) addItemVisuals {
	v := a.visualsAt(t)

	ix := x + v.Margin.Left
	iy := y + v.Margin.Top
	w := v.Size.W - v.Margin.Left - v.Margin.Right
	h := v.Size.H

	FillRoundedRect(dst, ix, iy, w, h, v.Radius, v.Fill)

	// Cover image fades out with the label; a camera glyph stands in when no
	// cover was configured
	if v.LabelAlpha > 0 {
		if a.cover != nil {
			drawImageCover(dst, a.cover, ix, iy, w, h*0.62, v.LabelAlpha)
		} else {
			drawCameraIcon(dst, float32(ix+w/2), float32(iy+h*0.3), float32(w)*0.16, ColorTextSecondary)
		}
	}

	if v.BorderWidth > 0 {
		StrokeRoundedRect(dst, ix, iy, w, h, v.Radius, v.BorderWidth, v.BorderColor)
	}

	// Plus button slides from the label area to dead center
	r := a.button.Diameter / 2
	cx := ix + w/2 + v.IconAlign.X*(w/2-r)
	cy := iy + h/2 + v.IconAlign.Y*(h/2-r-LabelPad)
	a.button.Draw(dst, cx, cy)

	if a.label != "" && v.LabelAlpha > 0 {
		lbl := truncateText(a.label, w-4, FontSizeCaption)
		DrawTextCenteredAlpha(dst, lbl, ix+w/2, iy+h-LabelPad, FontSizeCaption, ColorText, v.LabelAlpha)
	}

	return v
}

// drawImageCover scales img to fill (w, h) at (x, y) with the given opacity.
func drawImageCover(dst *ebiten.Image, img *ebiten.Image, x, y, w, h, alpha float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(img, op)
}
