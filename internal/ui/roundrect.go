package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/leonalonso/storyrail/internal/tween"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// appendRoundRectPath builds a clockwise rounded-rectangle path with
// independent corner radii. Radii are clamped to half the shorter side.
func appendRoundRectPath(p *vector.Path, x, y, w, h float64, c tween.Corners) {
	maxR := math.Min(w, h) / 2
	tl := float32(tween.Clamp(c.TL, 0, maxR))
	tr := float32(tween.Clamp(c.TR, 0, maxR))
	br := float32(tween.Clamp(c.BR, 0, maxR))
	bl := float32(tween.Clamp(c.BL, 0, maxR))

	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)

	p.MoveTo(x0+tl, y0)
	p.LineTo(x1-tr, y0)
	p.ArcTo(x1, y0, x1, y0+tr, tr)
	p.LineTo(x1, y1-br)
	p.ArcTo(x1, y1, x1-br, y1, br)
	p.LineTo(x0+bl, y1)
	p.ArcTo(x0, y1, x0, y1-bl, bl)
	p.LineTo(x0, y0+tl)
	p.ArcTo(x0, y0, x0+tl, y0, tl)
	p.Close()
}

// FillRoundedRect draws a filled rectangle with per-corner radii.
func FillRoundedRect(dst *ebiten.Image, x, y, w, h float64, corners tween.Corners, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	var p vector.Path
	appendRoundRectPath(&p, x, y, w, h, corners)

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	drawPathVertices(dst, vs, is, clr)
}

// StrokeRoundedRect draws the outline of a rounded rectangle.
func StrokeRoundedRect(dst *ebiten.Image, x, y, w, h float64, corners tween.Corners, width float64, clr color.Color) {
	if w <= 0 || h <= 0 || width <= 0 {
		return
	}
	var p vector.Path
	appendRoundRectPath(&p, x, y, w, h, corners)

	op := &vector.StrokeOptions{Width: float32(width)}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawPathVertices(dst, vs, is, clr)
}

func drawPathVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.Color) {
	r, g, b, a := clr.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	top := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, top)
}
