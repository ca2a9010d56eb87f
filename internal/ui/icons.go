package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawPlusIcon draws a plus glyph at (cx, cy) with given radius.
func drawPlusIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeLine(dst, cx-r, cy, cx+r, cy, IconStroke, clr, true)
	vector.StrokeLine(dst, cx, cy-r, cx, cy+r, IconStroke, clr, true)
}

// drawCameraIcon draws a simple camera glyph at (cx, cy) with given radius.
func drawCameraIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	// Body
	bw := r * 1.6
	bh := r * 1.1
	vector.StrokeRect(dst, cx-bw/2, cy-bh/2, bw, bh, 1.5, clr, true)
	// Lens
	vector.StrokeCircle(dst, cx, cy, r*0.38, 1.5, clr, true)
	// Viewfinder bump
	vector.StrokeLine(dst, cx-r*0.3, cy-bh/2, cx+r*0.3, cy-bh/2-r*0.25, 1.5, clr, true)
}
