package icon

import (
	"image"
	"image/color"
	"math"
)

// Theme colors from the app
var (
	accentBlue = color.RGBA{R: 0x18, G: 0x77, B: 0xF2, A: 0xFF}
	cardGrey   = color.RGBA{R: 0xE4, G: 0xE6, B: 0xEB, A: 0xFF}
	lightBG    = color.RGBA{R: 0xF0, G: 0xF2, B: 0xF5, A: 0xFF}
	plusWhite  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, lightBG)

	// Story card
	fillRoundedRect(img, s*0.14, s*0.08, s*0.72, s*0.84, s*0.12, cardGrey)

	// Plus badge at the lower center of the card
	cx := s * 0.5
	cy := s * 0.68
	r := s * 0.17
	fillCircle(img, cx, cy, r, accentBlue)
	drawPlus(img, cx, cy, r*0.55, math.Max(1, s*0.04), plusWhite)

	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			img.SetRGBA(px, py, c)
		}
	}
}

func fillRoundedRect(img *image.RGBA, x, y, w, h, r float64, c color.RGBA) {
	for py := int(y); py < int(y+h); py++ {
		for px := int(x); px < int(x+w); px++ {
			fx, fy := float64(px), float64(py)
			// Corner distance check
			inX := fx >= x+r && fx < x+w-r
			inY := fy >= y+r && fy < y+h-r
			if inX || inY {
				img.SetRGBA(px, py, c)
				continue
			}
			ccx := x + r
			if fx >= x+w-r {
				ccx = x + w - r
			}
			ccy := y + r
			if fy >= y+h-r {
				ccy = y + h - r
			}
			if (fx-ccx)*(fx-ccx)+(fy-ccy)*(fy-ccy) <= r*r {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	for py := int(cy - r); py <= int(cy+r); py++ {
		for px := int(cx - r); px <= int(cx+r); px++ {
			dx := float64(px) - cx
			dy := float64(py) - cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(px, py, c)
			}
		}
	}
}

func drawPlus(img *image.RGBA, cx, cy, arm, thick float64, c color.RGBA) {
	fillRect(img, int(cx-arm), int(cy-thick/2), int(arm*2), int(math.Max(1, thick)), c)
	fillRect(img, int(cx-thick/2), int(cy-arm), int(math.Max(1, thick)), int(arm*2), c)
}
