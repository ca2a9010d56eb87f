package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// AddButton is a stateless circular icon button. It owns no state beyond its
// configuration; activation is reported through OnPressed.
type AddButton struct {
	Diameter   float64
	Background color.RGBA
	IconColor  color.RGBA
	OnPressed  func()
}

// Draw renders the button centered at (cx, cy).
func (b AddButton) Draw(dst *ebiten.Image, cx, cy float64) {
	r := float32(b.Diameter / 2)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), r, b.Background, true)
	drawPlusIcon(dst, float32(cx), float32(cy), r*0.45, b.IconColor)
}

// HandleClick invokes OnPressed when (mx, my) falls inside the button circle
// centered at (cx, cy). Reports whether the click was consumed.
func (b AddButton) HandleClick(mx, my int, cx, cy float64) bool {
	r := b.Diameter / 2
	dx := float64(mx) - cx
	dy := float64(my) - cy
	if dx*dx+dy*dy > r*r {
		return false
	}
	b.activate()
	return true
}

func (b AddButton) activate() {
	if b.OnPressed != nil {
		b.OnPressed()
	}
}
