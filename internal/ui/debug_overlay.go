package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws scroll and morph state for the given rail if visible.
func DrawDebugOverlay(screen *ebiten.Image, sb *StoryBar) {
	if !debugOverlayVisible || sb == nil {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	v := sb.add.visualsAt(sb.progress)
	lines := []string{
		"Debug: StoryBar (F12 to close)",
		fmt.Sprintf("offset   %.1f → %.1f", sb.OffsetX, sb.TargetOffsetX),
		fmt.Sprintf("extent   %.1f  threshold %.1f", sb.MaxScrollExtent(), sb.MaxScrollExtent()*ScrollThresholdFraction),
		fmt.Sprintf("progress %.3f", sb.progress),
		fmt.Sprintf("add size %.1f x %.1f  radius %.1f", v.Size.W, v.Size.H, v.Radius.TL),
		fmt.Sprintf("border   w=%.2f  label alpha %.2f", v.BorderWidth, v.LabelAlpha),
		fmt.Sprintf("focused  %d  fps %.0f", sb.Focused, ebiten.ActualFPS()),
	}

	panelH := float64(len(lines))*lineH + padY*2
	panelW := 340.0
	px := float64(ScreenWidth) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	y := py + padY
	DrawText(screen, lines[0], px+padX, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, line := range lines[1:] {
		DrawText(screen, line, px+padX, y, FontSizeSmall, ColorTextOnCard)
		y += lineH
	}
}
