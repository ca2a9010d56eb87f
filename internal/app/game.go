package app

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/leonalonso/storyrail/internal/config"
	"github.com/leonalonso/storyrail/internal/ui"
)

// Game implements ebiten.Game and hosts the story rail demo.
type Game struct {
	Config *config.Config
	Bar    *ui.StoryBar

	Width, Height int
	Background    color.RGBA

	logger *log.Logger
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config, bar *ui.StoryBar, bg color.RGBA, logger *log.Logger) *Game {
	return &Game{
		Config:     cfg,
		Bar:        bar,
		Width:      cfg.UI.Width,
		Height:     cfg.UI.Height,
		Background: bg,
		logger:     logger,
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	// R returns the rail to rest
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Bar.Reset()
		g.logger.Debug("rail reset")
	}

	g.Bar.Update()

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Background)

	ui.DrawText(screen, "Stories", 40, 24, ui.FontSizeTitle, ui.ColorText)
	ui.DrawText(screen, "scroll or drag — F12 debug", float64(g.Width)-260, 34, ui.FontSizeSmall, ui.ColorTextSecondary)

	g.Bar.Draw(screen, 40, 80)

	ui.DrawDebugOverlay(screen, g.Bar)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
