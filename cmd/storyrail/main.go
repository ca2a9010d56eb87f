package main

import (
	"image/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/leonalonso/storyrail/assets/icon"
	"github.com/leonalonso/storyrail/internal/app"
	"github.com/leonalonso/storyrail/internal/config"
	"github.com/leonalonso/storyrail/internal/tween"
	"github.com/leonalonso/storyrail/internal/ui"
)

var demoNames = []string{
	"Ana", "Bruno", "Carla", "Diego", "Elena", "Felipe",
	"Gabi", "Hugo", "Iris", "João", "Karen", "Luca",
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	if err := ui.InitFonts(goregular.TTF); err != nil {
		logger.Fatal("init fonts", "err", err)
	}

	theme, err := parseTheme(cfg.Theme)
	if err != nil {
		logger.Fatal("parse theme", "err", err)
	}

	avatars := avatarPalette(cfg.StoryBar.ItemCount)

	bar := ui.New(ui.Options{
		Width:        float64(cfg.UI.Width) - 80,
		Height:       cfg.StoryBar.Height,
		AddItemWidth: cfg.StoryBar.AddItemWidth,
		ItemWidth:    cfg.StoryBar.ItemWidth,
		ItemMargin:   cfg.StoryBar.ItemMargin,
		ItemCount:    cfg.StoryBar.ItemCount,

		Background:        theme.background,
		Border:            theme.border,
		IconBackground:    theme.iconBackground,
		AddItemBackground: theme.addItemBackground,

		BorderRadius: cfg.StoryBar.BorderRadius,
		IconSize:     cfg.StoryBar.IconSize,
		CreateLabel:  cfg.StoryBar.CreateLabel,

		RenderItem: func(dst *ebiten.Image, i int, x, y, w, h float64) {
			drawStoryCard(dst, i, x, y, w, h, avatars[i%len(avatars)], cfg.StoryBar.BorderRadius)
		},
		OnAdd: func() {
			logger.Info("create story tapped")
		},
	})

	game := app.NewGame(cfg, bar, theme.background, logger)

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("storyrail")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	logger.Info("starting", "items", cfg.StoryBar.ItemCount, "size", cfg.UI.Width)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run", "err", err)
	}
}

type themeColors struct {
	background        color.RGBA
	border            color.RGBA
	iconBackground    color.RGBA
	addItemBackground color.RGBA
}

func parseTheme(t config.ThemeConfig) (themeColors, error) {
	var tc themeColors
	var err error
	if tc.background, err = config.ParseColor(t.Background); err != nil {
		return tc, err
	}
	if tc.border, err = config.ParseColor(t.Border); err != nil {
		return tc, err
	}
	if tc.iconBackground, err = config.ParseColor(t.IconBackground); err != nil {
		return tc, err
	}
	if tc.addItemBackground, err = config.ParseColor(t.AddItemBackground); err != nil {
		return tc, err
	}
	return tc, nil
}

// avatarPalette generates n evenly spaced pastel avatar colors.
func avatarPalette(n int) []color.RGBA {
	if n <= 0 {
		n = 1
	}
	out := make([]color.RGBA, n)
	for i := range out {
		c := colorful.Hsv(float64(i)*360/float64(n), 0.55, 0.85)
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 0xFF}
	}
	return out
}

// drawStoryCard renders one demo story: a tinted card with a ringed avatar
// circle and the person's name along the bottom.
func drawStoryCard(dst *ebiten.Image, i int, x, y, w, h float64, avatar color.RGBA, radius float64) {
	// Card body, darkened flavor of the avatar color
	body := color.RGBA{R: avatar.R / 2, G: avatar.G / 2, B: avatar.B / 2, A: 0xFF}
	ui.FillRoundedRect(dst, x, y, w, h, tween.All(radius), body)

	// Avatar with story ring
	cx := x + w/2
	cy := y + h*0.38
	ui.FillRoundedRect(dst, cx-w*0.22-3, cy-w*0.22-3, w*0.44+6, w*0.44+6, tween.All(w*0.22+3), ui.ColorPrimary)
	ui.FillRoundedRect(dst, cx-w*0.22, cy-w*0.22, w*0.44, w*0.44, tween.All(w*0.22), avatar)

	name := demoNames[i%len(demoNames)]
	ui.DrawTextCentered(dst, name, cx, y+h-16, ui.FontSizeCaption, ui.ColorTextOnCard)
}
