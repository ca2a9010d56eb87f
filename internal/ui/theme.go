package ui

import "image/color"

// Colors — light theme in the style of social story rails
var (
	ColorBackground     = color.RGBA{R: 0xF0, G: 0xF2, B: 0xF5, A: 0xFF}
	ColorSurface        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorCardBackground = color.RGBA{R: 0xE4, G: 0xE6, B: 0xEB, A: 0xFF}
	ColorPrimary        = color.RGBA{R: 0x18, G: 0x77, B: 0xF2, A: 0xFF} // accent blue
	ColorIconBackground = color.RGBA{R: 0x18, G: 0x77, B: 0xF2, A: 0xFF}
	ColorBorder         = color.RGBA{R: 0x18, G: 0x77, B: 0xF2, A: 0xFF}
	ColorText           = color.RGBA{R: 0x05, G: 0x05, B: 0x05, A: 0xFF}
	ColorTextSecondary  = color.RGBA{R: 0x65, G: 0x67, B: 0x6B, A: 0xFF}
	ColorTextOnCard     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorOverlay        = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
)

// Layout constants
const (
	StoryBarHeight  = 190
	StoryItemWidth  = 110
	AddItemWidth    = 110
	StoryItemMargin = 8
	StoryRadius     = 14

	IconSize   = 34
	IconStroke = 2.5
	AddBorderW = 2.0
	LabelPad   = 10

	FontSizeTitle   = 24
	FontSizeBody    = 15
	FontSizeSmall   = 13
	FontSizeCaption = 12

	ScrollAnimSpeed  = 0.18
	ScrollWheelSpeed = 40

	AppearFrames  = 14 // per-item pop-in duration
	AppearStagger = 3  // frames between successive pop-ins

	ScreenWidth  = 960
	ScreenHeight = 540
)
