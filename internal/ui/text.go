package ui

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	fontSource *text.GoTextFaceSource
	fontFaces  map[float64]*text.GoTextFace
)

func InitFonts(ttfData []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return err
	}
	fontSource = src
	fontFaces = make(map[float64]*text.GoTextFace)
	return nil
}

func GetFace(size float64) *text.GoTextFace {
	if face, ok := fontFaces[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source: fontSource,
		Size:   size,
	}
	fontFaces[size] = face
	return face
}

func DrawText(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color) {
	DrawTextAlpha(dst, txt, x, y, size, clr, 1)
}

// DrawTextAlpha draws text with an additional opacity multiplier in [0,1].
// Zero alpha skips the draw entirely.
func DrawTextAlpha(dst *ebiten.Image, txt string, x, y float64, size float64, clr color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	face := GetFace(size)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, txt, face, op)
}

func DrawTextCentered(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color) {
	face := GetFace(size)
	w, h := text.Measure(txt, face, 0)
	DrawText(dst, txt, cx-w/2, cy-h/2, size, clr)
}

// DrawTextCenteredAlpha draws centered text with an opacity multiplier.
func DrawTextCenteredAlpha(dst *ebiten.Image, txt string, cx, cy float64, size float64, clr color.Color, alpha float64) {
	face := GetFace(size)
	w, h := text.Measure(txt, face, 0)
	DrawTextAlpha(dst, txt, cx-w/2, cy-h/2, size, clr, alpha)
}

func MeasureText(txt string, size float64) (float64, float64) {
	return text.Measure(txt, GetFace(size), 0)
}

func truncateText(s string, maxWidth float64, fontSize float64) string {
	w, _ := MeasureText(s, fontSize)
	if w <= maxWidth {
		return s
	}
	for i := len(s) - 1; i > 0; i-- {
		candidate := s[:i] + "…"
		w, _ = MeasureText(candidate, fontSize)
		if w <= maxWidth {
			return candidate
		}
	}
	return "…"
}
