package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Direction represents a navigation direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// InputState returns the current navigation direction and action keys pressed this frame.
func InputState() (dir Direction, enter bool) {
	if inputRepeating(ebiten.KeyArrowLeft) {
		dir = DirLeft
	} else if inputRepeating(ebiten.KeyArrowRight) {
		dir = DirRight
	}
	enter = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	return
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true // just pressed this frame
	}
	// Key held — check repeat timing
	if frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0 {
		return true
	}
	return false
}

// MouseJustClicked returns the cursor position and whether the left mouse button was just clicked.
func MouseJustClicked() (x, y int, clicked bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		clicked = true
	}
	return
}

// MouseDragDeltaX reports the horizontal cursor movement while the left button
// is held, for drag scrolling.
func MouseDragDeltaX() (dx float64, dragging bool) {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		lastDragX = -1
		return 0, false
	}
	x, _ := ebiten.CursorPosition()
	if lastDragX >= 0 {
		dx = float64(x - lastDragX)
	}
	lastDragX = x
	return dx, true
}

var lastDragX = -1

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// Lerp for smooth scrolling
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
