package ui

import (
	"image/color"
	"math"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/leonalonso/storyrail/internal/tween"
)

// Options is the construction-time configuration of a StoryBar. It is copied
// on New and never mutated afterwards. Zero dimensions fall back to the theme
// defaults; missing callbacks and images render nothing.
type Options struct {
	Width        float64 // visible rail width
	Height       float64 // rail (and story card) height
	AddItemWidth float64
	ItemWidth    float64
	ItemMargin   float64
	ItemCount    int

	Background        color.RGBA
	Border            color.RGBA
	IconBackground    color.RGBA
	AddItemBackground color.RGBA

	BorderRadius float64
	IconSize     float64
	CreateLabel  string
	CoverImage   *ebiten.Image

	// RenderItem draws story card i into the given rectangle.
	RenderItem func(dst *ebiten.Image, index int, x, y, w, h float64)
	// OnAdd fires when the create-story control is activated.
	OnAdd func()
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = ScreenWidth
	}
	if o.Height == 0 {
		o.Height = StoryBarHeight
	}
	if o.AddItemWidth == 0 {
		o.AddItemWidth = AddItemWidth
	}
	if o.ItemWidth == 0 {
		o.ItemWidth = StoryItemWidth
	}
	if o.ItemMargin == 0 {
		o.ItemMargin = StoryItemMargin
	}
	if o.BorderRadius == 0 {
		o.BorderRadius = StoryRadius
	}
	if o.IconSize == 0 {
		o.IconSize = IconSize
	}
	var zero color.RGBA
	if o.Background == zero {
		o.Background = ColorBackground
	}
	if o.Border == zero {
		o.Border = ColorBorder
	}
	if o.IconBackground == zero {
		o.IconBackground = ColorIconBackground
	}
	if o.AddItemBackground == zero {
		o.AddItemBackground = ColorCardBackground
	}
	return o
}

// StoryBar is a horizontally scrolling story rail with a leading create-story
// item that morphs into a compact circle as the rail scrolls. All morphing is
// driven by a single progress value derived from the scroll offset.
type StoryBar struct {
	HScrollState

	opts   Options
	mapper ProgressMapper
	add    addItem

	progress float64
	Focused  int // -1 is the add item
	Active   bool

	frame int // frames since creation, drives the pop-in

	baseX, baseY float64 // last draw position, for hit testing
}

// New creates a StoryBar from the given options.
func New(opts Options) *StoryBar {
	opts = opts.withDefaults()
	return &StoryBar{
		opts:    opts,
		add:     newAddItem(opts),
		Focused: -1,
		Active:  true,
	}
}

// ContentWidth is the full width of the rail content at rest.
func (sb *StoryBar) ContentWidth() float64 {
	o := sb.opts
	return o.AddItemWidth + float64(o.ItemCount)*(o.ItemMargin+o.ItemWidth)
}

// MaxScrollExtent is how far the rail can scroll, never negative.
func (sb *StoryBar) MaxScrollExtent() float64 {
	return math.Max(0, sb.ContentWidth()-sb.opts.Width)
}

// Progress returns the current morph progress in [0,1]. Zero means idle.
func (sb *StoryBar) Progress() float64 {
	return sb.progress
}

// ScrollTo jumps the rail to the given offset immediately.
func (sb *StoryBar) ScrollTo(offset float64) {
	sb.HScrollState.ScrollTo(offset, sb.MaxScrollExtent())
	sb.syncProgress()
}

// Reset returns the rail to its idle state.
func (sb *StoryBar) Reset() {
	sb.HScrollState.Reset()
	sb.progress = 0
	sb.Focused = -1
}

// syncProgress recomputes progress from the instantaneous offset.
func (sb *StoryBar) syncProgress() {
	sb.progress = sb.mapper.Progress(sb.OffsetX, sb.MaxScrollExtent())
}

// Update handles one frame of input. Call from the host's Update().
func (sb *StoryBar) Update() {
	sb.frame++
	maxExtent := sb.MaxScrollExtent()

	sb.HandleMouseWheel(maxExtent)
	if dx, dragging := MouseDragDeltaX(); dragging && dx != 0 {
		sb.ScrollBy(-dx, maxExtent)
		sb.OffsetX = sb.TargetOffsetX // dragging tracks the cursor directly
	}

	if sb.Active {
		dir, enter := InputState()
		switch dir {
		case DirLeft:
			if sb.Focused > -1 {
				sb.Focused--
				sb.ensureVisible()
			}
		case DirRight:
			if sb.Focused < sb.opts.ItemCount-1 {
				sb.Focused++
				sb.ensureVisible()
			}
		}
		if enter && sb.Focused == -1 {
			sb.add.button.activate()
		}
	}

	if mx, my, clicked := MouseJustClicked(); clicked {
		sb.handleClick(mx, my)
	}

	sb.syncProgress()
}

// ensureVisible scrolls so the focused story stays in view. Focusing the add
// item returns the rail to rest so the morph unwinds.
func (sb *StoryBar) ensureVisible() {
	o := sb.opts
	if sb.Focused < 0 {
		sb.TargetOffsetX = 0
		return
	}
	itemX := o.AddItemWidth + o.ItemMargin + float64(sb.Focused)*(o.ItemWidth+o.ItemMargin)
	if itemX+o.ItemWidth-sb.TargetOffsetX > o.Width {
		sb.TargetOffsetX = itemX + o.ItemWidth - o.Width + o.ItemMargin
	}
	if itemX-sb.TargetOffsetX < o.AddItemWidth*compactFactor {
		sb.TargetOffsetX = math.Max(0, itemX-o.AddItemWidth-o.ItemMargin)
	}
	sb.TargetOffsetX = tween.Clamp(sb.TargetOffsetX, 0, sb.MaxScrollExtent())
}

func (sb *StoryBar) handleClick(mx, my int) {
	o := sb.opts
	if !PointInRect(mx, my, sb.baseX, sb.baseY, o.Width, o.Height) {
		return
	}
	// The add item occupies its current (morphed) rect at the rail's left edge
	v := sb.add.visualsAt(sb.progress)
	if PointInRect(mx, my, sb.baseX+v.Margin.Left, sb.baseY+v.Margin.Top, v.Size.W, v.Size.H) {
		sb.add.button.activate()
		return
	}
	// Clicking a story card focuses it
	x := float64(mx) - sb.baseX + sb.OffsetX - o.AddItemWidth - o.ItemMargin
	if x >= 0 {
		i := int(x / (o.ItemWidth + o.ItemMargin))
		if i < o.ItemCount {
			sb.Focused = i
		}
	}
}

// Draw renders the rail with its top-left corner at (baseX, baseY).
// Call from the host's Draw().
func (sb *StoryBar) Draw(dst *ebiten.Image, baseX, baseY float64) {
	sb.baseX, sb.baseY = baseX, baseY
	sb.Animate()
	sb.syncProgress()

	o := sb.opts

	// Story cards slide beneath the pinned add item
	for i := 0; i < o.ItemCount; i++ {
		ix := baseX + o.AddItemWidth + o.ItemMargin + float64(i)*(o.ItemWidth+o.ItemMargin) - sb.OffsetX
		if ix+o.ItemWidth < baseX || ix > baseX+o.Width {
			continue
		}

		w, h := o.ItemWidth, o.Height
		// Staggered pop-in on first appearance
		if s := sb.appearScale(i); s < 1 {
			w *= s
			h *= s
		}
		cx := ix + o.ItemWidth/2
		cy := baseY + o.Height/2

		if sb.Active && i == sb.Focused {
			StrokeRoundedRect(dst, cx-w/2-3, cy-h/2-3, w+6, h+6,
				tween.All(o.BorderRadius+3), 2, ColorPrimary)
		}
		if o.RenderItem != nil {
			o.RenderItem(dst, i, cx-w/2, cy-h/2, w, h)
		}
	}

	v := sb.add.draw(dst, baseX, baseY, sb.progress)
	if sb.Active && sb.Focused == -1 {
		StrokeRoundedRect(dst, baseX+v.Margin.Left-3, baseY+v.Margin.Top-3,
			v.Size.W+6, v.Size.H+6, tween.Corners{
				TL: v.Radius.TL + 3, TR: v.Radius.TR + 3,
				BR: v.Radius.BR + 3, BL: v.Radius.BL + 3,
			}, 2, ColorPrimary)
	}
}

// appearScale is the eased pop-in scale for story i, 1 once settled.
func (sb *StoryBar) appearScale(i int) float64 {
	p := tween.Clamp(float64(sb.frame-i*AppearStagger)/AppearFrames, 0, 1)
	return ease.OutQuad(p)
}
