package ui

import "github.com/leonalonso/storyrail/internal/tween"

// ScrollThresholdFraction is the fraction of the maximum scroll extent over
// which the add-item morph completes.
const ScrollThresholdFraction = 0.2

// ProgressMapper normalizes a horizontal scroll offset into a morph progress
// value in [0,1]. The zero value uses ScrollThresholdFraction.
type ProgressMapper struct {
	ThresholdFraction float64
}

// Progress maps the instantaneous scroll offset to [0,1]. A non-positive
// threshold (empty or non-scrollable content) pins progress at 0.
func (m ProgressMapper) Progress(offset, maxExtent float64) float64 {
	f := m.ThresholdFraction
	if f == 0 {
		f = ScrollThresholdFraction
	}
	threshold := maxExtent * f
	if threshold <= 0 {
		return 0
	}
	return tween.Clamp(offset/threshold, 0, 1)
}

// HScrollState provides reusable horizontal scroll tracking with smooth
// animation. Embed this struct in widgets that scroll sideways.
type HScrollState struct {
	OffsetX       float64
	TargetOffsetX float64
}

// HandleMouseWheel updates the target offset from mouse wheel input.
// Horizontal wheel movement scrolls directly; vertical movement is treated as
// horizontal so regular wheels work too. Call this from Update().
func (s *HScrollState) HandleMouseWheel(maxExtent float64) {
	wx, wy := MouseWheelDelta()
	d := wx
	if d == 0 {
		d = wy
	}
	if d != 0 {
		s.ScrollBy(-d*ScrollWheelSpeed, maxExtent)
	}
}

// ScrollBy moves the target offset by delta, clamped to [0, maxExtent].
func (s *HScrollState) ScrollBy(delta, maxExtent float64) {
	s.TargetOffsetX = tween.Clamp(s.TargetOffsetX+delta, 0, maxExtent)
}

// ScrollTo jumps both the current and target offsets, clamped to [0, maxExtent].
func (s *HScrollState) ScrollTo(offset, maxExtent float64) {
	offset = tween.Clamp(offset, 0, maxExtent)
	s.OffsetX = offset
	s.TargetOffsetX = offset
}

// Animate performs smooth scroll interpolation. Call this once per Draw().
func (s *HScrollState) Animate() {
	s.OffsetX = Lerp(s.OffsetX, s.TargetOffsetX, ScrollAnimSpeed)
}

// Reset sets scroll position back to the start.
func (s *HScrollState) Reset() {
	s.OffsetX = 0
	s.TargetOffsetX = 0
}
