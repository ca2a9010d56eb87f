package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressMapper(t *testing.T) {
	var m ProgressMapper

	tests := []struct {
		name      string
		offset    float64
		maxExtent float64
		want      float64
	}{
		{name: "zero extent guards division", offset: 500, maxExtent: 0, want: 0},
		{name: "negative extent stays idle", offset: 100, maxExtent: -10, want: 0},
		{name: "at rest", offset: 0, maxExtent: 1000, want: 0},
		{name: "half threshold", offset: 100, maxExtent: 1000, want: 0.5},
		{name: "at threshold", offset: 200, maxExtent: 1000, want: 1},
		{name: "past threshold clamps", offset: 500, maxExtent: 1000, want: 1},
		{name: "negative offset clamps", offset: -50, maxExtent: 1000, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Progress(tt.offset, tt.maxExtent))
		})
	}
}

func TestProgressMapperCustomFraction(t *testing.T) {
	m := ProgressMapper{ThresholdFraction: 0.5}
	assert.Equal(t, 0.5, m.Progress(250, 1000))
	assert.Equal(t, 1.0, m.Progress(500, 1000))
}

func TestHScrollStateClamping(t *testing.T) {
	var s HScrollState

	s.ScrollBy(300, 200)
	assert.Equal(t, 200.0, s.TargetOffsetX)

	s.ScrollBy(-500, 200)
	assert.Equal(t, 0.0, s.TargetOffsetX)

	s.ScrollTo(150, 200)
	assert.Equal(t, 150.0, s.OffsetX)
	assert.Equal(t, 150.0, s.TargetOffsetX)

	s.Reset()
	assert.Zero(t, s.OffsetX)
	assert.Zero(t, s.TargetOffsetX)
}

func TestHScrollStateAnimateConverges(t *testing.T) {
	var s HScrollState
	s.TargetOffsetX = 100
	for i := 0; i < 200; i++ {
		s.Animate()
	}
	assert.InDelta(t, 100, s.OffsetX, 0.01)
}
