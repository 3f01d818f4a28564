package interaction

import (
	"testing"

	"notesgraph/internal/domain"
	"notesgraph/internal/viewport"

	"github.com/stretchr/testify/assert"
)

func TestPlaceTooltip(t *testing.T) {
	tip := viewport.Size{Width: 200, Height: 80}
	box := viewport.Size{Width: 800, Height: 600}

	tests := []struct {
		name    string
		pointer viewport.Point
		want    viewport.Point
	}{
		{"offset below right", viewport.Point{X: 100, Y: 100}, viewport.Point{X: 115, Y: 115}},
		{"flips left at right edge", viewport.Point{X: 700, Y: 100}, viewport.Point{X: 485, Y: 115}},
		{"flips up at bottom edge", viewport.Point{X: 100, Y: 550}, viewport.Point{X: 115, Y: 455}},
		{"flips both in corner", viewport.Point{X: 790, Y: 590}, viewport.Point{X: 575, Y: 495}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlaceTooltip(tt.pointer, tip, box)
			assert.Equal(t, tt.want, got)

			assert.GreaterOrEqual(t, got.X, 0.0)
			assert.GreaterOrEqual(t, got.Y, 0.0)
			assert.LessOrEqual(t, got.X+tip.Width, box.Width)
			assert.LessOrEqual(t, got.Y+tip.Height, box.Height)
		})
	}

	t.Run("stays inside a cramped container", func(t *testing.T) {
		got := PlaceTooltip(viewport.Point{X: 120, Y: 50}, tip, viewport.Size{Width: 250, Height: 100})
		assert.GreaterOrEqual(t, got.X, 0.0)
		assert.GreaterOrEqual(t, got.Y, 0.0)
	})
}

func TestTooltipContent(t *testing.T) {
	t.Run("falls back to the id", func(t *testing.T) {
		html, err := TooltipContent(domain.NewNode("plain", ""))
		assert.NoError(t, err)
		assert.Equal(t, `<div class="tooltip-title">plain</div>`, html)
	})

	t.Run("escapes markup", func(t *testing.T) {
		n := domain.NewNode("x", `<script>alert(1)</script>`)
		html, err := TooltipContent(n)
		assert.NoError(t, err)
		assert.NotContains(t, html, "<script>")
	})
}

func TestMeasureTooltip(t *testing.T) {
	short := MeasureTooltip(domain.NewNode("a", "A"))
	long := &domain.Node{ID: "b", Title: "B", Description: string(make([]rune, 200)), Tags: []string{"one", "two", "three"}}

	assert.Greater(t, MeasureTooltip(long).Height, short.Height)
	assert.LessOrEqual(t, MeasureTooltip(long).Width, tooltipMaxWidth)
}
