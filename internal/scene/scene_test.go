package scene

import (
	"bytes"
	"fmt"
	"testing"

	"notesgraph/internal/domain"
	"notesgraph/internal/theme"
	"notesgraph/internal/viewport"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultOptions = Options{
	NodeRadius:      6,
	NodeRadiusScale: 1.5,
	LabelOffset:     12,
	ShowLabels:      true,
}

func abcDataset() *domain.Dataset {
	ds := domain.NewDataset()
	ds.AddNode(domain.NewNode("a", "Alpha"))
	ds.AddNode(domain.NewNode("b", ""))
	ds.AddNode(domain.NewNode("c", ""))
	ds.AddLink(domain.NewLink("a", "b"))
	return ds
}

func build(ds *domain.Dataset, opts Options) *Scene {
	s := New(opts)
	s.Build(domain.DeriveGraph(ds), "#14b5ff")
	return s
}

func TestBuild(t *testing.T) {
	t.Run("one primitive per node and valid link", func(t *testing.T) {
		s := build(abcDataset(), defaultOptions)

		assert.Len(t, s.Circles(), 3)
		assert.Len(t, s.Lines(), 1)
		assert.Len(t, s.Labels(), 3)
	})

	t.Run("isolated node has the minimum radius", func(t *testing.T) {
		s := build(abcDataset(), defaultOptions)

		a, _ := s.Circle("a")
		b, _ := s.Circle("b")
		c, _ := s.Circle("c")
		assert.Equal(t, 1, a.Connections)
		assert.Equal(t, 1, b.Connections)
		assert.Equal(t, 0, c.Connections)
		assert.Equal(t, 6.0, c.R)
		assert.Equal(t, 7.5, a.R)
		assert.Equal(t, 12.5, s.CollisionRadius(a.Node))
	})

	t.Run("dangling link is not rendered or counted", func(t *testing.T) {
		ds := abcDataset()
		ds.AddLink(domain.NewLink("c", "ghost"))
		s := build(ds, defaultOptions)

		assert.Len(t, s.Lines(), 1)
		c, _ := s.Circle("c")
		assert.Zero(t, c.Connections)
	})

	t.Run("colour and stroke width", func(t *testing.T) {
		ds := domain.NewDataset()
		red := domain.NewNode("r", "")
		red.Color = "#ff0000"
		ds.AddNode(red)
		ds.AddNode(domain.NewNode("d", ""))
		ds.AddLink(domain.NewWeightedLink("r", "d", 3))
		ds.AddLink(domain.NewLink("d", "r"))

		s := build(ds, defaultOptions)
		r, _ := s.Circle("r")
		d, _ := s.Circle("d")
		assert.Equal(t, "#ff0000", r.Fill)
		assert.Equal(t, "#14b5ff", d.Fill)
		assert.Equal(t, 3.0, s.Lines()[0].StrokeWidth)
		assert.Equal(t, 1.0, s.Lines()[1].StrokeWidth)
	})

	t.Run("labels sit below the node", func(t *testing.T) {
		s := build(abcDataset(), defaultOptions)
		a, _ := s.Label("a")
		c, _ := s.Label("c")
		assert.Equal(t, "Alpha", a.Text)
		assert.Equal(t, "c", c.Text)
		assert.Equal(t, 7.5+12, a.DY)
	})

	t.Run("labels can be disabled", func(t *testing.T) {
		opts := defaultOptions
		opts.ShowLabels = false
		s := build(abcDataset(), opts)
		assert.Empty(t, s.Labels())
	})

	t.Run("rebuild replaces every primitive", func(t *testing.T) {
		s := build(abcDataset(), defaultOptions)
		ds := domain.NewDataset()
		ds.AddNode(domain.NewNode("z", ""))
		s.Build(domain.DeriveGraph(ds), "")

		assert.Len(t, s.Circles(), 1)
		assert.Empty(t, s.Lines())
		_, ok := s.Circle("a")
		assert.False(t, ok)
	})
}

func TestUpdateFollowsPositions(t *testing.T) {
	ds := abcDataset()
	s := build(ds, defaultOptions)

	ds.Nodes[0].X, ds.Nodes[0].Y = 10, 20
	ds.Nodes[1].Pin.Hold(50, 60)
	s.Update()
	s.Update()

	a, _ := s.Circle("a")
	b, _ := s.Circle("b")
	assert.Equal(t, 10.0, a.CX)
	assert.Equal(t, 50.0, b.CX)
	assert.True(t, b.Pinned)

	l := s.Lines()[0]
	assert.Equal(t, [4]float64{10, 20, 50, 60}, [4]float64{l.X1, l.Y1, l.X2, l.Y2})

	lbl, _ := s.Label("a")
	assert.Equal(t, 20.0, lbl.Y)
}

func TestBoundsAndExtent(t *testing.T) {
	ds := domain.NewDataset()
	ds.AddNode(domain.NewNode("x", ""))
	opts := defaultOptions
	opts.ShowLabels = false
	s := build(ds, opts)

	ds.Nodes[0].X, ds.Nodes[0].Y = 100, 100
	s.Update()

	assert.Equal(t, viewport.Rect{X: 94, Y: 94, Width: 12, Height: 12}, s.Bounds())
	ext := s.CenterExtent()
	assert.Zero(t, ext.Width)
	assert.Zero(t, ext.Height)

	assert.True(t, New(opts).Bounds().Degenerate())
}

func TestWriteSVG(t *testing.T) {
	ds := abcDataset()
	ds.Nodes[2].Title = `<c & d>`
	s := build(ds, defaultOptions)
	a, _ := s.Circle("a")
	a.Highlighted = true
	c, _ := s.Circle("c")
	c.Dimmed = true

	var buf bytes.Buffer
	require.NoError(t, s.WriteSVG(&buf, viewport.Transform{X: 5, Y: 6, K: 2}, viewport.Size{Width: 800, Height: 600}, theme.Dark.Palette()))

	out := buf.String()
	assert.Contains(t, out, `<g transform="translate(5,6) scale(2)">`)
	assert.Contains(t, out, `<g class="links">`)
	assert.Contains(t, out, `class="node highlighted" data-id="a"`)
	assert.Contains(t, out, `class="node dimmed" data-id="c"`)
	assert.Contains(t, out, `&lt;c &amp; d&gt;`)
	assert.NotContains(t, out, `<c & d>`)
}

func TestRenderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("radius is non-decreasing in connection count", prop.ForAll(
		func(a, b int) bool {
			if a > b {
				a, b = b, a
			}
			return defaultOptions.Radius(a) <= defaultOptions.Radius(b)
		},
		gen.IntRange(0, 10000),
		gen.IntRange(0, 10000),
	))

	properties.Property("radius strictly grows from zero connections", prop.ForAll(
		func(n int) bool {
			return defaultOptions.Radius(n) > defaultOptions.Radius(0)
		},
		gen.IntRange(1, 10000),
	))

	properties.Property("rendered links only join rendered nodes", prop.ForAll(
		func(nodeCount int, pairs []int) bool {
			ds := domain.NewDataset()
			for i := 0; i < nodeCount; i++ {
				ds.AddNode(domain.NewNode(fmt.Sprintf("n%d", i), ""))
			}
			// endpoints range past nodeCount so some links dangle
			for i := 0; i+1 < len(pairs); i += 2 {
				ds.AddLink(domain.NewLink(fmt.Sprintf("n%d", pairs[i]), fmt.Sprintf("n%d", pairs[i+1])))
			}

			s := build(ds, defaultOptions)
			for _, l := range s.Lines() {
				if _, ok := s.Circle(l.SourceID); !ok {
					return false
				}
				if _, ok := s.Circle(l.TargetID); !ok {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 12),
		gen.SliceOf(gen.IntRange(0, 20)),
	))

	properties.TestingRun(t)
}
