package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeNodeDataset() *Dataset {
	ds := NewDataset()
	ds.AddNode(NewNode("a", ""))
	ds.AddNode(NewNode("b", ""))
	ds.AddNode(NewNode("c", ""))
	ds.AddLink(NewLink("a", "b"))
	return ds
}

func TestDeriveGraph(t *testing.T) {
	t.Run("counts connections over valid links", func(t *testing.T) {
		g := DeriveGraph(threeNodeDataset())

		assert.Equal(t, 1, g.ConnectionCount("a"))
		assert.Equal(t, 1, g.ConnectionCount("b"))
		assert.Equal(t, 0, g.ConnectionCount("c"))
		assert.Len(t, g.Links, 1)
		assert.Zero(t, g.Dropped)
	})

	t.Run("drops dangling links from links and counts", func(t *testing.T) {
		ds := threeNodeDataset()
		ds.AddLink(NewLink("a", "ghost"))
		ds.AddLink(NewLink("ghost", "c"))

		g := DeriveGraph(ds)

		assert.Len(t, g.Links, 1)
		assert.Equal(t, 2, g.Dropped)
		assert.Equal(t, 1, g.ConnectionCount("a"))
		assert.Equal(t, 0, g.ConnectionCount("c"))
		assert.Equal(t, 0, g.ConnectionCount("ghost"))
	})

	t.Run("self loop counts twice", func(t *testing.T) {
		ds := NewDataset()
		ds.AddNode(NewNode("a", ""))
		ds.AddLink(NewLink("a", "a"))

		g := DeriveGraph(ds)
		assert.Equal(t, 2, g.ConnectionCount("a"))
	})

	t.Run("nil dataset yields empty graph", func(t *testing.T) {
		g := DeriveGraph(nil)
		assert.Empty(t, g.Nodes)
		assert.Empty(t, g.Links)
	})
}

func TestGraphNeighborhood(t *testing.T) {
	ds := threeNodeDataset()
	ds.AddNode(NewNode("d", ""))
	ds.AddLink(NewLink("c", "a"))
	ds.AddLink(NewLink("b", "d"))
	ds.AddLink(NewLink("a", "ghost"))
	g := DeriveGraph(ds)

	hood := g.Neighborhood("a")

	assert.Len(t, hood, 3)
	assert.Contains(t, hood, "a")
	assert.Contains(t, hood, "b")
	assert.Contains(t, hood, "c")
	assert.NotContains(t, hood, "d")
	assert.NotContains(t, hood, "ghost")
}

func TestGraphNode(t *testing.T) {
	g := DeriveGraph(threeNodeDataset())

	n, ok := g.Node("b")
	require.True(t, ok)
	assert.Equal(t, "b", n.ID)

	_, ok = g.Node("missing")
	assert.False(t, ok)
}

func TestGraphStats(t *testing.T) {
	ds := threeNodeDataset()
	ds.AddLink(NewLink("a", "c"))
	ds.AddLink(NewLink("a", "ghost"))

	stats := DeriveGraph(ds).Stats()

	assert.Equal(t, Stats{Nodes: 3, Links: 2, DroppedLinks: 1, Isolated: 0, MaxDegree: 2}, stats)
}

func TestDatasetClone(t *testing.T) {
	ds := threeNodeDataset()
	ds.Nodes[0].X = 42
	ds.Nodes[0].Tags = []string{"x"}
	ds.AddLink(NewWeightedLink("b", "c", 2))

	clone := ds.Clone()

	require.Len(t, clone.Nodes, 3)
	assert.NotSame(t, ds.Nodes[0], clone.Nodes[0])
	assert.Zero(t, clone.Nodes[0].X)
	clone.Nodes[0].Tags[0] = "y"
	assert.Equal(t, "x", ds.Nodes[0].Tags[0])
	*clone.Links[1].Weight = 9
	assert.Equal(t, 2.0, *ds.Links[1].Weight)
}
