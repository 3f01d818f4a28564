package physics

import (
	"math"
	"testing"

	"notesgraph/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNodes(ids ...string) []*domain.Node {
	nodes := make([]*domain.Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, domain.NewNode(id, ""))
	}
	return nodes
}

func testConfig() Config {
	return Config{
		LinkDistance:   80,
		ChargeStrength: -200,
		CenterX:        400,
		CenterY:        300,
		CollisionRadius: func(*domain.Node) float64 {
			return 11
		},
		Seed: 1,
	}
}

func TestNewPlacesNodes(t *testing.T) {
	t.Run("spreads nodes at the origin", func(t *testing.T) {
		nodes := testNodes("a", "b", "c")
		New(nodes, nil, testConfig())

		seen := map[[2]float64]bool{}
		for _, n := range nodes {
			key := [2]float64{n.X, n.Y}
			assert.False(t, seen[key], "node %s shares a starting position", n.ID)
			seen[key] = true
		}
	})

	t.Run("keeps existing positions", func(t *testing.T) {
		nodes := testNodes("a")
		nodes[0].X, nodes[0].Y = 12, 34
		New(nodes, nil, testConfig())

		assert.Equal(t, 12.0, nodes[0].X)
		assert.Equal(t, 34.0, nodes[0].Y)
	})
}

func TestSimulationCoolsDown(t *testing.T) {
	nodes := testNodes("a", "b", "c")
	sim := New(nodes, []domain.Link{domain.NewLink("a", "b")}, testConfig())

	calls := 0
	sim.OnTick(func() { calls++ })

	for i := 0; i < 1000 && sim.Step(); i++ {
	}

	assert.False(t, sim.Running())
	assert.Less(t, sim.Alpha(), 0.001)
	assert.Equal(t, sim.Ticks(), calls)
	assert.LessOrEqual(t, sim.Ticks(), 400)

	assert.False(t, sim.Step(), "a stopped simulation does not tick")
}

func TestSimulationCentersLayout(t *testing.T) {
	nodes := testNodes("a", "b", "c", "d")
	sim := New(nodes, []domain.Link{domain.NewLink("a", "b"), domain.NewLink("c", "d")}, testConfig())
	for sim.Step() {
	}

	var mx, my float64
	for _, n := range nodes {
		mx += n.X
		my += n.Y
	}
	mx /= float64(len(nodes))
	my /= float64(len(nodes))

	assert.InDelta(t, 400, mx, 1)
	assert.InDelta(t, 300, my, 1)
}

func TestSimulationSeparatesNodes(t *testing.T) {
	nodes := testNodes("a", "b", "c", "d", "e")
	sim := New(nodes, nil, testConfig())
	for sim.Step() {
	}

	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			d := math.Hypot(nodes[i].X-nodes[j].X, nodes[i].Y-nodes[j].Y)
			assert.Greater(t, d, 22.0, "%s and %s overlap", nodes[i].ID, nodes[j].ID)
		}
	}
}

func TestSimulationRespectsPins(t *testing.T) {
	nodes := testNodes("a", "b")
	sim := New(nodes, []domain.Link{domain.NewLink("a", "b")}, testConfig())

	nodes[0].Pin.Hold(50, 60)
	for i := 0; i < 10; i++ {
		sim.Tick()
	}
	require.Equal(t, 50.0, nodes[0].X)
	require.Equal(t, 60.0, nodes[0].Y)
	assert.Zero(t, nodes[0].VX)

	nodes[0].Pin.Release()
	sim.SetAlpha(1)
	sim.Tick()
	assert.False(t, nodes[0].X == 50 && nodes[0].Y == 60, "released node should move again")
}

func TestSimulationEnergy(t *testing.T) {
	sim := New(testNodes("a"), nil, testConfig())

	sim.SetAlphaTarget(0.3)
	assert.Equal(t, 0.3, sim.AlphaTarget())

	sim.SetAlpha(2)
	assert.Equal(t, 1.0, sim.Alpha())

	sim.Stop()
	assert.False(t, sim.Running())
	sim.Restart()
	assert.True(t, sim.Running())

	sim.SetCenter(10, 20)
	x, y := sim.Center()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
}

func TestSpringsSkipMissingEndpoints(t *testing.T) {
	sim := New(testNodes("a", "b"), []domain.Link{
		domain.NewLink("a", "b"),
		domain.NewLink("a", "ghost"),
	}, testConfig())

	require.Len(t, sim.springs, 1)
	assert.Equal(t, 1.0, sim.springs[0].strength)
	assert.Equal(t, 0.5, sim.springs[0].bias)
}
