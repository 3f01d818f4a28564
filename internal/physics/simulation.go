// Package physics is the force simulation that places nodes. It is the
// widget's physics engine: callers hand it nodes and links, adjust its energy
// (alpha) and read positions back from the nodes after each tick.
//
// A Simulation is not safe for concurrent use; the widget serialises access.
package physics

import (
	"math"
	"math/rand/v2"

	"notesgraph/internal/domain"
)

const (
	defaultAlphaMin      = 0.001
	defaultVelocityDecay = 0.4
	initialRadius        = 10.0
	distanceMin2         = 1.0
)

var initialAngle = math.Pi * (3 - math.Sqrt(5))

// Config holds the force parameters
type Config struct {
	LinkDistance   float64
	ChargeStrength float64
	CenterX        float64
	CenterY        float64

	// CollisionRadius returns the radius a node keeps clear around itself.
	// Nil disables collision.
	CollisionRadius func(*domain.Node) float64

	// Seed makes jiggle deterministic
	Seed uint64
}

type spring struct {
	source   *domain.Node
	target   *domain.Node
	strength float64
	bias     float64
}

// Simulation runs link, charge, center and collision forces over a node set
type Simulation struct {
	nodes   []*domain.Node
	springs []spring
	cfg     Config

	alpha         float64
	alphaMin      float64
	alphaDecay    float64
	alphaTarget   float64
	velocityDecay float64

	running bool
	ticks   int
	onTick  func()
	rng     *rand.Rand
}

// New creates a simulation over nodes, wiring a spring for every link whose
// endpoints are present. Nodes still at the origin get a phyllotaxis
// starting position.
func New(nodes []*domain.Node, links []domain.Link, cfg Config) *Simulation {
	s := &Simulation{
		nodes:         nodes,
		cfg:           cfg,
		alpha:         1,
		alphaMin:      defaultAlphaMin,
		alphaDecay:    1 - math.Pow(defaultAlphaMin, 1.0/300),
		velocityDecay: 1 - defaultVelocityDecay,
		running:       true,
		rng:           rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}

	s.placeNodes()
	s.buildSprings(links)
	return s
}

func (s *Simulation) placeNodes() {
	for i, n := range s.nodes {
		if n.X != 0 || n.Y != 0 || n.VX != 0 || n.VY != 0 {
			continue
		}
		radius := initialRadius * math.Sqrt(0.5+float64(i))
		angle := float64(i) * initialAngle
		n.X = radius * math.Cos(angle)
		n.Y = radius * math.Sin(angle)
	}
}

func (s *Simulation) buildSprings(links []domain.Link) {
	index := make(map[string]*domain.Node, len(s.nodes))
	for _, n := range s.nodes {
		index[n.ID] = n
	}

	count := make(map[*domain.Node]int)
	for _, l := range links {
		src, ok1 := index[l.Source]
		dst, ok2 := index[l.Target]
		if !ok1 || !ok2 {
			continue
		}
		s.springs = append(s.springs, spring{source: src, target: dst})
		count[src]++
		count[dst]++
	}

	for i := range s.springs {
		sp := &s.springs[i]
		cs, ct := float64(count[sp.source]), float64(count[sp.target])
		sp.strength = 1 / math.Min(cs, ct)
		sp.bias = cs / (cs + ct)
	}
}

// Nodes returns the simulated nodes
func (s *Simulation) Nodes() []*domain.Node {
	return s.nodes
}

// Alpha returns the current energy
func (s *Simulation) Alpha() float64 {
	return s.alpha
}

// SetAlpha sets the current energy
func (s *Simulation) SetAlpha(alpha float64) {
	s.alpha = math.Max(0, math.Min(1, alpha))
}

// AlphaTarget returns the energy the simulation decays towards
func (s *Simulation) AlphaTarget() float64 {
	return s.alphaTarget
}

// SetAlphaTarget sets the energy the simulation decays towards
func (s *Simulation) SetAlphaTarget(target float64) {
	s.alphaTarget = math.Max(0, math.Min(1, target))
}

// SetCenter moves the center force target
func (s *Simulation) SetCenter(x, y float64) {
	s.cfg.CenterX = x
	s.cfg.CenterY = y
}

// Center returns the center force target
func (s *Simulation) Center() (x, y float64) {
	return s.cfg.CenterX, s.cfg.CenterY
}

// OnTick replaces the tick listener. Listeners run from Step, not Tick.
func (s *Simulation) OnTick(fn func()) {
	s.onTick = fn
}

// Restart marks the simulation as running again
func (s *Simulation) Restart() {
	s.running = true
}

// Stop halts the simulation; Step becomes a no-op until Restart
func (s *Simulation) Stop() {
	s.running = false
}

// Running reports whether Step will advance the simulation
func (s *Simulation) Running() bool {
	return s.running
}

// Ticks returns how many ticks have run
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Step advances one tick if the simulation is running, notifies the tick
// listener and stops once alpha has cooled below its minimum. It reports
// whether a tick ran.
func (s *Simulation) Step() bool {
	if !s.running {
		return false
	}
	s.Tick()
	if s.onTick != nil {
		s.onTick()
	}
	if s.alpha < s.alphaMin {
		s.running = false
	}
	return true
}

// Tick advances the simulation by one step without notifying listeners
func (s *Simulation) Tick() {
	s.ticks++
	s.alpha += (s.alphaTarget - s.alpha) * s.alphaDecay

	s.applyLinks()
	s.applyCharge()
	s.applyCenter()
	s.applyCollision()

	for _, n := range s.nodes {
		if n.Pin.Held() {
			n.X, n.Y = n.Pin.X, n.Pin.Y
			n.VX, n.VY = 0, 0
			continue
		}
		n.VX *= s.velocityDecay
		n.VY *= s.velocityDecay
		n.X += n.VX
		n.Y += n.VY
	}
}

func (s *Simulation) jiggle() float64 {
	return (s.rng.Float64() - 0.5) * 1e-6
}
