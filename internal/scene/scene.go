// Package scene turns a derived graph into visual primitives (one circle
// per node, one line per valid link, optional labels) and keeps them bound
// to simulation positions.
package scene

import (
	"math"

	"notesgraph/internal/domain"
	"notesgraph/internal/viewport"
)

// CollisionMargin is added to a node's radius to get its collision radius
const CollisionMargin = 5.0

const (
	labelFontSize  = 11.0
	labelCharWidth = 0.6 // of the font size
)

// Options are the render parameters
type Options struct {
	NodeRadius      float64
	NodeRadiusScale float64
	LabelOffset     float64
	ShowLabels      bool
}

// Radius is the node radius for a connection count
func (o Options) Radius(connections int) float64 {
	return o.NodeRadius + math.Sqrt(float64(connections))*o.NodeRadiusScale
}

// Marks hold the hover state classes of a primitive
type Marks struct {
	Highlighted bool `json:"highlighted,omitempty"`
	Dimmed      bool `json:"dimmed,omitempty"`
}

// Circle is the shape drawn for a node
type Circle struct {
	Node *domain.Node `json:"-"`

	ID          string  `json:"id"`
	CX          float64 `json:"cx"`
	CY          float64 `json:"cy"`
	R           float64 `json:"r"`
	Fill        string  `json:"fill"`
	Connections int     `json:"connections"`
	Pinned      bool    `json:"pinned,omitempty"`
	Marks
}

// Line is the shape drawn for a link
type Line struct {
	Source *domain.Node `json:"-"`
	Target *domain.Node `json:"-"`

	Key         string  `json:"key"`
	SourceID    string  `json:"source"`
	TargetID    string  `json:"target"`
	X1          float64 `json:"x1"`
	Y1          float64 `json:"y1"`
	X2          float64 `json:"x2"`
	Y2          float64 `json:"y2"`
	StrokeWidth float64 `json:"stroke_width"`
	Marks
}

// Label is the text drawn under a node
type Label struct {
	Node *domain.Node `json:"-"`

	ID     string  `json:"id"`
	Text   string  `json:"text"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	DY     float64 `json:"dy"`
	Dimmed bool    `json:"dimmed,omitempty"`
}

// Scene owns the primitives for one rendered dataset
type Scene struct {
	opts  Options
	graph *domain.Graph

	circles []*Circle
	lines   []*Line
	labels  []*Label

	circleByID map[string]*Circle
	labelByID  map[string]*Label
}

// New creates an empty scene
func New(opts Options) *Scene {
	return &Scene{
		opts:       opts,
		graph:      domain.DeriveGraph(nil),
		circleByID: make(map[string]*Circle),
		labelByID:  make(map[string]*Label),
	}
}

// Options returns the render parameters
func (s *Scene) Options() Options {
	return s.opts
}

// Build clears every primitive and rebuilds them from g. Nodes without a
// colour get defaultColor.
func (s *Scene) Build(g *domain.Graph, defaultColor string) {
	s.Clear()
	s.graph = g

	for i, l := range g.Links {
		src, _ := g.Node(l.Source)
		dst, _ := g.Node(l.Target)
		s.lines = append(s.lines, &Line{
			Source:      src,
			Target:      dst,
			Key:         l.Key(i),
			SourceID:    l.Source,
			TargetID:    l.Target,
			StrokeWidth: l.EffectiveWeight(),
		})
	}

	for _, n := range g.Nodes {
		count := g.ConnectionCount(n.ID)
		fill := n.Color
		if fill == "" {
			fill = defaultColor
		}
		c := &Circle{
			Node:        n,
			ID:          n.ID,
			R:           s.opts.Radius(count),
			Fill:        fill,
			Connections: count,
		}
		s.circles = append(s.circles, c)
		s.circleByID[n.ID] = c

		if s.opts.ShowLabels {
			lbl := &Label{
				Node: n,
				ID:   n.ID,
				Text: n.DisplayName(),
				DY:   c.R + s.opts.LabelOffset,
			}
			s.labels = append(s.labels, lbl)
			s.labelByID[n.ID] = lbl
		}
	}

	s.Update()
}

// Clear removes every primitive
func (s *Scene) Clear() {
	s.graph = domain.DeriveGraph(nil)
	s.circles = nil
	s.lines = nil
	s.labels = nil
	s.circleByID = make(map[string]*Circle)
	s.labelByID = make(map[string]*Label)
}

// Update copies node positions into every primitive. It is idempotent.
func (s *Scene) Update() {
	for _, c := range s.circles {
		c.CX, c.CY = c.Node.Position()
		c.Pinned = c.Node.Pin.Held()
	}
	for _, l := range s.lines {
		l.X1, l.Y1 = l.Source.Position()
		l.X2, l.Y2 = l.Target.Position()
	}
	for _, lbl := range s.labels {
		lbl.X, lbl.Y = lbl.Node.Position()
	}
}

// Graph returns the derived graph the scene was built from
func (s *Scene) Graph() *domain.Graph {
	return s.graph
}

// Empty reports whether the scene has no nodes
func (s *Scene) Empty() bool {
	return len(s.circles) == 0
}

// Circles returns the node primitives
func (s *Scene) Circles() []*Circle {
	return s.circles
}

// Lines returns the link primitives
func (s *Scene) Lines() []*Line {
	return s.lines
}

// Labels returns the label primitives; empty when labels are off
func (s *Scene) Labels() []*Label {
	return s.labels
}

// Circle looks up a node's primitive
func (s *Scene) Circle(id string) (*Circle, bool) {
	c, ok := s.circleByID[id]
	return c, ok
}

// Label looks up a node's label
func (s *Scene) Label(id string) (*Label, bool) {
	l, ok := s.labelByID[id]
	return l, ok
}

// CollisionRadius is the radius the simulation keeps clear around n
func (s *Scene) CollisionRadius(n *domain.Node) float64 {
	return s.opts.Radius(s.graph.ConnectionCount(n.ID)) + CollisionMargin
}

// Bounds is the bounding box of every primitive: circles, line endpoints
// and an estimate of each label's text extent
func (s *Scene) Bounds() viewport.Rect {
	var b viewport.Bounds
	for _, c := range s.circles {
		b.AddBox(c.CX, c.CY, c.R, c.R)
	}
	for _, l := range s.lines {
		b.Add(l.X1, l.Y1)
		b.Add(l.X2, l.Y2)
	}
	for _, lbl := range s.labels {
		halfW := float64(len([]rune(lbl.Text))) * labelFontSize * labelCharWidth / 2
		baseline := lbl.Y + lbl.DY
		b.Add(lbl.X-halfW, baseline-labelFontSize)
		b.Add(lbl.X+halfW, baseline)
	}
	return b.Rect()
}

// CenterExtent is the bounding box of node centres
func (s *Scene) CenterExtent() viewport.Rect {
	var b viewport.Bounds
	for _, c := range s.circles {
		b.Add(c.CX, c.CY)
	}
	return b.Rect()
}

// ClearMarks drops every highlight and dim mark
func (s *Scene) ClearMarks() {
	for _, c := range s.circles {
		c.Marks = Marks{}
	}
	for _, l := range s.lines {
		l.Marks = Marks{}
	}
	for _, lbl := range s.labels {
		lbl.Dimmed = false
	}
}

// Recolor gives every node without its own colour the new default. Layout
// and data are untouched.
func (s *Scene) Recolor(defaultColor string) {
	for _, c := range s.circles {
		if c.Node.Color == "" {
			c.Fill = defaultColor
		}
	}
}
