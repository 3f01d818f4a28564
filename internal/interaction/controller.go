// Package interaction handles pointer input on rendered nodes: hover
// highlighting with a tooltip, click dispatch and drag-to-reposition.
package interaction

import (
	"fmt"
	"strconv"

	"notesgraph/internal/domain"
	"notesgraph/internal/scene"
	"notesgraph/internal/viewport"
)

// DragAlphaTarget is the energy the simulation holds while a node is dragged
const DragAlphaTarget = 0.3

// Config wires a controller
type Config struct {
	Scene     *scene.Scene
	Tooltip   *Tooltip
	Sink      Sink
	Navigator Navigator
	BaseURL   string
}

// Controller applies pointer events to the scene. It is not safe for
// concurrent use; the widget serialises access.
type Controller struct {
	scene   *scene.Scene
	tooltip *Tooltip
	sink    Sink
	nav     Navigator
	baseURL string
	sim     Simulation

	hovered  string
	dragging string
}

// New creates a controller
func New(cfg Config) *Controller {
	return &Controller{
		scene:   cfg.Scene,
		tooltip: cfg.Tooltip,
		sink:    cfg.Sink,
		nav:     cfg.Navigator,
		baseURL: cfg.BaseURL,
	}
}

// SetSimulation swaps the simulation drags act on
func (c *Controller) SetSimulation(sim Simulation) {
	c.sim = sim
}

// Hovered returns the id of the hovered node, if any
func (c *Controller) Hovered() string {
	return c.hovered
}

// Dragging returns the id of the dragged node, if any
func (c *Controller) Dragging() string {
	return c.dragging
}

// Reset forgets hover and drag state after the scene was rebuilt or torn
// down
func (c *Controller) Reset() {
	c.hovered = ""
	c.dragging = ""
	if c.tooltip != nil {
		c.tooltip.Hide()
	}
}

func (c *Controller) node(id string) (*scene.Circle, error) {
	circle, ok := c.scene.Circle(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	return circle, nil
}

// HoverEnter highlights the node and the links touching it, dims every
// node and label outside its neighbourhood and every other link, and shows
// the tooltip near pointer.
func (c *Controller) HoverEnter(id string, pointer viewport.Point, container viewport.Size) error {
	circle, err := c.node(id)
	if err != nil {
		return err
	}

	neighbours := c.scene.Graph().Neighborhood(id)
	for _, other := range c.scene.Circles() {
		_, near := neighbours[other.ID]
		other.Highlighted = other.ID == id
		other.Dimmed = !near
	}
	for _, l := range c.scene.Lines() {
		touches := l.SourceID == id || l.TargetID == id
		l.Highlighted = touches
		l.Dimmed = !touches
	}
	for _, lbl := range c.scene.Labels() {
		_, near := neighbours[lbl.ID]
		lbl.Dimmed = !near
	}

	c.hovered = id
	if c.tooltip != nil {
		if err := c.tooltip.Show(circle.Node, pointer, container); err != nil {
			return err
		}
	}
	if c.sink != nil {
		c.sink.HoverEntered(circle.Node)
	}
	return nil
}

// HoverLeave clears every highlight and dim mark and hides the tooltip
func (c *Controller) HoverLeave(id string) error {
	circle, err := c.node(id)
	if err != nil {
		return err
	}

	c.scene.ClearMarks()
	c.hovered = ""
	if c.tooltip != nil {
		c.tooltip.Hide()
	}
	if c.sink != nil {
		c.sink.HoverLeft(circle.Node)
	}
	return nil
}

// Click hands the node to the sink when one is configured. Otherwise a node
// with a URL navigates to BaseURL + URL. It returns the navigated href, if
// any.
func (c *Controller) Click(id string, ev Event) (string, error) {
	circle, err := c.node(id)
	if err != nil {
		return "", err
	}

	if c.sink != nil {
		c.sink.NodeClicked(circle.Node, ev)
		return "", nil
	}
	if circle.Node.URL == "" || c.nav == nil {
		return "", nil
	}

	href := c.baseURL + circle.Node.URL
	c.nav.Navigate(href)
	return href, nil
}

// DragStart pins the node at its current position and raises the
// simulation's target energy so neighbours react
func (c *Controller) DragStart(id string) error {
	circle, err := c.node(id)
	if err != nil {
		return err
	}

	if c.sim != nil && c.dragging == "" {
		c.sim.SetAlphaTarget(DragAlphaTarget)
		c.sim.Restart()
	}
	n := circle.Node
	n.Pin.Hold(n.X, n.Y)
	c.dragging = id
	c.scene.Update()
	return nil
}

// DragMove moves the pin to p, in scene coordinates
func (c *Controller) DragMove(id string, p viewport.Point) error {
	circle, err := c.node(id)
	if err != nil {
		return err
	}

	circle.Node.Pin.MoveTo(p.X, p.Y)
	c.scene.Update()
	return nil
}

// DragEnd releases the pin back to the simulation and lets its energy
// decay
func (c *Controller) DragEnd(id string) error {
	circle, err := c.node(id)
	if err != nil {
		return err
	}

	n := circle.Node
	if n.Pin.Held() {
		// the node keeps the dragged position as its simulated one
		n.X, n.Y = n.Pin.X, n.Pin.Y
	}
	n.Pin.Release()
	if c.dragging == id {
		c.dragging = ""
		if c.sim != nil {
			c.sim.SetAlphaTarget(0)
		}
	}
	c.scene.Update()
	return nil
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "px"
}
