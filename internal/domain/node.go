package domain

// Node represents a note in the graph
type Node struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty" validate:"omitempty,dive,required"`
	Color       string   `json:"color,omitempty" yaml:"color,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`

	// Simulation state, owned by the physics engine unless Pin is held
	X   float64 `json:"x" yaml:"-"`
	Y   float64 `json:"y" yaml:"-"`
	VX  float64 `json:"vx" yaml:"-"`
	VY  float64 `json:"vy" yaml:"-"`
	Pin Pin     `json:"-" yaml:"-"`
}

// NewNode creates a node with the given id and title
func NewNode(id, title string) *Node {
	return &Node{
		ID:    id,
		Title: title,
	}
}

// DisplayName returns the title, falling back to the id
func (n *Node) DisplayName() string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID
}

// HasTag reports whether the node carries the given tag
func (n *Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Position returns the node's effective position. A held pin wins over the
// simulated coordinates.
func (n *Node) Position() (x, y float64) {
	if n.Pin.Held() {
		return n.Pin.X, n.Pin.Y
	}
	return n.X, n.Y
}

// ResetSimulation clears all physics state so a reload starts fresh
func (n *Node) ResetSimulation() {
	n.X, n.Y, n.VX, n.VY = 0, 0, 0, 0
	n.Pin = Pin{}
}
