package interaction

import (
	"notesgraph/internal/domain"
)

// Event is a pointer event in container coordinates
type Event struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Button int     `json:"button,omitempty"`
	Meta   bool    `json:"meta,omitempty"`
	Shift  bool    `json:"shift,omitempty"`
}

// Sink receives node interactions. A configured sink takes over click
// handling from the default navigation.
type Sink interface {
	NodeClicked(node *domain.Node, ev Event)
	HoverEntered(node *domain.Node)
	HoverLeft(node *domain.Node)
}

// Navigator changes the current location
type Navigator interface {
	Navigate(href string)
}

// Simulation is the part of the physics engine a drag needs
type Simulation interface {
	SetAlphaTarget(target float64)
	Restart()
}

// SinkFuncs adapts plain functions to a Sink. Nil fields are skipped.
type SinkFuncs struct {
	OnClick      func(node *domain.Node, ev Event)
	OnHoverEnter func(node *domain.Node)
	OnHoverLeave func(node *domain.Node)
}

func (s SinkFuncs) NodeClicked(node *domain.Node, ev Event) {
	if s.OnClick != nil {
		s.OnClick(node, ev)
	}
}

func (s SinkFuncs) HoverEntered(node *domain.Node) {
	if s.OnHoverEnter != nil {
		s.OnHoverEnter(node)
	}
}

func (s SinkFuncs) HoverLeft(node *domain.Node) {
	if s.OnHoverLeave != nil {
		s.OnHoverLeave(node)
	}
}
