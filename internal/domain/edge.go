package domain

import "fmt"

// DefaultLinkWeight is used when a link carries no weight
const DefaultLinkWeight = 1.0

// Link connects two notes by id
type Link struct {
	Source string   `json:"source" yaml:"source" validate:"required"`
	Target string   `json:"target" yaml:"target" validate:"required"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty" validate:"omitempty,gte=0"`
}

// NewLink creates an unweighted link
func NewLink(source, target string) Link {
	return Link{Source: source, Target: target}
}

// NewWeightedLink creates a link with an explicit weight
func NewWeightedLink(source, target string, weight float64) Link {
	return Link{Source: source, Target: target, Weight: &weight}
}

// EffectiveWeight returns the weight, or DefaultLinkWeight when unset
func (l Link) EffectiveWeight() float64 {
	if l.Weight == nil {
		return DefaultLinkWeight
	}
	return *l.Weight
}

// Touches reports whether id is one of the link's endpoints
func (l Link) Touches(id string) bool {
	return l.Source == id || l.Target == id
}

// Key identifies a link by its endpoints and position in the dataset
func (l Link) Key(index int) string {
	return fmt.Sprintf("%s->%s#%d", l.Source, l.Target, index)
}
