package domain

// Dataset is the node/link collection a widget displays
type Dataset struct {
	Nodes []*Node `json:"nodes" yaml:"nodes" validate:"required,dive,required"`
	Links []Link  `json:"links" yaml:"links" validate:"required,dive"`
}

// NewDataset creates an empty dataset
func NewDataset() *Dataset {
	return &Dataset{
		Nodes: make([]*Node, 0),
		Links: make([]Link, 0),
	}
}

// AddNode adds a node to the dataset
func (d *Dataset) AddNode(node *Node) {
	d.Nodes = append(d.Nodes, node)
}

// AddLink adds a link to the dataset
func (d *Dataset) AddLink(link Link) {
	d.Links = append(d.Links, link)
}

// Clone returns a deep copy with fresh simulation state, so the same source
// dataset can be rendered more than once without sharing positions.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Nodes: make([]*Node, 0, len(d.Nodes)),
		Links: make([]Link, 0, len(d.Links)),
	}
	for _, n := range d.Nodes {
		if n == nil {
			continue
		}
		c := *n
		if n.Tags != nil {
			c.Tags = append([]string(nil), n.Tags...)
		}
		c.ResetSimulation()
		out.Nodes = append(out.Nodes, &c)
	}
	for _, l := range d.Links {
		c := l
		if l.Weight != nil {
			w := *l.Weight
			c.Weight = &w
		}
		out.Links = append(out.Links, c)
	}
	return out
}
