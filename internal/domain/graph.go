package domain

// Graph is the derived view a render pass works from: the node index, the
// links whose endpoints both resolve, and per-node connection counts.
// It is rebuilt on every render and never persisted.
type Graph struct {
	Nodes   []*Node
	Links   []Link
	Dropped int

	index  map[string]*Node
	counts map[string]int
}

// DeriveGraph filters dangling links and counts connections
func DeriveGraph(ds *Dataset) *Graph {
	g := &Graph{
		index:  make(map[string]*Node),
		counts: make(map[string]int),
	}
	if ds == nil {
		return g
	}

	g.Nodes = make([]*Node, 0, len(ds.Nodes))
	for _, n := range ds.Nodes {
		if n == nil {
			continue
		}
		g.Nodes = append(g.Nodes, n)
		g.index[n.ID] = n
	}

	g.Links = make([]Link, 0, len(ds.Links))
	for _, l := range ds.Links {
		if _, ok := g.index[l.Source]; !ok {
			g.Dropped++
			continue
		}
		if _, ok := g.index[l.Target]; !ok {
			g.Dropped++
			continue
		}
		g.Links = append(g.Links, l)
		g.counts[l.Source]++
		g.counts[l.Target]++
	}

	return g
}

// Node looks up a node by id
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.index[id]
	return n, ok
}

// ConnectionCount returns in-degree plus out-degree over valid links
func (g *Graph) ConnectionCount(id string) int {
	return g.counts[id]
}

// Neighborhood returns the node itself plus every node one valid link away
func (g *Graph) Neighborhood(id string) map[string]struct{} {
	set := map[string]struct{}{id: {}}
	for _, l := range g.Links {
		if l.Source == id {
			set[l.Target] = struct{}{}
		}
		if l.Target == id {
			set[l.Source] = struct{}{}
		}
	}
	return set
}

// Stats holds summary counts
type Stats struct {
	Nodes        int `json:"nodes"`
	Links        int `json:"links"`
	DroppedLinks int `json:"dropped_links"`
	Isolated     int `json:"isolated"`
	MaxDegree    int `json:"max_degree"`
}

// Stats summarises the derived graph
func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes:        len(g.Nodes),
		Links:        len(g.Links),
		DroppedLinks: g.Dropped,
	}
	for _, n := range g.Nodes {
		c := g.counts[n.ID]
		if c == 0 {
			s.Isolated++
		}
		if c > s.MaxDegree {
			s.MaxDegree = c
		}
	}
	return s
}
