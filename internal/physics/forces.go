package physics

import (
	"math"
)

// applyLinks pulls linked nodes towards LinkDistance
func (s *Simulation) applyLinks() {
	for _, sp := range s.springs {
		src, dst := sp.source, sp.target

		x := dst.X + dst.VX - src.X - src.VX
		if x == 0 {
			x = s.jiggle()
		}
		y := dst.Y + dst.VY - src.Y - src.VY
		if y == 0 {
			y = s.jiggle()
		}

		l := math.Sqrt(x*x + y*y)
		l = (l - s.cfg.LinkDistance) / l * s.alpha * sp.strength
		x *= l
		y *= l

		dst.VX -= x * sp.bias
		dst.VY -= y * sp.bias
		src.VX += x * (1 - sp.bias)
		src.VY += y * (1 - sp.bias)
	}
}

// applyCharge is an exact pairwise many-body force. Negative strength repels.
func (s *Simulation) applyCharge() {
	if s.cfg.ChargeStrength == 0 {
		return
	}
	for i, n := range s.nodes {
		for j, o := range s.nodes {
			if i == j {
				continue
			}
			x := o.X - n.X
			y := o.Y - n.Y
			if x == 0 {
				x = s.jiggle()
			}
			if y == 0 {
				y = s.jiggle()
			}
			l := x*x + y*y
			if l < distanceMin2 {
				l = math.Sqrt(distanceMin2 * l)
			}
			w := s.cfg.ChargeStrength * s.alpha / l
			n.VX += x * w
			n.VY += y * w
		}
	}
}

// applyCenter translates every node so the mean position sits on the center
func (s *Simulation) applyCenter() {
	if len(s.nodes) == 0 {
		return
	}
	var sx, sy float64
	for _, n := range s.nodes {
		sx += n.X
		sy += n.Y
	}
	sx = sx/float64(len(s.nodes)) - s.cfg.CenterX
	sy = sy/float64(len(s.nodes)) - s.cfg.CenterY
	for _, n := range s.nodes {
		n.X -= sx
		n.Y -= sy
	}
}

// applyCollision pushes apart nodes whose collision circles overlap
func (s *Simulation) applyCollision() {
	if s.cfg.CollisionRadius == nil {
		return
	}
	radii := make([]float64, len(s.nodes))
	for i, n := range s.nodes {
		radii[i] = s.cfg.CollisionRadius(n)
	}

	for i, n := range s.nodes {
		ri := radii[i]
		xi := n.X + n.VX
		yi := n.Y + n.VY
		for j := i + 1; j < len(s.nodes); j++ {
			o := s.nodes[j]
			rj := radii[j]
			r := ri + rj

			x := xi - o.X - o.VX
			y := yi - o.Y - o.VY
			l := x*x + y*y
			if l >= r*r {
				continue
			}
			if x == 0 {
				x = s.jiggle()
				l += x * x
			}
			if y == 0 {
				y = s.jiggle()
				l += y * y
			}
			l = math.Sqrt(l)
			l = (r - l) / l
			x *= l
			y *= l

			share := rj * rj / (ri*ri + rj*rj)
			n.VX += x * share
			n.VY += y * share
			o.VX -= x * (1 - share)
			o.VY -= y * (1 - share)
		}
	}
}
