// Package viewport owns the pan/zoom transform applied to the whole scene:
// button zoom, reset, fit-to-content and resize, each recorded as an
// animated transition.
package viewport

import (
	"math"
	"time"
)

const (
	MinScale = 0.1
	MaxScale = 4.0

	ZoomInFactor  = 1.3
	ZoomOutFactor = 0.7

	ZoomDuration  = 300 * time.Millisecond
	ResetDuration = 500 * time.Millisecond
	FitDuration   = 750 * time.Millisecond

	// FitFraction is the share of the viewport fitted content occupies
	FitFraction = 0.8
)

// Controller holds the viewport size, the target transform and the
// transition towards it. It is not safe for concurrent use.
type Controller struct {
	size       Size
	transform  Transform
	transition *Transition
	now        func() time.Time
}

// New creates a controller at the identity transform
func New(size Size) *Controller {
	return &Controller{
		size:      size,
		transform: Identity,
		now:       time.Now,
	}
}

// SetClock replaces the time source
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
}

// Size returns the viewport size
func (c *Controller) Size() Size {
	return c.size
}

// Resize stores new viewport dimensions. The transform is left alone.
func (c *Controller) Resize(size Size) {
	c.size = size
}

// Transform returns the transform the viewport is at or heading to
func (c *Controller) Transform() Transform {
	return c.transform
}

// Current returns the transform as displayed right now, mid-transition if
// one is running
func (c *Controller) Current() Transform {
	if c.transition == nil {
		return c.transform
	}
	now := c.now()
	if c.transition.Done(now) {
		c.transition = nil
		return c.transform
	}
	return c.transition.At(now.Sub(c.transition.Start))
}

// Transition returns the running transition, if any
func (c *Controller) Transition() (Transition, bool) {
	if c.transition == nil || c.transition.Done(c.now()) {
		return Transition{}, false
	}
	return *c.transition, true
}

// Animating reports whether a transition is in flight
func (c *Controller) Animating() bool {
	_, ok := c.Transition()
	return ok
}

// ZoomIn scales up about the viewport centre
func (c *Controller) ZoomIn() Transition {
	return c.ZoomBy(ZoomInFactor)
}

// ZoomOut scales down about the viewport centre
func (c *Controller) ZoomOut() Transition {
	return c.ZoomBy(ZoomOutFactor)
}

// ZoomBy multiplies the scale by factor about the viewport centre
func (c *Controller) ZoomBy(factor float64) Transition {
	return c.ZoomAt(c.size.Center(), factor, ZoomDuration)
}

// ZoomAt multiplies the scale by factor keeping the screen point p fixed
func (c *Controller) ZoomAt(p Point, factor float64, d time.Duration) Transition {
	t := c.transform
	k := clampScale(t.K * factor)
	world := t.Invert(p)
	return c.animate(Transform{
		X: p.X - world.X*k,
		Y: p.Y - world.Y*k,
		K: k,
	}, d)
}

// Pan translates the view by dx, dy screen pixels without animation
func (c *Controller) Pan(dx, dy float64) Transition {
	t := c.transform
	t.X += dx
	t.Y += dy
	return c.animate(t, 0)
}

// Reset animates back to the identity transform
func (c *Controller) Reset() Transition {
	return c.animate(Identity, ResetDuration)
}

// Fit scales and centres bounds in the viewport. centers is the box of
// node centres. Fit does nothing and reports false when bounds has no
// area or every node centre coincides.
func (c *Controller) Fit(bounds, centers Rect) (Transition, bool) {
	if bounds.Degenerate() || (centers.Width == 0 && centers.Height == 0) {
		return Transition{}, false
	}
	if c.size.Width <= 0 || c.size.Height <= 0 {
		return Transition{}, false
	}

	k := FitFraction / math.Max(bounds.Width/c.size.Width, bounds.Height/c.size.Height)
	k = clampScale(k)
	mid := bounds.Mid()

	return c.animate(Transform{
		X: c.size.Width/2 - k*mid.X,
		Y: c.size.Height/2 - k*mid.Y,
		K: k,
	}, FitDuration), true
}

// animate starts a transition from the displayed transform to target.
// A new transition interrupts any running one.
func (c *Controller) animate(target Transform, d time.Duration) Transition {
	tr := Transition{
		From:     c.Current(),
		To:       target,
		Duration: d,
		Start:    c.now(),
	}
	c.transform = target
	if d > 0 {
		c.transition = &tr
	} else {
		c.transition = nil
	}
	return tr
}

func clampScale(k float64) float64 {
	return math.Max(MinScale, math.Min(MaxScale, k))
}
