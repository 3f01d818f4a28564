package viewport

import (
	"math"
	"time"
)

// Transition animates the viewport from one transform to another
type Transition struct {
	From     Transform     `json:"from"`
	To       Transform     `json:"to"`
	Duration time.Duration `json:"duration"`
	Start    time.Time     `json:"start"`
}

// At returns the transform elapsed into the transition. Translation is
// linear and scale is geometric, with a cubic ease in and out.
func (tr Transition) At(elapsed time.Duration) Transform {
	if tr.Duration <= 0 || elapsed >= tr.Duration {
		return tr.To
	}
	if elapsed <= 0 {
		return tr.From
	}
	t := easeCubicInOut(float64(elapsed) / float64(tr.Duration))

	k := tr.From.K * math.Pow(tr.To.K/tr.From.K, t)
	return Transform{
		X: tr.From.X + (tr.To.X-tr.From.X)*t,
		Y: tr.From.Y + (tr.To.Y-tr.From.Y)*t,
		K: k,
	}
}

// Done reports whether the transition has finished at now
func (tr Transition) Done(now time.Time) bool {
	return now.Sub(tr.Start) >= tr.Duration
}

func easeCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}
