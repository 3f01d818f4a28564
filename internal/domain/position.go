package domain

// PinState tags who owns a node's position
type PinState int

const (
	PinFree PinState = iota // physics engine owns the position
	PinHeld                 // interaction layer owns the position
)

func (s PinState) String() string {
	if s == PinHeld {
		return "held"
	}
	return "free"
}

// Pin is the ownership handoff between the simulation and a drag gesture.
// While held, X and Y override whatever the simulation computes.
type Pin struct {
	State PinState
	X     float64
	Y     float64
}

// Held reports whether the interaction layer owns the position
func (p Pin) Held() bool {
	return p.State == PinHeld
}

// Hold takes ownership of the position at x, y
func (p *Pin) Hold(x, y float64) {
	p.State = PinHeld
	p.X = x
	p.Y = y
}

// MoveTo updates a held pin. It is a no-op on a free pin.
func (p *Pin) MoveTo(x, y float64) {
	if p.State != PinHeld {
		return
	}
	p.X = x
	p.Y = y
}

// Release returns ownership to the simulation
func (p *Pin) Release() {
	*p = Pin{}
}
