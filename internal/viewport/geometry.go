package viewport

import (
	"fmt"
	"math"
	"strconv"
)

// Point is a position in either screen or scene space
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the viewport size in pixels
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the middle of the viewport
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// Rect is an axis-aligned box
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Degenerate reports a box with zero width or height
func (r Rect) Degenerate() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Mid returns the centre of the box
func (r Rect) Mid() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Bounds accumulates points into a Rect
type Bounds struct {
	minX, minY, maxX, maxY float64
	set                    bool
}

// Add extends the bounds to include x, y
func (b *Bounds) Add(x, y float64) {
	if !b.set {
		b.minX, b.maxX = x, x
		b.minY, b.maxY = y, y
		b.set = true
		return
	}
	b.minX = math.Min(b.minX, x)
	b.maxX = math.Max(b.maxX, x)
	b.minY = math.Min(b.minY, y)
	b.maxY = math.Max(b.maxY, y)
}

// AddBox extends the bounds to include a box centred on cx, cy
func (b *Bounds) AddBox(cx, cy, halfW, halfH float64) {
	b.Add(cx-halfW, cy-halfH)
	b.Add(cx+halfW, cy+halfH)
}

// Empty reports whether nothing was added
func (b *Bounds) Empty() bool {
	return !b.set
}

// Rect returns the accumulated box. Empty bounds give the zero Rect.
func (b *Bounds) Rect() Rect {
	if !b.set {
		return Rect{}
	}
	return Rect{X: b.minX, Y: b.minY, Width: b.maxX - b.minX, Height: b.maxY - b.minY}
}

// Transform is a translate followed by a uniform scale
type Transform struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// Identity is the untransformed view
var Identity = Transform{K: 1}

// IsIdentity reports whether t is the identity
func (t Transform) IsIdentity() bool {
	return t == Identity
}

// Apply maps a scene point to the screen
func (t Transform) Apply(p Point) Point {
	return Point{X: p.X*t.K + t.X, Y: p.Y*t.K + t.Y}
}

// Invert maps a screen point back to the scene
func (t Transform) Invert(p Point) Point {
	return Point{X: (p.X - t.X) / t.K, Y: (p.Y - t.Y) / t.K}
}

// String renders the transform as an SVG transform attribute
func (t Transform) String() string {
	return fmt.Sprintf("translate(%s,%s) scale(%s)", num(t.X), num(t.Y), num(t.K))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
