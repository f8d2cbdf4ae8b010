package entity

import "math"

// Rect is an integer rectangle in engine (logical pixel) space.
type Rect struct {
	X, Y          int32
	Width, Height int32
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Point is a position in GUI space.
type Point struct {
	X, Y float32
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(q Point) float32 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return float32(math.Hypot(dx, dy))
}

// Size is a width/height pair in GUI space.
type Size struct {
	Width, Height float32
}

// Rectangle is a floating point rectangle in GUI space.
type Rectangle struct {
	X, Y          float32
	Width, Height float32
}

// Position returns the top-left corner.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle dimensions.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains reports whether p lies inside the rectangle.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ToRect rounds the rectangle to engine integer space.
func (r Rectangle) ToRect() Rect {
	return Rect{
		X:      int32(math.Round(float64(r.X))),
		Y:      int32(math.Round(float64(r.Y))),
		Width:  int32(math.Round(float64(r.Width))),
		Height: int32(math.Round(float64(r.Height))),
	}
}

// Range is a half-open character range used by IME calls.
type Range struct {
	From, To uint32
}

// InvalidRange is the engine's "no range" marker.
var InvalidRange = Range{From: math.MaxUint32, To: math.MaxUint32}
