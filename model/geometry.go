package model

import "math"

// Point represents a 2D point in pixel coordinates
type Point struct {
	X, Y int
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents a bounding box (rectangle) in pixel coordinates.
// Y is the bottom edge, following the inverted vertical axis described
// in the package documentation (larger Y is nearer the top of the page).
type BBox struct {
	X      int // Left
	Y      int // Bottom
	Width  int
	Height int
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height int) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() int {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() int {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() int {
	return b.Y
}

// Top returns the top edge Y coordinate
func (b BBox) Top() int {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Bottom() && p.Y <= b.Top()
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Top() < other.Bottom() ||
		b.Bottom() > other.Top())
}

// Union returns the smallest bounding box containing both boxes
func (b BBox) Union(other BBox) BBox {
	x := minInt(b.Left(), other.Left())
	y := minInt(b.Bottom(), other.Bottom())
	right := maxInt(b.Right(), other.Right())
	top := maxInt(b.Top(), other.Top())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
