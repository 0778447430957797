package model

import "fmt"

// Feature represents one detected text fragment with its pixel position.
// Text is opaque to the layout algorithms; two features may carry identical
// text. Features are never mutated once constructed.
//
// Larger Y means nearer the top of the page (see the package documentation).
type Feature struct {
	Text string
	X, Y int
}

// Position returns the feature's position as a Point
func (f Feature) Position() Point {
	return Point{X: f.X, Y: f.Y}
}

// String returns a readable representation for debugging and test output
func (f Feature) String() string {
	return fmt.Sprintf("(%s, (%d, %d))", f.Text, f.X, f.Y)
}

// FeaturesBBox returns the smallest bounding box containing every feature's
// position. The zero BBox is returned for an empty slice.
func FeaturesBBox(features []Feature) BBox {
	if len(features) == 0 {
		return BBox{}
	}

	minX, maxX := features[0].X, features[0].X
	minY, maxY := features[0].Y, features[0].Y
	for _, f := range features[1:] {
		if f.X < minX {
			minX = f.X
		}
		if f.X > maxX {
			maxX = f.X
		}
		if f.Y < minY {
			minY = f.Y
		}
		if f.Y > maxY {
			maxY = f.Y
		}
	}

	return BBox{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}
