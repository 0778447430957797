// Package model defines the shared entity types for layout reconstruction:
// the positioned text [Feature] produced by an OCR pipeline, and the basic
// geometry types ([Point], [BBox]) used to reason about feature positions.
//
// # Coordinate convention
//
// Coordinates are integer pixels. The vertical axis is inverted relative to
// typical screen coordinates: a LARGER Y value means the feature sits CLOSER
// TO THE TOP of the page. All layout algorithms in this module depend on that
// convention; callers converting from image coordinates (Y=0 at the top)
// must flip the axis first, e.g. y = imageHeight - pixelY.
package model
