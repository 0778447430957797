// Package textgrid reconstructs the reading order of text fragments that an
// OCR pipeline extracted from a scanned image in arbitrary order.
//
// Each fragment is a [model.Feature] carrying its text and pixel position,
// with larger Y meaning nearer the top of the page. Two recoveries are
// supported: a flat left-to-right, top-to-bottom reading order, and an
// explicit row/column grid assignment for pages with a known fixed layout,
// with nil marking cells whose expected text was not detected.
//
// Basic usage:
//
//	ordered := textgrid.ReadingOrder(features)
//
// Aligning to a known 3x4 panel layout:
//
//	cells, err := textgrid.Grid(features, 3, 4)
//	if err != nil {
//	    // handle error
//	}
//
// For configurable detection, the lower-level layout package is also
// available.
package textgrid

import (
	"github.com/RyanAdamRojas/textgrid/layout"
	"github.com/RyanAdamRojas/textgrid/model"
)

// DefaultYTolerance is the default vertical tolerance for row clustering.
const DefaultYTolerance = 100

// DefaultXTolerance is the default horizontal tolerance for grid slot matching.
const DefaultXTolerance = 20

// ReadingOrder returns the features sorted into reading order (top to
// bottom, left to right) using the default vertical tolerance. The result
// is a permutation of the input; the input is not modified.
func ReadingOrder(features []model.Feature) []model.Feature {
	return layout.ReorderForReading(features)
}

// ReadingOrderWithTolerance is like [ReadingOrder] with an explicit vertical
// tolerance for row clustering.
func ReadingOrderWithTolerance(features []model.Feature, yTolerance int) []model.Feature {
	return layout.ReorderForReadingWithTolerance(features, yTolerance)
}

// Grid assigns the features to a rows x cols grid using the default
// tolerances and returns the cells row-major as a slice of length
// rows*cols. Cells whose expected feature was not detected are nil.
// Grid returns an error only when rows or cols is not positive.
func Grid(features []model.Feature, rows, cols int) ([]*model.Feature, error) {
	return GridWithTolerance(features, rows, cols, DefaultYTolerance, DefaultXTolerance)
}

// GridWithTolerance is like [Grid] with explicit vertical and horizontal
// tolerances.
func GridWithTolerance(features []model.Feature, rows, cols, yTolerance, xTolerance int) ([]*model.Feature, error) {
	aligner := layout.NewGridAlignerWithConfig(layout.GridConfig{
		Rows:       rows,
		Cols:       cols,
		YTolerance: yTolerance,
		XTolerance: xTolerance,
	})

	grid, err := aligner.Align(features)
	if err != nil {
		return nil, err
	}
	return grid.Flatten(), nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	cells := textgrid.Must(textgrid.Grid(features, 3, 4))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
