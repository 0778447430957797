// Package layout reconstructs the reading order of positioned text features
// when an OCR pipeline returns them in arbitrary order.
//
// This package groups features into rows by vertical proximity, orders each
// row left to right, and can force the result into a fixed-size grid when
// the page layout is known in advance (e.g. a screen showing a fixed number
// of receipt panels arranged in rows and columns).
//
// # Detectors
//
// The package includes three components, layered bottom-up:
//
//   - [RowDetector] - groups features into rows by vertical proximity
//   - [ReadingOrderDetector] - produces a flat left-to-right, top-to-bottom sequence
//   - [GridAligner] - assigns features to a fixed rows x columns grid,
//     leaving unmatched cells empty
//
// # Configuration
//
// Each component can be configured independently:
//
//	config := layout.DefaultGridConfig()
//	config.Rows = 3
//	config.Cols = 4
//	config.XTolerance = 30
//	aligner := layout.NewGridAlignerWithConfig(config)
//	grid, err := aligner.Align(features)
//
// For simple use cases the convenience functions [ReorderForReading] and
// [AlignToGrid] apply default tolerances.
//
// All detectors are pure: inputs are never mutated, no state is retained
// between calls, and independent calls may run concurrently.
package layout
