package layout

import (
	"strings"

	"github.com/RyanAdamRojas/textgrid/model"
)

// ReadingOrderConfig holds configuration for reading order detection
type ReadingOrderConfig struct {
	// RowConfig is the configuration for the underlying row detection
	RowConfig RowConfig
}

// DefaultReadingOrderConfig returns sensible default configuration
func DefaultReadingOrderConfig() ReadingOrderConfig {
	return ReadingOrderConfig{
		RowConfig: DefaultRowConfig(),
	}
}

// ReadingOrderResult holds the result of reading order detection
type ReadingOrderResult struct {
	// Features in reading order (top to bottom, left to right)
	Features []model.Feature

	// Rows in reading order
	Rows []Row
}

// ReadingOrderDetector produces a flat left-to-right, top-to-bottom sequence
// from an unordered set of features
type ReadingOrderDetector struct {
	config ReadingOrderConfig
}

// NewReadingOrderDetector creates a new reading order detector with default configuration
func NewReadingOrderDetector() *ReadingOrderDetector {
	return &ReadingOrderDetector{
		config: DefaultReadingOrderConfig(),
	}
}

// NewReadingOrderDetectorWithConfig creates a reading order detector with custom configuration
func NewReadingOrderDetectorWithConfig(config ReadingOrderConfig) *ReadingOrderDetector {
	return &ReadingOrderDetector{
		config: config,
	}
}

// Detect returns the features in reading order. The result is a permutation
// of the input: rows are detected with the configured tolerance and then
// concatenated top to bottom. Detection is deterministic; ties in Y or X
// keep their input relative order.
func (d *ReadingOrderDetector) Detect(features []model.Feature) *ReadingOrderResult {
	rowLayout := NewRowDetectorWithConfig(d.config.RowConfig).Detect(features)

	return &ReadingOrderResult{
		Features: rowLayout.AllFeatures(),
		Rows:     rowLayout.Rows,
	}
}

// ReadingOrderResult methods

// RowCount returns the number of detected rows
func (r *ReadingOrderResult) RowCount() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// FeatureCount returns the number of ordered features
func (r *ReadingOrderResult) FeatureCount() int {
	if r == nil {
		return 0
	}
	return len(r.Features)
}

// GetText returns the feature texts in reading order, with spaces between
// features on the same row and newlines between rows
func (r *ReadingOrderResult) GetText() string {
	if r == nil || len(r.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, row := range r.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, f := range row.Features {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(f.Text)
		}
	}
	return sb.String()
}

// ReorderForReading takes features and returns them in reading order using
// the default tolerance. This is a convenience function for simple use cases.
func ReorderForReading(features []model.Feature) []model.Feature {
	detector := NewReadingOrderDetector()
	return detector.Detect(features).Features
}

// ReorderForReadingWithTolerance is like [ReorderForReading] with an explicit
// vertical tolerance
func ReorderForReadingWithTolerance(features []model.Feature, yTolerance int) []model.Feature {
	detector := NewReadingOrderDetectorWithConfig(ReadingOrderConfig{
		RowConfig: RowConfig{YTolerance: yTolerance},
	})
	return detector.Detect(features).Features
}
