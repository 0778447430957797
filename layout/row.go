package layout

import (
	"sort"

	"github.com/RyanAdamRojas/textgrid/model"
)

// Row represents a group of features sharing an approximate vertical position
type Row struct {
	// Features in this row (sorted left to right)
	Features []model.Feature

	// AnchorY is the Y coordinate of the first feature clustered into this
	// row. Row membership is decided against this value, not a running
	// average: a chain of features each within tolerance of the anchor
	// stays in the row even when consecutive members drift apart.
	AnchorY int

	// Index is the row's position on the page (0-based, top to bottom)
	Index int
}

// BBox returns the bounding box of the row's feature positions
func (r *Row) BBox() model.BBox {
	if r == nil {
		return model.BBox{}
	}
	return model.FeaturesBBox(r.Features)
}

// FeatureCount returns the number of features in the row
func (r *Row) FeatureCount() int {
	if r == nil {
		return 0
	}
	return len(r.Features)
}

// RowLayout represents the detected row structure of a page or region
type RowLayout struct {
	// Rows are the detected rows (top to bottom)
	Rows []Row

	// Config is the configuration used for detection
	Config RowConfig
}

// RowConfig holds configuration for row detection
type RowConfig struct {
	// YTolerance is the maximum vertical distance (in pixels) between a
	// feature and the row's anchor for the feature to join the row.
	// Default: 100
	YTolerance int
}

// DefaultRowConfig returns sensible default configuration
func DefaultRowConfig() RowConfig {
	return RowConfig{
		YTolerance: 100,
	}
}

// RowDetector groups features into rows by vertical proximity
type RowDetector struct {
	config RowConfig
}

// NewRowDetector creates a new row detector with default configuration
func NewRowDetector() *RowDetector {
	return &RowDetector{
		config: DefaultRowConfig(),
	}
}

// NewRowDetectorWithConfig creates a row detector with custom configuration
func NewRowDetectorWithConfig(config RowConfig) *RowDetector {
	return &RowDetector{
		config: config,
	}
}

// Detect partitions features into rows. Features are stably sorted by Y
// descending (top of page first), then walked once: a feature joins the
// current row when its Y is within YTolerance of the row's anchor, otherwise
// the row is closed and a new one opened with the feature as anchor. Each
// returned row is sorted by X ascending. No row is empty, every input
// feature appears exactly once, and an empty input yields no rows.
func (d *RowDetector) Detect(features []model.Feature) *RowLayout {
	layout := &RowLayout{Config: d.config}
	if len(features) == 0 {
		return layout
	}

	// Stable sort keeps input order for equal Y values.
	sorted := make([]model.Feature, len(features))
	copy(sorted, features)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	current := []model.Feature{sorted[0]}
	anchorY := sorted[0].Y

	for _, f := range sorted[1:] {
		if absInt(f.Y-anchorY) <= d.config.YTolerance {
			current = append(current, f)
			continue
		}
		layout.Rows = append(layout.Rows, closeRow(current, anchorY, len(layout.Rows)))
		current = []model.Feature{f}
		anchorY = f.Y
	}
	layout.Rows = append(layout.Rows, closeRow(current, anchorY, len(layout.Rows)))

	return layout
}

// closeRow sorts a finished row left to right. The sort is stable so
// features with equal X keep their relative order from the Y pass.
func closeRow(features []model.Feature, anchorY, index int) Row {
	sort.SliceStable(features, func(i, j int) bool {
		return features[i].X < features[j].X
	})
	return Row{
		Features: features,
		AnchorY:  anchorY,
		Index:    index,
	}
}

// RowLayout methods

// RowCount returns the number of detected rows
func (l *RowLayout) RowCount() int {
	if l == nil {
		return 0
	}
	return len(l.Rows)
}

// GetRow returns a specific row by index
func (l *RowLayout) GetRow(index int) *Row {
	if l == nil || index < 0 || index >= len(l.Rows) {
		return nil
	}
	return &l.Rows[index]
}

// FeatureCount returns the total number of features across all rows
func (l *RowLayout) FeatureCount() int {
	if l == nil {
		return 0
	}
	total := 0
	for _, row := range l.Rows {
		total += len(row.Features)
	}
	return total
}

// AllFeatures returns every feature in reading order (rows top to bottom,
// each row left to right)
func (l *RowLayout) AllFeatures() []model.Feature {
	if l == nil {
		return nil
	}

	var result []model.Feature
	for _, row := range l.Rows {
		result = append(result, row.Features...)
	}
	return result
}

// absInt returns the absolute value of an int
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
