package layout

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/RyanAdamRojas/textgrid/model"
)

// ErrInvalidGridSize is returned when a grid is requested with a
// non-positive row or column count.
var ErrInvalidGridSize = errors.New("grid dimensions must be positive")

// GridConfig holds configuration for grid alignment
type GridConfig struct {
	// Rows is the expected number of grid rows. Default: 3
	Rows int

	// Cols is the expected number of grid columns. Default: 4
	Cols int

	// YTolerance is the vertical tolerance for row clustering. Default: 100
	YTolerance int

	// XTolerance is the maximum horizontal distance (in pixels) between a
	// feature and a column's expected position for the feature to fill
	// that column. Default: 20
	XTolerance int
}

// DefaultGridConfig returns sensible default configuration
func DefaultGridConfig() GridConfig {
	return GridConfig{
		Rows:       3,
		Cols:       4,
		YTolerance: 100,
		XTolerance: 20,
	}
}

// GridLayout represents features assigned to a fixed rows x columns grid.
// Empty cells are nil; they are never conflated with a zero-valued feature.
type GridLayout struct {
	// Cells holds the grid contents, Cells[row][col], nil for empty.
	// Dimensions always match Config.Rows x Config.Cols.
	Cells [][]*model.Feature

	// DetectedRows is the number of rows found by clustering before
	// truncation or padding to Config.Rows
	DetectedRows int

	// Config is the configuration used for alignment
	Config GridConfig
}

// GridAligner forces detected features into a fixed-size grid, tolerating
// missing features and positional jitter
type GridAligner struct {
	config GridConfig
}

// NewGridAligner creates a new grid aligner with default configuration
func NewGridAligner() *GridAligner {
	return &GridAligner{
		config: DefaultGridConfig(),
	}
}

// NewGridAlignerWithConfig creates a grid aligner with custom configuration
func NewGridAlignerWithConfig(config GridConfig) *GridAligner {
	return &GridAligner{
		config: config,
	}
}

// Align assigns features to the configured grid.
//
// Features are clustered into rows with YTolerance. If more rows are found
// than configured, the rows clustered last are discarded (after the
// descending-Y pass these are the bottom-most rows); if fewer, empty rows
// pad the bottom. Within each row the expected X position of every column
// is interpolated uniformly between the row's leftmost and rightmost
// features, and columns are filled greedily: each column in increasing
// order takes the first unclaimed feature within XTolerance of its expected
// position. Unmatched columns stay empty.
//
// The interpolation assumes the row's leftmost and rightmost detected
// features occupy the grid's outermost columns. When an outermost column
// went undetected the expected positions shift inward and interior features
// can miss every slot, so a sparse row degrades to more empty cells rather
// than an error.
//
// Align returns ErrInvalidGridSize if the configured row or column count is
// not positive. There are no other error conditions: malformed or
// insufficient input degrades to empty cells, never a failure.
func (a *GridAligner) Align(features []model.Feature) (*GridLayout, error) {
	if a.config.Rows <= 0 || a.config.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidGridSize, a.config.Rows, a.config.Cols)
	}

	rowLayout := NewRowDetectorWithConfig(RowConfig{YTolerance: a.config.YTolerance}).Detect(features)

	rows := rowLayout.Rows
	detected := len(rows)
	if len(rows) > a.config.Rows {
		// Keep the rows clustered first; drop the trailing ones.
		rows = rows[:a.config.Rows]
	}

	cells := make([][]*model.Feature, a.config.Rows)
	for i := range cells {
		var rowFeatures []model.Feature
		if i < len(rows) {
			rowFeatures = rows[i].Features
		}
		cells[i] = a.alignRow(rowFeatures)
	}

	return &GridLayout{
		Cells:        cells,
		DetectedRows: detected,
		Config:       a.config,
	}, nil
}

// alignRow assigns one row's features to the configured column slots.
// An empty row yields all-empty cells.
func (a *GridAligner) alignRow(features []model.Feature) []*model.Feature {
	cells := make([]*model.Feature, a.config.Cols)
	if len(features) == 0 {
		return cells
	}

	sorted := make([]model.Feature, len(features))
	copy(sorted, features)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	expected := expectedPositions(sorted, a.config.Cols)
	tolerance := float64(a.config.XTolerance)

	// Greedy first-fit, each feature fills at most one column. Claims are
	// tracked by index, parallel to the sorted row.
	claimed := make([]bool, len(sorted))
	for col, want := range expected {
		for i := range sorted {
			if claimed[i] {
				continue
			}
			if math.Abs(float64(sorted[i].X)-want) <= tolerance {
				cells[col] = &sorted[i]
				claimed[i] = true
				break
			}
		}
	}

	return cells
}

// expectedPositions computes the expected X position of each column by
// uniform interpolation between the row's minimum and maximum X. With a
// single feature (or a single column) there is no spacing to infer, so
// every position collapses to the leftmost X.
func expectedPositions(sorted []model.Feature, cols int) []float64 {
	positions := make([]float64, cols)
	minX := float64(sorted[0].X)

	if len(sorted) == 1 || cols == 1 {
		for i := range positions {
			positions[i] = minX
		}
		return positions
	}

	maxX := float64(sorted[len(sorted)-1].X)
	step := (maxX - minX) / float64(cols-1)
	for i := range positions {
		positions[i] = minX + float64(i)*step
	}
	return positions
}

// GridLayout methods

// RowCount returns the configured number of grid rows
func (g *GridLayout) RowCount() int {
	if g == nil {
		return 0
	}
	return g.Config.Rows
}

// ColCount returns the configured number of grid columns
func (g *GridLayout) ColCount() int {
	if g == nil {
		return 0
	}
	return g.Config.Cols
}

// At returns the feature at the given cell, or nil if the cell is empty or
// the indices are out of range
func (g *GridLayout) At(row, col int) *model.Feature {
	if g == nil || row < 0 || row >= len(g.Cells) {
		return nil
	}
	if col < 0 || col >= len(g.Cells[row]) {
		return nil
	}
	return g.Cells[row][col]
}

// Flatten returns the grid row-major as a single slice of length
// Rows*Cols, with nil marking empty cells
func (g *GridLayout) Flatten() []*model.Feature {
	if g == nil {
		return nil
	}

	flat := make([]*model.Feature, 0, g.Config.Rows*g.Config.Cols)
	for _, row := range g.Cells {
		flat = append(flat, row...)
	}
	return flat
}

// FilledCount returns the number of cells holding a feature
func (g *GridLayout) FilledCount() int {
	if g == nil {
		return 0
	}
	count := 0
	for _, row := range g.Cells {
		for _, cell := range row {
			if cell != nil {
				count++
			}
		}
	}
	return count
}

// EmptyCount returns the number of empty cells
func (g *GridLayout) EmptyCount() int {
	if g == nil {
		return 0
	}
	return g.Config.Rows*g.Config.Cols - g.FilledCount()
}

// AlignToGrid aligns features to a rows x cols grid with default tolerances
// and returns the flattened row-major result. This is a convenience function
// for simple use cases.
func AlignToGrid(features []model.Feature, rows, cols int) ([]*model.Feature, error) {
	config := DefaultGridConfig()
	config.Rows = rows
	config.Cols = cols

	grid, err := NewGridAlignerWithConfig(config).Align(features)
	if err != nil {
		return nil, err
	}
	return grid.Flatten(), nil
}
