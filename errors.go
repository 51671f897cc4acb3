package absplots

import (
	"errors"
	"fmt"
)

var (
	// ErrFigureSize reports a figure width or height that is not strictly
	// positive.
	ErrFigureSize = errors.New("absplots: figure size must be positive")

	// ErrGridShape reports a subplot grid with fewer than one row or column.
	ErrGridShape = errors.New("absplots: nrows and ncols must be at least 1")

	// ErrRatioCount reports width or height ratios whose count does not match
	// the grid shape.
	ErrRatioCount = errors.New("absplots: ratio count does not match grid shape")

	// ErrCellRange reports a cell index outside the grid, or an inverted span.
	ErrCellRange = errors.New("absplots: cell index out of range")

	// ErrFormat reports an output file extension with no known backend.
	ErrFormat = errors.New("absplots: unsupported output format")
)

// DegenerateLayoutError reports margins that leave the subplot area with zero
// or negative size once expressed as fractions of the figure dimensions. It
// carries all six computed fractions so the caller can see which margin is
// responsible.
type DegenerateLayoutError struct {
	// Axis is "width" or "height", naming the figure dimension whose
	// margins are degenerate.
	Axis string

	// Fractions holds the computed margin fractions.
	Fractions Fractions

	// Total is the fraction of the axis consumed by outer margins plus
	// accumulated inter-subplot spacing. The layout is degenerate when it
	// is not in [0, 1), or when any individual fraction is negative.
	Total float64
}

func (e *DegenerateLayoutError) Error() string {
	if e.Axis == "width" {
		return fmt.Sprintf(
			"absplots: degenerate layout: width margins take %.4g of the figure (left=%.4g right=%.4g wspace=%.4g)",
			e.Total, e.Fractions.Left, e.Fractions.Right, e.Fractions.Wspace)
	}
	return fmt.Sprintf(
		"absplots: degenerate layout: height margins take %.4g of the figure (bottom=%.4g top=%.4g hspace=%.4g)",
		e.Total, e.Fractions.Bottom, e.Fractions.Top, e.Fractions.Hspace)
}
