// Package absplots creates figures and subplot grids with sizes and margins
// in absolute units (millimeters or inches) instead of the plotting library's
// fractional figure coordinates.
//
// Basic usage:
//
//	fig, grid, err := absplots.SubplotsMM(150, 100, 2, 2,
//	    absplots.MarginsMM(10, 5, 10, 5, 5, 5))
//	if err != nil {
//	    // handle error
//	}
//	grid.At(0, 0).Title.Text = "top left"
//	if err := fig.Save("figure.png"); err != nil {
//	    // handle error
//	}
//
// Margins may mix units, including pass-through fractions in the library's
// native representation:
//
//	m := absplots.Margins{
//	    Left:   unit.MM(10),
//	    Right:  unit.Inches(0.2),
//	    Bottom: unit.Frac(0.1),
//	}
//
// The axes returned by Subplots, GridSpec and AddAxes are ordinary
// gonum.org/v1/plot plots, so all downstream plotting functionality applies
// unchanged. For unequal cell sizes and cells spanning several rows or
// columns, see [Figure.GridSpec].
package absplots

import "github.com/juseg/absplots/unit"

// Subplots creates a figure of the given physical size together with an
// nrows by ncols grid of axes laid out with the given margins. All conversion
// and validation happens before any figure object is created: unrecognized
// units surface as *unit.InvalidUnitError and margins leaving no plot area as
// *DegenerateLayoutError.
func Subplots(width, height unit.Length, nrows, ncols int, m Margins, opts ...Option) (*Figure, *Grid, error) {
	fig, err := New(width, height, opts...)
	if err != nil {
		return nil, nil, err
	}
	grid, err := fig.Subplots(nrows, ncols, m)
	if err != nil {
		return nil, nil, err
	}
	return fig, grid, nil
}

// SubplotsMM is Subplots with the figure size in millimeters.
func SubplotsMM(width, height float64, nrows, ncols int, m Margins, opts ...Option) (*Figure, *Grid, error) {
	return Subplots(unit.MM(width), unit.MM(height), nrows, ncols, m, opts...)
}

// SubplotsInches is Subplots with the figure size in inches.
func SubplotsInches(width, height float64, nrows, ncols int, m Margins, opts ...Option) (*Figure, *Grid, error) {
	return Subplots(unit.Inches(width), unit.Inches(height), nrows, ncols, m, opts...)
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSubplots is a helper that wraps a call to Subplots and panics if the
// error is non-nil.
//
// Example:
//
//	fig, grid := absplots.MustSubplots(absplots.SubplotsMM(150, 100, 2, 2, m))
func MustSubplots(fig *Figure, grid *Grid, err error) (*Figure, *Grid) {
	if err != nil {
		panic(err)
	}
	return fig, grid
}
