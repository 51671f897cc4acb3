package absplots

import (
	"fmt"

	"gonum.org/v1/plot"
)

// GridSpec is a subplot layout that, unlike Grid, supports unequal cell sizes
// through width and height ratios, and axes spanning several cells. Axes are
// created lazily with At and Span and registered on the figure.
type GridSpec struct {
	fig        *Figure
	rows, cols int
	fr         Fractions
	wratios    []float64
	hratios    []float64
}

// GridSpec prepares an nrows by ncols cell layout with the given margins.
// The margins are validated the same way as in Subplots.
func (f *Figure) GridSpec(nrows, ncols int, m Margins) (*GridSpec, error) {
	if nrows < 1 || ncols < 1 {
		return nil, ErrGridShape
	}
	w, h := f.SizeInches()
	fr, err := m.Fractions(w, h)
	if err != nil {
		return nil, err
	}
	if err := fr.validate(nrows, ncols); err != nil {
		return nil, err
	}
	return &GridSpec{fig: f, rows: nrows, cols: ncols, fr: fr}, nil
}

// WidthRatios sets the relative widths of the columns. There must be one
// positive ratio per column; by default all columns are equally wide.
func (gs *GridSpec) WidthRatios(ratios ...float64) *GridSpec {
	gs.wratios = ratios
	return gs
}

// HeightRatios sets the relative heights of the rows, one positive ratio per
// row.
func (gs *GridSpec) HeightRatios(ratios ...float64) *GridSpec {
	gs.hratios = ratios
	return gs
}

// At creates an axes occupying the cell at the given row and column, with
// row 0 at the top.
func (gs *GridSpec) At(row, col int) (*plot.Plot, error) {
	return gs.Span(row, col, row, col)
}

// Span creates an axes occupying the rectangular run of cells from
// (row0, col0) through (row1, col1) inclusive.
func (gs *GridSpec) Span(row0, col0, row1, col1 int) (*plot.Plot, error) {
	r, err := gs.spanRect(row0, col0, row1, col1)
	if err != nil {
		return nil, err
	}
	return gs.fig.AddAxes(r), nil
}

// Cell returns the figure-fraction rectangle of a single cell without
// creating an axes.
func (gs *GridSpec) Cell(row, col int) (Rect, error) {
	return gs.spanRect(row, col, row, col)
}

func (gs *GridSpec) spanRect(row0, col0, row1, col1 int) (Rect, error) {
	if row0 < 0 || col0 < 0 || row1 < row0 || col1 < col0 || row1 >= gs.rows || col1 >= gs.cols {
		return Rect{}, fmt.Errorf("%w: rows %d-%d, cols %d-%d in %dx%d grid",
			ErrCellRange, row0, row1, col0, col1, gs.rows, gs.cols)
	}

	xoffs, widths, err := axisOffsets(gs.cols, gs.wratios, gs.fr.Left, gs.fr.Right, gs.fr.Wspace)
	if err != nil {
		return Rect{}, err
	}
	// Row offsets are measured from the figure top, so the top margin plays
	// the near role and the bottom margin the far one.
	yoffs, heights, err := axisOffsets(gs.rows, gs.hratios, gs.fr.Top, gs.fr.Bottom, gs.fr.Hspace)
	if err != nil {
		return Rect{}, err
	}

	left := xoffs[col0]
	right := xoffs[col1] + widths[col1]
	top := 1 - yoffs[row0]
	bottom := 1 - (yoffs[row1] + heights[row1])
	return Rect{Left: left, Bottom: bottom, Width: right - left, Height: top - bottom}, nil
}

// axisOffsets splits one figure axis into n cells. It returns the offset of
// each cell from the near edge and each cell's size, both as fractions of the
// figure dimension. A nil ratios slice means equal cells.
func axisOffsets(n int, ratios []float64, near, far, space float64) (offs, sizes []float64, err error) {
	sum := float64(n)
	if ratios != nil {
		if len(ratios) != n {
			return nil, nil, fmt.Errorf("%w: %d ratios for %d cells", ErrRatioCount, len(ratios), n)
		}
		sum = 0
		for _, r := range ratios {
			if r <= 0 {
				return nil, nil, fmt.Errorf("%w: ratios must be positive", ErrRatioCount)
			}
			sum += r
		}
	}

	avail := 1 - near - far - float64(n-1)*space
	offs = make([]float64, n)
	sizes = make([]float64, n)
	x := near
	for i := 0; i < n; i++ {
		r := 1.0
		if ratios != nil {
			r = ratios[i]
		}
		offs[i] = x
		sizes[i] = avail * r / sum
		x += sizes[i] + space
	}
	return offs, sizes, nil
}
