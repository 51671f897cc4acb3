package absplots

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Grid is a rectangular arrangement of axes created by Subplots. Row 0 is the
// top row, as in the underlying tile layout. Layout is delegated to the
// plotting library's native subplot-grid constructor; the grid only records
// the margin fractions it was built from.
type Grid struct {
	rows, cols int
	fr         Fractions
	axes       [][]*plot.Plot
}

func newGrid(nrows, ncols int, fr Fractions, o options) *Grid {
	axes := make([][]*plot.Plot, nrows)
	for i := range axes {
		axes[i] = make([]*plot.Plot, ncols)
		for j := range axes[i] {
			p := plot.New()
			o.applyFont(p)
			axes[i][j] = p
		}
	}
	return &Grid{rows: nrows, cols: ncols, fr: fr, axes: axes}
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the axes at the given row and column, with row 0 at the top.
func (g *Grid) At(row, col int) *plot.Plot {
	return g.axes[row][col]
}

// Flat returns all axes in row-major order, top-left first.
func (g *Grid) Flat() []*plot.Plot {
	flat := make([]*plot.Plot, 0, g.rows*g.cols)
	for _, row := range g.axes {
		flat = append(flat, row...)
	}
	return flat
}

// Fractions returns the margin fractions the grid was laid out with.
func (g *Grid) Fractions() Fractions {
	return g.fr
}

// Cell returns the figure-fraction rectangle covered by the axes at the given
// row and column.
func (g *Grid) Cell(row, col int) Rect {
	cw := (1 - g.fr.Left - g.fr.Right - float64(g.cols-1)*g.fr.Wspace) / float64(g.cols)
	ch := (1 - g.fr.Bottom - g.fr.Top - float64(g.rows-1)*g.fr.Hspace) / float64(g.rows)
	return Rect{
		Left:   g.fr.Left + float64(col)*(cw+g.fr.Wspace),
		Bottom: g.fr.Bottom + float64(g.rows-1-row)*(ch+g.fr.Hspace),
		Width:  cw,
		Height: ch,
	}
}

// tiles expresses the margin fractions as tile pads on the given canvas.
func (g *Grid) tiles(dc draw.Canvas) draw.Tiles {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	return draw.Tiles{
		Rows:      g.rows,
		Cols:      g.cols,
		PadLeft:   vg.Length(g.fr.Left) * w,
		PadRight:  vg.Length(g.fr.Right) * w,
		PadBottom: vg.Length(g.fr.Bottom) * h,
		PadTop:    vg.Length(g.fr.Top) * h,
		PadX:      vg.Length(g.fr.Wspace) * w,
		PadY:      vg.Length(g.fr.Hspace) * h,
	}
}

// draw aligns the axes on the tile layout and renders them.
func (g *Grid) draw(dc draw.Canvas) {
	cvs := plot.Align(g.axes, g.tiles(dc), dc)
	for i := range g.axes {
		for j := range g.axes[i] {
			g.axes[i][j].Draw(cvs[i][j])
		}
	}
}
