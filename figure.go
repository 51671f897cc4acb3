package absplots

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/juseg/absplots/unit"
)

// Figure is a drawing surface with a physical size. It records the axes and
// subplot grids placed on it and renders them through the plotting library's
// canvas backends when saved. The axes themselves are plain plotting-library
// objects; the figure never inspects or mutates them beyond drawing.
type Figure struct {
	width  vg.Length
	height vg.Length
	opts   options

	grids []*Grid
	axes  []placedAxes
}

// placedAxes is a single axes pinned to a figure-fraction rectangle.
type placedAxes struct {
	plot *plot.Plot
	rect Rect
}

// New creates a figure of the given physical size. The dimensions must be
// absolute lengths (millimeters or inches) and strictly positive.
func New(width, height unit.Length, opts ...Option) (*Figure, error) {
	w, err := inchesOf(width, "figsize width")
	if err != nil {
		return nil, err
	}
	h, err := inchesOf(height, "figsize height")
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, ErrFigureSize
	}

	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	return &Figure{
		width:  vg.Length(w) * vg.Inch,
		height: vg.Length(h) * vg.Inch,
		opts:   o,
	}, nil
}

// NewMM creates a figure of width by height millimeters.
func NewMM(width, height float64, opts ...Option) (*Figure, error) {
	return New(unit.MM(width), unit.MM(height), opts...)
}

// NewInches creates a figure of width by height inches.
func NewInches(width, height float64, opts ...Option) (*Figure, error) {
	return New(unit.Inches(width), unit.Inches(height), opts...)
}

// inchesOf converts a length to inches, tagging conversion errors with the
// parameter name.
func inchesOf(l unit.Length, name string) (float64, error) {
	v, err := l.Inches()
	if err != nil {
		var ue *unit.InvalidUnitError
		if errors.As(err, &ue) {
			ue.Param = name
		}
		return 0, err
	}
	return v, nil
}

// SizeInches returns the figure dimensions in inches.
func (f *Figure) SizeInches() (width, height float64) {
	return float64(f.width / vg.Inch), float64(f.height / vg.Inch)
}

// SizeMM returns the figure dimensions in millimeters.
func (f *Figure) SizeMM() (width, height float64) {
	w, h := f.SizeInches()
	return w * unit.MMPerInch, h * unit.MMPerInch
}

// Subplots adds an nrows by ncols grid of axes laid out with the given
// margins. The margins are converted to fractions of the figure dimensions
// and validated before any axes are created: margins that leave no plot area
// return a *DegenerateLayoutError, and offsets with an unrecognized unit a
// *unit.InvalidUnitError.
func (f *Figure) Subplots(nrows, ncols int, m Margins) (*Grid, error) {
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
	g := newGrid(nrows, ncols, fr, f.opts)
	f.grids = append(f.grids, g)
	return g, nil
}

// AddAxes places a single axes at the given position in figure fractions and
// returns it.
func (f *Figure) AddAxes(r Rect) *plot.Plot {
	p := plot.New()
	f.opts.applyFont(p)
	f.axes = append(f.axes, placedAxes{plot: p, rect: r})
	return p
}

// AddAxesInches places a single axes whose position and size are given in
// inches from the bottom-left corner of the figure.
func (f *Figure) AddAxesInches(left, bottom, width, height float64) *plot.Plot {
	w, h := f.SizeInches()
	return f.AddAxes(Rect{
		Left:   left / w,
		Bottom: bottom / h,
		Width:  width / w,
		Height: height / h,
	})
}

// AddAxesMM places a single axes whose position and size are given in
// millimeters from the bottom-left corner of the figure.
func (f *Figure) AddAxesMM(left, bottom, width, height float64) *plot.Plot {
	return f.AddAxesInches(
		left/unit.MMPerInch,
		bottom/unit.MMPerInch,
		width/unit.MMPerInch,
		height/unit.MMPerInch,
	)
}

// Text draws a label at the given position in figure fractions, outside any
// axes. It is typically used to annotate figure margins.
func (f *Figure) Text(x, y float64, s string) error {
	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{s},
	})
	if err != nil {
		return err
	}

	// A full-figure overlay with hidden axes and unit data coordinates
	// places the label in figure fractions.
	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = color.Transparent
	f.opts.applyFont(p)
	p.Add(lbl)
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	f.axes = append(f.axes, placedAxes{plot: p, rect: Rect{Width: 1, Height: 1}})
	return nil
}

// Draw renders the figure onto a caller-supplied canvas: the background fill
// first, then every subplot grid, then individually placed axes in the order
// they were added.
func (f *Figure) Draw(dc draw.Canvas) {
	if f.opts.background != nil {
		dc.SetColor(f.opts.background)
		var p vg.Path
		p.Move(vg.Point{X: dc.Min.X, Y: dc.Min.Y})
		p.Line(vg.Point{X: dc.Max.X, Y: dc.Min.Y})
		p.Line(vg.Point{X: dc.Max.X, Y: dc.Max.Y})
		p.Line(vg.Point{X: dc.Min.X, Y: dc.Max.Y})
		p.Close()
		dc.Fill(p)
	}
	for _, g := range f.grids {
		g.draw(dc)
	}
	for _, a := range f.axes {
		a.plot.Draw(subCanvas(dc, a.rect))
	}
}

// Image rasterizes the figure at its configured DPI and returns the result.
func (f *Figure) Image() image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(f.width, f.height),
		vgimg.UseDPI(f.opts.dpi),
	)
	f.Draw(draw.New(c))
	return c.Image()
}

// Save renders the figure to a file, choosing the backend from the file
// extension: .png, .jpg/.jpeg and .tif/.tiff rasterize at the figure's DPI,
// while .svg, .pdf and .eps produce vector output. An unknown extension
// returns ErrFormat.
func (f *Figure) Save(path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	var out io.WriterTo
	switch ext {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		c := vgimg.NewWith(
			vgimg.UseWH(f.width, f.height),
			vgimg.UseDPI(f.opts.dpi),
		)
		f.Draw(draw.New(c))
		switch ext {
		case ".png":
			out = vgimg.PngCanvas{Canvas: c}
		case ".jpg", ".jpeg":
			out = vgimg.JpegCanvas{Canvas: c}
		default:
			out = vgimg.TiffCanvas{Canvas: c}
		}
	case ".svg":
		c := vgsvg.New(f.width, f.height)
		f.Draw(draw.New(c))
		out = c
	case ".pdf":
		c := vgpdf.New(f.width, f.height)
		f.Draw(draw.New(c))
		out = c
	case ".eps":
		c := vgeps.New(f.width, f.height)
		f.Draw(draw.New(c))
		out = c
	default:
		return fmt.Errorf("%w: %q", ErrFormat, ext)
	}

	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := out.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// subCanvas restricts dc to the figure-fraction rectangle r.
func subCanvas(dc draw.Canvas, r Rect) draw.Canvas {
	w := dc.Max.X - dc.Min.X
	h := dc.Max.Y - dc.Min.Y
	return draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{
				X: dc.Min.X + vg.Length(r.Left)*w,
				Y: dc.Min.Y + vg.Length(r.Bottom)*h,
			},
			Max: vg.Point{
				X: dc.Min.X + vg.Length(r.Right())*w,
				Y: dc.Min.Y + vg.Length(r.Top())*h,
			},
		},
	}
}
