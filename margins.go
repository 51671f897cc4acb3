package absplots

import (
	"errors"

	"github.com/juseg/absplots/unit"
)

// Margins specifies the outer margins and inter-subplot spacing of a figure.
// Left, Right and Wspace are measured along the figure width; Bottom, Top and
// Hspace along the figure height. Each offset may be given in millimeters,
// inches, or as an already-fractional value (unit.Frac) for interoperability
// with callers working in the plotting library's native units. The zero value
// means no margins and no spacing.
type Margins struct {
	Left   unit.Length
	Right  unit.Length
	Bottom unit.Length
	Top    unit.Length
	Wspace unit.Length
	Hspace unit.Length
}

// MarginsMM builds a Margins with every offset in millimeters.
func MarginsMM(left, right, bottom, top, wspace, hspace float64) Margins {
	return Margins{
		Left:   unit.MM(left),
		Right:  unit.MM(right),
		Bottom: unit.MM(bottom),
		Top:    unit.MM(top),
		Wspace: unit.MM(wspace),
		Hspace: unit.MM(hspace),
	}
}

// UniformMargins sets every offset, including inter-subplot spacing, to l.
func UniformMargins(l unit.Length) Margins {
	return Margins{Left: l, Right: l, Bottom: l, Top: l, Wspace: l, Hspace: l}
}

// Fractions holds margins expressed as fractions of the figure dimensions,
// the plotting library's native margin representation. Left, Right and Wspace
// are fractions of the width; Bottom, Top and Hspace of the height.
type Fractions struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
	Wspace float64
	Hspace float64
}

// Fractions converts the margins to fractions of a figure that is width by
// height inches. Absolute offsets are converted to inches and divided by the
// corresponding figure dimension; fractional offsets pass through unchanged.
// An offset with an unrecognized unit returns a *unit.InvalidUnitError naming
// the offending parameter.
func (m Margins) Fractions(width, height float64) (Fractions, error) {
	if width <= 0 || height <= 0 {
		return Fractions{}, ErrFigureSize
	}

	var fr Fractions
	for _, conv := range []struct {
		dst  *float64
		l    unit.Length
		dim  float64
		name string
	}{
		{&fr.Left, m.Left, width, "left"},
		{&fr.Right, m.Right, width, "right"},
		{&fr.Bottom, m.Bottom, height, "bottom"},
		{&fr.Top, m.Top, height, "top"},
		{&fr.Wspace, m.Wspace, width, "wspace"},
		{&fr.Hspace, m.Hspace, height, "hspace"},
	} {
		f, err := fraction(conv.l, conv.dim, conv.name)
		if err != nil {
			return Fractions{}, err
		}
		*conv.dst = f
	}
	return fr, nil
}

// fraction resolves one margin offset against a figure dimension in inches.
func fraction(l unit.Length, dim float64, name string) (float64, error) {
	if l.Unit == unit.Fraction {
		return l.Value, nil
	}
	in, err := unit.ToInches(l.Value, l.Unit)
	if err != nil {
		var ue *unit.InvalidUnitError
		if errors.As(err, &ue) {
			ue.Param = name
		}
		return 0, err
	}
	return in / dim, nil
}

// validate checks that the fractions leave a positive plot area for an
// nrows by ncols grid.
func (fr Fractions) validate(nrows, ncols int) error {
	wtotal := fr.Left + fr.Right + float64(ncols-1)*fr.Wspace
	htotal := fr.Bottom + fr.Top + float64(nrows-1)*fr.Hspace
	switch {
	case fr.Left < 0 || fr.Right < 0 || fr.Wspace < 0 || wtotal >= 1:
		return &DegenerateLayoutError{Axis: "width", Fractions: fr, Total: wtotal}
	case fr.Bottom < 0 || fr.Top < 0 || fr.Hspace < 0 || htotal >= 1:
		return &DegenerateLayoutError{Axis: "height", Fractions: fr, Total: htotal}
	}
	return nil
}

// Rect is a rectangle in figure coordinates, where (0, 0) is the bottom-left
// corner of the figure and (1, 1) the top-right.
type Rect struct {
	Left   float64
	Bottom float64
	Width  float64
	Height float64
}

// Right returns the right edge of the rectangle.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Top returns the top edge of the rectangle.
func (r Rect) Top() float64 {
	return r.Bottom + r.Height
}
