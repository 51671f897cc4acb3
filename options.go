package absplots

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/sfnt"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg/vgimg"
)

// Option configures a Figure at construction time.
type Option func(*options) error

// options holds figure configuration.
type options struct {
	dpi        int
	background color.Color
	typeface   font.Typeface
}

// defaultOptions returns the default figure configuration: 96 DPI raster
// output, a white background, and the plotting library's default typeface.
func defaultOptions() options {
	return options{
		dpi:        vgimg.DefaultDPI,
		background: color.White,
	}
}

// WithDPI sets the resolution used by the raster output backends (PNG, JPEG,
// TIFF). Vector backends ignore it. At 254 DPI, millimeter dimensions map to
// whole pixels (10 px per mm).
func WithDPI(dpi int) Option {
	return func(o *options) error {
		if dpi <= 0 {
			return fmt.Errorf("absplots: DPI must be positive, got %d", dpi)
		}
		o.dpi = dpi
		return nil
	}
}

// WithBackground sets the color the figure is filled with before any axes are
// drawn. Use color.Transparent to suppress the fill.
func WithBackground(c color.Color) Option {
	return func(o *options) error {
		o.background = c
		return nil
	}
}

// WithFont registers a TTF or OTF font under the given typeface name and uses
// it for titles, axis labels, and tick labels of every axes created on the
// figure.
func WithFont(name string, ttf []byte) Option {
	return func(o *options) error {
		fnt, err := sfnt.Parse(ttf)
		if err != nil {
			return fmt.Errorf("absplots: parse font %q: %w", name, err)
		}
		font.DefaultCache.Add([]font.Face{{
			Font: font.Font{Typeface: font.Typeface(name)},
			Face: fnt,
		}})
		o.typeface = font.Typeface(name)
		return nil
	}
}

// applyFont switches every text element of p to the figure's typeface, when
// one was configured.
func (o options) applyFont(p *plot.Plot) {
	if o.typeface == "" {
		return
	}
	p.Title.TextStyle.Font.Typeface = o.typeface
	p.X.Label.TextStyle.Font.Typeface = o.typeface
	p.Y.Label.TextStyle.Font.Typeface = o.typeface
	p.X.Tick.Label.Font.Typeface = o.typeface
	p.Y.Tick.Label.Font.Typeface = o.typeface
	p.Legend.TextStyle.Font.Typeface = o.typeface
}
