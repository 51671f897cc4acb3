package absplots

import (
	"errors"
	"math"
	"testing"

	"github.com/juseg/absplots/unit"
)

func logoGridSpec(t *testing.T) (*Figure, *GridSpec) {
	t.Helper()
	fig, err := NewMM(120, 40)
	if err != nil {
		t.Fatalf("NewMM error: %v", err)
	}
	gs, err := fig.GridSpec(1, 2, UniformMargins(unit.MM(10)))
	if err != nil {
		t.Fatalf("GridSpec error: %v", err)
	}
	return fig, gs
}

func TestGridSpecEqualCells(t *testing.T) {
	_, gs := logoGridSpec(t)

	c0, err := gs.Cell(0, 0)
	if err != nil {
		t.Fatalf("Cell error: %v", err)
	}
	c1, err := gs.Cell(0, 1)
	if err != nil {
		t.Fatalf("Cell error: %v", err)
	}
	if math.Abs(c0.Width-c1.Width) > 1e-12 {
		t.Errorf("equal-ratio cells have widths %v and %v", c0.Width, c1.Width)
	}
	if math.Abs(c0.Left-10.0/120) > 1e-12 {
		t.Errorf("first cell left = %v, want %v", c0.Left, 10.0/120)
	}
	if math.Abs(c1.Right()-(1-10.0/120)) > 1e-12 {
		t.Errorf("last cell right = %v, want %v", c1.Right(), 1-10.0/120)
	}
	if math.Abs(c1.Left-c0.Right()-10.0/120) > 1e-12 {
		t.Errorf("gap between cells = %v, want %v", c1.Left-c0.Right(), 10.0/120)
	}
}

func TestGridSpecWidthRatios(t *testing.T) {
	_, gs := logoGridSpec(t)
	gs.WidthRatios(3, 4)

	c0, err := gs.Cell(0, 0)
	if err != nil {
		t.Fatalf("Cell error: %v", err)
	}
	c1, err := gs.Cell(0, 1)
	if err != nil {
		t.Fatalf("Cell error: %v", err)
	}
	if got := c1.Width / c0.Width; math.Abs(got-4.0/3) > 1e-12 {
		t.Errorf("width ratio = %v, want 4/3", got)
	}
	// ratios redistribute the plot area without changing its extent
	total := c0.Width + c1.Width + 3*10.0/120
	if math.Abs(total-1) > 1e-12 {
		t.Errorf("cells and margins cover %v of the width, want 1", total)
	}
}

func TestGridSpecSpan(t *testing.T) {
	fig, err := NewMM(120, 80)
	if err != nil {
		t.Fatalf("NewMM error: %v", err)
	}
	gs, err := fig.GridSpec(3, 3, MarginsMM(10, 5, 10, 5, 5, 5))
	if err != nil {
		t.Fatalf("GridSpec error: %v", err)
	}

	topLeft, err := gs.Cell(0, 0)
	if err != nil {
		t.Fatalf("Cell error: %v", err)
	}
	topRight, err := gs.Cell(0, 2)
	if err != nil {
		t.Fatalf("Cell error: %v", err)
	}
	bottomRight, err := gs.Cell(2, 2)
	if err != nil {
		t.Fatalf("Cell error: %v", err)
	}

	row, err := gs.spanRect(0, 0, 0, 2)
	if err != nil {
		t.Fatalf("spanRect error: %v", err)
	}
	if math.Abs(row.Left-topLeft.Left) > 1e-12 || math.Abs(row.Right()-topRight.Right()) > 1e-12 {
		t.Errorf("row span covers [%v, %v], want [%v, %v]",
			row.Left, row.Right(), topLeft.Left, topRight.Right())
	}
	if math.Abs(row.Height-topLeft.Height) > 1e-12 {
		t.Errorf("row span height = %v, want single-cell height %v", row.Height, topLeft.Height)
	}

	col, err := gs.spanRect(0, 2, 2, 2)
	if err != nil {
		t.Fatalf("spanRect error: %v", err)
	}
	if math.Abs(col.Bottom-bottomRight.Bottom) > 1e-12 || math.Abs(col.Top()-topRight.Top()) > 1e-12 {
		t.Errorf("column span covers [%v, %v], want [%v, %v]",
			col.Bottom, col.Top(), bottomRight.Bottom, topRight.Top())
	}
}

func TestGridSpecAxesRegistered(t *testing.T) {
	fig, gs := logoGridSpec(t)

	ax, err := gs.At(0, 0)
	if err != nil {
		t.Fatalf("At error: %v", err)
	}
	if ax == nil {
		t.Fatal("At returned nil axes")
	}
	wide, err := gs.Span(0, 0, 0, 1)
	if err != nil {
		t.Fatalf("Span error: %v", err)
	}
	if wide == ax {
		t.Error("Span returned an already existing axes")
	}
	if len(fig.axes) != 2 {
		t.Errorf("figure holds %d axes, want 2", len(fig.axes))
	}
}

func TestGridSpecCellRange(t *testing.T) {
	_, gs := logoGridSpec(t)

	cases := [][4]int{
		{0, 2, 0, 2},   // column out of range
		{1, 0, 1, 0},   // row out of range
		{0, 1, 0, 0},   // inverted span
		{-1, 0, 0, 0},  // negative index
		{0, 0, 0, 100}, // far out of range
	}
	for _, c := range cases {
		if _, err := gs.Span(c[0], c[1], c[2], c[3]); !errors.Is(err, ErrCellRange) {
			t.Errorf("Span(%d, %d, %d, %d): err = %v, want ErrCellRange", c[0], c[1], c[2], c[3], err)
		}
	}
}

func TestGridSpecRatioCount(t *testing.T) {
	_, gs := logoGridSpec(t)

	gs.WidthRatios(1, 2, 3)
	if _, err := gs.At(0, 0); !errors.Is(err, ErrRatioCount) {
		t.Errorf("three ratios for two columns: err = %v, want ErrRatioCount", err)
	}

	gs.WidthRatios(1, -2)
	if _, err := gs.At(0, 0); !errors.Is(err, ErrRatioCount) {
		t.Errorf("negative ratio: err = %v, want ErrRatioCount", err)
	}
}

func TestGridSpecDegenerate(t *testing.T) {
	fig, err := NewMM(120, 40)
	if err != nil {
		t.Fatalf("NewMM error: %v", err)
	}
	// two 60 mm gaps cannot fit a 120 mm wide 3-column grid
	_, err = fig.GridSpec(1, 3, MarginsMM(10, 10, 5, 5, 60, 5))
	var de *DegenerateLayoutError
	if !errors.As(err, &de) {
		t.Fatalf("err = %v, want *DegenerateLayoutError", err)
	}
	if de.Axis != "width" {
		t.Errorf("degenerate axis = %q, want \"width\"", de.Axis)
	}
}
