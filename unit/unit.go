package unit

import "fmt"

// MMPerInch is the number of millimeters in one inch. The factor is exact by
// definition of the international inch.
const MMPerInch = 25.4

// Unit identifies the unit a Length value is expressed in.
type Unit int

const (
	// Millimeter is an absolute length of 1/25.4 inch.
	Millimeter Unit = iota
	// Inch is an absolute length of 25.4 millimeters.
	Inch
	// Fraction is a dimensionless proportion of a reference length, in the
	// interval [0, 1) for valid margins. It cannot be converted to an
	// absolute length without the reference.
	Fraction
)

// String returns the conventional abbreviation for the unit.
func (u Unit) String() string {
	switch u {
	case Millimeter:
		return "mm"
	case Inch:
		return "in"
	case Fraction:
		return "fraction"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// Length is a numeric value tagged with the unit it is expressed in.
type Length struct {
	Value float64
	Unit  Unit
}

// MM returns a Length of v millimeters.
func MM(v float64) Length {
	return Length{Value: v, Unit: Millimeter}
}

// Inches returns a Length of v inches.
func Inches(v float64) Length {
	return Length{Value: v, Unit: Inch}
}

// Frac returns a dimensionless Length that is the proportion v of some
// reference length.
func Frac(v float64) Length {
	return Length{Value: v, Unit: Fraction}
}

// Inches converts the length to inches. Fraction lengths have no absolute
// size and return an *InvalidUnitError, as do unrecognized unit tags.
func (l Length) Inches() (float64, error) {
	return ToInches(l.Value, l.Unit)
}

// Millimeters converts the length to millimeters under the same rules as
// Inches.
func (l Length) Millimeters() (float64, error) {
	in, err := ToInches(l.Value, l.Unit)
	if err != nil {
		return 0, err
	}
	return in * MMPerInch, nil
}

// ToInches converts a value in the given unit to inches. It returns an
// *InvalidUnitError if the unit is not an absolute physical unit.
func ToInches(v float64, u Unit) (float64, error) {
	switch u {
	case Millimeter:
		return v / MMPerInch, nil
	case Inch:
		return v, nil
	}
	return 0, &InvalidUnitError{Value: v, Unit: u}
}

// InvalidUnitError reports a length whose unit tag cannot be converted to an
// absolute physical unit. Param names the parameter the length was supplied
// for, when known.
type InvalidUnitError struct {
	Param string
	Value float64
	Unit  Unit
}

func (e *InvalidUnitError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("absplots: %s: cannot convert %v %v to an absolute length", e.Param, e.Value, e.Unit)
	}
	return fmt.Sprintf("absplots: cannot convert %v %v to an absolute length", e.Value, e.Unit)
}
