// Package unit provides length values tagged with a physical unit and the
// conversions between them.
//
// A [Length] pairs a numeric value with a [Unit] tag. The recognized units are
// [Millimeter], [Inch], and [Fraction]. The first two are absolute physical
// units related by the fixed factor of 25.4 mm per inch. Fraction is a
// dimensionless proportion of some reference length (such as a figure width)
// and therefore has no absolute size of its own; [ToInches] rejects it.
//
// Construct lengths with the helpers:
//
//	margin := unit.MM(5)      // 5 millimeters
//	width := unit.Inches(8)   // 8 inches
//	pad := unit.Frac(0.125)   // 12.5% of a reference length
//
// The [Formatter] type renders lengths as human-readable labels using
// locale-aware number formatting.
package unit
