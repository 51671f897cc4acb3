package unit

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders lengths as human-readable labels, formatting the numeric
// part according to the conventions of a language (decimal separator,
// grouping). It is intended for figure annotations such as margin labels.
type Formatter struct {
	p *message.Printer
}

// NewFormatter returns a Formatter for the given language tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{p: message.NewPrinter(tag)}
}

// Length renders l with its unit abbreviation, e.g. "10 mm" or "0.5 in".
// Fraction lengths are rendered as a bare number since they carry no unit.
func (f *Formatter) Length(l Length) string {
	switch l.Unit {
	case Millimeter:
		return f.p.Sprintf("%v mm", number.Decimal(l.Value))
	case Inch:
		return f.p.Sprintf("%v in", number.Decimal(l.Value))
	}
	return f.p.Sprintf("%v", number.Decimal(l.Value))
}
