// Package units provides the length type used for document geometry.
//
// Lengths are stored as English Metric Units (EMU), the integer unit used
// throughout Office Open XML. WordprocessingML itself stores most lengths in
// twips (1/20 point) and font sizes in half-points; both convert exactly to
// EMU, so no precision is lost on parse.
package units

import (
	"fmt"
	"strings"
)

// EMU per physical unit.
const (
	EMUPerInch  = 914400
	EMUPerCm    = 360000
	EMUPerMm    = 36000
	EMUPerPt    = 12700
	EMUPerTwip  = 635
	twipsPerPt  = 20
	halfPtPerPt = 2
)

// Length is a distance in EMU.
type Length int64

// Inches returns a Length for the given number of inches.
func Inches(v float64) Length { return Length(v * EMUPerInch) }

// Cm returns a Length for the given number of centimeters.
func Cm(v float64) Length { return Length(v * EMUPerCm) }

// Mm returns a Length for the given number of millimeters.
func Mm(v float64) Length { return Length(v * EMUPerMm) }

// Pt returns a Length for the given number of points.
func Pt(v float64) Length { return Length(v * EMUPerPt) }

// Twips returns a Length for the given number of twips.
func Twips(v int64) Length { return Length(v * EMUPerTwip) }

// HalfPoints returns a Length for a font size expressed in half-points,
// the unit of w:sz.
func HalfPoints(v int64) Length { return Pt(float64(v) / halfPtPerPt) }

// Emu returns the raw EMU value.
func (l Length) Emu() int64 { return int64(l) }

// Inches returns the length in inches.
func (l Length) Inches() float64 { return float64(l) / EMUPerInch }

// Cm returns the length in centimeters.
func (l Length) Cm() float64 { return float64(l) / EMUPerCm }

// Mm returns the length in millimeters.
func (l Length) Mm() float64 { return float64(l) / EMUPerMm }

// Pt returns the length in points.
func (l Length) Pt() float64 { return float64(l) / EMUPerPt }

// Twips returns the length in twips, rounded to the nearest twip.
func (l Length) Twips() int64 {
	return (int64(l) + EMUPerTwip/2) / EMUPerTwip
}

// In converts the length to the given unit.
func (l Length) In(u Unit) float64 {
	switch u {
	case Inch:
		return l.Inches()
	case Centimeter:
		return l.Cm()
	case Millimeter:
		return l.Mm()
	case Point:
		return l.Pt()
	case Twip:
		return float64(l) / EMUPerTwip
	default:
		return float64(l)
	}
}

// String implements fmt.Stringer.
func (l Length) String() string {
	return fmt.Sprintf("%dEMU", int64(l))
}

// Unit names a physical unit a requirement can be declared in.
type Unit string

// Supported units. The names are the ones used in requirement files.
const (
	Point      Unit = "pt"
	Centimeter Unit = "cm"
	Millimeter Unit = "mm"
	Inch       Unit = "inches"
	EMU        Unit = "emu"
	Twip       Unit = "twips"
)

// All lists every supported unit in declaration order.
var All = []Unit{Point, Centimeter, Millimeter, Inch, EMU, Twip}

// Names returns the unit names as plain strings.
func Names() []string {
	names := make([]string, len(All))
	for i, u := range All {
		names[i] = string(u)
	}
	return names
}

// Parse returns the Unit for s.
func Parse(s string) (Unit, error) {
	for _, u := range All {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("unknown unit %q (want one of %s)", s, strings.Join(Names(), ", "))
}

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool {
	_, err := Parse(string(u))
	return err == nil
}
