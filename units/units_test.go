package units

import (
	"math"
	"testing"
)

func TestLength_Conversions(t *testing.T) {
	tests := []struct {
		name   string
		length Length
		unit   Unit
		want   float64
	}{
		{"letter width in cm", Twips(12240), Centimeter, 21.59},
		{"letter height in inches", Twips(15840), Inch, 11},
		{"12pt font", HalfPoints(24), Point, 12},
		{"26pt font", HalfPoints(52), Point, 26},
		{"one inch in mm", Inches(1), Millimeter, 25.4},
		{"one cm in emu", Cm(1), EMU, 360000},
		{"one point in twips", Pt(1), Twip, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.length.In(tt.unit)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("In(%s) = %v, want %v", tt.unit, got, tt.want)
			}
		})
	}
}

func TestLength_Twips(t *testing.T) {
	if got := Twips(567).Twips(); got != 567 {
		t.Errorf("Twips() = %d, want 567", got)
	}
	if got := Cm(1).Twips(); got != 567 {
		t.Errorf("Cm(1).Twips() = %d, want 567", got)
	}
}

func TestParse(t *testing.T) {
	for _, name := range []string{"pt", "cm", "mm", "inches", "emu", "twips"} {
		u, err := Parse(name)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", name, err)
			continue
		}
		if string(u) != name {
			t.Errorf("Parse(%q) = %q", name, u)
		}
	}

	if _, err := Parse("px"); err == nil {
		t.Error("Parse(px) should fail")
	}
	if Unit("in").Valid() {
		t.Error(`Unit("in").Valid() = true, want false`)
	}
}
