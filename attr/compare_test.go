package attr

import (
	"math"
	"testing"
)

func TestIsClose(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		tol  float64
		want bool
	}{
		{"equal", 21.59, 21.59, DefaultTolerance, true},
		{"within one percent", 100, 99.5, DefaultTolerance, true},
		{"outside one percent", 100, 98.9, DefaultTolerance, false},
		{"zero and zero", 0, 0, DefaultTolerance, true},
		{"zero and tiny", 0, 1e-12, DefaultTolerance, false},
		{"symmetric", 99.5, 100, DefaultTolerance, true},
		{"negative values", -1.25, -1.26, DefaultTolerance, true},
		{"nan", math.NaN(), math.NaN(), DefaultTolerance, false},
		{"inf", math.Inf(1), math.Inf(1), DefaultTolerance, true},
		{"inf and finite", math.Inf(1), 1e308, DefaultTolerance, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClose(tt.a, tt.b, tt.tol); got != tt.want {
				t.Errorf("IsClose(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.tol, got, tt.want)
			}
		})
	}
}

func TestIsClose_Boundary(t *testing.T) {
	// With a tolerance of 0.5, 4 and 2 differ by exactly the threshold.
	if !IsClose(4, 2, 0.5) {
		t.Error("IsClose(4, 2, 0.5) = false, want true at the exact threshold")
	}

	// One ULP above 4 pushes the difference past the threshold:
	// |a-2| = 2+2^-50 while 0.5*a = 2+2^-51.
	a := math.Nextafter(4, 5)
	if IsClose(a, 2, 0.5) {
		t.Errorf("IsClose(%v, 2, 0.5) = true, want false one ULP past the threshold", a)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name              string
		fetched, required Value
		want              bool
	}{
		{"float vs int", Float(26), Int(26), true},
		{"enum vs int", EnumMember("PORTRAIT", 0), Int(0), true},
		{"enum vs other int", EnumMember("PORTRAIT", 0), Int(1), false},
		{"bool vs bool", Boolean(true), Boolean(true), true},
		{"bool vs int", Boolean(true), Int(1), true},
		{"strings", Str("Calibri"), Str("Calibri"), true},
		{"string case", Str("Calibri"), Str("calibri"), false},
		{"string vs number", Str("26"), Int(26), false},
		{"undefined", Value{}, Int(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.fetched, tt.required, DefaultTolerance); got != tt.want {
				t.Errorf("Match(%v, %v) = %v, want %v", tt.fetched, tt.required, got, tt.want)
			}
		})
	}
}

func TestSymmetricDifference(t *testing.T) {
	fetched := []Value{Float(12), Str("Calibri"), Str("bold")}

	tests := []struct {
		name     string
		required []Value
		wantLen  int
	}{
		{"identical", []Value{Int(12), Str("Calibri"), Str("bold")}, 0},
		{"reordered", []Value{Str("bold"), Str("Calibri"), Int(12)}, 0},
		{"fetched has extra", []Value{Int(12), Str("Calibri")}, 1},
		{"required has extra", []Value{Int(12), Str("Calibri"), Str("bold"), Str("italic")}, 1},
		{"both have extra", []Value{Int(12), Str("Calibri"), Str("italic")}, 2},
		{"duplicates collapse", []Value{Int(12), Int(12), Str("Calibri"), Str("bold")}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := SymmetricDifference(fetched, tt.required, DefaultTolerance)
			if len(diff) != tt.wantLen {
				t.Errorf("len(diff) = %d (%v), want %d", len(diff), Join(diff), tt.wantLen)
			}
			// The relation is symmetric.
			if back := SymmetricDifference(tt.required, fetched, DefaultTolerance); len(back) != tt.wantLen {
				t.Errorf("reverse len(diff) = %d, want %d", len(back), tt.wantLen)
			}
			if SameSet(fetched, tt.required, DefaultTolerance) != (tt.wantLen == 0) {
				t.Errorf("SameSet disagrees with SymmetricDifference")
			}
		})
	}
}

func TestJoin(t *testing.T) {
	got := Join([]Value{Float(26), Str("Calibri")})
	if got != "26.0, Calibri" {
		t.Errorf("Join() = %q", got)
	}
}

func TestMap_Get(t *testing.T) {
	m := Map{"orientation": EnumMember("PORTRAIT", 0)}
	if !m.Get("orientation").Defined() {
		t.Error("expected orientation to be defined")
	}
	if m.Get("gutter").Defined() {
		t.Error("missing key should be undefined")
	}
	m["gutter"] = Float(0)
	if names := m.Names(); len(names) != 2 || names[0] != "gutter" {
		t.Errorf("Names() = %v", names)
	}
}
