package attr

import (
	"math"
	"sort"
	"strings"
)

// DefaultTolerance is the relative tolerance used when none is configured.
// It absorbs the rounding introduced by converting twips and half-points
// into centimeters or inches.
const DefaultTolerance = 1e-2

// IsClose reports whether a and b are equal within the relative tolerance
// relTol: |a-b| <= relTol * max(|a|, |b|).
func IsClose(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= relTol*math.Max(math.Abs(a), math.Abs(b))
}

// Match reports whether fetched satisfies required. Numeric values
// (numbers, booleans, enum codes) use IsClose; strings must be identical.
// Undefined values never match.
func Match(fetched, required Value, relTol float64) bool {
	switch {
	case !fetched.Defined() || !required.Defined():
		return false
	case fetched.Numeric() && required.Numeric():
		return IsClose(fetched.num, required.num, relTol)
	case fetched.kind == String && required.kind == String:
		return fetched.str == required.str
	default:
		return false
	}
}

// SymmetricDifference returns the elements of a that have no match in b
// followed by the elements of b that have no match in a. Duplicates are
// collapsed, so the inputs behave as sets.
func SymmetricDifference(a, b []Value, relTol float64) []Value {
	var diff []Value
	for _, v := range unique(a, relTol) {
		if !containsMatch(b, v, relTol) {
			diff = append(diff, v)
		}
	}
	for _, v := range unique(b, relTol) {
		if !containsMatch(a, v, relTol) {
			diff = append(diff, v)
		}
	}
	return diff
}

// SameSet reports whether a and b contain the same elements, ignoring order
// and duplicates.
func SameSet(a, b []Value, relTol float64) bool {
	return len(SymmetricDifference(a, b, relTol)) == 0
}

// Join renders values separated by ", ".
func Join(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

func containsMatch(set []Value, v Value, relTol float64) bool {
	for _, s := range set {
		if Match(s, v, relTol) {
			return true
		}
	}
	return false
}

func unique(values []Value, relTol float64) []Value {
	out := make([]Value, 0, len(values))
	for _, v := range values {
		if !containsMatch(out, v, relTol) {
			out = append(out, v)
		}
	}
	return out
}

// Map holds named attribute values.
type Map map[string]Value

// Get returns the value for name, or an undefined Value.
func (m Map) Get(name string) Value {
	return m[name]
}

// Names returns the attribute names in sorted order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
