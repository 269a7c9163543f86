package units

import "github.com/rotisserie/eris"

// ErrIncompatibleUnits signals a conversion with no defined factor:
// across kinds, across metric/imperial families, or between distinct
// count units. The aggregator uses it to split line items; it is
// never surfaced to callers as a failure.
var ErrIncompatibleUnits = eris.New("units: incompatible units")

// Convert re-expresses a value from one canonical unit in another.
func Convert(v float64, from, to string) (float64, error) {
	if from == to {
		return v, nil
	}
	uf, ok := byCode[from]
	if !ok {
		return 0, eris.Errorf("units: unknown unit %q", from)
	}
	ut, ok := byCode[to]
	if !ok {
		return 0, eris.Errorf("units: unknown unit %q", to)
	}
	if uf.Kind != ut.Kind || uf.System != ut.System || uf.Kind == KindCount {
		return 0, eris.Wrapf(ErrIncompatibleUnits, "%s -> %s", from, to)
	}
	return v * uf.ToBase / ut.ToBase, nil
}

// Compatible reports whether two canonical codes can be summed.
func Compatible(a, b string) bool {
	if a == b {
		return true
	}
	ua, oka := byCode[a]
	ub, okb := byCode[b]
	return oka && okb && ua.Kind == ub.Kind && ua.System == ub.System && ua.Kind != KindCount
}
