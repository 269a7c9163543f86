// Package units holds the static measurement-unit registry: canonical
// codes, alias resolution, same-kind conversion, and the display
// promotion policy. The table is built once at init and never mutated.
package units

import "strings"

// Kind classifies a unit's measurement type. Conversion is never
// defined across kinds; a volume never becomes a weight.
type Kind string

const (
	KindVolume Kind = "volume"
	KindWeight Kind = "weight"
	KindCount  Kind = "count"
)

// System splits each kind into conversion families. Factors exist
// only within a family: tsp sums with cup, ml sums with l, but cup
// never silently converts to ml — "1 cup flour" and "200 ml flour"
// stay separate list items.
type System string

const (
	SystemMetric   System = "metric"
	SystemImperial System = "imperial"
	SystemNone     System = "none"
)

// Unit is one canonical unit. ToBase is the factor to the family's
// smallest listed unit (ml, tsp, mg, oz; 1 for count units).
type Unit struct {
	Code    string
	Kind    Kind
	System  System
	ToBase  float64
	Aliases []string
}

var table = []Unit{
	// metric volume (base = ml)
	{Code: "ml", Kind: KindVolume, System: SystemMetric, ToBase: 1, Aliases: []string{"ml", "milliliter", "milliliters", "millilitre", "millilitres"}},
	{Code: "l", Kind: KindVolume, System: SystemMetric, ToBase: 1000, Aliases: []string{"l", "liter", "liters", "litre", "litres"}},

	// imperial volume (base = tsp)
	{Code: "tsp", Kind: KindVolume, System: SystemImperial, ToBase: 1, Aliases: []string{"tsp", "tsps", "teaspoon", "teaspoons"}},
	{Code: "tbsp", Kind: KindVolume, System: SystemImperial, ToBase: 3, Aliases: []string{"tbsp", "tbsps", "tbs", "tablespoon", "tablespoons"}},
	{Code: "fl oz", Kind: KindVolume, System: SystemImperial, ToBase: 6, Aliases: []string{"floz", "fl oz", "fluid ounce", "fluid ounces"}},
	{Code: "cup", Kind: KindVolume, System: SystemImperial, ToBase: 48, Aliases: []string{"cup", "cups", "c"}},
	{Code: "pint", Kind: KindVolume, System: SystemImperial, ToBase: 96, Aliases: []string{"pint", "pints", "pt"}},
	{Code: "quart", Kind: KindVolume, System: SystemImperial, ToBase: 192, Aliases: []string{"quart", "quarts", "qt"}},
	{Code: "gallon", Kind: KindVolume, System: SystemImperial, ToBase: 768, Aliases: []string{"gallon", "gallons", "gal"}},

	// metric weight (base = mg)
	{Code: "mg", Kind: KindWeight, System: SystemMetric, ToBase: 1, Aliases: []string{"mg", "milligram", "milligrams"}},
	{Code: "g", Kind: KindWeight, System: SystemMetric, ToBase: 1000, Aliases: []string{"g", "gram", "grams", "gr"}},
	{Code: "kg", Kind: KindWeight, System: SystemMetric, ToBase: 1000000, Aliases: []string{"kg", "kilogram", "kilograms", "kilo", "kilos"}},

	// imperial weight (base = oz)
	{Code: "oz", Kind: KindWeight, System: SystemImperial, ToBase: 1, Aliases: []string{"oz", "ounce", "ounces"}},
	{Code: "lb", Kind: KindWeight, System: SystemImperial, ToBase: 16, Aliases: []string{"lb", "lbs", "pound", "pounds"}},

	// count-like kitchen units. These never convert to each other;
	// "2 cloves" + "1 can" is not a sum anyone wants.
	{Code: "clove", Kind: KindCount, System: SystemNone, ToBase: 1, Aliases: []string{"clove", "cloves"}},
	{Code: "can", Kind: KindCount, System: SystemNone, ToBase: 1, Aliases: []string{"can", "cans"}},
	{Code: "slice", Kind: KindCount, System: SystemNone, ToBase: 1, Aliases: []string{"slice", "slices"}},
	{Code: "stick", Kind: KindCount, System: SystemNone, ToBase: 1, Aliases: []string{"stick", "sticks"}},
	{Code: "bunch", Kind: KindCount, System: SystemNone, ToBase: 1, Aliases: []string{"bunch", "bunches"}},
	{Code: "head", Kind: KindCount, System: SystemNone, ToBase: 1, Aliases: []string{"head", "heads"}},
	{Code: "package", Kind: KindCount, System: SystemNone, ToBase: 1, Aliases: []string{"package", "packages", "pkg"}},
	{Code: "pinch", Kind: KindCount, System: SystemNone, ToBase: 1, Aliases: []string{"pinch", "pinches"}},
	{Code: "dash", Kind: KindCount, System: SystemNone, ToBase: 1, Aliases: []string{"dash", "dashes"}},
}

var (
	byCode  map[string]Unit
	byAlias map[string]string
)

func init() {
	byCode = make(map[string]Unit, len(table))
	byAlias = make(map[string]string)
	for _, u := range table {
		byCode[u.Code] = u
		for _, a := range u.Aliases {
			byAlias[strings.ToLower(a)] = u.Code
		}
	}
}

// Resolve maps a token to its canonical unit code. Matching is
// case-insensitive and tolerates a trailing period ("tbsp.").
func Resolve(token string) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	t = strings.TrimSuffix(t, ".")
	code, ok := byAlias[t]
	return code, ok
}

// KindOf returns the measurement kind for a canonical code.
func KindOf(code string) (Kind, bool) {
	u, ok := byCode[code]
	return u.Kind, ok
}

// SystemOf returns the conversion family for a canonical code.
func SystemOf(code string) (System, bool) {
	u, ok := byCode[code]
	return u.System, ok
}

// MostGranular returns whichever of two same-family codes has the
// smaller base factor, i.e. the unit that keeps merged totals precise.
func MostGranular(a, b string) string {
	ua, oka := byCode[a]
	ub, okb := byCode[b]
	if !oka {
		return b
	}
	if !okb {
		return a
	}
	if ub.ToBase < ua.ToBase {
		return b
	}
	return a
}
