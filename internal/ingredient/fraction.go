package ingredient

import (
	"math"
	"strconv"
	"strings"
)

// vulgarValues maps single-rune Unicode fractions to their numeric
// value. These are the forms recipe sites actually emit.
var vulgarValues = map[rune]float64{
	'½': 0.5,
	'⅓': 1.0 / 3.0,
	'⅔': 2.0 / 3.0,
	'¼': 0.25,
	'¾': 0.75,
	'⅛': 0.125,
	'⅜': 0.375,
	'⅝': 0.625,
	'⅞': 0.875,
}

// fractionGlyphs maps eighths (1-7) to their display glyph.
var fractionGlyphs = map[int]string{
	1: "⅛",
	2: "¼",
	3: "⅜",
	4: "½",
	5: "⅝",
	6: "¾",
	7: "⅞",
}

// vulgarValue returns the numeric value of a Unicode fraction rune.
func vulgarValue(r rune) (float64, bool) {
	v, ok := vulgarValues[r]
	return v, ok
}

// FormatQuantity renders a quantity as a friendly mixed-number
// fraction: rounded to the nearest eighth below 1 and the nearest
// quarter at or above 1. Values that round to zero fall back to plain
// decimals with at most two places.
func FormatQuantity(v float64) string {
	step := 0.25
	if math.Abs(v) < 1 {
		step = 0.125
	}
	r := math.Round(v/step) * step
	if r == 0 {
		return trimDecimal(v)
	}

	whole := int(math.Floor(r + 1e-9))
	eighths := int(math.Round((r - float64(whole)) * 8))
	if eighths == 8 {
		whole++
		eighths = 0
	}

	switch {
	case eighths == 0:
		return strconv.Itoa(whole)
	case whole == 0:
		return fractionGlyphs[eighths]
	default:
		return strconv.Itoa(whole) + " " + fractionGlyphs[eighths]
	}
}

// trimDecimal formats with at most two decimal places, dropping
// trailing zeros.
func trimDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
