// Package ingredient parses free-text recipe ingredient lines into
// structured quantities. Parsing is an ordered sequence of independent
// extraction steps (list marker, parenthetical note, trailing prep,
// quantity token, unit token, remainder) so each step can be tested and
// extended on its own.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/sells-group/grocery-cli/internal/model"
	"github.com/sells-group/grocery-cli/internal/units"
)

var (
	// Bullet or ordinal list markers copied in from pasted recipe text.
	listMarkerRe = regexp.MustCompile(`^\s*(?:[-*•–—]|\d+[.)])\s+`)

	// Quantity token alternatives, tried in order. Each must end at a
	// word boundary so "2nd" or "1-inch" are not read as quantities.
	rangeRe       = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*[-–]\s*\d+(?:\.\d+)?(\s+|$)`)
	mixedSlashRe  = regexp.MustCompile(`^(\d+)\s+(\d+)/([1-9]\d*)(\s+|$)`)
	slashRe       = regexp.MustCompile(`^(\d+)/([1-9]\d*)(\s+|$)`)
	mixedVulgarRe = regexp.MustCompile(`^(\d+)\s*([½⅓⅔¼¾⅛⅜⅝⅞])(\s+|$)`)
	vulgarRe      = regexp.MustCompile(`^([½⅓⅔¼¾⅛⅜⅝⅞])(\s+|$)`)
	numberRe      = regexp.MustCompile(`^(\d+(?:\.\d+)?)(\s+|$)`)
)

// Parse tokenizes one ingredient line. It never fails: a line with no
// recognizable quantity or unit comes back with the trimmed text as
// the name and everything else empty, which is an accepted outcome,
// not an error.
func Parse(line string) model.ParsedIngredient {
	ing := model.ParsedIngredient{Raw: line}

	s := norm.NFC.String(strings.TrimSpace(line))
	s = stripListMarker(s)

	ing.Note, s = extractNote(s)
	s, ing.Prep = splitPrep(s)

	ing.Quantity, s = takeQuantity(s)
	if ing.Quantity != nil {
		ing.Unit, s = takeUnit(s)
	}

	ing.Name = strings.TrimSpace(s)
	if ing.Name == "" && ing.Quantity == nil && ing.Unit == "" {
		ing.Name = strings.TrimSpace(line)
	}
	return ing
}

// stripListMarker drops a leading bullet or ordinal prefix.
func stripListMarker(s string) string {
	return listMarkerRe.ReplaceAllString(s, "")
}

// extractNote removes the first well-formed parenthetical group and
// returns its content. Unbalanced parentheses are left in place.
func extractNote(s string) (note, rest string) {
	open := strings.Index(s, "(")
	if open < 0 {
		return "", s
	}
	closeOff := strings.Index(s[open+1:], ")")
	if closeOff < 0 {
		return "", s
	}
	note = strings.TrimSpace(s[open+1 : open+1+closeOff])

	before := strings.TrimSpace(s[:open])
	after := strings.TrimSpace(s[open+1+closeOff+1:])
	switch {
	case before == "":
		rest = after
	case after == "":
		rest = before
	default:
		rest = before + " " + after
	}
	return note, rest
}

// splitPrep splits on the last comma; the suffix is the preparation
// clause ("finely chopped").
func splitPrep(s string) (rest, prep string) {
	idx := strings.LastIndex(s, ",")
	if idx < 0 {
		return s, ""
	}
	return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+1:])
}

// takeQuantity consumes a leading quantity token: integer, decimal,
// slash fraction, Unicode vulgar fraction, mixed number, or a range
// (only the first value of a range is kept).
func takeQuantity(s string) (*float64, string) {
	s = strings.TrimSpace(s)

	if m := rangeRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return model.Qty(v), s[len(m[0]):]
	}
	if m := mixedSlashRe.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		return model.Qty(whole + num/den), s[len(m[0]):]
	}
	if m := slashRe.FindStringSubmatch(s); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		return model.Qty(num / den), s[len(m[0]):]
	}
	if m := mixedVulgarRe.FindStringSubmatch(s); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		frac, _ := vulgarValue([]rune(m[2])[0])
		return model.Qty(whole + frac), s[len(m[0]):]
	}
	if m := vulgarRe.FindStringSubmatch(s); m != nil {
		frac, _ := vulgarValue([]rune(m[1])[0])
		return model.Qty(frac), s[len(m[0]):]
	}
	if m := numberRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.ParseFloat(m[1], 64)
		return model.Qty(v), s[len(m[0]):]
	}
	return nil, s
}

// takeUnit consumes the next whitespace-delimited token when it
// resolves in the unit table, plus a following "of" filler word
// ("2 cups of flour").
func takeUnit(s string) (string, string) {
	s = strings.TrimSpace(s)
	tok, after, _ := strings.Cut(s, " ")

	// Two-token units first ("fl oz", "fluid ounces").
	if after != "" {
		tok2, after2, _ := strings.Cut(after, " ")
		if code, ok := units.Resolve(tok + " " + tok2); ok {
			after = strings.TrimSpace(after2)
			if rest, found := strings.CutPrefix(after, "of "); found {
				after = rest
			}
			return code, after
		}
	}

	code, ok := units.Resolve(tok)
	if !ok {
		return "", s
	}
	after = strings.TrimSpace(after)
	if rest, found := strings.CutPrefix(after, "of "); found {
		after = rest
	}
	return code, after
}
