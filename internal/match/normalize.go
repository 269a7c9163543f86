// Package match reduces ingredient names to deduplication keys. Two
// ingredients merge into one shopping-list line iff their keys are
// equal. Key computation is pure: same name in, same key out, always.
package match

import (
	"regexp"
	"strings"
)

// modifiers are descriptive words that don't change what you buy.
var modifiers = map[string]bool{
	"fresh":   true,
	"dried":   true,
	"frozen":  true,
	"organic": true,
	"large":   true,
	"medium":  true,
	"small":   true,
	"whole":   true,
}

// singularExceptions lists already-singular words ending in s that
// suffix stripping would mangle.
var singularExceptions = map[string]bool{
	"hummus":    true,
	"couscous":  true,
	"molasses":  true,
	"asparagus": true,
	"swiss":     true,
	"citrus":    true,
}

var multiSpaceRe = regexp.MustCompile(`\s{2,}`)

// Key normalizes an ingredient name for merge matching by:
//  1. Lowercasing and trimming
//  2. Stripping a single leading article (a/an/the)
//  3. Dropping modifier words (fresh, dried, frozen, ...) wherever
//     they appear as whole words
//  4. Singularizing each word with minimal suffix rules
//
// Vocabulary differences ("scallion" vs "green onion") are out of
// scope; those stay separate lines.
func Key(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return ""
	}

	for _, article := range []string{"a ", "an ", "the "} {
		if rest, found := strings.CutPrefix(s, article); found {
			s = rest
			break
		}
	}

	words := strings.Fields(s)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if modifiers[w] {
			continue
		}
		kept = append(kept, singularize(w))
	}
	if len(kept) == 0 {
		// Name was nothing but modifiers; fall back to the raw words
		// rather than collapsing everything into one empty key.
		kept = words
	}

	s = strings.Join(kept, " ")
	return multiSpaceRe.ReplaceAllString(s, " ")
}

// singularize applies minimal suffix rules: -ies -> -y, -es after a
// sibilant stem (boxes, peaches, radishes), then a trailing -s.
func singularize(w string) string {
	if singularExceptions[w] {
		return w
	}
	if len(w) > 3 && strings.HasSuffix(w, "ies") {
		return w[:len(w)-3] + "y"
	}
	if len(w) > 3 && strings.HasSuffix(w, "oes") {
		return w[:len(w)-2]
	}
	if len(w) > 3 && strings.HasSuffix(w, "es") {
		stem := w[:len(w)-2]
		for _, sib := range []string{"x", "z", "ch", "sh", "ss"} {
			if strings.HasSuffix(stem, sib) {
				return stem
			}
		}
	}
	if len(w) > 2 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		return w[:len(w)-1]
	}
	return w
}
