package catalogs

import (
	"strconv"
	"strings"
)

// unitFactors maps recognized measurement units to their canonical base unit
// and the multiplier into it. Mass canonicalizes to grams, volume to
// milliliters.
var unitFactors = map[string]struct {
	base   string
	factor float64
}{
	"kg": {"g", 1000},
	"g":  {"g", 1},
	"mg": {"g", 0.001},
	"l":  {"ml", 1000},
	"cl": {"ml", 10},
	"ml": {"ml", 1},
}

// canonicalizeUnits rewrites measurement tokens in a product key to a
// canonical base-unit form: "1 kg" -> "1000 g", "50cl" -> "500ml".
// It is best-effort: any token (or token pair) that fails unit parsing
// passes through untouched.
func canonicalizeUnits(key string) string {
	tokens := strings.Split(key, " ")
	out := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		// "<number> <unit>" token pair
		if i+1 < len(tokens) {
			if qty, err := strconv.ParseFloat(tokens[i], 64); err == nil {
				if u, ok := unitFactors[tokens[i+1]]; ok {
					out = append(out, formatQuantity(qty*u.factor), u.base)
					i++
					continue
				}
			}
		}
		// combined "<number><unit>" token
		if rewritten, ok := rewriteCombined(tokens[i]); ok {
			out = append(out, rewritten)
			continue
		}
		out = append(out, tokens[i])
	}

	return strings.Join(out, " ")
}

// rewriteCombined handles tokens like "500ml" or "1.5kg".
func rewriteCombined(token string) (string, bool) {
	split := len(token)
	for split > 0 {
		c := token[split-1]
		if c >= 'a' && c <= 'z' {
			split--
			continue
		}
		break
	}
	if split == 0 || split == len(token) {
		return "", false
	}

	unit, ok := unitFactors[token[split:]]
	if !ok {
		return "", false
	}
	qty, err := strconv.ParseFloat(token[:split], 64)
	if err != nil {
		return "", false
	}
	return formatQuantity(qty*unit.factor) + unit.base, true
}

// formatQuantity renders a converted quantity without trailing zeros.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
