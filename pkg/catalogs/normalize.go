package catalogs

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// normalizeConfig controls optional normalization behavior.
type normalizeConfig struct {
	units bool
}

// NormalizeOption configures Normalize.
type NormalizeOption func(*normalizeConfig)

// WithUnitNormalization enables the best-effort measurement-unit rewrite on
// product keys ("1 kg" becomes "1000 g"). Tokens that fail unit parsing are
// left unchanged. Off by default.
func WithUnitNormalization() NormalizeOption {
	return func(cfg *normalizeConfig) {
		cfg.units = true
	}
}

// Normalize returns a new catalog whose records carry canonical comparison
// keys derived from the display names. The transform is deterministic and
// pure: running it on already-normalized output yields identical keys.
func Normalize(c *Catalog, opts ...NormalizeOption) *Catalog {
	cfg := &normalizeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	records := c.Records()
	for i := range records {
		records[i].VendorKey = NormalizeKey(records[i].VendorName)
		productKey := NormalizeKey(records[i].ProductName)
		if cfg.units {
			productKey = canonicalizeUnits(productKey)
		}
		records[i].ProductKey = productKey
	}
	return c.WithRecords(records)
}

// NormalizeKey derives a canonical comparison key from a display name:
// trimmed, lowercased, whitespace collapsed to single spaces, diacritics
// stripped.
func NormalizeKey(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return s
	}
	s = stripDiacritics(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return s
}

// stripDiacritics removes accents by NFD-decomposing the string and dropping
// combining marks, so "café" and "cafe" key identically.
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
