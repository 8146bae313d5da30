// Package align implements the cross-source aligner: a one-directional
// rewrite of a source catalog's canonical keys onto a target catalog's
// spelling whenever fuzzy similarity clears a threshold. The target is never
// modified; a source key with no good match is left unchanged and simply
// fails to join downstream.
package align

import (
	"github.com/pricelens/pricelens/internal/similarity"
	"github.com/pricelens/pricelens/pkg/catalogs"
	"github.com/pricelens/pricelens/pkg/errors"
	"github.com/pricelens/pricelens/pkg/logging"
)

// KeySet selects which canonical keys the aligner rewrites.
type KeySet int

const (
	// VendorKeys aligns vendor keys only.
	VendorKeys KeySet = 1 << iota
	// ProductKeys aligns product keys only.
	ProductKeys

	// AllKeys aligns both vendor and product keys.
	AllKeys = VendorKeys | ProductKeys
)

// DefaultThreshold is the similarity cutoff used when the caller does not
// choose one, matching the pipeline's historical default.
const DefaultThreshold = 80

// Aligner rewrites source keys toward a target catalog's spelling.
type Aligner struct {
	threshold float64
	keys      KeySet
	scorer    similarity.Scorer
}

// Option configures an Aligner.
type Option func(*Aligner)

// WithThreshold sets the inclusive similarity cutoff on the 0-100 scale.
func WithThreshold(threshold float64) Option {
	return func(a *Aligner) {
		a.threshold = threshold
	}
}

// WithKeys selects which keys to align. Default is AllKeys.
func WithKeys(keys KeySet) Option {
	return func(a *Aligner) {
		a.keys = keys
	}
}

// WithScorer replaces the default token-set scorer. The scorer must be
// symmetric and score on the 0-100 scale.
func WithScorer(scorer similarity.Scorer) Option {
	return func(a *Aligner) {
		a.scorer = scorer
	}
}

// New creates an Aligner. The threshold must lie in [0, 100].
func New(opts ...Option) (*Aligner, error) {
	a := &Aligner{
		threshold: DefaultThreshold,
		keys:      AllKeys,
		scorer:    similarity.TokenSetRatio,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.threshold < 0 || a.threshold > 100 {
		return nil, errors.NewValidationError("threshold", a.threshold, "must be between 0 and 100")
	}
	if a.keys&AllKeys == 0 {
		return nil, errors.NewValidationError("keys", a.keys, "must select vendor keys, product keys, or both")
	}
	return a, nil
}

// Align returns a copy of source whose selected keys are snapped to the
// closest target spelling at or above the threshold. Every distinct source
// key is scored once against the target's distinct keys (first-appearance
// order), so cost is O(|distinct source| x |distinct target|) regardless of
// row count. Ties keep the earliest target key; callers needing a different
// tie order should reorder the target's rows.
func (a *Aligner) Align(source, target *catalogs.Catalog) *catalogs.Catalog {
	records := source.Records()

	if a.keys&VendorKeys != 0 {
		rewrites := a.rewrites(source.DistinctVendorKeys(), target.DistinctVendorKeys())
		for i := range records {
			if to, ok := rewrites[records[i].VendorKey]; ok {
				records[i].VendorKey = to
			}
		}
		logging.Debug().
			Str("source", source.Source()).
			Int("rewritten", len(rewrites)).
			Msg("vendor keys aligned")
	}

	if a.keys&ProductKeys != 0 {
		rewrites := a.rewrites(source.DistinctProductKeys(), target.DistinctProductKeys())
		for i := range records {
			if to, ok := rewrites[records[i].ProductKey]; ok {
				records[i].ProductKey = to
			}
		}
		logging.Debug().
			Str("source", source.Source()).
			Int("rewritten", len(rewrites)).
			Msg("product keys aligned")
	}

	return source.WithRecords(records)
}

// rewrites maps each distinct source key to its chosen target key. Keys with
// no candidate at or above the threshold are absent from the map, and a key
// that already equals its best match is skipped so only real rewrites are
// recorded. This per-distinct-value memo is what keeps alignment from
// re-scoring identical keys row by row.
func (a *Aligner) rewrites(sourceKeys, targetKeys []string) map[string]string {
	rewrites := make(map[string]string)
	for _, key := range sourceKeys {
		match, ok := similarity.BestMatch(key, targetKeys, a.scorer, a.threshold)
		if !ok || match.Candidate == key {
			continue
		}
		rewrites[key] = match.Candidate
	}
	return rewrites
}

// Threshold returns the aligner's similarity cutoff.
func (a *Aligner) Threshold() float64 {
	return a.threshold
}
