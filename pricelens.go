// Package pricelens reconciles two vendor/product price catalogs. It
// normalizes both sources into canonical keys, snaps near-identical names
// together with fuzzy alignment, deduplicates repeated listings, and joins
// the results into vendor and item match tables with price comparisons and
// per-vendor discount detection.
package pricelens

import (
	"context"
	"fmt"
	"time"

	"github.com/pricelens/pricelens/internal/cache"
	"github.com/pricelens/pricelens/pkg/align"
	"github.com/pricelens/pricelens/pkg/catalogs"
	"github.com/pricelens/pricelens/pkg/dedupe"
	"github.com/pricelens/pricelens/pkg/discount"
	"github.com/pricelens/pricelens/pkg/logging"
	"github.com/pricelens/pricelens/pkg/match"
)

// Pipeline runs the full reconciliation over two catalogs. A Pipeline is
// safe for concurrent use; each Run works on immutable catalog snapshots.
type Pipeline struct {
	config  *config
	aligner *align.Aligner
	cache   *cache.Cache
}

// New creates a Pipeline with the given options
func New(opts ...Option) (*Pipeline, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	aligner, err := align.New(
		align.WithThreshold(cfg.threshold),
		align.WithKeys(cfg.alignKeys),
	)
	if err != nil {
		return nil, fmt.Errorf("configuring aligner: %w", err)
	}

	p := &Pipeline{
		config:  cfg,
		aligner: aligner,
	}
	if cfg.cacheTTL > 0 {
		p.cache = cache.New(cfg.cacheTTL, 2*cfg.cacheTTL)
	}
	return p, nil
}

// Run reconciles the two catalogs and returns the match tables. Source 2's
// keys are rewritten toward source 1's spelling; source 1 is never modified.
// Discount detection sees the catalogs before deduplication, so repeated
// listings at different prices are preserved for it.
func (p *Pipeline) Run(ctx context.Context, source1, source2 *catalogs.Catalog) (*Result, error) {
	key := ""
	if p.cache != nil {
		key = cache.Key(source1, source2, p.fingerprint())
		if cached, ok := p.cache.Get(key); ok {
			logging.Debug().Str("key", key).Msg("pipeline cache hit")
			return cached.(*Result), nil
		}
	}

	started := time.Now()

	normOpts := []catalogs.NormalizeOption{}
	if p.config.unitNormalization {
		normOpts = append(normOpts, catalogs.WithUnitNormalization())
	}
	c1 := catalogs.Normalize(source1, normOpts...)
	c2 := catalogs.Normalize(source2, normOpts...)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c2 = p.aligner.Align(c2, c1)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d1 := dedupe.ByPrice(c1, p.config.dedupePolicy)
	d2 := dedupe.ByPrice(c2, p.config.dedupePolicy)

	result := &Result{
		Vendors:           match.Vendors(d1, d2),
		Items:             match.Items(d1, d2),
		QualifyingVendors: discount.QualifyingVendors(c1, c2),
		GeneratedAt:       time.Now().UTC(),
		source1:           c1,
		source2:           c2,
	}

	logging.Info().
		Str("source1", source1.Source()).
		Str("source2", source2.Source()).
		Int("vendors", result.Vendors.Len()).
		Int("items", result.Items.Len()).
		Dur("elapsed", time.Since(started)).
		Msg("reconciliation complete")

	if p.cache != nil {
		p.cache.Set(key, result)
	}
	return result, nil
}

// Threshold returns the pipeline's similarity cutoff.
func (p *Pipeline) Threshold() float64 {
	return p.config.threshold
}

// fingerprint encodes the configuration fields that change Run's output
func (p *Pipeline) fingerprint() string {
	return fmt.Sprintf("threshold=%g;keys=%d;policy=%s;units=%t",
		p.config.threshold, p.config.alignKeys, p.config.dedupePolicy, p.config.unitNormalization)
}
