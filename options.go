package pricelens

import (
	"time"

	"github.com/pricelens/pricelens/pkg/align"
	"github.com/pricelens/pricelens/pkg/dedupe"
	"github.com/pricelens/pricelens/pkg/errors"
)

// Option is a function that configures a Pipeline instance
type Option func(*config) error

// config holds the pipeline configuration assembled from options
type config struct {
	threshold         float64
	dedupePolicy      dedupe.Policy
	alignKeys         align.KeySet
	unitNormalization bool
	cacheTTL          time.Duration
}

func defaultConfig() *config {
	return &config{
		threshold:    align.DefaultThreshold,
		dedupePolicy: dedupe.MinPrice,
		alignKeys:    align.AllKeys,
	}
}

// WithThreshold sets the inclusive similarity cutoff for cross-source
// alignment, on the 0-100 scale.
func WithThreshold(threshold float64) Option {
	return func(c *config) error {
		if threshold < 0 || threshold > 100 {
			return errors.NewValidationError("threshold", threshold, "must be between 0 and 100")
		}
		c.threshold = threshold
		return nil
	}
}

// WithDedupePolicy selects which record survives when a vendor lists the
// same product more than once. Default is the lowest-priced record.
func WithDedupePolicy(policy dedupe.Policy) Option {
	return func(c *config) error {
		c.dedupePolicy = policy
		return nil
	}
}

// WithAlignKeys selects which canonical keys the aligner rewrites
func WithAlignKeys(keys align.KeySet) Option {
	return func(c *config) error {
		if keys&align.AllKeys == 0 {
			return errors.NewValidationError("keys", keys, "must select vendor keys, product keys, or both")
		}
		c.alignKeys = keys
		return nil
	}
}

// WithUnitNormalization enables canonicalization of quantity tokens in
// product names before key derivation, so "1 kg" and "1000g" compare equal.
func WithUnitNormalization() Option {
	return func(c *config) error {
		c.unitNormalization = true
		return nil
	}
}

// WithCache enables the in-memory result cache with the given TTL.
// Repeated runs over identical inputs and configuration return the
// cached result instead of recomputing.
func WithCache(ttl time.Duration) Option {
	return func(c *config) error {
		if ttl <= 0 {
			return errors.NewValidationError("ttl", ttl, "must be positive")
		}
		c.cacheTTL = ttl
		return nil
	}
}
