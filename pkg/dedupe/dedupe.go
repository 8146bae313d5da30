// Package dedupe collapses repeated price observations for the same
// (vendor, product) group into one representative row. Two tie-breaking
// policies exist because the pipeline wants different representatives for
// different questions: MinPrice picks the cheapest current offer, MaxPrice
// the pre-discount list price. Discount detection must run on the
// undeduplicated catalogs, so this stage is applied only on the matching
// path.
package dedupe

import (
	"github.com/pricelens/pricelens/pkg/catalogs"
)

// Policy selects which row represents a (vendor, product) group.
type Policy int

const (
	// MinPrice keeps the row with the lowest price in each group.
	MinPrice Policy = iota
	// MaxPrice keeps the row with the highest price in each group.
	MaxPrice
)

// String returns the policy's configuration name.
func (p Policy) String() string {
	switch p {
	case MinPrice:
		return "min"
	case MaxPrice:
		return "max"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a configuration string to a Policy. Unknown values
// fall back to MinPrice.
func ParsePolicy(s string) Policy {
	if s == "max" {
		return MaxPrice
	}
	return MinPrice
}

// ByPrice returns a new catalog with exactly one row per distinct
// (vendorKey, productKey) group, chosen by policy. Ties keep the earliest
// row. Rows without a price never beat rows with one; a nil-price row
// survives only when its whole group is nil-priced. Output preserves the
// first-appearance order of groups.
func ByPrice(c *catalogs.Catalog, policy Policy) *catalogs.Catalog {
	records := c.Records()

	best := make(map[catalogs.GroupKey]int, len(records))
	order := make([]catalogs.GroupKey, 0, len(records))

	for i, r := range records {
		key := r.Key()
		j, seen := best[key]
		if !seen {
			best[key] = i
			order = append(order, key)
			continue
		}
		if better(records[i], records[j], policy) {
			best[key] = i
		}
	}

	kept := make([]catalogs.Record, 0, len(order))
	for _, key := range order {
		kept = append(kept, records[best[key]])
	}
	return c.WithRecords(kept)
}

// better reports whether challenger should replace incumbent under policy.
// Strict comparison keeps ties stable on original row order.
func better(challenger, incumbent catalogs.Record, policy Policy) bool {
	if !challenger.HasPrice() {
		return false
	}
	if !incumbent.HasPrice() {
		return true
	}
	if policy == MaxPrice {
		return *challenger.Price > *incumbent.Price
	}
	return *challenger.Price < *incumbent.Price
}
