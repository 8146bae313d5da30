package pricelens

import (
	"time"

	"github.com/pricelens/pricelens/pkg/catalogs"
	"github.com/pricelens/pricelens/pkg/discount"
	"github.com/pricelens/pricelens/pkg/match"
	"github.com/pricelens/pricelens/pkg/stats"
)

// Result holds the output of one pipeline run.
type Result struct {
	// Vendors is the vendor-level match table.
	Vendors *match.VendorTable

	// Items is the (vendor, product) match table with price relations.
	Items *match.ItemTable

	// QualifyingVendors lists vendor keys with at least one product carrying
	// two or more distinct prices in either source, sorted.
	QualifyingVendors []string

	// GeneratedAt records when the run finished, in UTC.
	GeneratedAt time.Time

	// Aligned catalogs retained before deduplication, so discount queries
	// still see repeated listings.
	source1 *catalogs.Catalog
	source2 *catalogs.Catalog
}

// Discounts returns the per-product discount rows for one vendor, looked up
// by display name or canonical key.
func (r *Result) Discounts(vendor string) []discount.Row {
	return discount.ForVendor(vendor, r.source1, r.source2)
}

// Summary holds headline figures for one run.
type Summary struct {
	Vendors            int     `json:"vendors" yaml:"vendors"`
	VendorsMatched     int     `json:"vendorsMatched" yaml:"vendorsMatched"`
	VendorsOnlySource1 int     `json:"vendorsOnlySource1" yaml:"vendorsOnlySource1"`
	VendorsOnlySource2 int     `json:"vendorsOnlySource2" yaml:"vendorsOnlySource2"`
	VendorMatchRate    float64 `json:"vendorMatchRate" yaml:"vendorMatchRate"`

	Items            int     `json:"items" yaml:"items"`
	ItemsMatched     int     `json:"itemsMatched" yaml:"itemsMatched"`
	ItemsOnlySource1 int     `json:"itemsOnlySource1" yaml:"itemsOnlySource1"`
	ItemsOnlySource2 int     `json:"itemsOnlySource2" yaml:"itemsOnlySource2"`
	ItemMatchRate    float64 `json:"itemMatchRate" yaml:"itemMatchRate"`

	Source1Higher int `json:"source1Higher" yaml:"source1Higher"`
	Source1Lower  int `json:"source1Lower" yaml:"source1Lower"`
	SamePrice     int `json:"samePrice" yaml:"samePrice"`

	VendorsWithDiscounts int `json:"vendorsWithDiscounts" yaml:"vendorsWithDiscounts"`
}

// Summary computes headline figures from the match tables. Match rates are
// percentages of the respective table sizes and are 0 for empty tables.
func (r *Result) Summary() Summary {
	s := Summary{
		Vendors:            r.Vendors.Len(),
		VendorsMatched:     r.Vendors.Count(match.StatusMatched),
		VendorsOnlySource1: r.Vendors.Count(match.StatusOnlySource1),
		VendorsOnlySource2: r.Vendors.Count(match.StatusOnlySource2),

		Items:            r.Items.Len(),
		ItemsMatched:     r.Items.Count(match.StatusMatched),
		ItemsOnlySource1: r.Items.Count(match.StatusOnlySource1),
		ItemsOnlySource2: r.Items.Count(match.StatusOnlySource2),

		Source1Higher: r.Items.RelationCount(match.Source1Higher),
		Source1Lower:  r.Items.RelationCount(match.Source1Lower),
		SamePrice:     r.Items.RelationCount(match.Same),

		VendorsWithDiscounts: len(r.QualifyingVendors),
	}
	s.VendorMatchRate = stats.Percent(float64(s.VendorsMatched), float64(s.Vendors))
	s.ItemMatchRate = stats.Percent(float64(s.ItemsMatched), float64(s.Items))
	return s
}
