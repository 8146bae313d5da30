// Package discount detects per-vendor price multiplicity: products a source
// lists at more than one distinct price, read as an original (max) versus
// discounted (min) pair. It must run on the pre-deduplication catalogs,
// because deduplication destroys exactly the multiplicity it measures.
package discount

import (
	"sort"

	"github.com/pricelens/pricelens/pkg/catalogs"
	"github.com/pricelens/pricelens/pkg/stats"
)

// SourceDiscount summarizes one source's multi-price history for a product.
type SourceDiscount struct {
	OriginalPrice   float64 `json:"original_price" yaml:"original_price"`
	DiscountedPrice float64 `json:"discounted_price" yaml:"discounted_price"`
	Percent         float64 `json:"discount_percent" yaml:"discount_percent"`
}

// Row is one product of a vendor with a multi-price history in at least one
// source. A side is nil when that source lists the product at most once.
type Row struct {
	ProductKey  string          `json:"product_key" yaml:"product_key"`
	ProductName string          `json:"product_name" yaml:"product_name"`
	Source1     *SourceDiscount `json:"source1,omitempty" yaml:"source1,omitempty"`
	Source2     *SourceDiscount `json:"source2,omitempty" yaml:"source2,omitempty"`
}

// ForVendor returns the discount rows for one vendor, given the two
// pre-deduplication catalogs. The vendor may be named by display name or
// canonical key. Per-source results are outer-joined on product key, so a
// product with a multi-price history in only one source still appears,
// with the other side nil. No rows is a valid outcome, not an error.
func ForVendor(vendorName string, c1, c2 *catalogs.Catalog) []Row {
	key := catalogs.NormalizeKey(vendorName)

	side1 := vendorDiscounts(c1, key)
	side2 := vendorDiscounts(c2, key)

	keys := make(map[string]struct{}, len(side1)+len(side2))
	for k := range side1 {
		keys[k] = struct{}{}
	}
	for k := range side2 {
		keys[k] = struct{}{}
	}

	rows := make([]Row, 0, len(keys))
	for productKey := range keys {
		rows = append(rows, Row{
			ProductKey:  productKey,
			ProductName: displayName(productKey, key, c1, c2),
			Source1:     side1[productKey],
			Source2:     side2[productKey],
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ProductKey < rows[j].ProductKey
	})
	return rows
}

// QualifyingVendors returns the canonical keys of vendors that have at
// least one product with more than one distinct price in either source,
// sorted. This is the selection list for discount browsing; a vendor whose
// only multi-price product sits in source 2 must still appear.
func QualifyingVendors(c1, c2 *catalogs.Catalog) []string {
	seen := make(map[string]struct{})
	for _, c := range []*catalogs.Catalog{c1, c2} {
		for vendor, products := range distinctPrices(c) {
			for _, prices := range products {
				if len(prices) > 1 {
					seen[vendor] = struct{}{}
					break
				}
			}
		}
	}

	vendors := make([]string, 0, len(seen))
	for v := range seen {
		vendors = append(vendors, v)
	}
	sort.Strings(vendors)
	return vendors
}

// vendorDiscounts computes one source's discount summary per product key
// for the given vendor key. Only products with at least two distinct
// non-nil prices qualify.
func vendorDiscounts(c *catalogs.Catalog, vendorKey string) map[string]*SourceDiscount {
	grouped := make(map[string][]float64)
	for _, r := range c.Records() {
		if r.VendorKey != vendorKey || !r.HasPrice() {
			continue
		}
		grouped[r.ProductKey] = append(grouped[r.ProductKey], *r.Price)
	}

	out := make(map[string]*SourceDiscount)
	for productKey, prices := range grouped {
		distinct := distinctValues(prices)
		if len(distinct) < 2 {
			continue
		}
		minPrice, maxPrice := distinct[0], distinct[0]
		for _, p := range distinct[1:] {
			if p < minPrice {
				minPrice = p
			}
			if p > maxPrice {
				maxPrice = p
			}
		}
		out[productKey] = &SourceDiscount{
			OriginalPrice:   maxPrice,
			DiscountedPrice: minPrice,
			Percent:         stats.Percent(maxPrice-minPrice, maxPrice),
		}
	}
	return out
}

// distinctPrices maps vendor key -> product key -> distinct non-nil prices.
func distinctPrices(c *catalogs.Catalog) map[string]map[string]map[float64]struct{} {
	out := make(map[string]map[string]map[float64]struct{})
	for _, r := range c.Records() {
		if !r.HasPrice() {
			continue
		}
		products, ok := out[r.VendorKey]
		if !ok {
			products = make(map[string]map[float64]struct{})
			out[r.VendorKey] = products
		}
		prices, ok := products[r.ProductKey]
		if !ok {
			prices = make(map[float64]struct{})
			products[r.ProductKey] = prices
		}
		prices[*r.Price] = struct{}{}
	}
	return out
}

func distinctValues(prices []float64) []float64 {
	seen := make(map[float64]struct{}, len(prices))
	out := make([]float64, 0, len(prices))
	for _, p := range prices {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// displayName finds a display name for the product: source 1's first record
// wins, then source 2's, then the key itself.
func displayName(productKey, vendorKey string, c1, c2 *catalogs.Catalog) string {
	for _, c := range []*catalogs.Catalog{c1, c2} {
		for _, r := range c.Records() {
			if r.VendorKey == vendorKey && r.ProductKey == productKey && r.ProductName != "" {
				return r.ProductName
			}
		}
	}
	return productKey
}
