package match

import (
	"sort"

	"github.com/pricelens/pricelens/pkg/catalogs"
)

// ItemSide holds one source's original product fields for an item row.
type ItemSide struct {
	ProductID   string   `json:"product_id" yaml:"product_id"`
	ProductName string   `json:"product_name" yaml:"product_name"`
	Price       *float64 `json:"price,omitempty" yaml:"price,omitempty"`
}

// ItemMatch is one row of the item-level match table: a distinct
// (vendorKey, productKey) pair and the sources that list it. PriceRelation
// is RelationNone unless the row is matched with both prices present.
type ItemMatch struct {
	VendorKey     string        `json:"vendor_key" yaml:"vendor_key"`
	ProductKey    string        `json:"product_key" yaml:"product_key"`
	Status        Status        `json:"status" yaml:"status"`
	Source1       *ItemSide     `json:"source1,omitempty" yaml:"source1,omitempty"`
	Source2       *ItemSide     `json:"source2,omitempty" yaml:"source2,omitempty"`
	PriceRelation PriceRelation `json:"price_relation,omitempty" yaml:"price_relation,omitempty"`
}

// ItemTable is the item-level match result, one row per distinct
// (vendorKey, productKey) pair across both sources, sorted by vendor then
// product key.
type ItemTable struct {
	rows []ItemMatch
}

// Items outer-joins the two catalogs on (vendorKey, productKey) and
// classifies every row. Inputs are expected to be deduplicated; if a group
// still repeats, its first row represents it. Matched rows with both prices
// present get a price relation by exact numeric comparison.
func Items(c1, c2 *catalogs.Catalog) *ItemTable {
	left := firstGroupRecords(c1)
	right := firstGroupRecords(c2)

	rows := make([]ItemMatch, 0, len(left)+len(right))
	for key, r1 := range left {
		row := ItemMatch{
			VendorKey:  key.Vendor,
			ProductKey: key.Product,
			Source1:    itemSide(r1),
		}
		if r2, ok := right[key]; ok {
			row.Status = StatusMatched
			row.Source2 = itemSide(r2)
			row.PriceRelation = relate(r1.Price, r2.Price)
		} else {
			row.Status = StatusOnlySource1
		}
		rows = append(rows, row)
	}
	for key, r2 := range right {
		if _, ok := left[key]; ok {
			continue
		}
		rows = append(rows, ItemMatch{
			VendorKey:  key.Vendor,
			ProductKey: key.Product,
			Status:     StatusOnlySource2,
			Source2:    itemSide(r2),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].VendorKey != rows[j].VendorKey {
			return rows[i].VendorKey < rows[j].VendorKey
		}
		return rows[i].ProductKey < rows[j].ProductKey
	})

	return &ItemTable{rows: rows}
}

// firstGroupRecords maps each distinct (vendor, product) key to its first
// record.
func firstGroupRecords(c *catalogs.Catalog) map[catalogs.GroupKey]catalogs.Record {
	first := make(map[catalogs.GroupKey]catalogs.Record)
	for _, r := range c.Records() {
		if _, ok := first[r.Key()]; !ok {
			first[r.Key()] = r
		}
	}
	return first
}

func itemSide(r catalogs.Record) *ItemSide {
	return &ItemSide{ProductID: r.ProductID, ProductName: r.ProductName, Price: r.Price}
}

// relate compares two prices exactly. Either side nil means incomparable.
func relate(p1, p2 *float64) PriceRelation {
	if p1 == nil || p2 == nil {
		return RelationNone
	}
	switch {
	case *p1 > *p2:
		return Source1Higher
	case *p1 < *p2:
		return Source1Lower
	default:
		return Same
	}
}

// Len returns the number of rows.
func (t *ItemTable) Len() int {
	return len(t.rows)
}

// Rows returns a copy of all rows, sorted by vendor then product key.
func (t *ItemTable) Rows() []ItemMatch {
	rows := make([]ItemMatch, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// ByStatus returns the rows with the given status.
func (t *ItemTable) ByStatus(status Status) []ItemMatch {
	var rows []ItemMatch
	for _, row := range t.rows {
		if row.Status == status {
			rows = append(rows, row)
		}
	}
	return rows
}

// ByVendorKey returns the rows belonging to a vendor.
func (t *ItemTable) ByVendorKey(key string) []ItemMatch {
	var rows []ItemMatch
	for _, row := range t.rows {
		if row.VendorKey == key {
			rows = append(rows, row)
		}
	}
	return rows
}

// Count returns the number of rows with the given status.
func (t *ItemTable) Count(status Status) int {
	n := 0
	for _, row := range t.rows {
		if row.Status == status {
			n++
		}
	}
	return n
}

// RelationCount returns the number of rows carrying the given price
// relation.
func (t *ItemTable) RelationCount(relation PriceRelation) int {
	n := 0
	for _, row := range t.rows {
		if row.PriceRelation == relation {
			n++
		}
	}
	return n
}

// ExclusiveVendors returns the vendor keys owning at least one item present
// in only one source, sorted. This mirrors the "vendors with exclusive
// products" view of the comparison dashboard.
func (t *ItemTable) ExclusiveVendors() []string {
	seen := make(map[string]struct{})
	for _, row := range t.rows {
		if row.Status == StatusMatched {
			continue
		}
		seen[row.VendorKey] = struct{}{}
	}
	vendors := make([]string, 0, len(seen))
	for v := range seen {
		vendors = append(vendors, v)
	}
	sort.Strings(vendors)
	return vendors
}
