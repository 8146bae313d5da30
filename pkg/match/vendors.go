package match

import (
	"sort"

	"github.com/pricelens/pricelens/pkg/catalogs"
)

// VendorSide holds one source's original identifiers for a vendor.
type VendorSide struct {
	VendorID   string `json:"vendor_id" yaml:"vendor_id"`
	VendorName string `json:"vendor_name" yaml:"vendor_name"`
}

// VendorMatch is one row of the vendor-level match table: a distinct vendor
// key and the sources that know it. A side is nil exactly when the status
// says the vendor is absent from that source.
type VendorMatch struct {
	VendorKey string      `json:"vendor_key" yaml:"vendor_key"`
	Status    Status      `json:"status" yaml:"status"`
	Source1   *VendorSide `json:"source1,omitempty" yaml:"source1,omitempty"`
	Source2   *VendorSide `json:"source2,omitempty" yaml:"source2,omitempty"`
}

// DisplayName returns a human-facing label for the vendor: the source-1
// original name when known, else source 2's, else the canonical key.
func (m VendorMatch) DisplayName() string {
	if m.Source1 != nil && m.Source1.VendorName != "" {
		return m.Source1.VendorName
	}
	if m.Source2 != nil && m.Source2.VendorName != "" {
		return m.Source2.VendorName
	}
	return m.VendorKey
}

// VendorTable is the vendor-level match result, one row per distinct vendor
// key across both sources, sorted by key.
type VendorTable struct {
	rows []VendorMatch
}

// Vendors outer-joins the two catalogs' distinct vendor keys and classifies
// every row. Each source contributes its first record per vendor key as the
// representative for ids and display names. Empty catalogs are legal; all
// rows then classify to the other source.
func Vendors(c1, c2 *catalogs.Catalog) *VendorTable {
	left := firstVendorRecords(c1)
	right := firstVendorRecords(c2)

	rows := make([]VendorMatch, 0, len(left)+len(right))
	for key, r1 := range left {
		row := VendorMatch{
			VendorKey: key,
			Source1:   &VendorSide{VendorID: r1.VendorID, VendorName: r1.VendorName},
		}
		if r2, ok := right[key]; ok {
			row.Status = StatusMatched
			row.Source2 = &VendorSide{VendorID: r2.VendorID, VendorName: r2.VendorName}
		} else {
			row.Status = StatusOnlySource1
		}
		rows = append(rows, row)
	}
	for key, r2 := range right {
		if _, ok := left[key]; ok {
			continue
		}
		rows = append(rows, VendorMatch{
			VendorKey: key,
			Status:    StatusOnlySource2,
			Source2:   &VendorSide{VendorID: r2.VendorID, VendorName: r2.VendorName},
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].VendorKey < rows[j].VendorKey
	})

	return &VendorTable{rows: rows}
}

// firstVendorRecords maps each distinct vendor key to its first record.
func firstVendorRecords(c *catalogs.Catalog) map[string]catalogs.Record {
	first := make(map[string]catalogs.Record)
	for _, r := range c.Records() {
		if _, ok := first[r.VendorKey]; !ok {
			first[r.VendorKey] = r
		}
	}
	return first
}

// Len returns the number of rows.
func (t *VendorTable) Len() int {
	return len(t.rows)
}

// Rows returns a copy of all rows, sorted by vendor key.
func (t *VendorTable) Rows() []VendorMatch {
	rows := make([]VendorMatch, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// ByStatus returns the rows with the given status, in key order.
func (t *VendorTable) ByStatus(status Status) []VendorMatch {
	var rows []VendorMatch
	for _, row := range t.rows {
		if row.Status == status {
			rows = append(rows, row)
		}
	}
	return rows
}

// ByKey returns the row for a vendor key.
func (t *VendorTable) ByKey(key string) (VendorMatch, bool) {
	for _, row := range t.rows {
		if row.VendorKey == key {
			return row, true
		}
	}
	return VendorMatch{}, false
}

// Count returns the number of rows with the given status.
func (t *VendorTable) Count(status Status) int {
	n := 0
	for _, row := range t.rows {
		if row.Status == status {
			n++
		}
	}
	return n
}
