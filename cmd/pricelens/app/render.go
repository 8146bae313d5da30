package app

import (
	"strconv"

	"github.com/pricelens/pricelens/internal/cmd/output"
	"github.com/pricelens/pricelens/pkg/discount"
	"github.com/pricelens/pricelens/pkg/match"
)

// vendorRows wraps the vendor match table rows with a table layout. The
// slice itself marshals to JSON and YAML directly.
type vendorRows []match.VendorMatch

func vendorTable(rows []match.VendorMatch) vendorRows {
	return vendorRows(rows)
}

// TableData implements output.Tabler.
func (r vendorRows) TableData() output.Data {
	data := output.Data{
		Headers: []string{"Vendor", "Key", "Status", "Source 1 ID", "Source 2 ID"},
	}
	for _, row := range r {
		id1, id2 := "-", "-"
		if row.Source1 != nil {
			id1 = row.Source1.VendorID
		}
		if row.Source2 != nil {
			id2 = row.Source2.VendorID
		}
		data.Rows = append(data.Rows, []string{
			row.DisplayName(), row.VendorKey, row.Status.String(), id1, id2,
		})
	}
	return data
}

type itemRows []match.ItemMatch

func itemTable(rows []match.ItemMatch) itemRows {
	return itemRows(rows)
}

// TableData implements output.Tabler.
func (r itemRows) TableData() output.Data {
	data := output.Data{
		Headers: []string{"Vendor", "Product", "Status", "Price 1", "Price 2", "Relation"},
	}
	for _, row := range r {
		p1, p2 := "-", "-"
		if row.Source1 != nil {
			p1 = formatPrice(row.Source1.Price)
		}
		if row.Source2 != nil {
			p2 = formatPrice(row.Source2.Price)
		}
		relation := row.PriceRelation.String()
		if relation == "" {
			relation = "-"
		}
		data.Rows = append(data.Rows, []string{
			row.VendorKey, row.ProductKey, row.Status.String(), p1, p2, relation,
		})
	}
	return data
}

type vendorKeys []string

func qualifyingVendorTable(keys []string) vendorKeys {
	return vendorKeys(keys)
}

// TableData implements output.Tabler.
func (k vendorKeys) TableData() output.Data {
	data := output.Data{Headers: []string{"Vendor"}}
	for _, key := range k {
		data.Rows = append(data.Rows, []string{key})
	}
	return data
}

type discountRows []discount.Row

func discountTable(rows []discount.Row) discountRows {
	return discountRows(rows)
}

// TableData implements output.Tabler.
func (r discountRows) TableData() output.Data {
	data := output.Data{
		Headers: []string{"Product", "Source", "Original", "Discounted", "Discount %"},
	}
	for _, row := range r {
		if row.Source1 != nil {
			data.Rows = append(data.Rows, discountRow(row.ProductName, "source1", row.Source1))
		}
		if row.Source2 != nil {
			data.Rows = append(data.Rows, discountRow(row.ProductName, "source2", row.Source2))
		}
	}
	return data
}

func discountRow(product, source string, d *discount.SourceDiscount) []string {
	return []string{
		product,
		source,
		formatFloat(d.OriginalPrice),
		formatFloat(d.DiscountedPrice),
		formatFloat(d.Percent),
	}
}

// formatPrice renders a nullable price, "-" when absent.
func formatPrice(p *float64) string {
	if p == nil {
		return "-"
	}
	return formatFloat(*p)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
