// Package catalogs provides the catalog data model for the pricelens system:
// raw record ingestion from CSV, schema validation, and normalization into
// canonical comparison keys used by the alignment and matching stages.
package catalogs

// Record is one observation of a product offered by a vendor in a single
// source catalog. A vendor/product pair may appear multiple times with
// different prices; that multiplicity is meaningful to discount detection
// and must survive until deduplication.
type Record struct {
	VendorID    string
	VendorName  string
	ProductID   string
	ProductName string

	// Price is nil when the source value failed to parse. A nil price is
	// "incomparable", never zero.
	Price *float64

	// VendorKey and ProductKey are canonical comparison keys derived from
	// the display names by Normalize. The aligner may overwrite them with a
	// matched peer's key; no other stage mutates them.
	VendorKey  string
	ProductKey string
}

// HasPrice reports whether the record carries a parseable price.
func (r Record) HasPrice() bool {
	return r.Price != nil
}

// GroupKey identifies a (vendor, product) group by canonical keys.
type GroupKey struct {
	Vendor  string
	Product string
}

// Key returns the record's (vendor, product) group key.
func (r Record) Key() GroupKey {
	return GroupKey{Vendor: r.VendorKey, Product: r.ProductKey}
}

// Price returns a pointer to v, for building records with literal prices.
func Price(v float64) *float64 {
	return &v
}
