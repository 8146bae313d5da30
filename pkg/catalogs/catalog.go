package catalogs

// Catalog is an immutable snapshot of one source's records. Pipeline stages
// never modify a catalog in place; they build new snapshots with WithRecords.
type Catalog struct {
	source  string
	records []Record
}

// New creates a catalog for the named source with the given records.
// The slice is copied so later caller mutations cannot leak in.
func New(source string, records []Record) *Catalog {
	copied := make([]Record, len(records))
	copy(copied, records)
	return &Catalog{source: source, records: copied}
}

// Source returns the catalog's source label (e.g. "source1").
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns a copy of the catalog's records in original row order.
func (c *Catalog) Records() []Record {
	copied := make([]Record, len(c.records))
	copy(copied, c.records)
	return copied
}

// WithRecords returns a new catalog for the same source holding the given
// records. Used by stages that rewrite or filter rows.
func (c *Catalog) WithRecords(records []Record) *Catalog {
	return New(c.source, records)
}

// DistinctVendorKeys returns the distinct vendor keys in first-appearance
// order. Order matters: the aligner's tie-breaking follows it.
func (c *Catalog) DistinctVendorKeys() []string {
	return c.distinctKeys(func(r Record) string { return r.VendorKey })
}

// DistinctProductKeys returns the distinct product keys in first-appearance
// order.
func (c *Catalog) DistinctProductKeys() []string {
	return c.distinctKeys(func(r Record) string { return r.ProductKey })
}

// DistinctGroupKeys returns the distinct (vendor, product) keys in
// first-appearance order.
func (c *Catalog) DistinctGroupKeys() []GroupKey {
	seen := make(map[GroupKey]struct{}, len(c.records))
	keys := make([]GroupKey, 0, len(c.records))
	for _, r := range c.records {
		k := r.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

func (c *Catalog) distinctKeys(key func(Record) string) []string {
	seen := make(map[string]struct{}, len(c.records))
	keys := make([]string, 0, len(c.records))
	for _, r := range c.records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}
