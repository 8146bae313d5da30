package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricelens/pricelens/pkg/catalogs"
	"github.com/pricelens/pricelens/pkg/match"
)

func record(vendorID, vendor, productID, product string, price *float64) catalogs.Record {
	return catalogs.Record{
		VendorID:    vendorID,
		VendorName:  vendor,
		ProductID:   productID,
		ProductName: product,
		Price:       price,
		VendorKey:   catalogs.NormalizeKey(vendor),
		ProductKey:  catalogs.NormalizeKey(product),
	}
}

func TestVendorsClassification(t *testing.T) {
	c1 := catalogs.New("source1", []catalogs.Record{
		record("V1", "Acme", "P1", "Widget", catalogs.Price(10)),
		record("V2", "Solo One", "P2", "Rope", catalogs.Price(5)),
	})
	c2 := catalogs.New("source2", []catalogs.Record{
		record("W1", "Acme", "Q1", "Widget", catalogs.Price(9)),
		record("W2", "Solo Two", "Q2", "Chain", catalogs.Price(6)),
	})

	vendors := match.Vendors(c1, c2)

	require.Equal(t, 3, vendors.Len())
	assert.Equal(t, 1, vendors.Count(match.StatusMatched))
	assert.Equal(t, 1, vendors.Count(match.StatusOnlySource1))
	assert.Equal(t, 1, vendors.Count(match.StatusOnlySource2))

	acme, ok := vendors.ByKey("acme")
	require.True(t, ok)
	assert.Equal(t, match.StatusMatched, acme.Status)
	require.NotNil(t, acme.Source1)
	require.NotNil(t, acme.Source2)
	assert.Equal(t, "V1", acme.Source1.VendorID)
	assert.Equal(t, "W1", acme.Source2.VendorID)

	solo1, ok := vendors.ByKey("solo one")
	require.True(t, ok)
	assert.Equal(t, match.StatusOnlySource1, solo1.Status)
	assert.Nil(t, solo1.Source2, "absent side must be nil")
}

func TestVendorsJoinCompleteness(t *testing.T) {
	c1 := catalogs.New("source1", []catalogs.Record{
		record("V1", "Acme", "P1", "Widget", nil),
		record("V1", "Acme", "P2", "Rope", nil),
		record("V2", "Beta", "P3", "Chain", nil),
	})
	c2 := catalogs.New("source2", []catalogs.Record{
		record("W1", "Beta", "Q1", "Chain", nil),
		record("W2", "Gamma", "Q2", "Hook", nil),
	})

	vendors := match.Vendors(c1, c2)

	// Every row lands in exactly one bucket and the bucket totals
	// reconstruct each side's distinct-key count.
	total := vendors.Count(match.StatusMatched) +
		vendors.Count(match.StatusOnlySource1) +
		vendors.Count(match.StatusOnlySource2)
	assert.Equal(t, vendors.Len(), total)

	left := vendors.Count(match.StatusMatched) + vendors.Count(match.StatusOnlySource1)
	assert.Equal(t, len(c1.DistinctVendorKeys()), left)

	right := vendors.Count(match.StatusMatched) + vendors.Count(match.StatusOnlySource2)
	assert.Equal(t, len(c2.DistinctVendorKeys()), right)
}

func TestVendorDisplayName(t *testing.T) {
	matched := match.VendorMatch{
		VendorKey: "acme co",
		Source1:   &match.VendorSide{VendorName: "ACME Co"},
		Source2:   &match.VendorSide{VendorName: "Acme co."},
	}
	assert.Equal(t, "ACME Co", matched.DisplayName())

	only2 := match.VendorMatch{
		VendorKey: "acme co",
		Source2:   &match.VendorSide{VendorName: "Acme co."},
	}
	assert.Equal(t, "Acme co.", only2.DisplayName())

	bare := match.VendorMatch{VendorKey: "acme co"}
	assert.Equal(t, "acme co", bare.DisplayName())
}

func TestItemsClassificationAndPriceRelation(t *testing.T) {
	c1 := catalogs.New("source1", []catalogs.Record{
		record("V1", "Acme", "P1", "Widget", catalogs.Price(12)),
		record("V1", "Acme", "P2", "Rope", catalogs.Price(5)),
		record("V1", "Acme", "P3", "Chain", catalogs.Price(7)),
		record("V1", "Acme", "P4", "Hook", catalogs.Price(3)),
	})
	c2 := catalogs.New("source2", []catalogs.Record{
		record("W1", "Acme", "Q1", "Widget", catalogs.Price(10)),
		record("W1", "Acme", "Q2", "Rope", catalogs.Price(8)),
		record("W1", "Acme", "Q3", "Chain", catalogs.Price(7)),
		record("W1", "Acme", "Q5", "Anchor", catalogs.Price(20)),
	})

	items := match.Items(c1, c2)

	require.Equal(t, 5, items.Len())
	assert.Equal(t, 3, items.Count(match.StatusMatched))
	assert.Equal(t, 1, items.Count(match.StatusOnlySource1))
	assert.Equal(t, 1, items.Count(match.StatusOnlySource2))

	relations := map[string]match.PriceRelation{}
	for _, row := range items.ByStatus(match.StatusMatched) {
		relations[row.ProductKey] = row.PriceRelation
	}
	assert.Equal(t, match.Source1Higher, relations["widget"])
	assert.Equal(t, match.Source1Lower, relations["rope"])
	assert.Equal(t, match.Same, relations["chain"])
}

func TestItemsPriceRelationTotality(t *testing.T) {
	c1 := catalogs.New("source1", []catalogs.Record{
		record("V1", "Acme", "P1", "Widget", catalogs.Price(12)),
		record("V1", "Acme", "P2", "Rope", nil),
	})
	c2 := catalogs.New("source2", []catalogs.Record{
		record("W1", "Acme", "Q1", "Widget", catalogs.Price(10)),
		record("W1", "Acme", "Q2", "Rope", catalogs.Price(4)),
	})

	items := match.Items(c1, c2)

	for _, row := range items.Rows() {
		bothPriced := row.Status == match.StatusMatched &&
			row.Source1 != nil && row.Source1.Price != nil &&
			row.Source2 != nil && row.Source2.Price != nil
		if bothPriced {
			assert.NotEqual(t, match.RelationNone, row.PriceRelation,
				"matched row with both prices must carry exactly one relation")
		} else {
			assert.Equal(t, match.RelationNone, row.PriceRelation,
				"nil price or unmatched row must stay incomparable")
		}
	}
}

func TestItemsEmptySide(t *testing.T) {
	c1 := catalogs.New("source1", nil)
	c2 := catalogs.New("source2", []catalogs.Record{
		record("W1", "Acme", "Q1", "Widget", catalogs.Price(10)),
	})

	items := match.Items(c1, c2)

	require.Equal(t, 1, items.Len())
	assert.Equal(t, 1, items.Count(match.StatusOnlySource2))

	vendors := match.Vendors(c1, c2)
	require.Equal(t, 1, vendors.Len())
	assert.Equal(t, match.StatusOnlySource2, vendors.Rows()[0].Status)
}

func TestItemsByVendorKey(t *testing.T) {
	c1 := catalogs.New("source1", []catalogs.Record{
		record("V1", "Acme", "P1", "Widget", catalogs.Price(1)),
		record("V2", "Beta", "P2", "Rope", catalogs.Price(2)),
	})
	c2 := catalogs.New("source2", nil)

	items := match.Items(c1, c2)
	assert.Len(t, items.ByVendorKey("acme"), 1)
	assert.Len(t, items.ByVendorKey("beta"), 1)
	assert.Empty(t, items.ByVendorKey("gamma"))
}

func TestItemsRowsSorted(t *testing.T) {
	c1 := catalogs.New("source1", []catalogs.Record{
		record("V1", "Zeta", "P1", "B", catalogs.Price(1)),
		record("V2", "Acme", "P2", "Z", catalogs.Price(2)),
		record("V2", "Acme", "P3", "A", catalogs.Price(3)),
	})

	items := match.Items(c1, catalogs.New("source2", nil))
	rows := items.Rows()

	require.Equal(t, 3, items.Len())
	assert.Equal(t, "acme", rows[0].VendorKey)
	assert.Equal(t, "a", rows[0].ProductKey)
	assert.Equal(t, "z", rows[1].ProductKey)
	assert.Equal(t, "zeta", rows[2].VendorKey)
}

func TestExclusiveVendors(t *testing.T) {
	c1 := catalogs.New("source1", []catalogs.Record{
		record("V1", "Acme", "P1", "Widget", catalogs.Price(1)),
		record("V2", "Beta", "P2", "Rope", catalogs.Price(2)),
	})
	c2 := catalogs.New("source2", []catalogs.Record{
		record("W1", "Acme", "Q1", "Widget", catalogs.Price(1)),
		record("W2", "Gamma", "Q2", "Hook", catalogs.Price(3)),
	})

	items := match.Items(c1, c2)
	assert.Equal(t, []string{"beta", "gamma"}, items.ExclusiveVendors())
}
