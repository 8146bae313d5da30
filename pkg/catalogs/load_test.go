package catalogs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricelens/pricelens/pkg/errors"
)

const sampleCSV = `VendorID,vendorName,productID,productName,productPrice,region
V1,Acme Co,P1,Blue Widget,12.50,north
V2,BlueSea Imports,P2,Anchor Rope,7,south
V3,Acme Co,P3,Red Widget,n/a,north
`

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(sampleCSV), "source1")
	require.NoError(t, err)

	assert.Equal(t, "source1", c.Source())
	require.Equal(t, 3, c.Len())

	records := c.Records()
	assert.Equal(t, "V1", records[0].VendorID)
	assert.Equal(t, "Acme Co", records[0].VendorName)
	assert.Equal(t, "Blue Widget", records[0].ProductName)
	require.True(t, records[0].HasPrice())
	assert.Equal(t, 12.50, *records[0].Price)

	// Extra columns are ignored, keys are not derived until Normalize.
	assert.Empty(t, records[0].VendorKey)
}

func TestLoadUnparseablePriceBecomesNil(t *testing.T) {
	c, err := Load(strings.NewReader(sampleCSV), "source1")
	require.NoError(t, err)

	records := c.Records()
	assert.False(t, records[2].HasPrice(), "n/a price must become nil, not zero")
	assert.Nil(t, records[2].Price)
}

func TestLoadMissingColumnIsSchemaError(t *testing.T) {
	csv := "VendorID,vendorName,productID,productName\nV1,Acme,P1,Widget\n"

	_, err := Load(strings.NewReader(csv), "source2")
	require.Error(t, err)
	assert.True(t, errors.IsSchemaError(err))

	var schemaErr *errors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "source2", schemaErr.Source)
	assert.Equal(t, []string{"productPrice"}, schemaErr.Missing)
}

func TestLoadEmptyInputIsSchemaError(t *testing.T) {
	_, err := Load(strings.NewReader(""), "source1")
	assert.True(t, errors.IsSchemaError(err))
}

func TestLoadShortRowsTolerated(t *testing.T) {
	csv := "VendorID,vendorName,productID,productName,productPrice\nV1,Acme,P1\n"

	c, err := Load(strings.NewReader(csv), "source1")
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	r := c.Records()[0]
	assert.Equal(t, "P1", r.ProductID)
	assert.Empty(t, r.ProductName)
	assert.Nil(t, r.Price)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{"12.5", Price(12.5)},
		{" 7 ", Price(7)},
		{"", nil},
		{"free", nil},
		{"12,50", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := parsePrice(tt.raw)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}
