package align_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricelens/pricelens/pkg/align"
	"github.com/pricelens/pricelens/pkg/catalogs"
)

func normalized(source string, records []catalogs.Record) *catalogs.Catalog {
	return catalogs.Normalize(catalogs.New(source, records))
}

func TestAlignRewritesVendorKeys(t *testing.T) {
	source := normalized("source1", []catalogs.Record{
		{VendorName: "ACME Trading Co", ProductName: "Blue Widget"},
		{VendorName: "ACME Trading Co", ProductName: "Red Widget"},
	})
	target := normalized("source2", []catalogs.Record{
		{VendorName: "acme co", ProductName: "Blue Widget"},
	})

	a, err := align.New(align.WithThreshold(80), align.WithKeys(align.VendorKeys))
	require.NoError(t, err)

	aligned := a.Align(source, target)

	for _, r := range aligned.Records() {
		assert.Equal(t, "acme co", r.VendorKey, "all rows sharing the key are rewritten identically")
	}
}

func TestAlignIsOneDirectional(t *testing.T) {
	source := normalized("source1", []catalogs.Record{{VendorName: "ACME Trading Co", ProductName: "Widget"}})
	target := normalized("source2", []catalogs.Record{{VendorName: "Acme Co", ProductName: "Widget"}})

	a, err := align.New()
	require.NoError(t, err)
	a.Align(source, target)

	assert.Equal(t, "acme co", target.Records()[0].VendorKey, "target must never be modified")
	assert.Equal(t, "acme trading co", source.Records()[0].VendorKey, "source snapshot is unchanged; Align returns a copy")
}

func TestAlignThresholdBoundary(t *testing.T) {
	// "acme trading co" vs "acme co" scores exactly 80 under the token-set scorer.
	source := normalized("source1", []catalogs.Record{{VendorName: "Acme Trading Co", ProductName: "Widget"}})
	target := normalized("source2", []catalogs.Record{{VendorName: "Acme Co", ProductName: "Widget"}})

	at, err := align.New(align.WithThreshold(80), align.WithKeys(align.VendorKeys))
	require.NoError(t, err)
	aligned := at.Align(source, target)
	assert.Equal(t, "acme co", aligned.Records()[0].VendorKey, "score equal to threshold aligns")

	above, err := align.New(align.WithThreshold(81), align.WithKeys(align.VendorKeys))
	require.NoError(t, err)
	unaligned := above.Align(source, target)
	assert.Equal(t, "acme trading co", unaligned.Records()[0].VendorKey, "score below threshold falls back to the original key")
}

func TestAlignProductKeysOnly(t *testing.T) {
	source := normalized("source1", []catalogs.Record{{VendorName: "Acme Ltd", ProductName: "Widget Blue"}})
	target := normalized("source2", []catalogs.Record{{VendorName: "Acme Co", ProductName: "Blue Widget"}})

	a, err := align.New(align.WithKeys(align.ProductKeys))
	require.NoError(t, err)
	aligned := a.Align(source, target)

	r := aligned.Records()[0]
	assert.Equal(t, "blue widget", r.ProductKey)
	assert.Equal(t, "acme ltd", r.VendorKey, "vendor keys untouched when only product keys selected")
}

func TestAlignEmptyTargetLeavesSourceUnchanged(t *testing.T) {
	source := normalized("source1", []catalogs.Record{{VendorName: "Acme", ProductName: "Widget"}})
	target := normalized("source2", nil)

	a, err := align.New()
	require.NoError(t, err)
	aligned := a.Align(source, target)

	assert.Equal(t, source.Records(), aligned.Records())
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := align.New(align.WithThreshold(150))
	assert.Error(t, err)

	_, err = align.New(align.WithThreshold(-1))
	assert.Error(t, err)

	_, err = align.New(align.WithKeys(0))
	assert.Error(t, err)
}
