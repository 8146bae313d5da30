package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaError(t *testing.T) {
	err := NewSchemaError("source1", []string{"productPrice"}, []string{"VendorID", "vendorName"})

	assert.Contains(t, err.Error(), "source1")
	assert.Contains(t, err.Error(), "productPrice")
	assert.Contains(t, err.Error(), "VendorID")
	assert.True(t, IsSchemaError(err))
	assert.False(t, IsNotFound(err))
}

func TestSchemaErrorWrapped(t *testing.T) {
	err := fmt.Errorf("loading catalog: %w",
		NewSchemaError("source2", []string{"productID", "productName"}, nil))

	require.Error(t, err)
	assert.True(t, IsSchemaError(err), "IsSchemaError should see through wrapping")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("threshold", 150, "must be between 0 and 100")

	assert.Contains(t, err.Error(), "threshold")
	assert.True(t, IsValidationError(err))
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "with file and line",
			err:  NewParseError("csv", "company1.csv", "wrong field count", nil),
			want: "parse error in csv file company1.csv: wrong field count",
		},
		{
			name: "without file",
			err:  NewParseError("yaml", "", "unexpected token", nil),
			want: "yaml parse error: unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrapHelpersNilPassthrough(t *testing.T) {
	assert.NoError(t, WrapIO("read", "file.csv", nil))
	assert.NoError(t, WrapParse("csv", "file.csv", nil))
	assert.NoError(t, WrapValidation("field", nil))
}

func TestIOErrorUnwrap(t *testing.T) {
	inner := New("disk gone")
	err := NewIOError("read", "company2.csv", inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "company2.csv")
}
