package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		n    float64
		d    float64
		want float64
	}{
		{"zero denominator", 0, 0, 0},
		{"zero numerator nonzero denominator", 0, 5, 0},
		{"three quarters", 3, 4, 75},
		{"whole", 7, 7, 100},
		{"rounds to two digits", 1, 3, 33.33},
		{"rounds up", 2, 3, 66.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.n, tt.d))
		})
	}
}

func TestPercentPrecision(t *testing.T) {
	assert.Equal(t, 33.0, PercentPrecision(1, 3, 0))
	assert.Equal(t, 33.3, PercentPrecision(1, 3, 1))
	assert.Equal(t, 0.0, PercentPrecision(9, 0, 4))
}
