package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name string
		want string
		in   int64
	}{
		{name: "small", in: 7, want: "7"},
		{name: "thousands", in: 1250, want: "1,250"},
		{name: "millions", in: 1234567, want: "1,234,567"},
		{name: "negative", in: -20500, want: "-20,500"},
		{name: "zero", in: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCount(tt.in))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	neg := -0.2
	pos := 0.053
	assert.Equal(t, "-20.0%", formatPercent(&neg))
	assert.Equal(t, "+5.3%", formatPercent(&pos))
	assert.Equal(t, missingCell, formatPercent(nil), "missing stays distinct from zero")
}

func TestFormatInt(t *testing.T) {
	v := int64(1000)
	assert.Equal(t, "1,000", formatInt(&v))
	assert.Equal(t, missingCell, formatInt(nil))
}
