package pricebook

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"12.5", "$12.50"},
		{"12", "$12.00"},
		{"0.005", "$0.01"},
		{"1234.567", "$1234.57"},
		{"abc", "abc"},
		{"", "$0.00"},
		{"  ", "$0.00"},
		{"0", "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.in))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$7.50", FormatAmount(decimal.NewFromFloat(7.5)))
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "", VariantLabel("Default Title", "", ""))
	assert.Equal(t, "Red / Large", VariantLabel("Red", "Large", ""))
	assert.Equal(t, "Red / Cotton", VariantLabel("Red", "nan", "Cotton"))
	assert.Equal(t, "Large", VariantLabel("", "Default Title", "Large"))
	assert.Equal(t, "", VariantLabel())
}

func TestColToName(t *testing.T) {
	assert.Equal(t, "A", ColToName(0))
	assert.Equal(t, "E", ColToName(4))
	assert.Equal(t, "Z", ColToName(25))
	assert.Equal(t, "AA", ColToName(26))
	assert.Equal(t, "C7", NewCellRef(6, 2).CellName())
	assert.Equal(t, "C9", NewCellRef(6, 2).Down(2).CellName())
}
