package pricebook

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/javajack/pricebook/internal/catalog"
)

func variantWithPrice(raw string) catalog.Variant {
	v := catalog.Variant{SKU: "SKU-1", PriceRaw: raw}
	if d, err := decimal.NewFromString(raw); err == nil {
		v.Price = d
	}
	return v
}

func TestPricer_NoExpression(t *testing.T) {
	p, err := NewPricer("", nil)
	require.NoError(t, err)

	prod := &catalog.Product{Handle: "shirt"}
	assert.Equal(t, "$12.50", p.Format(prod, variantWithPrice("12.5")))
	assert.Equal(t, "abc", p.Format(prod, variantWithPrice("abc")))
	assert.Equal(t, "$0.00", p.Format(prod, variantWithPrice("")))
}

func TestPricer_Expression(t *testing.T) {
	p, err := NewPricer("price * 0.5", nil)
	require.NoError(t, err)

	prod := &catalog.Product{Handle: "shirt"}
	assert.Equal(t, "$6.25", p.Format(prod, variantWithPrice("12.5")))
	assert.Equal(t, "abc", p.Format(prod, variantWithPrice("abc")))
	assert.Equal(t, "$0.00", p.Format(prod, variantWithPrice("")))
}

func TestPricer_ExpressionUsesProductFields(t *testing.T) {
	p, err := NewPricer(`vendor == "Acme" ? price * 0.5 : price`, nil)
	require.NoError(t, err)

	assert.Equal(t, "$5.00", p.Format(&catalog.Product{Vendor: "Acme"}, variantWithPrice("10")))
	assert.Equal(t, "$10.00", p.Format(&catalog.Product{Vendor: "Other"}, variantWithPrice("10")))
}

func TestPricer_CompareAtPrice(t *testing.T) {
	p, err := NewPricer("compare_at_price > 0 ? compare_at_price : price", nil)
	require.NoError(t, err)

	v := variantWithPrice("10")
	v.CompareAtPrice = "14"
	assert.Equal(t, "$14.00", p.Format(&catalog.Product{}, v))
	assert.Equal(t, "$10.00", p.Format(&catalog.Product{}, variantWithPrice("10")))
}

func TestNewPricer_Invalid(t *testing.T) {
	_, err := NewPricer("price *", nil)
	assert.Error(t, err)

	_, err = NewPricer(`"not a number"`, nil)
	assert.Error(t, err)

	_, err = NewPricer("unknown_field * 2", nil)
	assert.Error(t, err)
}

func TestPricer_Nil(t *testing.T) {
	var p *Pricer
	assert.Equal(t, "$3.00", p.Format(&catalog.Product{}, variantWithPrice("3")))
}

func TestPricer_NonFiniteResult(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p, err := NewPricer("price / compare_at_price", zap.New(core))
	require.NoError(t, err)

	prod := &catalog.Product{Handle: "shirt"}
	assert.NotPanics(t, func() {
		assert.Equal(t, "$10.00", p.Format(prod, variantWithPrice("10")))
	})
	assert.Equal(t, 1, logs.FilterMessageSnippet("not a finite number").Len())

	p, err = NewPricer("(price - price) / compare_at_price", nil)
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		assert.Equal(t, "$0.00", p.Format(prod, variantWithPrice("0")))
	})
}
