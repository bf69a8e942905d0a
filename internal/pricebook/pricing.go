package pricebook

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/javajack/pricebook/internal/catalog"
)

// Pricer formats the wholesale price of a variant, optionally through a
// configured expression such as "price * 0.6".
//
// The expression sees price, compare_at_price, sku, handle, vendor and
// type, and must evaluate to a number.
type Pricer struct {
	program *vm.Program
	source  string
	logger  *zap.Logger
}

func priceEnv(p *catalog.Product, v catalog.Variant) map[string]any {
	compareAt, _ := decimal.NewFromString(v.CompareAtPrice)
	return map[string]any{
		"price":            v.Price.InexactFloat64(),
		"compare_at_price": compareAt.InexactFloat64(),
		"sku":              v.SKU,
		"handle":           p.Handle,
		"vendor":           p.Vendor,
		"type":             p.Type,
	}
}

// NewPricer compiles expression. An empty expression formats prices
// unchanged.
func NewPricer(expression string, logger *zap.Logger) (*Pricer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Pricer{source: strings.TrimSpace(expression), logger: logger}
	if p.source == "" {
		return p, nil
	}
	program, err := expr.Compile(p.source,
		expr.Env(priceEnv(&catalog.Product{}, catalog.Variant{})),
		expr.AsFloat64(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile price expression %q: %w", p.source, err)
	}
	p.program = program
	return p, nil
}

// Format renders the price cell of v. Unparseable prices are returned as
// exported and are never fed to the expression.
func (p *Pricer) Format(prod *catalog.Product, v catalog.Variant) string {
	if p == nil || p.program == nil || strings.TrimSpace(v.PriceRaw) == "" {
		return FormatPrice(v.PriceRaw)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(v.PriceRaw))
	if err != nil {
		return v.PriceRaw
	}
	v.Price = price

	out, err := expr.Run(p.program, priceEnv(prod, v))
	if err != nil {
		p.logger.Warn("price expression failed, using exported price",
			zap.String("handle", prod.Handle),
			zap.String("sku", v.SKU),
			zap.Error(err),
		)
		return FormatAmount(price)
	}
	f, ok := out.(float64)
	if !ok {
		return FormatAmount(price)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		p.logger.Warn("price expression is not a finite number, using exported price",
			zap.String("handle", prod.Handle),
			zap.String("sku", v.SKU),
			zap.Float64("result", f),
		)
		return FormatAmount(price)
	}
	return FormatAmount(decimal.NewFromFloat(f).Round(2))
}
