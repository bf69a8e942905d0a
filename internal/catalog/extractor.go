package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/javajack/pricebook/internal/tabular"
)

// ErrLoad is returned when the catalog export cannot be read.
var ErrLoad = errors.New("load catalog")

// Catalog maps handles to products and remembers the order in which
// handles were first seen.
type Catalog struct {
	products map[string]*Product
	order    []string
}

// Load reads the export at path and extracts its products.
func Load(path string, logger *zap.Logger) (*Catalog, error) {
	records, err := tabular.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return Extract(records, logger), nil
}

// Extract folds records into a catalog. The first row of a handle fixes
// the product fields; later rows only add variants and images. Records
// without a handle are skipped.
func Extract(records []tabular.Record, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{products: make(map[string]*Product)}

	for _, rec := range records {
		handle := rec.Get(ColHandle)
		if handle == "" {
			logger.Debug("skipping catalog row without handle", zap.Int("line", rec.Line))
			continue
		}

		p, seen := c.products[handle]
		if !seen {
			p = newProduct(handle, rec)
			c.products[handle] = p
			c.order = append(c.order, handle)
		}

		if rec.Has("Option1 Value") || rec.Has(ColVariantSKU) {
			p.Variants = append(p.Variants, newVariant(rec))
		}

		if rec.Has(ColImageSrc) {
			img := newImage(rec)
			if !seen || img.Position > 1 {
				p.Images = append(p.Images, img)
			}
		}
	}
	return c
}

func newProduct(handle string, rec tabular.Record) *Product {
	return &Product{
		Handle:          handle,
		Title:           rec.Get(ColTitle),
		BodyHTML:        rec.Get(ColBodyHTML),
		Vendor:          rec.Get(ColVendor),
		ProductCategory: rec.Get(ColProductCategory),
		Type:            rec.Get(ColType),
		Tags:            rec.Get(ColTags),
		Published:       parseBool(rec.Get(ColPublished), true),
	}
}

func newVariant(rec tabular.Record) Variant {
	raw := rec.Get(ColVariantPrice)
	price, err := decimal.NewFromString(raw)
	if err != nil {
		price = decimal.Zero
	}

	v := Variant{
		SKU:              rec.Get(ColVariantSKU),
		Price:            price,
		PriceRaw:         raw,
		CompareAtPrice:   rec.Get(ColCompareAtPrice),
		InventoryQty:     int(parseFloat(rec.Get(ColInventoryQty))),
		Grams:            parseFloat(rec.Get(ColVariantGrams)),
		WeightUnit:       rec.Get(ColWeightUnit),
		Barcode:          rec.Get(ColVariantBarcode),
		Taxable:          parseBool(rec.Get(ColVariantTaxable), true),
		RequiresShipping: parseBool(rec.Get(ColRequiresShipping), true),
	}
	if v.WeightUnit == "" {
		v.WeightUnit = "g"
	}
	for i := range v.Options {
		n := strconv.Itoa(i + 1)
		v.Options[i] = Option{
			Name:  rec.Get("Option" + n + " Name"),
			Value: rec.Get("Option" + n + " Value"),
		}
	}
	return v
}

func newImage(rec tabular.Record) Image {
	pos := int(parseFloat(rec.Get(ColImagePosition)))
	if pos < 1 {
		pos = 1
	}
	return Image{
		Src:      rec.Get(ColImageSrc),
		Position: pos,
		AltText:  rec.Get(ColImageAltText),
	}
}

// parseFloat accepts "3" as well as the "3.0" spreadsheet tools write back.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseBool(s string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return fallback
	}
	return b
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Products returns every product in first-seen order.
func (c *Catalog) Products() []*Product {
	if c == nil {
		return nil
	}
	out := make([]*Product, 0, len(c.order))
	for _, h := range c.order {
		out = append(out, c.products[h])
	}
	return out
}

// Handles returns every handle in first-seen order.
func (c *Catalog) Handles() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.order...)
}

// Product returns the product for handle.
func (c *Catalog) Product(handle string) (*Product, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.products[handle]
	return p, ok
}
