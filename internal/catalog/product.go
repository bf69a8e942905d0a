// Package catalog rebuilds products, variants and images from a flat
// catalog export where each product spans one row per variant or image.
package catalog

import "github.com/shopspring/decimal"

// Column names of the catalog export.
const (
	ColHandle           = "Handle"
	ColTitle            = "Title"
	ColBodyHTML         = "Body (HTML)"
	ColVendor           = "Vendor"
	ColProductCategory  = "Product Category"
	ColType             = "Type"
	ColTags             = "Tags"
	ColPublished        = "Published"
	ColImageSrc         = "Image Src"
	ColImagePosition    = "Image Position"
	ColImageAltText     = "Image Alt Text"
	ColVariantSKU       = "Variant SKU"
	ColVariantPrice     = "Variant Price"
	ColCompareAtPrice   = "Variant Compare At Price"
	ColInventoryQty     = "Variant Inventory Qty"
	ColVariantGrams     = "Variant Grams"
	ColWeightUnit       = "Variant Weight Unit"
	ColVariantBarcode   = "Variant Barcode"
	ColVariantTaxable   = "Variant Taxable"
	ColRequiresShipping = "Variant Requires Shipping"
)

// UntaggedGroup collects products without any tag.
const UntaggedGroup = "untagged"

// Product is one catalog entry identified by its handle.
type Product struct {
	Handle          string
	Title           string
	BodyHTML        string
	Vendor          string
	ProductCategory string
	Type            string
	Tags            string // raw comma-separated tag string
	Published       bool
	Variants        []Variant
	Images          []Image
}

// Option is one option name/value pair of a variant, e.g. Size/Large.
type Option struct {
	Name  string
	Value string
}

// Variant is one purchasable option combination of a product.
type Variant struct {
	SKU              string
	Price            decimal.Decimal // zero when missing or unparseable
	PriceRaw         string          // the price cell as exported
	CompareAtPrice   string
	InventoryQty     int
	Grams            float64
	WeightUnit       string
	Barcode          string
	Options          [3]Option
	Taxable          bool
	RequiresShipping bool
}

// OptionValues returns the three option values in order.
func (v Variant) OptionValues() []string {
	return []string{v.Options[0].Value, v.Options[1].Value, v.Options[2].Value}
}

// Image is a product picture.
type Image struct {
	Src      string
	Position int // 1-based
	AltText  string
}

// FirstImage returns the first attached image, if any.
func (p *Product) FirstImage() (Image, bool) {
	if len(p.Images) == 0 {
		return Image{}, false
	}
	return p.Images[0], true
}
