package pricebook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Layout constants. Heights are in points, widths in characters.
const (
	bannerHeight     = 36
	bannerLogoHeight = 64
	plainRowHeight   = 30
	imageRowHeight   = 80

	thumbnailSize = 100 // px, bounding box of product images
	logoSize      = 80  // px, bounding box of the logo
)

var columnWidths = [...]float64{
	colImage:   15,
	colSKU:     15,
	colName:    50,
	colVariant: 12,
	colPrice:   12,
}

var columnHeaders = [...]string{
	colImage:   "Image",
	colSKU:     "SKU",
	colName:    "Product Name",
	colVariant: "Variant",
	colPrice:   "Wholesale Price",
}

// styles holds the style IDs registered with the workbook.
type styles struct {
	company      int
	contact      int
	section      int
	columnHeader int
	cell         int
	imageCell    int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	defs := []struct {
		id    *int
		style *excelize.Style
	}{
		{&s.company, &excelize.Style{
			Font:      &excelize.Font{Size: 20, Bold: true},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		}},
		{&s.contact, &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		}},
		{&s.section, &excelize.Style{
			Font:      &excelize.Font{Size: 14, Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"D3D3D3"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder(),
		}},
		{&s.columnHeader, &excelize.Style{
			Font:      &excelize.Font{Size: 11, Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder(),
		}},
		{&s.cell, &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center", WrapText: true},
			Border:    thinBorder(),
		}},
		{&s.imageCell, &excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder(),
		}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return styles{}, fmt.Errorf("create style: %w", err)
		}
		*d.id = id
	}
	return s, nil
}
