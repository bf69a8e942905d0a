package pricebook

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/javajack/pricebook/internal/catalog"
	"github.com/javajack/pricebook/internal/config"
	"github.com/javajack/pricebook/internal/translation"
)

// Builder lays out the price list: a header block, then one section per
// group with one row block per product.
type Builder struct {
	cfg          *config.Config
	translations *translation.Table
	pricer       *Pricer
	fetcher      ImageFetcher
	scratch      *scratchFiles
	logger       *zap.Logger

	sheet  *sheetWriter
	styles styles
	upper  cases.Caser
}

// NewBuilder creates a builder over a new workbook. translations may be nil.
func NewBuilder(cfg *config.Config, translations *translation.Table, pricer *Pricer,
	fetcher ImageFetcher, scratch *scratchFiles, logger *zap.Logger) (*Builder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	sheet, err := newSheetWriter()
	if err != nil {
		return nil, err
	}
	st, err := newStyles(sheet.file)
	if err != nil {
		sheet.Close()
		return nil, err
	}
	for col, w := range columnWidths {
		if err := sheet.SetColWidth(col, w); err != nil {
			sheet.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}
	return &Builder{
		cfg:          cfg,
		translations: translations,
		pricer:       pricer,
		fetcher:      fetcher,
		scratch:      scratch,
		logger:       logger,
		sheet:        sheet,
		styles:       st,
		upper:        cases.Upper(language.Und),
	}, nil
}

// ContactLine renders the phone, email and website line of the header.
func ContactLine(cfg *config.Config) string {
	line := fmt.Sprintf("PHONE: %s  ", cfg.Phone)
	if cfg.Email != "" {
		line += "Email: " + cfg.Email + "  "
	}
	if cfg.Website != "" {
		line += "Web: " + cfg.Website
	}
	return strings.TrimSpace(line)
}

// AddHeader writes the company banner, contact line, optional address and
// optional logo starting at row. It returns the first row after the header
// and a blank separator row.
func (b *Builder) AddHeader(row int) (int, error) {
	bannerH := float64(bannerHeight)
	if b.cfg.Logo != "" && b.addLogo(NewCellRef(row, colImage)) {
		bannerH = bannerLogoHeight
	}

	if err := b.sheet.SetValue(NewCellRef(row, 0), b.cfg.CompanyName, b.styles.company); err != nil {
		return row, err
	}
	if err := b.sheet.MergeRow(row); err != nil {
		return row, err
	}
	if err := b.sheet.SetRowHeight(row, bannerH); err != nil {
		return row, err
	}

	last := row + 1
	if err := b.sheet.SetValue(NewCellRef(last, 0), ContactLine(b.cfg), b.styles.contact); err != nil {
		return row, err
	}
	if err := b.sheet.MergeRow(last); err != nil {
		return row, err
	}

	if b.cfg.Address != "" {
		last++
		if err := b.sheet.SetValue(NewCellRef(last, 0), b.cfg.Address, b.styles.contact); err != nil {
			return row, err
		}
		if err := b.sheet.MergeRow(last); err != nil {
			return row, err
		}
	}
	return last + 2, nil
}

// addLogo embeds the configured logo. Failures are logged and reported as
// false.
func (b *Builder) addLogo(ref CellRef) bool {
	data, err := os.ReadFile(b.cfg.Logo)
	if err != nil {
		b.logger.Warn("could not read logo", zap.String("path", b.cfg.Logo), zap.Error(err))
		return false
	}
	if err := b.embed(ref, data, "logo", logoSize); err != nil {
		b.logger.Warn("could not embed logo", zap.String("path", b.cfg.Logo), zap.Error(err))
		return false
	}
	return true
}

// AddSection writes a titled section for one group starting at row and
// returns the row after it.
func (b *Builder) AddSection(ctx context.Context, group catalog.Group, row int) (int, error) {
	if err := b.sheet.StyleRow(row, b.styles.section); err != nil {
		return row, err
	}
	if err := b.sheet.SetValue(NewCellRef(row, 0), b.upper.String(group.Tag), b.styles.section); err != nil {
		return row, err
	}
	if err := b.sheet.MergeRow(row); err != nil {
		return row, err
	}
	row++

	if len(group.Products) == 0 {
		return row + 1, nil
	}

	for col, h := range columnHeaders {
		if err := b.sheet.SetValue(NewCellRef(row, col), h, b.styles.columnHeader); err != nil {
			return row, err
		}
	}
	row++

	for i, p := range group.Products {
		if i > 0 {
			row++ // spacer
		}
		var err error
		if row, err = b.addProduct(ctx, p, row); err != nil {
			return row, fmt.Errorf("product %q: %w", p.Handle, err)
		}
	}
	return row + 1, nil
}

// addProduct writes one row per variant. The image and the multilingual
// name are written once and merged down across the variant rows; a
// product without variants gets a single row.
func (b *Builder) addProduct(ctx context.Context, p *catalog.Product, row int) (int, error) {
	rows := max(len(p.Variants), 1)

	height := float64(plainRowHeight)
	if b.addProductImage(ctx, p, NewCellRef(row, colImage)) {
		height = math.Max(plainRowHeight, math.Ceil(imageRowHeight/float64(rows)))
	}

	for i := 0; i < rows; i++ {
		r := row + i
		if err := b.sheet.SetRowHeight(r, height); err != nil {
			return row, err
		}
		if err := b.sheet.StyleRow(r, b.styles.cell); err != nil {
			return row, err
		}
	}

	imageRef := NewCellRef(row, colImage)
	if err := b.sheet.SetValue(imageRef, "", b.styles.imageCell); err != nil {
		return row, err
	}
	for i := 1; i < rows; i++ {
		if err := b.sheet.SetValue(imageRef.Down(i), "", b.styles.imageCell); err != nil {
			return row, err
		}
	}

	nameRef := NewCellRef(row, colName)
	name := b.translations.BuildMultilingualName(p.Handle, p.Title, b.cfg.TargetLanguages)
	if err := b.sheet.SetValue(nameRef, name, b.styles.cell); err != nil {
		return row, err
	}

	for i, v := range p.Variants {
		r := row + i
		if err := b.sheet.SetValue(NewCellRef(r, colSKU), v.SKU, b.styles.cell); err != nil {
			return row, err
		}
		if err := b.sheet.SetValue(NewCellRef(r, colVariant), VariantLabel(v.OptionValues()...), b.styles.cell); err != nil {
			return row, err
		}
		if err := b.sheet.SetValue(NewCellRef(r, colPrice), b.pricer.Format(p, v), b.styles.cell); err != nil {
			return row, err
		}
	}

	if err := b.sheet.MergeDown(imageRef, rows); err != nil {
		return row, err
	}
	if err := b.sheet.MergeDown(nameRef, rows); err != nil {
		return row, err
	}
	return row + rows, nil
}

// addProductImage downloads and embeds the first product image. Failures
// are logged and leave the cell blank.
func (b *Builder) addProductImage(ctx context.Context, p *catalog.Product, ref CellRef) bool {
	img, ok := p.FirstImage()
	if !ok || img.Src == "" || b.fetcher == nil {
		return false
	}
	data, err := b.fetcher.Fetch(ctx, img.Src)
	if err != nil {
		b.logger.Warn("could not load image", zap.String("handle", p.Handle), zap.String("src", img.Src), zap.Error(err))
		return false
	}
	if err := b.embed(ref, data, p.Handle, thumbnailSize); err != nil {
		b.logger.Warn("could not embed image", zap.String("handle", p.Handle), zap.String("src", img.Src), zap.Error(err))
		return false
	}
	return true
}

// embed shrinks image data to a size x size box, stages it as a scratch
// file and places it at ref.
func (b *Builder) embed(ref CellRef, data []byte, name string, size int) error {
	thumb, err := thumbnail(data, size, size)
	if err != nil {
		return err
	}
	path, err := b.scratch.WritePNG(thumb, name, ref.Row+1)
	if err != nil {
		return err
	}
	return b.sheet.AddPicture(ref, path)
}

// SaveAs writes the workbook to path.
func (b *Builder) SaveAs(path string) error {
	if err := b.sheet.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Close releases the workbook.
func (b *Builder) Close() error {
	return b.sheet.Close()
}
