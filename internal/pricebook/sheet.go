package pricebook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the title of the single price list sheet.
const SheetName = "Price List"

// sheetWriter writes cells, merges and pictures to the price list sheet.
type sheetWriter struct {
	file  *excelize.File
	sheet string
}

// newSheetWriter creates a workbook holding one empty price list sheet.
func newSheetWriter() (*sheetWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	return &sheetWriter{file: f, sheet: SheetName}, nil
}

// SetValue writes a value and, when styleID is non-zero, its style.
func (w *sheetWriter) SetValue(ref CellRef, value any, styleID int) error {
	cell := ref.CellName()
	if err := w.file.SetCellValue(w.sheet, cell, value); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}
	if styleID > 0 {
		return w.file.SetCellStyle(w.sheet, cell, cell, styleID)
	}
	return nil
}

// StyleRow applies styleID to every price list column of row.
func (w *sheetWriter) StyleRow(row, styleID int) error {
	from := NewCellRef(row, 0).CellName()
	to := NewCellRef(row, lastCol).CellName()
	return w.file.SetCellStyle(w.sheet, from, to, styleID)
}

// MergeRow merges all price list columns of row.
func (w *sheetWriter) MergeRow(row int) error {
	return w.merge(NewCellRef(row, 0), NewCellRef(row, lastCol))
}

// MergeDown merges ref with the rows-1 cells below it. A single row is
// left alone.
func (w *sheetWriter) MergeDown(ref CellRef, rows int) error {
	if rows <= 1 {
		return nil
	}
	return w.merge(ref, ref.Down(rows-1))
}

func (w *sheetWriter) merge(topLeft, bottomRight CellRef) error {
	tl, br := topLeft.CellName(), bottomRight.CellName()
	if err := w.file.MergeCell(w.sheet, tl, br); err != nil {
		return fmt.Errorf("merge cells %s:%s: %w", tl, br, err)
	}
	return nil
}

// SetRowHeight sets the height of a 0-based row in points.
func (w *sheetWriter) SetRowHeight(row int, height float64) error {
	return w.file.SetRowHeight(w.sheet, row+1, height)
}

// SetColWidth sets the width of a 0-based column.
func (w *sheetWriter) SetColWidth(col int, width float64) error {
	name := ColToName(col)
	return w.file.SetColWidth(w.sheet, name, name, width)
}

// AddPicture embeds the image file at path with its top-left corner in ref.
func (w *sheetWriter) AddPicture(ref CellRef, path string) error {
	cell := ref.CellName()
	err := w.file.AddPicture(w.sheet, cell, path, &excelize.GraphicOptions{
		OffsetX:         4,
		OffsetY:         4,
		LockAspectRatio: true,
	})
	if err != nil {
		return fmt.Errorf("add picture at %s: %w", cell, err)
	}
	return nil
}

// SaveAs writes the workbook to path.
func (w *sheetWriter) SaveAs(path string) error {
	return w.file.SaveAs(path)
}

// Close releases the workbook.
func (w *sheetWriter) Close() error {
	return w.file.Close()
}
