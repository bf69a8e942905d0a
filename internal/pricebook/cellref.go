package pricebook

import "strconv"

// Columns of the price list, 0-based.
const (
	colImage = iota
	colSKU
	colName
	colVariant
	colPrice

	lastCol = colPrice
)

// CellRef is a 0-based cell position on the price list sheet.
type CellRef struct {
	Row int
	Col int
}

// NewCellRef creates a CellRef.
func NewCellRef(row, col int) CellRef {
	return CellRef{Row: row, Col: col}
}

// CellName returns the A1-style name, e.g. {Row: 0, Col: 2} -> "C1".
func (c CellRef) CellName() string {
	return ColToName(c.Col) + strconv.Itoa(c.Row+1)
}

// Down returns the cell n rows below.
func (c CellRef) Down(n int) CellRef {
	return CellRef{Row: c.Row + n, Col: c.Col}
}

// ColToName converts a 0-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA"
func ColToName(col int) string {
	result := ""
	col++
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
