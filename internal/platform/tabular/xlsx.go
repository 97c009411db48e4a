package tabular

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

var zipMagic = []byte{'P', 'K', 0x03, 0x04}

func isWorkbook(data []byte) bool {
	return bytes.HasPrefix(data, zipMagic)
}

// parseWorkbook reads the first sheet of an XLSX file. The first
// non-empty row is the header; fully empty rows are skipped.
func (p *Parser) parseWorkbook(data []byte) (Result, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w: open workbook: %v", ErrNoPlausibleTable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Result{}, fmt.Errorf("%w: workbook has no sheets", ErrNoPlausibleTable)
	}

	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return Result{}, fmt.Errorf("%w: read sheet %q: %v", ErrNoPlausibleTable, sheetName, err)
	}

	var raw [][]string
	width := 0
	for _, row := range rows {
		if isBlankRow(row) {
			continue
		}
		raw = append(raw, row)
		if len(row) > width {
			width = len(row)
		}
	}
	if len(raw) == 0 {
		return Result{}, fmt.Errorf("%w: sheet %q is empty", ErrNoPlausibleTable, sheetName)
	}

	header := make([]string, width)
	copy(header, raw[0])
	table := Table{Columns: normalizeHeader(header)}
	for _, row := range raw[1:] {
		cells := make([]string, width)
		copy(cells, row)
		table.Rows = append(table.Rows, cells)
	}

	if table.NumColumns() < p.minColumns() {
		return Result{}, fmt.Errorf("%w: sheet %q has %d columns, need %d",
			ErrNoPlausibleTable, sheetName, table.NumColumns(), p.minColumns())
	}
	return Result{Table: table, Encoding: Workbook}, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
