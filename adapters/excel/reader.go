package excel

import (
	"io"

	"siparis/domain/order"

	"github.com/xuri/excelize/v2"
)

// openWorkbook parses r into an in-memory workbook. The caller must Close
// the returned file; Close also removes any temporary files excelize spilled
// while unpacking large sheets.
func openWorkbook(r io.Reader) (*excelize.File, error) {
	return excelize.OpenReader(r)
}

// firstSheet returns the name of the first sheet in workbook order, or ""
// when the workbook has none.
func firstSheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ""
	}
	return sheets[0]
}

// sheetRows adapts excelize's streaming row reader to order.RowIterator.
// Cells are read raw so numeric cells keep full precision regardless of the
// number format applied in the sheet. Boolean cells, which come back raw as
// "1"/"0", are rendered as TRUE/FALSE the way the sheet displays them.
type sheetRows struct {
	f     *excelize.File
	sheet string
	rows  *excelize.Rows
	row   int
}

var _ order.RowIterator = (*sheetRows)(nil)

func openRows(f *excelize.File, sheet string) (*sheetRows, error) {
	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	return &sheetRows{f: f, sheet: sheet, rows: rows}, nil
}

// Next advances one sheet row; excelize visits missing rows too, so row
// tracks the 1-based sheet row number.
func (s *sheetRows) Next() bool {
	s.row++
	return s.rows.Next()
}

func (s *sheetRows) Columns() ([]string, error) {
	cells, err := s.rows.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		return cells, err
	}
	for i, v := range cells {
		if v != "1" && v != "0" {
			continue
		}
		cellRef, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			return nil, err
		}
		cellType, err := s.f.GetCellType(s.sheet, cellRef)
		if err != nil {
			return nil, err
		}
		if cellType == excelize.CellTypeBool {
			cells[i] = boolCell(v)
		}
	}
	return cells, nil
}

func boolCell(raw string) string {
	if raw == "1" {
		return "TRUE"
	}
	return "FALSE"
}

func (s *sheetRows) Error() error {
	return s.rows.Error()
}

func (s *sheetRows) Close() error {
	return s.rows.Close()
}
