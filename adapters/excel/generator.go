package excel

import (
	"io"

	"siparis/domain/order"

	"github.com/xuri/excelize/v2"
)

// TemplateSheet is the sheet name used by generated templates.
const TemplateSheet = "Sheet1"

// NewTemplateWorkbook builds a header-only order template from the row
// schema. The caller must Close it.
func NewTemplateWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()

	headers := order.Headers()
	if err := f.SetSheetRow(TemplateSheet, "A1", &headers); err != nil {
		f.Close()
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(TemplateSheet, "A1", last, style); err != nil {
		f.Close()
		return nil, err
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(TemplateSheet, "A", lastCol, 18); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteTemplate encodes a fresh header-only template to w.
func WriteTemplate(w io.Writer) error {
	f, err := NewTemplateWorkbook()
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}
