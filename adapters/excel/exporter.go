package excel

import (
	"bytes"
	"fmt"
	"time"

	"siparis/domain/core"
	"siparis/domain/order"
	"siparis/internal"
	"siparis/ports"

	"github.com/xuri/excelize/v2"
)

// headerRows is the number of template rows that are never written to.
const headerRows = 1

// TemplateExporter fills a template's first sheet with row values and
// serializes the result. It holds no per-call state and is safe for
// concurrent use.
type TemplateExporter struct {
	store  *TemplateStore
	config ExcelConfig
	logger *internal.Logger
}

var _ ports.TemplateExporter = (*TemplateExporter)(nil)

// NewTemplateExporter creates an exporter reading templates from store
func NewTemplateExporter(store *TemplateStore, config ExcelConfig) *TemplateExporter {
	if config.ContentType == "" {
		config.ContentType = ports.XLSXContentType
	}
	return &TemplateExporter{
		store:  store,
		config: config,
		logger: internal.DefaultLogger.WithComponent("TemplateExporter"),
	}
}

// Export loads a private copy of the template, writes row i of req.Rows into
// worksheet row i+2 starting at column A, and returns the encoded workbook.
// The document is only returned once fully encoded.
func (e *TemplateExporter) Export(req order.TemplateRequest) (*ports.Document, error) {
	start := time.Now()

	data, err := e.store.Load(req.TemplateID)
	if err != nil {
		e.logger.Warn("template %q unavailable: %v", req.TemplateID, err)
		return nil, err
	}

	f, err := openWorkbook(bytes.NewReader(data))
	if err != nil {
		return nil, core.NewWorksheetMissingError(fmt.Sprintf("template %q", req.TemplateID), err)
	}
	defer f.Close()

	sheet := firstSheet(f)
	if sheet == "" {
		return nil, core.NewWorksheetMissingError(fmt.Sprintf("template %q", req.TemplateID), nil)
	}

	for i, row := range req.Rows {
		if len(row) == 0 {
			continue
		}
		rowNum := i + 1 + headerRows
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, core.NewSerializationError(req.TemplateID, fmt.Sprintf("address row %d", rowNum), err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, core.NewSerializationError(req.TemplateID, fmt.Sprintf("write row %d", rowNum), err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, core.NewSerializationError(req.TemplateID, "encode workbook", err)
	}

	e.logger.Info("exported %d rows with template %q (%d bytes) in %.2fms",
		len(req.Rows), req.TemplateID, buf.Len(), float64(time.Since(start).Nanoseconds())/1e6)

	return &ports.Document{
		Filename:    e.config.ExportFilename,
		ContentType: e.config.ContentType,
		Data:        buf.Bytes(),
	}, nil
}
