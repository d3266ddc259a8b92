package excel

import (
	"io"
	"time"

	"siparis/domain/core"
	"siparis/domain/order"
	"siparis/internal"
	"siparis/ports"
)

// WorkbookImporter maps the first sheet of an uploaded workbook onto order
// records. It holds no per-call state and is safe for concurrent use.
type WorkbookImporter struct {
	logger *internal.Logger
}

var _ ports.WorkbookImporter = (*WorkbookImporter)(nil)

// NewWorkbookImporter creates an importer
func NewWorkbookImporter() *WorkbookImporter {
	return &WorkbookImporter{
		logger: internal.DefaultLogger.WithComponent("WorkbookImporter"),
	}
}

// Import parses r, skips the header row and maps every other row through
// order.Columns. Row level anomalies fall back to column defaults; only an
// unparsable workbook or a missing sheet fails the import, and then no
// records are returned.
func (i *WorkbookImporter) Import(r io.Reader) ([]order.OrderLineRecord, error) {
	start := time.Now()

	f, err := openWorkbook(r)
	if err != nil {
		return nil, core.NewUnreadableWorkbookError("open workbook", err)
	}
	defer f.Close()

	sheet := firstSheet(f)
	if sheet == "" {
		return nil, core.NewWorksheetMissingError("uploaded workbook", nil)
	}

	rows, err := openRows(f, sheet)
	if err != nil {
		return nil, core.NewUnreadableWorkbookError("open sheet "+sheet, err)
	}
	defer rows.Close()

	records, err := order.MapRows(rows)
	if err != nil {
		return nil, core.NewUnreadableWorkbookError("read sheet "+sheet, err)
	}

	i.logger.Info("imported %d records from sheet %q in %.2fms",
		len(records), sheet, float64(time.Since(start).Nanoseconds())/1e6)
	return records, nil
}
