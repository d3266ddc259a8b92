package ports

import (
	"io"

	"siparis/domain/order"
)

// XLSXContentType is the media type of every exported document.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Document is a fully serialized workbook ready for download.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size returns the encoded length in bytes.
func (d *Document) Size() int64 {
	return int64(len(d.Data))
}

// TemplateExporter materializes a template with caller-supplied rows.
type TemplateExporter interface {
	// Export writes req.Rows under the template header and returns the
	// encoded workbook. On error no document is returned.
	Export(req order.TemplateRequest) (*Document, error)
}

// WorkbookImporter maps an uploaded workbook onto order records.
type WorkbookImporter interface {
	// Import parses r and returns one record per data row, in order.
	Import(r io.Reader) ([]order.OrderLineRecord, error)
}
