package app

import (
	"context"
	"io"
	"time"

	"siparis/domain/order"
	"siparis/internal"
	"siparis/ports"
)

// Limiter runs fn under a concurrency bound
type Limiter interface {
	Do(ctx context.Context, fn func() error) error
}

// WorkbookService runs exports and imports under the workbook limiter
type WorkbookService struct {
	exporter ports.TemplateExporter
	importer ports.WorkbookImporter
	limiter  Limiter
	logger   *internal.Logger
}

// ImportResult is an imported record list with its summary
type ImportResult struct {
	Products []order.OrderLineRecord `json:"products"`
	Summary  order.Summary           `json:"summary"`
}

// NewWorkbookService creates a workbook service
func NewWorkbookService(exporter ports.TemplateExporter, importer ports.WorkbookImporter, limiter Limiter, logger *internal.Logger) *WorkbookService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &WorkbookService{
		exporter: exporter,
		importer: importer,
		limiter:  limiter,
		logger:   logger.WithComponent("WorkbookService"),
	}
}

// Export fills the template with raw row values
func (s *WorkbookService) Export(ctx context.Context, req order.TemplateRequest) (*ports.Document, error) {
	var doc *ports.Document
	err := s.limiter.Do(ctx, func() error {
		var err error
		doc, err = s.exporter.Export(req)
		return err
	})
	if err != nil {
		s.logger.Warn("export of template %q failed: %v", req.TemplateID, err)
		return nil, err
	}
	return doc, nil
}

// ExportRecords converts records to template rows and exports them
func (s *WorkbookService) ExportRecords(ctx context.Context, templateID string, records []order.OrderLineRecord) (*ports.Document, error) {
	return s.Export(ctx, order.RecordsRequest(templateID, records))
}

// Import decodes an uploaded workbook and summarizes it
func (s *WorkbookService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	start := time.Now()

	var records []order.OrderLineRecord
	err := s.limiter.Do(ctx, func() error {
		var err error
		records, err = s.importer.Import(r)
		return err
	})
	if err != nil {
		s.logger.Warn("import failed: %v", err)
		return nil, err
	}

	s.logger.Info("imported %d records in %v", len(records), time.Since(start))
	return &ImportResult{
		Products: records,
		Summary:  order.Summarize(records),
	}, nil
}
