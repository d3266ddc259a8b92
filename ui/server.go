package ui

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"siparis/app"
	"siparis/domain/core"
	"siparis/domain/order"
	"siparis/internal"
	"siparis/ports"

	"github.com/gin-gonic/gin"
)

// WorkbookAPI is what the excel routes need from the workbook service
type WorkbookAPI interface {
	Export(ctx context.Context, req order.TemplateRequest) (*ports.Document, error)
	ExportRecords(ctx context.Context, templateID string, records []order.OrderLineRecord) (*ports.Document, error)
	Import(ctx context.Context, r io.Reader) (*app.ImportResult, error)
}

// OrderAPI is what the product routes need from the order service
type OrderAPI interface {
	Submit(ctx context.Context, principal order.Principal, items []order.LineItem) (*app.SubmitResult, error)
	List(ctx context.Context, principal order.Principal) ([]*order.Order, error)
	Get(ctx context.Context, principal order.Principal, id core.OrderID) (*order.Order, error)
	Update(ctx context.Context, principal order.Principal, id core.OrderID, upd order.Update) (*order.Order, error)
	Delete(ctx context.Context, principal order.Principal, id core.OrderID) error
}

// Options tunes the HTTP surface
type Options struct {
	DefaultTemplate string
	MaxUploadBytes  int64
	CORSOrigin      string
}

// Server represents the HTTP server for the order spreadsheet API
type Server struct {
	router    *gin.Engine
	workbooks WorkbookAPI
	orders    OrderAPI
	options   Options
	logger    *internal.Logger
}

// NewServer creates the server and registers every route. orders may be nil,
// in which case the product routes are not mounted.
func NewServer(workbooks WorkbookAPI, orders OrderAPI, options Options, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	if options.MaxUploadBytes <= 0 {
		options.MaxUploadBytes = 10 << 20
	}

	s := &Server{
		router:    gin.New(),
		workbooks: workbooks,
		orders:    orders,
		options:   options,
		logger:    logger.WithComponent("Server"),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")

	excelGroup := api.Group("/excel")
	excelGroup.POST("/exportwb", s.handleExportWorkbook)
	excelGroup.POST("/export-records", s.handleExportRecords)
	excelGroup.POST("/import", s.handleImport)

	if s.orders == nil {
		s.logger.Warn("order storage not configured, /api/products is disabled")
		return
	}

	products := api.Group("/products", requireIdentity())
	products.POST("", s.handleSubmitProducts)
	products.GET("", s.handleListProducts)
	products.GET("/:id", s.handleGetProduct)
	products.PUT("/:id", s.handleUpdateProduct)
	products.DELETE("/:id", s.handleDeleteProduct)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"orders": s.orders != nil,
	})
}
