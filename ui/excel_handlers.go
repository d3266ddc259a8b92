package ui

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"siparis/app"
	"siparis/domain/order"
	apperrors "siparis/internal/errors"
	"siparis/ports"

	"github.com/gin-gonic/gin"
)

// exportRequest is the /exportwb body. Rows must be present and an array.
type exportRequest struct {
	TemplateID string  `json:"templateid" binding:"required"`
	Rows       [][]any `json:"rows" binding:"required"`
}

// exportRecordsRequest is the /export-records body
type exportRecordsRequest struct {
	TemplateID string                  `json:"templateid"`
	Products   []order.OrderLineRecord `json:"products" binding:"required"`
}

func (s *Server) handleExportWorkbook(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest("templateid and rows are required", err))
		return
	}

	doc, err := s.workbooks.Export(c.Request.Context(), order.TemplateRequest{
		TemplateID: req.TemplateID,
		Rows:       req.Rows,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	sendDocument(c, doc)
}

func (s *Server) handleExportRecords(c *gin.Context) {
	var req exportRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.BadRequest("products are required", err))
		return
	}
	if req.TemplateID == "" {
		req.TemplateID = s.options.DefaultTemplate
	}

	doc, err := s.workbooks.ExportRecords(c.Request.Context(), req.TemplateID, req.Products)
	if err != nil {
		respondError(c, err)
		return
	}
	sendDocument(c, doc)
}

func (s *Server) handleImport(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.options.MaxUploadBytes)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":   http.StatusText(http.StatusRequestEntityTooLarge),
				"message": fmt.Sprintf("Upload exceeds %d bytes", tooLarge.Limit),
				"code":    apperrors.CodeInvalidInput,
			})
			return
		}
		respondError(c, apperrors.BadRequest("No file uploaded", err))
		return
	}

	result, err := s.importUpload(c, header)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// importUpload owns the uploaded file for the duration of the import
func (s *Server) importUpload(c *gin.Context, header *multipart.FileHeader) (*app.ImportResult, error) {
	file, err := header.Open()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open upload")
	}
	defer file.Close()

	s.logger.Debug("importing %q (%d bytes)", header.Filename, header.Size)
	return s.workbooks.Import(c.Request.Context(), file)
}

func sendDocument(c *gin.Context, doc *ports.Document) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Header("Content-Length", strconv.FormatInt(doc.Size(), 10))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
