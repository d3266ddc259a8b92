package excel

import (
	"siparis/ports"
)

// ExcelConfig holds configuration for template export and workbook import
type ExcelConfig struct {
	TemplateDir     string            `json:"template_dir"`
	DefaultTemplate string            `json:"default_template"`
	ExportFilename  string            `json:"export_filename"`
	ContentType     string            `json:"content_type"`
	Aliases         map[string]string `json:"aliases"`
}

// DefaultExcelConfig returns the settings the order template ships with
func DefaultExcelConfig() ExcelConfig {
	return ExcelConfig{
		TemplateDir:     "./files",
		DefaultTemplate: "siparis_template",
		ExportFilename:  "siparis_template.xlsx",
		ContentType:     ports.XLSXContentType,
	}
}
