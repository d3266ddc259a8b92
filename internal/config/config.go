package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"siparis/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Excel    ExcelConfig
	Database DatabaseConfig
	Mail     MailConfig
	LogLevel string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration

	// CORSOrigin is the browser origin allowed to call the API
	CORSOrigin string
}

// ExcelConfig holds template and upload settings
type ExcelConfig struct {
	TemplateDir     string
	DefaultTemplate string
	ExportFilename  string
	MaxUploadBytes  int64
	MaxConcurrent   int

	// Aliases maps extra template ids onto template names
	Aliases map[string]string
}

// DatabaseConfig holds database connection settings. An empty URL disables
// the order endpoints.
type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
}

// Enabled reports whether a database was configured
func (d DatabaseConfig) Enabled() bool {
	return d.URL != ""
}

// MailConfig holds confirmation mail settings
type MailConfig struct {
	From    string
	Subject string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:   *loadServerConfig(),
		Excel:    *loadExcelConfig(),
		Database: *loadDatabaseConfig(),
		Mail:     *loadMailConfig(),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSOrigin:      getEnvOrDefault("CORS_ORIGIN", "http://localhost:5173"),
	}
}

func loadExcelConfig() *ExcelConfig {
	return &ExcelConfig{
		TemplateDir:     getEnvOrDefault("TEMPLATE_DIR", "./files"),
		DefaultTemplate: getEnvOrDefault("DEFAULT_TEMPLATE", "siparis_template"),
		ExportFilename:  getEnvOrDefault("EXPORT_FILENAME", "siparis_template.xlsx"),
		MaxUploadBytes:  int64(getEnvIntOrDefault("MAX_UPLOAD_BYTES", 10<<20)),
		MaxConcurrent:   getEnvIntOrDefault("MAX_CONCURRENT_WORKBOOKS", 4),
		Aliases:         parseAliases(os.Getenv("TEMPLATE_ALIASES")),
	}
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URL:          os.Getenv("DATABASE_URL"),
		MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 10),
	}
}

func loadMailConfig() *MailConfig {
	return &MailConfig{
		From:    getEnvOrDefault("MAIL_FROM", `"Polgen Order Confirmation" <orders@localhost>`),
		Subject: getEnvOrDefault("MAIL_SUBJECT", "Order Confirmation"),
	}
}

func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("PORT must be numeric")
	}
	if config.Excel.TemplateDir == "" {
		return errors.ConfigInvalid("TEMPLATE_DIR is required")
	}
	if config.Excel.DefaultTemplate == "" {
		return errors.ConfigInvalid("DEFAULT_TEMPLATE is required")
	}
	if !strings.HasSuffix(strings.ToLower(config.Excel.ExportFilename), ".xlsx") {
		return errors.ConfigInvalid("EXPORT_FILENAME must end in .xlsx")
	}
	if config.Excel.MaxUploadBytes <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_BYTES must be positive")
	}
	if config.Excel.MaxConcurrent <= 0 {
		return errors.ConfigInvalid("MAX_CONCURRENT_WORKBOOKS must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// parseAliases reads "id=name,id2=name2". Malformed pairs are skipped.
func parseAliases(value string) map[string]string {
	aliases := make(map[string]string)
	for _, pair := range strings.Split(value, ",") {
		id, name, ok := strings.Cut(pair, "=")
		id, name = strings.TrimSpace(id), strings.TrimSpace(name)
		if !ok || id == "" || name == "" {
			continue
		}
		aliases[id] = name
	}
	return aliases
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
