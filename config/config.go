package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"toy-sales-report/models"
)

// Catalog sources.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	CatalogSource string
	CatalogPath   string

	ReportPath   string
	ReportFormat string
	DateLayout   string

	LogLevel   string
	MaxRetries int

	PDFTimeout time.Duration
	ChromeBin  string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load builds the configuration. Priority, highest first: environment
// variables (a .env file is loaded into the environment first), report.yaml
// in the working directory, built-in defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("report")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read report.yaml: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{
		CatalogSource: strings.ToLower(v.GetString("catalog_source")),
		CatalogPath:   v.GetString("catalog_path"),

		ReportPath:   v.GetString("report_path"),
		ReportFormat: strings.ToLower(v.GetString("report_format")),
		DateLayout:   v.GetString("date_layout"),

		LogLevel:   v.GetString("log_level"),
		MaxRetries: v.GetInt("max_retries"),

		PDFTimeout: time.Duration(v.GetInt("pdf_timeout_seconds")) * time.Second,
		ChromeBin:  v.GetString("chrome_bin"),

		PostgresHost:     v.GetString("postgres_host"),
		PostgresPort:     v.GetString("postgres_port"),
		PostgresUser:     v.GetString("postgres_user"),
		PostgresPassword: v.GetString("postgres_password"),
		PostgresDB:       v.GetString("postgres_db"),
		PostgresSSLMode:  v.GetString("postgres_sslmode"),
	}

	if cfg.ReportPath == "" {
		cfg.ReportPath = "report." + cfg.ReportFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog_source", SourceFile)
	v.SetDefault("catalog_path", "./data/products.json")
	v.SetDefault("report_path", "")
	v.SetDefault("report_format", "txt")
	v.SetDefault("date_layout", "January 2, 2006")
	v.SetDefault("log_level", "info")
	v.SetDefault("max_retries", 3)
	v.SetDefault("pdf_timeout_seconds", 30)
	v.SetDefault("chrome_bin", "")
	v.SetDefault("postgres_host", "localhost")
	v.SetDefault("postgres_port", "5432")
	v.SetDefault("postgres_user", "toys")
	v.SetDefault("postgres_password", "toys")
	v.SetDefault("postgres_db", "toys")
	v.SetDefault("postgres_sslmode", "disable")
}

// Validate rejects unknown source and format names.
func (c *Config) Validate() error {
	switch c.CatalogSource {
	case SourceFile, SourcePostgres:
	default:
		return fmt.Errorf("config: catalog source %w %q", models.ErrUnknownFormat, c.CatalogSource)
	}

	switch c.ReportFormat {
	case "txt", "csv", "pdf":
	default:
		return fmt.Errorf("config: report format %w %q", models.ErrUnknownFormat, c.ReportFormat)
	}

	if c.CatalogSource == SourceFile && c.CatalogPath == "" {
		return fmt.Errorf("config: CATALOG_PATH is required for the file source")
	}
	return nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}
