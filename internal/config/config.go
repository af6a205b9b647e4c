package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Site      SiteConfig
	Reporting ReportingConfig
	Log       LogConfig
	MongoDB   MongoDBConfig
	Sheets    SheetsConfig
	WhatsApp  WhatsAppConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// AuthConfig holds the fixed dashboard credentials and the name of the
// client-side flag that marks a browser as logged in.
type AuthConfig struct {
	Username string
	Password string
	FlagName string
}

// SiteConfig controls how the in-memory ledger is initialised.
type SiteConfig struct {
	Timezone             string
	SeedSampleData       bool
	SampleAttendanceRate float64
}

// ReportingConfig holds scheduler-related settings.
type ReportingConfig struct {
	CronSchedule string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// MongoDBConfig holds settings for the daily report archive. Empty URI disables it.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// SheetsConfig contains configuration required to mirror usage rows into Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// WhatsAppConfig contains credentials for site manager notifications.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	BaseURL       string
	APIVersion    string
	SiteManagerID string
}

// Enabled reports whether the archive should be wired.
func (c MongoDBConfig) Enabled() bool { return c.URI != "" }

// Enabled reports whether usage rows should be mirrored.
func (c SheetsConfig) Enabled() bool { return c.SpreadsheetID != "" }

// Enabled reports whether notifications should be sent.
func (c WhatsAppConfig) Enabled() bool { return c.AccessToken != "" }

// Location resolves the configured site timezone.
func (c SiteConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment.
		_ = godotenv.Load()
	}

	seed, err := strconv.ParseBool(getenvWithDefault("SEED_SAMPLE_DATA", "true"))
	if err != nil {
		return nil, fmt.Errorf("SEED_SAMPLE_DATA: %w", err)
	}

	rate, err := strconv.ParseFloat(getenvWithDefault("SAMPLE_ATTENDANCE_RATE", "0.8"), 64)
	if err != nil {
		return nil, fmt.Errorf("SAMPLE_ATTENDANCE_RATE: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Auth: AuthConfig{
			Username: getenvWithDefault("AUTH_USERNAME", "admin"),
			Password: getenvWithDefault("AUTH_PASSWORD", "buildtrack123"),
			FlagName: getenvWithDefault("AUTH_FLAG_NAME", "buildtrack_auth"),
		},
		Site: SiteConfig{
			Timezone:             getenvWithDefault("TIMEZONE", "UTC"),
			SeedSampleData:       seed,
			SampleAttendanceRate: rate,
		},
		Reporting: ReportingConfig{
			CronSchedule: getenvWithDefault("REPORT_CRON_SCHEDULE", "0 20 * * *"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "buildtrack"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_DATABASE_ID"),
		},
		WhatsApp: WhatsAppConfig{
			AccessToken:   os.Getenv("WHATSAPP_TOKEN"),
			PhoneNumberID: os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
			BaseURL:       getenvWithDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com"),
			APIVersion:    getenvWithDefault("WHATSAPP_API_VERSION", "v20.0"),
			SiteManagerID: os.Getenv("WHATSAPP_SITE_MANAGER_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.Auth.Username == "":
		return errors.New("AUTH_USERNAME must not be empty")
	case c.Auth.Password == "":
		return errors.New("AUTH_PASSWORD must not be empty")
	case c.Auth.FlagName == "":
		return errors.New("AUTH_FLAG_NAME must not be empty")
	}

	if _, err := c.Site.Location(); err != nil {
		return fmt.Errorf("TIMEZONE is invalid: %w", err)
	}

	if c.Site.SampleAttendanceRate < 0 || c.Site.SampleAttendanceRate > 1 {
		return errors.New("SAMPLE_ATTENDANCE_RATE must be between 0 and 1")
	}

	if c.Reporting.CronSchedule == "" {
		return errors.New("REPORT_CRON_SCHEDULE must be provided")
	}

	if c.MongoDB.Enabled() && c.MongoDB.DBName == "" {
		return errors.New("MONGODB_DB_NAME must not be empty when MONGODB_URI is set")
	}

	if c.Sheets.Enabled() && c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
	}

	if c.WhatsApp.Enabled() {
		switch {
		case c.WhatsApp.PhoneNumberID == "":
			return errors.New("WHATSAPP_PHONE_NUMBER_ID must be provided")
		case c.WhatsApp.SiteManagerID == "":
			return errors.New("WHATSAPP_SITE_MANAGER_ID must be provided")
		case c.WhatsApp.BaseURL == "":
			return errors.New("WHATSAPP_BASE_URL must not be empty")
		case c.WhatsApp.APIVersion == "":
			return errors.New("WHATSAPP_API_VERSION must not be empty")
		}
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
