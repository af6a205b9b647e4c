package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("AUTH_USERNAME", "")
	t.Setenv("AUTH_PASSWORD", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("GOOGLE_SHEET_DATABASE_ID", "")
	t.Setenv("WHATSAPP_TOKEN", "")
	t.Setenv("SEED_SAMPLE_DATA", "")
	t.Setenv("SAMPLE_ATTENDANCE_RATE", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("REPORT_CRON_SCHEDULE", "")

	cfg, err := Load("testdata/missing.env")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "admin", cfg.Auth.Username)
	assert.Equal(t, "buildtrack123", cfg.Auth.Password)
	assert.Equal(t, "buildtrack_auth", cfg.Auth.FlagName)
	assert.True(t, cfg.Site.SeedSampleData)
	assert.InDelta(t, 0.8, cfg.Site.SampleAttendanceRate, 1e-9)
	assert.False(t, cfg.MongoDB.Enabled())
	assert.False(t, cfg.Sheets.Enabled())
	assert.False(t, cfg.WhatsApp.Enabled())
}

func TestLoadRejectsBadSeedFlag(t *testing.T) {
	t.Setenv("SEED_SAMPLE_DATA", "sometimes")

	_, err := Load("testdata/missing.env")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:    ServerConfig{Port: "8080"},
			Auth:      AuthConfig{Username: "admin", Password: "secret", FlagName: "flag"},
			Site:      SiteConfig{Timezone: "UTC", SampleAttendanceRate: 0.8},
			Reporting: ReportingConfig{CronSchedule: "0 20 * * *"},
			WhatsApp:  WhatsAppConfig{BaseURL: "https://graph.facebook.com", APIVersion: "v20.0"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "APP_PORT"},
		{name: "missing password", mutate: func(c *Config) { c.Auth.Password = "" }, wantErr: "AUTH_PASSWORD"},
		{name: "bad timezone", mutate: func(c *Config) { c.Site.Timezone = "Mars/Olympus" }, wantErr: "TIMEZONE"},
		{name: "bad rate", mutate: func(c *Config) { c.Site.SampleAttendanceRate = 1.5 }, wantErr: "SAMPLE_ATTENDANCE_RATE"},
		{name: "sheets without credentials", mutate: func(c *Config) { c.Sheets.SpreadsheetID = "sheet" }, wantErr: "GOOGLE_SHEETS_CREDENTIALS_PATH"},
		{
			name:    "whatsapp without manager",
			mutate:  func(c *Config) { c.WhatsApp.AccessToken = "token"; c.WhatsApp.PhoneNumberID = "123" },
			wantErr: "WHATSAPP_SITE_MANAGER_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
