// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetTrustedProxies() []string
}

// RateLimitConfig provides settings for the submission rate limiter.
type RateLimitConfig interface {
	GetSubmitRatePerMinute() float64
	GetSubmitRateBurst() int
}

// SheetsConfig provides the spreadsheet target and service account credentials.
type SheetsConfig interface {
	GetGoogleCredentialsJSON() string
	GetSpreadsheetID() string
	GetSheetName() string
	GetSheetsVerifyOnStart() bool
}

// MailConfig provides settings for operator notification emails.
type MailConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetSMTPFromAddress() string
	GetSMTPFromName() string
	GetLeadNotifyTo() []string
	IsMailEnabled() bool
}

// QueueConfig provides settings for the asynq task queue.
type QueueConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                   string
	HTTPAddr              string
	CORSAllowAll          bool
	CORSOrigins           []string
	TrustedProxies        []string
	SubmitRatePerMinute   float64
	SubmitRateBurst       int
	GoogleCredentialsJSON string
	SpreadsheetID         string
	SheetName             string
	SheetsVerifyOnStart   bool
	SMTPHost              string
	SMTPPort              int
	SMTPUsername          string
	SMTPPassword          string
	SMTPFromAddress       string
	SMTPFromName          string
	LeadNotifyTo          []string
	RedisURL              string
	RedisTLSInsecure      bool
	AsynqQueueName        string
	AsynqConcurrency      int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string         { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool       { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string    { return c.CORSOrigins }
func (c *Config) GetTrustedProxies() []string { return c.TrustedProxies }

// RateLimitConfig implementation
func (c *Config) GetSubmitRatePerMinute() float64 { return c.SubmitRatePerMinute }
func (c *Config) GetSubmitRateBurst() int         { return c.SubmitRateBurst }

// SheetsConfig implementation
func (c *Config) GetGoogleCredentialsJSON() string { return c.GoogleCredentialsJSON }
func (c *Config) GetSpreadsheetID() string         { return c.SpreadsheetID }
func (c *Config) GetSheetName() string             { return c.SheetName }
func (c *Config) GetSheetsVerifyOnStart() bool     { return c.SheetsVerifyOnStart }

// MailConfig implementation
func (c *Config) GetSMTPHost() string        { return c.SMTPHost }
func (c *Config) GetSMTPPort() int           { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string    { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string    { return c.SMTPPassword }
func (c *Config) GetSMTPFromAddress() string { return c.SMTPFromAddress }
func (c *Config) GetSMTPFromName() string    { return c.SMTPFromName }
func (c *Config) GetLeadNotifyTo() []string  { return c.LeadNotifyTo }
func (c *Config) IsMailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFromAddress != "" && len(c.LeadNotifyTo) > 0
}

// QueueConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// Load reads configuration from environment variables, after loading a
// .env file when one is present.
//
// Missing spreadsheet settings are not an error here: the submission endpoint
// reports them per request so the landing page keeps serving.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (*Config, error) {
	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", ""))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                   getEnv("APP_ENV", "development"),
		HTTPAddr:              getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:          corsAllowAll,
		CORSOrigins:           corsOrigins,
		TrustedProxies:        splitCSV(getEnv("TRUSTED_PROXIES", "")),
		SubmitRatePerMinute:   mustFloat(getEnv("SUBMIT_RATE_PER_MINUTE", "10")),
		SubmitRateBurst:       mustInt(getEnv("SUBMIT_RATE_BURST", "5")),
		GoogleCredentialsJSON: getEnv("GOOGLE_CREDENTIALS_JSON", ""),
		SpreadsheetID:         strings.TrimSpace(getEnv("SPREADSHEET_ID", "")),
		SheetName:             getEnv("SHEET_NAME", "Sheet1"),
		SheetsVerifyOnStart:   strings.EqualFold(getEnv("SHEETS_VERIFY_ON_START", "false"), "true"),
		SMTPHost:              getEnv("SMTP_HOST", ""),
		SMTPPort:              mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:          getEnv("SMTP_USERNAME", ""),
		SMTPPassword:          getEnv("SMTP_PASSWORD", ""),
		SMTPFromAddress:       getEnv("SMTP_FROM_ADDRESS", ""),
		SMTPFromName:          getEnv("SMTP_FROM_NAME", "상세페이지 진단"),
		LeadNotifyTo:          splitCSV(getEnv("LEAD_NOTIFY_TO", "")),
		RedisURL:              getEnv("REDIS_URL", ""),
		RedisTLSInsecure:      strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:        getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:      mustInt(getEnv("ASYNQ_CONCURRENCY", "5")),
	}

	if cfg.SheetName == "" {
		cfg.SheetName = "Sheet1"
	}
	if cfg.SubmitRatePerMinute <= 0 {
		return nil, fmt.Errorf("SUBMIT_RATE_PER_MINUTE must be positive")
	}
	if cfg.SubmitRateBurst < 1 {
		return nil, fmt.Errorf("SUBMIT_RATE_BURST must be at least 1")
	}
	if cfg.SMTPHost != "" && cfg.SMTPPort <= 0 {
		return nil, fmt.Errorf("SMTP_PORT must be a positive integer when SMTP_HOST is set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
