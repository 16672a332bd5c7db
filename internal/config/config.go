package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	Port        string
	SiteOrigin  string // production origin of the rendered site; absolute URLs on this origin are rewritten site-relative
	ContentPath string

	// Navigation menu selection
	NavPrimarySlug string
	NavBrandToken  string
	NavMainSlug    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Email (RESEND_API_KEY optional in development, required in production)
	EmailFrom        string
	ContactEmail     string
	ResendAPIKey     string
	ResendAudienceID string

	// Observability (optional)
	SentryDSN      string
	MetricsEnabled bool

	// Export document storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	// Leave S3_BUCKET unset to read the export from ContentPath on disk.
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services
	S3Timeout   time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Guardian Re"),
		AppEnv:      envString("APP_ENV", "development"),
		Port:        envString("PORT", "8090"),
		SiteOrigin:  envString("SITE_ORIGIN", "https://www.guardianre.com"),
		ContentPath: envString("CONTENT_PATH", "content"),

		// Navigation
		NavPrimarySlug: envString("NAV_PRIMARY_SLUG", "primary-navigation"),
		NavBrandToken:  envString("NAV_BRAND_TOKEN", "guardian"),
		NavMainSlug:    envString("NAV_MAIN_SLUG", "main-menu"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/guardianre.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Email
		EmailFrom:        envString("EMAIL_FROM", "noreply@guardianre.com"),
		ContactEmail:     envString("CONTACT_EMAIL", "info@guardianre.com"),
		ResendAPIKey:     envString("RESEND_API_KEY", ""),
		ResendAudienceID: envString("RESEND_AUDIENCE_ID", ""),

		// Observability
		SentryDSN:      envString("SENTRY_DSN", ""),
		MetricsEnabled: envBool("METRICS_ENABLED", true),

		// Export document storage
		S3Region:    envString("S3_REGION", ""),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers
		S3Timeout:   envDuration("S3_TIMEOUT", 10*time.Second),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for production deployments.
// Development allows some services (like email) to use fallback modes for easier local testing.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and sensitive data are excluded.
// Safe to expose in ctx and client-facing contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:     c.AppName,
		AppEnv:      c.AppEnv,
		Port:        c.Port,
		SiteOrigin:  c.SiteOrigin,
		ContentPath: c.ContentPath,

		NavPrimarySlug: c.NavPrimarySlug,
		NavBrandToken:  c.NavBrandToken,
		NavMainSlug:    c.NavMainSlug,

		EmailFrom:    c.EmailFrom,
		ContactEmail: c.ContactEmail,
	}
}
