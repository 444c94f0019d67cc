package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Email providers understood by the mailer factory.
const (
	EmailProviderResend = "resend"
	EmailProviderSMTP   = "smtp"
	EmailProviderLog    = "log"
)

// Config contains process configuration. Keys are flat and match the
// environment variable names lower-cased (PORT -> port).
type Config struct {
	Host        string `koanf:"host"`
	Port        int    `koanf:"port"`
	ServiceName string `koanf:"service_name"`
	AppEnv      string `koanf:"app_env"`
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`

	// DatabaseURL wins over the DB_* parts when both are set.
	DatabaseURL       string        `koanf:"database_url"`
	DBHost            string        `koanf:"db_host"`
	DBPort            int           `koanf:"db_port"`
	DBUser            string        `koanf:"db_user"`
	DBPassword        string        `koanf:"db_password"`
	DBName            string        `koanf:"db_name"`
	DBSSLMode         string        `koanf:"db_sslmode"`
	DBMaxOpenConns    int           `koanf:"db_max_open_conns"`
	DBMaxIdleConns    int           `koanf:"db_max_idle_conns"`
	DBConnMaxLifetime time.Duration `koanf:"db_conn_max_lifetime"`
	DBAutoMigrate     bool          `koanf:"db_auto_migrate"`

	EmailProvider string `koanf:"email_provider"`
	EmailFrom     string `koanf:"email_from"`
	ResendAPIKey  string `koanf:"resend_api_key"`
	SMTPHost      string `koanf:"smtp_host"`
	SMTPPort      int    `koanf:"smtp_port"`
	EmailUser     string `koanf:"email_user"`
	EmailPassword string `koanf:"email_password"`

	// PDFPath is a filesystem path or an s3://bucket/key URL.
	PDFPath     string `koanf:"pdf_path"`
	S3Endpoint  string `koanf:"s3_endpoint"`
	S3AccessKey string `koanf:"s3_access_key"`
	S3SecretKey string `koanf:"s3_secret_key"`
	S3UseSSL    bool   `koanf:"s3_use_ssl"`

	// ExposeErrorDetails controls whether 500 bodies carry the underlying
	// error text. nil means "derive from AppEnv".
	ExposeErrorDetails *bool `koanf:"expose_error_details"`

	CORSAllowedOrigins string `koanf:"cors_allowed_origins"`

	// MetricsToken, when set, is required as a bearer token on /metrics.
	MetricsToken      string `koanf:"metrics_token"`
	MetricsAllowedIPs string `koanf:"metrics_allowed_ips"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Host:              "127.0.0.1",
		Port:              5001,
		ServiceName:       "dnf-api",
		AppEnv:            "dev",
		LogLevel:          "info",
		LogFormat:         "text",
		DatabaseURL:       "",
		DBPort:            5432,
		DBSSLMode:         "disable",
		DBMaxOpenConns:    10,
		DBMaxIdleConns:    10,
		DBConnMaxLifetime: 30 * time.Minute,
		DBAutoMigrate:     true,
		EmailProvider:     EmailProviderResend,
		SMTPHost:          "smtp.gmail.com",
		SMTPPort:          587,
		PDFPath:           "/var/www/dnf-ocupacional/resources/guia-nr1.pdf",
		S3UseSSL:          true,
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsProdLike reports whether AppEnv names a production environment.
func (c *Config) IsProdLike() bool {
	env := strings.ToLower(strings.TrimSpace(c.AppEnv))
	return env == "prod" || env == "production" || env == "release"
}

// ErrorDetailsEnabled resolves ExposeErrorDetails. Without an explicit
// setting details are shown everywhere except prod-like environments.
func (c *Config) ErrorDetailsEnabled() bool {
	if c.ExposeErrorDetails != nil {
		return *c.ExposeErrorDetails
	}
	return !c.IsProdLike()
}

// DSN returns the database connection string. An explicit DatabaseURL is
// used verbatim; otherwise a postgres URL is assembled from the DB_* parts,
// falling back to a local SQLite file.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBHost == "" {
		return "dnf.db"
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:   "/" + c.DBName,
	}
	if c.DBUser != "" {
		if c.DBPassword != "" {
			u.User = url.UserPassword(c.DBUser, c.DBPassword)
		} else {
			u.User = url.User(c.DBUser)
		}
	}
	q := url.Values{}
	if c.DBSSLMode != "" {
		q.Set("sslmode", c.DBSSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// AllowedOrigins splits CORSAllowedOrigins on commas.
func (c *Config) AllowedOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

// MetricsIPs splits MetricsAllowedIPs on commas. Empty means any client.
func (c *Config) MetricsIPs() []string {
	return splitList(c.MetricsAllowedIPs)
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: PORT must be between 1 and 65535", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("%w: SERVICE_NAME must not be empty", ErrInvalidConfig)
	}
	if c.DBMaxOpenConns <= 0 {
		return fmt.Errorf("%w: DB_MAX_OPEN_CONNS must be > 0", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.PDFPath) == "" {
		return fmt.Errorf("%w: PDF_PATH must not be empty", ErrInvalidConfig)
	}

	switch c.EmailProvider {
	case EmailProviderResend:
		if c.ResendAPIKey == "" {
			return fmt.Errorf("%w: RESEND_API_KEY is required for the resend provider", ErrInvalidConfig)
		}
		if c.EmailFrom == "" {
			return fmt.Errorf("%w: EMAIL_FROM is required for the resend provider", ErrInvalidConfig)
		}
	case EmailProviderSMTP:
		if c.SMTPHost == "" || c.EmailUser == "" || c.EmailPassword == "" {
			return fmt.Errorf("%w: SMTP_HOST, EMAIL_USER and EMAIL_PASSWORD are required for the smtp provider", ErrInvalidConfig)
		}
		if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
			return fmt.Errorf("%w: SMTP_PORT must be between 1 and 65535", ErrInvalidConfig)
		}
	case EmailProviderLog:
		if c.IsProdLike() {
			return fmt.Errorf("%w: EMAIL_PROVIDER=log is not allowed in %s", ErrInvalidConfig, c.AppEnv)
		}
	default:
		return fmt.Errorf("%w: unknown EMAIL_PROVIDER %q", ErrInvalidConfig, c.EmailProvider)
	}

	if strings.HasPrefix(c.PDFPath, "s3://") && c.S3Endpoint == "" {
		return fmt.Errorf("%w: S3_ENDPOINT is required when PDF_PATH is an s3:// URL", ErrInvalidConfig)
	}
	return nil
}
