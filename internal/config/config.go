package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Mail     MailConfig     `yaml:"mail"`
	API      APIConfig      `yaml:"api"`
	Rating   RatingConfig   `yaml:"rating"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds token and confirmation code settings.
type AuthConfig struct {
	JWTSecret           string        `yaml:"jwt_secret"            env:"AUTH_JWT_SECRET"            env-required:"true"`
	JWTIssuer           string        `yaml:"jwt_issuer"            env:"AUTH_JWT_ISSUER"            env-default:"yamdb"`
	AccessTokenTTL      time.Duration `yaml:"access_token_ttl"      env:"AUTH_ACCESS_TOKEN_TTL"      env-default:"24h"`
	RefreshTokenTTL     time.Duration `yaml:"refresh_token_ttl"     env:"AUTH_REFRESH_TOKEN_TTL"     env-default:"720h"`
	ConfirmationCodeTTL time.Duration `yaml:"confirmation_code_ttl" env:"AUTH_CONFIRMATION_CODE_TTL" env-default:"72h"`
}

// Mail backends.
const (
	MailBackendSMTP = "smtp"
	MailBackendLog  = "log"
)

// MailConfig holds outgoing mail settings.
type MailConfig struct {
	Backend          string        `yaml:"backend"            env:"MAIL_BACKEND"            env-default:"log"`
	From             string        `yaml:"from"               env:"MAIL_FROM"               env-default:"noreply@yamdb.local"`
	SMTPHost         string        `yaml:"smtp_host"          env:"MAIL_SMTP_HOST"`
	SMTPPort         int           `yaml:"smtp_port"          env:"MAIL_SMTP_PORT"          env-default:"587"`
	SMTPUsername     string        `yaml:"smtp_username"      env:"MAIL_SMTP_USERNAME"`
	SMTPPassword     string        `yaml:"smtp_password"      env:"MAIL_SMTP_PASSWORD"`
	SMTPStartTLS     bool          `yaml:"smtp_starttls"      env:"MAIL_SMTP_STARTTLS"      env-default:"true"`
	Timeout          time.Duration `yaml:"timeout"            env:"MAIL_TIMEOUT"            env-default:"10s"`
	BreakerFailures  uint32        `yaml:"breaker_failures"   env:"MAIL_BREAKER_FAILURES"   env-default:"5"`
	BreakerOpenDelay time.Duration `yaml:"breaker_open_delay" env:"MAIL_BREAKER_OPEN_DELAY" env-default:"30s"`
}

// APIConfig holds REST surface settings.
type APIConfig struct {
	DefaultPageSize   int           `yaml:"default_page_size"    env:"API_DEFAULT_PAGE_SIZE"    env-default:"10"`
	MaxPageSize       int           `yaml:"max_page_size"        env:"API_MAX_PAGE_SIZE"        env-default:"100"`
	RateLimitRequests int           `yaml:"rate_limit_requests"  env:"API_RATE_LIMIT_REQUESTS"  env-default:"300"`
	RateLimitWindow   time.Duration `yaml:"rate_limit_window"    env:"API_RATE_LIMIT_WINDOW"    env-default:"1m"`
	// AuthRateLimitRequests caps the auth endpoints per client within
	// RateLimitWindow. Zero disables the extra limit.
	AuthRateLimitRequests int    `yaml:"auth_rate_limit_requests" env:"API_AUTH_RATE_LIMIT_REQUESTS" env-default:"20"`
	CORSOrigins           string `yaml:"cors_allowed_origins"     env:"API_CORS_ALLOWED_ORIGINS"     env-default:"*"`
	CORSMaxAge            int    `yaml:"cors_max_age"             env:"API_CORS_MAX_AGE"             env-default:"300"`
}

// AllowedOrigins splits the comma-separated CORS origin list.
func (c APIConfig) AllowedOrigins() []string {
	var origins []string
	for o := range strings.SplitSeq(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// RatingConfig controls title rating maintenance.
type RatingConfig struct {
	RecomputeOnDelete bool `yaml:"recompute_on_delete" env:"RATING_RECOMPUTE_ON_DELETE" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
