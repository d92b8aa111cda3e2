package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth.refresh_token_ttl must be > 0 (got %v)", c.Auth.RefreshTokenTTL)
	}
	if c.Auth.ConfirmationCodeTTL <= 0 {
		return fmt.Errorf("auth.confirmation_code_ttl must be > 0 (got %v)", c.Auth.ConfirmationCodeTTL)
	}

	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}
	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (m *MailConfig) validate() error {
	switch m.Backend {
	case MailBackendLog:
	case MailBackendSMTP:
		if m.SMTPHost == "" {
			return fmt.Errorf("smtp_host is required for the smtp backend")
		}
		if m.SMTPPort <= 0 || m.SMTPPort > 65535 {
			return fmt.Errorf("smtp_port out of range (got %d)", m.SMTPPort)
		}
	default:
		return fmt.Errorf("backend must be %q or %q (got %q)", MailBackendSMTP, MailBackendLog, m.Backend)
	}
	if m.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", m.Timeout)
	}
	if !strings.Contains(m.From, "@") {
		return fmt.Errorf("from must be an email address (got %q)", m.From)
	}
	return nil
}

func (a *APIConfig) validate() error {
	if a.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", a.DefaultPageSize)
	}
	if a.MaxPageSize < a.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", a.MaxPageSize, a.DefaultPageSize)
	}
	if a.RateLimitRequests < 0 {
		return fmt.Errorf("rate_limit_requests must be >= 0 (got %d)", a.RateLimitRequests)
	}
	if a.AuthRateLimitRequests < 0 {
		return fmt.Errorf("auth_rate_limit_requests must be >= 0 (got %d)", a.AuthRateLimitRequests)
	}
	if (a.RateLimitRequests > 0 || a.AuthRateLimitRequests > 0) && a.RateLimitWindow <= 0 {
		return fmt.Errorf("rate_limit_window must be > 0 when rate limiting is enabled")
	}
	return nil
}
