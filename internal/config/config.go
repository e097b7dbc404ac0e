// Package config holds the immutable runtime configuration. It is read from
// the process environment exactly once, in main, and passed by reference into
// every component; nothing else in the application touches the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvProduction disables outbound notification entirely: the production
// deployment has no outbound network path to the mail relay.
const EnvProduction = "production"

// fallbackSessionSecret mirrors the original deployment's hardcoded secret.
// Any real deployment must set SESSION_SECRET.
const fallbackSessionSecret = "supersecretkey"

// Mail carries the SMTP relay settings for admin notification.
type Mail struct {
	Host      string
	Port      int
	UseTLS    bool
	Username  string
	Password  string
	Sender    string
	AdminAddr string
}

// Telegram carries the optional Telegram notification channel settings.
// Both fields empty means the channel is disabled.
type Telegram struct {
	BotToken string
	ChatID   int64
}

// Config is the full application configuration.
type Config struct {
	AppEnv     string
	ListenAddr string

	DatabaseURL string

	UserName      string
	UserPassword  string
	AdminName     string
	AdminPassword string

	SessionSecret string

	Mail     Mail
	Telegram Telegram
}

// Load reads the configuration from the environment. Missing required
// values are reported as an error so the process fails at startup rather
// than at first use.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:     getenvDefault("APP_ENV", "development"),
		ListenAddr: getenvDefault("LISTEN_ADDR", ":8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		UserName:      os.Getenv("USER_NAME"),
		UserPassword:  os.Getenv("USER_PASSWORD"),
		AdminName:     os.Getenv("ADMIN_NAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SessionSecret: getenvDefault("SESSION_SECRET", fallbackSessionSecret),

		Mail: Mail{
			Host:      getenvDefault("MAIL_HOST", "smtp.gmail.com"),
			Username:  os.Getenv("MAIL_USERNAME"),
			Password:  os.Getenv("MAIL_PASSWORD"),
			Sender:    os.Getenv("MAIL_SENDER"),
			AdminAddr: os.Getenv("EMAIL_ADMIN"),
		},
	}

	port, err := parseIntDefault("MAIL_PORT", 587)
	if err != nil {
		return nil, err
	}
	cfg.Mail.Port = port

	useTLS, err := parseBoolDefault("MAIL_TLS", true)
	if err != nil {
		return nil, err
	}
	cfg.Mail.UseTLS = useTLS

	cfg.Telegram.BotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: invalid TELEGRAM_CHAT_ID %q: %w", raw, err)
		}
		cfg.Telegram.ChatID = chatID
	}

	for _, req := range []struct {
		key, val string
	}{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"USER_NAME", cfg.UserName},
		{"USER_PASSWORD", cfg.UserPassword},
		{"ADMIN_NAME", cfg.AdminName},
		{"ADMIN_PASSWORD", cfg.AdminPassword},
	} {
		if req.val == "" {
			return nil, fmt.Errorf("config: required environment variable %s is not set", req.key)
		}
	}

	return cfg, nil
}

// Production reports whether the portal runs in the production deployment.
func (c *Config) Production() bool {
	return c.AppEnv == EnvProduction
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIntDefault(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func parseBoolDefault(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
