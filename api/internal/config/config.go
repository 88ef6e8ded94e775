// Package config — настройки бота из переменных окружения (.env подхватывается в main).
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"riseup-bot/api/internal/store"
)

const (
	ProviderRemote = "remote"
	ProviderGemini = "gemini"
)

type Config struct {
	Port             string
	TelegramBotToken string
	WebhookURL       string

	APIBase      string
	HTTPTimeout  time.Duration
	HTTPMaxConns int

	AIProvider   string
	AIAPIURL     string
	AITimeout    time.Duration
	GeminiAPIKey string
	GeminiModel  string

	DatabaseURL      string
	AttemptRetention time.Duration

	DonateURL string
	LogLevel  slog.Level
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		TelegramBotToken: getEnv("BOT_TOKEN", getEnv("TELEGRAM_BOT_TOKEN", "")),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),

		APIBase:      getEnv("API_BASE", "https://riseup-back-production.up.railway.app/api"),
		HTTPTimeout:  getEnvDuration("HTTP_TIMEOUT", 20*time.Second),
		HTTPMaxConns: getEnvInt("HTTP_MAX_CONNS", 50),

		AIProvider:   strings.ToLower(getEnv("AI_PROVIDER", ProviderRemote)),
		AIAPIURL:     getEnv("AI_API_URL", "https://futurenur.pythonanywhere.com/ai/chat"),
		AITimeout:    getEnvDuration("AI_TIMEOUT", 30*time.Second),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		DatabaseURL:      resolveDSN(),
		AttemptRetention: getEnvDuration("ATTEMPT_RETENTION", 180*24*time.Hour),

		DonateURL: getEnv("DONATE_URL", "https://t.me/timurbek_ustozai"),
		LogLevel:  parseLevel(getEnv("LOG_LEVEL", "info")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate — без токена бота запускаться бессмысленно.
func (c *Config) Validate() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.APIBase == "" {
		return fmt.Errorf("API_BASE cannot be empty")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be > 0")
	}
	if c.HTTPMaxConns <= 0 {
		return fmt.Errorf("HTTP_MAX_CONNS must be > 0")
	}
	switch c.AIProvider {
	case ProviderRemote:
		if c.AIAPIURL == "" {
			return fmt.Errorf("AI_API_URL cannot be empty")
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for AI_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q (remote|gemini)", c.AIProvider)
	}
	return nil
}

// resolveDSN: DATABASE_URL, иначе POSTGRES_* / PG*. Без PGHOST журнал попыток выключен.
func resolveDSN() string {
	if v := getEnv("DATABASE_URL", ""); v != "" {
		return v
	}
	return store.BuildDSN(
		getEnv("POSTGRES_USER", "riseup"),
		os.Getenv("POSTGRES_PASSWORD"),
		getEnv("PGHOST", ""),
		getEnv("PGPORT", "5432"),
		getEnv("POSTGRES_DB", "riseup"),
	)
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	n, err := strconv.Atoi(getEnv(k, ""))
	if err != nil {
		return def
	}
	return n
}

// getEnvDuration понимает "20s"/"1m" и голое число секунд.
func getEnvDuration(k string, def time.Duration) time.Duration {
	v := getEnv(k, "")
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
