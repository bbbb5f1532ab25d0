package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL      string        `env:"DATABASE_URL"       envDefault:"postgres://localhost:5432/servdash?sslmode=disable"`
	MigrationsPath   string        `env:"MIGRATIONS_PATH"    envDefault:"migrations"`
	HTTPAddr         string        `env:"HTTP_ADDR"          envDefault:":3000"`
	JWTRefreshSecret string        `env:"JWT_REFRESH_SECRET"`
	BotAPIKey        string        `env:"BOT_API_KEY"`
	BotWebhookURL    string        `env:"BOT_WEBHOOK_URL"    envDefault:"http://localhost:3001/webhook"`
	BotSecret        string        `env:"BOT_SECRET"`
	WebhookTimeout   time.Duration `env:"WEBHOOK_TIMEOUT"    envDefault:"10s"`
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL"  envDefault:"60s"`
	ReminderWindow   time.Duration `env:"REMINDER_WINDOW"    envDefault:"15m"`
	DefaultLocale    string        `env:"DEFAULT_LOCALE"     envDefault:"fr"`
}

// Load charge la configuration depuis .env (optionnel) puis l'environnement, et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv lit uniquement les variables d'environnement du processus.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate applique les règles sur la configuration chargée.
func (c *Config) validate() error {
	var errs []error
	for _, required := range []struct{ name, value string }{
		{"JWT_REFRESH_SECRET", c.JWTRefreshSecret},
		{"BOT_API_KEY", c.BotAPIKey},
		{"BOT_SECRET", c.BotSecret},
	} {
		if strings.TrimSpace(required.value) == "" {
			errs = append(errs, fmt.Errorf("config: %s est requis et ne peut pas être vide", required.name))
		}
	}

	if err := checkURL("DATABASE_URL", c.DatabaseURL); err != nil {
		errs = append(errs, err)
	}
	if err := checkURL("BOT_WEBHOOK_URL", c.BotWebhookURL); err != nil {
		errs = append(errs, err)
	}

	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"WEBHOOK_TIMEOUT", c.WebhookTimeout},
		{"REMINDER_INTERVAL", c.ReminderInterval},
		{"REMINDER_WINDOW", c.ReminderWindow},
	} {
		if d.value <= 0 {
			errs = append(errs, fmt.Errorf("config: %s doit être une durée positive", d.name))
		}
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		errs = append(errs, errors.New("config: MIGRATIONS_PATH ne peut pas être vide"))
	}
	return errors.Join(errs...)
}

func checkURL(name, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalide (%q): %w", name, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: %s invalide (%q): scheme ou host manquant", name, raw)
	}
	return nil
}
