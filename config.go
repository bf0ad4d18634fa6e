package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment, after .env has been loaded.
type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	Environment string `env:"NODE_ENV" envDefault:"development"`
	WebRoot     string `env:"WEB_ROOT" envDefault:"web"`

	// Mail relay. Delivery is disabled unless both credentials are set.
	EmailUser    string        `env:"EMAIL_USER"`
	EmailPass    string        `env:"EMAIL_PASS"`
	ContactEmail string        `env:"CONTACT_EMAIL"`
	SMTPHost     string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort     string        `env:"SMTP_PORT" envDefault:"587"`
	MailTimeout  time.Duration `env:"MAIL_TIMEOUT" envDefault:"10s"`
}

func loadConfig() (Config, error) {
	return loadConfigFrom(env.ToMap(os.Environ()))
}

func loadConfigFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ContactEmail == "" {
		cfg.ContactEmail = cfg.EmailUser
	}
	if cfg.MailTimeout <= 0 {
		return Config{}, fmt.Errorf("MAIL_TIMEOUT must be positive, got %s", cfg.MailTimeout)
	}
	return cfg, nil
}

// Production reports whether error details must be hidden from clients.
func (c Config) Production() bool {
	return strings.EqualFold(c.Environment, "production")
}

func (c Config) MailConfigured() bool {
	return c.EmailUser != "" && c.EmailPass != ""
}
