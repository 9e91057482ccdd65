package main

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/contactform/internal/web"
	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/ratelimiter"
)

type appConfig struct {
	AppName      string `env:"APP_NAME" envDefault:"contactform"`
	AppEnv       string `env:"APP_ENV" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	NameLocale   string `env:"NAME_LOCALE" envDefault:"und"`
	OutputFormat string `env:"OUTPUT_FORMAT" envDefault:"json"`
	PageTitle    string `env:"PAGE_TITLE" envDefault:"Contact"`

	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

// Validate rejects values the app cannot start with.
func (c *appConfig) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	if _, err := c.locale(); err != nil {
		return err
	}
	if _, err := c.output(); err != nil {
		return err
	}
	return nil
}

func (c *appConfig) level() (slog.Level, error) {
	return logger.ParseLevel(c.LogLevel)
}

func (c *appConfig) locale() (language.Tag, error) {
	tag, err := language.Parse(c.NameLocale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid NAME_LOCALE %q: %w", c.NameLocale, err)
	}
	return tag, nil
}

func (c *appConfig) output() (web.OutputFormat, error) {
	return web.ParseOutputFormat(c.OutputFormat)
}
