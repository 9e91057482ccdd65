// Command contactform serves the contact form over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/contactform/internal/contact"
	"github.com/dmitrymomot/contactform/internal/web"
	"github.com/dmitrymomot/contactform/pkg/clientip"
	"github.com/dmitrymomot/contactform/pkg/config"
	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/ratelimiter"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.New().Error("contactform stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	// Validate has already checked these.
	level, _ := cfg.level()
	locale, _ := cfg.locale()
	output, _ := cfg.output()

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithLevel(level),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	var opts []web.ContactOption
	if cfg.RateLimitEnabled {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			return err
		}
		opts = append(opts, web.WithRateLimit(bucket))
	}

	svc := web.NewContactService(
		cfg.PageTitle,
		contact.NewValidator(contact.WithLocale(locale)),
		output,
		log,
		nil,
		opts...,
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, web.Router(web.RouterOptions{Logger: log, Contact: svc}))
}
