package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/contactform/handler"
	"github.com/dmitrymomot/contactform/modules/contact"
	"github.com/dmitrymomot/contactform/pkg/clientip"
	pkgconfig "github.com/dmitrymomot/contactform/pkg/config"
	"github.com/dmitrymomot/contactform/pkg/httpserver"
	"github.com/dmitrymomot/contactform/pkg/logger"
	"github.com/dmitrymomot/contactform/pkg/ratelimiter"
	"github.com/dmitrymomot/contactform/pkg/requestid"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config
			if err := pkgconfig.Load(&cfg); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func newLogger(cfg config) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(cfg.App.Env, cfg.App.Name),
		logger.WithFile(cfg.Log),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
}

func serve(ctx context.Context, cfg config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	store := ratelimiter.NewMemoryStore()
	defer store.Close()

	router, err := newRouter(cfg, log, store)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

func newRouter(cfg config, log *slog.Logger, store ratelimiter.Store) (http.Handler, error) {
	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
		Capacity:       cfg.Contact.RateCapacity,
		RefillRate:     cfg.Contact.RateRefill,
		RefillInterval: cfg.Contact.RateInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	svc := contact.NewService(
		contact.WithLogger(log),
		contact.WithErrorHandler(handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})),
		contact.WithToast(cfg.Contact.ToastDuration, contact.DefaultToastContent),
		contact.WithSubmitMiddleware(ratelimiter.Middleware(bucket, clientip.NewResolver(cfg.Contact.TrustedIPHeaders...).IP)),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Mount("/", svc.Handle())
	return r, nil
}
