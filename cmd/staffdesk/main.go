package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/staffdesk/modules/staff"
	"github.com/dmitrymomot/staffdesk/pkg/clientip"
	"github.com/dmitrymomot/staffdesk/pkg/config"
	"github.com/dmitrymomot/staffdesk/pkg/environment"
	"github.com/dmitrymomot/staffdesk/pkg/httpserver"
	"github.com/dmitrymomot/staffdesk/pkg/logger"
	"github.com/dmitrymomot/staffdesk/pkg/ratelimiter"
	"github.com/dmitrymomot/staffdesk/pkg/requestid"
)

type appConfig struct {
	Env  environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name string                  `env:"APP_NAME" envDefault:"staffdesk"`
}

func main() {
	var (
		app      appConfig
		httpCfg  httpserver.Config
		staffCfg staff.Config
		limitCfg ratelimiter.Config
	)
	config.MustLoad(&app)
	config.MustLoad(&httpCfg)
	config.MustLoad(&staffCfg)
	config.MustLoad(&limitCfg)

	log := logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), app, httpCfg, staffCfg, limitCfg, log); err != nil {
		log.Error("staffdesk stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, app appConfig, httpCfg httpserver.Config, staffCfg staff.Config, limitCfg ratelimiter.Config, log *slog.Logger) error {
	limiter, err := ratelimiter.New(limitCfg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go limiter.Run(ctx, time.Minute)

	svc := staff.NewService(staffCfg.Options(), log)
	log.Info("staff validation configured",
		slog.Int("min_age", staffCfg.MinAge),
		slog.Int("password_min_length", svc.Options().Policy.MinLength),
	)

	srv := httpserver.NewFromConfig(httpCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, newRouter(app, svc, limiter, log))
}

func newRouter(app appConfig, svc *staff.Service, limiter *ratelimiter.Limiter, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(environment.Middleware(app.Env))

	r.Get("/health", httpserver.HealthHandler(log))
	r.Group(func(r chi.Router) {
		r.Use(ratelimiter.Middleware(limiter, clientKey))
		r.Mount("/staff", svc.Handle())
	})

	return r
}

func clientKey(r *http.Request) string {
	return clientip.FromContext(r.Context())
}
