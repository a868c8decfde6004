package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"propellus-site/internal/app"
	"propellus-site/internal/config"
	hhttp "propellus-site/internal/handler/http"
	"propellus-site/internal/handler/http/requestid"
	"propellus-site/internal/infra/cms"
	"propellus-site/internal/observability/logging"
	"propellus-site/internal/observability/slo"
	"propellus-site/internal/observability/tracing"
	"propellus-site/internal/view"
	envconfig "propellus-site/pkg/config"
	"propellus-site/pkg/security/csp"

	"github.com/andybalholm/brotli"
	"github.com/robfig/cron/v3"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	version := envconfig.GetEnvString("VERSION", "dev")
	shutdownTracing := tracing.Init("propellus-site", version)

	cmsCfg, err := cms.LoadConfigFromEnv()
	if err != nil {
		logger.Error("invalid content repository configuration", slog.Any("error", err))
		os.Exit(1)
	}
	srvCfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("invalid server configuration", slog.Any("error", err))
		os.Exit(1)
	}
	secCfg, err := config.LoadSecurityConfig()
	if err != nil {
		logger.Error("invalid security configuration", slog.Any("error", err))
		os.Exit(1)
	}

	site, err := app.Build(cmsCfg, nil, nil)
	if err != nil {
		logger.Error("failed to build site", slog.Any("error", err))
		os.Exit(1)
	}

	probe, err := cms.NewProbe(site.CMS)
	if err != nil {
		logger.Error("failed to create content repository probe", slog.Any("error", err))
		os.Exit(1)
	}
	probe.Start()
	defer probe.Stop()

	sloCron := cron.New()
	if _, err := sloCron.AddFunc(slo.PublishSchedule, slo.Publish); err != nil {
		logger.Error("failed to schedule slo publishing", slog.Any("error", err))
		os.Exit(1)
	}
	sloCron.Start()
	defer func() { <-sloCron.Stop().Done() }()

	var limiter *hhttp.RateLimiter
	if secCfg.RateLimitEnabled {
		limiter = hhttp.NewRateLimiter(secCfg.RateLimitRPS, secCfg.RateLimitBurst, secCfg.TrustProxy)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", secCfg.RateLimitRPS),
			slog.Int("burst", secCfg.RateLimitBurst),
			slog.Bool("trust_proxy", secCfg.TrustProxy))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	handler := setupRoutes(site, probe, limiter, srvCfg, secCfg, cmsCfg, version)
	handler = applyMiddleware(logger, handler, limiter, srvCfg.RequestTimeout)

	runServer(logger, handler, limiter, srvCfg.Addr, version)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTracing(ctx); err != nil {
		logger.Error("tracer shutdown failed", slog.Any("error", err))
	}
}

// setupRoutes registers proxy endpoints, pages, and ops endpoints.
func setupRoutes(
	site *app.Components,
	probe *cms.Probe,
	limiter *hhttp.RateLimiter,
	srvCfg config.ServerConfig,
	secCfg config.SecurityConfig,
	cmsCfg cms.Config,
	version string,
) http.Handler {
	// Pages read sections in-process unless SITE_ORIGIN points at a
	// separate proxy deployment.
	var fetcher view.Fetcher
	if srvCfg.SiteOrigin != "" {
		fetcher = view.NewHTTPFetcher(srvCfg.SiteOrigin, cmsCfg.Timeout+5*time.Second)
	}

	pages := http.NewServeMux()
	view.Register(pages, site.Pages(fetcher))

	pageMW := hhttp.Chain(pages,
		hhttp.CSP(hhttp.CSPConfig{
			Enabled:       secCfg.CSPEnabled,
			ReportOnly:    secCfg.CSPReportOnly,
			DefaultPolicy: csp.PagePolicy(cmsCfg.MediaBaseURL),
		}),
		hhttp.Compress(brotli.DefaultCompression),
	)

	apiMW := hhttp.CSP(hhttp.CSPConfig{
		Enabled:       secCfg.CSPEnabled,
		ReportOnly:    secCfg.CSPReportOnly,
		DefaultPolicy: csp.StrictPolicy(),
	})(site.API)

	mux := http.NewServeMux()
	mux.Handle("/api/", apiMW)
	mux.Handle("/", pageMW)

	mux.Handle("GET /health", &hhttp.HealthHandler{
		Probe:         probe,
		Breaker:       site.CMS,
		Version:       version,
		RateLimiter:   limiter,
		CSPEnabled:    secCfg.CSPEnabled,
		CSPReportOnly: secCfg.CSPReportOnly,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Probe: probe})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return mux
}

// applyMiddleware wraps the handler with the middleware chain:
// Request ID → Rate Limit → Recovery → Logging → Tracing → Input Validation
// → Body Limit → Timeout → Metrics
func applyMiddleware(logger *slog.Logger, handler http.Handler, limiter *hhttp.RateLimiter, timeout time.Duration) http.Handler {
	middlewares := []func(http.Handler) http.Handler{requestid.Middleware}
	if limiter != nil {
		middlewares = append(middlewares, limiter.Limit)
	}
	middlewares = append(middlewares,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		tracing.Middleware,
		hhttp.InputValidation(),
		hhttp.LimitRequestBody(1<<20),
		hhttp.Timeout(timeout),
		hhttp.MetricsMiddleware,
	)
	return hhttp.Chain(handler, middlewares...)
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, handler http.Handler, limiter *hhttp.RateLimiter, addr, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if limiter != nil {
		go limiter.StartCleanup(ctx, time.Minute, 10*time.Minute)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
