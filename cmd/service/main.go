package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "marketplace/internal/app"
	"marketplace/internal/handlers/rest/address_delete"
	"marketplace/internal/handlers/rest/address_post"
	"marketplace/internal/handlers/rest/addresses_get"
	"marketplace/internal/handlers/rest/deliveries_board_get"
	"marketplace/internal/handlers/rest/delivery_assign_post"
	"marketplace/internal/handlers/rest/delivery_autoassign_post"
	"marketplace/internal/handlers/rest/delivery_status_post"
	"marketplace/internal/handlers/rest/driver_get"
	"marketplace/internal/handlers/rest/driver_post"
	"marketplace/internal/handlers/rest/driver_put"
	"marketplace/internal/handlers/rest/drivers_get"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/handlers/rest/location_post"
	"marketplace/internal/handlers/rest/location_put"
	"marketplace/internal/handlers/rest/locations_get"
	"marketplace/internal/handlers/rest/page_delete"
	"marketplace/internal/handlers/rest/page_get"
	"marketplace/internal/handlers/rest/page_post"
	"marketplace/internal/handlers/rest/page_put"
	"marketplace/internal/handlers/rest/pages_get"
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/handlers/rest/promotion_delete"
	"marketplace/internal/handlers/rest/promotion_post"
	"marketplace/internal/handlers/rest/promotions_get"
	"marketplace/internal/handlers/rest/taxonomy_get"
	"marketplace/internal/handlers/rest/taxonomy_post"
	"marketplace/internal/handlers/rest/taxonomy_toggle_post"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting marketplace application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	router.Handle("/deliveries/board", deliveries_board_get.New(log, app.ServiceDelivery)).Methods("GET")
	router.Handle("/delivery/status", delivery_status_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/assign", delivery_assign_post.New(log, app.ServiceDelivery)).Methods("POST")
	router.Handle("/delivery/autoassign", delivery_autoassign_post.New(log, app.ServiceDelivery)).Methods("POST")

	router.Handle("/drivers", drivers_get.New(log, app.ServiceDriver)).Methods("GET")
	router.Handle("/driver/{id}", driver_get.New(log, app.ServiceDriver)).Methods("GET")
	router.Handle("/driver", driver_post.New(log, app.ServiceDriver)).Methods("POST")
	router.Handle("/driver", driver_put.New(log, app.ServiceDriver)).Methods("PUT")

	router.Handle("/promotions", promotions_get.New(log, app.ServicePromotion)).Methods("GET")
	router.Handle("/promotion", promotion_post.New(log, app.ServicePromotion)).Methods("POST")
	router.Handle("/promotion/{id}", promotion_delete.New(log, app.ServicePromotion)).Methods("DELETE")

	router.Handle("/locations", locations_get.New(log, app.ServiceLocation)).Methods("GET")
	router.Handle("/location", location_post.New(log, app.ServiceLocation)).Methods("POST")
	router.Handle("/location", location_put.New(log, app.ServiceLocation)).Methods("PUT")

	router.Handle("/api/platform/pages", pages_get.New(log, app.ServiceContent)).Methods("GET")
	router.Handle("/api/platform/pages", page_post.New(log, app.ServiceContent)).Methods("POST")
	router.Handle("/api/platform/pages/{id}", page_get.New(log, app.ServiceContent)).Methods("GET")
	router.Handle("/api/platform/pages/{id}", page_put.New(log, app.ServiceContent)).Methods("PUT")
	router.Handle("/api/platform/pages/{id}", page_delete.New(log, app.ServiceContent)).Methods("DELETE")

	router.Handle("/taxonomy/{kind}", taxonomy_get.New(log, app.ServiceCatalog)).Methods("GET")
	router.Handle("/taxonomy/{kind}", taxonomy_post.New(log, app.ServiceCatalog)).Methods("POST")
	router.Handle("/taxonomy/{kind}/{id}/toggle", taxonomy_toggle_post.New(log, app.ServiceCatalog)).Methods("POST")

	router.Handle("/addresses", addresses_get.New(log, app.ServiceAddress)).Methods("GET")
	router.Handle("/address", address_post.New(log, app.ServiceAddress)).Methods("POST")
	router.Handle("/address/{id}", address_delete.New(log, app.ServiceAddress)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
