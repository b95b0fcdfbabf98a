package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "maak/internal/app"
	recordchangedhandler "maak/internal/handlers/kafka-consumer/record_changed"
	"maak/internal/handlers/rest/deal_accept_post"
	"maak/internal/handlers/rest/deal_code_get"
	"maak/internal/handlers/rest/deal_code_post"
	"maak/internal/handlers/rest/deal_events_ws"
	"maak/internal/handlers/rest/deal_get"
	"maak/internal/handlers/rest/deal_pickup_post"
	"maak/internal/handlers/rest/deal_post"
	"maak/internal/handlers/rest/healthcheck_head"
	"maak/internal/handlers/rest/matches_get"
	"maak/internal/handlers/rest/parcel_cancel_post"
	"maak/internal/handlers/rest/parcel_post"
	"maak/internal/handlers/rest/parcels_get"
	"maak/internal/handlers/rest/ping_get"
	"maak/internal/handlers/rest/session_delete"
	"maak/internal/handlers/rest/session_get"
	"maak/internal/handlers/rest/session_patch"
	"maak/internal/handlers/rest/trip_cancel_post"
	"maak/internal/handlers/rest/trip_post"
	"maak/internal/handlers/rest/trips_get"
	"maak/internal/pkg/config"
	"maak/internal/pkg/dotenv"
	"maak/internal/pkg/kafka"
	metrics_system "maak/internal/pkg/metrics"
	"maak/internal/pkg/middlewares/graceful_shutdown"
	"maak/internal/pkg/middlewares/metrics"
	"maak/internal/pkg/middlewares/rate_limiter"
	"maak/internal/pkg/middlewares/timeout"
	"maak/internal/pkg/redisconn"
	"maak/pkg/logger"
	"maak/pkg/logger/zap_adapter"
	"maak/pkg/token_bucket"
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

	mainLog.Info("starting maak application")

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

	redisClient, err := redisconn.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			runLog.Error("failed to close Redis connection",
				logger.NewField("error", err),
			)
		}
	}()

	httpClient := &http.Client{Timeout: 30 * time.Second}

	businessApp, err := application.InitializeApplication(ctx, log, httpClient, redisClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	if err := businessApp.Backend.Ping(ctx); err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	runLog.Info("backend connection established")

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx is the BaseContext and must survive SIGTERM. It is
	// cancelled only after server.Shutdown() so in-flight requests and
	// open websockets can finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// main http server
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
	// main http server

	// change feed consumer: backend row-change events fan out to the
	// in-process hub, which the websocket handler serves from
	kafkaHandler := recordchangedhandler.New(log, businessApp.Hub, cfg.Kafka.Handlers.RecordChanged.ProcessTimeout)

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	consumer, err := kafka.NewConsumer(
		ctx,
		log,
		&cfg.Kafka,
		brokers,
		cfg.Kafka.ConsumerGroup,
		[]string{cfg.Kafka.Topic},
		kafkaHandler,
	)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	consumerErr := make(chan error, 1)
	go func() {
		defer close(consumerErr)

		runLog.With(
			logger.NewField("brokers", brokers),
			logger.NewField("topic", cfg.Kafka.Topic),
			logger.NewField("group", cfg.Kafka.ConsumerGroup),
		).Info("Kafka consumer starting")

		if err := consumer.Start(ongoingCtx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
				runLog.Info("Kafka consumer stopped gracefully")
			} else {
				consumerErr <- err
			}
		}
	}()
	// change feed consumer

	// pprof http server
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
	// pprof http server

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-consumerErr:
		return fmt.Errorf("consumer: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled, never selected
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not inherit ctx, which is already cancelled here.
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

	if err := consumer.Close(); err != nil {
		runLog.With(logger.NewField("error", err)).Error("failed to close Kafka consumer")
	}

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

	router.Handle("/trips", trips_get.New(log, app.ServiceTrip)).Methods("GET")
	router.Handle("/trips", trip_post.New(log, app.ServiceTrip)).Methods("POST")
	router.Handle("/trips/{id}/cancel", trip_cancel_post.New(log, app.ServiceTrip)).Methods("POST")

	router.Handle("/parcel-requests", parcels_get.New(log, app.ServiceParcel)).Methods("GET")
	router.Handle("/parcel-requests", parcel_post.New(log, app.ServiceParcel)).Methods("POST")
	router.Handle("/parcel-requests/{id}/cancel", parcel_cancel_post.New(log, app.ServiceParcel)).Methods("POST")

	router.Handle("/matches", matches_get.New(log, app.ServiceMatching, app.ServiceTrip, app.ServiceParcel)).Methods("GET")

	router.Handle("/deals", deal_post.New(log, app.ServiceDeal)).Methods("POST")
	router.Handle("/deals/{id}", deal_get.New(log, app.ServiceDeal)).Methods("GET")
	router.Handle("/deals/{id}/accept", deal_accept_post.New(log, app.ServiceDeal)).Methods("POST")
	router.Handle("/deals/{id}/pickup", deal_pickup_post.New(log, app.ServiceDeal)).Methods("POST")
	router.Handle("/deals/{id}/code", deal_code_get.New(log, app.ServiceDeal)).Methods("GET")
	router.Handle("/deals/{id}/code/verify", deal_code_post.New(log, app.ServiceDeal)).Methods("POST")
	router.Handle("/deals/{id}/events", deal_events_ws.New(log, app.Hub, app.ServiceDeal)).Methods("GET")

	router.Handle("/session", session_get.New(log, app.ServiceSession)).Methods("GET")
	router.Handle("/session", session_patch.New(log, app.ServiceSession)).Methods("PATCH")
	router.Handle("/session", session_delete.New(log, app.ServiceSession)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
