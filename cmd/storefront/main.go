package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-storefront/config"
	"github.com/fekuna/omnipos-storefront/internal/apiclient"
	"github.com/fekuna/omnipos-storefront/internal/catalog"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/fekuna/omnipos-storefront/internal/querycache"
	"github.com/fekuna/omnipos-storefront/pkg/broker"
	"github.com/fekuna/omnipos-storefront/pkg/cache"
	"github.com/fekuna/omnipos-storefront/pkg/httpx"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/fekuna/omnipos-storefront/pkg/logger"

	catRepoPkg "github.com/fekuna/omnipos-storefront/internal/catalog/repository"
	catUCPkg "github.com/fekuna/omnipos-storefront/internal/catalog/usecase"

	"github.com/fekuna/omnipos-storefront/internal/contact"
	contactH "github.com/fekuna/omnipos-storefront/internal/contact/handler"
	contactSink "github.com/fekuna/omnipos-storefront/internal/contact/sink"
	contactUCPkg "github.com/fekuna/omnipos-storefront/internal/contact/usecase"

	pageH "github.com/fekuna/omnipos-storefront/internal/page/handler"
	pageUCPkg "github.com/fekuna/omnipos-storefront/internal/page/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.IsDevelopment() {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize i18n
	translator, err := i18n.New(cfg.Store.Locale)
	if err != nil {
		appLogger.Fatal("Could not load translations", zap.Error(err))
	}

	// 4. Shared cache store, optional
	cacheOpts := []querycache.Option{
		querycache.WithStaleTime(cfg.Cache.StaleTime),
		querycache.WithLogger(appLogger),
	}
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Cache.Prefix)
		if err != nil {
			appLogger.Warn("Redis unavailable, caching in process only", zap.Error(err))
		} else {
			defer redisClient.Close()
			cacheOpts = append(cacheOpts, querycache.WithStore(redisClient))
			appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		}
	}
	queryCache := querycache.New(cacheOpts...)

	// 5. Initialize repository
	fallback := model.SiteSettings{
		WhatsAppNumber:     cfg.Store.WhatsAppNumber,
		ContactEmail:       cfg.Store.ContactEmail,
		ContactPhone:       cfg.Store.ContactPhone,
		ContactAddress:     cfg.Store.ContactAddress,
		CompanyName:        cfg.Store.CompanyName,
		CompanyDescription: cfg.Store.CompanyDescription,
	}

	var catRepo catalog.Repository
	if cfg.MockData() {
		catRepo = catRepoPkg.NewMockRepository(fallback)
		appLogger.Info("Serving the bundled mock catalogue")
	} else {
		api := apiclient.New(cfg.Backend.BaseURL, &http.Client{Timeout: 15 * time.Second})
		catRepo = catRepoPkg.NewRESTRepository(api)
		appLogger.Info("Using catalogue backend", zap.String("base_url", cfg.Backend.BaseURL))
	}

	// 6. Initialize contact sink
	var sink contact.Sink
	if len(cfg.Kafka.Brokers) > 0 {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.ContactTopic,
		})
		defer producer.Close()
		sink = contactSink.NewKafkaSink(producer)
		appLogger.Info("Contact submissions go to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.ContactTopic))
	} else {
		sink = contactSink.NewSimulatedSink(cfg.Contact.SimulatedDelay)
		appLogger.Info("Contact submissions are simulated", zap.Duration("delay", cfg.Contact.SimulatedDelay))
	}

	// 7. Initialize usecases
	catalogUC := catUCPkg.NewCatalogUseCase(catRepo, queryCache, catUCPkg.Options{
		StaleTime:         cfg.Cache.StaleTime,
		SettingsStaleTime: cfg.Cache.SettingsStaleTime,
		SettingsRetry:     cfg.Cache.SettingsRetry,
		FallbackSettings:  fallback,
	}, appLogger)
	pageUC := pageUCPkg.NewPageUseCase(catalogUC, pageUCPkg.Options{
		Currency:            cfg.Store.Currency,
		ClientSideFiltering: cfg.MockData(),
	}, appLogger)
	contactUC := contactUCPkg.NewContactUseCase(sink, contactUCPkg.Options{
		Retries:   cfg.Contact.DeliveryRetries,
		BaseDelay: 500 * time.Millisecond,
		MaxDelay:  5 * time.Second,
	}, appLogger)

	// 8. Initialize router and handlers
	r := httpx.NewRouter(appLogger, cfg.Server.CORSAllowedOrigins)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.Respond(w, http.StatusOK, map[string]any{
			"status":      "ok",
			"data_source": cfg.Backend.DataSource,
			"cache":       queryCache.Stats(),
		})
	})
	pageH.NewPageHandler(pageUC, translator, appLogger).RegisterRoutes(r)
	contactH.NewContactHandler(contactUC, translator, appLogger).RegisterRoutes(r)

	// 9. Start HTTP server
	addr := cfg.Server.HTTPPort
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// SIGHUP drops every cached query; SIGINT and SIGTERM shut down.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	for s := range sig {
		if s == syscall.SIGHUP {
			refreshCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := catalogUC.Refresh(refreshCtx); err != nil {
				appLogger.Error("cache refresh failed", zap.Error(err))
			}
			cancel()
			continue
		}
		break
	}

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
