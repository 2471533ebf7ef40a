package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gigmarket/internal/cache"
	"gigmarket/internal/config"
	"gigmarket/internal/localstore"
	"gigmarket/internal/middleware"
	"gigmarket/internal/modules/admin"
	"gigmarket/internal/modules/gigs"
	"gigmarket/internal/modules/messages"
	"gigmarket/internal/modules/orders"
	"gigmarket/internal/modules/payments"
	"gigmarket/internal/modules/prefs"
	"gigmarket/internal/modules/profiles"
	"gigmarket/internal/modules/session"
	"gigmarket/internal/modules/verification"
	"gigmarket/internal/modules/wallet"
	"gigmarket/internal/monitoring"
	"gigmarket/internal/pkg/logger"
	"gigmarket/internal/realtime"
	"gigmarket/internal/remote"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	log.Info().Str("env", cfg.AppEnv).Str("port", cfg.Port).Msg("starting gigmarket gateway")

	local, err := localstore.Open(cfg.LocalDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("open local store")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := monitoring.New(registry)

	rest := remote.New(remote.Config{
		BaseURL: cfg.RemoteURL,
		AnonKey: cfg.AnonKey,
		Logger:  log,
		Metrics: metrics,
	})
	queryCache := cache.New(metrics)

	profileService := profiles.NewService(rest, queryCache)
	gigService := gigs.NewService(rest, queryCache)
	orderService := orders.NewService(rest, queryCache)
	walletService := wallet.NewService(rest, queryCache)
	paymentService := payments.NewService(rest, queryCache)
	messageService := messages.NewService(rest, queryCache)
	verifyService := verification.NewService(rest, queryCache, local)
	prefService := prefs.NewService(ctx, local)
	adminService := admin.NewService(rest, queryCache, local, log)

	limiter := session.NewRateLimiter(local)
	sessionStore := session.NewStore(rest, profileService, rest, limiter, log)
	sessionStore.Init(ctx, "")

	// Inbox change notifications only drop cached conversation state; the
	// next read refetches. A failed dial is non-fatal, the poll path still
	// works.
	sub := realtime.NewSubscriber(cfg.RealtimeURL, cfg.AnonKey, log)
	sub.Subscribe("inbox", func(realtime.Event) {
		queryCache.Invalidate("messages")
	})
	if err := sub.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("realtime unavailable, continuing without it")
	} else {
		defer sub.Close()
	}

	if isProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS())

	router.GET("/healthz", func(c *gin.Context) {
		if err := rest.Probe(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "remote": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	authRequired := middleware.Auth()
	v1 := router.Group("/api/v1")

	session.NewHandler(sessionStore).RegisterRoutes(v1)
	gigs.NewHandler(gigService).RegisterRoutes(v1, authRequired)
	orders.NewHandler(orderService).RegisterRoutes(v1, authRequired)
	wallet.NewHandler(walletService).RegisterRoutes(v1, authRequired)
	payments.NewHandler(paymentService).RegisterRoutes(v1, authRequired)
	profiles.NewHandler(profileService).RegisterRoutes(v1, authRequired)
	messages.NewHandler(messageService).RegisterRoutes(v1, authRequired)
	verification.NewHandler(verifyService).RegisterRoutes(v1, authRequired)
	prefs.NewHandler(prefService).RegisterRoutes(v1)
	admin.NewHandler(adminService).RegisterRoutes(v1)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}
