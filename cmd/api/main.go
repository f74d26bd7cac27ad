package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agency-backend/internal/admin"
	"agency-backend/internal/api"
	"agency-backend/internal/auth"
	"agency-backend/internal/cache"
	"agency-backend/internal/catalog"
	"agency-backend/internal/config"
	"agency-backend/internal/contact"
	"agency-backend/internal/db"
	"agency-backend/internal/marketing"
	"agency-backend/internal/middleware"
	"agency-backend/internal/notifications"
	"agency-backend/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cols *db.Collections
	if cfg.UsesMongo() {
		client, c, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
		defer client.Disconnect(context.Background())

		if err := db.EnsureIndexes(ctx, c); err != nil {
			logger.Error("index creation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cols = c
	} else {
		logger.Info("mongo disabled, contact and admin routes are off")
	}

	items := catalog.Static()
	if cfg.CatalogSource == config.CatalogSourceMongo {
		repo := catalog.NewRepository(cols.Services, cols.SpecializedServices, cols.Projects)
		items, err = catalog.Load(ctx, repo)
		if err != nil {
			logger.Error("catalog load failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	services, specialized, projects := items.Counts()
	logger.Info("catalog loaded",
		slog.String("source", cfg.CatalogSource),
		slog.Int("services", services),
		slog.Int("specialized_services", specialized),
		slog.Int("projects", projects),
	)
	if dups := items.DuplicateSpecializedIDs(); len(dups) > 0 {
		logger.Warn("specialized services share derived ids", slog.Any("ids", dups))
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
			if err != nil {
				logger.Error("redis url invalid", slog.String("error", err.Error()))
				os.Exit(1)
			}
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisCache.Close()
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	if cfg.MarketingAPIKey == "" {
		logger.Warn("MARKETING_API_KEY is not set, marketing random endpoint will reject every request")
	}

	val := validation.New()
	deps := api.Deps{
		Log:             logger,
		FrontendOrigin:  cfg.FrontendOrigin,
		MarketingAPIKey: func() string { return cfg.MarketingAPIKey },
		Marketing: marketing.NewHandler(
			marketing.NewService(items),
			cacheStore,
			time.Duration(cfg.CacheTTLSeconds)*time.Second,
			logger,
		),
	}

	if cols != nil {
		var notifier contact.Notifier
		mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.ContactInbox, cfg.BrevoSandbox)
		if mailer == nil {
			logger.Info("brevo mailer disabled")
		} else {
			logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
			notifier = mailer
		}

		contactService := contact.NewService(contact.NewRepository(cols.ContactMessages), cfg.Timezone, notifier)
		deps.Contact = contact.NewHandler(contactService, val, logger)
		deps.ContactLimiter = middleware.NewRateLimiter(cfg.RateLimitContact, time.Duration(cfg.RateLimitWindowSec)*time.Second)

		jwtManager := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.AccessTTLMinutes)*time.Minute, "agency-backend")
		if jwtManager != nil && cfg.AdminPasswordHash != "" {
			deps.Admin = admin.NewHandler(cfg.AdminUser, cfg.AdminPasswordHash, jwtManager, cfg.CookieSecure, val, logger)
		}
		if jwtManager != nil || cfg.AdminAPIKey != "" {
			deps.AdminAuth = middleware.AdminAuth(cfg.AdminAPIKey, jwtManager)
		}
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
