package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"finance-front/internal/api"
	"finance-front/internal/config"
	apphttp "finance-front/internal/http"
	"finance-front/internal/service"
	"finance-front/web"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	client := api.NewClient(cfg.APIBaseURL, time.Duration(cfg.APITimeoutSeconds)*time.Second, logger)

	tokenStore := service.NewMemoryTokenStore()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory sessions", zap.Error(err))
		} else {
			tokenStore = service.NewRedisTokenStore(redisClient)
		}
		cancel()
	}

	sessions := service.NewSessionService(logger, client.Auth, tokenStore, time.Duration(cfg.SessionTTLHours)*time.Hour)
	cookies := apphttp.CookieOptions{
		Secure: cfg.CookieSecure,
		MaxAge: cfg.SessionTTLHours * 3600,
	}

	templates, err := web.Templates()
	if err != nil {
		logger.Fatal("parse templates", zap.Error(err))
	}

	authHandler := apphttp.NewAuthHandler(logger, sessions, cookies)
	dashboardHandler := apphttp.NewDashboardHandler(logger, sessions, client.Accounts, client.Transactions, cookies)
	accountHandler := apphttp.NewAccountHandler(logger, sessions, client.Accounts, cookies)
	transactionHandler := apphttp.NewTransactionHandler(logger, sessions, client.Accounts, client.Transactions, cookies)
	router := apphttp.NewRouter(logger, sessions, templates, authHandler, dashboardHandler, accountHandler, transactionHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("api", cfg.APIBaseURL))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
