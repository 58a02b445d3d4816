package main

import (
	"log"
	"log/slog"
	"net/http"

	redisv9 "github.com/redis/go-redis/v9"

	"auth_backend/internal/app/router"
	authadapters "auth_backend/internal/feature/auth/adapters"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/config"
	infradb "auth_backend/internal/platform/db"
	"auth_backend/internal/platform/logging"
	"auth_backend/internal/platform/ratelimit"
	infraredis "auth_backend/internal/platform/redis"
	"auth_backend/internal/shared/password"
)

func main() {
	// 設定は起動時に一度だけ読み込み、以降は値渡しする
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logging.Setup(cfg.IsProduction())

	// db
	db := infradb.Open(cfg.DatabaseDSN, cfg.RunMigrations)

	// Redis（任意。未設定または接続不可ならレートリミットなしで続行）
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := infraredis.NewClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			slog.Warn("Redis unavailable. Running without rate limiting.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("Failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, password.NewHasher())

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	// /register用レートリミッタ
	limiter := ratelimit.NewLimiter(rdb, cfg.RegisterRateLimit, cfg.RegisterRateWindow, "register")

	// ルータ生成
	r := router.NewRouter(cfg, authH, limiter)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	slog.Info("server starting", "addr", cfg.Addr(), "env", cfg.AppEnv)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
