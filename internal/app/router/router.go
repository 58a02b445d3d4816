package router

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "auth_backend/internal/feature/auth/transport/handler"
	"auth_backend/internal/platform/config"
	"auth_backend/internal/platform/http/handler"
	"auth_backend/internal/platform/http/middleware"
	"auth_backend/internal/platform/ratelimit"
	"auth_backend/internal/shared/apperr"
)

// NewRouter はルートとミドルウェアチェーンを構築します。
// ミドルウェアは順序が重要です:
// リクエストログ → CORS → エラー正規化（終端） → panic回復。
func NewRouter(cfg config.Config, authHandler *authhandler.AuthHandler, limiter *ratelimit.Limiter) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestLogger())

	// CORSは設定されたオリジンのみ許可（Cookie送信あり）
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.AppOrigin}
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	r.Use(middleware.ErrorHandler(cfg.IsProduction()))
	r.Use(middleware.Recovery())

	// 導通確認用
	r.GET("/health", handler.Health)

	// 新規ユーザー登録（IP別レートリミット付き）
	r.POST("/register", limiter.Middleware(), authHandler.Register)

	// 未定義ルートはNotFoundドメインエラーとして終端ミドルウェアに渡す
	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperr.NotFound(fmt.Sprintf("Route not found - %s", c.Request.URL.Path)))
		c.Abort()
	})

	return r
}
