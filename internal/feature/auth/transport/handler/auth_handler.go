// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/transport/http/dto"
	"auth_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は新規ユーザーを登録し、安全なプロジェクションを返します。
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.SafeUser, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// ビジネスロジックは持たず、失敗はすべてエラーミドルウェアに委譲します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterRequestにバインド（構文エラーはそのまま伝播）
// - スキーマバリデーション（全違反を列挙）
// - ユースケース呼び出し（メール重複等のドメインエラーは伝播）
// - 成功時は201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	if err := req.Validate(); err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		UserAgent: req.UserAgent,
	})
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	slog.Info("user registered", "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User created successfully",
		Data:    *user,
	})
}
