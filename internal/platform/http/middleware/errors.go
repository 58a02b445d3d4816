// Package middleware provides platform-level gin middleware: the request
// logger and the terminal error normalizer that owns every wire-facing error
// representation.
package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/shared/apperr"
	"auth_backend/internal/shared/validation"
)

// errorBody is the single JSON error shape for all failure classes.
type errorBody struct {
	Message   string                  `json:"message"`
	ErrorCode string                  `json:"errorCode,omitempty"`
	Errors    []validation.FieldError `json:"errors,omitempty"`
	Detail    string                  `json:"error,omitempty"`
}

// ErrorHandler は終端のエラーミドルウェアです。ハンドラーがgin.Contextに
// 積んだエラーを優先順位どおりに正規化します:
// ボディ構文エラー → バリデーション → ドメインエラー → 500フォールバック。
// どの種別でもレスポンス生成前に一度だけログを出力します。
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		err := last.Err

		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error(),
		)

		if c.Writer.Written() {
			return
		}

		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
			errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			c.JSON(http.StatusBadRequest, errorBody{Message: "Invalid request body"})
			return
		}

		var vErr *validation.Error
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, errorBody{
				Message: "Validation failed",
				Errors:  vErr.Violations,
			})
			return
		}

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			c.JSON(appErr.Status, errorBody{
				Message:   appErr.Message,
				ErrorCode: appErr.Code,
			})
			return
		}

		body := errorBody{Message: "Internal Server Error"}
		if !production {
			body.Detail = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}

// Recovery はpanicを回復し、通常のエラーとしてErrorHandlerに引き渡します。
// ErrorHandlerより内側（後）に登録する必要があります。
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				_ = c.Error(fmt.Errorf("panic recovered: %v", r))
				c.Abort()
			}
		}()
		c.Next()
	}
}
