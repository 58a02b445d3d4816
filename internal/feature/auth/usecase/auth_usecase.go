// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/shared/apperr"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// ExistsByEmail は指定されたメールアドレスのユーザーが存在するかを返します。
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error
}

// PasswordHasher はパスワードハッシュ化のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（shared/password）ではなくコンシューマー（usecase）が定義します。
type PasswordHasher interface {
	// Hash は平文パスワードから "salt:hash" 形式の保存値を導出します。
	Hash(plaintext string) (string, error)

	// Verify は平文パスワードを保存値と照合します。
	Verify(plaintext, stored string) bool
}

// RegisterInput はバリデーション済みの登録データです。
// confirmPassword の一致はスキーマ層で検証済みのため、ここには現れません。
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	UserAgent string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
	}
}

// NormalizeEmail はメールアドレスを照合用に正規化します（trim + 小文字化）。
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register は新規ユーザーを登録し、安全なプロジェクションを返します。
// メールアドレスの一意性は事前チェックし、チェックと作成の間のレースは
// ストアのユニークインデックス違反を同一のドメインエラーに変換して吸収します。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.SafeUser, error) {
	email := NormalizeEmail(in.Email)

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		return nil, apperr.BadRequest("Email already exists", apperr.CodeAuthEmailAlreadyExists)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     in.Name,
		Email:    email,
		Password: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, apperr.BadRequest("Email already exists", apperr.CodeAuthEmailAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	safe := user.Safe()
	return &safe, nil
}
