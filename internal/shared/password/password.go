// Package password はパスワードのハッシュ化と検証を提供します。
// 保存形式は "salt:hash"（いずれも16進文字列）で、ソルトは呼び出しごとに
// 新しく生成されます。平文および保存済みハッシュはログ出力禁止です。
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// 導出パラメータは保存形式にエンコードされないため固定です。
// 変更すると既存レコードが検証不能になります。
const (
	saltLength = 16
	iterations = 1000
	keyLength  = 64
)

// Hasher derives and verifies salted password hashes.
type Hasher struct{}

// NewHasher はHasherの新しいインスタンスを生成します。
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash は平文パスワードから "salt:hash" 形式の保存値を導出します。
// ソルトは毎回 crypto/rand で生成されるため、同じ平文でも結果は異なります。
func (h *Hasher) Hash(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)

	derived := pbkdf2.Key([]byte(plaintext), []byte(saltHex), iterations, keyLength, sha512.New)
	return saltHex + ":" + hex.EncodeToString(derived), nil
}

// Verify は平文パスワードを保存値と照合します。
// 形式不正の保存値は常にfalseを返します。
func (h *Hasher) Verify(plaintext, stored string) bool {
	salt, storedHash, ok := strings.Cut(stored, ":")
	if !ok || salt == "" || storedHash == "" {
		return false
	}

	derived := pbkdf2.Key([]byte(plaintext), []byte(salt), iterations, keyLength, sha512.New)
	candidate := hex.EncodeToString(derived)

	return subtle.ConstantTimeCompare([]byte(candidate), []byte(storedHash)) == 1
}
