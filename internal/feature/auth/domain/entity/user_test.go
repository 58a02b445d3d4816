package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Safe(t *testing.T) {
	now := time.Now()
	user := &User{
		ID:              "6f1e0c9a-0000-0000-0000-000000000001",
		Name:            "Al",
		Email:           "a@b.com",
		Password:        "deadbeef:cafebabe",
		IsEmailVerified: true,
		UserPreferences: UserPreferences{
			Enable2FA:         true,
			EmailNotification: true,
			TwoFactorSecret:   "super-secret-seed",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	safe := user.Safe()

	assert.Equal(t, user.ID, safe.ID)
	assert.Equal(t, "Al", safe.Name)
	assert.Equal(t, "a@b.com", safe.Email)
	assert.True(t, safe.IsEmailVerified)
	assert.True(t, safe.UserPreferences.Enable2FA)
	assert.True(t, safe.UserPreferences.EmailNotification)
	assert.Equal(t, now, safe.CreatedAt)
	assert.Equal(t, now, safe.UpdatedAt)
}

// TestSafeUser_JSONNeverLeaksSecrets verifies the serialized projection never
// contains the password hash or the two-factor secret.
func TestSafeUser_JSONNeverLeaksSecrets(t *testing.T) {
	user := &User{
		ID:       "6f1e0c9a-0000-0000-0000-000000000002",
		Name:     "Al",
		Email:    "a@b.com",
		Password: "deadbeef:cafebabe",
		UserPreferences: UserPreferences{
			TwoFactorSecret: "super-secret-seed",
		},
	}

	raw, err := json.Marshal(user.Safe())
	require.NoError(t, err)

	body := string(raw)
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "deadbeef:cafebabe")
	assert.NotContains(t, body, "twoFactorSecret")
	assert.NotContains(t, body, "super-secret-seed")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.ElementsMatch(t,
		[]string{"id", "name", "email", "isEmailVerified", "userPreferences", "createdAt", "updatedAt"},
		keys(decoded))

	prefs, ok := decoded["userPreferences"].(map[string]any)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"enable2FA", "emailNotification"}, keys(prefs))
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
