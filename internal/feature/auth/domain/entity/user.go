// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// UserPreferences holds per-user feature flags.
// Two-factor fields are schema scaffolding only; no issuing or consuming
// logic exists for them.
type UserPreferences struct {
	// Enable2FA indicates whether two-factor authentication is enabled.
	Enable2FA bool `gorm:"not null;default:false"`

	// EmailNotification indicates whether the user receives email notifications.
	EmailNotification bool `gorm:"not null;default:false"`

	// TwoFactorSecret is the two-factor seed. It must never leave the system
	// boundary.
	TwoFactorSecret string `gorm:"size:255"`
}

// User represents a registered user in the system.
type User struct {
	// ID is the opaque unique identifier for the user.
	ID string `gorm:"primaryKey;size:36"`

	// Name is the user's display name.
	Name string `gorm:"size:100;not null"`

	// Email is the user's address, stored lowercase.
	// It must be unique across all users; the unique index is the race-safe
	// second line of defense behind the service-level existence check.
	Email string `gorm:"uniqueIndex;size:100;not null"`

	// Password holds the salted hash in "salt:hash" form.
	// It must never store plaintext and must never be serialized.
	Password string `gorm:"size:255;not null"`

	// IsEmailVerified indicates whether the email address has been verified.
	IsEmailVerified bool `gorm:"not null;default:false"`

	// UserPreferences are embedded into the user record.
	UserPreferences UserPreferences `gorm:"embedded;embeddedPrefix:pref_"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// SafePreferences is the serializable subset of UserPreferences.
type SafePreferences struct {
	Enable2FA         bool `json:"enable2FA"`
	EmailNotification bool `json:"emailNotification"`
}

// SafeUser is the projection of a user permitted to leave the system
// boundary. The password hash and two-factor secret are excluded by
// construction, not by tag.
type SafeUser struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	IsEmailVerified bool            `json:"isEmailVerified"`
	UserPreferences SafePreferences `json:"userPreferences"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Safe returns the non-secret projection of the user.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		IsEmailVerified: u.IsEmailVerified,
		UserPreferences: SafePreferences{
			Enable2FA:         u.UserPreferences.Enable2FA,
			EmailNotification: u.UserPreferences.EmailNotification,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
