package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// AuthSource represents the authentication source for a user account.
type AuthSource string

const (
	// AuthSourceLocal indicates the user authenticates with a local database password.
	AuthSourceLocal AuthSource = "local"
	// AuthSourceOIDC indicates the user authenticates via OpenID Connect (OIDC).
	AuthSourceOIDC AuthSource = "oidc"
)

// User represents an admin account. Local accounts carry an Argon2id password
// hash; OIDC accounts are created and refreshed by the provider callback and
// keyed by ExternalID (the token's sub claim).
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Active indicates whether the account can log in.
	Active bool `json:"active"`
	// Username is the unique login name. OIDC accounts use the email address.
	Username string `gorm:"unique;size:100;not null" json:"username"`
	// Email is the user's email address.
	Email string `gorm:"size:255;not null" json:"email"`
	// Password is the Argon2id hash (local accounts only). Never serialized.
	Password string `gorm:"size:255" json:"-"`
	// FirstName is the user's given name.
	FirstName string `gorm:"size:100" json:"firstName"`
	// LastName is the user's family name.
	LastName string `gorm:"size:100" json:"lastName"`
	// ProfileImageURL is an optional avatar URL provided by the OIDC provider.
	ProfileImageURL string `gorm:"size:512" json:"profileImageUrl"`
	// AuthSource indicates how this user authenticates (local or oidc).
	AuthSource AuthSource `gorm:"type:varchar(20);not null;default:'local'" json:"authSource"`
	// ExternalID is the OIDC subject for provider-managed accounts.
	ExternalID string `gorm:"size:255" json:"-"`
	// TOTPSecret enables a TOTP second factor on local login when non-empty.
	TOTPSecret string `gorm:"size:255" json:"-"`
	// CreatedAt is managed by GORM.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is managed by GORM.
	UpdatedAt time.Time `json:"updatedAt"`
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// It is used when seeding or updating local account passwords.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the stored hash.
// It uses constant-time comparison to prevent timing attacks.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
