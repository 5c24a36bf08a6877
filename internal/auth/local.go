// Package auth implements local and OIDC authentication plus the fiber
// middleware gating the admin API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/pquerna/otp/totp"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/db/models"
)

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db *gorm.DB
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db: db,
	}
}

// Authenticate authenticates a user against the local database. Accounts
// with a TOTP secret enrolled additionally require a valid code.
func (p *LocalProvider) Authenticate(username, password, totpCode string) (*models.User, error) {
	var user models.User

	err := p.db.Where("username = ? AND auth_source = ?", username, models.AuthSourceLocal).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	if user.TOTPSecret != "" {
		if totpCode == "" {
			return nil, ErrTOTPRequired
		}

		if !totp.Validate(totpCode, user.TOTPSecret) {
			return nil, ErrInvalidTOTPCode
		}
	}

	user.UpdatedAt = time.Now()
	p.db.Save(&user)

	return &user, nil
}
