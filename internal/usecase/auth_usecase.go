package usecase

import (
	"context"

	"directorio/internal/domain/entity"
)

// TokenPair is the result of a successful authentication.
type TokenPair struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *entity.User `json:"user"`
}

// AuthUsecase handles account registration and login. Refresh is stateless:
// the refresh token carries everything needed to mint a new pair.
type AuthUsecase interface {
	// Register creates a visitor account with the user role.
	Register(ctx context.Context, name, email, password string) (*entity.User, error)

	// Login authenticates with email and password.
	Login(ctx context.Context, email, password string) (*TokenPair, error)

	// LoginWithGoogle verifies a Google ID token, provisioning the account
	// on first login.
	LoginWithGoogle(ctx context.Context, idToken string) (*TokenPair, error)

	// Refresh exchanges a valid refresh token for a new pair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}
