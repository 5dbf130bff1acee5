package impl

import (
	"context"
	"log/slog"
	"strings"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface. Refresh is stateless:
// the refresh token is self-contained and validated by signature and type
// claim, there is no server-side token table.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	googleAuth   service.OAuthAuthService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	googleAuth service.OAuthAuthService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		googleAuth:   googleAuth,
		logger:       logger,
	}
}

// Register creates a visitor account with the user role.
func (srv *authService) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	if name == "" || email == "" || password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "name, email and password are required")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Roles:        entity.Roles{entity.RoleUser},
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.logger.Info("User registered", "userID", user.ID)

	return user, nil
}

// Login authenticates with email and password. Unknown account and wrong
// password collapse into the same error so login probing learns nothing.
func (srv *authService) Login(ctx context.Context, email, password string) (*usecase.TokenPair, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	return srv.issueTokens(user)
}

// LoginWithGoogle verifies a Google ID token, provisioning the account on
// first login.
func (srv *authService) LoginWithGoogle(ctx context.Context, idToken string) (*usecase.TokenPair, error) {
	oauthUser, err := srv.googleAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	if !oauthUser.EmailVerified {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, "google email is not verified")
	}

	email := normalizeEmail(oauthUser.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user")
		}

		user = &entity.User{
			ID:    uuid.New(),
			Email: email,
			Name:  oauthUser.Name,
			Roles: entity.Roles{entity.RoleUser},
		}

		if err := srv.userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user")
		}

		srv.logger.Info("User provisioned from google sign-in", "userID", user.ID)
	}

	return srv.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a new pair. Roles are reloaded
// from the store so a revoked admin does not keep minting admin tokens.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issueTokens(user)
}

func (srv *authService) issueTokens(user *entity.User) (*usecase.TokenPair, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
