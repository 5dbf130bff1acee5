package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	mockRepo "directorio/internal/mocks/repository"
	mockSvc "directorio/internal/mocks/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	googleAuth   *mockSvc.MockOAuthAuthService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	googleAuth := mockSvc.NewMockOAuthAuthService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := NewAuthService(userRepo, hasher, tokenService, googleAuth, logger)

	return authServiceFixtures{
		service:      srv,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		googleAuth:   googleAuth,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("Password123!").Return("$2a$hash", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := fx.service.Register(ctx, "Ana Pérez", " Ana@Example.com ", "Password123!")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email, "email is normalized")
	assert.Equal(t, "$2a$hash", user.PasswordHash)
	assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	existing := &entity.User{ID: uuid.New(), Email: "ana@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(existing, nil)

	user, err := fx.service.Register(ctx, "Ana Pérez", "ana@example.com", "Password123!")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "$2a$hash",
		Roles:        entity.Roles{entity.RoleUser},
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "$2a$hash").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"user"}).
		Return("access", "refresh", nil)

	pair, err := fx.service.Login(ctx, "ana@example.com", "Password123!")

	require.NoError(t, err)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
	assert.Equal(t, user.ID, pair.User.ID)
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "$2a$hash",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "$2a$hash").Return(false)

	_, wrongPassword := fx.service.Login(ctx, "ana@example.com", "wrong")

	fx.userRepo.EXPECT().FindByEmail(ctx, "nadie@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, unknownEmail := fx.service.Login(ctx, "nadie@example.com", "whatever")

	assert.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_GoogleOnlyAccountHasNoPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "ana@example.com"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)

	_, err := fx.service.Login(ctx, "ana@example.com", "anything")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_LoginWithGoogle_ProvisionsOnFirstLogin(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "google-token").
		Return(&service.OAuthUser{
			ID:            "google-sub",
			Email:         "Ana@Example.com",
			Name:          "Ana Pérez",
			EmailVerified: true,
		}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "ana@example.com", user.Email)
			assert.Empty(t, user.PasswordHash)

			return nil
		})
	fx.tokenService.EXPECT().GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"user"}).
		Return("access", "refresh", nil)

	pair, err := fx.service.LoginWithGoogle(ctx, "google-token")

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", pair.User.Email)
}

func TestAuthService_LoginWithGoogle_RejectsUnverifiedEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "google-token").
		Return(&service.OAuthUser{Email: "ana@example.com", EmailVerified: false}, nil)

	pair, err := fx.service.LoginWithGoogle(ctx, "google-token")

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthService_Refresh_ReloadsRoles(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:    uuid.New(),
		Email: "admin@example.com",
		Roles: entity.Roles{entity.RoleUser},
	}

	// the old token still carries the admin role; the store does not
	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: user.ID, Roles: []string{"user", "admin"}, Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(user.ID, []string{"user"}).
		Return("new-access", "new-refresh", nil)

	pair, err := fx.service.Refresh(ctx, "refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	pair, err := fx.service.Refresh(context.Background(), "garbage")

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Refresh_DeletedAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	pair, err := fx.service.Refresh(ctx, "refresh-token")

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}
