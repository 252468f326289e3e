package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	mockRepo "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for account service tests.
type userServiceFixtures struct {
	service       usecase.UserUsecase
	userRepo      *mockRepo.MockUserRepository
	tokenRepo     *mockRepo.MockRefreshTokenRepository
	hasher        *mockService.MockPasswordHasher
	tokenService  *mockService.MockTokenService
	tokenGen      *mockService.MockVerificationTokenGenerator
	publisher     *mockService.MockEventPublisher
	verificationT time.Duration
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	tokenRepo := &mockRepo.MockRefreshTokenRepository{}
	hasher := &mockService.MockPasswordHasher{}
	tokenService := &mockService.MockTokenService{}
	tokenGen := &mockService.MockVerificationTokenGenerator{}
	publisher := &mockService.MockEventPublisher{}

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			Users:         userRepo,
			RefreshTokens: tokenRepo,
		},
	}

	ttl := time.Minute
	cfg := &config.Config{
		Verification: &config.VerificationConfig{TokenTTL: ttl},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: tokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		TokenGenerator:   tokenGen,
		Publisher:        publisher,
		Config:           cfg,
		Logger:           logger,
	})

	return userServiceFixtures{
		service:       service,
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		hasher:        hasher,
		tokenService:  tokenService,
		tokenGen:      tokenGen,
		publisher:     publisher,
		verificationT: ttl,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("ValidatePasswordStrength", "Sup3rSecret").Return(nil)
	fx.hasher.On("Hash", "Sup3rSecret").Return("$2a$10$hashed", nil)
	fx.tokenGen.On("NewToken").Return("opaque-token", nil)

	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)

	fx.publisher.On("PublishVerificationEvent", ctx, mock.AnythingOfType("*service.VerificationEvent")).Return(nil)

	output, err := fx.service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, "$2a$10$hashed", output.User.PasswordHash)
	assert.False(t, output.User.EmailVerified)
	require.NotNil(t, output.User.VerificationToken)
	assert.Equal(t, "opaque-token", *output.User.VerificationToken)
	require.NotNil(t, output.User.VerificationExpiresAt)
	assert.WithinDuration(t, time.Now().Add(fx.verificationT), *output.User.VerificationExpiresAt, 2*time.Second)

	fx.publisher.AssertExpectations(t)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_Register_PublishFailureStillSucceeds(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("ValidatePasswordStrength", mock.Anything).Return(nil)
	fx.hasher.On("Hash", mock.Anything).Return("$2a$10$hashed", nil)
	fx.tokenGen.On("NewToken").Return("opaque-token", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.publisher.On("PublishVerificationEvent", ctx, mock.Anything).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("ValidatePasswordStrength", "weak").Return(domainerrors.ErrPasswordStrength)

	output, err := fx.service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "weak",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.On("ValidatePasswordStrength", mock.Anything).Return(nil)
	fx.hasher.On("Hash", mock.Anything).Return("$2a$10$hashed", nil)
	fx.tokenGen.On("NewToken").Return("opaque-token", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	fx.publisher.AssertNotCalled(t, "PublishVerificationEvent", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$stored",
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.hasher.On("Check", "Sup3rSecret", "$2a$10$stored").Return(true)
	fx.tokenService.On("GenerateTokens", userID).Return("access", "refresh", nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	fx.tokenService.On("RefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.tokenRepo.On("CreateRefreshToken", ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.UserID == userID && token.TokenHash == "refresh-hash"
	})).Return(nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Sup3rSecret",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
	fx.tokenRepo.AssertExpectations(t)
}

func TestUserService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	// Unknown email still burns a hash comparison.
	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Check", "whatever", dummyPasswordHash).Return(false)

	_, unknownErr := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// Wrong password against a real account.
	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "$2a$10$stored"}, nil)
	fx.hasher.On("Check", "wrong", "$2a$10$stored").Return(false)

	_, wrongErr := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	fx.hasher.AssertCalled(t, "Check", "whatever", dummyPasswordHash)
}

func TestUserService_RefreshToken_RotatesStoredToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.On("ValidateRefreshToken", "old-refresh").Return(userID, nil)
	fx.tokenService.On("HashToken", "old-refresh").Return("old-hash")
	fx.tokenRepo.On("FindRefreshTokenByHash", ctx, "old-hash").Return(&entity.RefreshToken{
		UserID:    userID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil)
	fx.tokenRepo.On("DeleteRefreshTokenByHash", ctx, "old-hash").Return(nil)
	fx.tokenService.On("GenerateTokens", userID).Return("new-access", "new-refresh", nil)
	fx.tokenService.On("HashToken", "new-refresh").Return("new-hash")
	fx.tokenService.On("RefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.tokenRepo.On("CreateRefreshToken", ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
		return token.TokenHash == "new-hash"
	})).Return(nil)

	output, err := fx.service.RefreshToken(ctx, "old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	fx.tokenRepo.AssertExpectations(t)
}

func TestUserService_RefreshToken_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.On("ValidateRefreshToken", "stale").Return(uuid.New(), nil)
	fx.tokenService.On("HashToken", "stale").Return("stale-hash")
	fx.tokenRepo.On("FindRefreshTokenByHash", ctx, "stale-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshToken(ctx, "stale")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_IsIdempotent(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.On("HashToken", "gone").Return("gone-hash")
	fx.tokenRepo.On("DeleteRefreshTokenByHash", ctx, "gone-hash").
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, "gone")

	require.NoError(t, err)
}

func TestUserService_VerifyEmail_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	token := "opaque-token"
	expiresAt := time.Now().Add(time.Minute)
	user := &entity.User{
		ID:                    uuid.New(),
		Email:                 "alice@example.com",
		EmailVerified:         false,
		VerificationToken:     &token,
		VerificationExpiresAt: &expiresAt,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.EmailVerified && u.VerificationToken == nil && u.VerificationExpiresAt == nil
	})).Return(nil)

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "alice@example.com",
		Token: "opaque-token",
	})

	require.NoError(t, err)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_VerifyEmail_AlreadyVerifiedIsIdempotent(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:            uuid.New(),
		Email:         "alice@example.com",
		EmailVerified: true,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "alice@example.com",
		Token: "anything",
	})

	require.NoError(t, err)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_VerifyEmail_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "ghost@example.com",
		Token: "anything",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_VerifyEmail_TokenMismatch(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	token := "the-real-token"
	expiresAt := time.Now().Add(time.Minute)
	user := &entity.User{
		ID:                    uuid.New(),
		Email:                 "alice@example.com",
		VerificationToken:     &token,
		VerificationExpiresAt: &expiresAt,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "alice@example.com",
		Token: "a-guess",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVerificationTokenMismatch)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_VerifyEmail_NoPendingToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	// An unverified account with no outstanding token treats every token as
	// a mismatch.
	user := &entity.User{
		ID:    uuid.New(),
		Email: "alice@example.com",
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "alice@example.com",
		Token: "anything",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVerificationTokenMismatch)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_VerifyEmail_ExpiredToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	token := "opaque-token"
	expiresAt := time.Now().Add(-time.Second)
	user := &entity.User{
		ID:                    uuid.New(),
		Email:                 "alice@example.com",
		VerificationToken:     &token,
		VerificationExpiresAt: &expiresAt,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "alice@example.com",
		Token: "opaque-token",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrVerificationTokenExpired)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_VerifyEmail_ValidThroughExpiryInstant(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	// An expiry comfortably in the future but checked against the strict
	// after-expiry rule: the token is still good.
	token := "opaque-token"
	expiresAt := time.Now().Add(50 * time.Millisecond)
	user := &entity.User{
		ID:                    uuid.New(),
		Email:                 "alice@example.com",
		VerificationToken:     &token,
		VerificationExpiresAt: &expiresAt,
	}

	fx.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	err := fx.service.VerifyEmail(ctx, usecase.VerifyEmailInput{
		Email: "alice@example.com",
		Token: "opaque-token",
	})

	require.NoError(t, err)
}
