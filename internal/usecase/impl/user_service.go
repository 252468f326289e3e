// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"catalog/config"
	deliverycontext "catalog/internal/delivery/context"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordHash is compared against when login hits an unknown email so
// that the unknown-email and wrong-password paths take comparable time.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	tokenGenerator   service.VerificationTokenGenerator
	publisher        service.EventPublisher
	verificationTTL  time.Duration
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	TokenGenerator   service.VerificationTokenGenerator
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		tokenGenerator:   params.TokenGenerator,
		publisher:        params.Publisher,
		verificationTTL:  params.Config.Verification.TokenTTL,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete user registration process: password
// policy check, hashing, verification token issue, persistence, and the
// best-effort verification event publish.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	token, err := srv.tokenGenerator.NewToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification token")
	}
	expiresAt := time.Now().Add(srv.verificationTTL)

	user := &entity.User{
		Email:                 input.Email,
		Name:                  input.Name,
		PasswordHash:          hashed,
		EmailVerified:         false,
		VerificationToken:     &token,
		VerificationExpiresAt: &expiresAt,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.publishVerificationEvent(ctx, user, token, expiresAt)

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// publishVerificationEvent hands the freshly issued token to the notification
// pipeline. A failed publish is logged and swallowed; the registration that
// produced it has already committed.
func (srv *userService) publishVerificationEvent(ctx context.Context, user *entity.User, token string, expiresAt time.Time) {
	event := &service.VerificationEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    user.ID.String(),
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}

	if err := srv.publisher.PublishVerificationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish verification event",
			slog.Any("userID", user.ID),
			slog.Any("error", err),
		)
	}
}

// Login authenticates a user and issues an access/refresh token pair.
// Unknown email and wrong password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a bcrypt comparison so this path costs the same as a
			// wrong password against a real account.
			srv.hasher.Check(input.Password, dummyPasswordHash)

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	stored := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken rotates a refresh token: the presented token is revoked and a
// new pair is issued in the same transaction.
func (srv *userService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	userID, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	var output *usecase.RefreshOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.RefreshTokenRepo()

		stored, err := tokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if time.Now().After(stored.ExpiresAt) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token expired")
		}

		if err := tokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke refresh token")
		}

		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(userID)
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		replacement := &entity.RefreshToken{
			UserID:    userID,
			TokenHash: srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}
		if err := tokenRepo.CreateRefreshToken(ctx, replacement); err != nil {
			return errors.Wrap(err, "failed to store rotated refresh token")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// Logout revokes the presented refresh token. Logging out with a token that
// is already gone still succeeds.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := srv.tokenService.HashToken(refreshToken)

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash)
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// VerifyEmail runs the verification token state machine for an account.
func (srv *userService) VerifyEmail(ctx context.Context, input usecase.VerifyEmailInput) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user for verification")
		}

		// Re-verifying an already verified account is a success with no
		// state change.
		if user.EmailVerified {
			return nil
		}

		if !user.VerificationPending() || *user.VerificationToken != input.Token {
			return domainerrors.ErrVerificationTokenMismatch
		}

		// The token remains valid through the exact expiry instant.
		if time.Now().After(*user.VerificationExpiresAt) {
			return domainerrors.ErrVerificationTokenExpired
		}

		user.MarkVerified()

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to persist verification")
		}

		srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID))

		return nil
	})
}
