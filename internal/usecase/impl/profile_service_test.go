package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	mockRepo "catalog/internal/mocks/repository"
	mockService "catalog/internal/mocks/service"
	"catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockService.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockService.MockPasswordHasher{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   logger,
	})

	return profileServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestProfileService_GetUser_Self(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	expected := &entity.User{ID: userID, Email: "alice@example.com"}
	fx.userRepo.On("FindByID", ctx, userID).Return(expected, nil)

	user, err := fx.service.GetUser(ctx, userID, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestProfileService_GetUser_OtherUserForbidden(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	_, err := fx.service.GetUser(ctx, uuid.New(), uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	// The lookup never happens, so the caller learns nothing about the target.
	fx.userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestProfileService_UpdateUser_Self(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	newName := "Alice Cooper"

	fx.userRepo.On("FindByID", ctx, userID).Return(&entity.User{
		ID:   userID,
		Name: "Alice",
	}, nil)
	fx.userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == newName
	})).Return(nil)

	user, err := fx.service.UpdateUser(ctx, userID, userID, usecase.UpdateUserInput{
		Name: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, newName, user.Name)
	fx.userRepo.AssertExpectations(t)
}

func TestProfileService_UpdateUser_PasswordChangeRehashes(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	newPassword := "N3wSecret!"

	fx.userRepo.On("FindByID", ctx, userID).Return(&entity.User{
		ID:           userID,
		PasswordHash: "$2a$10$old",
	}, nil)
	fx.hasher.On("ValidatePasswordStrength", newPassword).Return(nil)
	fx.hasher.On("Hash", newPassword).Return("$2a$10$new", nil)
	fx.userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.PasswordHash == "$2a$10$new"
	})).Return(nil)

	user, err := fx.service.UpdateUser(ctx, userID, userID, usecase.UpdateUserInput{
		Password: &newPassword,
	})

	require.NoError(t, err)
	assert.Equal(t, "$2a$10$new", user.PasswordHash)
}

func TestProfileService_UpdateUser_OtherUserForbidden(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	name := "Mallory"

	_, err := fx.service.UpdateUser(ctx, uuid.New(), uuid.New(), usecase.UpdateUserInput{
		Name: &name,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
