// Package usecase provides hand-written testify mocks for the usecase
// interfaces consumed by the HTTP handlers.
package usecase

import (
	"context"

	"catalog/internal/domain/entity"
	appusecase "catalog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserUsecase mocks usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Register(ctx context.Context, input appusecase.RegisterUserInput) (*appusecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*appusecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input appusecase.LoginInput) (*appusecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*appusecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) RefreshToken(ctx context.Context, refreshToken string) (*appusecase.RefreshOutput, error) {
	args := m.Called(ctx, refreshToken)
	if output, ok := args.Get(0).(*appusecase.RefreshOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *MockUserUsecase) VerifyEmail(ctx context.Context, input appusecase.VerifyEmailInput) error {
	return m.Called(ctx, input).Error(0)
}

// MockProfileUsecase mocks usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

func (m *MockProfileUsecase) GetUser(ctx context.Context, requesterID, targetID uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, requesterID, targetID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) UpdateUser(ctx context.Context, requesterID, targetID uuid.UUID, input appusecase.UpdateUserInput) (*entity.User, error) {
	args := m.Called(ctx, requesterID, targetID, input)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}
