// Package repository provides hand-written testify mocks for the domain
// repository interfaces, plus transaction stubs for usecase tests.
package repository

import (
	"context"

	"catalog/internal/domain/entity"
	domainrepo "catalog/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks domain repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

// MockProductRepository mocks domain repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, ownerID)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockImageRepository mocks domain repository.ImageRepository.
type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ProductImage, error) {
	args := m.Called(ctx, id)
	if image, ok := args.Get(0).(*entity.ProductImage); ok {
		return image, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockImageRepository) ListByProductID(ctx context.Context, productID uuid.UUID) ([]*entity.ProductImage, error) {
	args := m.Called(ctx, productID)
	if images, ok := args.Get(0).([]*entity.ProductImage); ok {
		return images, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockImageRepository) Create(ctx context.Context, image *entity.ProductImage) error {
	return m.Called(ctx, image).Error(0)
}

func (m *MockImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockRefreshTokenRepository mocks domain repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if token, ok := args.Get(0).(*entity.RefreshToken); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// StubRepositoryFactory hands back fixed repository mocks, standing in for
// the transaction-bound factory in usecase tests.
type StubRepositoryFactory struct {
	Users         *MockUserRepository
	Products      *MockProductRepository
	Images        *MockImageRepository
	RefreshTokens *MockRefreshTokenRepository
}

func (f *StubRepositoryFactory) UserRepo() domainrepo.UserRepository { return f.Users }

func (f *StubRepositoryFactory) ProductRepo() domainrepo.ProductRepository { return f.Products }

func (f *StubRepositoryFactory) ImageRepo() domainrepo.ImageRepository { return f.Images }

func (f *StubRepositoryFactory) RefreshTokenRepo() domainrepo.RefreshTokenRepository {
	return f.RefreshTokens
}

// StubTransactionManager runs the callback against its factory with no real
// transaction underneath.
type StubTransactionManager struct {
	Factory *StubRepositoryFactory
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(repoFactory domainrepo.RepositoryFactory) error) error {
	return fn(m.Factory)
}
