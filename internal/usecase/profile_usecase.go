package usecase

import (
	"context"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for reading and updating user records.
// Every operation is self-scoped: requesterID must equal targetID or the
// operation fails with a forbidden error regardless of whether the target exists.
type ProfileUsecase interface {
	GetUser(ctx context.Context, requesterID, targetID uuid.UUID) (*entity.User, error)
	UpdateUser(ctx context.Context, requesterID, targetID uuid.UUID, input UpdateUserInput) (*entity.User, error)
}

// --- Input DTOs ---

// UpdateUserInput defines the fields a user may change on their own record.
// Nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string
	Password *string
}
