package repository

import (
	"context"

	"github.com/kalasetu/marketplace/internal/domain/entity"
)

// UserRepository is the persistence port for User (DIP).
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail matches the stored email exactly (case-sensitive).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// EmailTaken checks case-insensitively, mirroring the unique index used
	// at registration time.
	EmailTaken(ctx context.Context, email string) (bool, error)
}
