package repository

import (
	"context"
	"time"

	"github.com/kalasetu/marketplace/internal/domain/entity"
)

// ProductWithArtisan decorates a product with its owner's email for
// moderation and review tables.
type ProductWithArtisan struct {
	entity.Product
	ArtisanEmail string
}

// ProductRepository is the persistence port for Product (DIP).
// "Visible" means publicly listable: approved and not verification-rejected.
// Lookups return (nil, nil) when no row matches.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetVisibleByID(ctx context.Context, id string) (*entity.Product, error)

	ListVisible(ctx context.Context) ([]*entity.Product, error)
	ListLatestVisible(ctx context.Context, limit int) ([]*entity.Product, error)
	ListByArtisan(ctx context.Context, artisanID string) ([]*entity.Product, error)
	ListVisibleByArtisan(ctx context.Context, artisanID string) ([]*entity.Product, error)

	// Moderation views, newest first, with artisan email joined in.
	ListPending(ctx context.Context) ([]ProductWithArtisan, error)
	ListApproved(ctx context.Context) ([]ProductWithArtisan, error)
	// Verification queue: approved products still awaiting a consultant.
	ListVerificationQueue(ctx context.Context) ([]ProductWithArtisan, error)

	// Approve flips is_approved on a pending product.
	// Returns domain.ErrNotFound when no pending product matches.
	Approve(ctx context.Context, id string) error
	// DeletePending removes a pending product (admin rejection, irreversible).
	// Returns domain.ErrNotFound when no pending product matches.
	DeletePending(ctx context.Context, id string) error
	// SetVerification moves a product from PENDING to VERIFIED or REJECTED.
	// Returns domain.ErrConflict when the product was already reviewed and
	// domain.ErrNotFound when it does not exist.
	SetVerification(ctx context.Context, id string, status entity.VerificationStatus, note, consultantID string, at time.Time) error
}
