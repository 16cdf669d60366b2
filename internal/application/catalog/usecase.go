package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kalasetu/marketplace/internal/application/dto"
	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

// UseCase product catalog workflow: artisan uploads, public listing, admin
// moderation and consultant verification.
type UseCase struct {
	products repository.ProductRepository
}

// NewUseCase builds the catalog use case.
func NewUseCase(products repository.ProductRepository) *UseCase {
	return &UseCase{products: products}
}

// Upload creates a listing owned by the calling artisan. New products start
// unapproved with verification PENDING, so nothing reaches the public
// catalog before an admin acts.
func (uc *UseCase) Upload(ctx context.Context, artisan *entity.User, in dto.UploadProductForm, imageRef string) (*entity.Product, error) {
	if artisan == nil || artisan.Role != entity.RoleArtisan {
		return nil, domain.ErrForbidden
	}
	price, err := decimal.NewFromString(in.Price)
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:                 uuid.New().String(),
		ArtisanID:          artisan.ID,
		Name:               in.Name,
		Description:        in.Description,
		Price:              price,
		ImageRef:           imageRef,
		IsApproved:         false,
		CreatedAt:          time.Now(),
		Region:             in.Region,
		CulturalStory:      in.CulturalStory,
		CraftProcess:       in.CraftProcess,
		ImpactScore:        in.ImpactScore,
		VerificationStatus: entity.VerificationPending,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// PublicList returns the marketplace catalog: approved, not
// verification-rejected, newest first.
func (uc *UseCase) PublicList(ctx context.Context) ([]*entity.Product, error) {
	return uc.products.ListVisible(ctx)
}

// PublicDetail returns one publicly visible product, (nil, nil) when the
// product is absent, unapproved or verification-rejected.
func (uc *UseCase) PublicDetail(ctx context.Context, id string) (*entity.Product, error) {
	return uc.products.GetVisibleByID(ctx, id)
}

// Latest returns the n newest publicly visible products (landing page,
// buyer dashboard widgets).
func (uc *UseCase) Latest(ctx context.Context, n int) ([]*entity.Product, error) {
	return uc.products.ListLatestVisible(ctx, n)
}

// ListByArtisan returns every product owned by artisanID, newest first,
// regardless of approval state (artisan's own dashboard).
func (uc *UseCase) ListByArtisan(ctx context.Context, artisanID string) ([]*entity.Product, error) {
	return uc.products.ListByArtisan(ctx, artisanID)
}

// Approve makes a pending product publicly visible. Approving a product
// that is absent or already approved returns domain.ErrNotFound.
func (uc *UseCase) Approve(ctx context.Context, id string) error {
	return uc.products.Approve(ctx, id)
}

// Reject removes a pending product outright. Irreversible; only pending
// products can be rejected, anything else is domain.ErrNotFound.
func (uc *UseCase) Reject(ctx context.Context, id string) error {
	return uc.products.DeletePending(ctx, id)
}

// Verify records the consultant's attestation, moving verification from
// PENDING to VERIFIED or REJECTED. A second review is domain.ErrConflict.
func (uc *UseCase) Verify(ctx context.Context, consultant *entity.User, id string, in dto.VerifyForm) error {
	if consultant == nil || consultant.Role != entity.RoleConsultant {
		return domain.ErrForbidden
	}
	status := entity.VerificationStatus(in.Status)
	if status != entity.VerificationVerified && status != entity.VerificationRejected {
		return domain.ErrInvalidInput
	}
	return uc.products.SetVerification(ctx, id, status, in.Note, consultant.ID, time.Now())
}
