package story

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kalasetu/marketplace/internal/application/dto"
	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

// UseCase artisan stories and public artisan profiles.
type UseCase struct {
	stories  repository.StoryRepository
	users    repository.UserRepository
	products repository.ProductRepository
}

// NewUseCase builds the story use case.
func NewUseCase(stories repository.StoryRepository, users repository.UserRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{stories: stories, users: users, products: products}
}

// Add publishes a story on the calling artisan's own profile.
func (uc *UseCase) Add(ctx context.Context, artisan *entity.User, in dto.StoryForm, imageRef string) (*entity.ArtisanStory, error) {
	if artisan == nil || artisan.Role != entity.RoleArtisan {
		return nil, domain.ErrForbidden
	}
	s := &entity.ArtisanStory{
		ID:        uuid.New().String(),
		ArtisanID: artisan.ID,
		Title:     in.Title,
		Content:   in.Content,
		ImageRef:  imageRef,
		CreatedAt: time.Now(),
	}
	if err := uc.stories.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Profile assembles an artisan's public page: the account, their stories and
// their publicly visible products. Unknown IDs and non-artisan accounts are
// both domain.ErrNotFound.
func (uc *UseCase) Profile(ctx context.Context, artisanID string) (*dto.ArtisanProfile, error) {
	user, err := uc.users.GetByID(ctx, artisanID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != entity.RoleArtisan {
		return nil, domain.ErrNotFound
	}
	stories, err := uc.stories.ListByArtisan(ctx, artisanID)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.ListVisibleByArtisan(ctx, artisanID)
	if err != nil {
		return nil, err
	}
	return &dto.ArtisanProfile{Artisan: user, Stories: stories, Products: products}, nil
}
