package repository

import (
	"context"

	"github.com/kalasetu/marketplace/internal/domain/entity"
)

// StoryRepository is the persistence port for ArtisanStory (DIP).
type StoryRepository interface {
	Create(ctx context.Context, story *entity.ArtisanStory) error
	ListByArtisan(ctx context.Context, artisanID string) ([]*entity.ArtisanStory, error)
}
