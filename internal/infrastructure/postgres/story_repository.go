package postgres

import (
	"context"
	"fmt"

	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

var _ repository.StoryRepository = (*StoryRepo)(nil)

// StoryRepo implementation of the StoryRepository port over PostgreSQL.
type StoryRepo struct {
	q Querier
}

// NewStoryRepository builds the persistence adapter for artisan stories.
func NewStoryRepository(q Querier) *StoryRepo {
	return &StoryRepo{q: q}
}

// Create persists a new story.
func (r *StoryRepo) Create(ctx context.Context, story *entity.ArtisanStory) error {
	query := `
		INSERT INTO artisan_stories (id, artisan_id, title, content, image_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		story.ID, story.ArtisanID, story.Title, story.Content, story.ImageRef, story.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert story: %w", err)
	}
	return nil
}

// ListByArtisan lists one artisan's stories, newest first.
func (r *StoryRepo) ListByArtisan(ctx context.Context, artisanID string) ([]*entity.ArtisanStory, error) {
	query := `
		SELECT id, artisan_id, title, content, image_ref, created_at
		FROM artisan_stories WHERE artisan_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, artisanID)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ArtisanStory
	for rows.Next() {
		var s entity.ArtisanStory
		if err := rows.Scan(&s.ID, &s.ArtisanID, &s.Title, &s.Content, &s.ImageRef, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
