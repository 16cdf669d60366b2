package story

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalasetu/marketplace/internal/application/dto"
	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

type fakeStories struct {
	repository.StoryRepository
	byArtisan map[string][]*entity.ArtisanStory
}

func (f *fakeStories) Create(_ context.Context, s *entity.ArtisanStory) error {
	f.byArtisan[s.ArtisanID] = append(f.byArtisan[s.ArtisanID], s)
	return nil
}

func (f *fakeStories) ListByArtisan(_ context.Context, artisanID string) ([]*entity.ArtisanStory, error) {
	return f.byArtisan[artisanID], nil
}

type fakeUsers struct {
	repository.UserRepository
	byID map[string]*entity.User
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}

type fakeProducts struct {
	repository.ProductRepository
	visibleByArtisan map[string][]*entity.Product
}

func (f *fakeProducts) ListVisibleByArtisan(_ context.Context, artisanID string) ([]*entity.Product, error) {
	return f.visibleByArtisan[artisanID], nil
}

func fixture() (*UseCase, *fakeStories, *fakeUsers, *fakeProducts) {
	stories := &fakeStories{byArtisan: map[string][]*entity.ArtisanStory{}}
	users := &fakeUsers{byID: map[string]*entity.User{
		"art-1": {ID: "art-1", Email: "maya@kalasetu.test", Role: entity.RoleArtisan, IsActive: true},
		"buy-1": {ID: "buy-1", Email: "ravi@kalasetu.test", Role: entity.RoleBuyer, IsActive: true},
	}}
	products := &fakeProducts{visibleByArtisan: map[string][]*entity.Product{}}
	return NewUseCase(stories, users, products), stories, users, products
}

func TestAdd_PublishesOnOwnProfile(t *testing.T) {
	uc, stories, users, _ := fixture()

	s, err := uc.Add(context.Background(), users.byID["art-1"], dto.StoryForm{
		Title:   "Weaving through monsoon",
		Content: "Three generations of looms in one room.",
	}, "story_images/abc.jpg")
	require.NoError(t, err)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "art-1", s.ArtisanID)
	assert.Equal(t, "story_images/abc.jpg", s.ImageRef)
	assert.WithinDuration(t, time.Now(), s.CreatedAt, time.Minute)
	assert.Len(t, stories.byArtisan["art-1"], 1)
}

func TestAdd_NonArtisanForbidden(t *testing.T) {
	uc, stories, users, _ := fixture()

	_, err := uc.Add(context.Background(), users.byID["buy-1"], dto.StoryForm{
		Title: "x", Content: "y",
	}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, stories.byArtisan["buy-1"])

	_, err = uc.Add(context.Background(), nil, dto.StoryForm{Title: "x", Content: "y"}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProfile_AssemblesStoriesAndVisibleProducts(t *testing.T) {
	uc, stories, _, products := fixture()
	stories.byArtisan["art-1"] = []*entity.ArtisanStory{
		{ID: "s1", ArtisanID: "art-1", Title: "First story"},
	}
	products.visibleByArtisan["art-1"] = []*entity.Product{
		{ID: "p1", ArtisanID: "art-1", Name: "Clay Vase", IsApproved: true},
	}

	profile, err := uc.Profile(context.Background(), "art-1")
	require.NoError(t, err)

	assert.Equal(t, "maya@kalasetu.test", profile.Artisan.Email)
	require.Len(t, profile.Stories, 1)
	assert.Equal(t, "First story", profile.Stories[0].Title)
	require.Len(t, profile.Products, 1)
	assert.Equal(t, "Clay Vase", profile.Products[0].Name)
}

func TestProfile_UnknownOrNonArtisanIsNotFound(t *testing.T) {
	uc, _, _, _ := fixture()

	_, err := uc.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// A buyer's id must not expose a profile page.
	_, err = uc.Profile(context.Background(), "buy-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
