package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

type fakeStats struct {
	roleCounts    []repository.RoleCount
	recentUsers   int
	productCounts repository.ProductCounts
	recentProds   int
	topArtisans   []repository.ArtisanRank
	pricing       repository.PricingStats
}

func (f *fakeStats) CountUsersByRole(context.Context) ([]repository.RoleCount, error) {
	return f.roleCounts, nil
}
func (f *fakeStats) CountUsersSince(context.Context, time.Time) (int, error) {
	return f.recentUsers, nil
}
func (f *fakeStats) CountProducts(context.Context) (repository.ProductCounts, error) {
	return f.productCounts, nil
}
func (f *fakeStats) CountProductsSince(context.Context, time.Time) (int, error) {
	return f.recentProds, nil
}
func (f *fakeStats) TopArtisans(context.Context, int) ([]repository.ArtisanRank, error) {
	return f.topArtisans, nil
}
func (f *fakeStats) PricingStats(context.Context) (repository.PricingStats, error) {
	return f.pricing, nil
}

type fakeProducts struct {
	repository.ProductRepository
	byArtisan map[string][]*entity.Product
	latest    []*entity.Product
	pending   []repository.ProductWithArtisan
	approved  []repository.ProductWithArtisan
	queue     []repository.ProductWithArtisan
}

func (f *fakeProducts) ListByArtisan(_ context.Context, id string) ([]*entity.Product, error) {
	return f.byArtisan[id], nil
}
func (f *fakeProducts) ListLatestVisible(_ context.Context, limit int) ([]*entity.Product, error) {
	if len(f.latest) > limit {
		return f.latest[:limit], nil
	}
	return f.latest, nil
}
func (f *fakeProducts) ListPending(context.Context) ([]repository.ProductWithArtisan, error) {
	return f.pending, nil
}
func (f *fakeProducts) ListApproved(context.Context) ([]repository.ProductWithArtisan, error) {
	return f.approved, nil
}
func (f *fakeProducts) ListVerificationQueue(context.Context) ([]repository.ProductWithArtisan, error) {
	return f.queue, nil
}

func TestAdminSummary_AssemblesStats(t *testing.T) {
	stats := &fakeStats{
		roleCounts: []repository.RoleCount{
			{Role: entity.RoleAdmin, Count: 1},
			{Role: entity.RoleArtisan, Count: 4},
			{Role: entity.RoleBuyer, Count: 10},
			{Role: entity.RoleConsultant, Count: 2},
		},
		recentUsers:   3,
		productCounts: repository.ProductCounts{Total: 8, Approved: 5, Pending: 3},
		recentProds:   2,
		topArtisans: []repository.ArtisanRank{
			{ArtisanID: "a1", Email: "a1@example.com", ProductCount: 5, ApprovedCount: 4},
		},
		pricing: repository.PricingStats{
			AveragePrice:  decimal.RequireFromString("120.50"),
			ApprovedValue: decimal.RequireFromString("602.50"),
		},
	}
	products := &fakeProducts{
		pending:  []repository.ProductWithArtisan{{ArtisanEmail: "a1@example.com"}},
		approved: []repository.ProductWithArtisan{{}, {}},
	}
	uc := NewUseCase(stats, products)

	out, err := uc.AdminSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 17, out.TotalUsers)
	assert.Equal(t, 1, out.AdminCount)
	assert.Equal(t, 4, out.ArtisanCount)
	assert.Equal(t, 10, out.BuyerCount)
	assert.Equal(t, 2, out.ConsultantCount)
	assert.Equal(t, 3, out.RecentUsers)

	assert.Equal(t, 8, out.TotalProducts)
	assert.Equal(t, 5, out.ApprovedProducts)
	assert.Equal(t, 3, out.PendingProducts)
	assert.InDelta(t, 62.5, out.ApprovalRate, 0.001)
	assert.Equal(t, 2, out.RecentProducts)

	assert.Len(t, out.PendingList, 1)
	assert.Len(t, out.ApprovedList, 2)
	assert.Len(t, out.TopArtisans, 1)
	assert.True(t, out.AveragePrice.Equal(decimal.RequireFromString("120.50")))
	assert.True(t, out.TotalMarketplaceValue.Equal(decimal.RequireFromString("602.50")))
}

func TestAdminSummary_EmptyMarketplaceHasZeroRate(t *testing.T) {
	uc := NewUseCase(&fakeStats{}, &fakeProducts{})

	out, err := uc.AdminSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.ApprovalRate, "no products means no division, rate stays 0")
	assert.Zero(t, out.TotalUsers)
}

func TestArtisanSummary_CountsApprovalStates(t *testing.T) {
	products := &fakeProducts{byArtisan: map[string][]*entity.Product{
		"a1": {
			{ID: "p1", IsApproved: true},
			{ID: "p2", IsApproved: false},
			{ID: "p3", IsApproved: false},
		},
	}}
	uc := NewUseCase(&fakeStats{}, products)

	out, err := uc.ArtisanSummary(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalProducts)
	assert.Equal(t, 1, out.ApprovedProducts)
	assert.Equal(t, 2, out.PendingProducts)
}

func TestBuyerSummary_CapsLatestAtThree(t *testing.T) {
	products := &fakeProducts{latest: []*entity.Product{
		{ID: "p1"}, {ID: "p2"}, {ID: "p3"}, {ID: "p4"},
	}}
	uc := NewUseCase(&fakeStats{}, products)

	out, err := uc.BuyerSummary(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, out.CartItemCount)
	assert.Len(t, out.LatestProducts, 3)
}
