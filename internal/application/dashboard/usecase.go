package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/kalasetu/marketplace/internal/application/dto"
	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

const (
	recencyWindow   = 7 * 24 * time.Hour
	topArtisanLimit = 5
	latestLimit     = 3
)

// UseCase read-only dashboard aggregation. Every summary is recomputed per
// request straight from the stats queries; nothing is cached or mutated.
type UseCase struct {
	stats    repository.StatsRepository
	products repository.ProductRepository
}

// NewUseCase builds the dashboard use case.
func NewUseCase(stats repository.StatsRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{stats: stats, products: products}
}

// AdminSummary assembles the full admin dashboard.
func (uc *UseCase) AdminSummary(ctx context.Context) (*dto.AdminDashboard, error) {
	sevenDaysAgo := time.Now().Add(-recencyWindow)

	roleCounts, err := uc.stats.CountUsersByRole(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.AdminDashboard{}
	for _, rc := range roleCounts {
		out.TotalUsers += rc.Count
		switch rc.Role {
		case entity.RoleAdmin:
			out.AdminCount = rc.Count
		case entity.RoleArtisan:
			out.ArtisanCount = rc.Count
		case entity.RoleBuyer:
			out.BuyerCount = rc.Count
		case entity.RoleConsultant:
			out.ConsultantCount = rc.Count
		}
	}

	if out.RecentUsers, err = uc.stats.CountUsersSince(ctx, sevenDaysAgo); err != nil {
		return nil, err
	}

	counts, err := uc.stats.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	out.TotalProducts = counts.Total
	out.ApprovedProducts = counts.Approved
	out.PendingProducts = counts.Pending
	if counts.Total > 0 {
		rate := float64(counts.Approved) / float64(counts.Total) * 100
		out.ApprovalRate = math.Round(rate*10) / 10
	}

	if out.RecentProducts, err = uc.stats.CountProductsSince(ctx, sevenDaysAgo); err != nil {
		return nil, err
	}
	if out.PendingList, err = uc.products.ListPending(ctx); err != nil {
		return nil, err
	}
	if out.ApprovedList, err = uc.products.ListApproved(ctx); err != nil {
		return nil, err
	}
	if out.TopArtisans, err = uc.stats.TopArtisans(ctx, topArtisanLimit); err != nil {
		return nil, err
	}

	pricing, err := uc.stats.PricingStats(ctx)
	if err != nil {
		return nil, err
	}
	out.AveragePrice = pricing.AveragePrice
	out.TotalMarketplaceValue = pricing.ApprovedValue

	return out, nil
}

// ArtisanSummary lists the artisan's own products, newest first, with
// approval-state counts.
func (uc *UseCase) ArtisanSummary(ctx context.Context, artisanID string) (*dto.ArtisanDashboard, error) {
	products, err := uc.products.ListByArtisan(ctx, artisanID)
	if err != nil {
		return nil, err
	}
	out := &dto.ArtisanDashboard{Products: products, TotalProducts: len(products)}
	for _, p := range products {
		if p.IsApproved {
			out.ApprovedProducts++
		} else {
			out.PendingProducts++
		}
	}
	return out, nil
}

// BuyerSummary pairs the session cart size with the newest visible products.
func (uc *UseCase) BuyerSummary(ctx context.Context, cartUnits int) (*dto.BuyerDashboard, error) {
	latest, err := uc.products.ListLatestVisible(ctx, latestLimit)
	if err != nil {
		return nil, err
	}
	return &dto.BuyerDashboard{CartItemCount: cartUnits, LatestProducts: latest}, nil
}

// ConsultantQueue lists approved products still awaiting verification,
// newest first.
func (uc *UseCase) ConsultantQueue(ctx context.Context) ([]repository.ProductWithArtisan, error) {
	return uc.products.ListVerificationQueue(ctx)
}
