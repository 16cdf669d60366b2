package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kalasetu/marketplace/internal/domain/entity"
)

// RoleCount number of users holding one role.
type RoleCount struct {
	Role  entity.Role
	Count int
}

// ProductCounts catalog totals by approval state.
type ProductCounts struct {
	Total    int
	Approved int
	Pending  int
}

// ArtisanRank one row of the top-artisans leaderboard.
type ArtisanRank struct {
	ArtisanID     string
	Email         string
	ProductCount  int
	ApprovedCount int
}

// PricingStats aggregate price figures for the admin dashboard.
type PricingStats struct {
	AveragePrice  decimal.Decimal // mean over all products, zero when empty
	ApprovedValue decimal.Decimal // sum of prices of approved products
}

// StatsRepository read-only aggregation queries for the dashboards.
// No method mutates state; everything is recomputed per call.
type StatsRepository interface {
	CountUsersByRole(ctx context.Context) ([]RoleCount, error)
	CountUsersSince(ctx context.Context, since time.Time) (int, error)
	CountProducts(ctx context.Context) (ProductCounts, error)
	CountProductsSince(ctx context.Context, since time.Time) (int, error)
	TopArtisans(ctx context.Context, limit int) ([]ArtisanRank, error)
	PricingStats(ctx context.Context) (PricingStats, error)
}
