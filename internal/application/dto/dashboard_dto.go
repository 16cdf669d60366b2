package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

// AdminDashboard aggregate statistics for the admin view.
// Recomputed on every request; nothing here mutates state.
type AdminDashboard struct {
	// User statistics
	TotalUsers      int
	AdminCount      int
	ArtisanCount    int
	BuyerCount      int
	ConsultantCount int
	RecentUsers     int // joined within the last 7 days

	// Product statistics
	TotalProducts    int
	ApprovedProducts int
	PendingProducts  int
	ApprovalRate     float64 // percent, one decimal
	RecentProducts   int     // created within the last 7 days

	// Moderation tables
	PendingList  []repository.ProductWithArtisan
	ApprovedList []repository.ProductWithArtisan

	// Artisan leaderboard (top 5 by product count)
	TopArtisans []repository.ArtisanRank

	// Pricing
	AveragePrice          decimal.Decimal
	TotalMarketplaceValue decimal.Decimal // sum of approved product prices
}

// ArtisanDashboard an artisan's own listings and counts.
type ArtisanDashboard struct {
	Products         []*entity.Product
	TotalProducts    int
	ApprovedProducts int
	PendingProducts  int
}

// BuyerDashboard cart size plus the newest visible products.
type BuyerDashboard struct {
	CartItemCount  int
	LatestProducts []*entity.Product
}

// ArtisanProfile public profile page data.
type ArtisanProfile struct {
	Artisan  *entity.User
	Stories  []*entity.ArtisanStory
	Products []*entity.Product
}
