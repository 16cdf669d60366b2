package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kalasetu/marketplace/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo read-only aggregation queries behind the dashboards. Everything
// is computed in SQL per call; there is no caching layer.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository builds the stats adapter.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountUsersByRole groups accounts by role.
func (r *StatsRepo) CountUsersByRole(ctx context.Context) ([]repository.RoleCount, error) {
	const query = `
	SELECT role, COUNT(*)
	FROM users
	GROUP BY role
	ORDER BY role`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stats.CountUsersByRole: %w", err)
	}
	defer rows.Close()

	var results []repository.RoleCount
	for rows.Next() {
		var row repository.RoleCount
		if err := rows.Scan(&row.Role, &row.Count); err != nil {
			return nil, fmt.Errorf("stats.CountUsersByRole scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountUsersSince counts accounts created at or after `since`.
func (r *StatsRepo) CountUsersSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE date_joined >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountUsersSince: %w", err)
	}
	return n, nil
}

// CountProducts returns catalog totals by approval state in one pass.
func (r *StatsRepo) CountProducts(ctx context.Context) (repository.ProductCounts, error) {
	const query = `
	SELECT
	    COUNT(*)                                       AS total,
	    COUNT(*) FILTER (WHERE is_approved)            AS approved,
	    COUNT(*) FILTER (WHERE NOT is_approved)        AS pending
	FROM products`

	var c repository.ProductCounts
	err := r.pool.QueryRow(ctx, query).Scan(&c.Total, &c.Approved, &c.Pending)
	if err != nil {
		return repository.ProductCounts{}, fmt.Errorf("stats.CountProducts: %w", err)
	}
	return c, nil
}

// CountProductsSince counts products created at or after `since`.
func (r *StatsRepo) CountProductsSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE created_at >= $1`, since).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountProductsSince: %w", err)
	}
	return n, nil
}

// TopArtisans ranks artisans by product count (approved count alongside).
// Artisans with zero products still appear, ranked last.
func (r *StatsRepo) TopArtisans(ctx context.Context, limit int) ([]repository.ArtisanRank, error) {
	const query = `
	SELECT
	    u.id,
	    u.email,
	    COUNT(p.id)                                    AS product_count,
	    COUNT(p.id) FILTER (WHERE p.is_approved)       AS approved_count
	FROM users u
	LEFT JOIN products p ON p.artisan_id = u.id
	WHERE u.role = 'ARTISAN'
	GROUP BY u.id, u.email
	ORDER BY product_count DESC, u.email
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.TopArtisans: %w", err)
	}
	defer rows.Close()

	var results []repository.ArtisanRank
	for rows.Next() {
		var row repository.ArtisanRank
		if err := rows.Scan(&row.ArtisanID, &row.Email, &row.ProductCount, &row.ApprovedCount); err != nil {
			return nil, fmt.Errorf("stats.TopArtisans scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// PricingStats returns the mean price over all products and the summed value
// of approved inventory. COALESCE keeps both at zero on an empty catalog.
func (r *StatsRepo) PricingStats(ctx context.Context) (repository.PricingStats, error) {
	const query = `
	SELECT
	    COALESCE(AVG(price), 0)                                   AS avg_price,
	    COALESCE(SUM(price) FILTER (WHERE is_approved), 0)        AS approved_value
	FROM products`

	var s repository.PricingStats
	err := r.pool.QueryRow(ctx, query).Scan(&s.AveragePrice, &s.ApprovedValue)
	if err != nil {
		return repository.PricingStats{}, fmt.Errorf("stats.PricingStats: %w", err)
	}
	return s, nil
}
