package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementation of the ProductRepository port over PostgreSQL.
// The public-visibility filter (approved AND verification not rejected) is
// pushed into SQL so unapproved rows can never leak out of a listing.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter for products. Pass a
// pool or a tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	id, artisan_id, name, description, price, image_ref, is_approved, created_at,
	region, cultural_story, craft_process, impact_score,
	verification_status, verified_by, verification_note, verified_at`

const visibleWhere = `is_approved AND verification_status <> 'REJECTED'`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.ArtisanID, &p.Name, &p.Description, &p.Price, &p.ImageRef, &p.IsApproved, &p.CreatedAt,
		&p.Region, &p.CulturalStory, &p.CraftProcess, &p.ImpactScore,
		&p.VerificationStatus, &p.VerifiedBy, &p.VerificationNote, &p.VerifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.ArtisanID, &p.Name, &p.Description, &p.Price, &p.ImageRef, &p.IsApproved, &p.CreatedAt,
			&p.Region, &p.CulturalStory, &p.CraftProcess, &p.ImpactScore,
			&p.VerificationStatus, &p.VerifiedBy, &p.VerificationNote, &p.VerifiedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Create persists a new product.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			id, artisan_id, name, description, price, image_ref, is_approved, created_at,
			region, cultural_story, craft_process, impact_score,
			verification_status, verified_by, verification_note, verified_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.ArtisanID, product.Name, product.Description, product.Price,
		product.ImageRef, product.IsApproved, product.CreatedAt,
		product.Region, product.CulturalStory, product.CraftProcess, product.ImpactScore,
		product.VerificationStatus, product.VerifiedBy, product.VerificationNote, product.VerifiedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID fetches a product by ID regardless of visibility, (nil, nil) when
// absent. Used by the cart view, which prices whatever the cart references.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetVisibleByID fetches a product only if it is publicly visible.
func (r *ProductRepo) GetVisibleByID(ctx context.Context, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND `+visibleWhere, id))
	if err != nil {
		return nil, fmt.Errorf("get visible product: %w", err)
	}
	return p, nil
}

// ListVisible lists the public catalog, newest first.
func (r *ProductRepo) ListVisible(ctx context.Context) ([]*entity.Product, error) {
	list, err := r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE `+visibleWhere+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list visible products: %w", err)
	}
	return list, nil
}

// ListLatestVisible lists the newest publicly visible products, capped.
func (r *ProductRepo) ListLatestVisible(ctx context.Context, limit int) ([]*entity.Product, error) {
	list, err := r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE `+visibleWhere+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list latest products: %w", err)
	}
	return list, nil
}

// ListByArtisan lists every product of one artisan, newest first.
func (r *ProductRepo) ListByArtisan(ctx context.Context, artisanID string) ([]*entity.Product, error) {
	list, err := r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE artisan_id = $1 ORDER BY created_at DESC`, artisanID)
	if err != nil {
		return nil, fmt.Errorf("list products by artisan: %w", err)
	}
	return list, nil
}

// ListVisibleByArtisan lists one artisan's publicly visible products.
func (r *ProductRepo) ListVisibleByArtisan(ctx context.Context, artisanID string) ([]*entity.Product, error) {
	list, err := r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE artisan_id = $1 AND `+visibleWhere+` ORDER BY created_at DESC`, artisanID)
	if err != nil {
		return nil, fmt.Errorf("list visible products by artisan: %w", err)
	}
	return list, nil
}

func (r *ProductRepo) queryWithArtisan(ctx context.Context, where string) ([]repository.ProductWithArtisan, error) {
	query := `
		SELECT p.id, p.artisan_id, p.name, p.description, p.price, p.image_ref, p.is_approved, p.created_at,
		       p.region, p.cultural_story, p.craft_process, p.impact_score,
		       p.verification_status, p.verified_by, p.verification_note, p.verified_at,
		       u.email
		FROM products p
		JOIN users u ON u.id = p.artisan_id
		WHERE ` + where + `
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []repository.ProductWithArtisan
	for rows.Next() {
		var row repository.ProductWithArtisan
		if err := rows.Scan(
			&row.ID, &row.ArtisanID, &row.Name, &row.Description, &row.Price, &row.ImageRef, &row.IsApproved, &row.CreatedAt,
			&row.Region, &row.CulturalStory, &row.CraftProcess, &row.ImpactScore,
			&row.VerificationStatus, &row.VerifiedBy, &row.VerificationNote, &row.VerifiedAt,
			&row.ArtisanEmail,
		); err != nil {
			return nil, err
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListPending lists products awaiting admin moderation, newest first.
func (r *ProductRepo) ListPending(ctx context.Context) ([]repository.ProductWithArtisan, error) {
	list, err := r.queryWithArtisan(ctx, `NOT p.is_approved`)
	if err != nil {
		return nil, fmt.Errorf("list pending products: %w", err)
	}
	return list, nil
}

// ListApproved lists approved products for the moderation table.
func (r *ProductRepo) ListApproved(ctx context.Context) ([]repository.ProductWithArtisan, error) {
	list, err := r.queryWithArtisan(ctx, `p.is_approved`)
	if err != nil {
		return nil, fmt.Errorf("list approved products: %w", err)
	}
	return list, nil
}

// ListVerificationQueue lists approved products still awaiting a consultant.
func (r *ProductRepo) ListVerificationQueue(ctx context.Context) ([]repository.ProductWithArtisan, error) {
	list, err := r.queryWithArtisan(ctx, `p.is_approved AND p.verification_status = 'PENDING'`)
	if err != nil {
		return nil, fmt.Errorf("list verification queue: %w", err)
	}
	return list, nil
}

// Approve flips is_approved on a pending product. The WHERE clause keeps
// already-approved rows out of reach; zero rows means domain.ErrNotFound.
// Last write wins under concurrent moderation, there is no row locking.
func (r *ProductRepo) Approve(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET is_approved = TRUE WHERE id = $1 AND NOT is_approved`, id)
	if err != nil {
		return fmt.Errorf("approve product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeletePending removes a pending product (admin rejection).
func (r *ProductRepo) DeletePending(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND NOT is_approved`, id)
	if err != nil {
		return fmt.Errorf("reject product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetVerification records a consultant review on a still-pending product.
func (r *ProductRepo) SetVerification(ctx context.Context, id string, status entity.VerificationStatus, note, consultantID string, at time.Time) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products
		SET verification_status = $2, verification_note = $3, verified_by = $4, verified_at = $5
		WHERE id = $1 AND verification_status = 'PENDING'`,
		id, status, note, consultantID, at,
	)
	if err != nil {
		return fmt.Errorf("set verification: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}
	// Distinguish a missing product from one already reviewed.
	var exists bool
	if err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("set verification: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}
