package cart

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

// fakeProducts stubs only the lookups the cart needs; any other call panics
// through the embedded nil interface.
type fakeProducts struct {
	repository.ProductRepository
	byID map[string]*entity.Product
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProducts) GetVisibleByID(_ context.Context, id string) (*entity.Product, error) {
	p := f.byID[id]
	if p == nil || !p.PubliclyVisible() {
		return nil, nil
	}
	return p, nil
}

func product(id string, price string, approved bool, created time.Time) *entity.Product {
	return &entity.Product{
		ID:                 id,
		Name:               "product " + id,
		Price:              decimal.RequireFromString(price),
		IsApproved:         approved,
		VerificationStatus: entity.VerificationPending,
		CreatedAt:          created,
	}
}

func newCartFixture() (*UseCase, *fakeProducts) {
	now := time.Now()
	repo := &fakeProducts{byID: map[string]*entity.Product{
		"a": product("a", "150.00", true, now),
		"b": product("b", "99.50", true, now.Add(-time.Hour)),
		"u": product("u", "10.00", false, now), // pending approval
	}}
	return NewUseCase(repo), repo
}

func TestAdd_ApprovedProduct(t *testing.T) {
	uc, _ := newCartFixture()
	c := New()

	require.NoError(t, uc.Add(context.Background(), c, "a"))
	assert.Equal(t, 1, c.Quantity("a"))
}

func TestAdd_UnapprovedProductRejected(t *testing.T) {
	uc, _ := newCartFixture()
	c := New()

	err := uc.Add(context.Background(), c, "u")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, c.IsEmpty(), "rejected adds must not touch the cart")
}

func TestAdd_VerificationRejectedProductRejected(t *testing.T) {
	uc, repo := newCartFixture()
	repo.byID["a"].VerificationStatus = entity.VerificationRejected
	c := New()

	err := uc.Add(context.Background(), c, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdd_MissingProductRejected(t *testing.T) {
	uc, _ := newCartFixture()
	c := New()

	err := uc.Add(context.Background(), c, "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Two of A plus one of B must total 2 x priceA + priceB.
func TestView_TotalsAndSubtotals(t *testing.T) {
	uc, _ := newCartFixture()
	c := New()
	ctx := context.Background()
	require.NoError(t, uc.Add(ctx, c, "a"))
	require.NoError(t, uc.Add(ctx, c, "a"))
	require.NoError(t, uc.Add(ctx, c, "b"))

	view, err := uc.View(ctx, c)
	require.NoError(t, err)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, 3, view.Units)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("399.50")),
		"total = 2x150.00 + 99.50, got %s", view.Total)

	// Newest listing first.
	assert.Equal(t, "a", view.Lines[0].Product.ID)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.True(t, view.Lines[0].Subtotal.Equal(decimal.RequireFromString("300.00")))
	assert.Equal(t, "b", view.Lines[1].Product.ID)
	assert.True(t, view.Lines[1].Subtotal.Equal(decimal.RequireFromString("99.50")))
}

func TestView_EmptyCart(t *testing.T) {
	uc, _ := newCartFixture()

	view, err := uc.View(context.Background(), New())
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Total.IsZero())
}

// A cart entry whose product was deleted after the add fails the whole view;
// the entry is not pruned behind the user's back.
func TestView_DeletedProductFailsHard(t *testing.T) {
	uc, repo := newCartFixture()
	c := New()
	ctx := context.Background()
	require.NoError(t, uc.Add(ctx, c, "a"))
	delete(repo.byID, "a")

	_, err := uc.View(ctx, c)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 1, c.Quantity("a"), "failed view must leave the cart untouched")
}

func TestCheckout_AlwaysEmptiesCart(t *testing.T) {
	uc, _ := newCartFixture()
	c := New()
	ctx := context.Background()
	require.NoError(t, uc.Add(ctx, c, "a"))
	require.NoError(t, uc.Add(ctx, c, "b"))

	uc.Checkout(c)
	assert.True(t, c.IsEmpty())

	// Idempotent on an already-empty cart.
	uc.Checkout(c)
	assert.True(t, c.IsEmpty())
}
