package cart

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kalasetu/marketplace/internal/application/dto"
	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

// UseCase cart operations that need the catalog: validated adds and pricing.
type UseCase struct {
	products repository.ProductRepository
}

// NewUseCase builds the cart use case.
func NewUseCase(products repository.ProductRepository) *UseCase {
	return &UseCase{products: products}
}

// Add puts one unit of productID into c. The product must exist and be
// publicly visible (approved, not verification-rejected); anything else is
// domain.ErrNotFound. Validating here keeps dead references out of carts at
// the only point where they could enter.
func (uc *UseCase) Add(ctx context.Context, c *Cart, productID string) error {
	product, err := uc.products.GetVisibleByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	c.Add(product.ID)
	return nil
}

// View re-fetches every product in c and prices the cart: one line per
// entry with subtotal = price x quantity, plus the grand total. An entry
// referencing a product that no longer exists fails the whole view with
// domain.ErrNotFound; the cart is not silently pruned.
func (uc *UseCase) View(ctx context.Context, c *Cart) (*dto.CartView, error) {
	view := &dto.CartView{Total: decimal.Zero}
	for id, qty := range c.Items() {
		product, err := uc.products.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(qty)))
		view.Lines = append(view.Lines, dto.CartLine{
			Product:  product,
			Quantity: qty,
			Subtotal: subtotal,
		})
		view.Total = view.Total.Add(subtotal)
		view.Units += qty
	}
	// Map iteration order is random; render newest listings first.
	sort.Slice(view.Lines, func(i, j int) bool {
		a, b := view.Lines[i].Product, view.Lines[j].Product
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return view, nil
}

// Checkout empties the cart unconditionally. No payment, no order record,
// no stock mutation.
func (uc *UseCase) Checkout(c *Cart) {
	c.Clear()
}
