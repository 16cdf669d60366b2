package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kalasetu/marketplace/internal/domain/entity"
)

// CartLine one priced cart entry.
type CartLine struct {
	Product  *entity.Product
	Quantity int
	Subtotal decimal.Decimal // price x quantity
}

// CartView the priced cart as rendered on GET /cart.
type CartView struct {
	Lines []CartLine
	Total decimal.Decimal
	Units int // sum of quantities
}
