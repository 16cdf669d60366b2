package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kalasetu/marketplace/internal/domain"
)

// AddToCart puts one unit of the product into the session cart and bounces
// back to the marketplace. Products outside the public catalog cannot enter
// a cart.
func (h *Handlers) AddToCart(c *fiber.Ctx) error {
	crt := h.sessions.Cart(c)
	if err := h.cart.Add(c.UserContext(), crt, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.sessions.AddFlash(c, "error", "That product is not available.")
			return c.Redirect("/marketplace")
		}
		return err
	}
	if err := h.sessions.SaveCart(c, crt); err != nil {
		return err
	}
	h.sessions.AddFlash(c, "success", "Added to cart.")
	return c.Redirect("/marketplace")
}

// ViewCart renders the priced cart. A cart entry whose product has since
// been removed fails the page outright rather than silently disappearing.
func (h *Handlers) ViewCart(c *fiber.Ctx) error {
	view, err := h.cart.View(c.UserContext(), h.sessions.Cart(c))
	if err != nil {
		return httpError(err)
	}
	return c.Render("cart", h.viewData(c, fiber.Map{
		"Cart": view,
	}))
}

// Checkout empties the cart and renders the confirmation page. No payment
// is taken and no order is recorded.
func (h *Handlers) Checkout(c *fiber.Ctx) error {
	crt := h.sessions.Cart(c)
	h.cart.Checkout(crt)
	if err := h.sessions.SaveCart(c, crt); err != nil {
		return err
	}
	return c.Render("payment_success", h.viewData(c, nil))
}
