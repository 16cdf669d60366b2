package web

import (
	"github.com/gofiber/fiber/v2"
)

// ArtisanDashboard renders the artisan's own listings with approval counts.
func (h *Handlers) ArtisanDashboard(c *fiber.Ctx) error {
	summary, err := h.dashboard.ArtisanSummary(c.UserContext(), CurrentUser(c).ID)
	if err != nil {
		return err
	}
	return c.Render("dashboards/artisan", h.viewData(c, fiber.Map{
		"Stats": summary,
	}))
}

// BuyerDashboard renders the buyer home: cart size and the newest listings.
func (h *Handlers) BuyerDashboard(c *fiber.Ctx) error {
	summary, err := h.dashboard.BuyerSummary(c.UserContext(), h.sessions.Cart(c).Units())
	if err != nil {
		return err
	}
	return c.Render("dashboards/buyer", h.viewData(c, fiber.Map{
		"Stats": summary,
	}))
}
