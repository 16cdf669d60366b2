package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kalasetu/marketplace/internal/domain"
)

// AdminDashboard renders the moderation console with the full aggregate
// summary.
func (h *Handlers) AdminDashboard(c *fiber.Ctx) error {
	summary, err := h.dashboard.AdminSummary(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("dashboards/admin", h.viewData(c, fiber.Map{
		"Stats": summary,
	}))
}

// ApproveProduct publishes a pending product. Acting on a product that is
// gone or already approved just reports it and returns to the dashboard.
func (h *Handlers) ApproveProduct(c *fiber.Ctx) error {
	if err := h.catalog.Approve(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.sessions.AddFlash(c, "error", "Product not found or already approved.")
			return c.Redirect("/admin-dashboard")
		}
		return err
	}
	h.sessions.AddFlash(c, "success", "Product approved.")
	return c.Redirect("/admin-dashboard")
}

// RejectProduct deletes a pending product outright.
func (h *Handlers) RejectProduct(c *fiber.Ctx) error {
	if err := h.catalog.Reject(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.sessions.AddFlash(c, "error", "Product not found or no longer pending.")
			return c.Redirect("/admin-dashboard")
		}
		return err
	}
	h.sessions.AddFlash(c, "success", "Product rejected and removed.")
	return c.Redirect("/admin-dashboard")
}
