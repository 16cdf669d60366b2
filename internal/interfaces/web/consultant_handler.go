package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kalasetu/marketplace/internal/application/dto"
	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/pkg/validate"
)

// ConsultantDashboard renders the verification queue: approved products
// still awaiting an attestation.
func (h *Handlers) ConsultantDashboard(c *fiber.Ctx) error {
	queue, err := h.dashboard.ConsultantQueue(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("dashboards/consultant", h.viewData(c, fiber.Map{
		"Queue": queue,
	}))
}

// VerifyProduct records the consultant's verdict on a product. Each product
// is reviewed once; a second attempt reports the conflict.
func (h *Handlers) VerifyProduct(c *fiber.Ctx) error {
	var form dto.VerifyForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	if errs := validate.Struct(form); errs != nil {
		h.sessions.AddFlash(c, "error", "Select a valid verification status.")
		return c.Redirect("/consultant-dashboard")
	}
	err := h.catalog.Verify(c.UserContext(), CurrentUser(c), c.Params("id"), form)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.sessions.AddFlash(c, "error", "Product not found.")
	case errors.Is(err, domain.ErrConflict):
		h.sessions.AddFlash(c, "error", "This product has already been reviewed.")
	case err != nil:
		return httpError(err)
	default:
		h.sessions.AddFlash(c, "success", "Verification recorded.")
	}
	return c.Redirect("/consultant-dashboard")
}
