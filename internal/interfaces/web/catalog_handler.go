package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kalasetu/marketplace/internal/application/dto"
	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/pkg/validate"
)

const landingLatest = 3

// Landing renders the homepage with the newest visible products.
func (h *Handlers) Landing(c *fiber.Ctx) error {
	latest, err := h.catalog.Latest(c.UserContext(), landingLatest)
	if err != nil {
		return err
	}
	return c.Render("landing", h.viewData(c, fiber.Map{
		"Latest": latest,
	}))
}

// Marketplace renders the public catalog, newest first.
func (h *Handlers) Marketplace(c *fiber.Ctx) error {
	products, err := h.catalog.PublicList(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("marketplace", h.viewData(c, fiber.Map{
		"Products": products,
	}))
}

// ProductDetail renders one publicly visible product, 404 for anything not
// in the public catalog.
func (h *Handlers) ProductDetail(c *fiber.Ctx) error {
	product, err := h.catalog.PublicDetail(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if product == nil {
		return fiber.ErrNotFound
	}
	return c.Render("product_detail", h.viewData(c, fiber.Map{
		"Product": product,
	}))
}

// UploadProductPage renders the listing form (artisans only, gated by the
// router).
func (h *Handlers) UploadProductPage(c *fiber.Ctx) error {
	return c.Render("upload_product", h.viewData(c, nil))
}

// UploadProduct creates the listing with its image and redirects to the
// artisan dashboard. The image is required here even though the model allows
// its absence for legacy rows.
func (h *Handlers) UploadProduct(c *fiber.Ctx) error {
	var form dto.UploadProductForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	renderForm := func(errs validate.FieldErrors) error {
		return c.Status(fiber.StatusBadRequest).Render("upload_product", h.viewData(c, fiber.Map{
			"Form":   form,
			"Errors": errs,
		}))
	}

	if errs := validate.Struct(form); errs != nil {
		return renderForm(errs)
	}
	imageRef, err := h.media.SaveImage(c, "image", productImageDir)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return renderForm(validate.FieldErrors{"image": "Upload a valid image file."})
		}
		return err
	}
	if imageRef == "" {
		return renderForm(validate.FieldErrors{"image": "This field is required."})
	}

	if _, err := h.catalog.Upload(c.UserContext(), CurrentUser(c), form, imageRef); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return renderForm(validate.FieldErrors{"price": "Enter a valid price."})
		}
		return httpError(err)
	}
	h.sessions.AddFlash(c, "success", "Product submitted for approval.")
	return c.Redirect("/artisan-dashboard")
}
