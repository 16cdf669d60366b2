package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kalasetu/marketplace/internal/application/dto"
	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/pkg/validate"
)

// ArtisanProfile renders an artisan's public page: stories and visible
// products. 404 for unknown ids and non-artisan accounts.
func (h *Handlers) ArtisanProfile(c *fiber.Ctx) error {
	profile, err := h.story.Profile(c.UserContext(), c.Params("id"))
	if err != nil {
		return httpError(err)
	}
	return c.Render("artisan_profile", h.viewData(c, fiber.Map{
		"Profile": profile,
	}))
}

// AddStoryPage renders the story form (artisans only, gated by the router).
func (h *Handlers) AddStoryPage(c *fiber.Ctx) error {
	return c.Render("add_story", h.viewData(c, nil))
}

// AddStory publishes a story on the calling artisan's profile. The image is
// optional.
func (h *Handlers) AddStory(c *fiber.Ctx) error {
	var form dto.StoryForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	renderForm := func(errs validate.FieldErrors) error {
		return c.Status(fiber.StatusBadRequest).Render("add_story", h.viewData(c, fiber.Map{
			"Form":   form,
			"Errors": errs,
		}))
	}

	if errs := validate.Struct(form); errs != nil {
		return renderForm(errs)
	}
	imageRef, err := h.media.SaveImage(c, "image", storyImageDir)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return renderForm(validate.FieldErrors{"image": "Upload a valid image file."})
		}
		return err
	}

	artisan := CurrentUser(c)
	if _, err := h.story.Add(c.UserContext(), artisan, form, imageRef); err != nil {
		return httpError(err)
	}
	h.sessions.AddFlash(c, "success", "Story published.")
	return c.Redirect("/artisan/" + artisan.ID)
}
