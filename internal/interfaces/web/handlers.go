package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kalasetu/marketplace/internal/application/auth"
	"github.com/kalasetu/marketplace/internal/application/cart"
	"github.com/kalasetu/marketplace/internal/application/catalog"
	"github.com/kalasetu/marketplace/internal/application/dashboard"
	"github.com/kalasetu/marketplace/internal/application/story"
	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/pkg/logger"
)

// Handlers bundles the use cases behind the web routes.
type Handlers struct {
	sessions  *SessionManager
	auth      *auth.UseCase
	catalog   *catalog.UseCase
	cart      *cart.UseCase
	story     *story.UseCase
	dashboard *dashboard.UseCase
	media     *MediaStore
	log       *logger.Logger
}

// NewHandlers wires the web handlers.
func NewHandlers(
	sessions *SessionManager,
	authUC *auth.UseCase,
	catalogUC *catalog.UseCase,
	cartUC *cart.UseCase,
	storyUC *story.UseCase,
	dashboardUC *dashboard.UseCase,
	media *MediaStore,
	log *logger.Logger,
) *Handlers {
	return &Handlers{
		sessions:  sessions,
		auth:      authUC,
		catalog:   catalogUC,
		cart:      cartUC,
		story:     storyUC,
		dashboard: dashboardUC,
		media:     media,
		log:       log,
	}
}

// viewData assembles the base template context every page shares: the
// authenticated user, drained flash messages and the cart badge count.
func (h *Handlers) viewData(c *fiber.Ctx, extra fiber.Map) fiber.Map {
	data := fiber.Map{
		"User":      CurrentUser(c),
		"Flashes":   h.sessions.PopFlashes(c),
		"CartCount": h.sessions.Cart(c).Units(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// httpError maps a domain error to the fiber error the app-level error
// handler turns into an error page.
func httpError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, domain.ErrForbidden):
		return fiber.ErrForbidden
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.ErrBadRequest
	default:
		return err
	}
}

// NewErrorHandler builds the app-level error handler: logs server faults and
// renders the shared error page. Falls back to plain text if even the error
// template fails.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		message := "Something went wrong on our side."
		if code < fiber.StatusInternalServerError {
			if fe != nil {
				message = fe.Message
			}
		} else {
			log.Error().Err(err).Str("path", c.Path()).Int("status", code).Msg("request failed")
		}
		if renderErr := c.Status(code).Render("error", fiber.Map{
			"Code":    code,
			"Message": message,
		}); renderErr != nil {
			return c.Status(code).SendString(err.Error())
		}
		return nil
	}
}
