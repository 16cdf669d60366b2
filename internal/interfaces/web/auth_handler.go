package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kalasetu/marketplace/internal/application/dto"
	"github.com/kalasetu/marketplace/internal/domain"
	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/pkg/validate"
)

// LoginPage renders the login form. An already-authenticated user is sent
// straight to their dashboard.
func (h *Handlers) LoginPage(c *fiber.Ctx) error {
	if user := CurrentUser(c); user != nil {
		return c.Redirect(DashboardPath(user.Role))
	}
	return c.Render("login", h.viewData(c, fiber.Map{
		"Next": c.Query("next"),
	}))
}

// Login authenticates the submitted credentials, binds the session and
// redirects to the requested page or the role dashboard. Every failure
// re-renders the form with the same generic message.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	next := c.FormValue("next")

	renderInvalid := func() error {
		return c.Status(fiber.StatusUnauthorized).Render("login", h.viewData(c, fiber.Map{
			"Form":  form,
			"Next":  next,
			"Error": "Invalid email or password.",
		}))
	}

	if errs := validate.Struct(form); errs != nil {
		return renderInvalid()
	}
	user, err := h.auth.Authenticate(c.UserContext(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return renderInvalid()
		}
		return err
	}
	// Queue the flash before Login regenerates the session id; the session
	// data (flashes, cart) carries over into the regenerated session.
	h.sessions.AddFlash(c, "success", "Welcome back!")
	if err := h.sessions.Login(c, user.ID); err != nil {
		return err
	}
	if safeNextPath(next) {
		return c.Redirect(next)
	}
	return c.Redirect(DashboardPath(user.Role))
}

// RegisterPage renders the registration form.
func (h *Handlers) RegisterPage(c *fiber.Ctx) error {
	if user := CurrentUser(c); user != nil {
		return c.Redirect(DashboardPath(user.Role))
	}
	return c.Render("register", h.viewData(c, fiber.Map{
		"Roles": entity.RegistrableRoles,
	}))
}

// Register creates the account and redirects to the login form. Validation
// failures and duplicate emails re-render the form with field errors.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var form dto.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	renderForm := func(status int, errs validate.FieldErrors) error {
		return c.Status(status).Render("register", h.viewData(c, fiber.Map{
			"Form":   form,
			"Roles":  entity.RegistrableRoles,
			"Errors": errs,
		}))
	}

	if errs := validate.Struct(form); errs != nil {
		return renderForm(fiber.StatusBadRequest, errs)
	}
	if _, err := h.auth.Register(c.UserContext(), form); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken):
			return renderForm(fiber.StatusConflict, validate.FieldErrors{
				"email": "An account with this email already exists.",
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return renderForm(fiber.StatusBadRequest, validate.FieldErrors{
				"role": "Select a valid choice.",
			})
		default:
			return err
		}
	}
	h.sessions.AddFlash(c, "success", "Account created. Please log in.")
	return c.Redirect("/login")
}

// Logout destroys the session (cart included) and lands on the homepage.
func (h *Handlers) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c); err != nil {
		return err
	}
	return c.Redirect("/")
}
