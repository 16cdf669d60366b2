package web

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
)

// Locals key for the authenticated user.
const localUser = "current_user"

// dashboardPaths maps each role to its home dashboard. Data-driven: adding a
// role is one row here, not another branch in a redirect chain.
var dashboardPaths = map[entity.Role]string{
	entity.RoleAdmin:      "/admin-dashboard",
	entity.RoleArtisan:    "/artisan-dashboard",
	entity.RoleBuyer:      "/buyer-dashboard",
	entity.RoleConsultant: "/consultant-dashboard",
}

// DashboardPath returns the dashboard route for role, falling back to the
// landing page for anything unrecognized.
func DashboardPath(role entity.Role) string {
	if p, ok := dashboardPaths[role]; ok {
		return p
	}
	return "/"
}

// LoadUser resolves the session's user id to a full account and stashes it
// in Locals for the rest of the chain. Stale ids and disabled accounts just
// leave the request anonymous.
func LoadUser(sessions *SessionManager, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := sessions.UserID(c); id != "" {
			user, err := users.GetByID(c.UserContext(), id)
			if err == nil && user != nil && user.IsActive {
				c.Locals(localUser, user)
			}
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user from Locals, nil for anonymous
// requests (after LoadUser).
func CurrentUser(c *fiber.Ctx) *entity.User {
	user, _ := c.Locals(localUser).(*entity.User)
	return user
}

// loginRedirect sends an anonymous caller to the login form, preserving the
// requested path so login can return there.
func loginRedirect(c *fiber.Ctx) error {
	return c.Redirect("/login?next=" + url.QueryEscape(c.OriginalURL()))
}

// RequireAuth gates a route on authentication only. Anonymous callers get a
// flash and the login form with the return path preserved.
func RequireAuth(sessions *SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			sessions.AddFlash(c, "warning", "Please log in to continue.")
			return loginRedirect(c)
		}
		return c.Next()
	}
}

// RequireRole gates a route on a role set. Anonymous callers go to the login
// form; authenticated callers outside the set get a flash and the landing
// page. Either way the wrapped handler never runs for them.
func RequireRole(sessions *SessionManager, roles ...entity.Role) fiber.Handler {
	allowed := make(map[entity.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			sessions.AddFlash(c, "warning", "Please log in to continue.")
			return loginRedirect(c)
		}
		if _, ok := allowed[user.Role]; !ok {
			sessions.AddFlash(c, "error", "You don't have permission to access this page.")
			return c.Redirect("/")
		}
		return c.Next()
	}
}

// safeNextPath accepts only site-local redirect targets: a path starting
// with a single "/" (so no scheme-relative "//evil" or absolute URLs).
func safeNextPath(next string) bool {
	return len(next) > 0 && next[0] == '/' && !(len(next) > 1 && next[1] == '/')
}
