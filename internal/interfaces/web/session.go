package web

import (
	"encoding/gob"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/kalasetu/marketplace/internal/application/cart"
	"github.com/kalasetu/marketplace/pkg/config"
)

// Session keys.
const (
	sessionKeyUserID  = "user_id"
	sessionKeyCart    = "cart"
	sessionKeyFlashes = "flashes"
)

// Flash one user-visible message carried across a redirect.
type Flash struct {
	Level string // success, warning, error
	Text  string
}

func init() {
	// Session values are gob-encoded on save; register the non-trivial ones.
	gob.Register(map[string]int{})
	gob.Register([]Flash{})
}

// SessionManager owns everything the app keeps in the server-side session:
// the authenticated user id, the cart mapping and pending flash messages.
// The cart lives only here; it is gone when the session expires.
type SessionManager struct {
	store *session.Store
}

// NewSessionManager builds the cookie-backed session store.
func NewSessionManager(cfg config.SessionConfig) *SessionManager {
	store := session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     cfg.Expiration,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
	})
	return &SessionManager{store: store}
}

// Login binds the session to userID, regenerating the session id so a
// pre-login cookie cannot be replayed into an authenticated one.
func (m *SessionManager) Login(c *fiber.Ctx, userID string) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionKeyUserID, userID)
	return sess.Save()
}

// Logout destroys the whole session, cart included.
func (m *SessionManager) Logout(c *fiber.Ctx) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// UserID returns the authenticated user id, empty for anonymous sessions.
func (m *SessionManager) UserID(c *fiber.Ctx) string {
	sess, err := m.store.Get(c)
	if err != nil {
		return ""
	}
	id, _ := sess.Get(sessionKeyUserID).(string)
	return id
}

// Cart rebuilds the session cart. Always non-nil; an absent or malformed
// session value yields an empty cart.
func (m *SessionManager) Cart(c *fiber.Ctx) *cart.Cart {
	sess, err := m.store.Get(c)
	if err != nil {
		return cart.New()
	}
	items, _ := sess.Get(sessionKeyCart).(map[string]int)
	return cart.FromMap(items)
}

// SaveCart writes the cart back into the session.
func (m *SessionManager) SaveCart(c *fiber.Ctx, crt *cart.Cart) error {
	sess, err := m.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionKeyCart, crt.Items())
	return sess.Save()
}

// AddFlash queues a message for the next rendered page.
func (m *SessionManager) AddFlash(c *fiber.Ctx, level, text string) {
	sess, err := m.store.Get(c)
	if err != nil {
		return
	}
	flashes, _ := sess.Get(sessionKeyFlashes).([]Flash)
	flashes = append(flashes, Flash{Level: level, Text: text})
	sess.Set(sessionKeyFlashes, flashes)
	_ = sess.Save()
}

// PopFlashes drains and returns the queued messages.
func (m *SessionManager) PopFlashes(c *fiber.Ctx) []Flash {
	sess, err := m.store.Get(c)
	if err != nil {
		return nil
	}
	flashes, _ := sess.Get(sessionKeyFlashes).([]Flash)
	if len(flashes) > 0 {
		sess.Delete(sessionKeyFlashes)
		_ = sess.Save()
	}
	return flashes
}
