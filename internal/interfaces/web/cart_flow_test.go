package web_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kalasetu/marketplace/internal/application/auth"
	"github.com/kalasetu/marketplace/internal/application/cart"
	"github.com/kalasetu/marketplace/internal/application/catalog"
	"github.com/kalasetu/marketplace/internal/application/dashboard"
	"github.com/kalasetu/marketplace/internal/application/story"
	"github.com/kalasetu/marketplace/internal/domain/entity"
	"github.com/kalasetu/marketplace/internal/domain/repository"
	"github.com/kalasetu/marketplace/internal/interfaces/web"
	"github.com/kalasetu/marketplace/pkg/config"
	"github.com/kalasetu/marketplace/pkg/logger"
)

// fakeProducts covers just the catalog reads the cart flow touches; every
// other method panics via the embedded nil interface.
type fakeProducts struct {
	repository.ProductRepository
	byID map[string]*entity.Product
}

func (f *fakeProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProducts) GetVisibleByID(ctx context.Context, id string) (*entity.Product, error) {
	p := f.byID[id]
	if p == nil || !p.PubliclyVisible() {
		return nil, nil
	}
	return p, nil
}

// writeTemplates lays down the minimal views the flow renders.
func writeTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "layouts"), 0o755))

	files := map[string]string{
		"layouts/main.html":    `{{range .Flashes}}[{{.Level}}] {{.Text}} {{end}}{{embed}}`,
		"login.html":           `login {{.Error}}`,
		"cart.html":            `Units:{{.Cart.Units}} Total:{{.Cart.Total}}{{range .Cart.Lines}} {{.Product.Name}} x{{.Quantity}}={{.Subtotal}}{{end}}`,
		"payment_success.html": `payment confirmed`,
		"error.html":           `error {{.Code}}`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// newFlowApp wires the real router over fakes: a buyer account plus two
// visible products (A at 150.00, B at 99.50).
func newFlowApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUsers{byID: map[string]*entity.User{
		"b1": {
			ID: "b1", Email: "buyer@kalasetu.test", PasswordHash: string(hash),
			Role: entity.RoleBuyer, IsActive: true, DateJoined: time.Now(),
		},
	}}
	now := time.Now()
	products := &fakeProducts{byID: map[string]*entity.Product{
		"prod-a": {
			ID: "prod-a", ArtisanID: "art-1", Name: "Clay Vase",
			Price: price(t, "150.00"), IsApproved: true,
			VerificationStatus: entity.VerificationPending, CreatedAt: now,
		},
		"prod-b": {
			ID: "prod-b", ArtisanID: "art-1", Name: "Wool Scarf",
			Price: price(t, "99.50"), IsApproved: true,
			VerificationStatus: entity.VerificationVerified, CreatedAt: now.Add(-time.Hour),
		},
		"prod-u": {
			ID: "prod-u", ArtisanID: "art-1", Name: "Unreviewed Basket",
			Price: price(t, "20.00"), IsApproved: false,
			VerificationStatus: entity.VerificationPending, CreatedAt: now,
		},
	}}

	media, err := web.NewMediaStore(t.TempDir())
	require.NoError(t, err)
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	engine := html.New(writeTemplates(t), ".html")
	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: web.NewErrorHandler(log),
	})

	web.Router(app, web.RouterDeps{
		Sessions: web.NewSessionManager(config.SessionConfig{
			CookieName: "test_session",
			Expiration: time.Hour,
		}),
		Users:       users,
		AuthUC:      auth.NewUseCase(users),
		CatalogUC:   catalog.NewUseCase(products),
		CartUC:      cart.NewUseCase(products),
		StoryUC:     story.NewUseCase(nil, users, products),
		DashboardUC: dashboard.NewUseCase(nil, products),
		Media:       media,
		Log:         log,
	})
	return app
}

// browser carries cookies across requests like a real client.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T, app *fiber.App) *browser {
	return &browser{t: t, app: app, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(method, path string, form url.Values) *http.Response {
	b.t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	}
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}
	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)
	for _, ck := range resp.Cookies() {
		b.cookies[ck.Name] = ck
	}
	return resp
}

func (b *browser) body(resp *http.Response) string {
	b.t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return string(data)
}

func TestCartFlow_LoginAddViewCheckout(t *testing.T) {
	app := newFlowApp(t)
	b := newBrowser(t, app)

	// Login lands on the buyer dashboard.
	resp := b.do(http.MethodPost, "/login", url.Values{
		"email":    {"buyer@kalasetu.test"},
		"password": {"password123"},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/buyer-dashboard", resp.Header.Get("Location"))

	// Two of A, one of B.
	for _, id := range []string{"prod-a", "prod-a", "prod-b"} {
		resp = b.do(http.MethodPost, "/add-to-cart/"+id, url.Values{})
		resp.Body.Close()
		require.Equal(t, http.StatusFound, resp.StatusCode)
		require.Equal(t, "/marketplace", resp.Header.Get("Location"))
	}

	// The cart page shows merged quantities and the priced total.
	resp = b.do(http.MethodGet, "/cart", nil)
	page := b.body(resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "Units:3")
	assert.Contains(t, page, "Total:399.5")
	assert.Contains(t, page, "Clay Vase x2=300")
	assert.Contains(t, page, "Wool Scarf x1=99.5")

	// Checkout confirms and empties the cart.
	resp = b.do(http.MethodPost, "/checkout", url.Values{})
	page = b.body(resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, "payment confirmed")

	resp = b.do(http.MethodGet, "/cart", nil)
	page = b.body(resp)
	assert.Contains(t, page, "Units:0")
	assert.Contains(t, page, "Total:0")
}

func TestCartFlow_UnapprovedProductRejected(t *testing.T) {
	app := newFlowApp(t)
	b := newBrowser(t, app)

	resp := b.do(http.MethodPost, "/login", url.Values{
		"email":    {"buyer@kalasetu.test"},
		"password": {"password123"},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	for _, id := range []string{"prod-u", "no-such-product"} {
		resp = b.do(http.MethodPost, "/add-to-cart/"+id, url.Values{})
		resp.Body.Close()
		require.Equal(t, http.StatusFound, resp.StatusCode)
		require.Equal(t, "/marketplace", resp.Header.Get("Location"))
	}

	resp = b.do(http.MethodGet, "/cart", nil)
	page := b.body(resp)
	assert.Contains(t, page, "Units:0", "an unavailable product must not enter the cart")
	assert.Contains(t, page, "[error] That product is not available.")
}

func TestCartFlow_WrongPasswordStaysOnLogin(t *testing.T) {
	app := newFlowApp(t)
	b := newBrowser(t, app)

	resp := b.do(http.MethodPost, "/login", url.Values{
		"email":    {"buyer@kalasetu.test"},
		"password": {"wrong-password"},
	})
	page := b.body(resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, page, "Invalid email or password.")
}
