package httpapi_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codedrip/internal/cart"
	"codedrip/internal/cart/store/remote"
	"codedrip/internal/cart/store/resource"
	"codedrip/internal/catalog"
	httpapi "codedrip/internal/http"
	"codedrip/internal/identity"
	"codedrip/internal/order"
	"codedrip/internal/subscriber"
	"codedrip/pkg/testutil"
)

type memoryLocalStore struct {
	items []cart.LineItem
}

func (s *memoryLocalStore) Load(context.Context) ([]cart.LineItem, error) { return s.items, nil }
func (s *memoryLocalStore) Save(_ context.Context, items []cart.LineItem) error {
	s.items = items
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalogService := catalog.NewService(catalog.NewInMemoryStore(catalog.SeedProducts()), logger)
	identityService := identity.NewService(identity.NewInMemoryUserStore(), identity.NewTokenService("test-signing-key", time.Hour), logger)
	remoteStore := remote.NewInMemory()
	sessions := cart.NewSessionManager(func(string) cart.LocalStore { return &memoryLocalStore{} }, remoteStore, logger, nil)
	orderService := order.NewService(order.NewInMemoryStore(), logger)

	return httpapi.NewRouter(httpapi.Deps{
		Logger:     logger,
		AdminToken: "test-admin-token",
		Identity:   identityService,
		Catalog:    catalog.NewHandler(catalogService, logger),
		Cart:       cart.NewHandler(resource.NewInMemory(), remoteStore, logger),
		Session:    cart.NewSessionHandler(sessions, catalogService, logger),
		Checkout:   order.NewCheckoutHandler(sessions, catalogService, orderService, logger),
		Orders:     order.NewHandler(orderService, logger),
		Auth:       identity.NewHandler(identityService, logger),
		Subscriber: subscriber.NewHandler(subscriber.NewService(subscriber.NewInMemoryStore(), logger), logger),
	})
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))

	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRouter_AdminGuard(t *testing.T) {
	router := newTestRouter(t)
	body := map[string]any{
		"id":          "rubber-duck-crew",
		"name":        "Rubber Duck Crew",
		"description": "Heavyweight crewneck for debugging out loud.",
		"price":       69.99,
		"category":    "developer",
		"type":        "sweatshirt",
		"colors":      []string{"black"},
		"sizes":       []string{"M"},
	}

	t.Run("without the token", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/admin/products", body))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	})

	t.Run("with the token", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/admin/products", body)
		req.Header.Set("X-Admin-Token", "test-admin-token")
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatus(t, rr, http.StatusCreated)
	})
}

// Full storefront flow: anonymous browsing and cart, login, remote cart
// migration, checkout.
func TestRouter_StorefrontFlow(t *testing.T) {
	router := newTestRouter(t)

	// Browse.
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/products"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	// Add to the anonymous session cart.
	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/session/cart/items",
		map[string]any{"productId": "committed-hoodie", "size": "M", "color": "black", "quantity": 3}))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var device *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == cart.DeviceCookie {
			device = c
		}
	}
	require.NotNil(t, device)

	// Log in.
	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/login",
		map[string]any{"email": "ada.lovelace@example.com"}))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var session *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == identity.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)

	// The remote cart was empty, so the local cart survives the login.
	req := testutil.NewRequest(t, http.MethodGet, "/api/session/cart")
	req.AddCookie(device)
	req.AddCookie(session)
	rr = testutil.DoRequest(router, req)
	type cartResp struct {
		Items     []cart.LineItem `json:"items"`
		ItemCount int             `json:"itemCount"`
		Subtotal  float64         `json:"subtotal"`
	}
	got := testutil.UnmarshalResponse[cartResp](t, rr)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.ItemCount)
	assert.InDelta(t, 269.97, got.Subtotal, 0.0001)

	// Check out.
	req = testutil.NewJSONRequest(t, http.MethodPost, "/api/session/checkout", map[string]any{
		"customerInfo": map[string]any{
			"email":     "ada.lovelace@example.com",
			"firstName": "Ada",
			"lastName":  "Lovelace",
			"address":   "1 Analytical Engine Rd",
			"city":      "London",
			"state":     "LDN",
			"zipCode":   "SW1A 1AA",
			"country":   "UK",
			"phone":     "020-7946-0000",
		},
	})
	req.AddCookie(device)
	req.AddCookie(session)
	rr = testutil.DoRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusCreated)

	created := testutil.UnmarshalResponse[order.Order](t, rr)
	assert.Equal(t, order.StatusConfirmed, created.Status)
	assert.InDelta(t, 269.97, created.Subtotal, 0.0001)
	assert.Zero(t, created.Shipping)
	assert.InDelta(t, 269.97*0.08, created.Tax, 0.0001)

	// The order is retrievable and the cart is empty.
	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/orders/"+created.ID.String()))
	testutil.AssertStatus(t, rr, http.StatusOK)

	req = testutil.NewRequest(t, http.MethodGet, "/api/session/cart")
	req.AddCookie(device)
	req.AddCookie(session)
	rr = testutil.DoRequest(router, req)
	after := testutil.UnmarshalResponse[cartResp](t, rr)
	assert.Empty(t, after.Items)
}
