package cart_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codedrip/internal/cart"
	"codedrip/internal/cart/store/remote"
	"codedrip/internal/catalog"
	"codedrip/pkg/testutil"
)

type sessionCartResponse struct {
	Items     []cart.LineItem `json:"items"`
	ItemCount int             `json:"itemCount"`
	Subtotal  float64         `json:"subtotal"`
	Visible   bool            `json:"visible"`
}

func newSessionRouter(t *testing.T) chi.Router {
	t.Helper()
	sessions := cart.NewSessionManager(func(deviceID string) cart.LocalStore {
		return &noopLocalStore{}
	}, remote.NewInMemory(), testLogger(), nil)
	catalogService := catalog.NewService(catalog.NewInMemoryStore(catalog.SeedProducts()), testLogger())
	handler := cart.NewSessionHandler(sessions, catalogService, testLogger())
	r := chi.NewRouter()
	handler.Register(r)
	return r
}

type noopLocalStore struct{}

func (noopLocalStore) Load(ctx context.Context) ([]cart.LineItem, error) { return nil, nil }
func (noopLocalStore) Save(ctx context.Context, items []cart.LineItem) error {
	return nil
}

func TestSessionHandler_MintsDeviceCookie(t *testing.T) {
	router := newSessionRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/session/cart"))

	testutil.AssertStatus(t, rr, http.StatusOK)
	cookies := rr.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == cart.DeviceCookie && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a device cookie to be set")
}

func TestSessionHandler_AddItem(t *testing.T) {
	router := newSessionRouter(t)

	body := map[string]any{"productId": "committed-hoodie", "size": "M", "color": "black", "quantity": 3}
	first := testutil.NewJSONRequest(t, http.MethodPost, "/api/session/cart/items", body)
	rr := testutil.DoRequest(router, first)
	testutil.AssertStatus(t, rr, http.StatusOK)

	device := deviceCookie(t, rr)

	// Same device again: the add merges into the existing entry.
	second := testutil.NewJSONRequest(t, http.MethodPost, "/api/session/cart/items", body)
	second.AddCookie(device)
	rr = testutil.DoRequest(router, second)

	got := testutil.UnmarshalResponse[sessionCartResponse](t, rr)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 6, got.ItemCount)
	assert.InDelta(t, 6*89.99, got.Subtotal, 0.0001)
	assert.True(t, got.Visible)
}

func TestSessionHandler_UpdateToZeroRemoves(t *testing.T) {
	router := newSessionRouter(t)

	add := testutil.NewJSONRequest(t, http.MethodPost, "/api/session/cart/items",
		map[string]any{"productId": "committed-hoodie", "size": "M", "color": "black"})
	rr := testutil.DoRequest(router, add)
	device := deviceCookie(t, rr)

	update := testutil.NewJSONRequest(t, http.MethodPatch, "/api/session/cart/items",
		map[string]any{"productId": "committed-hoodie", "size": "M", "color": "black", "quantity": 0})
	update.AddCookie(device)
	rr = testutil.DoRequest(router, update)

	got := testutil.UnmarshalResponse[sessionCartResponse](t, rr)
	assert.Empty(t, got.Items)
	assert.Equal(t, 0, got.ItemCount)
}

func TestSessionHandler_Clear(t *testing.T) {
	router := newSessionRouter(t)

	add := testutil.NewJSONRequest(t, http.MethodPost, "/api/session/cart/items",
		map[string]any{"productId": "committed-hoodie", "size": "M", "color": "black"})
	rr := testutil.DoRequest(router, add)
	device := deviceCookie(t, rr)

	clear := testutil.NewRequest(t, http.MethodDelete, "/api/session/cart")
	clear.AddCookie(device)
	rr = testutil.DoRequest(router, clear)

	got := testutil.UnmarshalResponse[sessionCartResponse](t, rr)
	assert.Empty(t, got.Items)
}

func deviceCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == cart.DeviceCookie {
			return c
		}
	}
	t.Fatal("device cookie not set")
	return nil
}
