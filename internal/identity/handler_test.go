package identity_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codedrip/internal/identity"
	"codedrip/pkg/testutil"
)

func newAuthRouter(t *testing.T) (chi.Router, *identity.Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := identity.NewService(identity.NewInMemoryUserStore(), identity.NewTokenService("test-signing-key", time.Hour), logger)
	handler := identity.NewHandler(service, logger)
	r := chi.NewRouter()
	handler.Register(r)
	return r, service
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("logs in and sets the session cookie", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/login",
			map[string]any{"email": "ada.lovelace@example.com"}))

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[identity.Identity](t, rr)
		assert.Equal(t, "Ada Lovelace", got.DisplayName)

		var session *http.Cookie
		for _, c := range rr.Result().Cookies() {
			if c.Name == identity.SessionCookie {
				session = c
			}
		}
		require.NotNil(t, session)
		assert.NotEmpty(t, session.Value)
		assert.True(t, session.HttpOnly)
	})

	t.Run("invalid email is a bad request", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/login",
			map[string]any{"email": "nope"}))

		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	})
}

func TestAuthHandler_CurrentUser(t *testing.T) {
	t.Run("anonymous request gets a JSON null", func(t *testing.T) {
		router, _ := newAuthRouter(t)

		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/auth/user"))

		testutil.AssertStatus(t, rr, http.StatusOK)
		assert.JSONEq(t, "null", string(testutil.ReadBody(t, rr)))
	})

	t.Run("authenticated request gets the identity", func(t *testing.T) {
		router, service := newAuthRouter(t)
		user, _, err := service.Login(context.Background(), "ada.lovelace@example.com")
		require.NoError(t, err)

		req := testutil.WithUserID(testutil.NewRequest(t, http.MethodGet, "/api/auth/user"), user.ID.String())
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatus(t, rr, http.StatusOK)
		got := testutil.UnmarshalResponse[identity.Identity](t, rr)
		assert.Equal(t, user.ID, got.ID)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	router, _ := newAuthRouter(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/logout", nil))

	testutil.AssertStatus(t, rr, http.StatusOK)
	var cleared *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == identity.SessionCookie {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
