package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	id "codedrip/pkg/domain"
	"codedrip/pkg/requestcontext"
)

type stubResolver struct {
	userID id.UserID
	ok     bool
}

func (s stubResolver) ResolveUserID(context.Context, string) (id.UserID, bool) {
	return s.userID, s.ok
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func captureUserID(captured *id.UserID) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = requestcontext.UserID(r.Context())
	})
}

func TestSessionAuth(t *testing.T) {
	t.Run("valid cookie puts the user on the context", func(t *testing.T) {
		var captured id.UserID
		mw := SessionAuth("session", stubResolver{userID: "user-1", ok: true}, testLogger())
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "token"})

		mw(captureUserID(&captured)).ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, id.UserID("user-1"), captured)
	})

	t.Run("missing cookie proceeds anonymous", func(t *testing.T) {
		var captured id.UserID
		mw := SessionAuth("session", stubResolver{ok: true, userID: "user-1"}, testLogger())
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		mw(captureUserID(&captured)).ServeHTTP(httptest.NewRecorder(), req)

		assert.True(t, captured.IsZero())
	})

	t.Run("rejected token proceeds anonymous", func(t *testing.T) {
		var captured id.UserID
		mw := SessionAuth("session", stubResolver{ok: false}, testLogger())
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: "expired"})

		rec := httptest.NewRecorder()
		mw(captureUserID(&captured)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, captured.IsZero())
	})
}

func TestRequireAdminToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("matching token passes through", func(t *testing.T) {
		mw := RequireAdminToken("secret", testLogger())
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
		req.Header.Set("X-Admin-Token", "secret")

		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("wrong token is unauthorized", func(t *testing.T) {
		mw := RequireAdminToken("secret", testLogger())
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
		req.Header.Set("X-Admin-Token", "guess")

		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unconfigured token hides the routes", func(t *testing.T) {
		mw := RequireAdminToken("", testLogger())
		req := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)

		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
