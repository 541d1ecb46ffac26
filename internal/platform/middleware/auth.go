package middleware

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
	"codedrip/pkg/httputil"
	"codedrip/pkg/requestcontext"
)

// UserResolver validates a session token and returns the user it belongs to.
type UserResolver interface {
	ResolveUserID(ctx context.Context, token string) (id.UserID, bool)
}

// SessionAuth resolves the named session cookie into a user ID on the
// request context. Requests without a valid session proceed as anonymous;
// handlers that need authentication check the context themselves.
func SessionAuth(cookieName string, resolver UserResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := resolver.ResolveUserID(r.Context(), cookie.Value)
			if !ok {
				logger.Debug("session token rejected, continuing anonymous")
				next.ServeHTTP(w, r)
				return
			}

			ctx := requestcontext.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdminToken guards admin routes with a shared token header. An empty
// configured token disables the routes entirely.
func RequireAdminToken(token string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "not found"))
				return
			}
			got := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logger.Warn("admin token rejected", "path", r.URL.Path)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid admin token"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
