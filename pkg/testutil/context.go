package testutil

import (
	"net/http"
	"time"

	id "codedrip/pkg/domain"
	"codedrip/pkg/requestcontext"
)

// WithUserID adds a user ID to the request context, simulating what the
// session middleware does for authenticated requests.
func WithUserID(req *http.Request, userID string) *http.Request {
	ctx := requestcontext.WithUserID(req.Context(), id.UserID(userID))
	return req.WithContext(ctx)
}

// WithTime pins the request clock, so identifiers derived from it are
// deterministic.
func WithTime(req *http.Request, t time.Time) *http.Request {
	ctx := requestcontext.WithTime(req.Context(), t)
	return req.WithContext(ctx)
}
