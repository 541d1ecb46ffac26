// Package httpapi assembles the storefront's HTTP surface.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"codedrip/internal/cart"
	"codedrip/internal/catalog"
	"codedrip/internal/identity"
	"codedrip/internal/order"
	"codedrip/internal/platform/metrics"
	"codedrip/internal/platform/middleware"
	"codedrip/internal/subscriber"
	"codedrip/pkg/httputil"
)

// Deps carries everything the router needs. Optional fields may be nil and
// their routes are skipped.
type Deps struct {
	Logger      *slog.Logger
	HTTPMetrics *metrics.Metrics
	AdminToken  string

	Identity   *identity.Service
	Catalog    *catalog.Handler
	Cart       *cart.Handler
	Session    *cart.SessionHandler
	Checkout   *order.CheckoutHandler
	Orders     *order.Handler
	Auth       *identity.Handler
	Subscriber *subscriber.Handler

	// HealthCheck pings backing stores; nil means the process itself is the
	// only health signal.
	HealthCheck func(ctx context.Context) error
}

// NewRouter wires middleware and all public endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if deps.HTTPMetrics != nil {
		r.Use(deps.HTTPMetrics.Middleware)
	}
	if deps.Identity != nil {
		r.Use(middleware.SessionAuth(identity.SessionCookie, deps.Identity, deps.Logger))
	}

	deps.Catalog.Register(r)
	deps.Cart.Register(r)
	deps.Session.Register(r)
	deps.Checkout.Register(r)
	deps.Orders.Register(r)
	deps.Auth.Register(r)
	deps.Subscriber.Register(r)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdminToken(deps.AdminToken, deps.Logger))
		deps.Catalog.RegisterAdmin(admin)
		deps.Subscriber.RegisterAdmin(admin)
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(req.Context()); err != nil {
				deps.Logger.Error("health check failed", "error", err)
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}
