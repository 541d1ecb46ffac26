package order

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"codedrip/internal/cart"
	"codedrip/internal/catalog"
	"codedrip/internal/checkout"
	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
	"codedrip/pkg/httputil"
	"codedrip/pkg/requestcontext"
)

// CheckoutHandler finalizes the reconciled session cart: it prices the cart
// server-side, records the order, and clears the cart on success.
type CheckoutHandler struct {
	sessions *cart.SessionManager
	catalog  *catalog.Service
	service  *Service
	logger   *slog.Logger
}

func NewCheckoutHandler(sessions *cart.SessionManager, catalogService *catalog.Service, service *Service, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions, catalog: catalogService, service: service, logger: logger}
}

func (h *CheckoutHandler) Register(r chi.Router) {
	r.Get("/api/session/checkout/totals", h.handleTotals)
	r.Post("/api/session/checkout", h.handleCheckout)
}

func (h *CheckoutHandler) controller(r *http.Request) (*cart.Controller, bool) {
	deviceID, ok := cart.DeviceIDFromRequest(r)
	if !ok {
		return nil, false
	}
	return h.sessions.Controller(r.Context(), deviceID, requestcontext.UserID(r.Context())), true
}

func (h *CheckoutHandler) handleTotals(w http.ResponseWriter, r *http.Request) {
	controller, ok := h.controller(r)
	if !ok {
		// No device cookie means no cart yet; totals for the empty cart.
		httputil.WriteJSON(w, http.StatusOK, checkout.ComputeTotals(nil, func(id.ProductID) (float64, bool) { return 0, false }))
		return
	}

	lookup, err := h.catalog.PriceLookup(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, checkout.ComputeTotals(controller.Items(), lookup))
}

type checkoutRequest struct {
	CustomerInfo CustomerInfo `json:"customerInfo"`
}

func (h *CheckoutHandler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	controller, ok := h.controller(r)
	if !ok {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "order must have at least one item"))
		return
	}

	lookup, err := h.catalog.PriceLookup(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	items := controller.Items()
	totals := checkout.ComputeTotals(items, lookup)

	o, err := h.service.CreateOrder(r.Context(), CreateInput{
		Items:        items,
		CustomerInfo: req.CustomerInfo,
		Subtotal:     totals.Subtotal,
		Shipping:     totals.Shipping,
		Tax:          totals.Tax,
		Total:        totals.Total,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	// Clearing the cart is the checkout flow's job, not the recorder's.
	controller.Clear(r.Context())
	httputil.WriteJSON(w, http.StatusCreated, o)
}
