package order

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"codedrip/internal/cart"
	"codedrip/internal/checkout"
	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
	"codedrip/pkg/httputil"
)

// Handler exposes checkout order creation and lookup.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/orders", h.handleCreate)
	r.Get("/api/orders/{orderID}", h.handleGet)
}

type createRequest struct {
	Items        []cart.LineItem `json:"items"`
	CustomerInfo CustomerInfo    `json:"customerInfo"`
	Subtotal     *float64        `json:"subtotal"`
	Shipping     *float64        `json:"shipping"`
	Tax          *float64        `json:"tax"`
	Total        *float64        `json:"total"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.Subtotal == nil || req.Shipping == nil || req.Total == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid order totals"))
		return
	}

	// Tax may be omitted by older clients; derive it from the subtotal so
	// the recorded breakdown stays consistent.
	tax := *req.Subtotal * checkout.TaxRate
	if req.Tax != nil {
		tax = *req.Tax
	}

	o, err := h.service.CreateOrder(r.Context(), CreateInput{
		Items:        req.Items,
		CustomerInfo: req.CustomerInfo,
		Subtotal:     *req.Subtotal,
		Shipping:     *req.Shipping,
		Tax:          tax,
		Total:        *req.Total,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, o)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.GetOrder(r.Context(), id.OrderID(chi.URLParam(r, "orderID")))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, o)
}
