package cart

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"codedrip/internal/catalog"
	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
	"codedrip/pkg/httputil"
	"codedrip/pkg/requestcontext"
)

// DeviceCookie identifies the anonymous device scope across requests.
const DeviceCookie = "codedrip_device"

// SessionHandler exposes the reconciled per-device cart. Unlike the plain
// cart resource, these routes run the full reconciliation model: local
// mirror while anonymous, remote mirror once the session authenticates.
type SessionHandler struct {
	sessions *SessionManager
	catalog  *catalog.Service
	logger   *slog.Logger
}

func NewSessionHandler(sessions *SessionManager, catalogService *catalog.Service, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{sessions: sessions, catalog: catalogService, logger: logger}
}

func (h *SessionHandler) Register(r chi.Router) {
	r.Get("/api/session/cart", h.handleGet)
	r.Post("/api/session/cart/items", h.handleAddItem)
	r.Patch("/api/session/cart/items", h.handleUpdateItem)
	r.Delete("/api/session/cart/items", h.handleRemoveItem)
	r.Delete("/api/session/cart", h.handleClear)
}

type sessionCartResponse struct {
	Items     []LineItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Subtotal  float64    `json:"subtotal"`
	Visible   bool       `json:"visible"`
}

func (h *SessionHandler) controller(w http.ResponseWriter, r *http.Request) *Controller {
	deviceID := h.deviceID(w, r)
	userID := requestcontext.UserID(r.Context())
	return h.sessions.Controller(r.Context(), deviceID, userID)
}

// DeviceIDFromRequest reads the device cookie without minting a new one.
func DeviceIDFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(DeviceCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// deviceID reads the device cookie, minting one on first contact.
func (h *SessionHandler) deviceID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(DeviceCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	deviceID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     DeviceCookie,
		Value:    deviceID,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return deviceID
}

func (h *SessionHandler) respond(w http.ResponseWriter, r *http.Request, controller *Controller) {
	lookup, err := h.catalog.PriceLookup(r.Context())
	if err != nil {
		h.logger.Error("catalog lookup failed", "error", err)
		lookup = func(id.ProductID) (float64, bool) { return 0, false }
	}
	httputil.WriteJSON(w, http.StatusOK, sessionCartResponse{
		Items:     controller.Items(),
		ItemCount: controller.ItemCount(),
		Subtotal:  controller.Subtotal(lookup),
		Visible:   controller.Visible(),
	})
}

func (h *SessionHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.controller(w, r))
}

func (h *SessionHandler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	item, err := req.validate()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	controller := h.controller(w, r)
	controller.AddItem(r.Context(), item.ProductID, item.Size, item.Color, item.Quantity)
	h.respond(w, r, controller)
}

func (h *SessionHandler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.ProductID == "" || req.Size == "" || req.Color == "" || req.Quantity == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing required fields"))
		return
	}

	controller := h.controller(w, r)
	controller.UpdateQuantity(r.Context(), Key{
		ProductID: id.ProductID(req.ProductID),
		Size:      catalog.Size(req.Size),
		Color:     catalog.Color(req.Color),
	}, *req.Quantity)
	h.respond(w, r, controller)
}

func (h *SessionHandler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.ProductID == "" || req.Size == "" || req.Color == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing required fields"))
		return
	}

	controller := h.controller(w, r)
	controller.RemoveItem(r.Context(), Key{
		ProductID: id.ProductID(req.ProductID),
		Size:      catalog.Size(req.Size),
		Color:     catalog.Color(req.Color),
	})
	h.respond(w, r, controller)
}

func (h *SessionHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	controller := h.controller(w, r)
	controller.Clear(r.Context())
	h.respond(w, r, controller)
}
