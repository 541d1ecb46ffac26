package cart

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"codedrip/internal/catalog"
	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
	"codedrip/pkg/httputil"
	"codedrip/pkg/requestcontext"
)

// Handler exposes the anonymous cart resource and the authenticated user
// cart over HTTP.
type Handler struct {
	resources ResourceStore
	remote    RemoteStore
	logger    *slog.Logger
}

func NewHandler(resources ResourceStore, remote RemoteStore, logger *slog.Logger) *Handler {
	return &Handler{resources: resources, remote: remote, logger: logger}
}

// Register mounts the cart routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/cart", h.handleCreate)
	r.Get("/api/cart/{cartID}", h.handleGet)
	r.Post("/api/cart/{cartID}/items", h.handleAddItem)
	r.Patch("/api/cart/{cartID}/items", h.handleUpdateItem)
	r.Delete("/api/cart/{cartID}/items", h.handleRemoveItem)
	r.Delete("/api/cart/{cartID}", h.handleClear)
	r.Get("/api/user/cart", h.handleGetUserCart)
	r.Put("/api/user/cart", h.handleSaveUserCart)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	c, err := h.resources.Create(r.Context())
	if err != nil {
		h.logger.Error("cart creation failed", "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create cart"))
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.resources.Get(r.Context(), id.CartID(chi.URLParam(r, "cartID")))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

type addItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  *int   `json:"quantity"`
}

// validate enforces the add-to-cart schema: known enums, positive quantity.
// Quantity defaults to 1 when omitted.
func (req addItemRequest) validate() (LineItem, error) {
	var issues []dErrors.Issue
	if req.ProductID == "" {
		issues = append(issues, dErrors.Issue{Field: "productId", Message: "productId is required"})
	}
	if !catalog.Size(req.Size).Valid() {
		issues = append(issues, dErrors.Issue{Field: "size", Message: "unknown size"})
	}
	if !catalog.Color(req.Color).Valid() {
		issues = append(issues, dErrors.Issue{Field: "color", Message: "unknown color"})
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		issues = append(issues, dErrors.Issue{Field: "quantity", Message: "quantity must be at least 1"})
	}
	if len(issues) > 0 {
		return LineItem{}, dErrors.Validation("invalid cart item data", issues)
	}
	return LineItem{
		ProductID: id.ProductID(req.ProductID),
		Size:      catalog.Size(req.Size),
		Color:     catalog.Color(req.Color),
		Quantity:  quantity,
	}, nil
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.resources.Get(r.Context(), id.CartID(chi.URLParam(r, "cartID")))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c.Items = AddItem(c.Items, item)
	if err := h.resources.Save(r.Context(), c); err != nil {
		h.logger.Error("cart save failed", "cart_id", c.ID, "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to add item to cart"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

type updateItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  *int   `json:"quantity"`
}

func (h *Handler) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.ProductID == "" || req.Size == "" || req.Color == "" || req.Quantity == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing required fields"))
		return
	}

	key := Key{ProductID: id.ProductID(req.ProductID), Size: catalog.Size(req.Size), Color: catalog.Color(req.Color)}
	c, err := h.resources.Get(r.Context(), id.CartID(chi.URLParam(r, "cartID")))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if !hasItem(c.Items, key) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "item not found in cart"))
		return
	}
	c.Items = UpdateQuantity(c.Items, key, *req.Quantity)
	if err := h.resources.Save(r.Context(), c); err != nil {
		h.logger.Error("cart save failed", "cart_id", c.ID, "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update cart item"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

type removeItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (h *Handler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.ProductID == "" || req.Size == "" || req.Color == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "missing required fields"))
		return
	}

	key := Key{ProductID: id.ProductID(req.ProductID), Size: catalog.Size(req.Size), Color: catalog.Color(req.Color)}
	c, err := h.resources.Get(r.Context(), id.CartID(chi.URLParam(r, "cartID")))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c.Items = RemoveItem(c.Items, key)
	if err := h.resources.Save(r.Context(), c); err != nil {
		h.logger.Error("cart save failed", "cart_id", c.ID, "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to remove item from cart"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	c, err := h.resources.Get(r.Context(), id.CartID(chi.URLParam(r, "cartID")))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	c.Items = []LineItem{}
	if err := h.resources.Save(r.Context(), c); err != nil {
		h.logger.Error("cart save failed", "cart_id", c.ID, "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear cart"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

type userCartResponse struct {
	Items []LineItem `json:"items"`
}

func (h *Handler) handleGetUserCart(w http.ResponseWriter, r *http.Request) {
	userID := requestcontext.UserID(r.Context())
	if userID.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	items, err := h.remote.Fetch(r.Context(), userID)
	if err != nil {
		h.logger.Error("user cart fetch failed", "user_id", userID, "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch cart"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, userCartResponse{Items: items})
}

type saveUserCartRequest struct {
	Items []addItemRequest `json:"items"`
}

func (h *Handler) handleSaveUserCart(w http.ResponseWriter, r *http.Request) {
	userID := requestcontext.UserID(r.Context())
	if userID.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	var req saveUserCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	// The saved payload is a full snapshot, so duplicate keys collapse here
	// the same way an add would merge them.
	items := make([]LineItem, 0, len(req.Items))
	for _, entry := range req.Items {
		item, err := entry.validate()
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		items = AddItem(items, item)
	}

	if err := h.remote.Save(r.Context(), userID, items); err != nil {
		h.logger.Error("user cart save failed", "user_id", userID, "error", err)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save cart"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, userCartResponse{Items: items})
}

func hasItem(items []LineItem, key Key) bool {
	for _, item := range items {
		if item.Key() == key {
			return true
		}
	}
	return false
}
