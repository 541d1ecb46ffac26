package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
	"codedrip/pkg/httputil"
)

// Handler exposes the product catalog over HTTP.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public product routes.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/products", h.handleList)
	r.Get("/api/products/{productID}", h.handleGet)
}

// RegisterAdmin mounts the admin upload route; callers wrap it with the
// admin-token middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/api/admin/products", h.handleCreate)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := Filter{
		Category: query.Get("category"),
		Featured: query.Get("featured") == "true",
		New:      query.Get("new") == "true",
	}

	products, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("product listing failed", "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	productID := id.ProductID(chi.URLParam(r, "productID"))
	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, product)
}

type uploadRequest struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Tagline       string   `json:"tagline"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice"`
	Category      string   `json:"category"`
	Type          string   `json:"type"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Images        []string `json:"images"`
	Featured      bool     `json:"featured"`
	New           *bool    `json:"new"`
	InStock       *bool    `json:"inStock"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req uploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	product, err := h.service.CreateProduct(r.Context(), UploadInput{
		ID:            req.ID,
		Name:          req.Name,
		Tagline:       req.Tagline,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Type:          req.Type,
		Colors:        req.Colors,
		Sizes:         req.Sizes,
		Images:        req.Images,
		Featured:      req.Featured,
		New:           req.New,
		InStock:       req.InStock,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, product)
}
