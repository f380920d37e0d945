package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/polystack/polystack/internal/handler/dto"
	"github.com/polystack/polystack/internal/model"
	"github.com/polystack/polystack/internal/service"
)

// productService is the business surface the product handler depends on.
type productService interface {
	CreateProduct(ctx context.Context, input service.CreateProductInput) (*model.Product, error)
	ListProducts(ctx context.Context) ([]*model.Product, error)
}

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	svc    productService
	logger *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(svc productService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /products.
// Returns every row in insertion order; an empty table yields [].
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListProducts(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProductResponses(products))
}

// Create handles POST /products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	product, err := h.svc.CreateProduct(r.Context(), service.CreateProductInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("product_created", "product_id", product.ID, "name", product.Name)

	writeJSON(w, http.StatusCreated, dto.ToProductResponse(product))
}

// handleServiceError maps service errors to HTTP responses.
func (h *ProductHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidName):
		writeError(w, http.StatusBadRequest, "INVALID_NAME", "Name is required")
	case errors.Is(err, service.ErrInvalidPrice):
		writeError(w, http.StatusBadRequest, "INVALID_PRICE", "Price is required and must be zero or positive")
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "Input rejected by the store")
	case errors.Is(err, service.ErrNameTaken):
		writeError(w, http.StatusConflict, "NAME_TAKEN", "Product name already in catalog")
	case errors.Is(err, service.ErrStoreUnavailable):
		h.logger.Error("store_unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Store unavailable")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
