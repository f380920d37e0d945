package dto

import (
	"time"

	"github.com/polystack/polystack/internal/model"
)

// CreateProductRequest represents the request body for creating a product.
// Price is a pointer so the handler can tell a missing field from 0.
type CreateProductRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProductResponse converts a Product model to ProductResponse DTO.
func ToProductResponse(product *model.Product) *ProductResponse {
	return &ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
	}
}

// ToProductResponses converts a slice of Product models.
// Always returns a non-nil slice so an empty table serializes as [].
func ToProductResponses(products []*model.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, *ToProductResponse(product))
	}
	return responses
}
