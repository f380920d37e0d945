package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/polystack/polystack/internal/metrics"
	"github.com/polystack/polystack/internal/model"
	"github.com/polystack/polystack/internal/repository"
)

// ProductStore is the persistence surface the product service depends on.
type ProductStore interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	ListProducts(ctx context.Context) ([]*model.Product, error)
}

// ProductService handles product business logic.
type ProductService struct {
	store    ProductStore
	validate *validator.Validate
	metrics  metrics.Recorder
}

// NewProductService creates a new ProductService.
func NewProductService(store ProductStore, recorder metrics.Recorder) *ProductService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ProductService{
		store:    store,
		validate: validator.New(),
		metrics:  recorder,
	}
}

// CreateProductInput defines input for creating a product.
// Price is a pointer so a missing field is distinguishable from zero.
type CreateProductInput struct {
	Name  string   `validate:"required"`
	Price *float64 `validate:"required,gte=0"`
}

// CreateProduct validates the input and inserts one product.
// The returned product carries the server-assigned ID and CreatedAt.
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*model.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, productValidationError(err)
	}

	product := &model.Product{
		Name:  input.Name,
		Price: *input.Price,
	}

	if err := s.store.CreateProduct(ctx, product); err != nil {
		switch {
		case errors.Is(err, repository.ErrNameExists):
			return nil, ErrNameTaken
		case errors.Is(err, repository.ErrInvalidInput):
			return nil, ErrInvalidInput
		default:
			s.metrics.IncStoreError()
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
	}

	s.metrics.IncProductCreated()
	return product, nil
}

// ListProducts returns every product in insertion order.
func (s *ProductService) ListProducts(ctx context.Context) ([]*model.Product, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		s.metrics.IncStoreError()
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	s.metrics.IncProductsListed()
	return products, nil
}

// productValidationError converts a validator error into the field-specific
// service sentinel.
func productValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if verrs[0].Field() == "Name" {
			return ErrInvalidName
		}
		return ErrInvalidPrice
	}
	return ErrInvalidInput
}
