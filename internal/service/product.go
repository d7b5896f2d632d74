package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mkravets/ecommerce_api/internal/models"
	"github.com/mkravets/ecommerce_api/internal/repo"
	"github.com/mkravets/ecommerce_api/internal/transport"
	"github.com/mkravets/ecommerce_api/internal/validation"
)

type ProductService struct {
	Repo *repo.GormRepo
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "product", id)
	}
	return product, nil
}

func (s *ProductService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:  req.ProductName,
		Price: *req.Price,
	}
	if err := s.Repo.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req transport.CreateProductRequest) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, asNotFound(err, "product", id)
	}

	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product.Name = req.ProductName
	product.Price = *req.Price

	if err := s.Repo.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		return asNotFound(err, "product", id)
	}
	return nil
}

func validateProduct(req transport.CreateProductRequest) error {
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if req.Price.IsNegative() {
		return fmt.Errorf("%w: price: must not be negative", ErrValidation)
	}
	if !req.Price.Equal(req.Price.Round(2)) {
		return fmt.Errorf("%w: price: must have at most 2 decimal places", ErrValidation)
	}
	// numeric(7,2) holds at most 5 integer digits
	if req.Price.GreaterThanOrEqual(decimal.NewFromInt(100000)) {
		return fmt.Errorf("%w: price: must be less than 100000", ErrValidation)
	}
	return nil
}
