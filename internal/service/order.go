package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mkravets/ecommerce_api/internal/models"
	"github.com/mkravets/ecommerce_api/internal/repo"
	"github.com/mkravets/ecommerce_api/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// PlaceOrder creates an order for the user dated today and associates every
// requested product. The whole placement is one transaction: an unknown
// product id rolls back everything, nothing partially built is persisted.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, req transport.PlaceOrderRequest) (*models.Order, []uint, error) {
	var (
		order      *models.Order
		productIDs []uint
	)

	err := s.Repo.Transaction(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetUser(ctx, userID); err != nil {
			return asNotFound(err, "user", userID)
		}

		for _, pid := range req.Products {
			if _, err := tx.GetProduct(ctx, pid); err != nil {
				return asNotFound(err, "product", pid)
			}
		}

		o := &models.Order{
			OrderDate: time.Now().UTC().Truncate(24 * time.Hour),
			UserID:    userID,
		}
		if err := tx.CreateOrder(ctx, o); err != nil {
			return err
		}

		for _, pid := range req.Products {
			if err := tx.AddOrderProduct(ctx, o.ID, pid); err != nil {
				return err
			}
		}

		ids, err := tx.ListOrderProductIDs(ctx, o.ID)
		if err != nil {
			return err
		}

		order = o
		productIDs = ids
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return order, productIDs, nil
}

// AddProduct appends the product to the order's association set. Re-adding an
// already associated product succeeds without creating a duplicate row.
func (s *OrderService) AddProduct(ctx context.Context, orderID, productID uint) error {
	if _, err := s.Repo.GetOrder(ctx, orderID); err != nil {
		return asNotFound(err, "order", orderID)
	}
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		return asNotFound(err, "product", productID)
	}
	return s.Repo.AddOrderProduct(ctx, orderID, productID)
}

func (s *OrderService) RemoveProduct(ctx context.Context, orderID, productID uint) error {
	if _, err := s.Repo.GetOrder(ctx, orderID); err != nil {
		return asNotFound(err, "order", orderID)
	}
	if _, err := s.Repo.GetProduct(ctx, productID); err != nil {
		return asNotFound(err, "product", productID)
	}

	removed, err := s.Repo.RemoveOrderProduct(ctx, orderID, productID)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("product %d %w with order %d", productID, ErrNotAssociated, orderID)
	}
	return nil
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID uint) ([]uint, error) {
	if _, err := s.Repo.GetUser(ctx, userID); err != nil {
		return nil, asNotFound(err, "user", userID)
	}
	return s.Repo.ListUserOrderIDs(ctx, userID)
}

func (s *OrderService) ListOrderProducts(ctx context.Context, orderID uint) ([]uint, error) {
	if _, err := s.Repo.GetOrder(ctx, orderID); err != nil {
		return nil, asNotFound(err, "order", orderID)
	}
	return s.Repo.ListOrderProductIDs(ctx, orderID)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*models.Order, []uint, error) {
	order, err := s.Repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, nil, asNotFound(err, "order", orderID)
	}
	ids, err := s.Repo.ListOrderProductIDs(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, ids, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID uint) error {
	if err := s.Repo.DeleteOrder(ctx, orderID); err != nil {
		return asNotFound(err, "order", orderID)
	}
	return nil
}
