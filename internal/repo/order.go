package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mkravets/ecommerce_api/internal/models"
)

func (r *GormRepo) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order := models.Order{}
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

// AddOrderProduct inserts the association row. Re-adding an existing pair is
// a no-op, never a constraint violation.
func (r *GormRepo) AddOrderProduct(ctx context.Context, orderID, productID uint) error {
	row := models.OrderProduct{OrderID: orderID, ProductID: productID}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

// RemoveOrderProduct deletes the association row and reports whether it existed.
func (r *GormRepo) RemoveOrderProduct(ctx context.Context, orderID, productID uint) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Delete(&models.OrderProduct{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) ListOrderProductIDs(ctx context.Context, orderID uint) ([]uint, error) {
	var ids []uint
	if err := r.DB.WithContext(ctx).
		Model(&models.OrderProduct{}).
		Where("order_id = ?", orderID).
		Order("product_id ASC").
		Pluck("product_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *GormRepo) ListUserOrderIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteOrder removes the order and its association rows in one transaction.
func (r *GormRepo) DeleteOrder(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(tx *GormRepo) error {
		if err := tx.DB.Where("order_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}

		res := tx.DB.Delete(&models.Order{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
