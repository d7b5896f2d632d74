package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mkravets/ecommerce_api/internal/models"
)

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormRepo) SaveProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Save(product).Error
}

// DeleteProduct removes the product and any association rows pointing at it
// in one transaction.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(tx *GormRepo) error {
		if err := tx.DB.Where("product_id = ?", id).Delete(&models.OrderProduct{}).Error; err != nil {
			return err
		}

		res := tx.DB.Delete(&models.Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
