package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mkravets/ecommerce_api/internal/models"
)

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user := models.User{}
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := models.User{}
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) SaveUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Save(user).Error
}

// DeleteUser removes the user together with their orders and the orders'
// association rows, all in one transaction.
func (r *GormRepo) DeleteUser(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(tx *GormRepo) error {
		var orderIDs []uint
		if err := tx.DB.Model(&models.Order{}).Where("user_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.DB.Where("order_id IN ?", orderIDs).Delete(&models.OrderProduct{}).Error; err != nil {
				return err
			}
			if err := tx.DB.Where("user_id = ?", id).Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		res := tx.DB.Delete(&models.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
