package transport

import (
	"github.com/shopspring/decimal"

	"github.com/mkravets/ecommerce_api/internal/models"
)

const DateFormat = "2006-01-02"

type CreateUserRequest struct {
	Name    string `json:"name"    validate:"required,max=30"`
	Address string `json:"address" validate:"max=255"`
	Email   string `json:"email"   validate:"required,email,max=255"`
}

type UserResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

type CreateProductRequest struct {
	ProductName string           `json:"product_name" validate:"required,max=255"`
	Price       *decimal.Decimal `json:"price"        validate:"required"`
}

type ProductResponse struct {
	ID          uint            `json:"id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
}

type PlaceOrderRequest struct {
	Products []uint `json:"products"`
}

type OrderResponse struct {
	ID         uint   `json:"id"`
	OrderDate  string `json:"order_date"`
	UserID     uint   `json:"user_id"`
	ProductIDs []uint `json:"product_ids"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Address: u.Address,
		Email:   u.Email,
	}
}

func ToUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}

func ToProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		ProductName: p.Name,
		Price:       p.Price,
	}
}

func ToProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i])
	}
	return out
}

func ToOrderResponse(o *models.Order, productIDs []uint) OrderResponse {
	if productIDs == nil {
		productIDs = []uint{}
	}
	return OrderResponse{
		ID:         o.ID,
		OrderDate:  o.OrderDate.Format(DateFormat),
		UserID:     o.UserID,
		ProductIDs: productIDs,
	}
}
