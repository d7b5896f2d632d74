package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"       json:"id"`
	Name    string `gorm:"size:30;not null"               json:"name"`
	Address string `gorm:"size:255"                       json:"address"`
	Email   string `gorm:"size:255;uniqueIndex;not null"  json:"email"`
}

type Product struct {
	ID    uint            `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name  string          `gorm:"size:255;not null"           json:"product_name"`
	Price decimal.Decimal `gorm:"type:numeric(7,2);not null"  json:"price"`
}

type Order struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderDate time.Time `gorm:"not null"                 json:"order_date"`
	UserID    uint      `gorm:"index;not null"           json:"user_id"`
}

// OrderProduct is one row of the orders<->products junction table.
// The pair is the primary key, so a product appears in an order at most once.
type OrderProduct struct {
	OrderID   uint `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	ProductID uint `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
}

func (OrderProduct) TableName() string { return "orders_products" }
