package httpserver

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type Deps struct {
	DB             *gorm.DB
	UserHandler    *UserHTTP
	ProductHandler *ProductHTTP
	OrderHandler   *OrderHTTP
	SearchHandler  *SearchHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(204) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(204) })

	e.GET("/users", d.UserHandler.GetUsers)
	e.GET("/users/:id", d.UserHandler.GetUser)
	e.POST("/new_user", d.UserHandler.CreateUser)
	e.PUT("/users/:id", d.UserHandler.UpdateUser)
	e.DELETE("/users/:id", d.UserHandler.DeleteUser)

	e.GET("/products", d.ProductHandler.GetProducts)
	e.GET("/product/:id", d.ProductHandler.GetProduct)
	e.POST("/products", d.ProductHandler.CreateProduct)
	e.PUT("/product/:id", d.ProductHandler.UpdateProduct)
	e.DELETE("/product/:id", d.ProductHandler.DeleteProduct)

	e.POST("/orders/:user_id", d.OrderHandler.PlaceOrder)
	e.GET("/orders/:order_id", d.OrderHandler.GetOrder)
	e.DELETE("/orders/:order_id", d.OrderHandler.DeleteOrder)
	e.PUT("/orders/:order_id/products/:product_id", d.OrderHandler.AddProduct)
	e.PUT("/orders/:order_id/remove_product/:product_id", d.OrderHandler.RemoveProduct)
	e.GET("/orders/user/:user_id", d.OrderHandler.GetUserOrders)
	e.GET("/orders/:order_id/products", d.OrderHandler.GetOrderProducts)

	e.GET("/search", d.SearchHandler.Search)
}
