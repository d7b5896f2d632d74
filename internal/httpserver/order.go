package httpserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkravets/ecommerce_api/internal/logging"
	"github.com/mkravets/ecommerce_api/internal/mykafka"
	"github.com/mkravets/ecommerce_api/internal/service"
	"github.com/mkravets/ecommerce_api/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place_order")

	userID, err := parseID(c, "user_id")
	if err != nil {
		return err
	}

	var req transport.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("place_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, productIDs, err := h.Svc.PlaceOrder(ctx, userID, req)
	if err != nil {
		return mapServiceError(l, "place_order", err)
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":     "order_placed",
		"orderID":  order.ID,
		"userID":   order.UserID,
		"products": productIDs,
	})

	l.Info("place_order_success", "orderID", order.ID, "userID", order.UserID)
	return c.JSON(http.StatusCreated, transport.ToOrderResponse(order, productIDs))
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order")

	orderID, err := parseID(c, "order_id")
	if err != nil {
		return err
	}

	order, productIDs, err := h.Svc.GetOrder(ctx, orderID)
	if err != nil {
		return mapServiceError(l, "get_order", err)
	}

	return c.JSON(http.StatusOK, transport.ToOrderResponse(order, productIDs))
}

func (h *OrderHTTP) AddProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.add_product")

	orderID, err := parseID(c, "order_id")
	if err != nil {
		return err
	}
	productID, err := parseID(c, "product_id")
	if err != nil {
		return err
	}

	if err := h.Svc.AddProduct(ctx, orderID, productID); err != nil {
		return mapServiceError(l, "add_product", err)
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":      "order_product_added",
		"orderID":   orderID,
		"productID": productID,
	})

	l.Info("add_product_success", "orderID", orderID, "productID", productID)
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("product %d added to order %d", productID, orderID),
	})
}

func (h *OrderHTTP) RemoveProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.remove_product")

	orderID, err := parseID(c, "order_id")
	if err != nil {
		return err
	}
	productID, err := parseID(c, "product_id")
	if err != nil {
		return err
	}

	if err := h.Svc.RemoveProduct(ctx, orderID, productID); err != nil {
		return mapServiceError(l, "remove_product", err)
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":      "order_product_removed",
		"orderID":   orderID,
		"productID": productID,
	})

	l.Info("remove_product_success", "orderID", orderID, "productID", productID)
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("product %d removed from order %d", productID, orderID),
	})
}

func (h *OrderHTTP) GetUserOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_user_orders")

	userID, err := parseID(c, "user_id")
	if err != nil {
		return err
	}

	orderIDs, err := h.Svc.ListUserOrders(ctx, userID)
	if err != nil {
		return mapServiceError(l, "get_user_orders", err)
	}
	if orderIDs == nil {
		orderIDs = []uint{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":   fmt.Sprintf("the following orders were retrieved for user %d: %s", userID, joinIDs(orderIDs)),
		"order_ids": orderIDs,
	})
}

func (h *OrderHTTP) GetOrderProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_order_products")

	orderID, err := parseID(c, "order_id")
	if err != nil {
		return err
	}

	productIDs, err := h.Svc.ListOrderProducts(ctx, orderID)
	if err != nil {
		return mapServiceError(l, "get_order_products", err)
	}
	if productIDs == nil {
		productIDs = []uint{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     fmt.Sprintf("the following products were retrieved for order %d: %s", orderID, joinIDs(productIDs)),
		"product_ids": productIDs,
	})
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.delete_order")

	orderID, err := parseID(c, "order_id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteOrder(ctx, orderID); err != nil {
		return mapServiceError(l, "delete_order", err)
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":    "order_deleted",
		"orderID": orderID,
	})

	l.Info("delete_order_success", "orderID", orderID)
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("successfully deleted order %d", orderID),
	})
}
