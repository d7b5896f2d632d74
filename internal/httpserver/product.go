package httpserver

import (
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/mkravets/ecommerce_api/internal/es"
	"github.com/mkravets/ecommerce_api/internal/logging"
	"github.com/mkravets/ecommerce_api/internal/models"
	"github.com/mkravets/ecommerce_api/internal/mykafka"
	"github.com/mkravets/ecommerce_api/internal/service"
	"github.com/mkravets/ecommerce_api/internal/transport"
)

type ProductHTTP struct {
	Svc      *service.ProductService
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	products, err := h.Svc.ListProducts(ctx)
	if err != nil {
		return mapServiceError(l, "get_products", err)
	}

	return c.JSON(http.StatusOK, transport.ToProductResponses(products))
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return mapServiceError(l, "get_product", err)
	}

	return c.JSON(http.StatusOK, transport.ToProductResponse(product))
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		return mapServiceError(l, "create_product", err)
	}

	h.syncIndex(c, product)
	publish(c, h.Producer, "product_events", map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	l.Info("create_product_success", "productID", product.ID)
	return c.JSON(http.StatusCreated, transport.ToProductResponse(product))
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Svc.UpdateProduct(ctx, id, req)
	if err != nil {
		return mapServiceError(l, "update_product", err)
	}

	h.syncIndex(c, product)
	publish(c, h.Producer, "product_events", map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})

	l.Info("update_product_success", "productID", product.ID)
	return c.JSON(http.StatusOK, transport.ToProductResponse(product))
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteProduct(ctx, id); err != nil {
		return mapServiceError(l, "delete_product", err)
	}

	if err := es.DeleteProduct(ctx, h.ES, id); err != nil {
		l.Warn("es_delete_error", "productID", id, "error", err)
	}
	publish(c, h.Producer, "product_events", map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("delete_product_success", "productID", id)
	return c.JSON(http.StatusOK, echo.Map{
		"message": fmt.Sprintf("successfully deleted product %d", id),
	})
}

func (h *ProductHTTP) syncIndex(c echo.Context, product *models.Product) {
	if err := es.IndexProduct(c.Request().Context(), h.ES, product); err != nil {
		logging.FromContext(c.Request().Context()).Warn("es_index_error", "productID", product.ID, "error", err)
	}
}
