package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/ecommerce_api/internal/transport"
)

func TestCreateAndGetProduct(t *testing.T) {
	env := newTestEnv(t)

	created := createProduct(t, env, "Widget", 9.99)
	require.NotZero(t, created.ID)
	require.Equal(t, "Widget", created.ProductName)
	require.True(t, created.Price.Equal(decimal.RequireFromString("9.99")))

	rec, c := env.doJSONRequest(http.MethodGet, "/product/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(itoa(created.ID))
	require.NoError(t, env.P.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got transport.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "Widget", got.ProductName)
	require.True(t, got.Price.Equal(decimal.RequireFromString("9.99")))
}

func TestGetProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/product/3", nil)
	c.SetParamNames("id")
	c.SetParamValues("3")

	he := requireHTTPError(t, env.P.GetProduct(c), http.StatusNotFound)
	require.Contains(t, he.Message, "product 3")
}

func TestCreateProductMissingFields(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/products", map[string]any{})

	he := requireHTTPError(t, env.P.CreateProduct(c), http.StatusBadRequest)
	msg, ok := he.Message.(string)
	require.True(t, ok)
	require.Contains(t, msg, "product_name")
	require.Contains(t, msg, "price")
}

func TestCreateProductNegativePrice(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/products", map[string]any{
		"product_name": "Widget",
		"price":        -1.50,
	})

	he := requireHTTPError(t, env.P.CreateProduct(c), http.StatusBadRequest)
	require.Contains(t, he.Message, "price")
}

func TestCreateProductTooManyDecimals(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/products", map[string]any{
		"product_name": "Widget",
		"price":        9.999,
	})

	he := requireHTTPError(t, env.P.CreateProduct(c), http.StatusBadRequest)
	require.Contains(t, he.Message, "2 decimal places")
}

func TestCreateProductPriceTooLarge(t *testing.T) {
	env := newTestEnv(t)

	// numeric(7,2) cannot hold 6 integer digits
	_, c := env.doJSONRequest(http.MethodPost, "/products", map[string]any{
		"product_name": "Widget",
		"price":        100000.00,
	})

	he := requireHTTPError(t, env.P.CreateProduct(c), http.StatusBadRequest)
	require.Contains(t, he.Message, "price")
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)

	created := createProduct(t, env, "Widget", 9.99)

	rec, c := env.doJSONRequest(http.MethodPut, "/product/1", map[string]any{
		"product_name": "Deluxe Widget",
		"price":        19.95,
	})
	c.SetParamNames("id")
	c.SetParamValues(itoa(created.ID))
	require.NoError(t, env.P.UpdateProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got transport.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Deluxe Widget", got.ProductName)
	require.True(t, got.Price.Equal(decimal.RequireFromString("19.95")))
}

func TestUpdateProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPut, "/product/8", map[string]any{
		"product_name": "Ghost",
		"price":        1.00,
	})
	c.SetParamNames("id")
	c.SetParamValues("8")

	requireHTTPError(t, env.P.UpdateProduct(c), http.StatusNotFound)
}

func TestDeleteProductThenGet(t *testing.T) {
	env := newTestEnv(t)

	created := createProduct(t, env, "Widget", 9.99)

	rec, c := env.doJSONRequest(http.MethodDelete, "/product/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(itoa(created.ID))
	require.NoError(t, env.P.DeleteProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	_, c2 := env.doJSONRequest(http.MethodGet, "/product/1", nil)
	c2.SetParamNames("id")
	c2.SetParamValues(itoa(created.ID))
	requireHTTPError(t, env.P.GetProduct(c2), http.StatusNotFound)
}

func TestGetProductsList(t *testing.T) {
	env := newTestEnv(t)

	createProduct(t, env, "Widget", 9.99)
	createProduct(t, env, "Gadget", 24.50)

	rec, c := env.doJSONRequest(http.MethodGet, "/products", nil)
	require.NoError(t, env.P.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var products []transport.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)
	require.Equal(t, "Widget", products[0].ProductName)
	require.Equal(t, "Gadget", products[1].ProductName)
}
