package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkravets/ecommerce_api/internal/models"
	"github.com/mkravets/ecommerce_api/internal/repo"
	"github.com/mkravets/ecommerce_api/internal/service"
	"github.com/mkravets/ecommerce_api/internal/transport"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	U  *UserHTTP
	P  *ProductHTTP
	O  *OrderHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Order{}, &models.OrderProduct{},
	))

	r := repo.NewGormRepo(db)

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		U:  &UserHTTP{Svc: &service.UserService{Repo: r}},
		P:  &ProductHTTP{Svc: &service.ProductService{Repo: r}},
		O:  &OrderHTTP{Svc: &service.OrderService{Repo: r}},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, code int) *echo.HTTPError {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %v", err)
	require.Equal(t, code, he.Code)
	return he
}

func createUser(t *testing.T, env *testEnv, name, address, email string) transport.UserResponse {
	t.Helper()
	rec, c := env.doJSONRequest(http.MethodPost, "/new_user", map[string]string{
		"name":    name,
		"address": address,
		"email":   email,
	})
	require.NoError(t, env.U.CreateUser(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func createProduct(t *testing.T, env *testEnv, name string, price float64) transport.ProductResponse {
	t.Helper()
	rec, c := env.doJSONRequest(http.MethodPost, "/products", map[string]any{
		"product_name": name,
		"price":        price,
	})
	require.NoError(t, env.P.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func placeOrder(t *testing.T, env *testEnv, userID uint, productIDs []uint) transport.OrderResponse {
	t.Helper()
	rec, c := env.doJSONRequest(http.MethodPost, "/orders/1", map[string]any{"products": productIDs})
	c.SetParamNames("user_id")
	c.SetParamValues(itoa(userID))
	require.NoError(t, env.O.PlaceOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
