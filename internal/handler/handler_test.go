package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHome(t *testing.T) {
	c, rec := request(t, http.MethodGet, "/", "")
	require.NoError(t, Home(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestHealthCheck(t *testing.T) {
	c, rec := request(t, http.MethodGet, "/health", "")
	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestSignUpMalformedBody(t *testing.T) {
	c, rec := request(t, http.MethodPost, "/signup", "{not json")
	require.NoError(t, SignUp(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request")
}

func TestSignUpValidationError(t *testing.T) {
	c, rec := request(t, http.MethodPost, "/signup", `{"name":"Jane"}`)
	require.NoError(t, SignUp(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error occurred on 'email' field")
}

func TestLoginValidationError(t *testing.T) {
	c, rec := request(t, http.MethodPost, "/login", `{"email":"jane@example.com"}`)
	require.NoError(t, Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error occurred on 'password' field")
}

func TestCreateCategoryValidationError(t *testing.T) {
	c, rec := request(t, http.MethodPost, "/product-category", `{}`)
	require.NoError(t, CreateCategory(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error occurred on 'name' field")
}

func TestCreateProductMalformedBody(t *testing.T) {
	c, rec := request(t, http.MethodPost, "/product", `{"price":"abc"}`)
	require.NoError(t, CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request")
}

func TestUpdateProductNonNumericID(t *testing.T) {
	c, rec := request(t, http.MethodPut, "/product/abc", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, UpdateProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestDeleteProductNonNumericID(t *testing.T) {
	c, rec := request(t, http.MethodDelete, "/product/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, DeleteProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaceOrderWithoutAuthContext(t *testing.T) {
	c, rec := request(t, http.MethodPost, "/order", `{"order_request":[]}`)
	require.NoError(t, PlaceOrder(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPlaceOrderMissingOrderRequest(t *testing.T) {
	c, rec := request(t, http.MethodPost, "/order", `{}`)
	c.Set("user_id", uint(1))
	require.NoError(t, PlaceOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error occurred on 'order request' field")
}

func TestListOrdersWithoutAuthContext(t *testing.T) {
	c, rec := request(t, http.MethodGet, "/order", "")
	require.NoError(t, ListOrders(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
