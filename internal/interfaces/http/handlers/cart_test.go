// internal/interfaces/http/handlers/cart_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aurelius-time/storefront/internal/config"
	"github.com/aurelius-time/storefront/internal/domain/cart"
	"github.com/aurelius-time/storefront/internal/domain/catalog"
	"github.com/aurelius-time/storefront/internal/domain/coupon"
	"github.com/aurelius-time/storefront/internal/domain/order"
	"github.com/aurelius-time/storefront/internal/domain/wishlist"
	"github.com/aurelius-time/storefront/internal/infrastructure/storage"
	"github.com/aurelius-time/storefront/internal/interfaces/http/routes"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSettings() config.PricingSettings {
	return config.PricingSettings{
		Tax: config.TaxConfig{Enabled: true, Rate: 0.08},
		Shipping: config.ShippingConfig{
			FreeShippingThreshold: 20000000,
			StandardRate:          500000,
		},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	catalogService := catalog.NewServiceFromProducts([]catalog.Product{
		{ID: "p1", Slug: "chronomaster-black", Name: "Chronomaster Black", Brand: "Aurelius", Price: 1000000, Inventory: 10, Featured: true},
		{ID: "p2", Slug: "diver-blue", Name: "Diver Blue", Brand: "Chronos", Price: 25000000, Inventory: 3},
	})
	couponService := coupon.NewServiceFromCoupons([]coupon.Coupon{
		{Code: "TEN", Type: coupon.TypePercentage, Value: 10, MaxDiscount: 50000},
		{Code: "BIGSPENDER", Type: coupon.TypeFixed, Value: 500000, MinSpend: 10000000},
	})
	cartService := cart.New(catalogService, couponService, testSettings(), store, logger)

	router := gin.New()
	routes.SetupRoutes(router.Group("/api/v1"), routes.Services{
		Catalog:  catalogService,
		Cart:     cartService,
		Wishlist: wishlist.NewService(catalogService, store, logger),
		Orders:   order.NewService(cartService, store, logger),
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAddToCartEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "p1",
		"quantity":   2,
		"variant":    gin.H{"strap": "leather"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	data := body["data"].(map[string]any)
	totals := data["totals"].(map[string]any)
	assert.Equal(t, float64(2000000), totals["subtotal"])
	assert.Len(t, data["items"], 1)
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "p1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart/count", nil)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["data"].(map[string]any)["count"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "nope"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody(t, rec), "error")
}

func TestAddToCartMissingProductID(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCartItemToZeroRemovesLine(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "p1", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	items := data["items"].([]any)
	itemID := items[0].(map[string]any)["id"].(string)

	rec = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/"+itemID, gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)

	data = decodeBody(t, rec)["data"].(map[string]any)
	assert.Empty(t, data["items"])
}

func TestUpdateCartItemUnknownID(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/v1/cart/items/missing", gin.H{"quantity": 3})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveFromCartAbsentIsOK(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/cart/items/missing", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestApplyCouponEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "p1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/coupon", gin.H{"code": "ten"})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	totals := data["totals"].(map[string]any)
	assert.Equal(t, float64(50000), totals["discount"])
}

func TestApplyCouponBelowMinimumSpend(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "p1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/cart/coupon", gin.H{"code": "BIGSPENDER"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(10000000), body["required_minimum"])
	assert.Equal(t, float64(1000000), body["subtotal"])
}

func TestClearCartEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "p1", "quantity": 3})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart/count", nil)
	assert.Equal(t, float64(0), decodeBody(t, rec)["data"].(map[string]any)["count"])
}

func TestCheckoutEndpointClearsCart(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "p1", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"customer": gin.H{
			"first_name": "Linh",
			"last_name":  "Nguyen",
			"email":      "linh@example.com",
			"phone":      "0901234567",
		},
		"shipping": gin.H{
			"address":  "12 Dong Khoi",
			"city":     "Ho Chi Minh City",
			"district": "District 1",
		},
		"payment_method": "cod",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart/count", nil)
	assert.Equal(t, float64(0), decodeBody(t, rec)["data"].(map[string]any)["count"])
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"customer": gin.H{
			"first_name": "Linh",
			"last_name":  "Nguyen",
			"email":      "linh@example.com",
			"phone":      "0901234567",
		},
		"shipping": gin.H{
			"address":  "12 Dong Khoi",
			"city":     "Ho Chi Minh City",
			"district": "District 1",
		},
		"payment_method": "cod",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// The rejection must come from the empty cart, not field validation.
	assert.Equal(t, "cart is empty", decodeBody(t, rec)["error"])
}

func TestCheckoutIncompleteShippingRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": "p1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"customer": gin.H{
			"first_name": "Linh",
			"last_name":  "Nguyen",
			"email":      "linh@example.com",
			"phone":      "0901234567",
		},
		"shipping":       gin.H{"address": "12 Dong Khoi", "city": "Ho Chi Minh City"},
		"payment_method": "cod",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["details"], "District")

	// A rejected checkout leaves the cart alone.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/cart/count", nil)
	assert.Equal(t, float64(1), decodeBody(t, rec)["data"].(map[string]any)["count"])
}

func TestGetProductsAndSearch(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Len(t, data["products"], 2)
	assert.Equal(t, float64(2), data["count"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products/search?q=diver", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeBody(t, rec)["data"].(map[string]any)
	assert.Len(t, data["products"], 1)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products/featured", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeBody(t, rec)["data"].(map[string]any)
	assert.Len(t, data["featured"], 1)
}

func TestGetProductByIDAndSlug(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/products/p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products/slug/diver-blue", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/products/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlistEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/wishlist/items", gin.H{"product_id": "p1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/wishlist/toggle/p2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/wishlist", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Len(t, data["products"], 2)
	assert.Equal(t, float64(2), data["count"])

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/wishlist/items/p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/wishlist/toggle/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
