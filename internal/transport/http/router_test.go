package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	catcontracts "github.com/light-bringer/optics-service/internal/app/catalog/contracts"
)

func (e *testEnv) do(t *testing.T, method, path, body, email string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if email != "" {
		token, err := e.tokens.Issue(email)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRouter_Health(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestRouter_RequestIDEchoed(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()

	env.router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestRouter_IssueToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/jwt", `{"email":"ana@example.com"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	token, _ := decode(t, w)["token"].(string)
	claims, err := env.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
}

func TestRouter_IssueTokenRequiresEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/jwt", `{"email":"  "}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_AccountRoutesNeedToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/orders", "", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "access-unauthorized", decode(t, w)["message"])
}

func TestRouter_ExpiredTokenRejected(t *testing.T) {
	env := newTestEnv(t)
	token, err := env.tokens.Issue("ana@example.com")
	require.NoError(t, err)
	env.clock.Advance(TokenTTL + time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_TokenFromOtherSecretRejected(t *testing.T) {
	env := newTestEnv(t)
	token, err := NewTokens("another-secret", env.clock).Issue("boss@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_AdminRoutes(t *testing.T) {
	env := newTestEnv(t)

	t.Run("non-admin is forbidden", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/admin-stats", "", "ana@example.com")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "forbidden-access", decode(t, w)["message"])
	})

	t.Run("unknown email is forbidden", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/admin-stats", "", "ghost@example.com")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin is allowed", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/admin-stats", "", "boss@example.com")
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 3, decode(t, w)["patients"])
	})
}

func TestRouter_ListProductsPassesFilter(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/products?brand=Zeta&minPrice=50&sort=asc", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	f := env.catalog.listFilter
	require.NotNil(t, f)
	assert.Equal(t, "Zeta", f.Brand)
	require.NotNil(t, f.MinPrice)
	assert.Equal(t, 50.0, *f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Equal(t, catcontracts.SortPriceAsc, f.Sort)
}

func TestRouter_ListProductsInvalidBoundIsEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.products[primitive.NewObjectID()] = bson.M{"name": "Aero"}

	w := env.do(t, http.MethodGet, "/products?maxPrice=cheap", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.Nil(t, env.catalog.listFilter)
}

func TestRouter_StoreFailureHidesDetails(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.listErr = errStore

	w := env.do(t, http.MethodGet, "/products", "", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch products", decode(t, w)["error"])
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestRouter_GetProduct(t *testing.T) {
	env := newTestEnv(t)
	id := primitive.NewObjectID()
	env.catalog.products[id] = bson.M{"name": "Aero"}

	t.Run("found", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/product/"+id.Hex(), "", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Aero", decode(t, w)["name"])
	})

	t.Run("missing", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/product/"+primitive.NewObjectID().Hex(), "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Product not found", decode(t, w)["message"])
	})

	t.Run("malformed id", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/product/not-an-id", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRouter_DeleteProductMalformedIDLeavesCatalog(t *testing.T) {
	env := newTestEnv(t)
	id := primitive.NewObjectID()
	env.catalog.products[id] = bson.M{"name": "Aero"}

	w := env.do(t, http.MethodDelete, "/product/delete/xyz", "", "boss@example.com")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, env.catalog.products, 1)
}

func TestRouter_UpdateProduct(t *testing.T) {
	env := newTestEnv(t)
	id := primitive.NewObjectID()
	env.catalog.products[id] = bson.M{"name": "Aero"}
	body := `{"productName":"Aero II","brandName":"Zeta","category":"Sunglasses","price":{"amount":"120","currency":"USD"}}`

	w := env.do(t, http.MethodPatch, "/product/update/"+id.Hex(), body, "boss@example.com")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, env.catalog.replaced, id)
	assert.Equal(t, "Aero II", env.catalog.replaced[id].Name)
}

func TestRouter_RegisterUser(t *testing.T) {
	env := newTestEnv(t)

	t.Run("new user", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/users", `{"email":"new@example.com","name":"New"}`, "")
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, true, decode(t, w)["acknowledged"])
		assert.Equal(t, "User", env.users.users["new@example.com"].Role)
	})

	t.Run("existing user conflicts", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/users", `{"email":"ana@example.com"}`, "")
		require.Equal(t, http.StatusConflict, w.Code)
		body := decode(t, w)
		assert.Equal(t, "User already exists", body["message"])
		assert.Equal(t, "ana@example.com", body["email"])
		assert.Equal(t, env.users.users["ana@example.com"].ID, body["_id"])
	})
}

func TestRouter_GetUserUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/user?email=ghost@example.com", "", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w)["message"])
}

func TestRouter_AddToCartTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	body := `{"email":"ana@example.com","productId":"p1","productName":"Aero","price":120}`

	first := env.do(t, http.MethodPost, "/carts", body, "ana@example.com")
	second := env.do(t, http.MethodPost, "/carts", body, "ana@example.com")

	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
	require.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, "Product already in cart", decode(t, second)["message"])
	assert.Equal(t, "p1", decode(t, second)["productId"])
}

func TestRouter_PlaceOrder(t *testing.T) {
	env := newTestEnv(t)
	body := `{
		"customerInfo": {"name":"Ana","email":"ana@example.com","division":"Dhaka"},
		"products": [
			{"productId":"p1","name":"Aero","quantity":2,"price":40},
			{"productId":"p2","name":"Lumen","quantity":1,"price":19.99}
		]
	}`

	w := env.do(t, http.MethodPost, "/orders", body, "ana@example.com")

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, 99.99, decode(t, w)["totalPrice"])
	require.Len(t, env.orders.placed, 1)
	assert.Equal(t, env.clock.Now(), env.orders.placed[0].Date)
}

func TestRouter_PlaceOrderWithoutItems(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/orders", `{"customerInfo":{"email":"ana@example.com"},"products":[]}`, "ana@example.com")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.orders.placed)
}

func TestRouter_Invoice(t *testing.T) {
	env := newTestEnv(t)
	id := primitive.NewObjectID()
	env.orders.invoices[id] = bson.M{"orderId": id.Hex(), "itemCount": 2}

	t.Run("found", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/invoice/"+id.Hex(), "", "ana@example.com")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id.Hex(), decode(t, w)["orderId"])
	})

	for _, missing := range []string{primitive.NewObjectID().Hex(), "abc"} {
		t.Run("missing "+missing, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/invoice/"+missing, "", "ana@example.com")
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Order not found", decode(t, w)["message"])
		})
	}
}

func TestRouter_SetOrderStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	id := primitive.NewObjectID().Hex()

	w := env.do(t, http.MethodPatch, "/order/status/"+id, `{"orderStatus":"Lost"}`, "boss@example.com")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_ExportSalesReport(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/sales-report/export", "", "boss@example.com")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales-report-2024-05-01.xlsx")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestRouter_EmailScopedReads(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		path   string
		caller string
		want   int
	}{
		{"own orders", "/orders?email=ana@example.com", "ana@example.com", http.StatusOK},
		{"own orders any case", "/orders?email=Ana@Example.com", "ana@example.com", http.StatusOK},
		{"someone else's orders", "/orders?email=boss@example.com", "ana@example.com", http.StatusForbidden},
		{"every order", "/orders", "ana@example.com", http.StatusForbidden},
		{"admin reads every order", "/orders", "boss@example.com", http.StatusOK},
		{"own cart", "/carts?email=ana@example.com", "ana@example.com", http.StatusOK},
		{"someone else's cart", "/carts?email=boss@example.com", "ana@example.com", http.StatusForbidden},
		{"admin reads a cart", "/carts?email=ana@example.com", "boss@example.com", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, tt.path, "", tt.caller)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestRouter_IssuedTokenCarriesPostedEmail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/jwt", `{"email":"boss@example.com"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decode(t, w)["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "/jwt does not verify identity; the role lookup uses the posted email")
}
