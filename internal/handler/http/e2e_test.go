package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// shopAPI drives the full stack (router, services, SQLite store) in process.
type shopAPI struct {
	t      *testing.T
	router http.Handler
}

func newShopAPI(t *testing.T) *shopAPI {
	t.Helper()

	db, err := store.NewConnect(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "shop.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	services := service.NewServices(store.NewStorages(db, logger.Nop()), config.App{
		TokenSignKey:     "e2e-sign-key",
		TokenIssuer:      "go-shop-api-e2e",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}, logger.Nop())

	return &shopAPI{t: t, router: NewHandler(services, logger.Nop()).Init()}
}

func (a *shopAPI) do(method, target, token, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *shopAPI) register(username, password string) int64 {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/register/", "", fmt.Sprintf(
		`{"username":%q,"password":%q,"email":"%s@example.com","first_name":"First","last_name":"Last"}`,
		username, password, username))
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[models.RegisterResponse](a.t, rec).UserID
}

func (a *shopAPI) login(username, password string) models.LoginResponse {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/login/", "", fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[models.LoginResponse](a.t, rec)
}

func (a *shopAPI) createProduct(token, body string) int64 {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/products/create", token, body)
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[models.ProductResponse](a.t, rec).ProductID
}

const duneBody = `{"category":"books","title":"Dune","description":"Desert planet","price":9.5,"quantity":4,"product_img":"img/dune.png"}`

func TestE2E_RegisterLoginProfile(t *testing.T) {
	api := newShopAPI(t)

	userID := api.register("alice", "s3cret-pass")
	login := api.login("alice", "s3cret-pass")
	assert.Equal(t, userID, login.UserID)
	require.NotEmpty(t, login.Token)

	rec := api.do(http.MethodGet, "/profile", login.Token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "s3cret-pass")

	profile := decodeBody[models.User](t, rec)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.False(t, profile.DateJoined.IsZero())
}

func TestE2E_DuplicateUsername(t *testing.T) {
	api := newShopAPI(t)
	api.register("alice", "s3cret-pass")

	rec := api.do(http.MethodPost, "/register/", "",
		`{"username":"alice","password":"other","email":"a2@example.com","first_name":"A","last_name":"B"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, []string{"A user with that username already exists."}, body.Errors["username"])
}

func TestE2E_RegisterValidation(t *testing.T) {
	api := newShopAPI(t)

	rec := api.do(http.MethodPost, "/register/", "", `{"username":"bad name","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, "Invalid data provided", body.Message)
	for _, field := range []string{"username", "password", "email", "first_name", "last_name"} {
		assert.Contains(t, body.Errors, field)
	}
}

func TestE2E_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	api := newShopAPI(t)
	api.register("alice", "s3cret-pass")

	wrongPassword := api.do(http.MethodPost, "/login/", "", `{"username":"alice","password":"nope"}`)
	unknownUser := api.do(http.MethodPost, "/login/", "", `{"username":"ghost","password":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownUser.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownUser.Body.String())
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, unknownUser.Body.String())
}

func TestE2E_PasswordSharingBcryptPrefixRejected(t *testing.T) {
	api := newShopAPI(t)
	password := strings.Repeat("a", 72)
	api.register("alice", password)

	rec := api.do(http.MethodPost, "/login/", "", fmt.Sprintf(`{"username":"alice","password":%q}`, password+"WRONG-SUFFIX"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
	assert.Equal(t, http.StatusOK, api.do(http.MethodPost, "/login/", "", fmt.Sprintf(`{"username":"alice","password":%q}`, password)).Code)
}

func TestE2E_ProductOwnerIsCaller(t *testing.T) {
	api := newShopAPI(t)
	aliceID := api.register("alice", "pw-alice")
	bobID := api.register("bob", "pw-bob")
	token := api.login("alice", "pw-alice").Token

	body := strings.Replace(duneBody, "{", fmt.Sprintf(`{"user_id":%d,`, bobID), 1)
	productID := api.createProduct(token, body)

	rec := api.do(http.MethodGet, fmt.Sprintf("/products/detail/%d", productID), token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	product := decodeBody[models.Product](t, rec)
	assert.Equal(t, aliceID, product.UserID)
	assert.Equal(t, "books", product.Category)
	assert.Equal(t, "Dune", product.Title)
	assert.Equal(t, "Desert planet", product.Description)
	assert.Equal(t, 9.5, product.Price)
	assert.Equal(t, int64(4), product.Quantity)
	require.NotNil(t, product.ProductImg)
	assert.Equal(t, "img/dune.png", *product.ProductImg)
	assert.True(t, product.CreatedAt.Equal(product.UpdatedAt))
}

func TestE2E_PartialUpdateKeepsPrice(t *testing.T) {
	api := newShopAPI(t)
	api.register("alice", "pw-alice")
	token := api.login("alice", "pw-alice").Token
	productID := api.createProduct(token, duneBody)

	before := decodeBody[models.Product](t, api.do(http.MethodGet, fmt.Sprintf("/products/detail/%d", productID), token, ""))

	time.Sleep(2 * time.Millisecond)
	rec := api.do(http.MethodPut, fmt.Sprintf("/products/update/%d", productID), token, `{"title":"Dune Messiah","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	after := decodeBody[models.Product](t, api.do(http.MethodGet, fmt.Sprintf("/products/detail/%d", productID), token, ""))
	assert.Equal(t, "Dune Messiah", after.Title)
	assert.Equal(t, int64(2), after.Quantity)
	assert.Equal(t, before.Price, after.Price)
	assert.Equal(t, before.Category, after.Category)
	assert.True(t, after.CreatedAt.Equal(before.CreatedAt))
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestE2E_UpdateNullImageClearsIt(t *testing.T) {
	api := newShopAPI(t)
	api.register("alice", "pw-alice")
	token := api.login("alice", "pw-alice").Token
	productID := api.createProduct(token, duneBody)
	detail := fmt.Sprintf("/products/detail/%d", productID)
	update := fmt.Sprintf("/products/update/%d", productID)

	rec := api.do(http.MethodPut, update, token, `{"title":"Dune"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	kept := decodeBody[models.Product](t, api.do(http.MethodGet, detail, token, ""))
	require.NotNil(t, kept.ProductImg)
	assert.Equal(t, "img/dune.png", *kept.ProductImg)

	rec = api.do(http.MethodPut, update, token, `{"product_img":null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cleared := decodeBody[models.Product](t, api.do(http.MethodGet, detail, token, ""))
	assert.Nil(t, cleared.ProductImg)
	assert.Equal(t, "Dune", cleared.Title)
}

func TestE2E_TextFieldsAreTrimmed(t *testing.T) {
	api := newShopAPI(t)
	api.register("alice", "pw-alice")
	token := api.login("alice", "pw-alice").Token
	productID := api.createProduct(token,
		`{"category":"  c  ","title":" Dune ","description":"d\n","price":1,"quantity":1,"product_img":" img.png "}`)

	product := decodeBody[models.Product](t, api.do(http.MethodGet, fmt.Sprintf("/products/detail/%d", productID), token, ""))
	assert.Equal(t, "c", product.Category)
	assert.Equal(t, "Dune", product.Title)
	assert.Equal(t, "d", product.Description)
	require.NotNil(t, product.ProductImg)
	assert.Equal(t, "img.png", *product.ProductImg)
}

func TestE2E_TrailingDataRejected(t *testing.T) {
	api := newShopAPI(t)
	api.register("alice", "pw-alice")
	token := api.login("alice", "pw-alice").Token

	rec := api.do(http.MethodPost, "/products/create", token,
		`{"category":"c","title":"t","description":"d","price":1,"quantity":1} trailing-garbage`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec)
	assert.Contains(t, body.Errors, "non_field_errors")

	list := decodeBody[[]models.Product](t, api.do(http.MethodGet, "/products/list", token, ""))
	assert.Empty(t, list)
}

func TestE2E_UpdateValidation(t *testing.T) {
	api := newShopAPI(t)
	api.register("alice", "pw-alice")
	token := api.login("alice", "pw-alice").Token
	productID := api.createProduct(token, duneBody)

	rec := api.do(http.MethodPut, fmt.Sprintf("/products/update/%d", productID), token, `{"title":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec)
	assert.Equal(t, []string{"This field may not be blank."}, body.Errors["title"])
	assert.Len(t, body.Errors, 1)
}

func TestE2E_DeleteThenNotFound(t *testing.T) {
	api := newShopAPI(t)
	api.register("alice", "pw-alice")
	token := api.login("alice", "pw-alice").Token
	productID := api.createProduct(token, duneBody)

	target := fmt.Sprintf("/products/delete/%d", productID)
	assert.Equal(t, http.StatusOK, api.do(http.MethodDelete, target, token, "").Code)

	detail := api.do(http.MethodGet, fmt.Sprintf("/products/detail/%d", productID), token, "")
	assert.Equal(t, http.StatusNotFound, detail.Code)
	assert.JSONEq(t, `{"message":"Product does not exist"}`, detail.Body.String())

	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, target, token, "").Code)
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodPut, fmt.Sprintf("/products/update/%d", productID), token, `{}`).Code)
}

func TestE2E_ListReturnsEveryProduct(t *testing.T) {
	api := newShopAPI(t)
	api.register("alice", "pw-alice")
	token := api.login("alice", "pw-alice").Token

	empty := api.do(http.MethodGet, "/products/list", token, "")
	require.Equal(t, http.StatusOK, empty.Code)
	assert.JSONEq(t, `[]`, empty.Body.String())

	const n = 5
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, api.createProduct(token, fmt.Sprintf(
			`{"category":"c","title":"t%d","description":"d","price":%d,"quantity":%d}`, i, i, i)))
	}

	rec := api.do(http.MethodGet, "/products/list", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeBody[[]models.Product](t, rec)
	require.Len(t, products, n)
	for i, p := range products {
		assert.Equal(t, ids[i], p.ProductID)
		assert.Equal(t, fmt.Sprintf("t%d", i), p.Title)
		assert.Nil(t, p.ProductImg)
	}
}

func TestE2E_ForgedTokenRejected(t *testing.T) {
	api := newShopAPI(t)

	rec := api.do(http.MethodGet, "/products/list", "eyJhbGciOiJIUzI1NiJ9.e30.forged", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
