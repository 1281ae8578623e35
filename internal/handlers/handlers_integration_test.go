package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"pasar/internal/handlers"
	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

type testEnv struct {
	app      *fiber.App
	db       *gorm.DB
	userRepo repositories.UserRepository
}

// setupApp builds the full app against a fresh in-memory SQLite
// database, mirroring the wiring in main.
func setupApp(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Catalogue{},
		&models.Product{},
		&models.Review{},
		&models.Order{},
		&models.Shipping{},
	)
	assert.NoError(t, err)

	userRepo := repositories.NewGORMUserRepository(db)
	catalogueRepo := repositories.NewGORMCatalogueRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	shippingRepo := repositories.NewGORMShippingRepository(db)

	authService, err := services.NewAuthService(userRepo, "test_jwt_secret")
	assert.NoError(t, err)
	userService := services.NewUserService(userRepo)
	catalogueService := services.NewCatalogueService(catalogueRepo, productRepo)
	productService := services.NewProductService(productRepo, reviewRepo)
	orderService := services.NewOrderService(orderRepo, nil)
	shippingService := services.NewShippingService(shippingRepo)

	authGate := middleware.Authenticated(authService)
	sellerGate := middleware.RequireRole(authService, userRepo, models.RoleSeller)
	adminGate := middleware.RequireRole(authService, userRepo, models.RoleAdmin)

	app := fiber.New()
	handlers.NewUserHandler(authService, userService).RegisterRoutes(app, authGate)
	handlers.NewCatalogueHandler(catalogueService).RegisterRoutes(app, adminGate)
	handlers.NewProductHandler(productService).RegisterRoutes(app, authGate, sellerGate, adminGate)
	handlers.NewOrderHandler(orderService).RegisterRoutes(app, authGate)
	handlers.NewShippingHandler(shippingService).RegisterRoutes(app, authGate, adminGate)

	return &testEnv{app: app, db: db, userRepo: userRepo}
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authentication", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&body)
	assert.NoError(t, err)
	resp.Body.Close()
	return body
}

// registerUser creates an account over HTTP and optionally promotes it.
// Promotion happens directly in storage; the already issued token keeps
// working on role-gated routes because those check the live role.
func registerUser(t *testing.T, env *testEnv, name, password, role string) (token, id string) {
	t.Helper()

	resp := doJSON(t, env.app, http.MethodPost, "/user", "", map[string]string{
		"name":     name,
		"password": password,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)

	token = body["token"].(string)
	user := body["user"].(map[string]interface{})
	id = user["id"].(string)

	if role != models.RoleUser {
		_, err := env.userRepo.Update(id, &models.User{Role: role})
		assert.NoError(t, err)
	}
	return token, id
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestUserRegisterAndLogin(t *testing.T) {
	env := setupApp(t)

	// Register
	resp := doJSON(t, env.app, http.MethodPost, "/user", "", map[string]string{
		"name":     "migwa",
		"password": "123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Authorization"), "Bearer ")
	body := decode(t, resp)
	assert.NotEmpty(t, body["token"])
	userID := body["user"].(map[string]interface{})["id"].(string)

	// Duplicate name
	resp = doJSON(t, env.app, http.MethodPost, "/user", "", map[string]string{
		"name":     "migwa",
		"password": "456",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Login with the right password returns the same user
	resp = doJSON(t, env.app, http.MethodPost, "/user/login", "", map[string]string{
		"name":     "migwa",
		"password": "123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Authorization"), "Bearer ")
	body = decode(t, resp)
	assert.Equal(t, userID, body["user"].(map[string]interface{})["id"])

	// Wrong password
	resp = doJSON(t, env.app, http.MethodPost, "/user/login", "", map[string]string{
		"name":     "migwa",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Public profile exposes neither email nor password
	resp = doJSON(t, env.app, http.MethodGet, "/user/migwa", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	profile := decode(t, resp)
	assert.Equal(t, "migwa", profile["name"])
	assert.NotContains(t, profile, "email")
	assert.NotContains(t, profile, "password")

	// Unknown profile
	resp = doJSON(t, env.app, http.MethodGet, "/user/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestUserOwnership(t *testing.T) {
	env := setupApp(t)

	tokenA, _ := registerUser(t, env, "alice", "pw-a", models.RoleUser)
	registerUser(t, env, "bob", "pw-b", models.RoleUser)

	// Alice cannot update Bob
	resp := doJSON(t, env.app, http.MethodPut, "/user/bob", tokenA, map[string]string{
		"phone": "123456",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Nor delete him
	resp = doJSON(t, env.app, http.MethodDelete, "/user/bob", tokenA, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Self-update works
	resp = doJSON(t, env.app, http.MethodPut, "/user/alice", tokenA, map[string]string{
		"phone": "123456",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "123456", body["phone"])

	// Self-delete works
	resp = doJSON(t, env.app, http.MethodDelete, "/user/alice", tokenA, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestCatalogueCRUDAndUniqueness(t *testing.T) {
	env := setupApp(t)

	adminToken, _ := registerUser(t, env, "admin", "pw", models.RoleAdmin)
	userToken, _ := registerUser(t, env, "plain", "pw", models.RoleUser)

	payload := map[string]string{
		"name":        "Electronics",
		"logo":        "https://cdn.example.com/electronics.png",
		"description": "Gadgets and more",
		"slug":        "electronics",
	}

	// Plain users cannot create catalogues
	resp := doJSON(t, env.app, http.MethodPost, "/catalogue", userToken, payload)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Admin creates one
	resp = doJSON(t, env.app, http.MethodPost, "/catalogue", adminToken, payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	catalogue := body["catalogue"].(map[string]interface{})
	catalogueID := catalogue["id"].(string)

	// Same name is rejected
	dup := map[string]string{
		"name":        "Electronics",
		"logo":        "x",
		"description": "x",
		"slug":        "other-slug",
	}
	resp = doJSON(t, env.app, http.MethodPost, "/catalogue", adminToken, dup)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Same slug is rejected
	dup["name"] = "Other Name"
	dup["slug"] = "electronics"
	resp = doJSON(t, env.app, http.MethodPost, "/catalogue", adminToken, dup)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Public read, twice, same representation
	resp = doJSON(t, env.app, http.MethodGet, "/catalogue/"+catalogueID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	first := decode(t, resp)
	resp = doJSON(t, env.app, http.MethodGet, "/catalogue/"+catalogueID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	second := decode(t, resp)
	assert.Equal(t, first, second)

	// Update
	resp = doJSON(t, env.app, http.MethodPut, "/catalogue/"+catalogueID, adminToken, map[string]string{
		"description": "Updated description",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	assert.Equal(t, "Updated description", body["description"])

	// Delete
	resp = doJSON(t, env.app, http.MethodDelete, "/catalogue/"+catalogueID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodGet, "/catalogue/"+catalogueID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func productPayload(name, slug, catalogueID string) map[string]interface{} {
	return map[string]interface{}{
		"name":          name,
		"photos":        []string{"https://cdn.example.com/p.jpg"},
		"description":   "A product",
		"slug":          slug,
		"status":        "available",
		"stockQuantity": 10,
		"price":         99.5,
		"catalogueId":   catalogueID,
	}
}

func TestProductRoleEscalation(t *testing.T) {
	env := setupApp(t)

	userToken, _ := registerUser(t, env, "plain", "pw", models.RoleUser)
	sellerToken, _ := registerUser(t, env, "seller", "pw", models.RoleSeller)
	adminToken, _ := registerUser(t, env, "admin", "pw", models.RoleAdmin)

	// user role is rejected
	resp := doJSON(t, env.app, http.MethodPost, "/product", userToken, productPayload("P1", "p1", "cat"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// seller role is accepted
	resp = doJSON(t, env.app, http.MethodPost, "/product", sellerToken, productPayload("P1", "p1", "cat"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// admin bypasses the seller requirement
	resp = doJSON(t, env.app, http.MethodPost, "/product", adminToken, productPayload("P2", "p2", "cat"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// unauthenticated is rejected outright
	resp = doJSON(t, env.app, http.MethodPost, "/product", "", productPayload("P3", "p3", "cat"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestProductReviewsAndCascade(t *testing.T) {
	env := setupApp(t)

	sellerToken, _ := registerUser(t, env, "seller", "pw", models.RoleSeller)
	adminToken, _ := registerUser(t, env, "admin", "pw", models.RoleAdmin)
	reviewerToken, _ := registerUser(t, env, "reviewer", "pw", models.RoleUser)

	resp := doJSON(t, env.app, http.MethodPost, "/product", sellerToken, productPayload("Keyboard", "keyboard", "cat"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	productID := body["product"].(map[string]interface{})["id"].(string)

	review := map[string]interface{}{
		"content": "Clacky in the best way",
		"title":   "Great",
		"rate":    5,
	}

	// Review requires authentication
	resp = doJSON(t, env.app, http.MethodPost, "/product/"+productID+"/review", "", review)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// First review succeeds
	resp = doJSON(t, env.app, http.MethodPost, "/product/"+productID+"/review", reviewerToken, review)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Second review by the same user is rejected
	resp = doJSON(t, env.app, http.MethodPost, "/product/"+productID+"/review", reviewerToken, review)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Rate outside [1,5] fails validation
	bad := map[string]interface{}{"content": "x", "title": "x", "rate": 6}
	resp = doJSON(t, env.app, http.MethodPost, "/product/"+productID+"/review", sellerToken, bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Another user may review, then the admin deletes the product
	resp = doJSON(t, env.app, http.MethodPost, "/product/"+productID+"/review", sellerToken, review)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodDelete, "/product/"+productID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodGet, "/product/"+productID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// The cascade left no orphaned reviews behind
	var count int64
	err := env.db.Model(&models.Review{}).Where("product_id = ?", productID).Count(&count).Error
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestCataloguePagination(t *testing.T) {
	env := setupApp(t)

	adminToken, _ := registerUser(t, env, "admin", "pw", models.RoleAdmin)

	resp := doJSON(t, env.app, http.MethodPost, "/catalogue", adminToken, map[string]string{
		"name":        "Books",
		"logo":        "x",
		"description": "x",
		"slug":        "books",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	catalogueID := body["catalogue"].(map[string]interface{})["id"].(string)

	// Distinct timestamps keep the creation order unambiguous
	productRepo := repositories.NewGORMProductRepository(env.db)
	base := time.Now().Add(-time.Hour)
	for i := 1; i <= 12; i++ {
		err := productRepo.Create(&models.Product{
			Name:        fmt.Sprintf("Book %02d", i),
			Slug:        fmt.Sprintf("book-%02d", i),
			Status:      models.StatusAvailable,
			Price:       float64(i),
			CatalogueID: catalogueID,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		})
		assert.NoError(t, err)
	}

	listProducts := func(query string) []map[string]interface{} {
		resp := doJSON(t, env.app, http.MethodGet, "/catalogue/"+catalogueID+"/products"+query, "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var products []map[string]interface{}
		err := json.NewDecoder(resp.Body).Decode(&products)
		assert.NoError(t, err)
		resp.Body.Close()
		return products
	}

	// No query parameters: at most 10 items from offset 0
	products := listProducts("")
	assert.Len(t, products, 10)
	assert.Equal(t, "Book 01", products[0]["name"])

	// skip=5&take=2 returns items 6 and 7 in creation order
	products = listProducts("?skip=5&take=2")
	assert.Len(t, products, 2)
	assert.Equal(t, "Book 06", products[0]["name"])
	assert.Equal(t, "Book 07", products[1]["name"])

	// Non-numeric values fall back to the defaults instead of erroring
	products = listProducts("?skip=abc&take=xyz")
	assert.Len(t, products, 10)

	// Unknown catalogue
	resp = doJSON(t, env.app, http.MethodGet, "/catalogue/missing/products", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestOrderFlow(t *testing.T) {
	env := setupApp(t)

	tokenA, idA := registerUser(t, env, "alice", "pw", models.RoleUser)
	tokenB, _ := registerUser(t, env, "bob", "pw", models.RoleUser)

	orderBody := map[string]interface{}{
		"info": []map[string]interface{}{
			{"id": "prod-1", "price": 50.0, "amount": 2},
			{"id": "prod-2", "price": 25.0, "amount": 1},
		},
		"priceTotally": 125.0,
	}

	// Authentication required
	resp := doJSON(t, env.app, http.MethodPost, "/order", "", orderBody)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Create as Alice
	resp = doJSON(t, env.app, http.MethodPost, "/order", tokenA, orderBody)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	order := body["order"].(map[string]interface{})
	orderID := order["id"].(string)
	assert.Equal(t, idA, order["userId"])

	// Owner reads it back
	resp = doJSON(t, env.app, http.MethodGet, "/order/"+orderID, tokenA, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	assert.Len(t, body["info"], 2)

	// Someone else cannot
	resp = doJSON(t, env.app, http.MethodGet, "/order/"+orderID, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Unknown order
	resp = doJSON(t, env.app, http.MethodGet, "/order/missing", tokenA, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func shippingPayload(orderID string) map[string]string {
	return map[string]string{
		"orderId":   orderID,
		"address":   "1 Main St",
		"city":      "Springfield",
		"zipCode":   "12345",
		"country":   "US",
		"phone":     "555-0100",
		"email":     "alice@example.com",
		"company":   "ACME",
		"firstName": "Alice",
		"lastName":  "Smith",
	}
}

func TestShippingGates(t *testing.T) {
	env := setupApp(t)

	tokenA, idA := registerUser(t, env, "alice", "pw", models.RoleUser)
	tokenB, _ := registerUser(t, env, "bob", "pw", models.RoleUser)
	adminToken, _ := registerUser(t, env, "admin", "pw", models.RoleAdmin)

	// Alice orders, then attaches shipping
	resp := doJSON(t, env.app, http.MethodPost, "/order", tokenA, map[string]interface{}{
		"info":         []map[string]interface{}{{"id": "prod-1", "price": 10.0, "amount": 1}},
		"priceTotally": 10.0,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := decode(t, resp)["order"].(map[string]interface{})["id"].(string)

	resp = doJSON(t, env.app, http.MethodPost, "/shipping", tokenA, shippingPayload(orderID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	shipping := body["shipping"].(map[string]interface{})
	shippingID := shipping["id"].(string)
	assert.Equal(t, idA, shipping["userId"])

	// Owner reads it, others do not
	resp = doJSON(t, env.app, http.MethodGet, "/shipping/"+shippingID, tokenA, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodGet, "/shipping/"+shippingID, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Update is role-gated: the owner herself is rejected without the
	// admin role
	resp = doJSON(t, env.app, http.MethodPut, "/shipping/"+shippingID, tokenA, map[string]string{
		"track": "TRACK-1",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// An admin who does not own the record is rejected by the
	// ownership check layered on top of the role gate
	resp = doJSON(t, env.app, http.MethodPut, "/shipping/"+shippingID, adminToken, map[string]string{
		"track": "TRACK-1",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// An admin owner passes both
	resp = doJSON(t, env.app, http.MethodPost, "/order", adminToken, map[string]interface{}{
		"info":         []map[string]interface{}{{"id": "prod-2", "price": 5.0, "amount": 1}},
		"priceTotally": 5.0,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	adminOrderID := decode(t, resp)["order"].(map[string]interface{})["id"].(string)

	resp = doJSON(t, env.app, http.MethodPost, "/shipping", adminToken, shippingPayload(adminOrderID))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	adminShippingID := decode(t, resp)["shipping"].(map[string]interface{})["id"].(string)

	resp = doJSON(t, env.app, http.MethodPut, "/shipping/"+adminShippingID, adminToken, map[string]string{
		"track": "TRACK-9",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decode(t, resp)
	assert.Equal(t, "TRACK-9", body["track"])

	// Delete has no ownership check, only the admin role gate
	resp = doJSON(t, env.app, http.MethodDelete, "/shipping/"+shippingID, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodDelete, "/shipping/"+shippingID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, env.app, http.MethodGet, "/shipping/"+shippingID, tokenA, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
