package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"extremefit-api/internal/handler"
	"extremefit-api/internal/model"
	"extremefit-api/internal/payment"
	"extremefit-api/internal/repository"
	"extremefit-api/internal/service"
	"extremefit-api/pkg/webhooksig"
)

const testWebhookSecret = "whsec_MfKQ9r8GKYqrTwjUPD8ILPZIo2LaLaSw"

// envelope is the response shape every endpoint answers with.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Product{},
		&model.CartItem{}, &model.WishlistItem{}, &model.Address{},
		&model.Order{}, &model.OrderItem{}, &model.WebhookEvent{},
	))
	return db
}

// buildTestApp wires the public catalog, wishlist, and webhook routes the
// same way the server binary does, minus auth.
func buildTestApp(t *testing.T, db *gorm.DB, verifier *webhooksig.Verifier) *fiber.App {
	t.Helper()

	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	wishlistRepo := repository.NewWishlistRepo(db)
	userRepo := repository.NewUserRepo(db)
	eventRepo := repository.NewWebhookEventRepo(db)

	productHandler := handler.NewProductHandler(service.NewCatalogService(productRepo, categoryRepo))
	wishlistHandler := handler.NewWishlistHandler(service.NewWishlistService(wishlistRepo, productRepo))
	webhookHandler := handler.NewWebhookHandler(service.NewWebhookService(userRepo, eventRepo), verifier)

	app := fiber.New()
	api := app.Group("/api")
	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/search", productHandler.SearchProducts)
	api.Get("/products/category/:categoryId", productHandler.GetProductsByCategory)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/wishlist/add", wishlistHandler.AddToWishlist)
	api.Delete("/wishlist/remove", wishlistHandler.RemoveFromWishlist)
	api.Post("/webhooks/clerk", webhookHandler.HandleClerk)
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), "not an API envelope: %s", body)
	return env
}

func createCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name, Type: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createProduct(t *testing.T, db *gorm.DB, name string, category *model.Category) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:          name,
		Price:         29.99,
		Gender:        model.GenderUnisex,
		Sizes:         map[string]int{"M": 5},
		Colors:        []string{"black"},
		StockQuantity: 5,
	}
	if category != nil {
		product.CategoryID = &category.ID
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestGetProductsByCategoryFilters(t *testing.T) {
	db := setupTestDB(t)
	app := buildTestApp(t, db, nil)

	tops := createCategory(t, db, "Tops")
	bottoms := createCategory(t, db, "Bottoms")
	createProduct(t, db, "Training Tee", tops)
	createProduct(t, db, "Running Shorts", bottoms)

	req := httptest.NewRequest("GET", "/api/products/category/"+tops.ID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.True(t, env.Success)

	var products []model.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Training Tee", products[0].Name)
}

func TestGetProductInvalidID(t *testing.T) {
	db := setupTestDB(t)
	app := buildTestApp(t, db, nil)

	req := httptest.NewRequest("GET", "/api/products/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestSearchProductsRequiresQuery(t *testing.T) {
	db := setupTestDB(t)
	app := buildTestApp(t, db, nil)

	req := httptest.NewRequest("GET", "/api/products/search", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestRemoveWishlistItemNeverAdded(t *testing.T) {
	db := setupTestDB(t)
	app := buildTestApp(t, db, nil)

	user := &model.User{Email: "shopper@example.com", ClerkID: "user_shopper"}
	require.NoError(t, db.Create(user).Error)
	product := createProduct(t, db, "Gym Hoodie", nil)

	body, _ := json.Marshal(fiber.Map{"user_id": user.ID, "product_id": product.ID})
	req := httptest.NewRequest("DELETE", "/api/wishlist/remove", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
}

func TestClerkWebhookRejectsBadSignature(t *testing.T) {
	db := setupTestDB(t)
	verifier, err := webhooksig.NewVerifier(testWebhookSecret)
	require.NoError(t, err)
	app := buildTestApp(t, db, verifier)

	payload := []byte(`{"type":"user.created","data":{"id":"user_abc"}}`)
	req := httptest.NewRequest("POST", "/api/webhooks/clerk", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("svix-id", "msg_1")
	req.Header.Set("svix-timestamp", fmt.Sprintf("%d", time.Now().Unix()))
	req.Header.Set("svix-signature", "v1,Zm9yZ2VkCg==")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Zero(t, count, "forged delivery must not touch the users table")
}

// rejectAllPaypalClient fails every verification, the way PayPal answers
// for deliveries it never sent.
type rejectAllPaypalClient struct{}

func (rejectAllPaypalClient) CreateOrder(context.Context, float64, string) (*payment.CreateOrderResponse, error) {
	return nil, payment.ErrWebhookVerification
}

func (rejectAllPaypalClient) CaptureOrder(context.Context, string) error {
	return payment.ErrWebhookVerification
}

func (rejectAllPaypalClient) VerifyWebhookSignature(context.Context, http.Header, []byte) error {
	return payment.ErrWebhookVerification
}

func TestPaypalWebhookRejectsForgedDelivery(t *testing.T) {
	db := setupTestDB(t)

	svc := service.NewPaypalService(rejectAllPaypalClient{},
		repository.NewOrderRepo(db), repository.NewWebhookEventRepo(db), nil, false)
	app := fiber.New()
	app.Post("/api/paypal/webhook", handler.NewPaypalHandler(svc).HandleWebhook)

	user := &model.User{Email: "buyer@example.com", ClerkID: "user_buyer"}
	require.NoError(t, db.Create(user).Error)
	order := &model.Order{
		UserID:        user.ID,
		TotalAmount:   35.00,
		PaymentMethod: model.PaymentMethodPaypal,
		PaymentStatus: model.PaymentStatusPending,
		OrderStatus:   model.OrderStatusConfirmed,
		PaypalOrderID: "PAYPAL123",
	}
	require.NoError(t, db.Create(order).Error)

	forged := []byte(`{"id":"WH-1","event_type":"PAYMENT.CAPTURE.COMPLETED",` +
		`"resource":{"supplementary_data":{"related_ids":{"order_id":"PAYPAL123"}}}}`)
	req := httptest.NewRequest("POST", "/api/paypal/webhook", bytes.NewReader(forged))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var reloaded model.Order
	require.NoError(t, db.First(&reloaded, "id = ?", order.ID).Error)
	assert.Equal(t, model.PaymentStatusPending, reloaded.PaymentStatus)
}

func TestClerkWebhookAcceptsSignedDelivery(t *testing.T) {
	db := setupTestDB(t)
	verifier, err := webhooksig.NewVerifier(testWebhookSecret)
	require.NoError(t, err)
	app := buildTestApp(t, db, verifier)

	payload := []byte(`{"type":"user.created","data":{"id":"user_abc","first_name":"Jane","last_name":"Doe","email_addresses":[{"email_address":"jane@example.com"}]}}`)
	ts := fmt.Sprintf("%d", time.Now().Unix())

	req := httptest.NewRequest("POST", "/api/webhooks/clerk", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("svix-id", "msg_1")
	req.Header.Set("svix-timestamp", ts)
	req.Header.Set("svix-signature", "v1,"+verifier.Sign("msg_1", ts, payload))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var user model.User
	require.NoError(t, db.First(&user, "clerk_id = ?", "user_abc").Error)
	assert.Equal(t, "jane@example.com", user.Email)
}
