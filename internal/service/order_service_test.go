package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"extremefit-api/internal/model"
	"extremefit-api/internal/repository"
	"extremefit-api/internal/service"
)

func newOrderService(db *gorm.DB) service.OrderService {
	return service.NewOrderService(
		repository.NewOrderRepo(db),
		repository.NewCartRepo(db),
		repository.NewAddressRepo(db),
		db,
		nil,
	)
}

func createDefaultAddress(t *testing.T, db *gorm.DB, user *model.User) *model.Address {
	t.Helper()
	address := &model.Address{
		UserID:        user.ID,
		StreetAddress: "123 Main St",
		City:          "Austin",
		PostalCode:    "78701",
		Country:       "USA",
		IsDefault:     true,
		AddressType:   model.AddressTypeShipping,
	}
	require.NoError(t, db.Create(address).Error)
	return address
}

func addCartLine(t *testing.T, db *gorm.DB, user *model.User, product *model.Product, quantity int, size string) {
	t.Helper()
	require.NoError(t, db.Create(&model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  quantity,
		Size:      size,
		Color:     "black",
	}).Error)
}

func TestPlaceOrderSnapshotsCartAndTotals(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	user := createTestUser(t, db, "buyer@example.com")
	address := createDefaultAddress(t, db, user)
	product := createTestProduct(t, db, "Training Tee", 10.00, map[string]int{"M": 5})
	addCartLine(t, db, user, product, 2, "M")

	order, err := svc.PlaceOrder(user.ID, model.PaymentMethodPaypal)
	require.NoError(t, err)

	// 2 x 10.00 plus the flat shipping fee
	assert.Equal(t, 35.00, order.TotalAmount)
	assert.Equal(t, service.ShippingCost, order.ShippingCost)
	assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, model.OrderStatusConfirmed, order.OrderStatus)
	require.NotNil(t, order.ShippingAddressID)
	assert.Equal(t, address.ID, *order.ShippingAddressID)

	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 10.00, order.Items[0].UnitPrice)
	assert.Equal(t, "M", order.Items[0].Size)

	// Cart is emptied by the same transaction
	var cartCount int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)

	// Stock comes down by the ordered quantity
	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 3, reloaded.Sizes["M"])
	assert.Equal(t, 3, reloaded.StockQuantity)
}

func TestPlaceOrderRequiresDefaultAddress(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	user := createTestUser(t, db, "buyer@example.com")
	product := createTestProduct(t, db, "Training Tee", 10.00, map[string]int{"M": 5})
	addCartLine(t, db, user, product, 1, "M")

	_, err := svc.PlaceOrder(user.ID, model.PaymentMethodPaypal)
	assert.ErrorIs(t, err, service.ErrNoDefaultAddress)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	user := createTestUser(t, db, "buyer@example.com")
	createDefaultAddress(t, db, user)

	_, err := svc.PlaceOrder(user.ID, model.PaymentMethodPaypal)
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	user := createTestUser(t, db, "buyer@example.com")
	createDefaultAddress(t, db, user)
	product := createTestProduct(t, db, "Training Tee", 10.00, map[string]int{"M": 1})
	addCartLine(t, db, user, product, 3, "M")

	_, err := svc.PlaceOrder(user.ID, model.PaymentMethodPaypal)
	require.ErrorIs(t, err, service.ErrInsufficientStock)

	// Nothing about the failed checkout sticks: no order, cart intact,
	// stock untouched.
	var orderCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)

	var cartCount int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.EqualValues(t, 1, cartCount)

	var reloaded model.Product
	require.NoError(t, db.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 1, reloaded.Sizes["M"])
}

func TestAddOrderItemUnknownOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService(db)

	err := svc.AddOrderItem(uuid.New(), &model.OrderItem{Quantity: 1, UnitPrice: 9.99})
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}
