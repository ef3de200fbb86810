package service_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"extremefit-api/internal/model"
)

// setupTestDB opens an isolated in-memory SQLite database named after the
// test, so parallel test functions never share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect test database")

	err = db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Product{},
		&model.CartItem{}, &model.WishlistItem{}, &model.Address{},
		&model.Order{}, &model.OrderItem{}, &model.WebhookEvent{},
	)
	require.NoError(t, err, "failed to auto-migrate models")

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{
		Email:     email,
		FirstName: "Test",
		LastName:  "Shopper",
		ClerkID:   "user_" + strings.Split(email, "@")[0],
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, sizes map[string]int) *model.Product {
	t.Helper()
	stock := 0
	for _, n := range sizes {
		stock += n
	}
	product := &model.Product{
		Name:          name,
		Price:         price,
		Sizes:         sizes,
		Colors:        []string{"black"},
		Gender:        model.GenderUnisex,
		StockQuantity: stock,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
