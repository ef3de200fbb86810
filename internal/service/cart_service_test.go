package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extremefit-api/internal/model"
	"extremefit-api/internal/repository"
	"extremefit-api/internal/service"
)

func TestAddToCartMergesDuplicateLines(t *testing.T) {
	db := setupTestDB(t)
	cartRepo := repository.NewCartRepo(db)
	svc := service.NewCartService(cartRepo, repository.NewProductRepo(db), db)

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Training Tee", 24.99, map[string]int{"M": 10})

	// Add the same (user, product, size, color) twice
	require.NoError(t, svc.AddToCart(&service.AddToCartRequest{
		UserID: user.ID, ProductID: product.ID, Quantity: 2, Size: "M", Color: "black",
	}))
	require.NoError(t, svc.AddToCart(&service.AddToCartRequest{
		UserID: user.ID, ProductID: product.ID, Quantity: 3, Size: "M", Color: "black",
	}))

	var items []model.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&items).Error)
	require.Len(t, items, 1, "duplicate add should merge into one row")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartRejectsNilIDs(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewCartService(repository.NewCartRepo(db), repository.NewProductRepo(db), db)

	product := createTestProduct(t, db, "Training Tee", 24.99, map[string]int{"M": 10})

	err := svc.AddToCart(&service.AddToCartRequest{
		UserID: uuid.Nil, ProductID: product.ID, Quantity: 1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uuid_required")
}

func TestAddToCartDistinctSizesStaySeparate(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewCartService(repository.NewCartRepo(db), repository.NewProductRepo(db), db)

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Training Tee", 24.99, map[string]int{"M": 10, "L": 10})

	require.NoError(t, svc.AddToCart(&service.AddToCartRequest{
		UserID: user.ID, ProductID: product.ID, Quantity: 1, Size: "M", Color: "black",
	}))
	require.NoError(t, svc.AddToCart(&service.AddToCartRequest{
		UserID: user.ID, ProductID: product.ID, Quantity: 1, Size: "L", Color: "black",
	}))

	var count int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count, "different sizes are different cart lines")
}

func TestAddToCartDefaultsQuantityToOne(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewCartService(repository.NewCartRepo(db), repository.NewProductRepo(db), db)

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Training Tee", 24.99, map[string]int{"M": 10})

	require.NoError(t, svc.AddToCart(&service.AddToCartRequest{
		UserID: user.ID, ProductID: product.ID, Size: "M", Color: "black",
	}))

	var item model.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&item).Error)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewCartService(repository.NewCartRepo(db), repository.NewProductRepo(db), db)

	user := createTestUser(t, db, "shopper@example.com")

	err := svc.AddToCart(&service.AddToCartRequest{
		UserID: user.ID, ProductID: uuid.New(), Quantity: 1, Size: "M",
	})
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewCartService(repository.NewCartRepo(db), repository.NewProductRepo(db), db)

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Training Tee", 24.99, map[string]int{"M": 10})

	require.NoError(t, svc.AddToCart(&service.AddToCartRequest{
		UserID: user.ID, ProductID: product.ID, Quantity: 2, Size: "M", Color: "black",
	}))
	require.NoError(t, svc.UpdateQuantity(&service.UpdateCartRequest{
		UserID: user.ID, ProductID: product.ID, Quantity: 7, Size: "M", Color: "black",
	}))

	var item model.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&item).Error)
	assert.Equal(t, 7, item.Quantity)
}

func TestClearCartRemovesAllLines(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewCartService(repository.NewCartRepo(db), repository.NewProductRepo(db), db)

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Training Tee", 24.99, map[string]int{"M": 10, "L": 10})

	require.NoError(t, svc.AddToCart(&service.AddToCartRequest{
		UserID: user.ID, ProductID: product.ID, Quantity: 1, Size: "M",
	}))
	require.NoError(t, svc.AddToCart(&service.AddToCartRequest{
		UserID: user.ID, ProductID: product.ID, Quantity: 1, Size: "L",
	}))

	require.NoError(t, svc.ClearCart(user.ID))

	var count int64
	require.NoError(t, db.Model(&model.CartItem{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
