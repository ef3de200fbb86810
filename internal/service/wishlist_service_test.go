package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"extremefit-api/internal/repository"
	"extremefit-api/internal/service"
)

func newWishlistService(db *gorm.DB) service.WishlistService {
	return service.NewWishlistService(repository.NewWishlistRepo(db), repository.NewProductRepo(db))
}

func TestAddAndListWishlist(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Gym Hoodie", 49.99, map[string]int{"L": 3})

	item, err := svc.AddToWishlist(user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, item.ProductID)

	items, err := svc.GetWishlist(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
}

func TestAddToWishlistTwiceFails(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Gym Hoodie", 49.99, map[string]int{"L": 3})

	_, err := svc.AddToWishlist(user.ID, product.ID)
	require.NoError(t, err)

	_, err = svc.AddToWishlist(user.ID, product.ID)
	assert.ErrorIs(t, err, service.ErrAlreadyWishlisted)
}

func TestAddToWishlistUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)

	user := createTestUser(t, db, "shopper@example.com")

	_, err := svc.AddToWishlist(user.ID, uuid.New())
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestRemoveFromWishlistMissingItem(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Gym Hoodie", 49.99, map[string]int{"L": 3})

	// Removing something that was never wishlisted is reported, not silent
	err := svc.RemoveFromWishlist(user.ID, product.ID)
	assert.ErrorIs(t, err, service.ErrWishlistItemNotFound)
}

func TestRemoveFromWishlist(t *testing.T) {
	db := setupTestDB(t)
	svc := newWishlistService(db)

	user := createTestUser(t, db, "shopper@example.com")
	product := createTestProduct(t, db, "Gym Hoodie", 49.99, map[string]int{"L": 3})

	_, err := svc.AddToWishlist(user.ID, product.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFromWishlist(user.ID, product.ID))

	items, err := svc.GetWishlist(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
