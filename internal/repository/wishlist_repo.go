package repository

import (
	"extremefit-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistRepository interface {
	FindByUser(userID uuid.UUID) ([]model.WishlistItem, error)
	Find(userID, productID uuid.UUID) (*model.WishlistItem, error)
	Create(item *model.WishlistItem) error
	Remove(userID, productID uuid.UUID) (int64, error)
}

type wishlistRepo struct {
	db *gorm.DB
}

func NewWishlistRepo(db *gorm.DB) WishlistRepository {
	return &wishlistRepo{db}
}

func (r *wishlistRepo) FindByUser(userID uuid.UUID) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&items).Error
	return items, err
}

func (r *wishlistRepo) Find(userID, productID uuid.UUID) (*model.WishlistItem, error) {
	var item model.WishlistItem
	err := r.db.Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *wishlistRepo) Create(item *model.WishlistItem) error {
	return r.db.Create(item).Error
}

// Remove reports the number of rows deleted so the service can 404 when
// the item was never on the wishlist.
func (r *wishlistRepo) Remove(userID, productID uuid.UUID) (int64, error) {
	res := r.db.Delete(&model.WishlistItem{}, "user_id = ? AND product_id = ?", userID, productID)
	return res.RowsAffected, res.Error
}
