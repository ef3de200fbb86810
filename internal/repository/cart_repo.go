package repository

import (
	"extremefit-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepository interface {
	FindByUser(userID uuid.UUID) ([]model.CartLine, error)
	FindLine(tx *gorm.DB, userID, productID uuid.UUID, size, color string) (*model.CartItem, error)
	FindItemsByUser(tx *gorm.DB, userID uuid.UUID) ([]model.CartItem, error)
	Create(tx *gorm.DB, item *model.CartItem) error
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error
	Remove(userID, productID uuid.UUID) error
	Clear(tx *gorm.DB, userID uuid.UUID) error
}

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepository {
	return &cartRepo{db}
}

// FindByUser returns cart lines joined with the product fields the client
// renders (name, price, image ref), newest first.
func (r *cartRepo) FindByUser(userID uuid.UUID) ([]model.CartLine, error) {
	var lines []model.CartLine
	err := r.db.Model(&model.CartItem{}).
		Select("cart_items.id AS cart_id, cart_items.product_id, cart_items.quantity, cart_items.size, cart_items.color, "+
			"products.name, products.price, products.cloudinary_public_id").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at DESC").
		Scan(&lines).Error
	return lines, err
}

func (r *cartRepo) FindLine(tx *gorm.DB, userID, productID uuid.UUID, size, color string) (*model.CartItem, error) {
	if tx == nil {
		tx = r.db
	}
	var item model.CartItem
	err := tx.Where("user_id = ? AND product_id = ? AND size = ? AND color = ?",
		userID, productID, size, color).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) FindItemsByUser(tx *gorm.DB, userID uuid.UUID) ([]model.CartItem, error) {
	if tx == nil {
		tx = r.db
	}
	var items []model.CartItem
	err := tx.Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

func (r *cartRepo) Create(tx *gorm.DB, item *model.CartItem) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(item).Error
}

func (r *cartRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, quantity int) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&model.CartItem{}).Where("id = ?", id).Update("quantity", quantity).Error
}

func (r *cartRepo) Remove(userID, productID uuid.UUID) error {
	return r.db.Delete(&model.CartItem{}, "user_id = ? AND product_id = ?", userID, productID).Error
}

func (r *cartRepo) Clear(tx *gorm.DB, userID uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Delete(&model.CartItem{}, "user_id = ?", userID).Error
}
