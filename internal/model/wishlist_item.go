package model

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem marks a product a user wants; no quantity, one row per
// (user, product) enforced by a composite unique index.
type WishlistItem struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product" json:"user_id" validate:"uuid_required"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product" json:"product_id" validate:"uuid_required"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
