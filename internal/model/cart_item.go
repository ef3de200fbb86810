package model

import "github.com/google/uuid"

// CartItem is one cart line. (UserID, ProductID, Size, Color) is the line
// key: adding the same combination again merges quantities instead of
// creating a second row.
type CartItem struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id" validate:"uuid_required"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity" validate:"gt=0"`
	Size      string    `gorm:"type:varchar(20)" json:"size"`
	Color     string    `gorm:"type:varchar(50)" json:"color"`

	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartLine is the joined row returned by the cart listing endpoint.
type CartLine struct {
	CartID             uuid.UUID `json:"cart_id"`
	ProductID          uuid.UUID `json:"product_id"`
	Quantity           int       `json:"quantity"`
	Size               string    `json:"size"`
	Color              string    `json:"color"`
	Name               string    `json:"name"`
	Price              float64   `json:"price"`
	CloudinaryPublicID string    `json:"cloudinary_public_id"`
}
