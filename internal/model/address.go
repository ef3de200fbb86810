package model

import "github.com/google/uuid"

// Address types
const (
	AddressTypeShipping = "shipping"
	AddressTypeBilling  = "billing"
)

// Address is a user's address-book entry. At most one address per user
// carries IsDefault; the toggle is maintained transactionally by
// AddressService.
type Address struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	StreetAddress string    `gorm:"type:varchar(255);not null" json:"street_address" validate:"required"`
	City          string    `gorm:"type:varchar(100);not null" json:"city" validate:"required"`
	State         string    `gorm:"type:varchar(100)" json:"state"`
	PostalCode    string    `gorm:"type:varchar(20);not null" json:"postal_code" validate:"required"`
	Country       string    `gorm:"type:varchar(100);not null" json:"country" validate:"required"`
	IsDefault     bool      `gorm:"default:false" json:"is_default"`
	AddressType   string    `gorm:"type:varchar(20)" json:"address_type"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
