package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is a storefront customer. Rows are normally created and kept in sync
// by the identity provider's webhook; ClerkID carries the provider's subject id.
// Admin accounts additionally carry a password hash for the backoffice login.
type User struct {
	BaseModel
	ClerkID      string `gorm:"type:varchar(255);uniqueIndex" json:"clerk_id,omitempty"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	FirstName    string `gorm:"type:varchar(255)" json:"first_name"`
	LastName     string `gorm:"type:varchar(255)" json:"last_name"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`
	Password     string `gorm:"type:varchar(255)" json:"-"` // Hidden from JSON; empty for webhook-synced users
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`
	TokenVersion string `gorm:"type:varchar(255);default:''" json:"-"` // For single admin session enforcement

	Addresses []Address      `json:"addresses,omitempty"`
	CartItems []CartItem     `json:"cart_items,omitempty"`
	Wishlist  []WishlistItem `json:"wishlist,omitempty"`
	Orders    []Order        `json:"orders,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	ClerkID   string    `json:"clerk_id,omitempty"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		ClerkID:   u.ClerkID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
