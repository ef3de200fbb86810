package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment / order statuses
const (
	PaymentMethodPaypal = "paypal"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"

	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	BaseModel
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TotalAmount       float64    `gorm:"not null" json:"total_amount"`
	ShippingCost      float64    `gorm:"not null" json:"shipping_cost"`
	PaymentMethod     string     `gorm:"type:varchar(50)" json:"payment_method"`
	PaymentStatus     string     `gorm:"type:varchar(50);default:'pending'" json:"payment_status"`
	OrderStatus       string     `gorm:"type:varchar(50);default:'confirmed'" json:"order_status"`
	ShippingAddressID *uuid.UUID `gorm:"type:uuid" json:"shipping_address_id"`
	PaypalOrderID     string     `gorm:"type:varchar(255);index" json:"paypal_order_id,omitempty"`

	User            *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ShippingAddress *Address    `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
}

// OrderItem is an immutable snapshot of one cart line, captured at
// placement time. UnitPrice is copied from the product, never re-read.
type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice float64   `gorm:"not null" json:"unit_price"`
	Size      string    `gorm:"type:varchar(20)" json:"size"`
	Color     string    `gorm:"type:varchar(50)" json:"color"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// OrderDetails is the joined shape for the order-details endpoint.
type OrderDetails struct {
	Order
	StreetAddress string    `json:"street_address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	PostalCode    string    `json:"postal_code"`
	Country       string    `json:"country"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	PlacedAt      time.Time `json:"placed_at"`
}
