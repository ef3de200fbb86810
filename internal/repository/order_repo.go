package repository

import (
	"extremefit-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	FindAll() ([]model.Order, error)
	FindByUser(userID uuid.UUID) ([]model.Order, error)
	FindByID(id uuid.UUID) (*model.Order, error)
	FindByPaypalOrderID(paypalOrderID string) (*model.Order, error)
	FindDetails(id uuid.UUID) (*model.OrderDetails, error)
	FindItems(orderID uuid.UUID) ([]model.OrderItem, error)
	Create(tx *gorm.DB, order *model.Order) error
	CreateItem(tx *gorm.DB, item *model.OrderItem) error
	UpdatePaymentStatus(id uuid.UUID, paymentStatus string) error
	SetPaypalOrderID(id uuid.UUID, paypalOrderID string) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByUser(userID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindByPaypalOrderID(paypalOrderID string) (*model.Order, error) {
	var order model.Order
	err := r.db.First(&order, "paypal_order_id = ?", paypalOrderID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindDetails joins the shipping address and the user onto the order row.
func (r *orderRepo) FindDetails(id uuid.UUID) (*model.OrderDetails, error) {
	var order model.Order
	err := r.db.Preload("Items").Preload("ShippingAddress").Preload("User").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	details := &model.OrderDetails{Order: order, PlacedAt: order.CreatedAt}
	if order.ShippingAddress != nil {
		details.StreetAddress = order.ShippingAddress.StreetAddress
		details.City = order.ShippingAddress.City
		details.State = order.ShippingAddress.State
		details.PostalCode = order.ShippingAddress.PostalCode
		details.Country = order.ShippingAddress.Country
	}
	if order.User != nil {
		details.FirstName = order.User.FirstName
		details.LastName = order.User.LastName
		details.Email = order.User.Email
	}
	details.User = nil
	details.ShippingAddress = nil
	return details, nil
}

func (r *orderRepo) FindItems(orderID uuid.UUID) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

func (r *orderRepo) Create(tx *gorm.DB, order *model.Order) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(order).Error
}

func (r *orderRepo) CreateItem(tx *gorm.DB, item *model.OrderItem) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(item).Error
}

func (r *orderRepo) UpdatePaymentStatus(id uuid.UUID, paymentStatus string) error {
	return r.db.Model(&model.Order{}).Where("id = ?", id).Update("payment_status", paymentStatus).Error
}

func (r *orderRepo) SetPaypalOrderID(id uuid.UUID, paypalOrderID string) error {
	return r.db.Model(&model.Order{}).Where("id = ?", id).Update("paypal_order_id", paypalOrderID).Error
}
