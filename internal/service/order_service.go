package service

import (
	"errors"
	"fmt"

	"extremefit-api/internal/model"
	"extremefit-api/internal/repository"
	"extremefit-api/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShippingCost is the flat shipping fee applied to every order.
const ShippingCost = 15.00

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNoDefaultAddress  = errors.New("no default address")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock remaining")
)

type OrderService interface {
	GetAllOrders() ([]model.Order, error)
	GetOrdersByUser(userID uuid.UUID) ([]model.Order, error)
	GetOrderByID(id uuid.UUID) (*model.Order, error)
	GetOrderDetails(id uuid.UUID) (*model.OrderDetails, error)
	GetOrderItems(orderID uuid.UUID) ([]model.OrderItem, error)
	CreateOrder(order *model.Order) error
	AddOrderItem(orderID uuid.UUID, item *model.OrderItem) error
	PlaceOrder(userID uuid.UUID, paymentMethod string) (*model.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	addressRepo repository.AddressRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	addressRepo repository.AddressRepository,
	db *gorm.DB,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		db:          db,
		wsHub:       hub,
	}
}

// lockForUpdate takes a row lock on the next query so concurrent checkouts
// serialize on the same product. SQLite has no FOR UPDATE; its single-writer
// model already serializes the transaction.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (s *orderService) GetAllOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrdersByUser(userID uuid.UUID) ([]model.Order, error) {
	return s.orderRepo.FindByUser(userID)
}

func (s *orderService) GetOrderByID(id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) GetOrderDetails(id uuid.UUID) (*model.OrderDetails, error) {
	details, err := s.orderRepo.FindDetails(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return details, nil
}

func (s *orderService) GetOrderItems(orderID uuid.UUID) ([]model.OrderItem, error) {
	return s.orderRepo.FindItems(orderID)
}

// CreateOrder inserts a raw order row. Kept for clients that drive the
// order/items/clear sequence themselves; PlaceOrder is the transactional path.
func (s *orderService) CreateOrder(order *model.Order) error {
	if order.OrderStatus == "" {
		order.OrderStatus = model.OrderStatusConfirmed
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = model.PaymentStatusPending
	}
	return s.orderRepo.Create(nil, order)
}

func (s *orderService) AddOrderItem(orderID uuid.UUID, item *model.OrderItem) error {
	if _, err := s.orderRepo.FindByID(orderID); err != nil {
		return ErrOrderNotFound
	}
	item.OrderID = orderID
	return s.orderRepo.CreateItem(nil, item)
}

// PlaceOrder is the checkout workflow: one transaction that snapshots the
// cart into an order, decrements stock, and clears the cart. Any failure
// rolls the whole placement back, so no half-written orders survive.
func (s *orderService) PlaceOrder(userID uuid.UUID, paymentMethod string) (*model.Order, error) {
	if paymentMethod == "" {
		paymentMethod = model.PaymentMethodPaypal
	}

	var order *model.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// 1. The checkout ships to the user's default address
		address, err := s.addressRepo.FindDefault(tx, userID)
		if err != nil {
			return ErrNoDefaultAddress
		}

		// 2. Snapshot the cart
		items, err := s.cartRepo.FindItemsByUser(tx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// 3. Lock products, verify and decrement stock, total up the lines
		var subtotal float64
		orderItems := make([]model.OrderItem, 0, len(items))
		for _, line := range items {
			var product model.Product
			if err := lockForUpdate(tx).
				First(&product, "id = ?", line.ProductID).Error; err != nil {
				return ErrProductNotFound
			}

			if product.StockFor(line.Size) < line.Quantity {
				return fmt.Errorf("%w: %s (size %s)", ErrInsufficientStock, product.Name, line.Size)
			}

			if len(product.Sizes) > 0 {
				product.Sizes[line.Size] -= line.Quantity
			}
			product.StockQuantity -= line.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			subtotal += float64(line.Quantity) * product.Price
			orderItems = append(orderItems, model.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: product.Price,
				Size:      line.Size,
				Color:     line.Color,
			})
		}

		// 4. Create the order row
		addressID := address.ID
		order = &model.Order{
			UserID:            userID,
			TotalAmount:       subtotal + ShippingCost,
			ShippingCost:      ShippingCost,
			PaymentMethod:     paymentMethod,
			PaymentStatus:     model.PaymentStatusPending,
			OrderStatus:       model.OrderStatusConfirmed,
			ShippingAddressID: &addressID,
		}
		if err := s.orderRepo.Create(tx, order); err != nil {
			return err
		}

		// 5. One order item per cart line
		for i := range orderItems {
			orderItems[i].OrderID = order.ID
			if err := s.orderRepo.CreateItem(tx, &orderItems[i]); err != nil {
				return err
			}
		}
		order.Items = orderItems

		// 6. Empty the cart
		return s.cartRepo.Clear(tx, userID)
	})

	if err != nil {
		return nil, err
	}

	if s.wsHub != nil {
		s.wsHub.BroadcastOrderEvent(ws.OrderEvent{
			Type:        "order_placed",
			OrderID:     order.ID.String(),
			UserID:      userID.String(),
			TotalAmount: order.TotalAmount,
			Status:      order.OrderStatus,
			Message:     fmt.Sprintf("Order placed for %.2f", order.TotalAmount),
		})
	}

	return order, nil
}
