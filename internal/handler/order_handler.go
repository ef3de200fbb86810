package handler

import (
	"errors"

	"extremefit-api/internal/model"
	"extremefit-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GetOrders lists every order (admin)
// GET /api/orders
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, orders)
}

// GetOrdersByUser lists a user's order history
// GET /api/orders/user/:userId
func (h *OrderHandler) GetOrdersByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	orders, err := h.orderService.GetOrdersByUser(userID)
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, orders)
}

// GetOrder fetches one order
// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid order ID")
	}

	order, err := h.orderService.GetOrderByID(id)
	if err != nil {
		return respondError(c, 404, "Order not found")
	}
	return respondOK(c, order)
}

// GetOrderDetails joins user and shipping address onto the order
// GET /api/orders/:id/details
func (h *OrderHandler) GetOrderDetails(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid order ID")
	}

	details, err := h.orderService.GetOrderDetails(id)
	if err != nil {
		return respondError(c, 404, "Order with details not found")
	}
	return respondOK(c, details)
}

// GetOrderItems lists an order's line items
// GET /api/orders/:id/items
func (h *OrderHandler) GetOrderItems(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid order ID")
	}

	items, err := h.orderService.GetOrderItems(id)
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, items)
}

// CreateOrder inserts a raw order row (compatibility path)
// POST /api/orders
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}
	if order.UserID == uuid.Nil {
		return respondError(c, 400, "user_id is required")
	}

	if err := h.orderService.CreateOrder(&order); err != nil {
		return respondDBError(c, err)
	}
	return respondCreated(c, order)
}

// CreateOrderItem appends a raw order item (compatibility path)
// POST /api/orders/:id/items
func (h *OrderHandler) CreateOrderItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid order ID")
	}

	var item model.OrderItem
	if err := c.BodyParser(&item); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	if err := h.orderService.AddOrderItem(id, &item); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondDBError(c, err)
	}
	return respondCreated(c, item)
}

type checkoutRequest struct {
	UserID        uuid.UUID `json:"user_id"`
	PaymentMethod string    `json:"payment_method"`
}

// Checkout places an order from the user's cart in one transaction
// POST /api/checkout
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}
	if req.UserID == uuid.Nil {
		return respondError(c, 400, "user_id is required")
	}

	order, err := h.orderService.PlaceOrder(req.UserID, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoDefaultAddress):
			return respondError(c, 400, err.Error())
		case errors.Is(err, service.ErrEmptyCart):
			return respondError(c, 400, err.Error())
		case errors.Is(err, service.ErrInsufficientStock):
			return respondError(c, 409, err.Error())
		case errors.Is(err, service.ErrProductNotFound):
			return respondError(c, 404, err.Error())
		default:
			return respondDBError(c, err)
		}
	}
	return respondCreated(c, order)
}
