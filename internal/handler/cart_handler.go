package handler

import (
	"errors"

	"extremefit-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// GetCart lists a user's cart joined with product info
// GET /api/cart/:userId
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	lines, err := h.cartService.GetCart(userID)
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, lines)
}

// AddToCart merges or inserts a cart line
// POST /api/cart/add
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	var req service.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	if err := h.cartService.AddToCart(&req); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondError(c, 400, err.Error())
	}
	return respondMessage(c, "Product added to cart")
}

// UpdateCartItem sets a line's quantity
// PUT /api/cart/update
func (h *CartHandler) UpdateCartItem(c *fiber.Ctx) error {
	var req service.UpdateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	if err := h.cartService.UpdateQuantity(&req); err != nil {
		if errors.Is(err, service.ErrCartLineNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondError(c, 400, err.Error())
	}
	return respondMessage(c, "Quantity updated")
}

type removeCartRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
}

// RemoveFromCart deletes a product's lines from the cart
// DELETE /api/cart/remove
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	var req removeCartRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}
	if req.UserID == uuid.Nil || req.ProductID == uuid.Nil {
		return respondError(c, 400, "user_id and product_id are required")
	}

	if err := h.cartService.RemoveFromCart(req.UserID, req.ProductID); err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondMessage(c, "Product removed from cart")
}

// ClearCart empties a user's cart
// DELETE /api/cart/clear/:userId
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	if err := h.cartService.ClearCart(userID); err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondMessage(c, "Cart cleared")
}
