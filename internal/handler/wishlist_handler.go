package handler

import (
	"errors"

	"extremefit-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WishlistHandler struct {
	wishlistService service.WishlistService
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

// GetWishlist lists a user's wishlist
// GET /api/wishlist/:userId
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	items, err := h.wishlistService.GetWishlist(userID)
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, items)
}

// GetWishlistItem checks whether one product is wishlisted
// GET /api/wishlist/:userId/:productId
func (h *WishlistHandler) GetWishlistItem(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}
	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return respondError(c, 400, "Invalid product ID")
	}

	item, err := h.wishlistService.GetWishlistItem(userID, productID)
	if err != nil {
		return respondError(c, 404, err.Error())
	}
	return respondOK(c, item)
}

type wishlistRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
}

// AddToWishlist adds one product
// POST /api/wishlist/add
func (h *WishlistHandler) AddToWishlist(c *fiber.Ctx) error {
	var req wishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}
	if req.UserID == uuid.Nil || req.ProductID == uuid.Nil {
		return respondError(c, 400, "user_id and product_id are required")
	}

	item, err := h.wishlistService.AddToWishlist(req.UserID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return respondError(c, 404, err.Error())
		case errors.Is(err, service.ErrAlreadyWishlisted):
			return respondError(c, 409, err.Error())
		default:
			return respondDBError(c, err)
		}
	}
	return respondCreated(c, item)
}

// RemoveFromWishlist deletes one product; 404 when it was never there
// DELETE /api/wishlist/remove
func (h *WishlistHandler) RemoveFromWishlist(c *fiber.Ctx) error {
	var req wishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}
	if req.UserID == uuid.Nil || req.ProductID == uuid.Nil {
		return respondError(c, 400, "user_id and product_id are required")
	}

	if err := h.wishlistService.RemoveFromWishlist(req.UserID, req.ProductID); err != nil {
		if errors.Is(err, service.ErrWishlistItemNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondError(c, 500, "Internal Server Error")
	}
	return respondMessage(c, "Product removed from wishlist")
}
