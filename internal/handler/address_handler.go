package handler

import (
	"errors"

	"extremefit-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AddressHandler struct {
	addressService service.AddressService
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// GetAddresses lists a user's address book
// GET /api/addresses/user/:userId
func (h *AddressHandler) GetAddresses(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	addresses, err := h.addressService.GetAddresses(userID)
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, addresses)
}

// CreateAddress adds an entry to a user's address book
// POST /api/addresses/user/:userId
func (h *AddressHandler) CreateAddress(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	var req service.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	address, err := h.addressService.CreateAddress(userID, &req)
	if err != nil {
		return respondError(c, 400, err.Error())
	}
	return respondCreated(c, address)
}

// UpdateAddress rewrites an address; setting is_default clears the others
// PUT /api/addresses/:addressId
func (h *AddressHandler) UpdateAddress(c *fiber.Ctx) error {
	addressID, err := uuid.Parse(c.Params("addressId"))
	if err != nil {
		return respondError(c, 400, "Invalid address ID")
	}

	var req service.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	address, err := h.addressService.UpdateAddress(addressID, &req)
	if err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondError(c, 400, err.Error())
	}
	return respondOK(c, address)
}

// DeleteAddress removes an entry
// DELETE /api/addresses/:addressId
func (h *AddressHandler) DeleteAddress(c *fiber.Ctx) error {
	addressID, err := uuid.Parse(c.Params("addressId"))
	if err != nil {
		return respondError(c, 400, "Invalid address ID")
	}

	if err := h.addressService.DeleteAddress(addressID); err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondDBError(c, err)
	}
	return respondMessage(c, "Address deleted")
}
