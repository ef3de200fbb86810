package handler

import (
	"errors"

	"extremefit-api/internal/model"
	"extremefit-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the authenticated user resolved by the auth middleware
// GET /api/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*model.User)
	if !ok {
		return respondError(c, 401, "Unauthorized")
	}
	return respondOK(c, user.ToResponse())
}

// GetUsers lists all users
// GET /api/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, users)
}

// GetUser fetches one user
// GET /api/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		return respondError(c, 404, "User not found")
	}
	return respondOK(c, user)
}

// CreateUser handles user creation
// POST /api/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	user, err := h.userService.CreateUser(&req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			return respondError(c, 409, err.Error())
		}
		return respondError(c, 400, err.Error())
	}

	return respondCreated(c, user.ToResponse())
}

// UpdateUser handles profile edits
// PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	var req service.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	user, err := h.userService.UpdateUser(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return respondError(c, 404, err.Error())
		case errors.Is(err, service.ErrEmailExists):
			return respondError(c, 409, err.Error())
		default:
			return respondError(c, 400, err.Error())
		}
	}

	return respondOK(c, user.ToResponse())
}

// DeleteUser removes a user
// DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid user ID")
	}

	if err := h.userService.DeleteUser(id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondDBError(c, err)
	}

	return respondMessage(c, "User deleted")
}
