package handler

import (
	"extremefit-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	catalog service.CatalogService
}

func NewCategoryHandler(catalog service.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalog: catalog}
}

// GetCategories lists all categories
// GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.GetAllCategories()
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, categories)
}

// GetCategoriesByGender lists categories that have products of a gender
// GET /api/categories/:gender
func (h *CategoryHandler) GetCategoriesByGender(c *fiber.Ctx) error {
	gender := c.Params("gender")
	if gender == "" {
		return respondError(c, 400, "Invalid gender")
	}

	summaries, err := h.catalog.GetCategoriesByGender(gender)
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, summaries)
}
