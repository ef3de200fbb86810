package handler

import (
	"errors"

	"extremefit-api/internal/model"
	"extremefit-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	catalog service.CatalogService
}

func NewProductHandler(catalog service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// GetProducts lists the whole catalog
// GET /api/products
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.catalog.GetAllProducts()
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, products)
}

// GetProduct fetches one product
// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid product ID")
	}

	product, err := h.catalog.GetProductByID(id)
	if err != nil {
		return respondError(c, 404, "Product not found")
	}
	return respondOK(c, product)
}

// GetProductsByCategory filters the catalog by category
// GET /api/products/category/:categoryId
func (h *ProductHandler) GetProductsByCategory(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("categoryId"))
	if err != nil {
		return respondError(c, 400, "Invalid category ID")
	}

	products, err := h.catalog.GetProductsByCategory(categoryID)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, products)
}

// SearchProducts matches name/description against ?q=
// GET /api/products/search
func (h *ProductHandler) SearchProducts(c *fiber.Ctx) error {
	query := c.Query("q")

	products, err := h.catalog.SearchProducts(query)
	if err != nil {
		if errors.Is(err, service.ErrEmptySearchQuery) {
			return respondError(c, 400, err.Error())
		}
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, products)
}

// GetGenders lists the distinct genders present in the catalog
// GET /api/products/genders
func (h *ProductHandler) GetGenders(c *fiber.Ctx) error {
	genders, err := h.catalog.GetGenders()
	if err != nil {
		return respondError(c, 500, "Internal Server Error")
	}
	return respondOK(c, genders)
}

// CreateProduct adds a catalog entry (admin)
// POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	if err := h.catalog.CreateProduct(&product); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondError(c, 400, err.Error())
	}

	return respondCreated(c, product)
}

// UpdateProduct applies a partial update (admin)
// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid product ID")
	}

	var req service.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, 400, "Invalid JSON")
	}

	product, err := h.catalog.UpdateProduct(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			return respondError(c, 404, err.Error())
		case errors.Is(err, service.ErrCategoryNotFound):
			return respondError(c, 404, err.Error())
		default:
			return respondError(c, 400, err.Error())
		}
	}
	return respondOK(c, product)
}

// DeleteProduct removes a catalog entry (admin)
// DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return respondError(c, 400, "Invalid product ID")
	}

	product, err := h.catalog.DeleteProduct(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return respondError(c, 404, err.Error())
		}
		return respondDBError(c, err)
	}
	return respondOK(c, product)
}
