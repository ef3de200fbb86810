package service

import (
	"errors"
	"fmt"

	"extremefit-api/internal/model"
	"extremefit-api/internal/repository"
	"extremefit-api/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrEmptySearchQuery = errors.New("search query is required")
)

// CatalogService covers product and category browsing plus the admin CRUD
// surface for the catalog.
type CatalogService interface {
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uuid.UUID) (*model.Product, error)
	GetProductsByCategory(categoryID uuid.UUID) ([]model.Product, error)
	SearchProducts(query string) ([]model.Product, error)
	GetGenders() ([]string, error)
	CreateProduct(req *model.Product) error
	UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(id uuid.UUID) (*model.Product, error)

	GetAllCategories() ([]model.Category, error)
	GetCategoriesByGender(gender string) ([]model.CategorySummary, error)
}

// UpdateProductRequest carries a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name               *string         `json:"name"`
	Description        *string         `json:"description"`
	Price              *float64        `json:"price"`
	Sizes              *map[string]int `json:"sizes"`
	Colors             *[]string       `json:"colors"`
	Gender             *string         `json:"gender"`
	StockQuantity      *int            `json:"stock_quantity"`
	CategoryID         *uuid.UUID      `json:"category_id"`
	CloudinaryPublicID *string         `json:"cloudinary_public_id"`
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProductByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *catalogService) GetProductsByCategory(categoryID uuid.UUID) ([]model.Product, error) {
	if _, err := s.categoryRepo.FindByID(categoryID); err != nil {
		return nil, ErrCategoryNotFound
	}
	return s.productRepo.FindByCategory(categoryID)
}

func (s *catalogService) SearchProducts(query string) ([]model.Product, error) {
	if query == "" {
		return nil, ErrEmptySearchQuery
	}
	return s.productRepo.Search(query)
}

func (s *catalogService) GetGenders() ([]string, error) {
	return s.productRepo.Genders()
}

func (s *catalogService) CreateProduct(req *model.Product) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.Gender == "" {
		req.Gender = model.GenderUnisex
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return ErrCategoryNotFound
		}
	}

	return s.productRepo.Create(req)
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Sizes != nil {
		product.Sizes = *req.Sizes
	}
	if req.Colors != nil {
		product.Colors = *req.Colors
	}
	if req.Gender != nil {
		product.Gender = *req.Gender
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = req.CategoryID
	}
	if req.CloudinaryPublicID != nil {
		product.CloudinaryPublicID = *req.CloudinaryPublicID
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogService) GetAllCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) GetCategoriesByGender(gender string) ([]model.CategorySummary, error) {
	return s.categoryRepo.SummarizeByGender(gender)
}
