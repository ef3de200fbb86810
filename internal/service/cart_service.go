package service

import (
	"errors"
	"fmt"

	"extremefit-api/internal/model"
	"extremefit-api/internal/repository"
	"extremefit-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCartLineNotFound = errors.New("cart item not found")

type CartService interface {
	GetCart(userID uuid.UUID) ([]model.CartLine, error)
	AddToCart(req *AddToCartRequest) error
	UpdateQuantity(req *UpdateCartRequest) error
	RemoveFromCart(userID, productID uuid.UUID) error
	ClearCart(userID uuid.UUID) error
}

type AddToCartRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"uuid_required"`
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
}

type UpdateCartRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"uuid_required"`
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	db          *gorm.DB
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, db *gorm.DB) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		db:          db,
	}
}

func (s *cartService) GetCart(userID uuid.UUID) ([]model.CartLine, error) {
	return s.cartRepo.FindByUser(userID)
}

// AddToCart maintains at most one row per (user, product, size, color):
// an existing line has the requested quantity merged in, otherwise a new
// line is created. The find-then-write runs in one transaction so two
// concurrent adds for the same line cannot race into duplicates.
func (s *cartService) AddToCart(req *AddToCartRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		return ErrProductNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.cartRepo.FindLine(tx, req.UserID, req.ProductID, req.Size, req.Color)
		if err == nil {
			return s.cartRepo.UpdateQuantity(tx, existing.ID, existing.Quantity+req.Quantity)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return s.cartRepo.Create(tx, &model.CartItem{
			UserID:    req.UserID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Size:      req.Size,
			Color:     req.Color,
		})
	})
}

func (s *cartService) UpdateQuantity(req *UpdateCartRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	line, err := s.cartRepo.FindLine(nil, req.UserID, req.ProductID, req.Size, req.Color)
	if err != nil {
		return ErrCartLineNotFound
	}

	return s.cartRepo.UpdateQuantity(nil, line.ID, req.Quantity)
}

func (s *cartService) RemoveFromCart(userID, productID uuid.UUID) error {
	return s.cartRepo.Remove(userID, productID)
}

func (s *cartService) ClearCart(userID uuid.UUID) error {
	return s.cartRepo.Clear(nil, userID)
}
