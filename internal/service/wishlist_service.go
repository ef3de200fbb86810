package service

import (
	"errors"

	"extremefit-api/internal/model"
	"extremefit-api/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrWishlistItemNotFound = errors.New("wishlist product not found")
	ErrAlreadyWishlisted    = errors.New("product already in wishlist")
)

type WishlistService interface {
	GetWishlist(userID uuid.UUID) ([]model.WishlistItem, error)
	GetWishlistItem(userID, productID uuid.UUID) (*model.WishlistItem, error)
	AddToWishlist(userID, productID uuid.UUID) (*model.WishlistItem, error)
	RemoveFromWishlist(userID, productID uuid.UUID) error
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (s *wishlistService) GetWishlist(userID uuid.UUID) ([]model.WishlistItem, error) {
	return s.wishlistRepo.FindByUser(userID)
}

func (s *wishlistService) GetWishlistItem(userID, productID uuid.UUID) (*model.WishlistItem, error) {
	item, err := s.wishlistRepo.Find(userID, productID)
	if err != nil {
		return nil, ErrWishlistItemNotFound
	}
	return item, nil
}

func (s *wishlistService) AddToWishlist(userID, productID uuid.UUID) (*model.WishlistItem, error) {
	if _, err := s.productRepo.FindByID(productID); err != nil {
		return nil, ErrProductNotFound
	}

	if existing, _ := s.wishlistRepo.Find(userID, productID); existing != nil {
		return nil, ErrAlreadyWishlisted
	}

	item := &model.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}
	if err := s.wishlistRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveFromWishlist fails with a not-found error when the row never
// existed; removal must not succeed silently.
func (s *wishlistService) RemoveFromWishlist(userID, productID uuid.UUID) error {
	affected, err := s.wishlistRepo.Remove(userID, productID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWishlistItemNotFound
	}
	return nil
}
