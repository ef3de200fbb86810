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

var ErrAddressNotFound = errors.New("address not found")

type AddressService interface {
	GetAddresses(userID uuid.UUID) ([]model.Address, error)
	CreateAddress(userID uuid.UUID, req *AddressRequest) (*model.Address, error)
	UpdateAddress(addressID uuid.UUID, req *AddressRequest) (*model.Address, error)
	DeleteAddress(addressID uuid.UUID) error
}

type AddressRequest struct {
	StreetAddress string `json:"street_address" validate:"required"`
	City          string `json:"city" validate:"required"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code" validate:"required"`
	Country       string `json:"country" validate:"required"`
	IsDefault     bool   `json:"is_default"`
	AddressType   string `json:"address_type"`
}

type addressService struct {
	addressRepo repository.AddressRepository
	db          *gorm.DB
}

func NewAddressService(addressRepo repository.AddressRepository, db *gorm.DB) AddressService {
	return &addressService{
		addressRepo: addressRepo,
		db:          db,
	}
}

func (s *addressService) GetAddresses(userID uuid.UUID) ([]model.Address, error) {
	return s.addressRepo.FindByUser(userID)
}

func (s *addressService) CreateAddress(userID uuid.UUID, req *AddressRequest) (*model.Address, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	address := &model.Address{
		UserID:        userID,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		IsDefault:     req.IsDefault,
		AddressType:   req.AddressType,
	}

	// A new default displaces the old one; clear-and-create run atomically
	// so the user never ends up with two defaults.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := s.addressRepo.ClearDefaults(tx, userID); err != nil {
				return err
			}
		}
		return s.addressRepo.Create(tx, address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// UpdateAddress rewrites the row. When the update sets is_default, the
// user's other defaults are cleared in the same transaction, keeping
// "at most one default per user" true even across a crash.
func (s *addressService) UpdateAddress(addressID uuid.UUID, req *AddressRequest) (*model.Address, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	address, err := s.addressRepo.FindByID(addressID)
	if err != nil {
		return nil, ErrAddressNotFound
	}

	address.StreetAddress = req.StreetAddress
	address.City = req.City
	address.State = req.State
	address.PostalCode = req.PostalCode
	address.Country = req.Country
	address.IsDefault = req.IsDefault
	address.AddressType = req.AddressType

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := s.addressRepo.ClearDefaults(tx, address.UserID); err != nil {
				return err
			}
		}
		return s.addressRepo.Save(tx, address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (s *addressService) DeleteAddress(addressID uuid.UUID) error {
	if _, err := s.addressRepo.FindByID(addressID); err != nil {
		return ErrAddressNotFound
	}
	return s.addressRepo.Delete(addressID)
}
