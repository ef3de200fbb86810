package repository

import (
	"extremefit-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressRepository interface {
	FindByUser(userID uuid.UUID) ([]model.Address, error)
	FindByID(id uuid.UUID) (*model.Address, error)
	FindDefault(tx *gorm.DB, userID uuid.UUID) (*model.Address, error)
	Create(tx *gorm.DB, address *model.Address) error
	Save(tx *gorm.DB, address *model.Address) error
	ClearDefaults(tx *gorm.DB, userID uuid.UUID) error
	Delete(id uuid.UUID) error
}

type addressRepo struct {
	db *gorm.DB
}

func NewAddressRepo(db *gorm.DB) AddressRepository {
	return &addressRepo{db}
}

func (r *addressRepo) FindByUser(userID uuid.UUID) ([]model.Address, error) {
	var addresses []model.Address
	err := r.db.Where("user_id = ?", userID).Order("created_at").Find(&addresses).Error
	return addresses, err
}

func (r *addressRepo) FindByID(id uuid.UUID) (*model.Address, error) {
	var address model.Address
	err := r.db.First(&address, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepo) FindDefault(tx *gorm.DB, userID uuid.UUID) (*model.Address, error) {
	if tx == nil {
		tx = r.db
	}
	var address model.Address
	err := tx.Where("user_id = ? AND is_default = ?", userID, true).First(&address).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepo) Create(tx *gorm.DB, address *model.Address) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(address).Error
}

func (r *addressRepo) Save(tx *gorm.DB, address *model.Address) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Save(address).Error
}

// ClearDefaults unsets is_default on every address of the user; callers run
// it inside the same transaction that sets the new default.
func (r *addressRepo) ClearDefaults(tx *gorm.DB, userID uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&model.Address{}).
		Where("user_id = ?", userID).
		Update("is_default", false).Error
}

func (r *addressRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Address{}, "id = ?", id).Error
}
