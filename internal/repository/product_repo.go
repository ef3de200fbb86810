package repository

import (
	"extremefit-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindByCategory(categoryID uuid.UUID) ([]model.Product, error)
	Search(query string) ([]model.Product, error)
	Genders() ([]string, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Order("created_at").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByCategory(categoryID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("category_id = ?", categoryID).Order("created_at").Find(&products).Error
	return products, err
}

func (r *productRepo) Search(query string) ([]model.Product, error) {
	var products []model.Product
	pattern := "%" + query + "%"
	err := r.db.Where("name LIKE ? OR description LIKE ?", pattern, pattern).
		Order("created_at").Find(&products).Error
	return products, err
}

func (r *productRepo) Genders() ([]string, error) {
	var genders []string
	err := r.db.Model(&model.Product{}).Distinct("gender").Pluck("gender", &genders).Error
	return genders, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Product{}, "id = ?", id).Error
}
