package repository

import (
	"extremefit-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll() ([]model.Category, error)
	FindByID(id uuid.UUID) (*model.Category, error)
	FindByName(name string) (*model.Category, error)
	SummarizeByGender(gender string) ([]model.CategorySummary, error)
	Create(category *model.Category) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "id = ?", id).Error
	return &category, err
}

func (r *categoryRepo) FindByName(name string) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// SummarizeByGender returns one row per category that has products of the
// requested gender, with the product count per category.
func (r *categoryRepo) SummarizeByGender(gender string) ([]model.CategorySummary, error) {
	var summaries []model.CategorySummary
	err := r.db.Model(&model.Product{}).
		Select("products.category_id AS category_id, categories.name AS name, products.gender AS gender, COUNT(*) AS product_count").
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("products.gender = ?", gender).
		Group("products.category_id, categories.name, products.gender").
		Scan(&summaries).Error
	return summaries, err
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}
