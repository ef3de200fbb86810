package model

// Category is static reference data for the catalog.
type Category struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	Type string `gorm:"type:varchar(50)" json:"type"`

	Products []Product `json:"products,omitempty"`
}

// CategorySummary is the shape returned by the gender browse endpoint:
// one row per category that has products of the requested gender.
type CategorySummary struct {
	CategoryID   string `json:"category_id"`
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	ProductCount int64  `json:"product_count"`
}
