package model

import "github.com/google/uuid"

// Product genders as stored in the catalog
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderUnisex = "unisex"
)

type Product struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price" validate:"required,gt=0"`
	// Per-size stock counts, e.g. {"S": 4, "M": 10}
	Sizes         map[string]int `gorm:"type:jsonb;serializer:json" json:"sizes"`
	Colors        []string       `gorm:"type:jsonb;serializer:json" json:"colors"`
	Gender        string         `gorm:"type:varchar(20);default:'unisex'" json:"gender"`
	StockQuantity int            `gorm:"default:0" json:"stock_quantity"`
	CategoryID    *uuid.UUID     `gorm:"type:uuid;index" json:"category_id"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	// Opaque image reference, resolved to a CDN URL client-side
	CloudinaryPublicID string `gorm:"type:varchar(255)" json:"cloudinary_public_id"`
}

// StockFor returns the stock count for a size. Products without a size map
// fall back to the aggregate StockQuantity.
func (p *Product) StockFor(size string) int {
	if len(p.Sizes) == 0 {
		return p.StockQuantity
	}
	return p.Sizes[size]
}
