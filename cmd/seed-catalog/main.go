package main

import (
	"log"

	"extremefit-api/internal/model"
	"extremefit-api/internal/repository"
	"extremefit-api/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds the reference categories and a small demo catalog. Safe to re-run:
// existing categories are reused and demo products are only inserted once.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Category{}, &model.Product{})

	// 3. Categories
	categories := []model.Category{
		{Name: "T-Shirts", Type: "apparel"},
		{Name: "Hoodies", Type: "apparel"},
		{Name: "Shorts", Type: "apparel"},
		{Name: "Leggings", Type: "apparel"},
		{Name: "Accessories", Type: "gear"},
	}

	categoryRepo := repository.NewCategoryRepo(db)

	byName := make(map[string]model.Category)
	for _, c := range categories {
		if existing, err := categoryRepo.FindByName(c.Name); err == nil {
			byName[c.Name] = *existing
			continue
		}
		if err := categoryRepo.Create(&c); err != nil {
			log.Fatalf("Failed to seed category %s: %v", c.Name, err)
		}
		byName[c.Name] = c
		log.Printf("Category created: %s", c.Name)
	}

	// 4. Demo products
	tshirts := byName["T-Shirts"].ID
	hoodies := byName["Hoodies"].ID
	leggings := byName["Leggings"].ID

	products := []model.Product{
		{
			Name:          "Performance Training Tee",
			Description:   "Lightweight moisture-wicking training shirt",
			Price:         24.99,
			Sizes:         map[string]int{"S": 20, "M": 30, "L": 25, "XL": 10},
			Colors:        []string{"black", "white", "red"},
			Gender:        model.GenderMen,
			StockQuantity: 85,
			CategoryID:    &tshirts,
		},
		{
			Name:          "Zip-Up Gym Hoodie",
			Description:   "Fleece-lined hoodie for warmups and cooldowns",
			Price:         49.99,
			Sizes:         map[string]int{"S": 10, "M": 15, "L": 15},
			Colors:        []string{"grey", "navy"},
			Gender:        model.GenderUnisex,
			StockQuantity: 40,
			CategoryID:    &hoodies,
		},
		{
			Name:          "High-Waist Compression Leggings",
			Description:   "Squat-proof leggings with side pockets",
			Price:         39.99,
			Sizes:         map[string]int{"XS": 12, "S": 18, "M": 20, "L": 14},
			Colors:        []string{"black", "olive", "plum"},
			Gender:        model.GenderWomen,
			StockQuantity: 64,
			CategoryID:    &leggings,
		},
	}

	for _, p := range products {
		var existing model.Product
		if err := db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&p).Error; err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.Name, err)
		}
		log.Printf("Product created: %s", p.Name)
	}

	log.Println("Catalog seed complete")
}
