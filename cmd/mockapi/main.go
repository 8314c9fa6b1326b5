package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"boutique-storefront/internal/config"
	"boutique-storefront/internal/handlers"
	"boutique-storefront/internal/models"
)

func main() {
	cfg := config.Load()

	if !cfg.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	stores := handlers.NewStores()
	seed(stores)

	r := handlers.NewRouter(stores, cfg.JWTSecret, cfg.AllowedOrigins)

	log.Printf("mock API listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seed fills the stores with a demo catalog and a super admin account so
// the storefront works out of the box.
func seed(stores *handlers.Stores) {
	if _, err := stores.Users.Create("Admin", "admin@boutique.tn", "admin123", models.RoleSuperAdmin, true); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	demo := []models.ProductRequest{
		{
			Name:          "T-shirt Essentiel",
			Description:   "T-shirt en coton bio, coupe droite.",
			Price:         39.900,
			CategoryID:    "unisexe",
			Sizes:         []string{"S", "M", "L", "XL"},
			Colors:        []string{"Noir", "Blanc", "Gris"},
			Images:        []string{"/uploads/tshirt-essentiel.jpg"},
			StockQuantity: 40,
			IsFeatured:    true,
		},
		{
			Name:          "Sweat Capuche Oversize",
			Description:   "Sweat molletonné à capuche, coupe oversize.",
			Price:         89.500,
			CategoryID:    "new-collection",
			Sizes:         []string{"M", "L", "XL"},
			Colors:        []string{"Beige", "Marine"},
			Images:        []string{"/uploads/sweat-oversize.jpg"},
			StockQuantity: 25,
		},
		{
			Name:          "Pantalon Cargo",
			Description:   "Pantalon cargo multi-poches en toile épaisse.",
			Price:         119.000,
			CategoryID:    "unisexe",
			Sizes:         []string{"38", "40", "42", "44"},
			Colors:        []string{"Kaki", "Noir"},
			Images:        []string{"/uploads/pantalon-cargo.jpg"},
			StockQuantity: 18,
			IsFeatured:    true,
		},
		{
			Name:          "Veste Matelassée",
			Description:   "Veste matelassée légère, doublure satinée.",
			Price:         159.750,
			CategoryID:    "new",
			Sizes:         []string{"S", "M", "L"},
			Colors:        []string{"Bordeaux", "Marine"},
			Images:        []string{"/uploads/veste-matelassee.jpg"},
			StockQuantity: 12,
		},
	}
	for i := range demo {
		stores.Products.Create(&demo[i])
	}
}
