package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/gerai/catalog-api/internal/config"
	"github.com/gerai/catalog-api/internal/database"
	"github.com/gerai/catalog-api/internal/models"
	"github.com/gerai/catalog-api/internal/repository"
)

type seedProduct struct {
	name     string
	code     string
	category string
	stock    int
	price    string
}

var seedProducts = []seedProduct{
	{"Gaming Laptop ASUS ROG", "ELC001", "Electronics", 15, "18500000.00"},
	{"iPhone 15 Pro Max", "ELC002", "Electronics", 25, "21000000.00"},
	{"Sony WH-1000XM5 Headphones", "ELC003", "Electronics", 50, "4200000.00"},
	{"Nike Air Jordan Retro", "FSH001", "Fashion", 30, "2800000.00"},
	{"Uniqlo Cotton T-Shirt", "FSH002", "Fashion", 100, "199000.00"},
	{"Levi's 501 Original Jeans", "FSH003", "Fashion", 45, "1100000.00"},
	{"IKEA MALM Bed Frame", "HLV001", "Home & Living", 12, "3500000.00"},
	{"Philips Air Fryer XL", "HLV002", "Home & Living", 35, "1850000.00"},
	{"Xiaomi Robot Vacuum", "HLV003", "Home & Living", 0, "4500000.00"},
}

// main seeds sample products. Categories are created by the migrations; the
// seeder is idempotent and skips when products already exist.
func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	var count int
	if err := db.Get(&count, `SELECT COUNT(1) FROM products`); err != nil {
		log.Fatal().Err(err).Msg("could not count products")
	}
	if count > 0 {
		log.Info().Int("count", count).Msg("products already exist, skipping seed")
		return
	}

	categoryRepo := repository.NewCategoryRepository(db)
	categories, err := categoryRepo.GetAll()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load categories")
	}
	categoryIDByName := make(map[string]int, len(categories))
	for _, c := range categories {
		categoryIDByName[c.Name] = c.ID
	}

	productRepo := repository.NewProductRepository(db)
	seeded := 0
	for _, sp := range seedProducts {
		categoryID, ok := categoryIDByName[sp.category]
		if !ok {
			log.Warn().Str("category", sp.category).Str("code", sp.code).Msg("category missing, skipping product")
			continue
		}

		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			log.Fatal().Err(err).Str("code", sp.code).Msg("invalid seed price")
		}

		product := &models.Product{
			Name:       sp.name,
			Code:       sp.code,
			CategoryID: categoryID,
			Stock:      sp.stock,
			Price:      price,
		}
		if err := productRepo.Create(product); err != nil {
			log.Fatal().Err(err).Str("code", sp.code).Msg("could not seed product")
		}
		seeded++
	}

	log.Info().Int("count", seeded).Msg("products seeded successfully")
}
