package main

import (
	"encoding/json"
	"log"

	"github.com/gobodhi/tour-cms/data"
	"github.com/gobodhi/tour-cms/internal/config"
	"github.com/gobodhi/tour-cms/internal/database"
	"github.com/gobodhi/tour-cms/internal/services"
	"github.com/gobodhi/tour-cms/internal/tour"
)

// Seeds the content store from the bundled tour document. Destructive:
// replaces whatever content is already there.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	var doc tour.Document
	if err := json.Unmarshal(data.TourData, &doc); err != nil {
		log.Fatalf("Bundled tour data is invalid: %v", err)
	}

	result, err := services.ReplaceContent(db, &doc)
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Printf("Seeded %d roles, %d topics, %d screens, %d hotspots",
		result.Roles, result.Topics, result.Screens, result.Hotspots)
}
