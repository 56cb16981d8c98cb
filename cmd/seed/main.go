package main

import (
	"context"
	"log"
	"os"

	"github.com/abhi-r/verdant/internal/model"
	"github.com/abhi-r/verdant/internal/repository/implementation"
	"github.com/abhi-r/verdant/pkg/catalog"
	"github.com/abhi-r/verdant/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Seeds the products table from the bundled JSON dataset. Safe to rerun
// after truncating; inserts fail on duplicate ids.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	dataPath := os.Getenv("CATALOG_DATA_PATH")
	if dataPath == "" {
		dataPath = "data/products.json"
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Migrating schema...")
	if err := db.AutoMigrate(&model.Product{}, &model.FlowEvent{}); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	color.Cyan("Loading dataset from %s...", dataPath)
	dataset, err := catalog.LoadFile(dataPath)
	if err != nil {
		log.Fatal("Error: Failed to load dataset:", err)
	}

	ctx := context.Background()
	repo := implementation.NewProductRepository(db)

	total := 0
	for category, products := range dataset {
		if err := repo.CreateBulk(ctx, products); err != nil {
			color.Red("Failed to insert %s products: %v", category, err)
			os.Exit(1)
		}
		color.Green("Inserted %d %s products", len(products), category)
		total += len(products)
	}

	color.Green("Done. %d products seeded.", total)
}
