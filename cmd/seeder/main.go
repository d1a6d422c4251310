package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/dgarciadev/adventureworks-api/internal/config"
	"github.com/dgarciadev/adventureworks-api/internal/db"
	"github.com/dgarciadev/adventureworks-api/internal/repository"
)

// Seeds the database with random sales orders, same generator the
// test/insert-orders endpoint uses.
func main() {
	count := flag.Int("count", 50, "number of test orders to insert")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer conn.Close()

	repo := &repository.SalesOrderRepository{DB: conn}

	inserted, err := repo.SeedTestOrders(*count)
	if err != nil {
		log.Fatalf("seeding failed after %d orders: %v", inserted, err)
	}

	log.Printf("✅ Seeded %d test orders", inserted)
}
