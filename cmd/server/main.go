package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/dgarciadev/adventureworks-api/internal/config"
	"github.com/dgarciadev/adventureworks-api/internal/controller"
	"github.com/dgarciadev/adventureworks-api/internal/db"
	"github.com/dgarciadev/adventureworks-api/internal/middleware"
	"github.com/dgarciadev/adventureworks-api/internal/repository"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer conn.Close()
	log.Println("✅ Conexión a SQL Server exitosa")

	customerController := &controller.CustomerController{
		Repo: &repository.CustomerRepository{DB: conn},
	}
	productController := &controller.ProductController{
		Repo: &repository.ProductRepository{DB: conn},
	}
	salesOrderController := &controller.SalesOrderController{
		Repo: &repository.SalesOrderRepository{DB: conn},
	}
	salesOrderDetailController := &controller.SalesOrderDetailController{
		Repo: &repository.SalesOrderDetailRepository{DB: conn},
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS)

	r.Route("/api", func(api chi.Router) {
		// Customer routes
		api.Get("/customers", customerController.List)
		api.Get("/customers/{id}", customerController.GetByID)
		api.Post("/customers", customerController.Create)
		api.Put("/customers/{id}", customerController.Update)
		api.Delete("/customers/{id}", customerController.Delete)

		// Product routes
		api.Get("/products", productController.List)
		api.Get("/products/categories", productController.ListCategories)
		api.Get("/products/{id}", productController.GetByID)
		api.Post("/products", productController.Create)
		api.Put("/products/{id}", productController.Update)
		api.Delete("/products/{id}", productController.Delete)

		// Sales order routes
		api.Get("/salesorderheader", salesOrderController.List)
		api.Get("/salesorderheader/monthly", salesOrderController.MonthlySales)
		api.Get("/salesorderheader/by-category", salesOrderController.SalesByCategory)
		api.Get("/salesorderheader/{id}", salesOrderController.GetByID)
		api.Post("/salesorderheader", salesOrderController.Create)
		api.Post("/salesorderheader/test/insert-orders", salesOrderController.InsertTestOrders)
		api.Put("/salesorderheader/{id}", salesOrderController.Update)
		api.Delete("/salesorderheader/{id}", salesOrderController.Delete)

		// Reports
		api.Get("/average-shipping-time", salesOrderController.AverageShippingTime)
		api.Get("/top-sales-month", salesOrderController.TopSalesMonth)
		api.Get("/salesOrderDetail/top-products", salesOrderDetailController.TopProducts)
	})

	log.Printf("🚀 Server running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), r))
}
