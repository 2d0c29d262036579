package main

import (
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/routes"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.InitLogger()
	defer config.Log.Sync()

	cfg := config.Load()
	config.ConnectDB(cfg.DatabaseURL)

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.TableGroup{},
		&models.Table{},
		&models.TabItem{},
		&models.CashRegister{},
		&models.CashTransaction{},
		&models.Sale{},
		&models.SaleItem{},
		&models.Voucher{},
		&models.Purchase{},
		&models.PurchaseItem{},
		&models.Store{},
	); err != nil {
		config.Log.Sugar().Fatalf("migration failed: %v", err)
	}
	if err := config.EnsureIndexes(config.DB); err != nil {
		config.Log.Sugar().Fatalf("index creation failed: %v", err)
	}

	config.SeedDefaults()

	if cfg.JWTSecret != "" {
		utils.Secret = []byte(cfg.JWTSecret)
	}

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "DinamicBar POS API is running"})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		config.Log.Sugar().Fatalf("server stopped: %v", err)
	}
}
