package controllers

import (
	"testing"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory database. A single connection
// keeps sqlite's :memory: store alive across the whole test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
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
		t.Fatalf("migrate: %v", err)
	}
	if err := config.EnsureIndexes(db); err != nil {
		t.Fatalf("indexes: %v", err)
	}

	config.DB = db
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	cat := models.Category{Name: name}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return cat
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	cat := seedCategory(t, db, "cat-"+name)
	p := models.Product{
		Name:       name,
		SalePrice:  price,
		Stock:      stock,
		Type:       models.ProductNonAlcoholic,
		CategoryID: cat.ID,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return p
}

func seedTable(t *testing.T, db *gorm.DB, name string) models.Table {
	t.Helper()
	table := models.Table{Name: name, IsActive: true}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table
}

func openTestRegister(t *testing.T, db *gorm.DB, opening float64) models.CashRegister {
	t.Helper()
	var reg *models.CashRegister
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		reg, err = openRegisterCore(tx, opening, "tester", "")
		return err
	})
	if err != nil {
		t.Fatalf("open register: %v", err)
	}
	return *reg
}

func addItem(t *testing.T, db *gorm.DB, tableID, productID uint, qty int, price float64) {
	t.Helper()
	if err := db.Transaction(func(tx *gorm.DB) error {
		return addTabItemCore(tx, tableID, productID, qty, price)
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}
}

func reloadTable(t *testing.T, db *gorm.DB, id uint) models.Table {
	t.Helper()
	var table models.Table
	if err := db.Preload("Items").First(&table, id).Error; err != nil {
		t.Fatalf("reload table: %v", err)
	}
	return table
}

func reloadRegister(t *testing.T, db *gorm.DB, id uint) models.CashRegister {
	t.Helper()
	var reg models.CashRegister
	if err := db.First(&reg, id).Error; err != nil {
		t.Fatalf("reload register: %v", err)
	}
	return reg
}

func reloadProduct(t *testing.T, db *gorm.DB, id uint) models.Product {
	t.Helper()
	var p models.Product
	if err := db.First(&p, id).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	return p
}
