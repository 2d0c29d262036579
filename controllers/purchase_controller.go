package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PurchaseItemInput struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitCost  float64 `json:"unit_cost" binding:"required,gt=0"`
}

type PurchaseInput struct {
	SupplierName string              `json:"supplier_name" binding:"required"`
	InvoiceNo    string              `json:"invoice_no"`
	Items        []PurchaseItemInput `json:"items" binding:"required,min=1"`
}

// CreatePurchase records a supplier intake and increases stock for each
// line in one transaction.
func CreatePurchase(c *gin.Context) {
	var in PurchaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	for _, it := range in.Items {
		var cnt int64
		if err := config.DB.Model(&models.Product{}).Where("id = ?", it.ProductID).Count(&cnt).Error; err != nil || cnt == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("product %d not found", it.ProductID)})
			return
		}
	}

	var purchase models.Purchase
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		items := make([]models.PurchaseItem, 0, len(in.Items))
		var total float64
		for _, it := range in.Items {
			line := float64(it.Quantity) * it.UnitCost
			total += line
			items = append(items, models.PurchaseItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitCost:  it.UnitCost,
				LineTotal: line,
			})
		}

		purchase = models.Purchase{
			SupplierName: in.SupplierName,
			InvoiceNo:    in.InvoiceNo,
			Total:        total,
			CreatedBy:    currentUsername(c),
			Items:        items,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		for _, it := range in.Items {
			if err := tx.Model(&models.Product{}).Where("id = ?", it.ProductID).
				UpdateColumn("stock", gorm.Expr("stock + ?", it.Quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		config.Log.Sugar().Errorw("purchase create failed", "op", "create_purchase", "supplier", in.SupplierName, "err", txErr)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to record purchase", "error": txErr.Error()})
		return
	}

	config.DB.Preload("Items.Product").First(&purchase, purchase.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "purchase recorded", "data": purchase})
}

func ListPurchases(c *gin.Context) {
	var rows []models.Purchase
	if err := config.DB.Preload("Items").Order("id DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list purchases", "error": err.Error()})
		return
	}
	utils.Success(c, "purchases", rows)
}

func PurchaseDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var p models.Purchase
	if err := config.DB.Preload("Items.Product").First(&p, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "purchase not found"})
		return
	}
	utils.Success(c, "purchase", p)
}
