package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Item mutations and the totals recompute always share one transaction:
// a crash between the two writes must not leave stale totals behind.

func addTabItemCore(tx *gorm.DB, tableID, productID uint, quantity int, price float64) error {
	var table models.Table
	if err := lockForUpdate(tx).First(&table, tableID).Error; err != nil {
		return err
	}
	if !table.IsActive {
		return ErrTabClosed
	}

	var item models.TabItem
	err := lockForUpdate(tx).
		Where("table_id = ? AND product_id = ?", tableID, productID).
		First(&item).Error
	switch {
	case err == nil:
		// same product again merges into the existing line
		if err := tx.Model(&item).UpdateColumn("quantity", item.Quantity+quantity).Error; err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = models.TabItem{TableID: tableID, ProductID: productID, Quantity: quantity, Price: price}
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
	default:
		return err
	}

	return recalcTableTotals(tx, tableID)
}

func setTabItemQuantityCore(tx *gorm.DB, tableID, productID uint, newQuantity int) error {
	var table models.Table
	if err := lockForUpdate(tx).First(&table, tableID).Error; err != nil {
		return err
	}
	if !table.IsActive {
		return ErrTabClosed
	}

	var item models.TabItem
	if err := lockForUpdate(tx).
		Where("table_id = ? AND product_id = ?", tableID, productID).
		First(&item).Error; err != nil {
		return err
	}

	// stepping down to zero is the removal path
	if newQuantity <= 0 {
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
	} else {
		if err := tx.Model(&item).UpdateColumn("quantity", newQuantity).Error; err != nil {
			return err
		}
	}

	return recalcTableTotals(tx, tableID)
}

func removeTabItemCore(tx *gorm.DB, tableID, productID uint) error {
	var table models.Table
	if err := lockForUpdate(tx).First(&table, tableID).Error; err != nil {
		return err
	}
	if !table.IsActive {
		return ErrTabClosed
	}

	res := tx.Where("table_id = ? AND product_id = ?", tableID, productID).
		Delete(&models.TabItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return recalcTableTotals(tx, tableID)
}

type AddItemInput struct {
	ProductID uint     `json:"product_id" binding:"required"`
	Quantity  int      `json:"quantity" binding:"required,gt=0"`
	Price     *float64 `json:"price"` // defaults to the product's sale price
}

func AddTabItem(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid table id"})
		return
	}

	var in AddItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, in.ProductID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "product not found"})
		return
	}
	price := product.SalePrice
	if in.Price != nil && *in.Price > 0 {
		price = *in.Price
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		return addTabItemCore(tx, uint(tableID), in.ProductID, in.Quantity, price)
	})
	if txErr != nil {
		config.Log.Sugar().Errorw("add item failed", "op", "add_tab_item", "table_id", tableID, "product_id", in.ProductID, "err", txErr)
		utils.Error(c, statusFor(txErr), "failed to add item", txErr)
		return
	}

	var table models.Table
	config.DB.Preload("Items.Product").First(&table, tableID)
	utils.Success(c, "item added", table)
}

type UpdateItemInput struct {
	Quantity int `json:"quantity"`
}

func UpdateTabItemQuantity(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid table id"})
		return
	}
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	var in UpdateItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		return setTabItemQuantityCore(tx, uint(tableID), uint(productID), in.Quantity)
	})
	if txErr != nil {
		utils.Error(c, statusFor(txErr), "failed to update item", txErr)
		return
	}

	var table models.Table
	config.DB.Preload("Items.Product").First(&table, tableID)
	utils.Success(c, "item updated", table)
}

func RemoveTabItem(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid table id"})
		return
	}
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		return removeTabItemCore(tx, uint(tableID), uint(productID))
	})
	if txErr != nil {
		utils.Error(c, statusFor(txErr), "failed to remove item", txErr)
		return
	}

	var table models.Table
	config.DB.Preload("Items.Product").First(&table, tableID)
	utils.Success(c, "item removed", table)
}
